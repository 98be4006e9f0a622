package domain

import "time"

// Article represents an article entity in the system.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     *string   `json:"description,omitempty"`
	Content         string    `json:"content"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags,omitempty"`
	FeaturedImage   *string   `json:"featured_image,omitempty"`
	MetaTitle       *string   `json:"meta_title,omitempty"`
	MetaDescription *string   `json:"meta_description,omitempty"`
	Status          string    `json:"status"`
	Views           int64     `json:"views"`
	AuthorID        *string   `json:"author_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidArticleStatuses contains all valid article statuses.
var ValidArticleStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// IsValidArticleStatus checks if a status is valid.
func IsValidArticleStatus(status string) bool {
	for _, s := range ValidArticleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ArticleFilter narrows an article listing. Zero values mean "no filter".
// Search matches a case-insensitive substring of title or description.
type ArticleFilter struct {
	Status   string
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ArticleInput carries the caller-supplied fields for creating an article.
// Views is always initialized to zero regardless of input.
type ArticleInput struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Description     *string  `json:"description"`
	Content         string   `json:"content"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	FeaturedImage   *string  `json:"featured_image"`
	MetaTitle       *string  `json:"meta_title"`
	MetaDescription *string  `json:"meta_description"`
	Status          string   `json:"status"`
	AuthorID        *string  `json:"author_id"`
}

// ArticleUpdate is a partial update. Nil fields are left untouched.
type ArticleUpdate struct {
	Title           *string   `json:"title"`
	Slug            *string   `json:"slug"`
	Description     *string   `json:"description"`
	Content         *string   `json:"content"`
	Category        *string   `json:"category"`
	Tags            *[]string `json:"tags"`
	FeaturedImage   *string   `json:"featured_image"`
	MetaTitle       *string   `json:"meta_title"`
	MetaDescription *string   `json:"meta_description"`
	Status          *string   `json:"status"`
	AuthorID        *string   `json:"author_id"`
}

// IsEmpty reports whether the update sets no fields at all.
func (u ArticleUpdate) IsEmpty() bool {
	return u.Title == nil && u.Slug == nil && u.Description == nil &&
		u.Content == nil && u.Category == nil && u.Tags == nil &&
		u.FeaturedImage == nil && u.MetaTitle == nil &&
		u.MetaDescription == nil && u.Status == nil && u.AuthorID == nil
}

// ArticleStats aggregates article counters. The three figures come from
// independent queries and are a best-effort snapshot, not a transaction.
type ArticleStats struct {
	TotalArticles     int64 `json:"totalArticles"`
	PublishedArticles int64 `json:"publishedArticles"`
	TotalViews        int64 `json:"totalViews"`
}
