package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/gateway"
	"neuralpulse/internal/validator"
)

// defaultPageSize applies when a caller paginates with an offset but no
// explicit limit.
const defaultPageSize = 10

var articleColumns = []string{
	"id", "title", "slug", "description", "content", "category", "tags",
	"featured_image", "meta_title", "meta_description", "status", "views",
	"author_id", "created_at", "updated_at",
}

func articleDest(a *domain.Article) []any {
	return []any{
		&a.ID, &a.Title, &a.Slug, &a.Description, &a.Content, &a.Category,
		&a.Tags, &a.FeaturedImage, &a.MetaTitle, &a.MetaDescription,
		&a.Status, &a.Views, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt,
	}
}

// scanArticles drains rows into a slice. Always returns a non-nil slice so an
// empty listing serializes as [] rather than null.
func scanArticles(rows pgx.Rows) ([]domain.Article, error) {
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(articleDest(&a)...); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	return articles, nil
}

// GatewayArticleRepository implements ArticleRepository on the storage gateway.
type GatewayArticleRepository struct {
	gw        *gateway.Gateway
	validator *validator.Validator
}

// NewGatewayArticleRepository creates a new GatewayArticleRepository.
func NewGatewayArticleRepository(gw *gateway.Gateway, v *validator.Validator) *GatewayArticleRepository {
	return &GatewayArticleRepository{gw: gw, validator: v}
}

// List returns articles ordered by creation time, newest first. Status,
// category and search filters combine; search matches a case-insensitive
// substring of title or description.
func (r *GatewayArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	opts := gateway.Options{
		OrderBy: "created_at",
		Desc:    true,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}
	if filter.Status != "" || filter.Category != "" {
		opts.Filter = map[string]any{}
		if filter.Status != "" {
			opts.Filter["status"] = filter.Status
		}
		if filter.Category != "" {
			opts.Filter["category"] = filter.Category
		}
	}
	if filter.Search != "" {
		opts.Search = filter.Search
		opts.SearchIn = []string{"title", "description"}
	}
	if filter.Offset > 0 && filter.Limit <= 0 {
		opts.Limit = defaultPageSize
	}

	rows, err := r.gw.Select(ctx, "articles", articleColumns, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return scanArticles(rows)
}

// GetByID returns the article with the given id.
func (r *GatewayArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	return r.getOne(ctx, "id", id)
}

// GetBySlug returns the article with the given slug.
func (r *GatewayArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return r.getOne(ctx, "slug", slug)
}

// getOne reads by a unique column. It fetches up to two rows so that a
// violated uniqueness assumption surfaces as a consistency error instead of
// silently returning whichever row came first.
func (r *GatewayArticleRepository) getOne(ctx context.Context, column, value string) (*domain.Article, error) {
	rows, err := r.gw.Select(ctx, "articles", articleColumns, gateway.Options{
		Filter: map[string]any{column: value},
		Limit:  2,
	})
	if err != nil {
		return nil, fmt.Errorf("get article by %s: %w", column, err)
	}
	articles, err := scanArticles(rows)
	if err != nil {
		return nil, err
	}

	switch len(articles) {
	case 0:
		return nil, fmt.Errorf("article with %s %q: %w", column, value, domain.ErrNotFound)
	case 1:
		return &articles[0], nil
	default:
		return nil, fmt.Errorf("multiple articles with %s %q: %w", column, value, domain.ErrConsistency)
	}
}

// Create inserts a new article. Title and content are required; the slug is
// derived from the title when absent; status defaults to draft; views always
// starts at zero no matter what the caller sent.
func (r *GatewayArticleRepository) Create(ctx context.Context, input domain.ArticleInput) (*domain.Article, error) {
	if err := r.validator.ValidateArticleInput(&input); err != nil {
		return nil, fmt.Errorf("validate article: %w", err)
	}

	slug := input.Slug
	if slug == "" {
		slug = domain.Slugify(input.Title)
	}
	status := input.Status
	if status == "" {
		status = domain.StatusDraft
	}

	values := map[string]any{
		"id":               uuid.New().String(),
		"title":            input.Title,
		"slug":             slug,
		"description":      input.Description,
		"content":          input.Content,
		"category":         input.Category,
		"tags":             input.Tags,
		"featured_image":   input.FeaturedImage,
		"meta_title":       input.MetaTitle,
		"meta_description": input.MetaDescription,
		"status":           status,
		"views":            int64(0),
		"author_id":        input.AuthorID,
	}

	var a domain.Article
	if err := r.gw.Insert(ctx, "articles", values, articleColumns, articleDest(&a)...); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return &a, nil
}

// Update applies a partial update and returns the full updated article.
// Fields the caller did not set are left untouched.
func (r *GatewayArticleRepository) Update(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Article, error) {
	if err := r.validator.ValidateArticleUpdate(&update); err != nil {
		return nil, fmt.Errorf("validate article update: %w", err)
	}

	patch := map[string]any{}
	if update.Title != nil {
		patch["title"] = *update.Title
	}
	if update.Slug != nil {
		patch["slug"] = *update.Slug
	}
	if update.Description != nil {
		patch["description"] = *update.Description
	}
	if update.Content != nil {
		patch["content"] = *update.Content
	}
	if update.Category != nil {
		patch["category"] = *update.Category
	}
	if update.Tags != nil {
		patch["tags"] = *update.Tags
	}
	if update.FeaturedImage != nil {
		patch["featured_image"] = *update.FeaturedImage
	}
	if update.MetaTitle != nil {
		patch["meta_title"] = *update.MetaTitle
	}
	if update.MetaDescription != nil {
		patch["meta_description"] = *update.MetaDescription
	}
	if update.Status != nil {
		patch["status"] = *update.Status
	}
	if update.AuthorID != nil {
		patch["author_id"] = *update.AuthorID
	}

	var a domain.Article
	if err := r.gw.UpdateByID(ctx, "articles", id, patch, articleColumns, articleDest(&a)...); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return &a, nil
}

// Delete removes an article. Deleting an id that does not exist is an error.
func (r *GatewayArticleRepository) Delete(ctx context.Context, id string) error {
	if err := r.gw.DeleteByID(ctx, "articles", id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter atomically server-side and returns
// the new count. This is the only sanctioned increment path; reading the
// counter and writing it back would lose updates under concurrent requests.
func (r *GatewayArticleRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	views, err := r.gw.Increment(ctx, "articles", id, "views", 1)
	if err != nil {
		return 0, fmt.Errorf("increment article views: %w", err)
	}
	return views, nil
}

// Stats computes article counters from three independent queries. The result
// is a best-effort snapshot; the reads are not transactionally consistent
// with one another.
func (r *GatewayArticleRepository) Stats(ctx context.Context) (*domain.ArticleStats, error) {
	total, err := r.gw.Count(ctx, "articles", nil)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	published, err := r.gw.Count(ctx, "articles", map[string]any{"status": domain.StatusPublished})
	if err != nil {
		return nil, fmt.Errorf("count published articles: %w", err)
	}
	views, err := r.gw.SumInt(ctx, "articles", "views", nil)
	if err != nil {
		return nil, fmt.Errorf("sum article views: %w", err)
	}

	return &domain.ArticleStats{
		TotalArticles:     total,
		PublishedArticles: published,
		TotalViews:        views,
	}, nil
}
