package domain

import "time"

// ArticleView is an append-only analytics event recorded once per page view.
// Rows are never updated or deleted.
type ArticleView struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	IPAddress *string   `json:"ip_address,omitempty"`
	UserAgent *string   `json:"user_agent,omitempty"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// ViewEvent is one row of the recent-views report: a view event joined with
// the title and slug of the article it belongs to.
type ViewEvent struct {
	ViewedAt     time.Time `json:"viewed_at"`
	ArticleTitle string    `json:"article_title"`
	ArticleSlug  string    `json:"article_slug"`
}

// DashboardStats combines article and subscriber counters for the dashboard.
type DashboardStats struct {
	TotalArticles     int64 `json:"totalArticles"`
	PublishedArticles int64 `json:"publishedArticles"`
	TotalViews        int64 `json:"totalViews"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	ActiveSubscribers int64 `json:"activeSubscribers"`
}
