package repository

import (
	"context"

	"neuralpulse/internal/domain"
)

// ArticleRepository defines the data-access operations over articles.
type ArticleRepository interface {
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, input domain.ArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, update domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	// IncrementViews adds one to the article's view counter in a single
	// atomic storage operation and returns the new count.
	IncrementViews(ctx context.Context, id string) (int64, error)
	Stats(ctx context.Context) (*domain.ArticleStats, error)
}

// SubscriberRepository defines the data-access operations over subscribers.
type SubscriberRepository interface {
	List(ctx context.Context, filter domain.SubscriberFilter) ([]domain.Subscriber, error)
	Create(ctx context.Context, email, source string) (*domain.Subscriber, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Subscriber, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.SubscriberStats, error)
}

// CategoryRepository defines the data-access operations over categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
}

// AnalyticsRepository records article view events and answers the analytics
// queries built on them.
type AnalyticsRepository interface {
	RecordView(ctx context.Context, articleID string, ipAddress, userAgent *string) error
	RecentViews(ctx context.Context, days int) ([]domain.ViewEvent, error)
	TopArticles(ctx context.Context, limit int) ([]domain.Article, error)
}
