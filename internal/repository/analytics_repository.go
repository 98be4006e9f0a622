package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/gateway"
	"neuralpulse/internal/metrics"
)

const (
	// defaultAnalyticsDays bounds the recent-views report when the caller
	// gives no window.
	defaultAnalyticsDays = 30
	// defaultTopLimit bounds the top-articles report.
	defaultTopLimit = 10
)

// GatewayAnalyticsRepository implements AnalyticsRepository on the storage
// gateway. View events are append-only; nothing here updates or deletes them.
type GatewayAnalyticsRepository struct {
	gw *gateway.Gateway
}

// NewGatewayAnalyticsRepository creates a new GatewayAnalyticsRepository.
func NewGatewayAnalyticsRepository(gw *gateway.Gateway) *GatewayAnalyticsRepository {
	return &GatewayAnalyticsRepository{gw: gw}
}

// RecordView appends one view event. A write failure is reported to the
// caller, never swallowed; the caller decides whether the page view itself
// still counts.
func (r *GatewayAnalyticsRepository) RecordView(ctx context.Context, articleID string, ipAddress, userAgent *string) error {
	values := map[string]any{
		"id":         uuid.New().String(),
		"article_id": articleID,
		"ip_address": ipAddress,
		"user_agent": userAgent,
	}

	var id string
	if err := r.gw.Insert(ctx, "article_views", values, []string{"id"}, &id); err != nil {
		return fmt.Errorf("record view for article %s: %w", articleID, err)
	}
	metrics.ArticleViewsRecorded.Inc()
	return nil
}

// RecentViews returns view events from the last days days, newest first,
// each joined with the title and slug of its article.
func (r *GatewayAnalyticsRepository) RecentViews(ctx context.Context, days int) ([]domain.ViewEvent, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	rows, err := r.gw.Select(ctx, "recent_article_views",
		[]string{"viewed_at", "article_title", "article_slug"},
		gateway.Options{
			MinBound: map[string]any{"viewed_at": cutoff},
			OrderBy:  "viewed_at",
			Desc:     true,
		})
	if err != nil {
		return nil, fmt.Errorf("recent views: %w", err)
	}
	defer rows.Close()

	events := []domain.ViewEvent{}
	for rows.Next() {
		var e domain.ViewEvent
		if err := rows.Scan(&e.ViewedAt, &e.ArticleTitle, &e.ArticleSlug); err != nil {
			return nil, fmt.Errorf("scan view event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read view events: %w", err)
	}
	return events, nil
}

// TopArticles returns the most viewed published articles.
func (r *GatewayAnalyticsRepository) TopArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	rows, err := r.gw.Select(ctx, "articles", articleColumns, gateway.Options{
		Filter:  map[string]any{"status": domain.StatusPublished},
		OrderBy: "views",
		Desc:    true,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("top articles: %w", err)
	}
	return scanArticles(rows)
}
