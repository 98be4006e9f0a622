package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/repository"
)

// DashboardService aggregates stats across repositories for the admin
// dashboard.
type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type dashboardService struct {
	articles    repository.ArticleRepository
	subscribers repository.SubscriberRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(articles repository.ArticleRepository, subscribers repository.SubscriberRepository) DashboardService {
	return &dashboardService{
		articles:    articles,
		subscribers: subscribers,
	}
}

// Stats fetches article and subscriber counters concurrently and combines
// them. The counters come from independent queries, so the numbers are a
// point-in-time approximation rather than one consistent snapshot.
func (s *dashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		articleStats    *domain.ArticleStats
		subscriberStats *domain.SubscriberStats
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articleStats, err = s.articles.Stats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		subscriberStats, err = s.subscribers.Stats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &domain.DashboardStats{
		TotalArticles:     articleStats.TotalArticles,
		PublishedArticles: articleStats.PublishedArticles,
		TotalViews:        articleStats.TotalViews,
		TotalSubscribers:  subscriberStats.Total,
		ActiveSubscribers: subscriberStats.Active,
	}, nil
}
