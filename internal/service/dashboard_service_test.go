package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/mocks"
	"neuralpulse/internal/service"
)

func TestDashboardService_Stats(t *testing.T) {
	t.Run("combines article and subscriber counters", func(t *testing.T) {
		articles := mocks.NewMockArticleRepository(t)
		subscribers := mocks.NewMockSubscriberRepository(t)

		articles.EXPECT().Stats(mock.Anything).
			Return(&domain.ArticleStats{TotalArticles: 12, PublishedArticles: 8, TotalViews: 431}, nil)
		subscribers.EXPECT().Stats(mock.Anything).
			Return(&domain.SubscriberStats{Total: 90, Active: 75}, nil)

		svc := service.NewDashboardService(articles, subscribers)
		stats, err := svc.Stats(context.Background())
		require.NoError(t, err)

		assert.Equal(t, &domain.DashboardStats{
			TotalArticles:     12,
			PublishedArticles: 8,
			TotalViews:        431,
			TotalSubscribers:  90,
			ActiveSubscribers: 75,
		}, stats)
	})

	t.Run("article stats failure surfaces", func(t *testing.T) {
		articles := mocks.NewMockArticleRepository(t)
		subscribers := mocks.NewMockSubscriberRepository(t)

		articles.EXPECT().Stats(mock.Anything).
			Return(nil, errors.New("boom"))
		subscribers.EXPECT().Stats(mock.Anything).
			Return(&domain.SubscriberStats{Total: 1, Active: 1}, nil).Maybe()

		svc := service.NewDashboardService(articles, subscribers)
		stats, err := svc.Stats(context.Background())
		require.Error(t, err)
		assert.Nil(t, stats)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("subscriber stats failure surfaces", func(t *testing.T) {
		articles := mocks.NewMockArticleRepository(t)
		subscribers := mocks.NewMockSubscriberRepository(t)

		articles.EXPECT().Stats(mock.Anything).
			Return(&domain.ArticleStats{}, nil).Maybe()
		subscribers.EXPECT().Stats(mock.Anything).
			Return(nil, domain.ErrTransient)

		svc := service.NewDashboardService(articles, subscribers)
		_, err := svc.Stats(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTransient)
	})
}
