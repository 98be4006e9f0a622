package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/repository"
	"neuralpulse/internal/validator"
)

func TestGatewayAnalyticsRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	gw := testDB.Gateway()
	articles := repository.NewGatewayArticleRepository(gw, validator.NewValidator())
	repo := repository.NewGatewayAnalyticsRepository(gw)
	ctx := context.Background()

	createArticle := func(t *testing.T, title, status string) *domain.Article {
		t.Helper()
		article, err := articles.Create(ctx, domain.ArticleInput{
			Title:    title,
			Content:  "content for " + title,
			Category: "engineering",
			Status:   status,
		})
		require.NoError(t, err)
		return article
	}

	t.Run("record view and read it back", func(t *testing.T) {
		testDB.TruncateTables(t, "article_views", "articles")

		article := createArticle(t, "Vector Databases in Practice", domain.StatusPublished)

		ip := "203.0.113.7"
		ua := "Mozilla/5.0"
		require.NoError(t, repo.RecordView(ctx, article.ID, &ip, &ua))
		require.NoError(t, repo.RecordView(ctx, article.ID, nil, nil))

		events, err := repo.RecentViews(ctx, 7)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, article.Title, events[0].ArticleTitle)
		assert.Equal(t, article.Slug, events[0].ArticleSlug)
		assert.False(t, events[0].ViewedAt.Before(events[1].ViewedAt))
	})

	t.Run("article reference is not enforced", func(t *testing.T) {
		// article_id is a plain UUID column, so events may outlive their
		// article. The dangling event is kept but drops out of the joined
		// report.
		err := repo.RecordView(ctx, "3b8f9d52-0000-0000-0000-000000000000", nil, nil)
		require.NoError(t, err)

		events, err := repo.RecentViews(ctx, 7)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("recent views defaults window when days is zero", func(t *testing.T) {
		testDB.TruncateTables(t, "article_views", "articles")

		article := createArticle(t, "Prompt Caching", domain.StatusPublished)
		require.NoError(t, repo.RecordView(ctx, article.ID, nil, nil))

		events, err := repo.RecentViews(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("top articles ranks published by views", func(t *testing.T) {
		testDB.TruncateTables(t, "article_views", "articles")

		first := createArticle(t, "Model Distillation", domain.StatusPublished)
		second := createArticle(t, "Quantization Tradeoffs", domain.StatusPublished)
		draft := createArticle(t, "Unreleased Benchmarks", domain.StatusDraft)

		for i := 0; i < 3; i++ {
			_, err := articles.IncrementViews(ctx, second.ID)
			require.NoError(t, err)
		}
		_, err := articles.IncrementViews(ctx, first.ID)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			_, err := articles.IncrementViews(ctx, draft.ID)
			require.NoError(t, err)
		}

		top, err := repo.TopArticles(ctx, 2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, second.ID, top[0].ID)
		assert.Equal(t, int64(3), top[0].Views)
		assert.Equal(t, first.ID, top[1].ID)
	})

	t.Run("top articles defaults limit when zero", func(t *testing.T) {
		top, err := repo.TopArticles(ctx, 0)
		require.NoError(t, err)
		assert.NotEmpty(t, top)
	})
}
