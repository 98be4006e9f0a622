package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	articles := collections["articles"]

	t.Run("no options selects everything", func(t *testing.T) {
		sql, args, err := buildSelect(articles, []string{"id", "title"}, Options{})
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, title FROM articles", sql)
		assert.Empty(t, args)
	})

	t.Run("filter, order and pagination", func(t *testing.T) {
		sql, args, err := buildSelect(articles, []string{"id"}, Options{
			Filter:  map[string]any{"status": "published", "category": "GenAI"},
			OrderBy: "created_at",
			Desc:    true,
			Limit:   2,
			Offset:  4,
		})
		require.NoError(t, err)
		// Filter columns render in sorted order for a deterministic statement.
		assert.Equal(t,
			"SELECT id FROM articles WHERE category = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4",
			sql)
		assert.Equal(t, []any{"GenAI", "published", 2, 4}, args)
	})

	t.Run("search spans columns with ILIKE", func(t *testing.T) {
		sql, args, err := buildSelect(articles, []string{"id"}, Options{
			Search:   "neural",
			SearchIn: []string{"title", "description"},
		})
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id FROM articles WHERE (title ILIKE $1 OR description ILIKE $1)",
			sql)
		assert.Equal(t, []any{"%neural%"}, args)
	})

	t.Run("search term LIKE metacharacters are escaped", func(t *testing.T) {
		_, args, err := buildSelect(articles, []string{"id"}, Options{
			Search:   "100%_done",
			SearchIn: []string{"title"},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{`%100\%\_done%`}, args)
	})

	t.Run("min bound renders >=", func(t *testing.T) {
		cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		sql, args, err := buildSelect(collections["recent_article_views"],
			[]string{"viewed_at", "article_title", "article_slug"},
			Options{
				MinBound: map[string]any{"viewed_at": cutoff},
				OrderBy:  "viewed_at",
				Desc:     true,
			})
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT viewed_at, article_title, article_slug FROM recent_article_views WHERE viewed_at >= $1 ORDER BY viewed_at DESC",
			sql)
		assert.Equal(t, []any{cutoff}, args)
	})

	t.Run("unknown column rejected", func(t *testing.T) {
		_, _, err := buildSelect(articles, []string{"id"}, Options{
			Filter: map[string]any{"password": "x"},
		})
		assert.Error(t, err)

		_, _, err = buildSelect(articles, []string{"id; DROP TABLE articles"}, Options{})
		assert.Error(t, err)

		_, _, err = buildSelect(articles, []string{"id"}, Options{OrderBy: "nope"})
		assert.Error(t, err)
	})
}

func TestBuildInsert(t *testing.T) {
	t.Run("stamps creation timestamps server-side", func(t *testing.T) {
		sql, args, err := buildInsert(collections["articles"], map[string]any{
			"id":    "a1",
			"title": "Title",
		}, []string{"id", "created_at"})
		require.NoError(t, err)
		assert.Equal(t,
			"INSERT INTO articles (id, title, created_at, updated_at) VALUES ($1, $2, NOW(), NOW()) RETURNING id, created_at",
			sql)
		assert.Equal(t, []any{"a1", "Title"}, args)
	})

	t.Run("subscriber creation stamps subscribed_at only", func(t *testing.T) {
		sql, args, err := buildInsert(collections["subscribers"], map[string]any{
			"id":     "s1",
			"email":  "a@b.com",
			"status": "active",
			"source": "website",
		}, []string{"id"})
		require.NoError(t, err)
		assert.Equal(t,
			"INSERT INTO subscribers (email, id, source, status, subscribed_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id",
			sql)
		assert.Equal(t, []any{"a@b.com", "s1", "website", "active"}, args)
	})

	t.Run("empty values rejected", func(t *testing.T) {
		_, _, err := buildInsert(collections["articles"], nil, []string{"id"})
		assert.Error(t, err)
	})

	t.Run("read-only view rejected", func(t *testing.T) {
		_, _, err := buildInsert(collections["recent_article_views"],
			map[string]any{"article_title": "x"}, nil)
		assert.Error(t, err)
	})
}

func TestBuildUpdate(t *testing.T) {
	t.Run("bumps updated_at and binds id last", func(t *testing.T) {
		sql, args, err := buildUpdate(collections["articles"], "a1", map[string]any{
			"title": "New",
		}, []string{"id", "updated_at"})
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE articles SET title = $1, updated_at = NOW() WHERE id = $2 RETURNING id, updated_at",
			sql)
		assert.Equal(t, []any{"New", "a1"}, args)
	})

	t.Run("server time marker renders NOW()", func(t *testing.T) {
		sql, args, err := buildUpdate(collections["subscribers"], "s1", map[string]any{
			"status":          "unsubscribed",
			"unsubscribed_at": Now,
		}, []string{"id"})
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE subscribers SET status = $1, unsubscribed_at = NOW() WHERE id = $2 RETURNING id",
			sql)
		assert.Equal(t, []any{"unsubscribed", "s1"}, args)
	})

	t.Run("nil clears a column", func(t *testing.T) {
		sql, args, err := buildUpdate(collections["subscribers"], "s1", map[string]any{
			"unsubscribed_at": nil,
		}, []string{"id"})
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE subscribers SET unsubscribed_at = $1 WHERE id = $2 RETURNING id",
			sql)
		assert.Equal(t, []any{nil, "s1"}, args)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		_, _, err := buildUpdate(collections["articles"], "a1", nil, []string{"id"})
		assert.Error(t, err)
	})
}

func TestBuildAggregate(t *testing.T) {
	sql, args, err := buildAggregate(collections["articles"], "COUNT(*)",
		map[string]any{"status": "published"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM articles WHERE status = $1", sql)
	assert.Equal(t, []any{"published"}, args)

	sql, args, err = buildAggregate(collections["articles"], "COALESCE(SUM(views), 0)", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COALESCE(SUM(views), 0) FROM articles", sql)
	assert.Empty(t, args)
}

func TestLookupCollection(t *testing.T) {
	_, err := lookupCollection("articles")
	assert.NoError(t, err)

	_, err = lookupCollection("users")
	assert.Error(t, err)
}
