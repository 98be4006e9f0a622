package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neuralpulse/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestValidateArticleInput(t *testing.T) {
	v := NewValidator()

	t.Run("valid minimal article", func(t *testing.T) {
		in := &domain.ArticleInput{
			Title:   "Understanding Transformers",
			Content: "Attention is all you need.",
		}
		assert.NoError(t, v.ValidateArticleInput(in))
	})

	t.Run("valid full article", func(t *testing.T) {
		in := &domain.ArticleInput{
			Title:    "Understanding Transformers",
			Slug:     "understanding-transformers",
			Content:  "Attention is all you need.",
			Category: "GenAI",
			Tags:     []string{"ml", "nlp"},
			Status:   domain.StatusPublished,
		}
		assert.NoError(t, v.ValidateArticleInput(in))
	})

	t.Run("missing title rejected", func(t *testing.T) {
		in := &domain.ArticleInput{Content: "body"}
		err := v.ValidateArticleInput(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("missing content rejected", func(t *testing.T) {
		in := &domain.ArticleInput{Title: "T"}
		err := v.ValidateArticleInput(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "content")
	})

	t.Run("bad slug rejected", func(t *testing.T) {
		in := &domain.ArticleInput{Title: "T", Content: "C", Slug: "Not A Slug"}
		assert.Error(t, v.ValidateArticleInput(in))
	})

	t.Run("bad status rejected", func(t *testing.T) {
		in := &domain.ArticleInput{Title: "T", Content: "C", Status: "live"}
		assert.Error(t, v.ValidateArticleInput(in))
	})
}

func TestValidateArticleUpdate(t *testing.T) {
	v := NewValidator()

	t.Run("empty update rejected", func(t *testing.T) {
		err := v.ValidateArticleUpdate(&domain.ArticleUpdate{})
		assert.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unset fields are not checked", func(t *testing.T) {
		u := &domain.ArticleUpdate{Category: strPtr("GenAI")}
		assert.NoError(t, v.ValidateArticleUpdate(u))
	})

	t.Run("set title must not be blank", func(t *testing.T) {
		u := &domain.ArticleUpdate{Title: strPtr("  ")}
		assert.Error(t, v.ValidateArticleUpdate(u))
	})

	t.Run("set content must not be blank", func(t *testing.T) {
		u := &domain.ArticleUpdate{Content: strPtr("")}
		assert.Error(t, v.ValidateArticleUpdate(u))
	})

	t.Run("set status must be valid", func(t *testing.T) {
		u := &domain.ArticleUpdate{Status: strPtr("retired")}
		assert.Error(t, v.ValidateArticleUpdate(u))

		u = &domain.ArticleUpdate{Status: strPtr(domain.StatusArchived)}
		assert.NoError(t, v.ValidateArticleUpdate(u))
	})

	t.Run("set slug must be well formed", func(t *testing.T) {
		u := &domain.ArticleUpdate{Slug: strPtr("Bad Slug!")}
		assert.Error(t, v.ValidateArticleUpdate(u))
	})
}

func TestValidateSubscriberEmail(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"dup@x.com", true},
		{"no-at-sign", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := v.ValidateSubscriberEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateSubscriberStatus(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateSubscriberStatus("active"))
	assert.NoError(t, v.ValidateSubscriberStatus("inactive"))
	assert.NoError(t, v.ValidateSubscriberStatus("unsubscribed"))
	assert.Error(t, v.ValidateSubscriberStatus("paused"))
	assert.Error(t, v.ValidateSubscriberStatus(""))
}

func TestValidateCategoryInput(t *testing.T) {
	v := NewValidator()

	t.Run("valid category", func(t *testing.T) {
		in := &domain.CategoryInput{Name: "GenAI", Slug: "genai", Color: "#6366f1"}
		assert.NoError(t, v.ValidateCategoryInput(in))
	})

	t.Run("missing name rejected", func(t *testing.T) {
		in := &domain.CategoryInput{Slug: "genai"}
		assert.Error(t, v.ValidateCategoryInput(in))
	})

	t.Run("missing slug rejected", func(t *testing.T) {
		in := &domain.CategoryInput{Name: "GenAI"}
		assert.Error(t, v.ValidateCategoryInput(in))
	})

	t.Run("malformed slug rejected", func(t *testing.T) {
		in := &domain.CategoryInput{Name: "GenAI", Slug: "Gen AI"}
		assert.Error(t, v.ValidateCategoryInput(in))
	})
}

func TestIsValidationError(t *testing.T) {
	v := NewValidator()

	err := v.ValidateSubscriberEmail("nope")
	assert.True(t, IsValidationError(err))

	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(domain.ErrNotFound))
}
