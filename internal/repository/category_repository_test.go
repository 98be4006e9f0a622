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

func TestGatewayCategoryRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewGatewayCategoryRepository(testDB.Gateway(), validator.NewValidator())
	ctx := context.Background()

	t.Run("create and list ordered by name", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		_, err := repo.Create(ctx, domain.CategoryInput{Name: "Robotics", Slug: "robotics", Color: "#f97316"})
		require.NoError(t, err)
		_, err = repo.Create(ctx, domain.CategoryInput{Name: "GenAI", Slug: "genai"})
		require.NoError(t, err)

		categories, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "GenAI", categories[0].Name)
		assert.Equal(t, "Robotics", categories[1].Name)
		// Unset color falls back to the schema default.
		assert.NotEmpty(t, categories[0].Color)
	})

	t.Run("create validates name and slug", func(t *testing.T) {
		_, err := repo.Create(ctx, domain.CategoryInput{Slug: "no-name"})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		_, err = repo.Create(ctx, domain.CategoryInput{Name: "No Slug"})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("duplicate slug reports conflict", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		_, err := repo.Create(ctx, domain.CategoryInput{Name: "GenAI", Slug: "genai"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, domain.CategoryInput{Name: "Generative AI", Slug: "genai"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("get by slug", func(t *testing.T) {
		testDB.TruncateTables(t, "categories")

		created, err := repo.Create(ctx, domain.CategoryInput{Name: "MLOps", Slug: "mlops"})
		require.NoError(t, err)

		got, err := repo.GetBySlug(ctx, "mlops")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = repo.GetBySlug(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
