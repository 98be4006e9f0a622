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

func TestGatewaySubscriberRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewGatewaySubscriberRepository(testDB.Gateway(), validator.NewValidator())
	ctx := context.Background()

	t.Run("create defaults source and starts active", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		s, err := repo.Create(ctx, "reader@example.com", "")
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, "reader@example.com", s.Email)
		assert.Equal(t, domain.SubscriberActive, s.Status)
		assert.Equal(t, "website", s.Source)
		assert.False(t, s.SubscribedAt.IsZero())
		assert.Nil(t, s.UnsubscribedAt)
	})

	t.Run("create rejects invalid email", func(t *testing.T) {
		_, err := repo.Create(ctx, "", "website")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))

		_, err = repo.Create(ctx, "no-at-sign", "website")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("duplicate email reports conflict", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		_, err := repo.Create(ctx, "dup@x.com", "website")
		require.NoError(t, err)

		_, err = repo.Create(ctx, "dup@x.com", "footer")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)

		// The failed insert must not have left a row behind.
		active, err := repo.List(ctx, domain.SubscriberFilter{Status: domain.SubscriberActive})
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})

	t.Run("unsubscribe stamps and reactivate clears unsubscribed_at", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		s, err := repo.Create(ctx, "a@b.com", "website")
		require.NoError(t, err)

		unsubbed, err := repo.UpdateStatus(ctx, s.ID, domain.SubscriberUnsubscribed)
		require.NoError(t, err)
		assert.Equal(t, domain.SubscriberUnsubscribed, unsubbed.Status)
		require.NotNil(t, unsubbed.UnsubscribedAt)
		assert.False(t, unsubbed.UnsubscribedAt.Before(s.SubscribedAt))

		reactivated, err := repo.UpdateStatus(ctx, s.ID, domain.SubscriberActive)
		require.NoError(t, err)
		assert.Equal(t, domain.SubscriberActive, reactivated.Status)
		assert.Nil(t, reactivated.UnsubscribedAt)
	})

	t.Run("update status validates the target", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		s, err := repo.Create(ctx, "c@d.com", "website")
		require.NoError(t, err)

		_, err = repo.UpdateStatus(ctx, s.ID, "bounced")
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("update status on missing id reports not found", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", domain.SubscriberInactive)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete is not idempotent", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		s, err := repo.Create(ctx, "gone@x.com", "website")
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, s.ID))
		assert.ErrorIs(t, repo.Delete(ctx, s.ID), domain.ErrNotFound)
	})

	t.Run("list filters by status and orders newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		first, err := repo.Create(ctx, "first@x.com", "website")
		require.NoError(t, err)
		second, err := repo.Create(ctx, "second@x.com", "website")
		require.NoError(t, err)
		third, err := repo.Create(ctx, "third@x.com", "website")
		require.NoError(t, err)

		_, err = repo.UpdateStatus(ctx, second.ID, domain.SubscriberUnsubscribed)
		require.NoError(t, err)

		active, err := repo.List(ctx, domain.SubscriberFilter{Status: domain.SubscriberActive})
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, third.ID, active[0].ID)
		assert.Equal(t, first.ID, active[1].ID)

		limited, err := repo.List(ctx, domain.SubscriberFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("stats counts total and active", func(t *testing.T) {
		testDB.TruncateTables(t, "subscribers")

		for _, email := range []string{"s1@x.com", "s2@x.com", "s3@x.com"} {
			_, err := repo.Create(ctx, email, "website")
			require.NoError(t, err)
		}
		listed, err := repo.List(ctx, domain.SubscriberFilter{})
		require.NoError(t, err)
		_, err = repo.UpdateStatus(ctx, listed[0].ID, domain.SubscriberUnsubscribed)
		require.NoError(t, err)

		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Total)
		assert.Equal(t, int64(2), stats.Active)
	})
}
