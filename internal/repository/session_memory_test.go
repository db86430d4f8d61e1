package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		// Given: a stored session with a pending move
		repo := NewMemorySessionRepository()
		session := entity.NewSession("g1", entity.OrderSecond, time.Now())
		session.QueueModelMove(2)
		require.NoError(t, repo.CreateOrUpdate(ctx, session, time.Minute))

		// When: reading it back
		stored, err := repo.GetByID(ctx, "g1")

		// Then: the stored copy should match
		require.NoError(t, err)
		assert.Equal(t, "g1", stored.ID)
		require.NotNil(t, stored.PendingModelMove)
		assert.Equal(t, 2, *stored.PendingModelMove)
	})

	t.Run("Stored sessions are copies", func(t *testing.T) {
		// Given: a stored session
		repo := NewMemorySessionRepository()
		session := entity.NewSession("g1", entity.OrderFirst, time.Now())
		require.NoError(t, repo.CreateOrUpdate(ctx, session, 0))

		// When: the caller mutates its value without saving
		session.RecordHumanMove(5)

		// Then: the store should be unaffected
		stored, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Nil(t, stored.LastHumanMove)
	})

	t.Run("Expired sessions are not found", func(t *testing.T) {
		// Given: a store with a controllable clock
		now := time.Now()
		repo := &memorySession{entries: make(map[string]memoryEntry), now: func() time.Time { return now }}
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewSession("g1", entity.OrderFirst, now), time.Minute))

		// When: the ttl elapses
		now = now.Add(time.Minute)

		// Then: the session should be gone
		_, err := repo.GetByID(ctx, "g1")
		require.ErrorIs(t, err, ErrSessionNotFound)
		assert.Empty(t, repo.entries)
	})

	t.Run("Delete", func(t *testing.T) {
		// Given: a stored session
		repo := NewMemorySessionRepository()
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewSession("g1", entity.OrderFirst, time.Now()), 0))

		// When: deleting it twice
		firstErr := repo.DeleteByID(ctx, "g1")
		secondErr := repo.DeleteByID(ctx, "g1")

		// Then: only the first delete should succeed
		require.NoError(t, firstErr)
		require.ErrorIs(t, secondErr, ErrSessionNotFound)
	})
}
