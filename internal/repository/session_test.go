package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/testing/suite"
)

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage)

	// Given: a session with an id and a player order
	session := entity.NewSession("123", entity.OrderFirst, time.Now())

	// When: CreateOrUpdate is called with a ttl
	err := sessionRepo.CreateOrUpdate(ctx, session, time.Minute)

	// Then: no error should be returned and the key should expire
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, sessionKeyPrefix+session.ID).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// Given: a stored session with a pending model move
		session := entity.NewSession("123", entity.OrderSecond, time.Now())
		session.QueueModelMove(6)

		err := sessionRepo.CreateOrUpdate(ctx, session, time.Minute)
		require.NoError(t, err)

		// When: GetByID is called with existing id
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the retrieved session should match the saved one
		require.NoError(t, err)
		assert.Equal(t, session.ID, retrieved.ID)
		assert.Equal(t, session.PlayerOrder, retrieved.PlayerOrder)
		require.NotNil(t, retrieved.PendingModelMove)
		assert.Equal(t, 6, *retrieved.PendingModelMove)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// When: GetByID is called with non-existent id
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// Given: a stored session
		session := entity.NewSession("123", entity.OrderFirst, time.Now())
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session, 0))

		// When: DeleteByID is called with existing id
		err := sessionRepo.DeleteByID(ctx, session.ID)

		// Then: the session should be gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage)

		// When: DeleteByID is called with non-existent id
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, ErrSessionNotFound)
	})
}
