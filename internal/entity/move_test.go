package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRequest_Accessors(t *testing.T) {
	t.Run("Reads fields of any JSON type", func(t *testing.T) {
		// Given: a request with a string id, a nested board and a numeric move order
		var req MoveRequest
		body := `{"gameId":"g1","board":[[0,0,1],[2,0,0]],"moveOrder":3}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		// Then: the accessors should render every field
		assert.Equal(t, "g1", req.GameIDString())
		assert.Equal(t, "3", req.MoveOrderString())
		assert.Equal(t, "[[0,0,1],[2,0,0]]", req.BoardString())
	})

	t.Run("Tolerates an empty object", func(t *testing.T) {
		// Given: an empty request body
		var req MoveRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

		// Then: the accessors should return empty text
		assert.Empty(t, req.GameIDString())
		assert.Empty(t, req.MoveOrderString())
		assert.Empty(t, req.BoardString())
	})

	t.Run("Tolerates unexpected types", func(t *testing.T) {
		// Given: a request whose fields have unusual types
		var req MoveRequest
		require.NoError(t, json.Unmarshal([]byte(`{"gameId":42,"board":"full","moveOrder":{"n":1}}`), &req))

		// Then: the accessors should still render them
		assert.Equal(t, "42", req.GameIDString())
		assert.Equal(t, `"full"`, req.BoardString())
		assert.Equal(t, "map[n:1]", req.MoveOrderString())
	})
}

func TestIsValidColumn(t *testing.T) {
	for column := 0; column < Columns; column++ {
		assert.True(t, IsValidColumn(column))
	}

	assert.False(t, IsValidColumn(-1))
	assert.False(t, IsValidColumn(Columns))
}

func TestSession_ModelMoves(t *testing.T) {
	t.Run("Pending move is consumed once", func(t *testing.T) {
		// Given: a session with a queued model move
		session := NewSession("g1", OrderFirst, time.Now())
		session.QueueModelMove(4)

		// When: taking the move twice
		first, ok := session.TakeModelMove()
		require.True(t, ok)
		_, okAgain := session.TakeModelMove()

		// Then: only the first take should succeed
		assert.Equal(t, 4, first)
		assert.False(t, okAgain)
		assert.False(t, session.HasPendingMove())
		assert.Equal(t, 1, session.Moves)
	})

	t.Run("Human moves are recorded", func(t *testing.T) {
		// Given: a new session
		session := NewSession("g1", OrderSecond, time.Now())

		// When: the human plays column 2
		session.RecordHumanMove(2)

		// Then: the move should be stored and counted
		require.NotNil(t, session.LastHumanMove)
		assert.Equal(t, 2, *session.LastHumanMove)
		assert.Equal(t, 1, session.Moves)
		assert.True(t, session.ModelMovesFirst())
	})

	t.Run("Player order validation", func(t *testing.T) {
		assert.True(t, IsValidPlayerOrder(OrderFirst))
		assert.True(t, IsValidPlayerOrder(OrderSecond))
		assert.False(t, IsValidPlayerOrder("third"))
		assert.False(t, IsValidPlayerOrder(""))
	})
}

func TestSendMoveRequest_Column(t *testing.T) {
	column := func(body string) (int, bool) {
		var req SendMoveRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req.Column()
	}

	move, ok := column(`{"gameId":"g1","move":3}`)
	assert.True(t, ok)
	assert.Equal(t, 3, move)

	move, ok = column(`{"gameId":"g1","move":-1}`)
	assert.True(t, ok, "range is checked by the session service")
	assert.Equal(t, -1, move)

	_, ok = column(`{"gameId":"g1"}`)
	assert.False(t, ok)

	_, ok = column(`{"gameId":"g1","move":2.5}`)
	assert.False(t, ok)

	_, ok = column(`{"gameId":"g1","move":1e20}`)
	assert.False(t, ok)
}
