package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// chi-square critical value for 6 degrees of freedom at p = 0.001.
const chiSquareCritical = 22.458

func TestMoveService_PickColumn(t *testing.T) {
	t.Run("Always returns a valid column", func(t *testing.T) {
		// Given: the default move service
		moves := NewMoveService()

		for range 1000 {
			// When: picking a column
			column := moves.PickColumn()

			// Then: it should be within the board
			require.True(t, entity.IsValidColumn(column), "column %d out of range", column)
		}
	})

	t.Run("Draws are uniform across columns", func(t *testing.T) {
		// Given: a seeded move service and 10000 draws
		const draws = 10000
		moves := NewMoveServiceWithSource(rand.New(rand.NewPCG(7, 11))) //nolint: gosec // test

		var counts [entity.Columns]int
		for range draws {
			counts[moves.PickColumn()]++
		}

		// When: computing the chi-square statistic against the uniform distribution
		expected := float64(draws) / entity.Columns
		chiSquare := 0.0
		for _, observed := range counts {
			diff := float64(observed) - expected
			chiSquare += diff * diff / expected
		}

		// Then: every column should appear and uniformity should not be rejected
		for column, observed := range counts {
			assert.Positive(t, observed, "column %d never drawn", column)
		}
		assert.Less(t, chiSquare, chiSquareCritical)
	})

	t.Run("Repeated calls are not idempotent", func(t *testing.T) {
		// Given: the default move service
		moves := NewMoveService()

		// When: drawing many times
		seen := map[int]struct{}{}
		for range 200 {
			seen[moves.PickColumn()] = struct{}{}
		}

		// Then: more than one distinct column should appear
		assert.Greater(t, len(seen), 1)
	})
}
