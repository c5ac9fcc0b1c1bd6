package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"minimax/game"
)

const mockSentinel = 99

// mockGame is a minimal instrumented Strategy: a fixed move list, a
// constant evaluation, and a play/undo stack that panics on any violation
// of the LIFO discipline.
type mockGame struct {
	moves          []game.Move
	score          float64
	complete       bool
	played         []game.Move
	playCalls      int
	availableCalls int
}

func (m *mockGame) Evaluate() float64 { return m.score }

func (m *mockGame) Winner() string { return "" }

func (m *mockGame) IsGameTied() bool { return false }

func (m *mockGame) IsGameComplete() bool { return m.complete }

func (m *mockGame) AvailableMoves() []game.Move {
	m.availableCalls++
	return m.moves
}

func (m *mockGame) Play(mv game.Move, maximizer bool) {
	m.playCalls++
	m.played = append(m.played, mv)
}

func (m *mockGame) Clear(mv game.Move) {
	if len(m.played) == 0 || m.played[len(m.played)-1] != mv {
		panic("clear does not mirror the most recent play")
	}
	m.played = m.played[:len(m.played)-1]
}

func (m *mockGame) Board() any { return nil }

func (m *mockGame) IsValidMove(mv game.Move) bool { return true }

func (m *mockGame) SentinelMove() game.Move { return mockSentinel }

func TestBestMoveCompleteGame(t *testing.T) {
	g := &mockGame{moves: []game.Move{0, 1}, complete: true}

	got := BestMove(g, 9, true)

	require.Equal(t, mockSentinel, got, "complete game should yield the sentinel move")
	require.Zero(t, g.availableCalls, "no moves should be enumerated on a complete game")
}

func TestBestMoveTieBreak(t *testing.T) {
	t.Run("maximizing perspective", func(t *testing.T) {
		g := &mockGame{moves: []game.Move{0, 1}, score: 5}

		got := BestMove(g, 1, true)

		require.Equal(t, 1, got, "equal scores should resolve to the last move generated")
		require.Empty(t, g.played, "search should leave the state unchanged")
	})

	t.Run("minimizing perspective", func(t *testing.T) {
		g := &mockGame{moves: []game.Move{0, 1}, score: 5}

		got := BestMove(g, 1, false)

		require.Equal(t, 1, got, "equal scores should resolve to the last move generated")
		require.Empty(t, g.played, "search should leave the state unchanged")
	})
}

func TestScoreLeafEvaluation(t *testing.T) {
	t.Run("depth exhausted", func(t *testing.T) {
		g := &mockGame{moves: []game.Move{0}, score: 7}

		got := Score(g, 0, true, math.Inf(-1), math.Inf(1), 5)

		require.Equal(t, 7.0, got, "leaf evaluation should be returned unshifted")
	})

	t.Run("complete game", func(t *testing.T) {
		g := &mockGame{moves: []game.Move{0}, score: -7, complete: true}

		got := Score(g, 3, false, math.Inf(-1), math.Inf(1), 5)

		require.Equal(t, -7.0, got, "leaf evaluation should be returned unshifted")
	})

	t.Run("no moves available", func(t *testing.T) {
		g := &mockGame{score: 7}

		got := Score(g, 3, true, math.Inf(-1), math.Inf(1), 5)

		require.Equal(t, 7.0, got, "leaf evaluation should be returned unshifted")
	})
}

func TestScoreMateDistanceShift(t *testing.T) {
	t.Run("nonzero value shifts per ply", func(t *testing.T) {
		// One move per level, leaf value 7, three plies: the shift is
		// -(3-1) at the deepest maximizing level and +(3-2) at the
		// minimizing level above it.
		g := &mockGame{moves: []game.Move{0}, score: 7}

		got := Score(g, 3, true, math.Inf(-1), math.Inf(1), 3)

		require.Equal(t, 6.0, got)
		require.Empty(t, g.played)
	})

	t.Run("draw value stays zero", func(t *testing.T) {
		g := &mockGame{moves: []game.Move{0}, score: 0}

		got := Score(g, 3, true, math.Inf(-1), math.Inf(1), 3)

		require.Equal(t, 0.0, got, "a drawn value should never be shifted")
	})
}

func TestScoreCutoffAfterUndo(t *testing.T) {
	// With beta below any reachable score, the first child triggers an
	// immediate cutoff: the sibling is never played and the state is
	// already restored.
	g := &mockGame{moves: []game.Move{0, 1}, score: 5}

	Score(g, 1, true, math.Inf(-1), -10, 1)

	require.Equal(t, 1, g.playCalls, "cutoff should skip the remaining sibling")
	require.Empty(t, g.played, "cutoff should never leave the state mutated")
}
