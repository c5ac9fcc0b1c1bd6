package chess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()

	require.False(t, g.IsGameComplete())
	require.False(t, g.IsGameTied())
	require.Empty(t, g.Winner())
}

func TestAvailableMoves(t *testing.T) {
	g := New()

	moves := g.AvailableMoves()

	require.Len(t, moves, 20, "the initial position has twenty legal moves")
	for _, m := range moves {
		require.True(t, g.IsValidMove(m))
	}
}

func TestPlayAlternatesSides(t *testing.T) {
	g := New()

	white := g.AvailableMoves()[0]
	g.Play(white, true)

	black := g.AvailableMoves()[0]
	g.Play(black, false)

	require.False(t, g.IsGameComplete())
}

func TestPlayWrongSidePanics(t *testing.T) {
	g := New()
	m := g.AvailableMoves()[0]

	require.Panics(t, func() { g.Play(m, false) }, "white moves first")
}

func TestPlaySentinelPanics(t *testing.T) {
	g := New()

	require.Panics(t, func() { g.Play(g.SentinelMove(), true) })
}

func TestEvaluateNotImplemented(t *testing.T) {
	g := New()

	require.Panics(t, func() { g.Evaluate() })
}

func TestClearNotImplemented(t *testing.T) {
	g := New()
	m := g.AvailableMoves()[0]
	g.Play(m, true)

	require.Panics(t, func() { g.Clear(m) })
}

func TestSentinelMove(t *testing.T) {
	g := New()

	require.False(t, g.IsValidMove(g.SentinelMove()))
}
