package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"minimax/player"
	"minimax/tictactoe"
)

func TestRunSelfPlayTies(t *testing.T) {
	var out bytes.Buffer
	g := tictactoe.New(3)
	e := New(g, player.NewSearch(9, true), player.NewSearch(9, false), &out)

	winner := e.Run()

	require.Empty(t, winner)
	require.True(t, g.IsGameTied())
	require.Contains(t, out.String(), "Game is complete.")
	require.Contains(t, out.String(), "Game tied!")
}

func TestRunScriptedGame(t *testing.T) {
	// Two scripted players: the maximizer completes the top row.
	var out bytes.Buffer
	g := tictactoe.New(3)
	maximizer := player.NewHuman(strings.NewReader("0\n1\n2\n"), &out)
	minimizer := player.NewHuman(strings.NewReader("3\n4\n"), &out)

	e := New(g, maximizer, minimizer, &out)
	winner := e.Run()

	require.Equal(t, "o", winner)
	require.Contains(t, out.String(), "o wins!")
}

func TestRunEndsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	g := tictactoe.New(3)
	e := New(g, player.NewHuman(strings.NewReader("nope\n"), &out), player.NewSearch(2, false), &out)

	winner := e.Run()

	require.Empty(t, winner)
	require.Contains(t, out.String(), "Session ended.")
	require.False(t, g.IsGameComplete())
}

func TestRunEndsOnIllegalMove(t *testing.T) {
	var out bytes.Buffer
	g := tictactoe.New(3)
	e := New(g, player.NewHuman(strings.NewReader("42\n"), &out), player.NewSearch(2, false), &out)

	winner := e.Run()

	require.Empty(t, winner)
	require.Contains(t, out.String(), "not legal")
}

func TestRunAnnouncesFinishedGame(t *testing.T) {
	var out bytes.Buffer
	g := tictactoe.New(3)
	g.Play(0, true)
	g.Play(3, false)
	g.Play(1, true)
	g.Play(4, false)
	g.Play(2, true) // completes the top row

	e := New(g, player.NewHuman(strings.NewReader(""), &out), player.NewSearch(2, false), &out)
	winner := e.Run()

	require.Equal(t, "o", winner)
	require.Contains(t, out.String(), "o wins!")
}

func TestExampleCellFitsBoard(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 10} {
		cell := exampleCell(size)
		require.GreaterOrEqual(t, cell, 0, "size %d", size)
		require.Less(t, cell, size*size, "size %d", size)
	}
	require.Equal(t, 7, exampleCell(3))
}
