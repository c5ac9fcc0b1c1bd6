// Package chess adapts the github.com/notnil/chess rules engine to the
// game.Strategy contract.
//
// The adapter is deliberately partial: Evaluate and Clear are not
// implemented and fail hard the first time they are invoked, so the game
// cannot be searched yet. It is kept out of the searchable-game set until
// move undo and a static evaluation exist.
package chess

import (
	"fmt"

	rules "github.com/notnil/chess"

	"minimax/game"
)

// Game wraps a live notnil/chess game and tracks the moves applied through
// the contract so an eventual undo has the history it needs.
type Game struct {
	inner  *rules.Game
	played []*rules.Move
}

// New starts a game from the standard initial position.
func New() *Game {
	return &Game{inner: rules.NewGame()}
}

var _ game.Strategy = (*Game)(nil)

// Evaluate is not implemented.
func (g *Game) Evaluate() float64 {
	panic("chess: static evaluation is not implemented")
}

// Winner returns "white" or "black" for a decisive outcome, "" otherwise.
func (g *Game) Winner() string {
	switch g.inner.Outcome() {
	case rules.WhiteWon:
		return "white"
	case rules.BlackWon:
		return "black"
	default:
		return ""
	}
}

// IsGameTied reports whether the game ended in a draw.
func (g *Game) IsGameTied() bool {
	return g.inner.Outcome() == rules.Draw
}

// IsGameComplete reports whether the game has any outcome.
func (g *Game) IsGameComplete() bool {
	return g.inner.Outcome() != rules.NoOutcome
}

// AvailableMoves returns the legal moves in the rules engine's order.
func (g *Game) AvailableMoves() []game.Move {
	valid := g.inner.ValidMoves()
	moves := make([]game.Move, len(valid))
	for i, m := range valid {
		moves[i] = m
	}
	return moves
}

// Play applies m for the given side. The side must match the rules
// engine's side to move.
func (g *Game) Play(m game.Move, maximizer bool) {
	mv, ok := m.(*rules.Move)
	if !ok || mv == nil {
		panic("chess: cannot play the sentinel move")
	}
	turn := g.inner.Position().Turn()
	if maximizer != (turn == rules.White) {
		panic(fmt.Sprintf("chess: side to move is %v", turn))
	}
	if err := g.inner.Move(mv); err != nil {
		panic(fmt.Sprintf("chess: illegal move %v: %v", mv, err))
	}
	g.played = append(g.played, mv)
}

// Clear pops m from the move history but cannot yet reverse it on the
// underlying position.
func (g *Game) Clear(m game.Move) {
	mv, ok := m.(*rules.Move)
	if !ok || mv == nil {
		panic("chess: cannot undo the sentinel move")
	}
	if len(g.played) == 0 || g.played[len(g.played)-1] != mv {
		panic("chess: move is not the most recently played one")
	}
	g.played = g.played[:len(g.played)-1]
	panic("chess: undo is not implemented")
}

// Board returns the rules engine's board for display.
func (g *Game) Board() any {
	return g.inner.Position().Board()
}

// IsValidMove reports whether m is a non-sentinel chess move.
func (g *Game) IsValidMove(m game.Move) bool {
	mv, ok := m.(*rules.Move)
	return ok && mv != nil
}

// SentinelMove returns a typed nil move.
func (g *Game) SentinelMove() game.Move {
	return (*rules.Move)(nil)
}
