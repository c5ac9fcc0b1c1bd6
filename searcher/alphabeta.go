// Package searcher implements depth-limited minimax search with alpha-beta
// pruning over anything satisfying the game.Strategy contract.
//
// The search is single-threaded and purely recursive: it borrows one
// mutable game instance, explores by playing a move, recursing, and undoing
// the move, and leaves the instance structurally unchanged when it returns.
// Recursion depth is bounded only by maxDepth and the branching factor;
// there is no guard against native stack exhaustion for very large boards
// or depths.
package searcher

import (
	"math"

	"minimax/game"
)

// DefaultDepth is the search depth used when none is configured. It keeps
// the engine reasonably fast on a standard 3x3 board.
const DefaultDepth = 6

type option func(*AlphaBeta)

// AlphaBeta is a reusable searcher with a fixed maximum depth.
type AlphaBeta struct {
	maxDepth int
}

// WithMaxDepth sets the search depth in plies.
func WithMaxDepth(depth int) option {
	return func(ab *AlphaBeta) {
		ab.maxDepth = depth
	}
}

// New returns an alpha-beta searcher configured by the given options.
func New(options ...option) *AlphaBeta {
	ab := &AlphaBeta{maxDepth: DefaultDepth}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// FindBestMove runs BestMove at the configured depth.
func (ab *AlphaBeta) FindBestMove(g game.Strategy, maximizing bool) game.Move {
	return BestMove(g, ab.maxDepth, maximizing)
}

// BestMove selects a move from the current position by scoring every
// available move with a depth-limited alpha-beta search.
//
// The maximizing flag names the perspective the first recursive ply is
// scored from: each candidate move is applied for the opposite side, so
// passing maximizing=true selects a move for the minimizing player and
// vice versa. Candidates are compared non-strictly, so of several
// equal-scoring moves the last one in generation order wins.
//
// If the game is already complete, the sentinel move is returned without
// enumerating any moves. Otherwise the result is always a legal move of
// the input position.
func BestMove(g game.Strategy, maxDepth int, maximizing bool) game.Move {
	best := g.SentinelMove()
	if g.IsGameComplete() {
		return best
	}

	alpha, beta := math.Inf(-1), math.Inf(1)

	if maximizing {
		bestScore := math.Inf(1)
		for _, m := range g.AvailableMoves() {
			g.Play(m, !maximizing)
			score := Score(g, maxDepth, maximizing, alpha, beta, maxDepth)
			g.Clear(m)
			if score <= bestScore {
				bestScore = score
				best = m
			}
		}
		return best
	}

	bestScore := math.Inf(-1)
	for _, m := range g.AvailableMoves() {
		g.Play(m, !maximizing)
		score := Score(g, maxDepth, maximizing, alpha, beta, maxDepth)
		g.Clear(m)
		if score >= bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}

// Score computes the minimax value of the current position, searching depth
// plies ahead with alpha-beta pruning. At the leaves (depth exhausted, game
// complete, or no moves available) it returns the game's static evaluation
// unmodified.
//
// Nonzero values are shifted by the number of plies already searched
// (maxDepth-depth): subtracted on maximizing levels and added on minimizing
// ones. Wins found sooner therefore score strictly better than wins found
// deeper, and faster losses score worse than slower ones. A value of
// exactly 0 denotes a draw and is returned unshifted.
//
// The pruning cutoff is checked after the candidate move has been undone,
// so an early exit never leaves the state mutated.
func Score(g game.Strategy, depth int, maximizing bool, alpha, beta float64, maxDepth int) float64 {
	avail := g.AvailableMoves()
	if depth == 0 || g.IsGameComplete() || len(avail) == 0 {
		return g.Evaluate()
	}

	if maximizing {
		value := math.Inf(-1)
		for _, m := range avail {
			g.Play(m, true)
			score := Score(g, depth-1, false, alpha, beta, maxDepth)
			value = math.Max(value, score)
			alpha = math.Max(alpha, score)
			g.Clear(m)
			if beta <= alpha {
				break
			}
		}
		if value != 0 {
			return value - float64(maxDepth-depth)
		}
		return value
	}

	value := math.Inf(1)
	for _, m := range avail {
		g.Play(m, false)
		score := Score(g, depth-1, true, alpha, beta, maxDepth)
		value = math.Min(value, score)
		beta = math.Min(beta, score)
		g.Clear(m)
		if beta <= alpha {
			break
		}
	}
	if value != 0 {
		return value + float64(maxDepth-depth)
	}
	return value
}
