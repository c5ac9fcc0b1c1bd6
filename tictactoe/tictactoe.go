// Package tictactoe implements an n-by-n grid game satisfying the
// game.Strategy contract. One player places 'o' and the other places 'x',
// aiming for a full row, column, or diagonal of their own symbol.
package tictactoe

import (
	"strings"

	"minimax/game"
)

const (
	defaultEmpty     = '-'
	defaultMaximizer = 'o'
	defaultMinimizer = 'x'
)

type option func(*Game)

// Game holds the mutable position of one tic-tac-toe game. Cells is a
// single row-major slice of length Size*Size. A move is an int index into
// Cells.
type Game struct {
	Cells     []byte
	Size      int
	Empty     byte
	Maximizer byte
	Minimizer byte
}

// WithSymbols overrides the symbols used for the maximizing player, the
// minimizing player, and empty cells.
func WithSymbols(maximizer, minimizer, empty byte) option {
	return func(g *Game) {
		g.Maximizer = maximizer
		g.Minimizer = minimizer
		g.Empty = empty
	}
}

// New creates a fresh game on a size-by-size board.
func New(size int, options ...option) *Game {
	g := &Game{
		Size:      size,
		Empty:     defaultEmpty,
		Maximizer: defaultMaximizer,
		Minimizer: defaultMinimizer,
	}
	for _, option := range options {
		option(g)
	}
	g.Cells = make([]byte, size*size)
	for i := range g.Cells {
		g.Cells[i] = g.Empty
	}
	return g
}

var _ game.Strategy = (*Game)(nil)

// Evaluate scores the position for the maximizer: 0 for a tie, 1000 when
// the maximizer has a winning line, -1000 otherwise (including positions
// that are still undecided).
func (g *Game) Evaluate() float64 {
	if g.IsGameTied() {
		return 0
	}
	if g.winnerSymbol() == g.Maximizer {
		return 1000
	}
	return -1000
}

// Winner returns the winning player's symbol, or "" if no line is complete.
func (g *Game) Winner() string {
	w := g.winnerSymbol()
	if w == g.Empty {
		return ""
	}
	return string(w)
}

// IsGameTied reports whether the board is full with no winning line.
func (g *Game) IsGameTied() bool {
	return g.winnerSymbol() == g.Empty && len(g.AvailableMoves()) == 0
}

// IsGameComplete reports whether a line is complete or the board is full.
func (g *Game) IsGameComplete() bool {
	return len(g.AvailableMoves()) == 0 || g.winnerSymbol() != g.Empty
}

// AvailableMoves returns the indices of all empty cells in ascending order.
func (g *Game) AvailableMoves() []game.Move {
	var moves []game.Move
	for i := range g.Cells {
		if g.Cells[i] == g.Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Play puts the given side's symbol on cell m.
func (g *Game) Play(m game.Move, maximizer bool) {
	if maximizer {
		g.Cells[m.(int)] = g.Maximizer
	} else {
		g.Cells[m.(int)] = g.Minimizer
	}
}

// Clear empties cell m, undoing a previous Play.
func (g *Game) Clear(m game.Move) {
	g.Cells[m.(int)] = g.Empty
}

// Board returns the underlying cell slice.
func (g *Game) Board() any {
	return g.Cells
}

// IsValidMove reports whether m is an empty cell on the board.
func (g *Game) IsValidMove(m game.Move) bool {
	idx, ok := m.(int)
	return ok && idx >= 0 && idx < len(g.Cells) && g.Cells[idx] == g.Empty
}

// SentinelMove returns an index just past the board, never a legal move.
func (g *Game) SentinelMove() game.Move {
	return g.Size*g.Size + 1
}

// String renders the board one row per line.
func (g *Game) String() string {
	var b strings.Builder
	for row := 0; row < g.Size; row++ {
		b.Write(g.Cells[row*g.Size : (row+1)*g.Size])
		b.WriteByte('\n')
	}
	return b.String()
}

// winnerSymbol returns the symbol owning a complete line, or the empty
// symbol when no line is complete. Diagonals are checked first, then rows,
// then columns.
func (g *Game) winnerSymbol() byte {
	if w := g.checkDiagonals(); w != g.Empty {
		return w
	}
	if w := g.checkRows(); w != g.Empty {
		return w
	}
	return g.checkCols()
}

func (g *Game) checkDiagonals() byte {
	if g.checkDiagonal(g.Maximizer, true) || g.checkDiagonal(g.Maximizer, false) {
		return g.Maximizer
	}
	if g.checkDiagonal(g.Minimizer, true) || g.checkDiagonal(g.Minimizer, false) {
		return g.Minimizer
	}
	return g.Empty
}

func (g *Game) checkRows() byte {
	for row := 0; row < g.Size; row++ {
		if g.checkRow(g.Maximizer, row) {
			return g.Maximizer
		}
		if g.checkRow(g.Minimizer, row) {
			return g.Minimizer
		}
	}
	return g.Empty
}

func (g *Game) checkCols() byte {
	for col := 0; col < g.Size; col++ {
		if g.checkCol(g.Maximizer, col) {
			return g.Maximizer
		}
		if g.checkCol(g.Minimizer, col) {
			return g.Minimizer
		}
	}
	return g.Empty
}

func (g *Game) checkRow(sym byte, row int) bool {
	for col := 0; col < g.Size; col++ {
		if g.Cells[row*g.Size+col] != sym {
			return false
		}
	}
	return true
}

func (g *Game) checkCol(sym byte, col int) bool {
	for row := 0; row < g.Size; row++ {
		if g.Cells[row*g.Size+col] != sym {
			return false
		}
	}
	return true
}

// main is the top-left to bottom-right diagonal.
func (g *Game) checkDiagonal(sym byte, main bool) bool {
	for i := 0; i < g.Size; i++ {
		var idx int
		if main {
			idx = g.Size*i + i
		} else {
			idx = g.Size*(g.Size-1-i) + i
		}
		if g.Cells[idx] != sym {
			return false
		}
	}
	return true
}
