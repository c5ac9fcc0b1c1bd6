// Package engine runs turn-based games between two players over any
// game.Strategy, printing the position between turns. It is a thin driver:
// all search logic lives in the searcher package.
package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"minimax/game"
	"minimax/player"
	"minimax/searcher"
	"minimax/tictactoe"
)

// Engine alternates turns between two players on a shared game state,
// starting with the maximizer.
type Engine struct {
	Game      game.Strategy
	Maximizer player.Player
	Minimizer player.Player
	Out       io.Writer
}

// New returns an engine writing board output to out. A nil out defaults to
// stdout.
func New(g game.Strategy, maximizer, minimizer player.Player, out io.Writer) *Engine {
	if out == nil {
		out = os.Stdout
	}
	return &Engine{
		Game:      g,
		Maximizer: maximizer,
		Minimizer: minimizer,
		Out:       out,
	}
}

// Run plays until the game is complete or a player ends the session, and
// returns the winner's identifier ("" for a tie or an abandoned session).
func (e *Engine) Run() string {
	session := uuid.NewString()
	logger := log.With().Str("session", session).Logger()
	logger.Info().Msg("session starting")

	maximizer := true
	for {
		fmt.Fprintf(e.Out, "Board:\n%s\n", e.render())

		if e.Game.IsGameComplete() {
			e.announce()
			logger.Info().Str("winner", e.Game.Winner()).Msg("session over")
			return e.Game.Winner()
		}

		current := e.Maximizer
		if !maximizer {
			current = e.Minimizer
		}

		m, err := current.NextMove(e.Game)
		if err != nil {
			fmt.Fprintln(e.Out, "Session ended.")
			logger.Info().AnErr("cause", err).Msg("session ended by input")
			return ""
		}
		if m == e.Game.SentinelMove() {
			e.announce()
			logger.Info().Str("winner", e.Game.Winner()).Msg("session over")
			return e.Game.Winner()
		}
		if !e.Game.IsValidMove(m) {
			fmt.Fprintf(e.Out, "Move %v is not legal. Session ended.\n", m)
			logger.Warn().Msgf("illegal move %v, ending session", m)
			return ""
		}

		fmt.Fprintf(e.Out, "Move played: %v\n", m)
		e.Game.Play(m, maximizer)
		logger.Info().Bool("maximizer", maximizer).Msgf("move played: %v", m)
		maximizer = !maximizer
	}
}

func (e *Engine) announce() {
	fmt.Fprintln(e.Out, "Game is complete.")
	if e.Game.IsGameTied() {
		fmt.Fprintln(e.Out, "Game tied!")
	} else {
		fmt.Fprintf(e.Out, "%s wins!\n", e.Game.Winner())
	}
}

func (e *Engine) render() string {
	if s, ok := e.Game.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v\n", e.Game.Board())
}

// PlayTicTacToe runs a REPL tic-tac-toe game against the computer on a
// size-by-size board at the default search depth, which keeps the engine
// reasonably fast.
func PlayTicTacToe(size int) {
	PlayTicTacToeDepth(size, searcher.DefaultDepth)
}

// PlayTicTacToeDepth is PlayTicTacToe at a chosen search depth. The human
// plays the maximizer and moves first; the higher the depth, the longer the
// engine takes and the more accurately it plays.
func PlayTicTacToeDepth(size, depth int) {
	g := tictactoe.New(size)
	if size > 0 {
		cell := exampleCell(size)
		fmt.Printf("Moves are cell indices: e.g. %d is (row %d, col %d) on this board.\n", cell, cell/size, cell%size)
	}
	e := New(g, player.NewHuman(os.Stdin, os.Stdout), player.NewSearch(depth, false), os.Stdout)
	e.Run()
}

// exampleCell picks a cell index for the REPL hint that exists on a
// size-by-size board.
func exampleCell(size int) int {
	cell := size*size - 2
	if cell < 0 {
		cell = 0
	}
	return cell
}
