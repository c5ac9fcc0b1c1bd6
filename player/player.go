// Package player provides the participants the engine alternates between:
// a human reading moves from line-oriented input, an alpha-beta searcher,
// and a random baseline.
package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"minimax/game"
	"minimax/searcher"
)

// Player chooses the next move for one side of a game. Returning an error
// ends the session; it is how a human signals they are done (or feeds
// unparseable input) and is not treated as a failure.
type Player interface {
	NextMove(g game.Strategy) (game.Move, error)
}

// Human reads cell indices from a line-oriented text input.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHuman returns a human player prompting on out and reading moves from
// in, one integer per line.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{scanner: bufio.NewScanner(in), out: out}
}

// NextMove prompts for a move and parses one line of input. Non-numeric
// input or end of input yields an error, which the engine treats as the
// end of the session.
func (h *Human) NextMove(g game.Strategy) (game.Move, error) {
	fmt.Fprint(h.out, "Enter a move: ")
	if !h.scanner.Scan() {
		if err := h.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading move: %w", err)
		}
		return nil, io.EOF
	}
	n, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("parsing move: %w", err)
	}
	return n, nil
}

// Search picks moves with a depth-limited alpha-beta search.
type Search struct {
	searcher  *searcher.AlphaBeta
	maximizer bool
}

// NewSearch returns a searching player for one side: maximizer true plays
// the maximizing side.
func NewSearch(depth int, maximizer bool) *Search {
	return &Search{
		searcher:  searcher.New(searcher.WithMaxDepth(depth)),
		maximizer: maximizer,
	}
}

// NextMove runs the search for this player's side. BestMove's maximizing
// flag names the opposing perspective the first ply is scored from, hence
// the negation.
func (s *Search) NextMove(g game.Strategy) (game.Move, error) {
	return s.searcher.FindBestMove(g, !s.maximizer), nil
}

// Random plays a uniformly random legal move. Useful as a baseline
// opponent in experiments.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random player seeded for reproducibility.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// NextMove picks one of the available moves at random.
func (r *Random) NextMove(g game.Strategy) (game.Move, error) {
	moves := g.AvailableMoves()
	if len(moves) == 0 {
		return g.SentinelMove(), nil
	}
	return moves[r.rng.Intn(len(moves))], nil
}
