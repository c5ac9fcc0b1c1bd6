package game

// Move identifies a legal transition in a concrete game. Move values are
// opaque to the search engine: it only stores them, passes them back to
// Play/Clear, and compares them with ==, so implementations must use
// comparable values. Every game reserves one sentinel value that is never a
// legal move (see Strategy.SentinelMove).
type Move any

// Strategy is the capability set any two-player, zero-sum,
// perfect-information game must provide to be searchable. The engine
// consumes a game exclusively through this interface and never inspects
// concrete internals.
//
// The maximizer flag passed to Play selects which side a move is applied
// for: true plays the maximizing player, false the minimizing player.
//
// A Strategy instance is exclusively owned by the caller for the duration
// of a search: the engine mutates it in place (play, recurse, undo) and
// returns it structurally unchanged, relying on Clear being an exact
// inverse of the most recent Play.
type Strategy interface {
	// Evaluate returns a static score for the current position, oriented so
	// higher favors the maximizer. Exactly 0 is reserved for drawn/neutral
	// positions; the mate-distance adjustment in the searcher depends on
	// that convention.
	Evaluate() float64

	// Winner returns the winning player's identifier if the game has a
	// decisive outcome, or "" otherwise.
	Winner() string

	// IsGameTied reports whether the game is over with no winner.
	IsGameTied() bool

	// IsGameComplete reports whether no further moves are meaningful: a
	// decisive outcome exists or no legal moves remain.
	IsGameComplete() bool

	// AvailableMoves returns the legal moves from the current position in
	// generation order. Order is significant: the searcher resolves equal
	// scores to the last move generated. Empty when the game is complete.
	AvailableMoves() []Move

	// Play mutates the state by applying m for the given side. Callers must
	// only pass moves present in the most recent AvailableMoves result for
	// this exact state.
	Play(m Move, maximizer bool)

	// Clear mutates the state by undoing the most recently applied move,
	// which must equal m. Clear calls must mirror Play calls in strict
	// last-in-first-out order; anything else is a programming error and the
	// contract does not defend against it.
	Clear(m Move)

	// Board exposes the underlying position representation for display and
	// inspection only. The searcher never touches it.
	Board() any

	// IsValidMove reports whether m is currently legal.
	IsValidMove(m Move) bool

	// SentinelMove returns this game's distinguished never-playable move,
	// used to signal that no move was chosen.
	SentinelMove() Move
}
