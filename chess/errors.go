package chess

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure conditions.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrInvalidCoord indicates a malformed or out-of-bounds square reference.
	ErrInvalidCoord = errors.New("invalid coordinate")

	// ErrInvalidColour indicates a colour argument outside white/black.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidMove indicates a move outside the piece's legal set, or an
	// origin square with no piece on it.
	ErrInvalidMove = errors.New("invalid move")

	// ErrNotYourTurn indicates the moved piece does not belong to the
	// active colour.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrMalformedState indicates a serialized board state that cannot
	// be decoded.
	ErrMalformedState = errors.New("malformed state")

	// ErrNoKing indicates a position with no king of the queried colour.
	// This is an internal invariant violation, not a recoverable input
	// error: well-formed positions always carry exactly one king per side.
	ErrNoKing = errors.New("no king on board")

	// ErrGameOver indicates a move was attempted after the game entered
	// its terminal state.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps a move-rejection error with the origin and destination
// squares that triggered it. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err  error // The underlying error
	From Coord // Origin square
	To   Coord // Destination square
}

// Error returns a formatted message including both squares.
func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("move %s-%s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("move %s-%s rejected", e.From, e.To)
}

// Unwrap returns the underlying error, enabling errors.Is() through the
// MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}
