package engine

import "chesslib/chess"

// CheckFlag records which side, if any, is currently in check. It is derived
// state, recomputed after every executed move, and never serialized.
type CheckFlag struct {
	Colour  chess.Colour
	InCheck bool
}

// GameStatus classifies a position after check evaluation.
type GameStatus int

const (
	// StatusOngoing covers every position that is not a decided checkmate,
	// including check positions with an escape and stalemate positions.
	// Stalemate and draw rules are not evaluated.
	StatusOngoing GameStatus = iota

	// StatusCheckmate means the flagged side is in check with no legal move.
	StatusCheckmate
)

// String returns the status name.
func (s GameStatus) String() string {
	if s == StatusCheckmate {
		return "checkmate"
	}
	return "ongoing"
}

// EvaluateStatus decides whether the flagged side is checkmated. A side in
// check with zero legal moves is mated; any escaping move, or no check at
// all, leaves the game ongoing.
func EvaluateStatus(b *chess.Board, flag CheckFlag) (GameStatus, error) {
	if !flag.InCheck {
		return StatusOngoing, nil
	}
	legal, err := LegalMovesForSide(b, flag.Colour)
	if err != nil {
		return StatusOngoing, err
	}
	if len(legal) == 0 {
		return StatusCheckmate, nil
	}
	return StatusOngoing, nil
}
