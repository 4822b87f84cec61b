package engine

import (
	"fmt"

	"chesslib/chess"
)

// IsInCheck reports whether the given colour's king is attacked: true iff
// the enemy's pseudo-legal destinations include the king's square.
func IsInCheck(b *chess.Board, colour chess.Colour) (bool, error) {
	if !colour.Valid() {
		return false, fmt.Errorf("colour %d: %w", colour, chess.ErrInvalidColour)
	}
	kingPos, err := b.KingPosition(colour)
	if err != nil {
		return false, err
	}
	enemyMoves, err := AllPseudoLegalMoves(b, colour.Opposite())
	if err != nil {
		return false, err
	}
	for _, move := range enemyMoves {
		if move.To == kingPos {
			return true, nil
		}
	}
	return false, nil
}
