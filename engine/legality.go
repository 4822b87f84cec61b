package engine

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chesslib/chess"
)

// Move is an origin/destination pair produced by move enumeration.
type Move struct {
	From chess.Coord
	To   chess.Coord
}

// AllPseudoLegalMoves enumerates every pseudo-legal move for the given
// colour: for each occupied square in ascending (rank, file) order, the
// piece catalog's destinations in generation order, tagged with the origin.
// Self-check is not considered here.
func AllPseudoLegalMoves(b *chess.Board, colour chess.Colour) ([]Move, error) {
	if !colour.Valid() {
		return nil, fmt.Errorf("colour %d: %w", colour, chess.ErrInvalidColour)
	}
	var moves []Move
	for _, from := range b.OccupiedBy(colour) {
		for _, to := range PseudoLegalDestinations(b, from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves, nil
}

// IsMoveSafe reports whether moving from->to would leave the mover's own
// king out of check. The candidate is simulated on an isolated clone; the
// live board is never touched.
func IsMoveSafe(b *chess.Board, from, to chess.Coord) (bool, error) {
	piece, ok := b.OccupantAt(from)
	if !ok {
		return false, &chess.MoveError{Err: chess.ErrInvalidMove, From: from, To: to}
	}
	trial := b.Clone()
	trial.Relocate(from, to)
	inCheck, err := IsInCheck(trial, piece.Colour)
	if err != nil {
		return false, err
	}
	return !inCheck, nil
}

// LegalMovesForPiece returns the destinations of the piece at from that do
// not leave its own king attacked, in catalog generation order.
//
// Candidates are independent simulations on private clones, so they are
// evaluated concurrently. Results are merged by candidate index, never by
// completion order, so the output is identical to a serial pass.
func LegalMovesForPiece(b *chess.Board, from chess.Coord) ([]chess.Coord, error) {
	if _, ok := b.OccupantAt(from); !ok {
		return nil, fmt.Errorf("no piece at %s: %w", from, chess.ErrInvalidMove)
	}

	candidates := PseudoLegalDestinations(b, from)
	if len(candidates) == 0 {
		return nil, nil
	}

	safe := make([]bool, len(candidates))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, to := range candidates {
		i, to := i, to
		g.Go(func() error {
			ok, err := IsMoveSafe(b, from, to)
			if err != nil {
				return err
			}
			safe[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var legal []chess.Coord
	for i, to := range candidates {
		if safe[i] {
			legal = append(legal, to)
		}
	}
	return legal, nil
}

// LegalMovesForSide maps each origin square of the given colour to its legal
// destinations, omitting pieces with no legal moves.
func LegalMovesForSide(b *chess.Board, colour chess.Colour) (map[chess.Coord][]chess.Coord, error) {
	if !colour.Valid() {
		return nil, fmt.Errorf("colour %d: %w", colour, chess.ErrInvalidColour)
	}
	result := make(map[chess.Coord][]chess.Coord)
	for _, from := range b.OccupiedBy(colour) {
		legal, err := LegalMovesForPiece(b, from)
		if err != nil {
			return nil, err
		}
		if len(legal) > 0 {
			result[from] = legal
		}
	}
	return result, nil
}
