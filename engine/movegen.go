package engine

import "chesslib/chess"

// Offset tables for the fixed-pattern pieces.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalDestinations returns the squares the piece at from could move
// to, ignoring whether the move would expose its own king. The result is
// in-bounds, never contains the origin, and never contains a square occupied
// by a same-colour piece. Generation order is fixed per kind, which keeps
// the legal-move enumeration deterministic.
//
// Returns nil when from is empty.
func PseudoLegalDestinations(b *chess.Board, from chess.Coord) []chess.Coord {
	piece, ok := b.OccupantAt(from)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnDestinations(b, from, piece.Colour)
	case chess.Knight:
		return offsetDestinations(b, from, piece.Colour, knightOffsets)
	case chess.King:
		return offsetDestinations(b, from, piece.Colour, kingOffsets)
	case chess.Bishop:
		return slidingDestinations(b, from, piece.Colour, diagonalDirs[:])
	case chess.Rook:
		return slidingDestinations(b, from, piece.Colour, straightDirs[:])
	case chess.Queen:
		dests := slidingDestinations(b, from, piece.Colour, diagonalDirs[:])
		return append(dests, slidingDestinations(b, from, piece.Colour, straightDirs[:])...)
	}
	return nil
}

// pawnDestinations generates pawn pushes and diagonal captures. En passant
// and promotion are not modelled.
func pawnDestinations(b *chess.Board, from chess.Coord, colour chess.Colour) []chess.Coord {
	dir := 1
	startRank := 1
	if colour == chess.Black {
		dir = -1
		startRank = 6
	}

	var dests []chess.Coord

	// Single push, then double push from the start rank.
	oneAhead := from.Offset(dir, 0)
	if oneAhead.InBounds() {
		if _, occupied := b.OccupantAt(oneAhead); !occupied {
			dests = append(dests, oneAhead)
			twoAhead := from.Offset(2*dir, 0)
			if from.Rank == startRank {
				if _, occupied := b.OccupantAt(twoAhead); !occupied {
					dests = append(dests, twoAhead)
				}
			}
		}
	}

	// Diagonal captures onto enemy-occupied squares only.
	for _, dFile := range [2]int{-1, 1} {
		target := from.Offset(dir, dFile)
		if !target.InBounds() {
			continue
		}
		if occupant, ok := b.OccupantAt(target); ok && occupant.Colour != colour {
			dests = append(dests, target)
		}
	}
	return dests
}

// offsetDestinations generates moves for the fixed-pattern pieces
// (knight, king).
func offsetDestinations(b *chess.Board, from chess.Coord, colour chess.Colour, offsets [8][2]int) []chess.Coord {
	var dests []chess.Coord
	for _, off := range offsets {
		target := from.Offset(off[0], off[1])
		if !target.InBounds() {
			continue
		}
		if occupant, ok := b.OccupantAt(target); ok && occupant.Colour == colour {
			continue
		}
		dests = append(dests, target)
	}
	return dests
}

// slidingDestinations walks each ray until it leaves the board or hits a
// piece. An enemy blocker is included as a capture square.
func slidingDestinations(b *chess.Board, from chess.Coord, colour chess.Colour, dirs [][2]int) []chess.Coord {
	var dests []chess.Coord
	for _, dir := range dirs {
		target := from.Offset(dir[0], dir[1])
		for target.InBounds() {
			occupant, occupied := b.OccupantAt(target)
			if occupied {
				if occupant.Colour != colour {
					dests = append(dests, target)
				}
				break
			}
			dests = append(dests, target)
			target = target.Offset(dir[0], dir[1])
		}
	}
	return dests
}
