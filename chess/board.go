package chess

import (
	"fmt"
	"sort"
)

// Board is the authoritative game position: a sparse mapping from occupied
// coordinates to pieces, plus the turn and clock metadata carried by the
// serialized state. Absent map entries are empty squares; a present entry is
// always a real piece.
//
// Each Board owns its metadata independently. Boards are mutated in place by
// the move executor; there is no undo, a fresh Board is constructed to reset.
type Board struct {
	squares map[Coord]Piece

	// Turn is the colour with the next move.
	Turn Colour

	// Castling and EnPassant are carried through serialization verbatim.
	// The legality engine never interprets them.
	Castling  string
	EnPassant string

	// HalfmoveClock counts moves since the last capture or pawn advance.
	HalfmoveClock int

	// FullmoveNumber increments after each black move.
	FullmoveNumber int
}

// NewBoard creates an empty board with default metadata.
func NewBoard() *Board {
	return &Board{
		squares:        make(map[Coord]Piece),
		Turn:           White,
		Castling:       "-",
		EnPassant:      "-",
		FullmoveNumber: 1,
	}
}

// OccupantAt returns the piece at the coordinate, if any.
func (b *Board) OccupantAt(c Coord) (Piece, bool) {
	p, ok := b.squares[c]
	return p, ok
}

// Place puts a piece on the coordinate, replacing any occupant.
func (b *Board) Place(c Coord, p Piece) {
	b.squares[c] = p
}

// Remove clears the coordinate.
func (b *Board) Remove(c Coord) {
	delete(b.squares, c)
}

// Relocate moves the occupant of from to to, removing any existing occupant
// at to. It returns the removed piece when the move was a capture. Relocate
// performs no legality checks; it serves both real move execution and the
// legality engine's simulation step.
func (b *Board) Relocate(from, to Coord) (Piece, bool) {
	piece, ok := b.squares[from]
	if !ok {
		return Piece{}, false
	}
	captured, wasCapture := b.squares[to]
	delete(b.squares, from)
	b.squares[to] = piece
	return captured, wasCapture
}

// OccupiedBy returns the coordinates holding pieces of the given colour, in
// ascending (rank, file) order. The stable order is what keeps move
// enumeration deterministic.
func (b *Board) OccupiedBy(colour Colour) []Coord {
	var coords []Coord
	for c, p := range b.squares {
		if p.Colour == colour {
			coords = append(coords, c)
		}
	}
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})
	return coords
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	return len(b.squares)
}

// KingPosition returns the coordinate of the given colour's king. A missing
// king is an internal invariant violation reported as ErrNoKing.
func (b *Board) KingPosition(colour Colour) (Coord, error) {
	for c, p := range b.squares {
		if p.Kind == King && p.Colour == colour {
			return c, nil
		}
	}
	return Coord{}, fmt.Errorf("%s king: %w", colour, ErrNoKing)
}

// Clone returns a deep copy of the board. The legality engine simulates
// candidate moves on clones so the live board stays untouched.
func (b *Board) Clone() *Board {
	clone := &Board{
		squares:        make(map[Coord]Piece, len(b.squares)),
		Turn:           b.Turn,
		Castling:       b.Castling,
		EnPassant:      b.EnPassant,
		HalfmoveClock:  b.HalfmoveClock,
		FullmoveNumber: b.FullmoveNumber,
	}
	for c, p := range b.squares {
		clone.squares[c] = p
	}
	return clone
}
