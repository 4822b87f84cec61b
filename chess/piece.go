package chess

import "fmt"

// Kind is the closed set of piece variants.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
var kindNames = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

// Letter returns the uppercase single-letter abbreviation for the kind.
func (k Kind) Letter() byte {
	if int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return '?'
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Piece is an immutable colour/kind pair. Pieces do not own the board; they
// live only as values inside a Board's square mapping.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// Letter returns the serialized-form letter: uppercase for white,
// lowercase for black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		return l - 'A' + 'a'
	}
	return l
}

// String returns a readable "white knight" style description.
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a serialized-form letter into a Piece. Uppercase
// letters produce white pieces, lowercase black.
func PieceFromLetter(c byte) (Piece, error) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c = c - 'a' + 'A'
	}
	for kind, letter := range kindLetters {
		if letter == c {
			return Piece{Colour: colour, Kind: Kind(kind)}, nil
		}
	}
	return Piece{}, fmt.Errorf("piece letter %q: %w", string(c), ErrMalformedState)
}
