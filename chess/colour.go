// Package chess provides the core board-game types: colours, piece kinds,
// coordinates, the board state container, and the error taxonomy shared by
// every consumer of the engine.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is one of the two recognised colours.
func (c Colour) Valid() bool {
	return c == White || c == Black
}
