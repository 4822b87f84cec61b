package chess

import (
	"fmt"
	"strings"
)

// Coord identifies a board square by zero-based rank (0 = rank 1) and
// zero-based file (0 = file A).
type Coord struct {
	Rank int
	File int
}

const fileLetters = "ABCDEFGH"

// NewCoord converts an algebraic letter/digit pair into a Coord.
// The letter must be in A-H (either case) and the digit in 1-8.
func NewCoord(letter byte, digit int) (Coord, error) {
	file := strings.IndexByte(fileLetters, byte(toUpper(letter)))
	if file < 0 {
		return Coord{}, fmt.Errorf("file letter %q: %w", string(letter), ErrInvalidCoord)
	}
	if digit < 1 || digit > 8 {
		return Coord{}, fmt.Errorf("rank digit %d: %w", digit, ErrInvalidCoord)
	}
	return Coord{Rank: digit - 1, File: file}, nil
}

// ParseCoord converts two-character algebraic notation ("E2") into a Coord.
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("square %q: %w", s, ErrInvalidCoord)
	}
	return NewCoord(s[0], int(s[1]-'0'))
}

// Notation returns the algebraic notation for the coordinate, with an
// uppercase file letter. It fails with ErrInvalidCoord when the coordinate
// is out of bounds.
func (c Coord) Notation() (string, error) {
	if !c.InBounds() {
		return "", fmt.Errorf("rank %d file %d: %w", c.Rank, c.File, ErrInvalidCoord)
	}
	return string(fileLetters[c.File]) + string(byte('1'+c.Rank)), nil
}

// String returns the algebraic notation, or a rank/file dump for
// out-of-bounds coordinates. Intended for debugging and error messages.
func (c Coord) String() string {
	s, err := c.Notation()
	if err != nil {
		return fmt.Sprintf("(%d,%d)", c.Rank, c.File)
	}
	return s
}

// InBounds reports whether both components are within the 8x8 board.
func (c Coord) InBounds() bool {
	return c.Rank >= 0 && c.Rank <= 7 && c.File >= 0 && c.File <= 7
}

// Offset returns the coordinate shifted by the given rank and file deltas.
// The result may be out of bounds; callers filter with InBounds.
func (c Coord) Offset(dRank, dFile int) Coord {
	return Coord{Rank: c.Rank + dRank, File: c.File + dFile}
}

// Less defines the canonical board iteration order: ascending rank, then
// ascending file. Move enumeration and history depend on this being stable.
func (c Coord) Less(other Coord) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.File < other.File
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
