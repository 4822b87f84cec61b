package chess

import (
	"errors"
	"testing"
)

func TestPieceFromLetter(t *testing.T) {
	tests := []struct {
		letter  byte
		want    Piece
		wantErr bool
	}{
		{letter: 'K', want: Piece{Colour: White, Kind: King}},
		{letter: 'q', want: Piece{Colour: Black, Kind: Queen}},
		{letter: 'P', want: Piece{Colour: White, Kind: Pawn}},
		{letter: 'n', want: Piece{Colour: Black, Kind: Knight}},
		{letter: 'x', wantErr: true},
		{letter: '1', wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			got, err := PieceFromLetter(tt.letter)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedState) {
					t.Errorf("PieceFromLetter(%q) error = %v, want ErrMalformedState", tt.letter, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("PieceFromLetter(%q) error = %v", tt.letter, err)
			}
			if got != tt.want {
				t.Errorf("PieceFromLetter(%q) = %v, want %v", tt.letter, got, tt.want)
			}
			if got.Letter() != tt.letter {
				t.Errorf("Letter() = %q, want %q", got.Letter(), tt.letter)
			}
		})
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() should swap the colours")
	}
	if !White.Valid() || !Black.Valid() || Colour(7).Valid() {
		t.Error("Valid() should accept only white and black")
	}
}
