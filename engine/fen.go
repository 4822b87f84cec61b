// Package engine provides move generation, legality filtering, check and
// checkmate detection, move execution, and the FEN state codec on top of the
// chess package's board types.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"chesslib/chess"
)

// InitialFEN is the serialized form of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a 6-field FEN string into a board. Any structural problem
// (wrong field count, a rank that does not span 8 files, an unrecognised
// piece letter, non-integer clocks) fails with chess.ErrMalformedState and
// no partial board is produced.
func Decode(fen string) (*chess.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("expected 6 fields, got %d: %w", len(fields), chess.ErrMalformedState)
	}

	board := chess.NewBoard()

	if err := decodeRanks(board, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		board.Turn = chess.White
	case "b":
		board.Turn = chess.Black
	default:
		return nil, fmt.Errorf("active colour %q: %w", fields[1], chess.ErrMalformedState)
	}

	// Castling availability and the en-passant target are carried through
	// verbatim; the legality engine never reads them.
	board.Castling = fields[2]
	board.EnPassant = fields[3]

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("halfmove clock %q: %w", fields[4], chess.ErrMalformedState)
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fullmove number %q: %w", fields[5], chess.ErrMalformedState)
	}
	board.HalfmoveClock = halfmove
	board.FullmoveNumber = fullmove

	return board, nil
}

// decodeRanks parses the piece-placement field: 8 '/'-separated ranks, top
// rank first, digits standing for runs of empty files.
func decodeRanks(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("expected 8 ranks, got %d: %w", len(ranks), chess.ErrMalformedState)
	}

	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, err := chess.PieceFromLetter(c)
			if err != nil {
				return err
			}
			if file > 7 {
				return fmt.Errorf("rank %d overflows 8 files: %w", rank+1, chess.ErrMalformedState)
			}
			board.Place(chess.Coord{Rank: rank, File: file}, piece)
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d spans %d files: %w", rank+1, file, chess.ErrMalformedState)
		}
	}
	return nil
}

// Encode serializes a board into canonical 6-field FEN form: ranks 8 down
// to 1, files A to H, empty runs as digits. Decode(Encode(b)) reproduces
// b's occupancy and metadata exactly.
func Encode(board *chess.Board) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		emptyRun := 0
		for file := 0; file < 8; file++ {
			piece, ok := board.OccupantAt(chess.Coord{Rank: rank, File: file})
			if !ok {
				emptyRun++
				continue
			}
			if emptyRun > 0 {
				sb.WriteByte(byte('0' + emptyRun))
				emptyRun = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyRun > 0 {
			sb.WriteByte(byte('0' + emptyRun))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if board.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	fmt.Fprintf(&sb, " %s %s %d %d", board.Castling, board.EnPassant, board.HalfmoveClock, board.FullmoveNumber)

	return sb.String()
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := Decode(InitialFEN)
	if err != nil {
		panic("engine: initial position failed to decode: " + err.Error())
	}
	return board
}
