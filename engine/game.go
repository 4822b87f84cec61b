package engine

import (
	"fmt"
	"strings"
	"sync"

	"chesslib/chess"
)

// Game is the move executor: it owns a live board plus the bookkeeping the
// board alone does not carry (movetext history, captured pieces, the derived
// check flag, and the terminal state).
//
// A Game serializes access internally: AttemptMove holds the write lock for
// its full validate-and-mutate sequence, and every query takes a read lock,
// so legality queries never observe a half-applied move.
type Game struct {
	mu       sync.RWMutex
	board    *chess.Board
	history  []string
	captured map[chess.Colour][]chess.Piece
	check    CheckFlag
	over     bool
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	game, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		panic("engine: initial position failed to decode: " + err.Error())
	}
	return game
}

// NewGameFromFEN creates a game from a serialized state. The initial check
// flag is derived from the position so that a loaded in-check position
// reports correctly before any move is made. A decodable position without
// kings still loads with the flag unset; ErrNoKing surfaces on the first
// legality query instead of failing construction.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := Decode(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board: board,
		captured: map[chess.Colour][]chess.Piece{
			chess.White: nil,
			chess.Black: nil,
		},
	}
	if inCheck, err := IsInCheck(board, board.Turn); err == nil && inCheck {
		g.check = CheckFlag{Colour: board.Turn, InCheck: true}
	}
	return g, nil
}

// AttemptMove validates and executes one move for the active colour.
//
// Failures (no piece at from, wrong colour, destination outside the legal
// set, game already over) leave the game completely unchanged: validation
// finishes before the first mutation.
func (g *Game) AttemptMove(from, to chess.Coord) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.over {
		return &chess.MoveError{Err: chess.ErrGameOver, From: from, To: to}
	}

	piece, ok := g.board.OccupantAt(from)
	if !ok {
		return &chess.MoveError{Err: chess.ErrInvalidMove, From: from, To: to}
	}
	if piece.Colour != g.board.Turn {
		return &chess.MoveError{Err: chess.ErrNotYourTurn, From: from, To: to}
	}

	legal, err := LegalMovesForPiece(g.board, from)
	if err != nil {
		return err
	}
	if !containsCoord(legal, to) {
		return &chess.MoveError{Err: chess.ErrInvalidMove, From: from, To: to}
	}

	// Both kings must still be on the board for the post-move check
	// recomputation, so a move onto the enemy king's square is rejected
	// here. Verified before mutating so a malformed position cannot leave
	// the game half-updated.
	enemy := piece.Colour.Opposite()
	enemyKing, err := g.board.KingPosition(enemy)
	if err != nil {
		return err
	}
	if to == enemyKing {
		return &chess.MoveError{Err: chess.ErrInvalidMove, From: from, To: to}
	}

	captured, wasCapture := g.board.Relocate(from, to)
	if wasCapture {
		g.captured[piece.Colour] = append(g.captured[piece.Colour], captured)
	}

	g.board.Turn = enemy
	if piece.Colour == chess.Black {
		g.board.FullmoveNumber++
	}
	g.board.HalfmoveClock++
	if piece.Kind == chess.Pawn || wasCapture {
		g.board.HalfmoveClock = 0
	}

	g.history = append(g.history, movetext(piece, to, wasCapture))

	inCheck, err := IsInCheck(g.board, enemy)
	if err != nil {
		return err
	}
	if inCheck {
		g.check = CheckFlag{Colour: enemy, InCheck: true}
	} else {
		g.check = CheckFlag{}
	}
	return nil
}

// movetext builds a history record: the piece abbreviation (empty for
// pawns), an 'x' marker for captures, and the lowercase destination square.
func movetext(piece chess.Piece, to chess.Coord, capture bool) string {
	var sb strings.Builder
	if piece.Kind != chess.Pawn {
		sb.WriteByte(piece.Kind.Letter())
	}
	if capture {
		sb.WriteByte('x')
	}
	notation, err := to.Notation()
	if err != nil {
		// Unreachable: to came from the legal-move set.
		notation = fmt.Sprintf("(%d,%d)", to.Rank, to.File)
	}
	sb.WriteString(strings.ToLower(notation))
	return sb.String()
}

// EndGame moves the game into its terminal state. The engine never calls
// this itself; the consumer decides, typically after observing checkmate.
func (g *Game) EndGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.over = true
}

// Over reports whether the game has been ended.
func (g *Game) Over() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.over
}

// OccupantAt returns the piece at the coordinate, if any.
func (g *Game) OccupantAt(c chess.Coord) (chess.Piece, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.OccupantAt(c)
}

// Turn returns the active colour.
func (g *Game) Turn() chess.Colour {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Turn
}

// LegalMovesForPiece returns the legal destinations for the piece at from.
func (g *Game) LegalMovesForPiece(from chess.Coord) ([]chess.Coord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return LegalMovesForPiece(g.board, from)
}

// InCheck returns the stored check flag for the side to move.
func (g *Game) InCheck() CheckFlag {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.check
}

// Status evaluates the stored check flag for checkmate.
func (g *Game) Status() (GameStatus, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return EvaluateStatus(g.board, g.check)
}

// History returns a copy of the movetext records, oldest first.
func (g *Game) History() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.history...)
}

// CapturedPieces returns a copy of the pieces the given colour has captured,
// in capture order.
func (g *Game) CapturedPieces(colour chess.Colour) []chess.Piece {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]chess.Piece(nil), g.captured[colour]...)
}

// FEN serializes the current position.
func (g *Game) FEN() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Encode(g.board)
}

func containsCoord(coords []chess.Coord, c chess.Coord) bool {
	for _, candidate := range coords {
		if candidate == c {
			return true
		}
	}
	return false
}
