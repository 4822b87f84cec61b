package engine

import (
	"testing"

	"chesslib/chess"
	"chesslib/internal/testutil"
)

// playMoves executes a sequence of "E2 E4"-style move pairs, failing the
// test on the first rejection.
func playMoves(t *testing.T, g *Game, moves ...[2]string) {
	t.Helper()
	for _, m := range moves {
		from := testutil.MustCoord(t, m[0])
		to := testutil.MustCoord(t, m[1])
		if err := g.AttemptMove(from, to); err != nil {
			t.Fatalf("AttemptMove(%s, %s): %v", m[0], m[1], err)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	testutil.AssertEqual(t, g.FEN(), InitialFEN)
	testutil.AssertEqual(t, g.Turn(), chess.White)
	testutil.AssertFalse(t, g.InCheck().InCheck, "fresh game should not start in check")
	testutil.AssertFalse(t, g.Over())
}

func TestNewGameFromFENRejectsMalformedState(t *testing.T) {
	_, err := NewGameFromFEN("not a position")
	testutil.AssertErrorIs(t, err, chess.ErrMalformedState)
}

func TestNewGameFromFENDerivesCheckFlag(t *testing.T) {
	g, err := NewGameFromFEN("4k3/8/8/8/8/8/4R3/4K3 b - - 0 1")
	testutil.AssertNoError(t, err)
	flag := g.InCheck()
	testutil.AssertTrue(t, flag.InCheck, "loaded position has black in check")
	testutil.AssertEqual(t, flag.Colour, chess.Black)
}

func TestAttemptMoveAlternatesTurns(t *testing.T) {
	g := NewGame()
	playMoves(t, g, [2]string{"E2", "E4"})
	testutil.AssertEqual(t, g.Turn(), chess.Black)
	playMoves(t, g, [2]string{"E7", "E5"})
	testutil.AssertEqual(t, g.Turn(), chess.White)
}

func TestAttemptMoveRejectsWrongTurn(t *testing.T) {
	g := NewGame()
	before := g.FEN()

	err := g.AttemptMove(testutil.MustCoord(t, "E7"), testutil.MustCoord(t, "E5"))
	testutil.AssertErrorIs(t, err, chess.ErrNotYourTurn)
	testutil.AssertEqual(t, g.FEN(), before, "failed move must leave the state unchanged")
	testutil.AssertEqual(t, len(g.History()), 0)
}

func TestAttemptMoveRejectsIllegalDestination(t *testing.T) {
	g := NewGame()
	before := g.FEN()

	// A pawn cannot jump three squares.
	err := g.AttemptMove(testutil.MustCoord(t, "E2"), testutil.MustCoord(t, "E5"))
	testutil.AssertErrorIs(t, err, chess.ErrInvalidMove)
	testutil.AssertEqual(t, g.FEN(), before)
}

func TestAttemptMoveRejectsVacantOrigin(t *testing.T) {
	g := NewGame()
	err := g.AttemptMove(testutil.MustCoord(t, "E4"), testutil.MustCoord(t, "E5"))
	testutil.AssertErrorIs(t, err, chess.ErrInvalidMove)
}

func TestAttemptMoveRejectsSelfCheck(t *testing.T) {
	// The pinned e2 knight may not move.
	g, err := NewGameFromFEN("4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	before := g.FEN()

	err = g.AttemptMove(testutil.MustCoord(t, "E2"), testutil.MustCoord(t, "C3"))
	testutil.AssertErrorIs(t, err, chess.ErrInvalidMove)
	testutil.AssertEqual(t, g.FEN(), before)
}

func TestAttemptMoveRejectsEnemyKingCapture(t *testing.T) {
	// The rook attacks the bare black king. Capturing a king is never a
	// move; the attempt must be rejected before anything changes.
	g, err := NewGameFromFEN("4k3/4R3/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	before := g.FEN()

	err = g.AttemptMove(testutil.MustCoord(t, "E7"), testutil.MustCoord(t, "E8"))
	testutil.AssertErrorIs(t, err, chess.ErrInvalidMove)
	testutil.AssertEqual(t, g.FEN(), before, "failed move must leave the state unchanged")
	testutil.AssertEqual(t, len(g.History()), 0)
	testutil.AssertEqual(t, g.Turn(), chess.White)
}

func TestNewGameFromFENWithoutKings(t *testing.T) {
	// A kingless position decodes and loads with the check flag unset;
	// the king invariant surfaces on the first legality query.
	g, err := NewGameFromFEN("8/8/8/8/8/3P4/8/8 w - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, g.InCheck().InCheck)

	_, err = g.LegalMovesForPiece(testutil.MustCoord(t, "D3"))
	testutil.AssertErrorIs(t, err, chess.ErrNoKing)
}

func TestHalfmoveClock(t *testing.T) {
	g := NewGame()

	// A knight move increments the clock.
	playMoves(t, g, [2]string{"G1", "F3"})
	board, err := Decode(g.FEN())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.HalfmoveClock, 1)

	// A second quiet piece move keeps counting.
	playMoves(t, g, [2]string{"G8", "F6"})
	board, err = Decode(g.FEN())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.HalfmoveClock, 2)

	// A pawn move resets it.
	playMoves(t, g, [2]string{"E2", "E4"})
	board, err = Decode(g.FEN())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.HalfmoveClock, 0)
}

func TestHalfmoveClockResetsOnCapture(t *testing.T) {
	g := NewGame()
	playMoves(t, g,
		[2]string{"G1", "F3"}, // quiet, clock 1
		[2]string{"G8", "F6"}, // quiet, clock 2
		[2]string{"F3", "E5"}, // quiet, clock 3
		[2]string{"F6", "E4"}, // quiet, clock 4
		[2]string{"E5", "D7"}, // knight takes the d7 pawn, clock 0
	)
	board, err := Decode(g.FEN())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.HalfmoveClock, 0)
}

func TestFullmoveNumber(t *testing.T) {
	g := NewGame()

	playMoves(t, g, [2]string{"E2", "E4"})
	board, err := Decode(g.FEN())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.FullmoveNumber, 1, "white's move does not increment")

	playMoves(t, g, [2]string{"E7", "E5"})
	board, err = Decode(g.FEN())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.FullmoveNumber, 2, "black's move increments")
}

func TestMoveHistoryNotation(t *testing.T) {
	g := NewGame()
	playMoves(t, g,
		[2]string{"E2", "E4"},
		[2]string{"D7", "D5"},
		[2]string{"E4", "D5"}, // pawn takes pawn
		[2]string{"D8", "D5"}, // queen takes pawn back
		[2]string{"G1", "F3"}, // quiet knight move
	)

	want := []string{"e4", "d5", "xd5", "Qxd5", "Nf3"}
	testutil.AssertEqual(t, g.History(), want)
}

func TestCapturedPiecesLog(t *testing.T) {
	g := NewGame()
	playMoves(t, g,
		[2]string{"E2", "E4"},
		[2]string{"D7", "D5"},
		[2]string{"E4", "D5"},
		[2]string{"D8", "D5"},
	)

	testutil.AssertEqual(t, g.CapturedPieces(chess.White),
		[]chess.Piece{{Colour: chess.Black, Kind: chess.Pawn}})
	testutil.AssertEqual(t, g.CapturedPieces(chess.Black),
		[]chess.Piece{{Colour: chess.White, Kind: chess.Pawn}})
}

func TestCheckFlagAfterMove(t *testing.T) {
	// Scholar's-mate style queen sortie: after Qh5+ black is flagged.
	g, err := NewGameFromFEN("rnbqkbnr/ppppp1pp/8/5p2/8/4P3/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	testutil.AssertNoError(t, err)

	playMoves(t, g, [2]string{"D1", "H5"})
	flag := g.InCheck()
	testutil.AssertTrue(t, flag.InCheck, "black should be in check after Qh5")
	testutil.AssertEqual(t, flag.Colour, chess.Black)

	status, err := g.Status()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, StatusOngoing, "g6 still blocks the check")
}

func TestCheckmateDetectionThroughGame(t *testing.T) {
	// Fool's mate, played out move by move.
	g := NewGame()
	playMoves(t, g,
		[2]string{"F2", "F3"},
		[2]string{"E7", "E5"},
		[2]string{"G2", "G4"},
		[2]string{"D8", "H4"},
	)

	flag := g.InCheck()
	testutil.AssertTrue(t, flag.InCheck)
	testutil.AssertEqual(t, flag.Colour, chess.White)

	status, err := g.Status()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, status, StatusCheckmate)
}

func TestEndGameBlocksFurtherMoves(t *testing.T) {
	g := NewGame()
	g.EndGame()
	testutil.AssertTrue(t, g.Over())

	err := g.AttemptMove(testutil.MustCoord(t, "E2"), testutil.MustCoord(t, "E4"))
	testutil.AssertErrorIs(t, err, chess.ErrGameOver)
	testutil.AssertEqual(t, g.FEN(), InitialFEN)
}

func TestFENRoundTripThroughGame(t *testing.T) {
	g := NewGame()
	playMoves(t, g,
		[2]string{"E2", "E4"},
		[2]string{"C7", "C5"},
		[2]string{"G1", "F3"},
	)

	fen := g.FEN()
	board, err := Decode(fen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, Encode(board), fen, "decode/encode must reproduce the exported state")

	// A game reloaded from the export continues identically.
	reloaded, err := NewGameFromFEN(fen)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, reloaded.Turn(), chess.Black)
	playMoves(t, reloaded, [2]string{"D7", "D6"})
}

func TestOccupantAt(t *testing.T) {
	g := NewGame()
	piece, ok := g.OccupantAt(testutil.MustCoord(t, "D1"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, piece, chess.Piece{Colour: chess.White, Kind: chess.Queen})

	_, ok = g.OccupantAt(testutil.MustCoord(t, "D4"))
	testutil.AssertFalse(t, ok)
}

func TestLegalMovesForPieceThroughGame(t *testing.T) {
	g := NewGame()
	legal, err := g.LegalMovesForPiece(testutil.MustCoord(t, "B1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, legal, coords(t, "A3", "C3"))
}
