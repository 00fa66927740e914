package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// Reference positions from https://www.chessprogramming.org/Perft_Results.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

var testFENs = map[string]string{
	"Initial":   InitialFEN,
	"Kiwipete":  kiwipeteFEN,
	"Position3": position3FEN,
	"Position4": position4FEN,
	"Position5": position5FEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
}

// mustPosition parses a FEN and fails the test on error.
func mustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

// playMoves applies coordinate moves, each of which must be legal.
func playMoves(t *testing.T, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, text := range moves {
		move := testutil.FindMove(t, LegalMoves(pos), text)
		MakeMove(pos, move)
	}
}
