package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestAttacks_InitialPosition(t *testing.T) {
	pos := chess.NewInitialPosition()
	attacked := Attacks(&pos.Board, chess.White)

	// Eight squares on rank 3, every rank 2 pawn defended, and b1 to g1.
	if got := attacked.Len(); got != 22 {
		t.Errorf("Attacks(initial, White).Len() = %d, want 22 (%v)", got,
			testutil.SquareStrings(attacked.Squares()))
	}
	for _, sq := range []string{"a3", "e3", "h3", "d2", "b1", "g1"} {
		if !attacked.Has(chess.MustParseSquare(sq)) {
			t.Errorf("White should attack %s", sq)
		}
	}
	for _, sq := range []string{"a1", "h1", "e4", "e5"} {
		if attacked.Has(chess.MustParseSquare(sq)) {
			t.Errorf("White should not attack %s", sq)
		}
	}
}

func TestAttacks_PawnsAttackDiagonallyOnly(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	attacked := Attacks(&pos.Board, chess.White)

	testutil.AssertTrue(t, attacked.Has(chess.MustParseSquare("d5")), "pawn attacks d5")
	testutil.AssertTrue(t, attacked.Has(chess.MustParseSquare("f5")), "pawn attacks f5")
	testutil.AssertFalse(t, attacked.Has(chess.MustParseSquare("e5")), "pawn does not attack e5")
	testutil.AssertFalse(t, attacked.Has(chess.MustParseSquare("e6")), "pawn does not attack e6")

	black := Attacks(&pos.Board, chess.Black)
	testutil.AssertFalse(t, black.Has(chess.MustParseSquare("e4")), "black king does not reach e4")
}

func TestAttacks_RayIncludesFirstBlocker(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/P7/8/R3K3 w - - 0 1")
	attacked := Attacks(&pos.Board, chess.White)

	for _, sq := range []string{"a2", "a3", "b1", "c1", "d1"} {
		testutil.AssertTrue(t, attacked.Has(chess.MustParseSquare(sq)), "rook reaches %s", sq)
	}
	testutil.AssertFalse(t, attacked.Has(chess.MustParseSquare("a5")), "rook stops at a3")
}

// TestIsSquareAttacked_AgreesWithAttacks checks the reverse lookup against
// the forward attack set for every square of several positions.
func TestIsSquareAttacked_AgreesWithAttacks(t *testing.T) {
	for name, fen := range testFENs {
		t.Run(name, func(t *testing.T) {
			pos := mustPosition(t, fen)
			for _, by := range []chess.Colour{chess.White, chess.Black} {
				attacked := Attacks(&pos.Board, by)
				for i := 0; i < chess.NumSquares; i++ {
					sq := chess.SquareFromIndex(i)
					if got, want := IsSquareAttacked(&pos.Board, sq, by), attacked.Has(sq); got != want {
						t.Errorf("%s on %s: IsSquareAttacked = %v, Attacks.Has = %v", by, sq, got, want)
					}
				}
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"rook on open e-file", "4r2k/8/8/8/8/8/8/4K3 w - - 0 1", chess.White, true},
		{"rook blocked", "4r2k/8/8/8/4P3/8/8/4K3 w - - 0 1", chess.White, false},
		{"knight check", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", chess.White, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn in front is no check", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"bishop check on black", "4k3/8/8/1B6/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"initial", InitialFEN, chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := IsInCheck(&pos.Board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsInCheck_NoKing(t *testing.T) {
	board := chess.NewBoard()
	board.Set(chess.MustParseSquare("e8"), chess.B(chess.Rook))
	testutil.AssertFalse(t, IsInCheck(board, chess.White), "a missing king is never in check")
}
