package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestMoveStrings(t *testing.T) {
	moves := []chess.Move{
		{From: chess.MustParseSquare("g1"), To: chess.MustParseSquare("f3")},
		{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4"), Kind: chess.DoublePawnPush},
		{From: chess.MustParseSquare("a7"), To: chess.MustParseSquare("a8"), Kind: chess.Promotion, PromoteTo: chess.Knight},
	}

	AssertEqual(t, MoveStrings(moves), []string{"g1f3", "e2e4", "a7a8n"})
	AssertEqual(t, SortedMoveStrings(moves), []string{"a7a8n", "e2e4", "g1f3"})
	AssertEqual(t, MoveStrings(nil), []string{})
}

func TestSquareStrings(t *testing.T) {
	squares := []chess.Square{chess.NewSquare(0, 0), chess.NewSquare(7, 7), chess.NewSquare(4, 3)}
	AssertEqual(t, SquareStrings(squares), []string{"a1", "h8", "e4"})
}

func TestSq(t *testing.T) {
	AssertEqual(t, Sq(t, "c6"), chess.NewSquare(2, 5))
}

func TestFindMove(t *testing.T) {
	moves := []chess.Move{
		{From: chess.MustParseSquare("b1"), To: chess.MustParseSquare("c3")},
		{From: chess.MustParseSquare("b1"), To: chess.MustParseSquare("a3")},
	}
	AssertEqual(t, FindMove(t, moves, "b1a3"), moves[1])
}
