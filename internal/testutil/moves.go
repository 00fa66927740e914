package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveStrings renders moves in coordinate notation, preserving order.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// SortedMoveStrings renders moves in coordinate notation, sorted, for
// comparing move sets whose generation order differs.
func SortedMoveStrings(moves []chess.Move) []string {
	out := MoveStrings(moves)
	sort.Strings(out)
	return out
}

// SquareStrings renders squares in algebraic notation, preserving order.
func SquareStrings(squares []chess.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

// Sq parses a square and fails the test on error.
func Sq(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", text, err)
	}
	return sq
}

// FindMove returns the move from moves matching coordinate text such as "e7e8q".
func FindMove(t *testing.T, moves []chess.Move, text string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.String() == text {
			return m
		}
	}
	t.Fatalf("move %s not found in %v", text, MoveStrings(moves))
	return chess.Move{}
}
