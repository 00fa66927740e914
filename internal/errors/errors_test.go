package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrMalformedNotation", ErrMalformedNotation, ErrMalformedNotation},
		{"ErrNoPieceAtOrigin", ErrNoPieceAtOrigin, ErrNoPieceAtOrigin},
		{"ErrGameAlreadyOver", ErrGameAlreadyOver, ErrGameAlreadyOver},
		{"ErrAmbiguousPromotion", ErrAmbiguousPromotion, ErrAmbiguousPromotion},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrNothingToUndo", ErrNothingToUndo, ErrNothingToUndo},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrIllegalMove, ErrMalformedNotation, ErrNoPieceAtOrigin, ErrGameAlreadyOver,
		ErrAmbiguousPromotion, ErrInvalidFEN, ErrNothingToUndo, ErrInvalidConfig,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				Ply:      12,
				Colour:   "Black",
				MoveText: "e8g8",
			},
			contains: []string{"ply 12", "Black", "e8g8", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameAlreadyOver},
			contains: []string{"game already over"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{MoveText: "a1a1"},
			contains: []string{"a1a1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrAmbiguousPromotion, Ply: 41}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrAmbiguousPromotion) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrAmbiguousPromotion)
	}
	if !Is(moveErr, ErrAmbiguousPromotion) {
		t.Error("Is(moveErr, ErrAmbiguousPromotion) = false, want true")
	}
}

// TestMoveError_As verifies that As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		Ply:      24,
		MoveText: "e1c1",
	}

	wrapped := fmt.Errorf("play failed: %w", moveErr)

	var extractedErr *MoveError
	if !As(wrapped, &extractedErr) {
		t.Fatal("As() could not extract MoveError")
	}
	if extractedErr.Ply != 24 {
		t.Errorf("extractedErr.Ply = %d, want 24", extractedErr.Ply)
	}
	if extractedErr.MoveText != "e1c1" {
		t.Errorf("extractedErr.MoveText = %q, want %q", extractedErr.MoveText, "e1c1")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrMalformedNotation,
		Input:    "e9e4",
		Column:   2,
		Expected: "rank 1-8",
		Got:      "'9'",
	}

	msg := err.Error()
	for _, want := range []string{"e9e4", "column 2", "expected rank 1-8", "malformed"} {
		if !containsIgnoreCase(msg, want) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, want)
		}
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidFEN, Input: "8/8 x"}

	if !errors.Is(parseErr, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "loading position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
