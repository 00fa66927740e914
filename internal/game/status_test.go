package game

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status   Status
		name     string
		terminal bool
		draw     bool
	}{
		{Ongoing, "Ongoing", false, false},
		{Check, "Check", false, false},
		{Checkmate, "Checkmate", true, false},
		{Stalemate, "Stalemate", true, true},
		{DrawByFiftyMove, "DrawByFiftyMove", true, true},
		{DrawByInsufficientMaterial, "DrawByInsufficientMaterial", true, true},
		{DrawByRepetition, "DrawByRepetition", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.status.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
			if got := tt.status.IsDraw(); got != tt.draw {
				t.Errorf("IsDraw() = %v, want %v", got, tt.draw)
			}
		})
	}

	if got := Status(42).String(); got != "Unknown" {
		t.Errorf("Status(42).String() = %q, want Unknown", got)
	}
}

func TestState(t *testing.T) {
	tests := []struct {
		state  State
		str    string
		result string
		over   bool
	}{
		{State{Status: Ongoing}, "Ongoing", "*", false},
		{State{Status: Check}, "Check", "*", false},
		{Mate(chess.White), "Checkmate(White)", "1-0", true},
		{Mate(chess.Black), "Checkmate(Black)", "0-1", true},
		{State{Status: Stalemate}, "Stalemate", "1/2-1/2", true},
		{State{Status: DrawByRepetition}, "DrawByRepetition", "1/2-1/2", true},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.state.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.state.Result(); got != tt.result {
				t.Errorf("Result() = %q, want %q", got, tt.result)
			}
			if got := tt.state.IsOver(); got != tt.over {
				t.Errorf("IsOver() = %v, want %v", got, tt.over)
			}
		})
	}
}

func TestNotation_String(t *testing.T) {
	if got := SAN.String(); got != "san" {
		t.Errorf("SAN.String() = %q", got)
	}
	if got := Coordinate.String(); got != "coordinate" {
		t.Errorf("Coordinate.String() = %q", got)
	}
}
