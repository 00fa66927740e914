package game

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status is the coarse state of a game after the most recent move.
type Status int

const (
	Ongoing Status = iota
	Check          // Ongoing with the side to move's king attacked
	Checkmate
	Stalemate
	DrawByFiftyMove
	DrawByInsufficientMaterial
	DrawByRepetition
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{
		"Ongoing", "Check", "Checkmate", "Stalemate",
		"DrawByFiftyMove", "DrawByInsufficientMaterial", "DrawByRepetition",
	}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s != Ongoing && s != Check
}

// IsDraw reports whether the status is one of the drawn outcomes.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, DrawByFiftyMove, DrawByInsufficientMaterial, DrawByRepetition:
		return true
	default:
		return false
	}
}

// State is a Status together with the winner, which is meaningful only
// for Checkmate.
type State struct {
	Status Status
	Winner chess.Colour
}

// Mate returns the checkmate state won by winner.
func Mate(winner chess.Colour) State {
	return State{Status: Checkmate, Winner: winner}
}

// IsOver reports whether the game has reached a terminal state.
func (s State) IsOver() bool {
	return s.Status.IsTerminal()
}

// String returns e.g. "Check" or "Checkmate(Black)".
func (s State) String() string {
	if s.Status == Checkmate {
		return s.Status.String() + "(" + s.Winner.String() + ")"
	}
	return s.Status.String()
}

// Result returns the conventional result token: "1-0", "0-1", "1/2-1/2",
// or "*" while the game is in progress.
func (s State) Result() string {
	switch {
	case s.Status == Checkmate && s.Winner == chess.White:
		return "1-0"
	case s.Status == Checkmate:
		return "0-1"
	case s.Status.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}
