package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameConfig holds settings for the game being played.
type GameConfig struct {
	// StartFEN is the position the game starts from.
	StartFEN string

	// Notation selects SAN or coordinate transcript lines.
	Notation game.Notation
}

// NewGameConfig creates a GameConfig for a standard game with SAN transcripts.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartFEN: engine.InitialFEN,
		Notation: game.SAN,
	}
}

// Options returns the game options these settings describe.
func (g *GameConfig) Options() []game.Option {
	return []game.Option{
		game.WithFEN(g.StartFEN),
		game.WithNotation(g.Notation),
	}
}

// Validate checks that the start position parses and the notation is known.
func (g *GameConfig) Validate() error {
	if _, err := engine.NewPositionFromFEN(g.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	if g.Notation != game.SAN && g.Notation != game.Coordinate {
		return fmt.Errorf("notation %d: %w", int(g.Notation), errors.ErrInvalidConfig)
	}
	return nil
}

// ParseNotation converts a flag value ("san" or "coordinate") to a notation style.
func ParseNotation(s string) (game.Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "san":
		return game.SAN, nil
	case "coordinate", "coord", "uci":
		return game.Coordinate, nil
	default:
		return game.SAN, fmt.Errorf("unknown notation %q: %w", s, errors.ErrInvalidConfig)
	}
}
