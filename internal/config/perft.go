package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-tree enumeration.
type PerftConfig struct {
	// Depth enables perft mode when positive.
	Depth int

	// Workers is the number of goroutines splitting the root moves.
	Workers int

	// Divide prints the node count below every root move.
	Divide bool
}

// NewPerftConfig creates a PerftConfig with perft disabled and one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Enabled reports whether the command should run perft instead of a game.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
