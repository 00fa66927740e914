// Package config provides runtime configuration for the chess command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxVerbosity is the highest supported verbosity level.
const MaxVerbosity = 2

// Config holds all program configuration. Settings for each concern live in
// their own sub-config.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=running commentary

	Game   *GameConfig
	Output *OutputConfig
	Perft  *PerftConfig

	// Output streams
	OutputFile     io.Writer
	LogFile        io.Writer
	TranscriptFile io.Writer // nil disables the transcript
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and command replies are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// SetTranscript sets the stream transcript lines are appended to.
func (c *Config) SetTranscript(w io.Writer) {
	c.TranscriptFile = w
}

// Validate checks every sub-config. The returned error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity %d outside 0-%d: %w", c.Verbosity, MaxVerbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output stream: %w", errors.ErrInvalidConfig)
	}
	if c.LogFile == nil {
		return fmt.Errorf("no log stream: %w", errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
