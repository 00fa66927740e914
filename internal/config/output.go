package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TranscriptFormat selects how the game record is written.
type TranscriptFormat int

const (
	TextTranscript TranscriptFormat = iota // One line per move
	JSONTranscript                         // A JSON game record written on exit
)

// String returns the flag spelling of the format.
func (f TranscriptFormat) String() string {
	if f == JSONTranscript {
		return "json"
	}
	return "text"
}

// ParseTranscriptFormat converts a flag value to a TranscriptFormat.
func ParseTranscriptFormat(s string) (TranscriptFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return TextTranscript, nil
	case "json":
		return JSONTranscript, nil
	default:
		return TextTranscript, fmt.Errorf("unknown transcript format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// OutputConfig holds settings related to board display and transcripts.
type OutputConfig struct {
	// TranscriptFormat selects text lines or a JSON record
	TranscriptFormat TranscriptFormat

	// MaxLineLength is the wrap column for the movetext summary
	MaxLineLength uint

	// UseColour renders the board with ANSI colours
	UseColour bool

	// FlipBoard renders the board from Black's side
	FlipBoard bool

	// ShowBoard prints the board after every accepted move
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		TranscriptFormat: TextTranscript,
		MaxLineLength:    80,
		UseColour:        true,
		ShowBoard:        true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.TranscriptFormat != TextTranscript && o.TranscriptFormat != JSONTranscript {
		return fmt.Errorf("transcript format %d: %w", int(o.TranscriptFormat), errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < 20 {
		return fmt.Errorf("max line length %d is below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
