// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game options
	startFEN     = flag.String("fen", "", "Start from this FEN position (default: standard initial position)")
	notation     = flag.String("notation", "san", "Transcript notation: san, coordinate")
	loadFile     = flag.String("load", "", "Resume the last game saved in this JSON file")
	showBoard    = flag.Bool("board", true, "Print the board after every move")
	flipBoard    = flag.Bool("flip", false, "Draw the board from Black's side")
	useColour    = flag.Bool("colour", false, "Draw the board with ANSI colours")
	lineLength   = flag.Int("w", 80, "Maximum line length of the final movetext")
	outputFormat = flag.String("format", "text", "Transcript format: text, json")

	// Files
	transcriptFile = flag.String("transcript", "", "Append the game transcript to this file")
	logFile        = flag.String("l", "", "Write diagnostics to log file")

	// Perft
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes of the move tree to this depth and exit")
	perftDivide = flag.Bool("divide", false, "With -perft, print the node count below each root move")
	workers     = flag.Int("workers", 0, "Number of perft worker goroutines (0 = auto-detect based on CPU cores)")

	// Other options
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyGameFlags configures the starting position and notation.
func applyGameFlags(cfg *config.Config) error {
	if *startFEN != "" {
		cfg.Game.StartFEN = *startFEN
	}

	style, err := config.ParseNotation(*notation)
	if err != nil {
		return fmt.Errorf("-notation: %w", err)
	}
	cfg.Game.Notation = style
	return nil
}

// applyOutputFlags configures the board display and transcript format.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseTranscriptFormat(*outputFormat)
	if err != nil {
		return fmt.Errorf("-format: %w", err)
	}
	if *lineLength < 0 {
		return fmt.Errorf("-w: negative line length %d", *lineLength)
	}

	cfg.Output.TranscriptFormat = format
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.FlipBoard = *flipBoard
	cfg.Output.UseColour = *useColour
	return nil
}

// applyPerftFlags configures perft mode.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *perftDivide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
