// chess plays a game of chess between two players at one terminal, or counts
// the move tree of a position with perft.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and transcript files
	setupLogFile(cfg)
	setupTranscriptFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Perft.Enabled() {
		if err := runPerft(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newSession(cfg, g).Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLogFile(file)
}

// setupTranscriptFile opens the transcript for appending. Earlier games in
// the file are left in place.
func setupTranscriptFile(cfg *config.Config) {
	if *transcriptFile == "" {
		return
	}

	file, err := os.OpenFile(*transcriptFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created transcripts
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transcript file %s: %v\n", *transcriptFile, err)
		os.Exit(1)
	}
	cfg.SetTranscript(file)
}

// newGame starts a fresh game from the configured position, or resumes the
// last game of the -load file.
func newGame(cfg *config.Config) (*game.Game, error) {
	if *loadFile == "" {
		return game.New(cfg.Game.Options()...)
	}
	return loadGame(*loadFile, cfg)
}

// loadGame replays the last record saved in path.
func loadGame(path string, cfg *config.Config) (*game.Game, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := output.ReadGameRecords(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("load %s: no saved games", path)
	}
	return records[len(records)-1].Replay(game.WithNotation(cfg.Game.Notation))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a game of chess read from standard input, one request per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRequests:\n")
	fmt.Fprintf(os.Stderr, "  e2e4 e2-e4 e7e8q e7e8=Q   Play a move in coordinate notation\n")
	fmt.Fprintf(os.Stderr, "  undo                      Take back the last move\n")
	fmt.Fprintf(os.Stderr, "  moves [square]            List legal moves, optionally from one square\n")
	fmt.Fprintf(os.Stderr, "  fen                       Print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  board                     Print the board and game status\n")
	fmt.Fprintf(os.Stderr, "  history                   Print the moves played so far\n")
	fmt.Fprintf(os.Stderr, "  quit                      Save the transcript and exit\n")
}
