// perft.go - Move tree enumeration mode
package main

import (
	"io"
	"log"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// runPerft counts the move tree of the configured position and prints the
// totals to the output stream. Timing goes to the log.
func runPerft(cfg *config.Config) error {
	pos, err := engine.NewPositionFromFEN(cfg.Game.StartFEN)
	if err != nil {
		return err
	}

	logger := log.New(cfg.LogFile, "chess: ", log.LstdFlags)
	printer := message.NewPrinter(language.English)
	depth := cfg.Perft.Depth

	start := time.Now()
	entries := engine.PerftParallel(pos, depth, cfg.Perft.Workers)
	elapsed := time.Since(start)

	nodes := engine.TotalNodes(entries)
	if cfg.Verbosity >= logGameEvents {
		logger.Println(printer.Sprintf("perft(%d) workers=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
			depth, cfg.Perft.Workers, nodes, int(float64(nodes)/elapsed.Seconds()), elapsed.Seconds()))
	}
	if cfg.Verbosity >= logEveryMove {
		s := engine.PerftDetailed(pos, depth)
		logger.Println(printer.Sprintf("d=%d nodes=%d cap=%d enp=%d cas=%d pro=%d chk=%d",
			depth, s.Nodes, s.Captures, s.EnPassant, s.Castles, s.Promotions, s.Checks))
	}

	return writePerftReport(cfg.OutputFile, printer, entries, cfg.Perft.Divide)
}

// writePerftReport prints the divide listing when asked and the node total.
func writePerftReport(w io.Writer, printer *message.Printer, entries []engine.DivideEntry, divide bool) error {
	if divide {
		for _, e := range entries {
			if _, err := printer.Fprintf(w, "%s: %d\n", e.Move, e.Nodes); err != nil {
				return err
			}
		}
		if _, err := printer.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	_, err := printer.Fprintf(w, "Nodes searched: %d\n", engine.TotalNodes(entries))
	return err
}
