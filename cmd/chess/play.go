// play.go - Interactive game loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Verbosity levels gating the session log.
const (
	logGameEvents = 1
	logEveryMove  = 2
)

// session reads requests for one game and reports every outcome. Rejected
// moves are reported and the game carries on; only I/O failures end it early.
type session struct {
	cfg      *config.Config
	game     *game.Game
	out      io.Writer
	renderer *output.BoardRenderer
	writer   output.GameWriter // nil when no transcript is configured
	logger   *log.Logger
}

func newSession(cfg *config.Config, g *game.Game) *session {
	s := &session{
		cfg:      cfg,
		game:     g,
		out:      cfg.OutputFile,
		renderer: output.NewBoardRendererFromConfig(cfg.Output),
		logger:   log.New(cfg.LogFile, "chess: ", log.LstdFlags),
	}
	if cfg.TranscriptFile != nil {
		s.writer = output.NewGameWriter(cfg.TranscriptFile, cfg)
	}
	return s
}

// logf writes to the log when the configured verbosity reaches level.
func (s *session) logf(level int, format string, args ...any) {
	if s.cfg.Verbosity >= level {
		s.logger.Printf(format, args...)
	}
}

// Run processes requests until quit or end of input, then records the game
// in the transcript.
func (s *session) Run(in io.Reader) error {
	s.logf(logGameEvents, "game %s started from %s", s.game.ID(), s.game.StartFEN())
	if s.cfg.Output.ShowBoard {
		if err := s.printBoard(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := s.handle(line)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read requests: %w", err)
	}
	return s.finish()
}

// handle dispatches one request line. It reports whether the session should end.
func (s *session) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "undo":
		return false, s.undo()
	case "moves":
		return false, s.listMoves(fields[1:])
	case "fen":
		_, err := fmt.Fprintln(s.out, s.game.FEN())
		return false, err
	case "board":
		return false, s.printBoard()
	case "history":
		return false, s.printHistory()
	default:
		return false, s.play(line)
	}
}

// play submits a move request.
func (s *session) play(text string) error {
	result, err := s.game.PlayText(text)
	if err != nil {
		s.logf(logEveryMove, "rejected %q: %v", text, err)
		_, werr := fmt.Fprintf(s.out, "Error: %v\n", err)
		return werr
	}

	s.logf(logEveryMove, "%s -> %s", result.Line, s.game.FEN())
	if _, err := fmt.Fprintln(s.out, result.Line); err != nil {
		return err
	}
	if s.writer != nil {
		if err := s.writer.WriteMove(result); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}

	if result.State.IsOver() {
		s.logf(logGameEvents, "game %s over: %s %s", s.game.ID(), result.State, result.State.Result())
	}
	return s.afterChange()
}

// undo takes back the last move.
func (s *session) undo() error {
	entry, err := s.game.Undo()
	if err != nil {
		_, werr := fmt.Fprintf(s.out, "Error: %v\n", err)
		return werr
	}

	line := entry.Line(s.game.Notation())
	s.logf(logEveryMove, "undo %s -> %s", line, s.game.FEN())
	if _, err := fmt.Fprintf(s.out, "Took back %s\n", line); err != nil {
		return err
	}
	if s.writer != nil {
		if err := s.writer.WriteUndo(entry); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
	}
	return s.afterChange()
}

// afterChange prints the board when enabled, or just the game-over line otherwise.
func (s *session) afterChange() error {
	if s.cfg.Output.ShowBoard {
		return s.printBoard()
	}
	if state := s.game.State(); state.IsOver() {
		_, err := fmt.Fprintf(s.out, "Game over: %s %s\n", state, state.Result())
		return err
	}
	return nil
}

// listMoves prints the legal moves, all of them or those of one square.
func (s *session) listMoves(args []string) error {
	moves := s.game.LegalMoves()
	if len(args) > 0 {
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			_, werr := fmt.Fprintf(s.out, "Error: %v\n", err)
			return werr
		}
		moves = s.game.LegalMovesFrom(sq)
	}

	if len(moves) == 0 {
		_, err := fmt.Fprintln(s.out, "No legal moves")
		return err
	}
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	_, err := fmt.Fprintln(s.out, strings.Join(texts, " "))
	return err
}

func (s *session) printBoard() error {
	snap := s.game.Snapshot()
	_, err := fmt.Fprint(s.out, s.renderer.Render(snap), s.renderer.Status(snap))
	return err
}

func (s *session) printHistory() error {
	output.WriteMovetext(s.out, s.game, int(s.cfg.Output.MaxLineLength))
	return nil
}

// finish records the game in the transcript and closes it.
func (s *session) finish() error {
	state := s.game.State()
	s.logf(logGameEvents, "game %s ended after %d plies: %s %s", s.game.ID(), s.game.Ply(), state, state.Result())

	if s.writer == nil {
		return nil
	}
	if err := s.writer.WriteGame(s.game); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return s.writer.Close()
}
