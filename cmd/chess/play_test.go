package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// testStreams collects everything a session writes.
type testStreams struct {
	out, log, transcript bytes.Buffer
}

// runSession plays the input lines through a new session.
func runSession(t *testing.T, b *config.ConfigBuilder, input string) (*game.Game, *testStreams) {
	t.Helper()
	var s testStreams
	cfg := b.WithOutput(&s.out).WithLog(&s.log).WithTranscript(&s.transcript).Build()
	testutil.AssertNoError(t, cfg.Validate())

	g, err := game.New(cfg.Game.Options()...)
	testutil.AssertNoError(t, err)

	if err := newSession(cfg, g).Run(strings.NewReader(input)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return g, &s
}

func TestSession_Commands(t *testing.T) {
	input := "e2e4\n\ne7e5\nundo\nfen\nmoves e7\nmoves\nquit\nd2d4\n"
	g, s := runSession(t, config.NewConfigBuilder().WithBoard(false), input)

	lines := strings.Split(strings.TrimSuffix(s.out.String(), "\n"), "\n")
	testutil.AssertEqual(t, lines[:5], []string{
		"1. e4",
		"1... e5",
		"Took back 1... e5",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"e7e6 e7e5",
	})
	testutil.AssertEqual(t, len(strings.Fields(lines[5])), 20)
	testutil.AssertEqual(t, len(lines), 6)

	// Input after quit is never read.
	testutil.AssertEqual(t, g.Ply(), 1)
}

func TestSession_RejectedMoves(t *testing.T) {
	input := "e2e5\nhello\nundo\ne2e4\nmoves z9\n"
	g, s := runSession(t, config.NewConfigBuilder().WithBoard(false), input)

	out := s.out.String()
	testutil.AssertContains(t, out, `Error: ply 1, White, move "e2e5": illegal move`)
	testutil.AssertContains(t, out, "malformed move notation")
	testutil.AssertContains(t, out, "Error: no move to undo")
	testutil.AssertContains(t, out, "1. e4\n")
	testutil.AssertEqual(t, strings.Count(out, "Error:"), 4)
	testutil.AssertEqual(t, g.Ply(), 1)
}

func TestSession_GameOver(t *testing.T) {
	input := "f2f3\ne7e5\ng2g4\nd8h4\na2a3\nmoves\n"
	g, s := runSession(t, config.NewConfigBuilder().WithBoard(false), input)

	out := s.out.String()
	testutil.AssertContains(t, out, "2... Qh4#\nGame over: Checkmate(Black) 0-1\n")
	testutil.AssertContains(t, out, "game already over")
	testutil.AssertContains(t, out, "No legal moves\n")
	testutil.AssertEqual(t, g.State().Result(), "0-1")
}

func TestSession_Board(t *testing.T) {
	_, s := runSession(t, config.NewConfigBuilder().WithColour(false), "e2e4\n")

	out := s.out.String()
	// Initial board plus one after the move.
	testutil.AssertEqual(t, strings.Count(out, " 8 | r | n | b | q | k | b | n | r |"), 2)
	testutil.AssertContains(t, out, " 4 |   |   |   |   | P |   |   |   |")
	testutil.AssertContains(t, out, "White to move\n")
	testutil.AssertContains(t, out, "1. e4\n")
	testutil.AssertContains(t, out, "Black to move\n")
}

func TestSession_TextTranscript(t *testing.T) {
	input := "e2e4\ne7e5\nundo\nd7d5\n"
	_, s := runSession(t, config.NewConfigBuilder().WithBoard(false), input)

	testutil.AssertEqual(t, s.transcript.String(),
		"1. e4\n"+
			"1... e5\n"+
			"undo 1... e5\n"+
			"1... d5\n"+
			"Ongoing *\n"+
			"1. e4 d5 *\n")
}

func TestSession_JSONTranscript(t *testing.T) {
	b := config.NewConfigBuilder().
		WithBoard(false).
		WithTranscriptFormat(config.JSONTranscript)
	g, s := runSession(t, b, "f2f3\ne7e5\ng2g4\nd8h4\n")

	records, err := output.ReadGameRecords(&s.transcript)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(records), 1)
	testutil.AssertEqual(t, records[0].Moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, records[0].Result, "0-1")

	replayed, err := records[0].Replay()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, replayed.FEN(), g.FEN())
}

func TestSession_Logging(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		want      []string
		notWant   []string
	}{
		{
			name:      "silent",
			verbosity: 0,
			notWant:   []string{"started", "1. e4", "ended"},
		},
		{
			name:      "game events",
			verbosity: 1,
			want:      []string{"chess: ", "started from rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "ended after 1 plies: Ongoing *"},
			notWant:   []string{"1. e4", "rejected"},
		},
		{
			name:      "every move",
			verbosity: 2,
			want:      []string{"1. e4 -> rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", `rejected "e7e4"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := config.NewConfigBuilder().WithBoard(false).WithVerbosity(tt.verbosity)
			_, s := runSession(t, b, "e2e4\ne7e4\n")

			log := s.log.String()
			for _, w := range tt.want {
				testutil.AssertContains(t, log, w)
			}
			for _, w := range tt.notWant {
				testutil.AssertNotContains(t, log, w)
			}
			if tt.verbosity == 0 {
				testutil.AssertEqual(t, log, "")
			}
		})
	}
}

func TestSession_History(t *testing.T) {
	b := config.NewConfigBuilder().WithBoard(false).WithNotation(game.Coordinate)
	_, s := runSession(t, b, "e2e4\ne7e5\nhistory\n")

	testutil.AssertContains(t, s.out.String(), "1. e2e4 e7e5 *\n")
}
