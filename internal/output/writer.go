package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing a game transcript.
// Different implementations handle different formats (text lines, JSON).
type GameWriter interface {
	// WriteMove records an accepted move.
	WriteMove(result game.MoveResult) error

	// WriteUndo records that a move was taken back.
	WriteUndo(entry game.HistoryEntry) error

	// WriteGame records the finished (or abandoned) game.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured transcript format.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.TranscriptFormat == config.JSONTranscript {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter appends one human-readable line per event. It never reads
// anything back.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text transcript writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteMove appends the move's transcript line verbatim.
func (tw *TextWriter) WriteMove(result game.MoveResult) error {
	_, err := fmt.Fprintln(tw.w, result.Line)
	return err
}

// WriteUndo appends a line naming the move taken back.
func (tw *TextWriter) WriteUndo(entry game.HistoryEntry) error {
	_, err := fmt.Fprintf(tw.w, "undo %s\n", entry.Line(tw.cfg.Game.Notation))
	return err
}

// WriteGame appends the final state and the whole game as wrapped movetext.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	if _, err := fmt.Fprintf(tw.w, "%s %s\n", g.State(), g.State().Result()); err != nil {
		return err
	}
	WriteMovetext(tw.w, g, int(tw.cfg.Output.MaxLineLength))
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes game records in JSON format.
// It buffers records and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	records []*GameRecord
	single  bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		records: make([]*GameRecord, 0),
		single:  false,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteMove is a no-op; the record is built from the finished game.
func (jw *JSONWriter) WriteMove(game.MoveResult) error {
	return nil
}

// WriteUndo is a no-op; the record is built from the finished game.
func (jw *JSONWriter) WriteUndo(game.HistoryEntry) error {
	return nil
}

// WriteGame buffers a game record (or writes it immediately in single mode).
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	record := NewGameRecord(g)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	jw.records = append(jw.records, record)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.records) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&GameRecords{Games: jw.records})

	// Clear buffer after writing
	jw.records = jw.records[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
