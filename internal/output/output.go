// Package output writes game transcripts and renders boards for a terminal.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMovetext writes the game's moves as numbered movetext, e.g.
// "1. e4 e5 2. Nf3 *", wrapped at maxLineLength and ending with the
// result token.
func WriteMovetext(w io.Writer, g *game.Game, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)

	for i, h := range g.History() {
		switch {
		case h.Piece.Colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", h.Undo.MoveNumber))
		case i == 0:
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", h.Undo.MoveNumber))
		}
		ow.Write(moveText(h, g.Notation()))
	}

	ow.Write(g.State().Result())
	ow.NewLine()
}

// moveText returns the move of a history entry in the given notation.
func moveText(h game.HistoryEntry, style game.Notation) string {
	if style == game.Coordinate {
		return h.Move.String()
	}
	return h.SAN
}
