package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// BoardRenderer draws game snapshots for a terminal. With colour disabled
// it draws an ASCII grid; with colour enabled it draws shaded squares and
// highlights the last move and a checked king.
type BoardRenderer struct {
	colour bool
	flip   bool

	light, dark, lastMove, check, label *color.Color
}

// RenderOption configures a BoardRenderer.
type RenderOption func(*BoardRenderer)

// WithColour enables ANSI colour regardless of whether the output is a terminal.
func WithColour(enabled bool) RenderOption {
	return func(r *BoardRenderer) {
		r.colour = enabled
	}
}

// WithFlip draws the board from Black's side.
func WithFlip(enabled bool) RenderOption {
	return func(r *BoardRenderer) {
		r.flip = enabled
	}
}

// NewBoardRenderer creates a renderer. Colour is off by default.
func NewBoardRenderer(opts ...RenderOption) *BoardRenderer {
	r := &BoardRenderer{
		light:    color.New(color.FgBlack, color.BgHiWhite, color.Bold),
		dark:     color.New(color.FgBlack, color.BgGreen, color.Bold),
		lastMove: color.New(color.FgBlack, color.BgYellow, color.Bold),
		check:    color.New(color.FgBlack, color.BgRed, color.Bold),
		label:    color.New(color.Bold),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, c := range []*color.Color{r.light, r.dark, r.lastMove, r.check, r.label} {
		if r.colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// NewBoardRendererFromConfig creates a renderer from output settings.
func NewBoardRendererFromConfig(cfg *config.OutputConfig) *BoardRenderer {
	return NewBoardRenderer(WithColour(cfg.UseColour), WithFlip(cfg.FlipBoard))
}

// Render draws the board of a snapshot with rank and file labels.
func (r *BoardRenderer) Render(snap game.Snapshot) string {
	if r.colour {
		return r.draw(snap)
	}
	return r.dump(snap)
}

// ranks returns the rank indices top to bottom.
func (r *BoardRenderer) ranks() []int {
	ranks := make([]int, chess.BoardSize)
	for i := range ranks {
		if r.flip {
			ranks[i] = i
		} else {
			ranks[i] = chess.BoardSize - 1 - i
		}
	}
	return ranks
}

// cols returns the file indices left to right.
func (r *BoardRenderer) cols() []int {
	cols := make([]int, chess.BoardSize)
	for i := range cols {
		if r.flip {
			cols[i] = chess.BoardSize - 1 - i
		} else {
			cols[i] = i
		}
	}
	return cols
}

// symbol returns the FEN letter of a square's piece or a space.
func symbol(v game.SquareView) string {
	if !v.Occupied {
		return " "
	}
	return string(v.Piece.Letter())
}

func (r *BoardRenderer) dump(snap game.Snapshot) string {
	const rule = "   +---+---+---+---+---+---+---+---+\n"

	var sb strings.Builder
	for _, rank := range r.ranks() {
		sb.WriteString(rule)
		fmt.Fprintf(&sb, " %d |", rank+1)
		for _, col := range r.cols() {
			fmt.Fprintf(&sb, " %s |", symbol(snap.Grid[rank][col]))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(rule)
	sb.WriteString("   ")
	for _, col := range r.cols() {
		fmt.Fprintf(&sb, "  %c ", chess.NewSquare(col, 0).FileLetter())
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *BoardRenderer) draw(snap game.Snapshot) string {
	var sb strings.Builder
	for _, rank := range r.ranks() {
		sb.WriteString(r.label.Sprintf(" %d ", rank+1))
		for _, col := range r.cols() {
			v := snap.Grid[rank][col]
			sb.WriteString(r.cellColour(snap, v.Square).Sprintf(" %s ", symbol(v)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   ")
	for _, col := range r.cols() {
		sb.WriteString(r.label.Sprintf(" %c ", chess.NewSquare(col, 0).FileLetter()))
	}
	sb.WriteString("\n")
	return sb.String()
}

// cellColour picks the background of a square. A checked king outranks the
// last move highlight.
func (r *BoardRenderer) cellColour(snap game.Snapshot, sq chess.Square) *color.Color {
	switch {
	case snap.InCheck && sq == snap.CheckedKing:
		return r.check
	case snap.HasLastMove && (sq == snap.LastMove.From || sq == snap.LastMove.To):
		return r.lastMove
	case sq.IsLight():
		return r.light
	default:
		return r.dark
	}
}

// Status describes the side to move, the game state, material and captures,
// one item per line.
func (r *BoardRenderer) Status(snap game.Snapshot) string {
	var sb strings.Builder

	switch {
	case snap.State.IsOver():
		fmt.Fprintf(&sb, "Game over: %s %s\n", snap.State, snap.State.Result())
	case snap.State.Status == game.Check:
		fmt.Fprintf(&sb, "%s to move (check)\n", snap.SideToMove)
	default:
		fmt.Fprintf(&sb, "%s to move\n", snap.SideToMove)
	}
	fmt.Fprintf(&sb, "Material: White %d, Black %d\n", snap.WhiteMaterial, snap.BlackMaterial)
	if len(snap.Captured.White) > 0 {
		fmt.Fprintf(&sb, "Captured by White: %s\n", pieceList(snap.Captured.White))
	}
	if len(snap.Captured.Black) > 0 {
		fmt.Fprintf(&sb, "Captured by Black: %s\n", pieceList(snap.Captured.Black))
	}
	return sb.String()
}

func pieceList(pieces []chess.Piece) string {
	labels := make([]string, len(pieces))
	for i, p := range pieces {
		labels[i] = p.Display()
	}
	return strings.Join(labels, ", ")
}
