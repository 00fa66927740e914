package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// SquareView is the read-only content of one square.
type SquareView struct {
	Square   chess.Square
	Piece    chess.Piece
	Occupied bool
}

// Label returns the piece display label, or "" for an empty square.
func (v SquareView) Label() string {
	if !v.Occupied {
		return ""
	}
	return v.Piece.Display()
}

// CapturedPieces lists captured pieces by the colour that captured them.
type CapturedPieces struct {
	White []chess.Piece // Black pieces taken by White
	Black []chess.Piece // White pieces taken by Black
}

// Snapshot is an immutable view of a game for display collaborators. It
// shares no memory with the game.
type Snapshot struct {
	ID         string
	Grid       [chess.BoardSize][chess.BoardSize]SquareView // Grid[rank][col]
	SideToMove chess.Colour
	State      State
	FEN        string
	Ply        int

	LastMove    chess.Move
	HasLastMove bool

	// CheckedKing is the square of the side to move's king when it is attacked.
	CheckedKing chess.Square
	InCheck     bool

	WhiteMaterial int
	BlackMaterial int
	Captured      CapturedPieces
}

// At returns the view of a square.
func (s *Snapshot) At(sq chess.Square) SquareView {
	if !sq.Valid() {
		return SquareView{Square: sq}
	}
	return s.Grid[sq.Rank][sq.Col]
}

// Snapshot returns a read-only view of the current game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		ID:         g.id.String(),
		SideToMove: g.pos.ToMove,
		State:      g.state,
		FEN:        g.FEN(),
		Ply:        len(g.history),
		Captured: CapturedPieces{
			White: []chess.Piece{},
			Black: []chess.Piece{},
		},
	}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.NewSquare(col, rank)
			piece, ok := g.pos.Board.Get(sq)
			snap.Grid[rank][col] = SquareView{Square: sq, Piece: piece, Occupied: ok}
		}
	}

	if n := len(g.history); n > 0 {
		snap.LastMove = g.history[n-1].Move
		snap.HasLastMove = true
	}

	if engine.IsInCheck(&g.pos.Board, g.pos.ToMove) {
		snap.CheckedKing, snap.InCheck = g.pos.Board.FindKing(g.pos.ToMove)
	}

	snap.WhiteMaterial, snap.BlackMaterial = g.pos.Board.Material()

	for _, h := range g.history {
		captured, ok := h.Captured()
		if !ok {
			continue
		}
		if h.Piece.Colour == chess.White {
			snap.Captured.White = append(snap.Captured.White, captured)
		} else {
			snap.Captured.Black = append(snap.Captured.Black, captured)
		}
	}

	return snap
}
