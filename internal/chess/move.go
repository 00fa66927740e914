package chess

// MoveKind categorizes different types of chess moves. The kind fully
// determines the side effects of applying a move.
type MoveKind int

const (
	Normal MoveKind = iota
	Capture
	DoublePawnPush
	EnPassantCapture
	Castle
	Promotion
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"Normal", "Capture", "DoublePawnPush", "EnPassantCapture", "Castle", "Promotion"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is an immutable move value.
type Move struct {
	From Square
	To   Square
	Kind MoveKind

	// Side is meaningful only for Castle moves.
	Side CastleSide

	// PromoteTo is meaningful only for Promotion moves.
	PromoteTo PieceKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == Castle
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	buf := []byte(m.From.String() + m.To.String())
	if m.Kind == Promotion {
		buf = append(buf, m.PromoteTo.Letter()+('a'-'A'))
	}
	return string(buf)
}

// Undo records the state a move destroys so it can be reversed exactly.
type Undo struct {
	// Captured is the piece removed by the move; HasCaptured is false otherwise.
	Captured    Piece
	HasCaptured bool

	Castling      CastlingRights
	EnPassant     bool
	EPSquare      Square
	HalfmoveClock uint
	MoveNumber    uint
}
