package chess

// Position is a board together with all state needed to continue the game:
// side to move, castling rights, en passant target and the move clocks.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// a capturing pawn would land on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber uint
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		MoveNumber: 1,
	}
}

// NewInitialPosition creates the standard starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.Board.SetupInitialPosition()
	p.Castling = AllCastlingRights()
	return p
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// EnPassantTarget returns the en passant square if one is set.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EPSquare, p.EnPassant
}

// SetEnPassant sets the en passant target square.
func (p *Position) SetEnPassant(sq Square) {
	p.EnPassant = true
	p.EPSquare = sq
}

// ClearEnPassant removes the en passant target square.
func (p *Position) ClearEnPassant() {
	p.EnPassant = false
	p.EPSquare = Square{}
}

// SaveState captures the non-board state a move may change.
func (p *Position) SaveState() Undo {
	return Undo{
		Castling:      p.Castling,
		EnPassant:     p.EnPassant,
		EPSquare:      p.EPSquare,
		HalfmoveClock: p.HalfmoveClock,
		MoveNumber:    p.MoveNumber,
	}
}

// RestoreState restores the non-board state captured by SaveState.
func (p *Position) RestoreState(u Undo) {
	p.Castling = u.Castling
	p.EnPassant = u.EnPassant
	p.EPSquare = u.EPSquare
	p.HalfmoveClock = u.HalfmoveClock
	p.MoveNumber = u.MoveNumber
}
