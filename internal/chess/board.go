package chess

// Board is the 8x8 grid of squares. It never validates chess rules; it is a
// plain data container that is safe to copy by value.
type Board struct {
	// cells[rank][col]; a cell without occupied set holds no piece.
	cells [BoardSize][BoardSize]cell
}

type cell struct {
	piece    Piece
	occupied bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Set(NewSquare(col, 0), W(backRank[col]))
		b.Set(NewSquare(col, 1), W(Pawn))
		b.Set(NewSquare(col, 6), B(Pawn))
		b.Set(NewSquare(col, 7), B(backRank[col]))
	}
}

// Get returns the piece on a square. ok is false for an empty or off-board square.
func (b *Board) Get(sq Square) (piece Piece, ok bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	c := b.cells[sq.Rank][sq.Col]
	return c.piece, c.occupied
}

// Set places a piece on a square, replacing any piece already there.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.cells[sq.Rank][sq.Col] = cell{piece: piece, occupied: true}
	}
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	if sq.Valid() {
		b.cells[sq.Rank][sq.Col] = cell{}
	}
}

// IsEmpty returns true if the square is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && !b.cells[sq.Rank][sq.Col].occupied
}

// IsOccupiedBy returns true if the square holds a piece of the given colour.
func (b *Board) IsOccupiedBy(sq Square, colour Colour) bool {
	piece, ok := b.Get(sq)
	return ok && piece.Colour == colour
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// ForEachPiece calls fn for every occupied square in rank-major, file-ascending
// order (a1, b1, ... h1, a2, ...). Iteration stops early if fn returns false.
func (b *Board) ForEachPiece(fn func(sq Square, piece Piece) bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for col := 0; col < BoardSize; col++ {
			c := b.cells[rank][col]
			if !c.occupied {
				continue
			}
			if !fn(NewSquare(col, rank), c.piece) {
				return
			}
		}
	}
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := NewPiece(colour, King)
	var found Square
	ok := false
	b.ForEachPiece(func(sq Square, piece Piece) bool {
		if piece.SameAs(king) {
			found, ok = sq, true
			return false
		}
		return true
	})
	return found, ok
}

// Material returns the summed point value of each colour's pieces.
func (b *Board) Material() (white, black int) {
	b.ForEachPiece(func(_ Square, piece Piece) bool {
		if piece.Colour == White {
			white += piece.Points()
		} else {
			black += piece.Points()
		}
		return true
	})
	return white, black
}
