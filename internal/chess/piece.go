package chess

// Piece is an immutable coloured chess piece. A square without a piece is
// represented by the Board returning ok == false, never by a Piece value.
type Piece struct {
	Colour Colour
	Kind   PieceKind
}

// NewPiece creates a piece of the given colour and kind.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// Points returns the material value of the piece. It depends on kind only.
func (p Piece) Points() int {
	return p.Kind.Points()
}

// Equal compares two pieces by point value only, so a white rook equals a
// black rook and a bishop equals a knight. Use SameAs when colour or kind
// must be distinguished.
func (p Piece) Equal(other Piece) bool {
	return p.Points() == other.Points()
}

// Compare orders two pieces by point value only. It returns -1, 0 or +1.
func (p Piece) Compare(other Piece) int {
	switch a, b := p.Points(), other.Points(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SameAs reports whether two pieces have the same colour and kind.
func (p Piece) SameAs(other Piece) bool {
	return p.Colour == other.Colour && p.Kind == other.Kind
}

// Letter returns the FEN letter for the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Display returns a short label such as "W K" or "B N".
func (p Piece) Display() string {
	return string([]byte{p.Colour.String()[0], ' ', p.Kind.Letter()})
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter to a piece. Uppercase letters are white.
func PieceFromLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Piece{}, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(colour, kind), true
}
