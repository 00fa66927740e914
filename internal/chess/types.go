// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN side-to-move letter for a colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index (0-7) of a colour's back rank.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank index from which a colour's pawns may double push.
func PawnStartRank(colour Colour) int {
	return HomeRank(colour) + ColourOffset(colour)
}

// PromotionRank returns the rank index on which a colour's pawns promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// PieceKind identifies the type of a chess piece.
type PieceKind int

const (
	NoKind PieceKind = iota // No piece kind; used only for an absent promotion choice
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Points returns the conventional material value of a piece kind.
func (k PieceKind) Points() int {
	switch k {
	case Queen:
		return 9
	case Rook:
		return 5
	case Bishop, Knight:
		return 3
	case Pawn:
		return 1
	default:
		return 0
	}
}

// IsPromotable reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotable() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a piece letter (either case) to a piece kind.
// It returns NoKind for anything that is not a piece letter.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)
