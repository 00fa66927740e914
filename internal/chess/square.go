package chess

import (
	"fmt"
	"math/bits"
)

// Square is a board coordinate. Col is the file (0 = a) and Rank is the
// rank (0 = 1). Two squares are equal only when both coordinates match.
type Square struct {
	Col  int
	Rank int
}

// NewSquare creates a square from file and rank indices.
func NewSquare(col, rank int) Square {
	return Square{Col: col, Rank: rank}
}

// SquareFromIndex converts a 0-63 index (rank-major) back to a square.
func SquareFromIndex(i int) Square {
	return Square{Col: i % BoardSize, Rank: i / BoardSize}
}

// MustParseSquare parses algebraic square text and panics on failure.
// Intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic square text such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: want two characters", text)
	}
	col := int(text[0]) - ColBase
	if text[0] >= 'A' && text[0] <= 'H' {
		col = int(text[0]) - 'A'
	}
	sq := Square{Col: col, Rank: int(text[1]) - RankBase}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: off the board", text)
	}
	return sq, nil
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns the rank-major 0-63 index of the square.
func (s Square) Index() int {
	return s.Rank*BoardSize + s.Col
}

// Offset returns the square displaced by the given file and rank deltas.
// The result may be off the board; check with Valid.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Rank: s.Rank + dr}
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.Col+s.Rank)%2 == 1
}

// FileLetter returns the file character 'a'-'h'.
func (s Square) FileLetter() byte {
	return byte(ColBase + s.Col)
}

// RankDigit returns the rank character '1'-'8'.
func (s Square) RankDigit() byte {
	return byte(RankBase + s.Rank)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// SquareSet is a set of squares stored as a 64-bit mask indexed by Square.Index.
type SquareSet uint64

// Add returns the set with sq included.
func (s SquareSet) Add(sq Square) SquareSet {
	return s | 1<<uint(sq.Index())
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return sq.Valid() && s&(1<<uint(sq.Index())) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Squares returns the members in rank-major, file-ascending order.
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		squares = append(squares, SquareFromIndex(bits.TrailingZeros64(rest)))
	}
	return squares
}
