package chess

// CastleSide selects king-side or queen-side castling.
type CastleSide int

const (
	KingSide CastleSide = iota
	QueenSide
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == KingSide {
		return "king-side"
	}
	return "queen-side"
}

// RookHomeCol returns the file of the rook that castles on this side.
func (s CastleSide) RookHomeCol() int {
	if s == KingSide {
		return BoardSize - 1
	}
	return 0
}

// KingTargetCol returns the file the king lands on when castling on this side.
func (s CastleSide) KingTargetCol() int {
	if s == KingSide {
		return 6
	}
	return 2
}

// RookTargetCol returns the file the rook lands on when castling on this side.
// It is always the square the king crosses.
func (s CastleSide) RookTargetCol() int {
	if s == KingSide {
		return 5
	}
	return 3
}

// KingHomeCol is the file both kings start on.
const KingHomeCol = 4

// CastlingRights holds the four independent castling flags. Flags are only
// ever cleared during a game; Undo restores the earlier value wholesale.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingSide:  true,
		WhiteQueenSide: true,
		BlackKingSide:  true,
		BlackQueenSide: true,
	}
}

// Has reports whether colour may still castle on side.
func (c CastlingRights) Has(colour Colour, side CastleSide) bool {
	return *c.flag(colour, side)
}

// Clear removes the right for colour to castle on side.
func (c *CastlingRights) Clear(colour Colour, side CastleSide) {
	*c.flag(colour, side) = false
}

// ClearColour removes both castling rights for colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	c.Clear(colour, KingSide)
	c.Clear(colour, QueenSide)
}

// ClearForSquare removes any right whose king or rook home square is sq.
// It is applied to both the origin and the destination of every move, which
// covers moving the piece away and capturing it at home.
func (c *CastlingRights) ClearForSquare(sq Square) {
	for _, colour := range []Colour{White, Black} {
		if sq.Rank != HomeRank(colour) {
			continue
		}
		switch sq.Col {
		case KingHomeCol:
			c.ClearColour(colour)
		case KingSide.RookHomeCol():
			c.Clear(colour, KingSide)
		case QueenSide.RookHomeCol():
			c.Clear(colour, QueenSide)
		}
	}
}

// Any reports whether any castling right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingSide || c.WhiteQueenSide || c.BlackKingSide || c.BlackQueenSide
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var buf []byte
	if c.WhiteKingSide {
		buf = append(buf, 'K')
	}
	if c.WhiteQueenSide {
		buf = append(buf, 'Q')
	}
	if c.BlackKingSide {
		buf = append(buf, 'k')
	}
	if c.BlackQueenSide {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

func (c *CastlingRights) flag(colour Colour, side CastleSide) *bool {
	switch {
	case colour == White && side == KingSide:
		return &c.WhiteKingSide
	case colour == White:
		return &c.WhiteQueenSide
	case side == KingSide:
		return &c.BlackKingSide
	default:
		return &c.BlackQueenSide
	}
}
