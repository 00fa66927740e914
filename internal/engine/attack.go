package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Fixed direction tables. Their order is part of the deterministic move ordering.
var (
	knightOffsets = [...][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [...][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [...][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	pawnCaptureDC = [...]int{-1, 1}
)

// Attacks returns every square the given colour could capture on this ply,
// ignoring pins and checks against that colour's own king. Squares holding
// the attacker's own pieces are included: they are defended.
func Attacks(board *chess.Board, by chess.Colour) chess.SquareSet {
	var set chess.SquareSet
	board.ForEachPiece(func(sq chess.Square, piece chess.Piece) bool {
		if piece.Colour == by {
			set |= pieceReach(board, sq, piece)
		}
		return true
	})
	return set
}

// pieceReach returns the squares a single piece attacks from sq.
func pieceReach(board *chess.Board, from chess.Square, piece chess.Piece) chess.SquareSet {
	switch piece.Kind {
	case chess.Pawn:
		var set chess.SquareSet
		dir := chess.ColourOffset(piece.Colour)
		for _, dc := range pawnCaptureDC {
			if to := from.Offset(dc, dir); to.Valid() {
				set = set.Add(to)
			}
		}
		return set
	case chess.Knight:
		return stepReach(from, knightOffsets[:])
	case chess.King:
		return stepReach(from, kingOffsets[:])
	case chess.Bishop:
		return rayReach(board, from, diagonalDirs[:])
	case chess.Rook:
		return rayReach(board, from, straightDirs[:])
	case chess.Queen:
		return rayReach(board, from, queenDirs[:])
	}
	return 0
}

func stepReach(from chess.Square, offsets [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, off := range offsets {
		if to := from.Offset(off[0], off[1]); to.Valid() {
			set = set.Add(to)
		}
	}
	return set
}

func rayReach(board *chess.Board, from chess.Square, dirs [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			set = set.Add(to)
			if !board.IsEmpty(to) {
				break // Blocked
			}
		}
	}
	return set
}

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It agrees with Attacks(board, byColour).Has(sq) but looks outward from the
// target square instead of scanning every attacker.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	is := func(at chess.Square, kinds ...chess.PieceKind) bool {
		piece, ok := board.Get(at)
		if !ok || piece.Colour != byColour {
			return false
		}
		for _, k := range kinds {
			if piece.Kind == k {
				return true
			}
		}
		return false
	}

	// Pawns attack from the rank behind the target, from the attacker's point of view.
	pawnDir := -chess.ColourOffset(byColour)
	for _, dc := range pawnCaptureDC {
		if is(sq.Offset(dc, pawnDir), chess.Pawn) {
			return true
		}
	}

	for _, off := range knightOffsets {
		if is(sq.Offset(off[0], off[1]), chess.Knight) {
			return true
		}
	}

	for _, off := range kingOffsets {
		if is(sq.Offset(off[0], off[1]), chess.King) {
			return true
		}
	}

	if slidingAttack(board, sq, diagonalDirs[:], is, chess.Bishop, chess.Queen) {
		return true
	}
	return slidingAttack(board, sq, straightDirs[:], is, chess.Rook, chess.Queen)
}

func slidingAttack(board *chess.Board, sq chess.Square, dirs [][2]int,
	is func(chess.Square, ...chess.PieceKind) bool, kinds ...chess.PieceKind) bool {
	for _, dir := range dirs {
		for at := sq.Offset(dir[0], dir[1]); at.Valid(); at = at.Offset(dir[0], dir[1]) {
			if board.IsEmpty(at) {
				continue
			}
			if is(at, kinds...) {
				return true
			}
			break // Blocked
		}
	}
	return false
}
