// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// FiftyMoveLimit is the half-move clock value at which the fifty-move rule applies.
const FiftyMoveLimit = 100

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(pos)
}

// IsFiftyMoveDraw returns true once fifty full moves have passed without a
// capture or pawn move.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.ForEachPiece(func(sq chess.Square, piece chess.Piece) bool {
		switch piece.Kind {
		case chess.King:
			// Kings don't count for material
			return true
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
		return true
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
