package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MakeMove applies a move to the position and updates all position state.
// The move is trusted: callers validate it against LegalMoves first. The
// returned Undo reverses the move exactly through UnmakeMove.
func MakeMove(pos *chess.Position, move chess.Move) chess.Undo {
	undo := pos.SaveState()
	colour := pos.ToMove
	moved, _ := pos.Board.Get(move.From)

	undo.Captured, undo.HasCaptured = applyToBoard(&pos.Board, move, colour)

	// Moving from, or capturing on, a king or rook home square loses the right for good.
	pos.Castling.ClearForSquare(move.From)
	pos.Castling.ClearForSquare(move.To)

	pos.ClearEnPassant()
	if move.Kind == chess.DoublePawnPush {
		pos.SetEnPassant(move.From.Offset(0, chess.ColourOffset(colour)))
	}

	if moved.Kind == chess.Pawn || undo.HasCaptured {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()

	return undo
}

// UnmakeMove reverses a move made by MakeMove using the Undo it returned.
func UnmakeMove(pos *chess.Position, move chess.Move, undo chess.Undo) {
	colour := pos.ToMove.Opposite()
	pos.ToMove = colour
	pos.RestoreState(undo)

	board := &pos.Board
	if move.Kind == chess.Castle {
		unapplyCastle(board, move)
		return
	}

	piece, _ := board.Get(move.To)
	if move.Kind == chess.Promotion {
		piece = chess.NewPiece(colour, chess.Pawn)
	}
	board.Clear(move.To)
	board.Set(move.From, piece)

	if undo.HasCaptured {
		board.Set(capturedSquare(move), undo.Captured)
	}
}

// applyToBoard performs the board mutation for a move and reports the
// captured piece, if any.
func applyToBoard(board *chess.Board, move chess.Move, colour chess.Colour) (chess.Piece, bool) {
	if move.Kind == chess.Castle {
		applyCastle(board, move)
		return chess.Piece{}, false
	}

	piece, _ := board.Get(move.From)
	victimSquare := capturedSquare(move)
	captured, hasCaptured := board.Get(victimSquare)
	board.Clear(victimSquare)

	board.Clear(move.From)
	if move.Kind == chess.Promotion {
		piece = chess.NewPiece(colour, move.PromoteTo)
	}
	board.Set(move.To, piece)

	return captured, hasCaptured
}

// capturedSquare returns where a captured piece stands: the destination,
// except for en passant where the victim is behind the target square.
func capturedSquare(move chess.Move) chess.Square {
	if move.Kind == chess.EnPassantCapture {
		return chess.NewSquare(move.To.Col, move.From.Rank)
	}
	return move.To
}

// applyCastle moves the king two squares toward the rook and the rook to the
// square the king crossed.
func applyCastle(board *chess.Board, move chess.Move) {
	rank := move.From.Rank
	rookFrom := chess.NewSquare(move.Side.RookHomeCol(), rank)
	rookTo := chess.NewSquare(move.Side.RookTargetCol(), rank)

	king, _ := board.Get(move.From)
	rook, _ := board.Get(rookFrom)
	board.Clear(move.From)
	board.Clear(rookFrom)
	board.Set(move.To, king)
	board.Set(rookTo, rook)
}

func unapplyCastle(board *chess.Board, move chess.Move) {
	rank := move.From.Rank
	rookFrom := chess.NewSquare(move.Side.RookHomeCol(), rank)
	rookTo := chess.NewSquare(move.Side.RookTargetCol(), rank)

	king, _ := board.Get(move.To)
	rook, _ := board.Get(rookTo)
	board.Clear(move.To)
	board.Clear(rookTo)
	board.Set(move.From, king)
	board.Set(rookFrom, rook)
}

// IsCapture reports whether move removes an enemy piece in pos.
func IsCapture(pos *chess.Position, move chess.Move) bool {
	switch move.Kind {
	case chess.Capture, chess.EnPassantCapture:
		return true
	case chess.Promotion:
		return !pos.Board.IsEmpty(move.To)
	default:
		return false
	}
}
