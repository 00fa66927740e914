package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PseudoLegalMoves returns every geometrically valid move for the side to
// move without checking whether it leaves that side's king attacked.
// Moves are ordered by origin square (rank-major, file ascending) and then
// by the fixed direction order of each piece kind.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	us := pos.ToMove
	pos.Board.ForEachPiece(func(sq chess.Square, piece chess.Piece) bool {
		if piece.Colour == us {
			moves = appendPieceMoves(moves, pos, sq, piece)
		}
		return true
	})
	return moves
}

// PseudoLegalMovesFrom returns the pseudo-legal moves of the piece on sq.
// It returns nil if sq is empty or holds a piece of the side not to move.
func PseudoLegalMovesFrom(pos *chess.Position, sq chess.Square) []chess.Move {
	piece, ok := pos.Board.Get(sq)
	if !ok || piece.Colour != pos.ToMove {
		return nil
	}
	return appendPieceMoves(nil, pos, sq, piece)
}

// appendPieceMoves dispatches on piece kind.
func appendPieceMoves(moves []chess.Move, pos *chess.Position, from chess.Square, piece chess.Piece) []chess.Move {
	board := &pos.Board
	switch piece.Kind {
	case chess.Pawn:
		return appendPawnMoves(moves, pos, from, piece.Colour)
	case chess.Knight:
		return appendStepMoves(moves, board, from, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		return appendSlidingMoves(moves, board, from, piece.Colour, diagonalDirs[:])
	case chess.Rook:
		return appendSlidingMoves(moves, board, from, piece.Colour, straightDirs[:])
	case chess.Queen:
		return appendSlidingMoves(moves, board, from, piece.Colour, queenDirs[:])
	case chess.King:
		moves = appendStepMoves(moves, board, from, piece.Colour, kingOffsets[:])
		return appendCastleMoves(moves, pos, from, piece.Colour)
	}
	return moves
}

// appendSlidingMoves walks each ray until the board edge or a blocker.
// An enemy blocker is included as a capture; a friendly one is not.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target, occupied := board.Get(to)
			if !occupied {
				moves = append(moves, chess.Move{From: from, To: to, Kind: chess.Normal})
				continue
			}
			if target.Colour != colour {
				moves = append(moves, chess.Move{From: from, To: to, Kind: chess.Capture})
			}
			break // Blocked
		}
	}
	return moves
}

// appendStepMoves handles knight and king single-step destinations.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		target, occupied := board.Get(to)
		switch {
		case !occupied:
			moves = append(moves, chess.Move{From: from, To: to, Kind: chess.Normal})
		case target.Colour != colour:
			moves = append(moves, chess.Move{From: from, To: to, Kind: chess.Capture})
		}
	}
	return moves
}

func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	board := &pos.Board
	dir := chess.ColourOffset(colour)

	// Forward move
	if one := from.Offset(0, dir); board.IsEmpty(one) {
		moves = appendPawnAdvance(moves, from, one, colour, chess.Normal)

		// Double push from starting rank
		if from.Rank == chess.PawnStartRank(colour) {
			if two := from.Offset(0, 2*dir); board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two, Kind: chess.DoublePawnPush})
			}
		}
	}

	// Captures
	for _, dc := range pawnCaptureDC {
		to := from.Offset(dc, dir)
		if !to.Valid() {
			continue
		}
		if board.IsOccupiedBy(to, colour.Opposite()) {
			moves = appendPawnAdvance(moves, from, to, colour, chess.Capture)
			continue
		}
		if ep, ok := pos.EnPassantTarget(); ok && to == ep && isEnPassantVictim(board, from, to, colour) {
			moves = append(moves, chess.Move{From: from, To: to, Kind: chess.EnPassantCapture})
		}
	}
	return moves
}

// isEnPassantVictim checks that the square behind the en passant target holds
// an enemy pawn and the target itself is empty.
func isEnPassantVictim(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if !board.IsEmpty(to) {
		return false
	}
	victim, ok := board.Get(chess.NewSquare(to.Col, from.Rank))
	return ok && victim.SameAs(chess.NewPiece(colour.Opposite(), chess.Pawn))
}

// appendPawnAdvance expands a move onto the last rank into one move per promotable kind.
func appendPawnAdvance(moves []chess.Move, from, to chess.Square, colour chess.Colour, kind chess.MoveKind) []chess.Move {
	if to.Rank != chess.PromotionRank(colour) {
		return append(moves, chess.Move{From: from, To: to, Kind: kind})
	}
	for _, promo := range chess.PromotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Kind: chess.Promotion, PromoteTo: promo})
	}
	return moves
}

func appendCastleMoves(moves []chess.Move, pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	rank := chess.HomeRank(colour)
	if from != chess.NewSquare(chess.KingHomeCol, rank) || (!pos.Castling.Has(colour, chess.KingSide) && !pos.Castling.Has(colour, chess.QueenSide)) {
		return moves
	}

	var attacked chess.SquareSet
	attackedKnown := false
	for _, side := range [...]chess.CastleSide{chess.KingSide, chess.QueenSide} {
		if !pos.Castling.Has(colour, side) || !castlingPathClear(&pos.Board, colour, side) {
			continue
		}
		if !attackedKnown {
			attacked = Attacks(&pos.Board, colour.Opposite())
			attackedKnown = true
		}
		// The king may not start in, pass through or land on an attacked square.
		transit := []int{chess.KingHomeCol, side.RookTargetCol(), side.KingTargetCol()}
		safe := true
		for _, col := range transit {
			if attacked.Has(chess.NewSquare(col, rank)) {
				safe = false
				break
			}
		}
		if safe {
			moves = append(moves, chess.Move{
				From: from,
				To:   chess.NewSquare(side.KingTargetCol(), rank),
				Kind: chess.Castle,
				Side: side,
			})
		}
	}
	return moves
}

// castlingPathClear checks the rook is home and every square strictly between
// king and rook is empty.
func castlingPathClear(board *chess.Board, colour chess.Colour, side chess.CastleSide) bool {
	rank := chess.HomeRank(colour)
	rookCol := side.RookHomeCol()
	rook, ok := board.Get(chess.NewSquare(rookCol, rank))
	if !ok || !rook.SameAs(chess.NewPiece(colour, chess.Rook)) {
		return false
	}
	lo, hi := min(chess.KingHomeCol, rookCol), max(chess.KingHomeCol, rookCol)
	for col := lo + 1; col < hi; col++ {
		if !board.IsEmpty(chess.NewSquare(col, rank)) {
			return false
		}
	}
	return true
}
