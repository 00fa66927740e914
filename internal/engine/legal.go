package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the legal moves for the side to move, in the same order
// as PseudoLegalMoves.
func LegalMoves(pos *chess.Position) []chess.Move {
	return filterLegal(pos, PseudoLegalMoves(pos))
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func LegalMovesFrom(pos *chess.Position, sq chess.Square) []chess.Move {
	return filterLegal(pos, PseudoLegalMovesFrom(pos, sq))
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for _, move := range PseudoLegalMoves(pos) {
		if leavesKingSafe(pos, move) {
			return true
		}
	}
	return false
}

// IsLegal reports whether move is a member of the legal move set of pos.
func IsLegal(pos *chess.Position, move chess.Move) bool {
	for _, m := range LegalMovesFrom(pos, move.From) {
		if m == move {
			return true
		}
	}
	return false
}

// filterLegal discards moves that leave the mover's king attacked. It reuses
// the backing array of moves.
func filterLegal(pos *chess.Position, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, move := range moves {
		if leavesKingSafe(pos, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// leavesKingSafe makes the move on a scratch copy of the board and checks
// whether the mover's king, wherever it now stands, is attacked.
func leavesKingSafe(pos *chess.Position, move chess.Move) bool {
	colour := pos.ToMove
	scratch := pos.Board
	applyToBoard(&scratch, move, colour)

	king, ok := scratch.FindKing(colour)
	if !ok {
		return true
	}
	return !IsSquareAttacked(&scratch, king, colour.Opposite())
}
