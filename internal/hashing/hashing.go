// Package hashing provides Zobrist position keys and repetition tracking.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var (
	zobristPiece     [2][chess.King + 1][chess.NumSquares]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristCastle    [4]uint64
	zobristWhite     uint64
)

func init() {
	// Fixed seed: keys must be stable across runs so saved games replay identically.
	r := rand.New(rand.NewSource(7))
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[c][k][sq] = r.Uint64()
			}
		}
	}
	for col := range zobristEnPassant {
		zobristEnPassant[col] = r.Uint64()
	}
	for i := range zobristCastle {
		zobristCastle[i] = r.Uint64()
	}
	zobristWhite = r.Uint64()
}

// Key returns the Zobrist key of a position. Two positions share a key when
// they have the same piece placement, side to move, castling rights and
// capturable en passant file. The move clocks are not part of the key.
func Key(pos *chess.Position) uint64 {
	var key uint64

	pos.Board.ForEachPiece(func(sq chess.Square, piece chess.Piece) bool {
		key ^= zobristPiece[piece.Colour][piece.Kind][sq.Index()]
		return true
	})

	if pos.ToMove == chess.White {
		key ^= zobristWhite
	}

	rights := [...]bool{
		pos.Castling.WhiteKingSide, pos.Castling.WhiteQueenSide,
		pos.Castling.BlackKingSide, pos.Castling.BlackQueenSide,
	}
	for i, ok := range rights {
		if ok {
			key ^= zobristCastle[i]
		}
	}

	if ep, ok := pos.EnPassantTarget(); ok && enPassantCapturable(pos, ep) {
		key ^= zobristEnPassant[ep.Col]
	}

	return key
}

// enPassantCapturable reports whether a pawn of the side to move stands
// beside the pawn that just double pushed. A target no pawn can use does not
// distinguish positions.
func enPassantCapturable(pos *chess.Position, ep chess.Square) bool {
	rank := ep.Rank - chess.ColourOffset(pos.ToMove)
	pawn := chess.NewPiece(pos.ToMove, chess.Pawn)
	for _, dc := range []int{-1, 1} {
		if p, ok := pos.Board.Get(chess.NewSquare(ep.Col+dc, rank)); ok && p.SameAs(pawn) {
			return true
		}
	}
	return false
}

// RepetitionTable counts how often each position key has occurred along the
// current line of play. Keys are pushed as moves are made and popped on undo.
type RepetitionTable struct {
	counts map[uint64]int
	keys   []uint64
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Push records an occurrence of key and returns how many times it has now occurred.
func (t *RepetitionTable) Push(key uint64) int {
	t.keys = append(t.keys, key)
	t.counts[key]++
	return t.counts[key]
}

// Pop removes the most recently pushed key. It is a no-op on an empty table.
func (t *RepetitionTable) Pop() {
	if len(t.keys) == 0 {
		return
	}
	key := t.keys[len(t.keys)-1]
	t.keys = t.keys[:len(t.keys)-1]
	if t.counts[key] <= 1 {
		delete(t.counts, key)
	} else {
		t.counts[key]--
	}
}

// Count returns how many times key has occurred.
func (t *RepetitionTable) Count(key uint64) int {
	return t.counts[key]
}

// Last returns the most recently pushed key.
func (t *RepetitionTable) Last() (uint64, bool) {
	if len(t.keys) == 0 {
		return 0, false
	}
	return t.keys[len(t.keys)-1], true
}

// Len returns the number of keys pushed and not popped.
func (t *RepetitionTable) Len() int {
	return len(t.keys)
}

// UniqueCount returns the number of distinct positions recorded.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[uint64]int)
	t.keys = t.keys[:0]
}
