package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds a ParseError for a FEN string. field is the 1-based FEN field number.
func fenError(fen string, field int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Column:   field,
		Expected: expected,
		Got:      got,
	}
}

// NewPositionFromFEN creates a position from a FEN string.
// The halfmove clock and move number fields are optional and default to 0 and 1.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fenError(fen, 0, "4 to 6 fields", strconv.Itoa(len(parts)))
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(&pos.Board, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, fen, parts[4:]); err != nil {
		return nil, err
	}

	return pos, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// Intended for constants and tests.
func MustPositionFromFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Exactly eight ranks of eight squares and one king per side are required.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, 1, "8 ranks", strconv.Itoa(len(ranks)))
	}

	kings := map[chess.Colour]int{}
	for i, text := range ranks {
		rank := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(text); j++ {
			c := text[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return fenError(fen, 1, "piece letter or digit", fmt.Sprintf("%q", c))
				}
				if col >= chess.BoardSize {
					return fenError(fen, 1, "8 squares in rank "+strconv.Itoa(rank+1), "more")
				}
				board.Set(chess.NewSquare(col, rank), piece)
				if piece.Kind == chess.King {
					kings[piece.Colour]++
				}
				col++
			}
		}
		if col != chess.BoardSize {
			return fenError(fen, 1, "8 squares in rank "+strconv.Itoa(rank+1), strconv.Itoa(col))
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return fenError(fen, 1, "one "+colour.String()+" king", strconv.Itoa(kings[colour]))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError(fen, 2, "w or b", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	pos.Castling = chess.CastlingRights{}
	if field == "-" {
		return nil
	}

	for _, c := range field {
		switch c {
		case 'K':
			pos.Castling.WhiteKingSide = true
		case 'Q':
			pos.Castling.WhiteQueenSide = true
		case 'k':
			pos.Castling.BlackKingSide = true
		case 'q':
			pos.Castling.BlackQueenSide = true
		default:
			return fenError(fen, 3, "KQkq or -", field)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	pos.ClearEnPassant()
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(fen, 4, "square or -", field)
	}
	// The target lies behind a pawn that just double pushed, so it is on the
	// third rank from the mover's opponent's point of view.
	want := chess.PawnStartRank(pos.ToMove.Opposite()) + chess.ColourOffset(pos.ToMove.Opposite())
	if sq.Rank != want {
		return fenError(fen, 4, "square on rank "+strconv.Itoa(want+1), field)
	}
	pos.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen string, fields []string) error {
	if len(fields) >= 1 {
		n, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fenError(fen, 5, "halfmove clock", fields[0])
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(fields) >= 2 {
		n, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || n == 0 {
			return fenError(fen, 6, "move number", fields[1])
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.Get(chess.NewSquare(col, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}
