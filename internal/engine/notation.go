package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveRequest is a candidate move as supplied by an input layer: a square
// pair and an optional promotion kind (chess.NoKind when absent).
type MoveRequest struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceKind
}

// String returns the request in coordinate notation.
func (r MoveRequest) String() string {
	s := r.From.String() + r.To.String()
	if r.Promotion != chess.NoKind {
		s += strings.ToLower(string(r.Promotion.Letter()))
	}
	return s
}

// RequestFor returns the request that selects move.
func RequestFor(move chess.Move) MoveRequest {
	req := MoveRequest{From: move.From, To: move.To}
	if move.Kind == chess.Promotion {
		req.Promotion = move.PromoteTo
	}
	return req
}

// Matches reports whether move has the request's squares. The promotion
// kind is not compared.
func (r MoveRequest) Matches(move chess.Move) bool {
	return move.From == r.From && move.To == r.To
}

func notationError(text string, column int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedNotation,
		Input:    text,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// ParseMoveRequest parses coordinate notation. Accepted forms are
// "e2e4", "e2-e4", "e7e8q" and "e7e8=Q"; surrounding whitespace is ignored.
func ParseMoveRequest(text string) (MoveRequest, error) {
	s := strings.TrimSpace(text)
	var req MoveRequest

	if len(s) < 4 {
		return req, notationError(text, 0, "square pair", "too short")
	}

	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return req, notationError(text, 1, "origin square", s[:2])
	}
	rest := s[2:]
	column := 3
	if rest[0] == '-' {
		rest = rest[1:]
		column++
	}
	if len(rest) < 2 {
		return req, notationError(text, column, "destination square", rest)
	}
	to, err := chess.ParseSquare(rest[:2])
	if err != nil {
		return req, notationError(text, column, "destination square", rest[:2])
	}
	req.From, req.To = from, to

	rest = rest[2:]
	column += 2
	if strings.HasPrefix(rest, "=") {
		rest = rest[1:]
		column++
		if rest == "" {
			return req, notationError(text, column, "promotion piece", "end of input")
		}
	}
	switch len(rest) {
	case 0:
		return req, nil
	case 1:
		kind := chess.KindFromLetter(rest[0])
		if !kind.IsPromotable() {
			return req, notationError(text, column, "one of q, r, b, n", rest)
		}
		req.Promotion = kind
		return req, nil
	default:
		return req, notationError(text, column, "end of move", rest)
	}
}

// SAN renders move in standard algebraic notation for the position it is
// about to be played in. The move must be legal in pos; pos is unchanged on return.
func SAN(pos *chess.Position, move chess.Move) string {
	var sb strings.Builder

	switch {
	case move.Kind == chess.Castle && move.Side == chess.KingSide:
		sb.WriteString("O-O")
	case move.Kind == chess.Castle:
		sb.WriteString("O-O-O")
	default:
		piece, _ := pos.Board.Get(move.From)
		capture := IsCapture(pos, move)

		if piece.Kind == chess.Pawn {
			if capture {
				sb.WriteByte(move.From.FileLetter())
			}
		} else {
			sb.WriteByte(piece.Kind.Letter())
			sb.WriteString(disambiguation(pos, move, piece))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.Kind == chess.Promotion {
			sb.WriteByte('=')
			sb.WriteByte(move.PromoteTo.Letter())
		}
	}

	sb.WriteString(checkSuffix(pos, move))
	return sb.String()
}

// disambiguation returns the origin file, rank, or both, needed to tell move
// apart from other legal moves of the same piece kind to the same square.
func disambiguation(pos *chess.Position, move chess.Move, piece chess.Piece) string {
	var rivals []chess.Square
	for _, other := range LegalMoves(pos) {
		if other.To != move.To || other.From == move.From {
			continue
		}
		if p, _ := pos.Board.Get(other.From); p.SameAs(piece) {
			rivals = append(rivals, other.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.Col == move.From.Col {
			sameFile = true
		}
		if sq.Rank == move.From.Rank {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(move.From.FileLetter())
	case !sameRank:
		return string(move.From.RankDigit())
	default:
		return move.From.String()
	}
}

// checkSuffix plays the move on a copy and returns "+", "#" or "".
func checkSuffix(pos *chess.Position, move chess.Move) string {
	after := pos.Copy()
	MakeMove(after, move)
	if !IsInCheck(&after.Board, after.ToMove) {
		return ""
	}
	if HasLegalMoves(after) {
		return "+"
	}
	return "#"
}
