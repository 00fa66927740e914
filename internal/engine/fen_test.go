package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return *p == *chess.NewInitialPosition()
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				ep, ok := p.EnPassantTarget()
				return p.Board.IsOccupiedBy(chess.MustParseSquare("e4"), chess.White) &&
					p.Board.IsEmpty(chess.MustParseSquare("e2")) &&
					p.ToMove == chess.Black &&
					ok && ep == chess.MustParseSquare("e3")
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return !p.Castling.Any()
			},
		},
		{
			name: "partial castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.CastlingRights{WhiteKingSide: true, BlackQueenSide: true}
			},
		},
		{
			name: "clocks",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 42 97",
			checkFn: func(p *chess.Position) bool {
				return p.HalfmoveClock == 42 && p.MoveNumber == 97
			},
		},
		{
			name: "clocks omitted",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - -",
			checkFn: func(p *chess.Position) bool {
				return p.HalfmoveClock == 0 && p.MoveNumber == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN() error = %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("NewPositionFromFEN(%q) check failed, got %s", tt.fen, PositionToFEN(pos))
			}
		})
	}
}

func TestNewPositionFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"placement only", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"nine squares in a rank", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"seven squares in a rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1"},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1"},
		{"en passant on wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"},
		{"en passant for wrong side", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1"},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "3kk3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"too many fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if err == nil {
				t.Fatalf("NewPositionFromFEN(%q) = %s, want error", tt.fen, PositionToFEN(pos))
			}
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

			var parseErr *errors.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error %v is not a *ParseError", err)
			} else if parseErr.Input != tt.fen {
				t.Errorf("ParseError.Input = %q, want %q", parseErr.Input, tt.fen)
			}
		})
	}
}

func TestPositionToFEN_RoundTrip(t *testing.T) {
	for name, fen := range testFENs {
		t.Run(name, func(t *testing.T) {
			pos := mustPosition(t, fen)
			testutil.AssertEqual(t, PositionToFEN(pos), fen)
		})
	}
}

func TestPositionToFEN_Initial(t *testing.T) {
	testutil.AssertEqual(t, PositionToFEN(chess.NewInitialPosition()), InitialFEN)
}

func TestMustPositionFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPositionFromFEN(invalid) did not panic")
		}
	}()
	MustPositionFromFEN("not a fen")
}
