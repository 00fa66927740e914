package engine

import (
	"testing"
)

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range testFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkPositionToFEN(b *testing.B) {
	for name, fen := range testFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustPosition(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PositionToFEN(pos)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range testFENs {
		b.Run(name, func(b *testing.B) {
			pos := mustPosition(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(pos)
			}
		})
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	pos := mustPosition(b, kiwipeteFEN)
	moves := LegalMoves(pos)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		move := moves[i%len(moves)]
		undo := MakeMove(pos, move)
		UnmakeMove(pos, move, undo)
	}
}

func BenchmarkSAN(b *testing.B) {
	pos := mustPosition(b, kiwipeteFEN)
	moves := LegalMoves(pos)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SAN(pos, moves[i%len(moves)])
	}
}

func BenchmarkPerft(b *testing.B) {
	pos := mustPosition(b, InitialFEN)
	for i := 0; i < b.N; i++ {
		Perft(pos, 3)
	}
}

func BenchmarkPerftParallel(b *testing.B) {
	pos := mustPosition(b, InitialFEN)
	for i := 0; i < b.N; i++ {
		PerftParallel(pos, 3, 4)
	}
}
