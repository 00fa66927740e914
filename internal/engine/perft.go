package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// PerftStats counts the leaf moves of a perft enumeration by category.
// Captures includes en passant captures.
type PerftStats struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *PerftStats) add(other PerftStats) {
	s.Nodes += other.Nodes
	s.Captures += other.Captures
	s.EnPassant += other.EnPassant
	s.Castles += other.Castles
	s.Promotions += other.Promotions
	s.Checks += other.Checks
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree of the given depth.
// The position is modified during the walk and restored before returning.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		undo := MakeMove(pos, move)
		nodes += Perft(pos, depth-1)
		UnmakeMove(pos, move, undo)
	}
	return nodes
}

// PerftDetailed is like Perft but also classifies the moves played at the last ply.
func PerftDetailed(pos *chess.Position, depth int) PerftStats {
	var stats PerftStats
	if depth <= 0 {
		stats.Nodes = 1
		return stats
	}

	for _, move := range LegalMoves(pos) {
		leaf := depth == 1
		if leaf {
			stats.Nodes++
			if IsCapture(pos, move) {
				stats.Captures++
			}
			switch move.Kind {
			case chess.EnPassantCapture:
				stats.EnPassant++
			case chess.Castle:
				stats.Castles++
			case chess.Promotion:
				stats.Promotions++
			}
		}

		undo := MakeMove(pos, move)
		if leaf {
			if IsInCheck(&pos.Board, pos.ToMove) {
				stats.Checks++
			}
		} else {
			stats.add(PerftDetailed(pos, depth-1))
		}
		UnmakeMove(pos, move, undo)
	}
	return stats
}

// Divide returns the perft count below each legal root move, in move
// generation order.
func Divide(pos *chess.Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	moves := LegalMoves(pos)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		undo := MakeMove(pos, move)
		entries = append(entries, DivideEntry{Move: move, Nodes: Perft(pos, depth-1)})
		UnmakeMove(pos, move, undo)
	}
	return entries
}

// PerftParallel computes Divide with one work item per root move spread over
// a worker pool. The result is in move generation order and pos is not modified.
func PerftParallel(pos *chess.Position, depth, workers int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	moves := LegalMoves(pos)
	if len(moves) == 0 {
		return []DivideEntry{}
	}

	items := make([]worker.WorkItem, len(moves))
	for i, move := range moves {
		child := pos.Copy()
		MakeMove(child, move)
		items[i] = worker.WorkItem{Position: child, Move: move, Depth: depth - 1, Index: i}
	}

	count := func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: Perft(item.Position, item.Depth),
		}
	}
	pool := worker.NewPool(count, worker.WithWorkers(workers), worker.WithQueueSize(len(moves)))

	entries := make([]DivideEntry, len(moves))
	for i, r := range pool.Run(items) {
		entries[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries
}

// TotalNodes sums the node counts of a divide listing.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
