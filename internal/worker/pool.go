// Package worker spreads move-tree counting over a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one subtree to count. The worker that receives it owns
// Position, which has already had Move applied.
type WorkItem struct {
	Position *chess.Position
	Move     chess.Move
	Depth    int // Plies left to count below Position
	Index    int // Slot of the item's result in Run's output
}

// ProcessResult is the count for one subtree.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
}

// ProcessFunc counts one subtree.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to its goroutines and collects their results.
// A Pool is started once and closed once.
type Pool struct {
	workers   int
	queueSize int
	count     ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	cancelled atomic.Bool
	processed atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithQueueSize sets how many items and results may wait in the channels.
// Values below 1 are ignored.
func WithQueueSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.queueSize = size
		}
	}
}

// NewPool creates a pool that runs count on every submitted item.
// Default: 1 worker, queue size 16.
func NewPool(count ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers:   1,
		queueSize: 16,
		count:     count,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.queueSize)
	p.results = make(chan ProcessResult, p.queueSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for item := range p.items {
		// After Cancel the queue is drained without counting.
		if p.cancelled.Load() {
			continue
		}
		p.results <- p.count(item)
		p.processed.Add(1)
	}
}

// Submit queues an item, blocking while the queue is full. It returns false
// without queueing once the pool has been cancelled.
func (p *Pool) Submit(item WorkItem) bool {
	if p.cancelled.Load() {
		return false
	}
	p.items <- item
	return true
}

// Cancel stops counting. Items already queued are dropped.
func (p *Pool) Cancel() {
	p.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (p *Pool) Cancelled() bool {
	return p.cancelled.Load()
}

// Close ends submission and waits for the workers, then closes Results.
// Results must be drained concurrently or the workers can block on a full queue.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results arrive on, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Processed returns how many items have been counted so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// Run starts the pool, counts every item and closes the pool. Results are
// returned in item order: result i belongs to the item whose Index is i.
// Items skipped after Cancel leave a zero result in their slot.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			if !p.Submit(item) {
				break
			}
		}
		p.Close()
	}()

	results := make([]ProcessResult, len(items))
	for r := range p.results {
		results[r.Index] = r
	}
	return results
}
