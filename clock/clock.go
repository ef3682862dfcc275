// Package clock provides a single-threaded cooperative scheduler over
// a fixed set of master-clock tickers (CPU, PPU, APU), each running at
// its own divisor of the master clock. A min-heap keyed on the next
// master-cycle a ticker is due selects which one runs next.
package clock

import "container/heap"

// Ticker advances one component by one of its own steps and reports
// how many of that component's cycles the step consumed.
type Ticker interface {
	Tick() uint32
}

// ScaledTicker wraps a Ticker with the divisor that converts its own
// cycle count into master-clock cycles (e.g. a PPU ticker reports 1
// PPU cycle per Tick but runs at a master-clock factor of 4 on NTSC).
type ScaledTicker struct {
	Delegate Ticker
	Factor   uint32
}

func (s *ScaledTicker) tick() uint32 {
	return s.Delegate.Tick() * s.Factor
}

// Scheduler is a min-heap-ordered cooperative scheduler: each managed
// ticker carries the master-cycle count at which it is next due: Tick
// always runs whichever ticker is soonest, then reschedules it.
type Scheduler struct {
	elapsed uint64
	tickers []ScaledTicker
	order   tickHeap
}

// NewScheduler returns an empty Scheduler; tickers are added via
// Manage.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Manage registers a ticker to run starting at the scheduler's current
// elapsed-cycle position, and returns the ticker's index (stable for
// the life of the Scheduler; Manage never reorders existing tickers).
func (s *Scheduler) Manage(t ScaledTicker) int {
	idx := len(s.tickers)
	s.tickers = append(s.tickers, t)
	heap.Push(&s.order, &tickNode{tickerIdx: idx, nextTick: s.elapsed})
	return idx
}

// Tick runs the single most-overdue ticker, advances the scheduler's
// elapsed-cycle counter to that ticker's due time, and reports how
// many master cycles were skipped getting there (0 if two or more
// tickers were already due at the same cycle).
func (s *Scheduler) Tick() uint64 {
	if len(s.order) == 0 {
		return 0
	}
	node := s.order[0]
	waited := node.nextTick - s.elapsed
	s.elapsed = node.nextTick

	cycles := s.tickers[node.tickerIdx].tick()
	node.nextTick = s.elapsed + uint64(cycles)
	heap.Fix(&s.order, 0)

	return waited
}

// Elapsed returns the total number of master-clock cycles the
// scheduler has advanced through so far.
func (s *Scheduler) Elapsed() uint64 { return s.elapsed }

type tickNode struct {
	tickerIdx int
	nextTick  uint64
}

// tickHeap is a container/heap min-heap ordered by nextTick, with ties
// broken by insertion order (tickerIdx) for determinism.
type tickHeap []*tickNode

func (h tickHeap) Len() int { return len(h) }
func (h tickHeap) Less(i, j int) bool {
	if h[i].nextTick != h[j].nextTick {
		return h[i].nextTick < h[j].nextTick
	}
	return h[i].tickerIdx < h[j].tickerIdx
}
func (h tickHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *tickHeap) Push(x any) {
	*h = append(*h, x.(*tickNode))
}

func (h *tickHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
