package document

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/draftwise/draftcore/pkg/shape"
)

// DefaultDebounce is the quiet period the scheduler waits for before
// running a recompute.
const DefaultDebounce = 50 * time.Millisecond

// RecomputeFunc is the idempotent pass the scheduler invokes with the
// accumulated dirty ids. It runs on the scheduler's timer goroutine.
type RecomputeFunc func(changed []shape.ID)

// Scheduler coalesces change notifications into debounced recompute
// runs. Marks arriving during the quiet period extend it and merge into
// the same dirty set; a run that is superseded by newer marks simply
// carries the union. Safe for concurrent use.
type Scheduler struct {
	mu        sync.Mutex
	dirty     map[shape.ID]struct{}
	timer     *time.Timer
	delay     time.Duration
	recompute RecomputeFunc
	logger    *log.Logger
	closed    bool
}

// NewScheduler creates a scheduler invoking recompute after each quiet
// period. A non-positive delay uses DefaultDebounce; a nil logger uses
// the default logger.
func NewScheduler(delay time.Duration, recompute RecomputeFunc, logger *log.Logger) *Scheduler {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		dirty:     make(map[shape.ID]struct{}),
		delay:     delay,
		recompute: recompute,
		logger:    logger,
	}
}

// MarkDirty records changed shapes and (re)starts the debounce window.
func (s *Scheduler) MarkDirty(ids ...shape.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(ids) == 0 {
		return
	}

	for _, id := range ids {
		s.dirty[id] = struct{}{}
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)

	s.logger.Debug("recompute scheduled", "dirty", len(s.dirty), "delay", s.delay)
}

// Flush runs any pending recompute immediately on the calling goroutine.
func (s *Scheduler) Flush() {
	s.fire()
}

// Close cancels any pending run. Further marks are ignored.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.dirty = make(map[shape.ID]struct{})
}

// fire drains the dirty set and invokes the recompute pass.
func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.closed || len(s.dirty) == 0 {
		s.mu.Unlock()
		return
	}
	ids := make([]shape.ID, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}
	s.dirty = make(map[shape.ID]struct{})
	s.mu.Unlock()

	// Sorted so runs are deterministic regardless of mark order.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	s.logger.Debug("recompute running", "shapes", len(ids))
	s.recompute(ids)
}
