package calc

import (
	"sync"
	"time"
)

// DefaultDebounce coalesces the keystroke bursts of an interactive form
// into one recomputation.
const DefaultDebounce = 300 * time.Millisecond

// Recalc debounces recomputation: every Submit replaces whatever was
// pending, and after the quiet period only the newest input is
// computed and delivered to the callback. Superseded inputs are simply
// discarded; there is no cancellation handshake and no partial-result
// merging.
type Recalc struct {
	delay time.Duration
	fn    func(Result)

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	in      Input
	symbol  string
}

// NewRecalc builds a debouncer delivering results to fn. A delay of
// zero or below selects DefaultDebounce. fn runs on the timer's
// goroutine.
func NewRecalc(delay time.Duration, fn func(Result)) *Recalc {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Recalc{delay: delay, fn: fn}
}

// Submit records the newest input and restarts the quiet period.
func (r *Recalc) Submit(in Input, symbol string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.in = in
	r.symbol = symbol
	r.pending = true
	if r.timer == nil {
		r.timer = time.AfterFunc(r.delay, r.fire)
	} else {
		r.timer.Reset(r.delay)
	}
}

// Stop drops any pending input. A later Submit arms the debouncer
// again.
func (r *Recalc) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = false
	if r.timer != nil {
		r.timer.Stop()
	}
}

func (r *Recalc) fire() {
	r.mu.Lock()
	if !r.pending {
		r.mu.Unlock()
		return
	}
	in, symbol := r.in, r.symbol
	r.pending = false
	r.mu.Unlock()

	r.fn(CalculateForSymbol(in, symbol))
}
