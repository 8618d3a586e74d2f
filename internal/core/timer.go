package core

import "time"

// Ticker paces generations while a simulation is running. It never fires on
// its own: the owner polls Due from its update loop, passing the interval
// that is current at that moment, so interval changes apply to the next tick.
type Ticker struct {
	active      bool
	accumulator time.Duration
	last        time.Time
}

// Start activates the ticker. The first tick is due one interval after now.
func (t *Ticker) Start(now time.Time) {
	t.active = true
	t.accumulator = 0
	t.last = now
}

// Stop deactivates the ticker immediately.
func (t *Ticker) Stop() {
	t.active = false
	t.accumulator = 0
}

// Active reports whether the ticker has been started and not stopped.
func (t *Ticker) Active() bool { return t.active }

// Due reports whether a tick should be delivered at now. It fires at most once
// per call; a zero interval fires on every call.
func (t *Ticker) Due(now time.Time, interval time.Duration) bool {
	if !t.active {
		return false
	}
	if delta := now.Sub(t.last); delta > 0 {
		t.accumulator += delta
	}
	t.last = now
	if interval <= 0 {
		t.accumulator = 0
		return true
	}
	if t.accumulator < interval {
		return false
	}
	t.accumulator %= interval
	return true
}
