package scenario

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Watchdog resets the active scenario to baseline after a period of user
// inactivity, so a dashboard left showing a simulated disruption drifts back
// to live data. One cancellable delayed task: activity cancels and restarts
// it (last event wins, never multiple pending timers), and firing re-arms
// immediately so repeated idling keeps resetting rather than firing once.
//
// The clock is injected; tests drive a clock.Mock instead of waiting on the
// wall clock.
type Watchdog struct {
	mu      sync.Mutex
	clk     clock.Clock
	store   *Store
	timeout time.Duration
	timer   *clock.Timer
	// gen identifies the current arming. A fire for an older generation
	// lost a race with Touch and must neither reset nor re-arm, or the
	// superseded timer would accumulate alongside the fresh one.
	gen uint64
}

func NewWatchdog(store *Store, timeout time.Duration, clk clock.Clock) *Watchdog {
	if clk == nil {
		clk = clock.New()
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Watchdog{clk: clk, store: store, timeout: timeout}
}

// Start arms the watchdog immediately, so a session left untouched from
// launch still resets. Calling Start on a running watchdog is a no-op.
func (w *Watchdog) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		return
	}
	w.arm()
}

// Touch records user activity: cancel the pending timer and start a fresh
// one. Safe to call at any event rate. A no-op before Start or after Stop.
func (w *Watchdog) Touch() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		return
	}
	w.timer.Stop()
	w.arm()
}

// arm installs the single pending timer. Callers hold w.mu.
func (w *Watchdog) arm() {
	w.gen++
	gen := w.gen
	w.timer = w.clk.AfterFunc(w.timeout, func() { w.fire(gen) })
}

// Stop disarms the watchdog.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil {
		return
	}
	w.timer.Stop()
	w.timer = nil
}

func (w *Watchdog) fire(gen uint64) {
	w.mu.Lock()
	if w.timer == nil || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.arm()
	w.mu.Unlock()

	// Select runs subscriber callbacks, which may call Touch; the re-arm
	// above already happened, so they just supersede it.
	w.store.Select(Baseline)
}
