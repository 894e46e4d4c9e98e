package siltin

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ELMASKPO/siltin/internal/cycles"
)

// TickFunc returns the host scheduler's tick count since it started.
type TickFunc func() uint32

// Clock produces the millisecond timestamps stamped into log lines. Before
// SchedulerStarted it derives an estimate from the CPU cycle counter; after,
// it derives the value from scheduler ticks. The switch happens once and is
// irreversible. Values are clamped monotonically nondecreasing within one
// uint32 epoch; wraparound of the millisecond counter is tolerated, not
// corrected.
type Clock struct {
	started   atomic.Bool
	startOnce sync.Once
	lastMS    atomic.Uint32

	// cycleMS supplies the pre-scheduler estimate. Replaced in tests.
	cycleMS func() uint32

	// tickMS is assigned exactly once, before started flips to true.
	tickMS  func() uint32
	counter *tickCounter
}

// NewClock returns a Clock in its pre-scheduler mode.
func NewClock() *Clock {
	return &Clock{cycleMS: cycleEstimateMS}
}

func cycleEstimateMS() uint32 {
	return uint32(cycles.ElapsedMS())
}

// SchedulerStarted switches the clock to its tick-derived source. A non-nil
// tick is multiplied by the tick period in milliseconds; a nil tick installs
// an internal ticker-driven counter seeded from the current estimate so the
// value stays continuous. Only the first call has any effect.
func (c *Clock) SchedulerStarted(tick TickFunc, period time.Duration) {
	c.startOnce.Do(func() {
		if period <= 0 {
			period = 10 * time.Millisecond
		}
		periodMS := uint32(period / time.Millisecond)
		if periodMS == 0 {
			periodMS = 1
		}
		if tick != nil {
			c.tickMS = func() uint32 { return tick() * periodMS }
		} else {
			c.counter = newTickCounter(c.cycleMS(), period)
			c.tickMS = c.counter.Current
		}
		c.started.Store(true)
	})
}

// Started reports whether the clock has switched to its tick-derived source.
func (c *Clock) Started() bool { return c.started.Load() }

// NowMS returns the current millisecond timestamp.
func (c *Clock) NowMS() uint32 {
	var ms uint32
	if c.started.Load() {
		ms = c.tickMS()
	} else {
		ms = c.cycleMS()
	}
	for {
		last := c.lastMS.Load()
		// A huge backward jump is counter wraparound, which passes through
		// untouched; small regressions (source switch, recalibration) clamp
		// to the last value handed out.
		if ms >= last || last-ms >= 1<<31 {
			if c.lastMS.CompareAndSwap(last, ms) {
				return ms
			}
			continue
		}
		return last
	}
}

func (c *Clock) stopCounter() {
	if c.counter != nil {
		c.counter.Close()
	}
}
