package siltin

import (
	"sync"
	"sync/atomic"
	"time"
)

// tickCounter is the internal tick source used when the host registers no
// TickFunc of its own: a goroutine advances a millisecond counter by the
// tick period on every ticker fire.
type tickCounter struct {
	value     atomic.Uint32
	periodMS  uint32
	newTicker func(time.Duration) tickerControl
	period    time.Duration

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

type tickerControl struct {
	C    <-chan time.Time
	Stop func()
}

func (t tickerControl) stop() {
	if t.Stop != nil {
		t.Stop()
	}
}

func defaultTicker(d time.Duration) tickerControl {
	t := time.NewTicker(d)
	return tickerControl{C: t.C, Stop: t.Stop}
}

func newTickCounter(startMS uint32, period time.Duration) *tickCounter {
	return newStandaloneTickCounter(startMS, period, defaultTicker)
}

func newStandaloneTickCounter(startMS uint32, period time.Duration, newTicker func(time.Duration) tickerControl) *tickCounter {
	c := &tickCounter{
		periodMS:  uint32(period / time.Millisecond),
		newTicker: newTicker,
		period:    period,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	if c.periodMS == 0 {
		c.periodMS = 1
	}
	c.value.Store(startMS)
	c.start()
	return c
}

func (c *tickCounter) start() {
	ticker := c.makeTicker()
	if ticker.C == nil {
		close(c.doneCh)
		return
	}
	go c.refresh(ticker)
}

func (c *tickCounter) makeTicker() tickerControl {
	if c.newTicker != nil {
		if ticker := c.newTicker(c.period); ticker.C != nil {
			return ticker
		}
	}
	return defaultTicker(c.period)
}

func (c *tickCounter) refresh(ticker tickerControl) {
	defer ticker.stop()
	defer close(c.doneCh)
	for {
		select {
		case <-c.stopCh:
			return
		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			c.value.Add(c.periodMS)
		}
	}
}

// Current returns the counter's millisecond value.
func (c *tickCounter) Current() uint32 {
	return c.value.Load()
}

// Close stops the refresh goroutine. The counter keeps returning its last
// value afterwards.
func (c *tickCounter) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *tickCounter) waitStopped(timeout time.Duration) bool {
	if timeout <= 0 {
		<-c.doneCh
		return true
	}
	select {
	case <-c.doneCh:
		return true
	case <-time.After(timeout):
		return false
	}
}
