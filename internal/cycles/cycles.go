// Package cycles derives millisecond estimates from the CPU cycle counter,
// for timestamps taken before a tick-based source exists. On amd64 it reads
// the time-stamp counter directly; elsewhere it falls back to a nanosecond
// clock dressed as a 1 GHz counter.
package cycles

import (
	"sync/atomic"
	"time"
)

var (
	startCycles uint64
	startTime   time.Time
	perMS       atomic.Uint64
)

func init() {
	startTime = time.Now()
	startCycles = read()
}

// ElapsedMS returns a millisecond estimate of the time since process start.
// The cycle rate is assumed until enough wall time has passed to calibrate
// it, so very early values can be off by the ratio of the real clock rate to
// the assumed one; callers needing monotonicity must clamp.
func ElapsedMS() uint64 {
	delta := read() - startCycles
	rate := perMS.Load()
	if rate == 0 {
		rate = calibrate(delta)
	}
	return delta / rate
}

const calibrateAfter = 10 * time.Millisecond

func calibrate(deltaCycles uint64) uint64 {
	elapsed := time.Since(startTime)
	if elapsed < calibrateAfter {
		return assumedCyclesPerMS
	}
	rate := deltaCycles / uint64(elapsed/time.Millisecond)
	if rate == 0 {
		rate = 1
	}
	perMS.Store(rate)
	return rate
}
