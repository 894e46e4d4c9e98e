//go:build !amd64

package cycles

import "time"

// The fallback counter ticks in nanoseconds, so the rate is exact.
const assumedCyclesPerMS = 1_000_000

var base = time.Now()

func read() uint64 {
	return uint64(time.Since(base).Nanoseconds())
}
