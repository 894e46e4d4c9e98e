//go:build amd64

package cycles

// Rough 1 GHz guess used until wall-clock calibration kicks in.
const assumedCyclesPerMS = 1 << 20

// read returns the current value of the time-stamp counter.
func read() uint64
