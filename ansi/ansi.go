// Package ansi provides the escape sequences and the per-level palette used
// by siltin's color output. The palette can be swapped via SetPalette so
// deployments can restyle log lines without touching siltin internals.
package ansi

import "sync"

// Reset clears all terminal styling; the remaining constants expose the
// color sequences the level palettes are built from.
const (
	Reset = "\x1b[0m"

	Black  = "\x1b[0;30m"
	Red    = "\x1b[0;31m"
	Green  = "\x1b[0;32m"
	Brown  = "\x1b[0;33m"
	Blue   = "\x1b[0;34m"
	Purple = "\x1b[0;35m"
	Cyan   = "\x1b[0;36m"

	BoldRed    = "\x1b[1;31m"
	BoldGreen  = "\x1b[1;32m"
	BoldBrown  = "\x1b[1;33m"
	BoldBlue   = "\x1b[1;34m"
	BoldPurple = "\x1b[1;35m"
	BoldCyan   = "\x1b[1;36m"
)

// Palette maps log levels to the escape sequence opening their lines. An
// empty string leaves that level unframed.
type Palette struct {
	Error   string
	Warn    string
	Info    string
	Debug   string
	Verbose string
}

// PaletteDefault is the classic console scheme: red errors, brown warnings,
// green info, unframed debug and verbose.
var PaletteDefault = Palette{
	Error: Red,
	Warn:  Brown,
	Info:  Green,
}

// PaletteBright frames every level, using bold variants for the levels that
// matter most on a busy console.
var PaletteBright = Palette{
	Error:   BoldRed,
	Warn:    BoldBrown,
	Info:    BoldGreen,
	Debug:   Cyan,
	Verbose: Purple,
}

var (
	paletteMu sync.RWMutex
	current   = PaletteDefault
)

// SetPalette replaces the active palette wholesale. An empty field disables
// framing for that level.
//
//	ansi.SetPalette(ansi.PaletteBright)
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	current = palette
	paletteMu.Unlock()
}

// Snapshot returns the active palette.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.PaletteBright)
//	// run assertions...
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return current
}
