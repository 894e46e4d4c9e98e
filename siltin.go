package siltin

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level defines log verbosity. Higher values are strictly more verbose; a tag
// set to LevelInfo emits errors, warnings, and info messages.
type Level int8

const (
	// LevelNone disables output for a tag entirely.
	LevelNone Level = iota
	// LevelError covers conditions the module cannot recover from on its own.
	LevelError
	// LevelWarn covers conditions recovery measures have been taken for.
	LevelWarn
	// LevelInfo describes the normal flow of events.
	LevelInfo
	// LevelDebug carries extra diagnostics (values, sizes, pointers).
	LevelDebug
	// LevelVerbose carries frequent or bulky messages that can flood output.
	LevelVerbose
)

// ParseLevel converts a textual level into a Level value. It accepts "none",
// "no", "off", "error", "err", "warn", "warning", "info", "debug", "verbose",
// "trace", and single letters, case insensitive.
func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none", "no", "off":
		return LevelNone, true
	case "error", "err", "e":
		return LevelError, true
	case "warn", "warning", "w":
		return LevelWarn, true
	case "info", "i":
		return LevelInfo, true
	case "debug", "d":
		return LevelDebug, true
	case "verbose", "trace", "v":
		return LevelVerbose, true
	default:
		return LevelNone, false
	}
}

// LevelString returns the canonical string representation of a Level.
func LevelString(level Level) string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelVerbose:
		return "verbose"
	default:
		return "none"
	}
}

// Letter returns the single-letter prefix used in rendered lines.
func (l Level) Letter() byte {
	switch l {
	case LevelError:
		return 'E'
	case LevelWarn:
		return 'W'
	case LevelInfo:
		return 'I'
	case LevelDebug:
		return 'D'
	case LevelVerbose:
		return 'V'
	default:
		return '?'
	}
}

func clampLevel(level Level) Level {
	if level < LevelNone {
		return LevelNone
	}
	if level > LevelVerbose {
		return LevelVerbose
	}
	return level
}

// ColorMode controls whether rendered lines carry ANSI color framing.
type ColorMode int8

const (
	// ColorAuto enables color when the sink's destination is a terminal and
	// NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorAlways emits color framing unconditionally.
	ColorAlways
	// ColorNever suppresses color framing.
	ColorNever
)

// Options seeds a Facility. The zero value selects the process console as
// sink, automatic color detection, the compiled-in default level, and a fresh
// clock.
type Options struct {
	// Sink receives rendered lines. Nil selects the process console.
	Sink Sink

	// Colors selects the color mode. The zero value is ColorAuto.
	Colors ColorMode

	// DefaultLevel is the registry default applied to tags without an
	// explicit entry. The zero value selects the compiled-in static default;
	// use SetLevel("*", LevelNone) to silence a facility outright.
	DefaultLevel Level

	// Clock overrides the facility's timestamp source.
	Clock *Clock
}

// Facility owns one registry, one sink reference, one clock, and one color
// mode. The package-level API delegates to a process-wide default Facility;
// tests and embedders can run isolated instances.
type Facility struct {
	reg          registry
	sink         atomic.Pointer[sinkRef]
	clock        *Clock
	colorMode    atomic.Int32
	colorEnabled atomic.Bool
	lineHint     atomic.Int64

	envMu    sync.Mutex
	envOwned io.Closer
}

// NewFacility returns a Facility configured from opts.
func NewFacility(opts Options) *Facility {
	f := &Facility{}
	def := opts.DefaultLevel
	if def == LevelNone {
		def = staticLevel
	}
	f.reg.init(clampLevel(def))
	s := opts.Sink
	if s == nil {
		s = consoleSink{out: os.Stdout}
	}
	f.sink.Store(&sinkRef{sink: s})
	c := opts.Clock
	if c == nil {
		c = NewClock()
	}
	f.clock = c
	f.SetColorMode(opts.Colors)
	return f
}

var defaultFacility = NewFacility(Options{})

// Default returns the process-wide Facility used by the package-level API.
func Default() *Facility { return defaultFacility }

// SetLevel sets the runtime verbosity for tag. The wildcard tag "*" replaces
// the default applied to tags without an explicit entry; explicit entries are
// preserved. Re-registering a tag updates its level in place. Out-of-range
// levels are clamped to the nearest valid level; an empty tag is ignored.
func (f *Facility) SetLevel(tag string, level Level) {
	f.reg.setLevel(tag, level)
}

// LevelFor returns the effective runtime level for tag: its explicit entry
// when one exists, the default otherwise.
func (f *Facility) LevelFor(tag string) Level {
	return f.reg.levelFor(tag)
}

// SetSink atomically replaces the facility's output sink. A nil sink installs
// Discard. In color auto mode the new sink's destination is re-inspected.
func (f *Facility) SetSink(s Sink) {
	if s == nil {
		s = Discard
	}
	f.sink.Store(&sinkRef{sink: s})
	f.refreshColors()
}

// SetColorMode selects the color mode and re-resolves whether color framing
// is emitted.
func (f *Facility) SetColorMode(mode ColorMode) {
	f.colorMode.Store(int32(mode))
	f.refreshColors()
}

// NowMS returns the facility clock's current millisecond timestamp.
func (f *Facility) NowMS() uint32 { return f.clock.NowMS() }

// SchedulerStarted switches the facility clock to its tick-derived source.
// See Clock.SchedulerStarted.
func (f *Facility) SchedulerStarted(tick TickFunc, period time.Duration) {
	f.clock.SchedulerStarted(tick, period)
}

func (f *Facility) currentSink() Sink {
	ref := f.sink.Load()
	if ref == nil {
		return Discard
	}
	return ref.sink
}

func (f *Facility) refreshColors() {
	f.colorEnabled.Store(f.resolveColors(ColorMode(f.colorMode.Load())))
}

func (f *Facility) resolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if wp, ok := f.currentSink().(writerProvider); ok {
		return isTerminal(wp.Writer())
	}
	return false
}

// SetLevel adjusts the runtime verbosity for tag on the default Facility.
func SetLevel(tag string, level Level) { Default().SetLevel(tag, level) }

// LevelFor returns the effective runtime level for tag on the default
// Facility.
func LevelFor(tag string) Level { return Default().LevelFor(tag) }

// SetSink replaces the default Facility's output sink.
func SetSink(s Sink) { Default().SetSink(s) }

// SetColorMode selects the default Facility's color mode.
func SetColorMode(mode ColorMode) { Default().SetColorMode(mode) }

// NowMS returns the default Facility's current millisecond timestamp.
func NowMS() uint32 { return Default().NowMS() }

// SchedulerStarted switches the default Facility's clock to its tick-derived
// source.
func SchedulerStarted(tick TickFunc, period time.Duration) {
	Default().SchedulerStarted(tick, period)
}
