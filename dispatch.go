package siltin

import (
	"github.com/ELMASKPO/siltin/ansi"
)

// Logf is the runtime primitive behind the leveled wrappers: it consults the
// registry for tag's effective level, drops the call when level exceeds it,
// and otherwise renders and forwards one line to the current sink. It never
// returns an error and must not be called from interrupt-style contexts in
// its normal form; the early path is the sanctioned alternative there.
func (f *Facility) Logf(level Level, tag, format string, args ...any) {
	f.logf(level, tag, format, args)
}

func (f *Facility) logf(level Level, tag, format string, args []any) {
	if level <= LevelNone {
		return
	}
	if level > f.reg.levelFor(tag) {
		return
	}
	f.emit(level, tag, format, args)
}

func (f *Facility) emit(level Level, tag, format string, args []any) {
	colorOn, colorOff := "", ""
	if f.colorEnabled.Load() {
		if c := levelColor(ansi.Snapshot(), level); c != "" {
			colorOn, colorOff = c, ansi.Reset
		}
	}
	lw := acquireLineWriter()
	if hint := f.lineHint.Load(); hint > 0 {
		lw.preallocate(int(hint))
	}
	lw.reserve(len(colorOn) + len(colorOff) + len(tag) + len(format) + len(args)*8 + 16)
	lw.writeString(colorOn)
	lw.writeByte(level.Letter())
	lw.writeString(" (")
	lw.writeUint64(uint64(f.clock.NowMS()))
	lw.writeString(") ")
	lw.writeString(tag)
	lw.writeString(": ")
	if len(args) == 0 {
		lw.writeString(format)
	} else {
		lw.appendf(format, args)
	}
	lw.writeString(colorOff)
	lw.writeByte('\n')
	line := lw.string()
	updateLineHint(&f.lineHint, lw.length())
	releaseLineWriter(lw)
	_, _ = f.currentSink().Writef(line)
}

func levelColor(pal ansi.Palette, level Level) string {
	switch level {
	case LevelError:
		return pal.Error
	case LevelWarn:
		return pal.Warn
	case LevelInfo:
		return pal.Info
	case LevelDebug:
		return pal.Debug
	case LevelVerbose:
		return pal.Verbose
	default:
		return ""
	}
}
