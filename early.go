package siltin

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ELMASKPO/siltin/ansi"
)

// earlyLineMax bounds the stack buffer the early path renders into. Longer
// lines spill into a heap-backed append, which only happens for messages the
// early path was never meant for.
const earlyLineMax = 256

// earlyOut is the primitive destination: the process console, fixed for the
// process lifetime and never routed through the Sink abstraction. Swapped
// only by internal tests.
var earlyOut = os.Stdout

// EarlyLogf is the primitive behind the EarlyErrorf..EarlyVerbosef wrappers.
// It applies the same tag filtering as the normal path through a lock-free
// registry snapshot, renders into a stack buffer, and writes directly to the
// process console — no sink, no pool, no registry write lock. It is the
// sanctioned path for code running before runtime init completes.
func EarlyLogf(level Level, tag, format string, args ...any) {
	earlyEmit(level, tag, format, args)
}

func earlyEmit(level Level, tag, format string, args []any) {
	if level <= LevelNone {
		return
	}
	f := Default()
	if level > f.reg.snapshotLevel(tag) {
		return
	}
	colorOff := ""
	var scratch [earlyLineMax]byte
	buf := scratch[:0]
	if f.colorEnabled.Load() {
		if c := levelColor(ansi.Snapshot(), level); c != "" {
			buf = append(buf, c...)
			colorOff = ansi.Reset
		}
	}
	buf = append(buf, level.Letter())
	buf = append(buf, " ("...)
	buf = strconv.AppendUint(buf, uint64(f.clock.NowMS()), 10)
	buf = append(buf, ") "...)
	buf = append(buf, tag...)
	buf = append(buf, ": "...)
	if len(args) == 0 {
		buf = append(buf, format...)
	} else {
		buf = fmt.Appendf(buf, format, args...)
	}
	buf = append(buf, colorOff...)
	buf = append(buf, '\n')
	_, _ = earlyOut.Write(buf)
}
