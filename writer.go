package siltin

import (
	"fmt"
	"strconv"
	"sync"
)

const (
	lineWriterDefaultCap = 256
	lineWriterMaxCap     = 8 << 10
)

// lineWriter assembles one rendered log line. Instances are pooled; a writer
// holds no destination and only accumulates bytes until the caller takes the
// finished line.
type lineWriter struct {
	buf []byte
}

var lineWriterPool = sync.Pool{
	New: func() any {
		return &lineWriter{buf: make([]byte, 0, lineWriterDefaultCap)}
	},
}

func acquireLineWriter() *lineWriter {
	lw := lineWriterPool.Get().(*lineWriter)
	lw.buf = lw.buf[:0]
	return lw
}

func releaseLineWriter(lw *lineWriter) {
	if cap(lw.buf) > lineWriterMaxCap {
		lw.buf = make([]byte, 0, lineWriterDefaultCap)
	} else {
		lw.buf = lw.buf[:0]
	}
	lineWriterPool.Put(lw)
}

func (lw *lineWriter) reserve(n int) {
	if n <= 0 {
		return
	}
	need := len(lw.buf) + n
	if need <= cap(lw.buf) {
		return
	}
	newCap := max(cap(lw.buf)*2+n, need)
	if newCap > lineWriterMaxCap {
		newCap = need
	}
	newBuf := make([]byte, len(lw.buf), newCap)
	copy(newBuf, lw.buf)
	lw.buf = newBuf
}

func (lw *lineWriter) preallocate(n int) {
	if n <= 0 || len(lw.buf) != 0 {
		return
	}
	if n > lineWriterMaxCap {
		n = lineWriterMaxCap
	}
	lw.reserve(n)
}

func (lw *lineWriter) writeByte(b byte) {
	lw.reserve(1)
	lw.buf = append(lw.buf, b)
}

func (lw *lineWriter) writeString(s string) {
	if s == "" {
		return
	}
	lw.reserve(len(s))
	lw.buf = append(lw.buf, s...)
}

func (lw *lineWriter) writeUint64(n uint64) {
	lw.reserve(20)
	lw.buf = strconv.AppendUint(lw.buf, n, 10)
}

func (lw *lineWriter) appendf(format string, args []any) {
	lw.buf = fmt.Appendf(lw.buf, format, args...)
}

func (lw *lineWriter) length() int { return len(lw.buf) }

func (lw *lineWriter) string() string { return string(lw.buf) }
