package siltin_test

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ELMASKPO/siltin"
)

func TestSetSinkSwapIsImmediatelyVisible(t *testing.T) {
	first := &captureSink{}
	second := &captureSink{}
	f := siltin.NewFacility(siltin.Options{Sink: first, Colors: siltin.ColorNever})
	f.Logf(siltin.LevelInfo, "x", "one")
	f.SetSink(second)
	f.Logf(siltin.LevelInfo, "x", "two")
	if first.count() != 1 || second.count() != 1 {
		t.Fatalf("swap not honored: first=%d second=%d", first.count(), second.count())
	}
}

func TestSetSinkNilInstallsDiscard(t *testing.T) {
	capture := &captureSink{}
	f := siltin.NewFacility(siltin.Options{Sink: capture, Colors: siltin.ColorNever})
	f.SetSink(nil)
	f.Logf(siltin.LevelInfo, "x", "dropped")
	f.SetSink(capture)
	f.Logf(siltin.LevelInfo, "x", "kept")
	lines := capture.all()
	if len(lines) != 1 || !strings.Contains(lines[0], "kept") {
		t.Fatalf("nil sink should discard without panicking, got %q", lines)
	}
}

func TestSinkFuncAdapter(t *testing.T) {
	var got string
	f := siltin.NewFacility(siltin.Options{
		Sink: siltin.SinkFunc(func(text string, args ...any) (int, error) {
			got = text
			return len(text), nil
		}),
		Colors: siltin.ColorNever,
	})
	f.Logf(siltin.LevelWarn, "adc", "saturated")
	if !strings.Contains(got, "adc: saturated") {
		t.Fatalf("SinkFunc did not receive the line: %q", got)
	}
}

func TestSinkWriterStandalonePrintf(t *testing.T) {
	var buf bytes.Buffer
	sink := siltin.SinkWriter(&buf)
	if _, err := sink.Writef("boot stage %d of %d\n", 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "boot stage 2 of 3\n" {
		t.Fatalf("printf behavior broken: %q", buf.String())
	}
	buf.Reset()
	if _, err := sink.Writef("literal 50%\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "literal 50%\n" {
		t.Fatalf("argument-free write must not interpret verbs: %q", buf.String())
	}
}

func TestSinkWriterNilWriterDiscards(t *testing.T) {
	sink := siltin.SinkWriter(nil)
	if n, err := sink.Writef("gone"); err != nil || n != 4 {
		t.Fatalf("nil writer should discard cleanly, got n=%d err=%v", n, err)
	}
}

func TestDiscardReportsFullLength(t *testing.T) {
	if n, err := siltin.Discard.Writef("hello"); err != nil || n != 5 {
		t.Fatalf("got n=%d err=%v", n, err)
	}
}

func TestConcurrentSinkSwapDuringDispatch(t *testing.T) {
	var a, b atomic.Uint64
	sinkA := siltin.SinkFunc(func(text string, args ...any) (int, error) {
		a.Add(1)
		return len(text), nil
	})
	sinkB := siltin.SinkFunc(func(text string, args ...any) (int, error) {
		b.Add(1)
		return len(text), nil
	})
	f := siltin.NewFacility(siltin.Options{Sink: sinkA, Colors: siltin.ColorNever})

	const writes = 2000
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			f.Logf(siltin.LevelInfo, "swap", "line %d", i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				f.SetSink(sinkB)
			} else {
				f.SetSink(sinkA)
			}
		}
	}()
	wg.Wait()
	if a.Load()+b.Load() != writes {
		t.Fatalf("lines lost or duplicated during swaps: a=%d b=%d", a.Load(), b.Load())
	}
}
