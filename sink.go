package siltin

import (
	"fmt"
	"io"
	"os"
)

// Sink is the replaceable destination for rendered log lines. Writef follows
// the printf convention so standalone destinations remain usable as general
// formatted writers; the dispatch engine always passes fully rendered text
// with no arguments. Write failures are ignored by the engine — wrap a sink
// in ObservedSink to count them.
type Sink interface {
	Writef(text string, args ...any) (int, error)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(text string, args ...any) (int, error)

// Writef calls fn.
func (fn SinkFunc) Writef(text string, args ...any) (int, error) {
	return fn(text, args...)
}

type sinkRef struct {
	sink Sink
}

// writerProvider is implemented by sinks that expose their destination, so
// color auto mode can inspect it for terminal-ness.
type writerProvider interface {
	Writer() io.Writer
}

// consoleSink is the default destination: the process console.
type consoleSink struct {
	out *os.File
}

func (c consoleSink) Writef(text string, args ...any) (int, error) {
	if len(args) == 0 {
		return c.out.WriteString(text)
	}
	return fmt.Fprintf(c.out, text, args...)
}

func (c consoleSink) Writer() io.Writer { return c.out }

// SinkWriter adapts an io.Writer into a Sink. A nil writer yields a sink
// that discards its input.
func SinkWriter(w io.Writer) Sink {
	if w == nil {
		w = io.Discard
	}
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Writef(text string, args ...any) (int, error) {
	if len(args) == 0 {
		return io.WriteString(s.w, text)
	}
	return fmt.Fprintf(s.w, text, args...)
}

func (s writerSink) Writer() io.Writer { return s.w }

// Discard is a Sink that drops everything.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Writef(text string, args ...any) (int, error) {
	return len(text), nil
}
