package siltin

import "sync/atomic"

// WriteFailure describes one failed write observed by ObservedSink.
type WriteFailure struct {
	Err       error
	Written   int
	Attempted int
}

// ObservedSinkStats captures aggregated failure counters for ObservedSink.
type ObservedSinkStats struct {
	Failures    uint64
	ShortWrites uint64
}

// ObservedSink wraps a Sink and records write failures, so log loss can be
// observed even though dispatch itself swallows sink errors.
type ObservedSink struct {
	dst        Sink
	onFailure  func(WriteFailure)
	failures   atomic.Uint64
	shortWrite atomic.Uint64
}

// NewObservedSink wraps dst with failure observation hooks.
func NewObservedSink(dst Sink, onFailure func(WriteFailure)) *ObservedSink {
	if dst == nil {
		dst = Discard
	}
	return &ObservedSink{
		dst:       dst,
		onFailure: onFailure,
	}
}

// Writef forwards to the wrapped sink and counts failures and short writes.
func (s *ObservedSink) Writef(text string, args ...any) (int, error) {
	if s == nil || s.dst == nil {
		return len(text), nil
	}

	n, err := s.dst.Writef(text, args...)
	if err == nil && len(args) == 0 && n != len(text) {
		s.shortWrite.Add(1)
	}
	if err != nil {
		s.failures.Add(1)
		if s.onFailure != nil {
			s.onFailure(WriteFailure{
				Err:       err,
				Written:   n,
				Attempted: len(text),
			})
		}
	}

	return n, err
}

// Stats returns cumulative write-failure counters.
func (s *ObservedSink) Stats() ObservedSinkStats {
	if s == nil {
		return ObservedSinkStats{}
	}
	return ObservedSinkStats{
		Failures:    s.failures.Load(),
		ShortWrites: s.shortWrite.Load(),
	}
}
