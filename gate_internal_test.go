//go:build !siltin_bootloader && !siltin_none && !siltin_error && !siltin_warn && !siltin_info && !siltin_debug && !siltin_verbose

package siltin

import "testing"

// These tests assert the default build: no level override tags, normal
// routing. Under override tags the constants below change by construction and
// the file is excluded.

func TestDefaultStaticLevel(t *testing.T) {
	if StaticLevel != LevelInfo {
		t.Fatalf("default compile-time threshold should be info, got %s", LevelString(StaticLevel))
	}
	if !ErrorEnabled || !WarnEnabled || !InfoEnabled {
		t.Fatalf("levels at or below the threshold must be enabled")
	}
	if DebugEnabled || VerboseEnabled {
		t.Fatalf("levels above the threshold must be disabled")
	}
}

func TestGatedWrappersNeverDispatch(t *testing.T) {
	rec := swapDefaultSink(t, &recordSink{})
	SetLevel("gate", LevelVerbose)
	t.Cleanup(func() { SetLevel("gate", StaticLevel) })

	Debugf("gate", "suppressed")
	Verbosef("gate", "suppressed")
	if len(rec.lines) != 0 {
		t.Fatalf("wrappers above the compile-time threshold must be no-ops, got %q", rec.lines)
	}
	Infof("gate", "delivered")
	if len(rec.lines) != 1 {
		t.Fatalf("enabled wrapper dropped, got %d lines", len(rec.lines))
	}
}

func TestGateConstantSkipsArgumentEvaluation(t *testing.T) {
	evaluated := false
	expensive := func() string {
		evaluated = true
		return "dump"
	}
	if VerboseEnabled {
		Verbosef("gate", "state %s", expensive())
	}
	if evaluated {
		t.Fatalf("guarded arguments must not be evaluated when the gate is closed")
	}
}

func TestLogfPrimitiveIgnoresGate(t *testing.T) {
	rec := swapDefaultSink(t, &recordSink{})
	SetLevel("gate", LevelVerbose)
	t.Cleanup(func() { SetLevel("gate", StaticLevel) })

	// The ungated primitive follows the registry alone.
	Default().Logf(LevelVerbose, "gate", "runtime says yes")
	if len(rec.lines) != 1 {
		t.Fatalf("primitive must honor the registry, not the gate; got %d lines", len(rec.lines))
	}
}
