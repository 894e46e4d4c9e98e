//go:build !siltin_bootloader

package siltin

// Logf is the runtime primitive behind the leveled wrappers on the default
// Facility. It is not statically gated; the build tags only remove the
// wrappers. Must not be called from interrupt-style contexts in its normal
// form.
func Logf(level Level, tag, format string, args ...any) {
	Default().logf(level, tag, format, args)
}

func logStatic(level Level, tag, format string, args []any) {
	Default().logf(level, tag, format, args)
}
