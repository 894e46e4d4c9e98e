//go:build siltin_bootloader

package siltin

// In bootloader builds the dynamic facilities never come up, so every call —
// the leveled wrappers and the Logf primitive alike — takes the early path.

// Logf routes to the early path in bootloader builds.
func Logf(level Level, tag, format string, args ...any) {
	earlyEmit(level, tag, format, args)
}

func logStatic(level Level, tag, format string, args []any) {
	earlyEmit(level, tag, format, args)
}
