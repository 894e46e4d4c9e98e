package siltin

// StaticLevel is the compile-time threshold resolved from build tags. Leveled
// wrappers above it compile to empty functions; the matching *Enabled
// constants let call sites remove argument evaluation as well:
//
//	if siltin.DebugEnabled {
//		siltin.Debugf(tag, "parsed %d entries from %s", n, expensiveDump())
//	}
const StaticLevel Level = staticLevel

// Per-level gate constants. Each is a compile-time constant, so a false
// branch guarding a call site is deleted from the build together with its
// argument expressions.
const (
	ErrorEnabled   = staticLevel >= LevelError
	WarnEnabled    = staticLevel >= LevelWarn
	InfoEnabled    = staticLevel >= LevelInfo
	DebugEnabled   = staticLevel >= LevelDebug
	VerboseEnabled = staticLevel >= LevelVerbose
)

// Errorf logs at LevelError through the normal dispatch path.
func Errorf(tag, format string, args ...any) {
	if ErrorEnabled {
		logStatic(LevelError, tag, format, args)
	}
}

// Warnf logs at LevelWarn through the normal dispatch path.
func Warnf(tag, format string, args ...any) {
	if WarnEnabled {
		logStatic(LevelWarn, tag, format, args)
	}
}

// Infof logs at LevelInfo through the normal dispatch path.
func Infof(tag, format string, args ...any) {
	if InfoEnabled {
		logStatic(LevelInfo, tag, format, args)
	}
}

// Debugf logs at LevelDebug through the normal dispatch path.
func Debugf(tag, format string, args ...any) {
	if DebugEnabled {
		logStatic(LevelDebug, tag, format, args)
	}
}

// Verbosef logs at LevelVerbose through the normal dispatch path.
func Verbosef(tag, format string, args ...any) {
	if VerboseEnabled {
		logStatic(LevelVerbose, tag, format, args)
	}
}

// EarlyErrorf logs at LevelError through the early path.
func EarlyErrorf(tag, format string, args ...any) {
	if ErrorEnabled {
		earlyEmit(LevelError, tag, format, args)
	}
}

// EarlyWarnf logs at LevelWarn through the early path.
func EarlyWarnf(tag, format string, args ...any) {
	if WarnEnabled {
		earlyEmit(LevelWarn, tag, format, args)
	}
}

// EarlyInfof logs at LevelInfo through the early path.
func EarlyInfof(tag, format string, args ...any) {
	if InfoEnabled {
		earlyEmit(LevelInfo, tag, format, args)
	}
}

// EarlyDebugf logs at LevelDebug through the early path.
func EarlyDebugf(tag, format string, args ...any) {
	if DebugEnabled {
		earlyEmit(LevelDebug, tag, format, args)
	}
}

// EarlyVerbosef logs at LevelVerbose through the early path.
func EarlyVerbosef(tag, format string, args ...any) {
	if VerboseEnabled {
		earlyEmit(LevelVerbose, tag, format, args)
	}
}
