//go:build siltin_debug && !siltin_info && !siltin_warn && !siltin_error && !siltin_none

package siltin

const staticLevel = LevelDebug
