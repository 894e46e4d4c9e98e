//go:build siltin_warn && !siltin_error && !siltin_none

package siltin

const staticLevel = LevelWarn
