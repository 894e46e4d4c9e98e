//go:build siltin_error && !siltin_none

package siltin

const staticLevel = LevelError
