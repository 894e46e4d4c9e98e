//go:build siltin_info && !siltin_warn && !siltin_error && !siltin_none

package siltin

const staticLevel = LevelInfo
