//go:build siltin_verbose && !siltin_debug && !siltin_info && !siltin_warn && !siltin_error && !siltin_none

package siltin

const staticLevel = LevelVerbose
