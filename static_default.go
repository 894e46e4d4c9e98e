//go:build !siltin_bootloader && !siltin_none && !siltin_error && !siltin_warn && !siltin_info && !siltin_debug && !siltin_verbose

package siltin

// staticLevel is the compiled-in threshold when no level tag is given.
const staticLevel = LevelInfo
