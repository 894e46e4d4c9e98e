//go:build siltin_bootloader && !siltin_none && !siltin_error && !siltin_warn && !siltin_info && !siltin_debug && !siltin_verbose

package siltin

// Bootloader builds default to a stricter compiled-in threshold.
const staticLevel = LevelWarn
