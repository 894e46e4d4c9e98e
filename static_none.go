//go:build siltin_none

package siltin

const staticLevel = LevelNone
