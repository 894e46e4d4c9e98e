// Package siltin is a tag-filtered, leveled logging facility shaped for
// firmware-style deployments: small, synchronous, and cheap to disable. Every
// module logs under a short tag, an operator raises or lowers verbosity per
// tag at runtime, and the build can remove disabled call sites entirely.
//
// # Design overview
//
//   - Two-stage filtering: a compile-time gate resolved from build tags
//     removes statically disabled wrappers from the binary, then a runtime
//     registry maps tags to effective levels on every surviving call.
//   - Two dispatch paths: the normal path renders through a pooled line
//     writer and forwards to a replaceable Sink; the early path renders into
//     a stack buffer and writes straight to the process console, for code
//     that runs before the runtime facilities it would otherwise need.
//   - Dual timestamp source: millisecond estimates come from the CPU cycle
//     counter until SchedulerStarted switches (once, irreversibly) to a
//     tick-derived value.
//
// # Usage
//
// Each module picks a tag and logs through the leveled wrappers:
//
//	const tag = "wifi"
//	siltin.Infof(tag, "associated to %q in %d ms", ssid, elapsed)
//
// Runtime verbosity is adjusted per tag, with "*" addressing the default
// applied to tags that have no explicit entry:
//
//	siltin.SetLevel("*", siltin.LevelError)  // quiet everything
//	siltin.SetLevel("wifi", siltin.LevelWarn) // but keep wifi warnings
//
// Output goes to the process console until a replacement sink is installed:
//
//	siltin.SetSink(siltin.SinkWriter(conn))
//
// # Compile-time gate
//
// The static threshold defaults to Info and is overridden with one of the
// build tags siltin_none, siltin_error, siltin_warn, siltin_info,
// siltin_debug, or siltin_verbose (when several are set the strictest wins).
// Wrappers above the threshold compile to empty functions. To keep argument
// evaluation out of the binary as well, guard the call with the matching
// constant; the branch is compile-time constant and is deleted when false:
//
//	if siltin.VerboseEnabled {
//		siltin.Verbosef(tag, "rx %s", hexdump(frame))
//	}
//
// Logf is the runtime primitive behind the wrappers and is not statically
// gated.
//
// # Early logging
//
// EarlyLogf and the EarlyErrorf..EarlyVerbosef wrappers are usable before the
// sink, the pool, or the scheduler exist. They apply the same tag filtering
// through a lock-free registry snapshot but write directly to the console and
// never touch the registry's write lock. The siltin_bootloader build tag
// forces every call, including Logf, onto the early path and switches the
// default static threshold to the stricter bootloader default (Warn).
//
// The ansi subpackage holds the escape codes and the per-level palette used
// when color output is enabled.
package siltin
