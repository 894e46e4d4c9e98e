package siltin

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// EnvOption customizes ConfigureFromEnv behavior.
type EnvOption func(*envConfig)

type envConfig struct {
	prefix string
}

// WithEnvPrefix overrides the environment variable prefix used by
// ConfigureFromEnv. The default is "SILTIN_".
func WithEnvPrefix(prefix string) EnvOption {
	return func(cfg *envConfig) {
		cfg.prefix = prefix
	}
}

// ConfigureFromEnv applies environment configuration to the default
// Facility. See Facility.ConfigureFromEnv.
func ConfigureFromEnv(opts ...EnvOption) {
	Default().ConfigureFromEnv(opts...)
}

// ConfigureFromEnv reads runtime configuration from the environment:
//
//   - {prefix}LEVELS: comma-separated tag=level pairs, e.g.
//     "*=error,wifi=warn,dhcpc=info". Malformed pairs are skipped.
//   - {prefix}COLORS: "auto", or any boolean accepted by strconv.ParseBool.
//   - {prefix}OUTPUT: "stdout", "stderr", a file path (append mode), or
//     "stdout+path" / "stderr+path" to tee. File destinations are owned by
//     the facility and closed when a later ConfigureFromEnv replaces them.
//
// Unset variables leave the corresponding setting untouched. A destination
// that cannot be opened is reported through the facility itself and the sink
// is left as is.
func (f *Facility) ConfigureFromEnv(opts ...EnvOption) {
	cfg := envConfig{prefix: "SILTIN_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if value, ok := lookupEnv(cfg.prefix, "LEVELS"); ok {
		f.applyLevelSpec(value)
	}
	if value, ok := lookupEnv(cfg.prefix, "COLORS"); ok {
		if mode, ok := parseEnvColors(value); ok {
			f.SetColorMode(mode)
		}
	}
	if value, ok := lookupEnv(cfg.prefix, "OUTPUT"); ok {
		sink, closer, err := sinkFromEnvOutput(value)
		if err != nil {
			f.logf(LevelError, "siltin", "%v", []any{err})
			return
		}
		if sink != nil {
			f.installOwnedSink(sink, closer)
		}
	}
}

func (f *Facility) applyLevelSpec(spec string) {
	for _, pair := range strings.Split(spec, ",") {
		tag, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		tag = strings.TrimSpace(tag)
		level, ok := ParseLevel(value)
		if !ok || tag == "" {
			continue
		}
		f.SetLevel(tag, level)
	}
}

func (f *Facility) installOwnedSink(sink Sink, closer io.Closer) {
	f.envMu.Lock()
	old := f.envOwned
	f.envOwned = closer
	f.SetSink(sink)
	f.envMu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvBool(value string) (bool, bool) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return parsed, true
}

func parseEnvColors(value string) (ColorMode, bool) {
	if strings.EqualFold(strings.TrimSpace(value), "auto") {
		return ColorAuto, true
	}
	if parsed, ok := parseEnvBool(value); ok {
		if parsed {
			return ColorAlways, true
		}
		return ColorNever, true
	}
	return ColorAuto, false
}

func sinkFromEnvOutput(value string) (Sink, io.Closer, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil, nil
	}
	lowered := strings.ToLower(trimmed)
	switch lowered {
	case "stdout":
		return consoleSink{out: os.Stdout}, nil, nil
	case "stderr":
		return consoleSink{out: os.Stderr}, nil, nil
	}
	const (
		stdoutPrefix = "stdout+"
		stderrPrefix = "stderr+"
	)
	switch {
	case strings.HasPrefix(lowered, stdoutPrefix):
		return teeSink(os.Stdout, strings.TrimSpace(trimmed[len(stdoutPrefix):]))
	case strings.HasPrefix(lowered, stderrPrefix):
		return teeSink(os.Stderr, strings.TrimSpace(trimmed[len(stderrPrefix):]))
	default:
		file, err := openLogOutputFile(trimmed)
		if err != nil {
			return nil, nil, err
		}
		owned := newOwnedOutput(file, file)
		return SinkWriter(owned), owned, nil
	}
}

func teeSink(console *os.File, path string) (Sink, io.Closer, error) {
	if path == "" {
		return consoleSink{out: console}, nil, nil
	}
	file, err := openLogOutputFile(path)
	if err != nil {
		return nil, nil, err
	}
	owned := newOwnedOutput(newTeeWriter(console, file), file)
	return SinkWriter(owned), owned, nil
}

func openLogOutputFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", path, err)
	}
	return file, nil
}
