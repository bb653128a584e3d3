// Package logging configures the diagnostic logger. Diagnostics go to stderr
// (or a log file) and never mix with the localized lines on stdout.
package logging

import (
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

const (
	envLogLevel = "FOLDER_OPENER_LOG_LEVEL"
	envJSONLog  = "FOLDER_OPENER_JSON_LOG"
	envLogPath  = "FOLDER_OPENER_LOG_PATH"

	defaultLevel = "warn"
	timeFormat   = "2006-01-02T15:04:05Z"
)

// Options is the logger configuration taken from the environment.
type Options struct {
	Level string
	JSON  bool
	Path  string // empty: stderr
}

// OptionsFromEnv reads FOLDER_OPENER_LOG_LEVEL, FOLDER_OPENER_JSON_LOG and
// FOLDER_OPENER_LOG_PATH.
func OptionsFromEnv() Options {
	opts := Options{
		Level: os.Getenv(envLogLevel),
		JSON:  os.Getenv(envJSONLog) == "1",
		Path:  os.Getenv(envLogPath),
	}
	if opts.Level == "" {
		opts.Level = defaultLevel
	}
	return opts
}

// linePrefix marks text log lines. Windows consoles get plain ASCII.
func linePrefix() string {
	if runtime.GOOS == "windows" {
		return "[FO] "
	}
	return "📂 "
}

// New builds an hclog logger writing to output (stderr when nil).
func New(name string, opts Options, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if !opts.JSON {
		output = NewPrefixWriter(linePrefix(), output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(opts.Level),
		JSONFormat: opts.JSON,
		Output:     output,
		TimeFormat: timeFormat,
		TimeFn:     func() time.Time { return time.Now().UTC() },
	})
}

// OpenOutput returns the log destination for opts. A log file that cannot be
// opened falls back to stderr. The close function is always safe to call.
func OpenOutput(opts Options) (io.Writer, func() error) {
	if opts.Path != "" {
		if file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			return file, file.Close
		}
	}
	return os.Stderr, func() error { return nil }
}

// WithRunID tags every line with a fresh run id, so a shared log file can be
// split per invocation.
func WithRunID(logger hclog.Logger) hclog.Logger {
	return logger.With("run_id", uuid.NewString())
}
