// Package config turns command-line options into a configured driver.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sarchlab/ipparse/api"
	"github.com/sarchlab/ipparse/core"
	"github.com/sarchlab/ipparse/emit"
)

// Options are the settings of one ipparse run.
type Options struct {
	// Input is the source file. Empty means standard input.
	Input string

	Lint    bool
	Listing bool
	// Dump names a tree dump format, or is empty for no dump.
	Dump    string
	Verbose int
}

// Validate checks option values that flag parsing cannot.
func (o Options) Validate() error {
	if o.Verbose < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", o.Verbose)
	}

	if o.Dump != "" {
		if _, err := emit.ParseDumpFormat(o.Dump); err != nil {
			return err
		}
	}

	return nil
}

// LogLevel maps the verbosity count to a log level: warnings only, then debug,
// then trace.
func (o Options) LogLevel() slog.Level {
	switch {
	case o.Verbose <= 0:
		return slog.LevelWarn
	case o.Verbose == 1:
		return slog.LevelDebug
	default:
		return core.LevelTrace
	}
}

// NewLogger creates a text logger on w filtered at the configured level.
func (o Options) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       o.LogLevel(),
		ReplaceAttr: levelNames,
	}))
}

func levelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	if level, ok := a.Value.Any().(slog.Level); ok && level == core.LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}

// DriverBuilder returns a builder with the document going to stdout and every
// enabled diagnostic going to diag. The options must be valid.
func (o Options) DriverBuilder(stdout, diag io.Writer, logger *slog.Logger) api.DriverBuilder {
	b := api.NewDriverBuilder().
		WithLogger(logger).
		WithEmitter(emit.NewXMLEmitter(stdout))

	if o.Lint {
		b = b.WithLint(diag)
	}

	if o.Listing {
		b = b.WithListing(diag)
	}

	if o.Dump != "" {
		f, err := emit.ParseDumpFormat(o.Dump)
		if err != nil {
			panic(err)
		}
		b = b.WithDump(f, diag)
	}

	return b
}
