package api

import (
	"io"
	"log/slog"

	"github.com/sarchlab/ipparse/core"
	"github.com/sarchlab/ipparse/emit"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	translator core.TranslatorBuilder
	emitter    Emitter
	logger     *slog.Logger

	lintOut    io.Writer
	listingOut io.Writer
	dumpOut    io.Writer
	dumpFormat emit.DumpFormat
}

// NewDriverBuilder returns a builder for drivers that translate IPPcode24.
func NewDriverBuilder() DriverBuilder {
	return DriverBuilder{
		translator: core.NewTranslatorBuilder(),
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithTranslator sets the builder used to create the translator of each run.
func (b DriverBuilder) WithTranslator(t core.TranslatorBuilder) DriverBuilder {
	b.translator = t
	return b
}

// WithEmitter sets where the finished document goes.
func (b DriverBuilder) WithEmitter(e Emitter) DriverBuilder {
	b.emitter = e
	return b
}

// WithLogger sets the logger of the driver and its translators.
func (b DriverBuilder) WithLogger(logger *slog.Logger) DriverBuilder {
	b.logger = logger
	return b
}

// WithLint enables the lint report, written to w.
func (b DriverBuilder) WithLint(w io.Writer) DriverBuilder {
	b.lintOut = w
	return b
}

// WithListing enables the instruction listing, written to w.
func (b DriverBuilder) WithListing(w io.Writer) DriverBuilder {
	b.listingOut = w
	return b
}

// WithDump enables a dump of the document tree in format f, written to w.
func (b DriverBuilder) WithDump(f emit.DumpFormat, w io.Writer) DriverBuilder {
	b.dumpFormat = f
	b.dumpOut = w
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build() Driver {
	if b.emitter == nil {
		panic("driver needs an emitter")
	}

	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &driverImpl{
		translator: b.translator,
		emitter:    b.emitter,
		logger:     logger,
		lintOut:    b.lintOut,
		listingOut: b.listingOut,
		dumpOut:    b.dumpOut,
		dumpFormat: b.dumpFormat,
	}
}
