// Package api defines the driver API that runs one translation end to end.
package api

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sarchlab/ipparse/core"
	"github.com/sarchlab/ipparse/emit"
	"github.com/sarchlab/ipparse/verify"
)

// Emitter receives the finished document tree.
type Emitter interface {
	// Emit writes the document. It is called at most once per run and only
	// after the whole source has been translated successfully.
	Emit(doc *emit.Node) error
}

// Driver provides the interface to run a translation.
type Driver interface {
	// Run translates the source read from r. On success the document is
	// handed to the emitter. On failure nothing is emitted and the returned
	// error maps to the process exit code through core.ExitCode.
	Run(r io.Reader) error
}

type driverImpl struct {
	translator core.TranslatorBuilder
	emitter    Emitter
	logger     *slog.Logger

	lintOut    io.Writer
	listingOut io.Writer
	dumpOut    io.Writer
	dumpFormat emit.DumpFormat
}

// Run translates r and emits the result.
func (d *driverImpl) Run(r io.Reader) error {
	t := d.translator.WithLogger(d.logger).Build()

	program, err := t.Translate(r)
	if err != nil {
		d.logger.Debug("translation failed",
			"kind", core.KindOf(err).String(), "exit", core.ExitCode(err), "error", err)
		return err
	}
	core.LogProgram(d.logger, program)

	doc, err := emit.Build(program)
	if err != nil {
		return err
	}

	d.writeDiagnostics(program, doc)

	if err := d.emitter.Emit(doc); err != nil {
		return fmt.Errorf("emitting %s document: %w", program.Language, err)
	}

	return nil
}

// writeDiagnostics renders the optional lint report, listing and tree dump.
// They are advisory, so a failing dump is logged and the run goes on.
func (d *driverImpl) writeDiagnostics(program core.Program, doc *emit.Node) {
	if d.lintOut != nil {
		report := verify.GenerateReport(program)
		d.logger.Info("lint finished", "issues", len(report.Issues))
		report.WriteReport(d.lintOut)
	}

	if d.listingOut != nil {
		core.ListProgram(d.listingOut, program)
	}

	if d.dumpOut != nil {
		if err := emit.Dump(d.dumpOut, doc, d.dumpFormat); err != nil {
			d.logger.Warn("cannot dump document tree", "format", string(d.dumpFormat), "error", err)
		}
	}
}
