package config_test

import (
	"bytes"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ipparse/config"
	"github.com/sarchlab/ipparse/core"
)

var _ = Describe("Options", func() {
	DescribeTable("validation",
		func(o config.Options, ok bool) {
			if ok {
				Expect(o.Validate()).To(Succeed())
			} else {
				Expect(o.Validate()).NotTo(Succeed())
			}
		},
		Entry("defaults", config.Options{}, true),
		Entry("yaml dump", config.Options{Dump: "yaml"}, true),
		Entry("pp dump", config.Options{Dump: "pp"}, true),
		Entry("unknown dump", config.Options{Dump: "json"}, false),
		Entry("negative verbosity", config.Options{Verbose: -1}, false),
	)

	DescribeTable("log level",
		func(verbose int, level slog.Level) {
			Expect(config.Options{Verbose: verbose}.LogLevel()).To(Equal(level))
		},
		Entry("quiet", 0, slog.LevelWarn),
		Entry("-v", 1, slog.LevelDebug),
		Entry("-vv", 2, core.LevelTrace),
		Entry("more", 7, core.LevelTrace),
	)

	It("should name the trace level", func() {
		var buf bytes.Buffer
		logger := config.Options{Verbose: 2}.NewLogger(&buf)

		core.Trace(logger, "operand accepted")

		Expect(buf.String()).To(ContainSubstring("level=TRACE"))
	})

	It("should write the document to stdout and diagnostics to diag", func() {
		var stdout, diag bytes.Buffer
		o := config.Options{Lint: true, Listing: true, Dump: "yaml"}
		Expect(o.Validate()).To(Succeed())

		d := o.DriverBuilder(&stdout, &diag, slog.New(slog.DiscardHandler)).Build()
		err := d.Run(strings.NewReader(".IPPcode24\nDPRINT int@1\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(ContainSubstring(`<instruction order="1" opcode="DPRINT">`))
		Expect(stdout.String()).NotTo(ContainSubstring("LINT REPORT"))
		Expect(diag.String()).To(ContainSubstring("LINT REPORT"))
		Expect(diag.String()).To(ContainSubstring("element: instruction"))
	})

	It("should keep stdout to the document alone by default", func() {
		var stdout, diag bytes.Buffer

		d := config.Options{}.DriverBuilder(&stdout, &diag, slog.New(slog.DiscardHandler)).Build()

		Expect(d.Run(strings.NewReader(".IPPcode24\nBREAK"))).To(Succeed())
		Expect(diag.Len()).To(BeZero())
		Expect(stdout.String()).To(HaveSuffix("</program>\n"))
	})
})
