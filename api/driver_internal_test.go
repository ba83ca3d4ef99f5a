package api

import (
	"bytes"
	"errors"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ipparse/core"
	"github.com/sarchlab/ipparse/emit"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl    *gomock.Controller
		mockEmitter *MockEmitter
		builder     DriverBuilder
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockEmitter = NewMockEmitter(mockCtrl)
		builder = NewDriverBuilder().WithEmitter(mockEmitter)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should emit the translated program once", func() {
		var got *emit.Node
		mockEmitter.EXPECT().
			Emit(gomock.Any()).
			DoAndReturn(func(doc *emit.Node) error {
				got = doc
				return nil
			}).
			Times(1)

		err := builder.Build().Run(strings.NewReader(".IPPcode24\nDEFVAR GF@x\nMOVE GF@x int@0x10\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(got.Kind).To(Equal(emit.DocumentNode))
		Expect(got.Children).To(HaveLen(2))
		Expect(got.Children[1].Children[1].Text).To(Equal("0x10"))
	})

	DescribeTable("should not emit anything on failure",
		func(src string, exit int) {
			mockEmitter.EXPECT().Emit(gomock.Any()).Times(0)

			err := builder.Build().Run(strings.NewReader(src))

			Expect(core.ExitCode(err)).To(Equal(exit))
		},
		Entry("missing header", "MOVE GF@x int@1", 21),
		Entry("header only", ".IPPcode24\n", 21),
		Entry("unknown opcode late in the file", ".IPPcode24\nBREAK\nBREAK\nHALT", 22),
		Entry("malformed operand", ".IPPcode24\nWRITE bool@maybe", 23),
	)

	It("should not run diagnostics on failure", func() {
		var lint bytes.Buffer
		mockEmitter.EXPECT().Emit(gomock.Any()).Times(0)

		err := builder.WithLint(&lint).Build().Run(strings.NewReader(".IPPcode24\nFOO"))

		Expect(err).To(HaveOccurred())
		Expect(lint.Len()).To(BeZero())
	})

	It("should write the lint report, listing and dump", func() {
		var lint, listing, dump bytes.Buffer
		mockEmitter.EXPECT().Emit(gomock.Any()).Return(nil)

		d := builder.
			WithLint(&lint).
			WithListing(&listing).
			WithDump(emit.DumpYAML, &dump).
			Build()
		err := d.Run(strings.NewReader(".IPPcode24\nJUMP nowhere\nEXIT int@12\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(lint.String()).To(ContainSubstring("IPPCODE24 LINT REPORT"))
		Expect(lint.String()).To(ContainSubstring("Found 2 lint issues (1 LABEL, 1 EXIT, 0 DEBUG)"))
		Expect(listing.String()).To(ContainSubstring("JUMP"))
		Expect(listing.String()).To(ContainSubstring("label: nowhere"))
		Expect(dump.String()).To(ContainSubstring("element: program"))
	})

	It("should keep going when the dump format is unknown", func() {
		var dump bytes.Buffer
		mockEmitter.EXPECT().Emit(gomock.Any()).Return(nil)

		d := builder.WithDump(emit.DumpFormat("json"), &dump).Build()

		Expect(d.Run(strings.NewReader(".IPPcode24\nBREAK"))).To(Succeed())
		Expect(dump.Len()).To(BeZero())
	})

	It("should pass emitter errors through", func() {
		cause := &core.Error{Kind: core.KindOutput, Msg: "cannot write document"}
		mockEmitter.EXPECT().Emit(gomock.Any()).Return(cause)

		err := builder.Build().Run(strings.NewReader(".IPPcode24\nBREAK"))

		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(core.ExitCode(err)).To(Equal(core.ExitOutput))
	})

	It("should refuse to build without an emitter", func() {
		Expect(func() { NewDriverBuilder().Build() }).To(Panic())
	})
})

var _ = Describe("Driver with the XML emitter", func() {
	It("should write the document", func() {
		var out bytes.Buffer
		d := NewDriverBuilder().WithEmitter(emit.NewXMLEmitter(&out)).Build()

		Expect(d.Run(strings.NewReader(".IPPcode24\nWRITE string@a<b"))).To(Succeed())
		Expect(out.String()).To(HavePrefix(`<?xml version="1.0" encoding="UTF-8"?>`))
		Expect(out.String()).To(ContainSubstring(`<arg1 type="string">a&lt;b</arg1>`))
	})
})
