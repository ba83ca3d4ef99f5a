package verify_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ipparse/core"
	"github.com/sarchlab/ipparse/instr"
	"github.com/sarchlab/ipparse/verify"
)

func load(src string) core.Program {
	p, err := core.NewTranslatorBuilder().Build().Translate(strings.NewReader(src))
	Expect(err).NotTo(HaveOccurred())
	return p
}

var _ = Describe("RunLint", func() {
	It("should find nothing in a clean program", func() {
		p := load(`.IPPcode24
DEFVAR GF@i
MOVE GF@i int@0
LABEL loop
ADD GF@i GF@i int@1
JUMPIFNEQ loop GF@i int@10
CALL done
LABEL done
EXIT int@0
`)
		Expect(verify.RunLint(p)).To(BeEmpty())
	})

	It("should report a label defined twice", func() {
		p := load(".IPPcode24\nLABEL a\nLABEL b\nLABEL a\n")
		issues := verify.RunLint(p)
		Expect(issues).To(HaveLen(1))
		Expect(issues[0].Type).To(Equal(verify.IssueLabel))
		Expect(issues[0].Order).To(Equal(3))
		Expect(issues[0].Details["prevOrder"]).To(Equal(1))
	})

	It("should report jumps to undefined labels", func() {
		p := load(".IPPcode24\nJUMP nowhere\nJUMPIFEQ later int@1 int@1\nLABEL later\nCALL missing\n")
		issues := verify.RunLint(p)
		Expect(issues).To(HaveLen(2))
		Expect(issues[0].Opcode).To(Equal(instr.JUMP))
		Expect(issues[0].Details["label"]).To(Equal("nowhere"))
		Expect(issues[1].Opcode).To(Equal(instr.CALL))
		Expect(issues[1].Order).To(Equal(4))
	})

	It("should report EXIT literals out of range", func() {
		p := load(".IPPcode24\nEXIT int@9\nEXIT int@10\nEXIT int@-1\nEXIT GF@code\nEXIT string@x\n")
		issues := verify.RunLint(p)
		Expect(issues).To(HaveLen(2))
		for _, issue := range issues {
			Expect(issue.Type).To(Equal(verify.IssueExit))
		}
		Expect(issues[0].Details["code"]).To(Equal("10"))
		Expect(issues[1].Details["code"]).To(Equal("-1"))
	})

	It("should report debugging instructions in order", func() {
		p := load(".IPPcode24\nDPRINT int@1\nJUMP x\nBREAK\n")
		issues := verify.RunLint(p)
		Expect(issues).To(HaveLen(3))
		Expect(issues[0].Type).To(Equal(verify.IssueDebug))
		Expect(issues[1].Type).To(Equal(verify.IssueLabel))
		Expect(issues[2].Type).To(Equal(verify.IssueDebug))
	})
})

var _ = Describe("LintReport", func() {
	It("should categorize issues", func() {
		r := verify.GenerateReport(load(".IPPcode24\nBREAK\nJUMP x\nEXIT int@50\nLABEL y\nLABEL y\n"))
		Expect(r.InstructionCount).To(Equal(5))
		Expect(r.LabelIssues).To(HaveLen(2))
		Expect(r.ExitIssues).To(HaveLen(1))
		Expect(r.DebugIssues).To(HaveLen(1))
		Expect(r.Clean()).To(BeFalse())

		var buf bytes.Buffer
		r.WriteReport(&buf)
		Expect(buf.String()).To(ContainSubstring("IPPCODE24 LINT REPORT"))
		Expect(buf.String()).To(ContainSubstring("4 lint issues (2 LABEL, 1 EXIT, 1 DEBUG)"))
		Expect(buf.String()).To(ContainSubstring(`undefined label "x"`))
	})

	It("should say so when clean", func() {
		r := verify.GenerateReport(load(".IPPcode24\nRETURN\n"))
		Expect(r.Clean()).To(BeTrue())

		var buf bytes.Buffer
		r.WriteReport(&buf)
		Expect(buf.String()).To(ContainSubstring("No lint issues found"))
	})
})
