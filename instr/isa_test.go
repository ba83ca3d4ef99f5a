package instr_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ipparse/instr"
)

var _ = Describe("IPPcode24", func() {
	isa := instr.IPPcode24

	It("should be named after the language", func() {
		Expect(isa.Name()).To(Equal("IPPcode24"))
	})

	It("should give every opcode a shape", func() {
		for _, op := range instr.Opcodes() {
			_, ok := isa.Shape(op)
			Expect(ok).To(BeTrue(), op.String())
		}
		Expect(isa.Len()).To(Equal(len(instr.Opcodes())))
	})

	It("should never require more than three operands", func() {
		for _, op := range instr.Opcodes() {
			s, _ := isa.Shape(op)
			Expect(s.Arity()).To(BeNumerically("<=", 3), op.String())
		}
	})

	It("should match mnemonics case-insensitively", func() {
		op, s, ok := isa.Lookup("jumpIfEq")
		Expect(ok).To(BeTrue())
		Expect(op).To(Equal(instr.JUMPIFEQ))
		Expect(s.Args).To(Equal([]instr.Class{instr.Label, instr.Symb, instr.Symb}))
	})

	It("should reject unknown mnemonics", func() {
		_, _, ok := isa.Lookup("FOO")
		Expect(ok).To(BeFalse())
		_, _, ok = isa.Lookup("INVALID")
		Expect(ok).To(BeFalse())
	})

	DescribeTable("shapes",
		func(mnemonic string, args []instr.Class) {
			_, s, ok := isa.Lookup(mnemonic)
			Expect(ok).To(BeTrue())
			Expect(s.Arity()).To(Equal(len(args)))
			for i, c := range args {
				Expect(s.Args[i]).To(Equal(c))
			}
		},
		Entry("CREATEFRAME", "CREATEFRAME", []instr.Class{}),
		Entry("PUSHFRAME", "PUSHFRAME", []instr.Class{}),
		Entry("POPFRAME", "POPFRAME", []instr.Class{}),
		Entry("RETURN", "RETURN", []instr.Class{}),
		Entry("BREAK", "BREAK", []instr.Class{}),
		Entry("DEFVAR", "DEFVAR", []instr.Class{instr.Var}),
		Entry("POPS", "POPS", []instr.Class{instr.Var}),
		Entry("ADD", "ADD", []instr.Class{instr.Var, instr.Symb, instr.Symb}),
		Entry("SETCHAR", "SETCHAR", []instr.Class{instr.Var, instr.Symb, instr.Symb}),
		Entry("LABEL", "LABEL", []instr.Class{instr.Label}),
		Entry("CALL", "CALL", []instr.Class{instr.Label}),
		Entry("MOVE", "MOVE", []instr.Class{instr.Var, instr.Symb}),
		Entry("NOT", "NOT", []instr.Class{instr.Var, instr.Symb}),
		Entry("JUMPIFNEQ", "JUMPIFNEQ", []instr.Class{instr.Label, instr.Symb, instr.Symb}),
		Entry("READ", "READ", []instr.Class{instr.Var, instr.Type}),
		Entry("WRITE", "WRITE", []instr.Class{instr.Symb}),
		Entry("EXIT", "EXIT", []instr.Class{instr.Symb}),
		Entry("DPRINT", "DPRINT", []instr.Class{instr.Symb}),
	)

	It("should print opcodes by mnemonic", func() {
		Expect(instr.STRI2INT.String()).To(Equal("STRI2INT"))
		Expect(instr.Opcode(200).String()).To(Equal("INVALID"))
		Expect(instr.Opcode(200).Valid()).To(BeFalse())
	})
})
