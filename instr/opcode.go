// Package instr describes the IPPcode24 instruction set: the opcodes, the
// operand classes and the shape every opcode must have.
package instr

import "strings"

// Opcode identifies one IPPcode24 instruction.
type Opcode uint8

// The IPPcode24 opcodes.
const (
	OpInvalid Opcode = iota

	// Frames and calls
	MOVE
	CREATEFRAME
	PUSHFRAME
	POPFRAME
	DEFVAR
	CALL
	RETURN

	// Data stack
	PUSHS
	POPS

	// Arithmetic, relational, boolean and conversion
	ADD
	SUB
	MUL
	IDIV
	LT
	GT
	EQ
	AND
	OR
	NOT
	INT2CHAR
	STRI2INT

	// Input and output
	READ
	WRITE

	// Strings
	CONCAT
	STRLEN
	GETCHAR
	SETCHAR

	// Types
	TYPE

	// Control flow
	LABEL
	JUMP
	JUMPIFEQ
	JUMPIFNEQ
	EXIT

	// Debugging
	DPRINT
	BREAK

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpInvalid:   "INVALID",
	MOVE:        "MOVE",
	CREATEFRAME: "CREATEFRAME",
	PUSHFRAME:   "PUSHFRAME",
	POPFRAME:    "POPFRAME",
	DEFVAR:      "DEFVAR",
	CALL:        "CALL",
	RETURN:      "RETURN",
	PUSHS:       "PUSHS",
	POPS:        "POPS",
	ADD:         "ADD",
	SUB:         "SUB",
	MUL:         "MUL",
	IDIV:        "IDIV",
	LT:          "LT",
	GT:          "GT",
	EQ:          "EQ",
	AND:         "AND",
	OR:          "OR",
	NOT:         "NOT",
	INT2CHAR:    "INT2CHAR",
	STRI2INT:    "STRI2INT",
	READ:        "READ",
	WRITE:       "WRITE",
	CONCAT:      "CONCAT",
	STRLEN:      "STRLEN",
	GETCHAR:     "GETCHAR",
	SETCHAR:     "SETCHAR",
	TYPE:        "TYPE",
	LABEL:       "LABEL",
	JUMP:        "JUMP",
	JUMPIFEQ:    "JUMPIFEQ",
	JUMPIFNEQ:   "JUMPIFNEQ",
	EXIT:        "EXIT",
	DPRINT:      "DPRINT",
	BREAK:       "BREAK",
}

var opcodeByName = func() map[string]Opcode {
	m := make(map[string]Opcode, numOpcodes)
	for op := MOVE; op < numOpcodes; op++ {
		m[opcodeNames[op]] = op
	}
	return m
}()

// String returns the upper-case mnemonic of the opcode.
func (op Opcode) String() string {
	if op < numOpcodes {
		return opcodeNames[op]
	}
	return "INVALID"
}

// Valid reports whether op is one of the IPPcode24 opcodes.
func (op Opcode) Valid() bool {
	return op > OpInvalid && op < numOpcodes
}

// ParseOpcode looks up a mnemonic. Matching is case-insensitive.
func ParseOpcode(name string) (Opcode, bool) {
	op, ok := opcodeByName[strings.ToUpper(name)]
	return op, ok
}

// Opcodes returns every valid opcode in declaration order.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, numOpcodes-1)
	for op := MOVE; op < numOpcodes; op++ {
		ops = append(ops, op)
	}
	return ops
}
