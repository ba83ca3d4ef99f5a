package instr

import "fmt"

// Class is the lexical category an operand position accepts.
type Class uint8

const (
	// Var accepts a variable, e.g. GF@counter.
	Var Class = iota + 1
	// Label accepts a bare label name.
	Label
	// Symb accepts a typed literal or a variable.
	Symb
	// Type accepts one of the type names int, bool or string.
	Type
)

func (c Class) String() string {
	switch c {
	case Var:
		return "var"
	case Label:
		return "label"
	case Symb:
		return "symb"
	case Type:
		return "type"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Shape is the operand signature of an opcode.
type Shape struct {
	Args []Class
}

// Arity returns the number of operands the shape requires.
func (s Shape) Arity() int {
	return len(s.Args)
}

// The shape classes of the instruction set.
var (
	shapeNone          = Shape{}
	shapeVar           = Shape{Args: []Class{Var}}
	shapeVarSymbSymb   = Shape{Args: []Class{Var, Symb, Symb}}
	shapeLabel         = Shape{Args: []Class{Label}}
	shapeVarSymb       = Shape{Args: []Class{Var, Symb}}
	shapeLabelSymbSymb = Shape{Args: []Class{Label, Symb, Symb}}
	shapeVarType       = Shape{Args: []Class{Var, Type}}
	shapeSymb          = Shape{Args: []Class{Symb}}
)

// ISA is a named table from opcode to operand shape.
type ISA struct {
	name   string
	shapes map[Opcode]Shape
}

// NewISA creates an empty instruction set.
func NewISA(name string) *ISA {
	return &ISA{
		name:   name,
		shapes: make(map[Opcode]Shape),
	}
}

// Name returns the language identifier of the instruction set.
func (isa *ISA) Name() string {
	return isa.name
}

func (isa *ISA) register(shape Shape, ops ...Opcode) {
	for _, op := range ops {
		if _, dup := isa.shapes[op]; dup {
			panic(fmt.Sprintf("opcode %s registered twice in %s", op, isa.name))
		}
		isa.shapes[op] = shape
	}
}

// Shape returns the operand shape of op.
func (isa *ISA) Shape(op Opcode) (Shape, bool) {
	s, ok := isa.shapes[op]
	return s, ok
}

// Lookup resolves a case-insensitive mnemonic to its opcode and shape.
func (isa *ISA) Lookup(mnemonic string) (Opcode, Shape, bool) {
	op, ok := ParseOpcode(mnemonic)
	if !ok {
		return OpInvalid, Shape{}, false
	}
	s, ok := isa.shapes[op]
	return op, s, ok
}

// Len returns the number of registered opcodes.
func (isa *ISA) Len() int {
	return len(isa.shapes)
}

// IPPcode24 is the instruction set accepted by the translator.
var IPPcode24 = newIPPcode24()

func newIPPcode24() *ISA {
	isa := NewISA("IPPcode24")

	isa.register(shapeNone, CREATEFRAME, PUSHFRAME, POPFRAME, RETURN, BREAK)
	isa.register(shapeVar, DEFVAR, POPS)
	isa.register(shapeVarSymbSymb,
		ADD, SUB, MUL, IDIV, LT, GT, EQ, AND, OR,
		STRI2INT, CONCAT, GETCHAR, SETCHAR)
	isa.register(shapeLabel, LABEL, JUMP, CALL)
	isa.register(shapeVarSymb, MOVE, INT2CHAR, STRLEN, TYPE, NOT)
	isa.register(shapeLabelSymbSymb, JUMPIFEQ, JUMPIFNEQ)
	isa.register(shapeVarType, READ)
	isa.register(shapeSymb, PUSHS, WRITE, EXIT, DPRINT)

	return isa
}
