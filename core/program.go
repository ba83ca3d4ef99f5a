package core

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/sarchlab/ipparse/instr"
)

// Program is the ordered list of accepted instructions.
type Program struct {
	Language     string
	Instructions []Instruction
}

// Len returns the number of instructions.
func (p Program) Len() int {
	return len(p.Instructions)
}

// Instruction is one validated source line.
type Instruction struct {
	Order  int // 1-based position among accepted instructions
	Opcode instr.Opcode
	Args   []Operand
	Line   int // source line the instruction came from
}

func (i Instruction) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, i.Opcode.String())
	for _, a := range i.Args {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, " ")
}

// OperandKind is the tag of an Operand.
type OperandKind uint8

const (
	OperandVar OperandKind = iota + 1
	OperandInt
	OperandBool
	OperandString
	OperandNil
	OperandLabel
	OperandType
)

// Tag returns the type attribute used for the kind in the XML output.
func (k OperandKind) Tag() (string, bool) {
	switch k {
	case OperandVar:
		return "var", true
	case OperandInt:
		return "int", true
	case OperandBool:
		return "bool", true
	case OperandString:
		return "string", true
	case OperandNil:
		return "nil", true
	case OperandLabel:
		return "label", true
	case OperandType:
		return "type", true
	default:
		return "", false
	}
}

func (k OperandKind) String() string {
	if tag, ok := k.Tag(); ok {
		return tag
	}
	return fmt.Sprintf("OperandKind(%d)", uint8(k))
}

// Scope is the frame a variable lives in.
type Scope uint8

const (
	ScopeGlobal Scope = iota + 1
	ScopeLocal
	ScopeTemp
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "GF"
	case ScopeLocal:
		return "LF"
	case ScopeTemp:
		return "TF"
	default:
		return fmt.Sprintf("Scope(%d)", uint8(s))
	}
}

func parseScope(prefix string) (Scope, bool) {
	switch prefix {
	case "GF":
		return ScopeGlobal, true
	case "LF":
		return ScopeLocal, true
	case "TF":
		return ScopeTemp, true
	default:
		return 0, false
	}
}

// Operand is one validated instruction argument. The zero value is invalid.
type Operand struct {
	Kind  OperandKind
	Scope Scope  // variables only
	Name  string // variable, label or type name
	Text  string // literal value without its kind@ prefix

	integer *big.Int
	boolean bool
}

// Canonical returns the text stored in the output document.
func (o Operand) Canonical() string {
	switch o.Kind {
	case OperandVar:
		return o.Scope.String() + "@" + o.Name
	case OperandLabel, OperandType:
		return o.Name
	default:
		return o.Text
	}
}

// String returns the operand as it would be written in source.
func (o Operand) String() string {
	switch o.Kind {
	case OperandInt, OperandBool, OperandString, OperandNil:
		return o.Kind.String() + "@" + o.Text
	default:
		return o.Canonical()
	}
}

// Int returns the value of an integer literal.
func (o Operand) Int() (*big.Int, bool) {
	if o.Kind != OperandInt || o.integer == nil {
		return nil, false
	}
	return new(big.Int).Set(o.integer), true
}

// Bool returns the value of a boolean literal.
func (o Operand) Bool() (bool, bool) {
	return o.boolean, o.Kind == OperandBool
}

// Decoded returns the content of a string literal with every \ddd escape
// replaced by the character it encodes.
func (o Operand) Decoded() (string, bool) {
	if o.Kind != OperandString {
		return "", false
	}
	return decodeEscapes(o.Text), true
}

func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) {
			code, err := strconv.Atoi(s[i+1 : i+4])
			if err == nil {
				b.WriteRune(rune(code))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
