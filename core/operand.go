package core

import (
	"math/big"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sarchlab/ipparse/instr"
)

// identifier is the grammar shared by variable names and labels.
const identifier = `[A-Za-z_\-$&%*!?][A-Za-z0-9_\-$&%*!?]*`

var (
	varRe   = regexp.MustCompile(`^(GF|LF|TF)@(` + identifier + `)$`)
	labelRe = regexp.MustCompile(`^` + identifier + `$`)

	octRe = regexp.MustCompile(`^[-+]?0o[0-7]+$`)
	hexRe = regexp.MustCompile(`^[-+]?0x[0-9a-fA-F]+$`)
	decRe = regexp.MustCompile(`^[-+]?[0-9]+$`)
)

func operandError(tok, msg string) *Error {
	return &Error{Kind: KindMalformed, Token: tok, Msg: msg}
}

// ParseOperand validates tok against the operand class c.
func ParseOperand(c instr.Class, tok string) (Operand, error) {
	switch c {
	case instr.Var:
		return ParseVar(tok)
	case instr.Label:
		return ParseLabel(tok)
	case instr.Symb:
		return ParseSymb(tok)
	case instr.Type:
		return ParseType(tok)
	default:
		return Operand{}, &Error{Kind: KindInternal, Token: tok, Msg: "no checker for operand class " + c.String()}
	}
}

// ParseVar validates a variable reference such as LF@tmp.
func ParseVar(tok string) (Operand, error) {
	m := varRe.FindStringSubmatch(tok)
	if m == nil {
		return Operand{}, operandError(tok, "invalid variable")
	}
	scope, _ := parseScope(m[1])
	return Operand{Kind: OperandVar, Scope: scope, Name: m[2]}, nil
}

// ParseLabel validates a label name.
func ParseLabel(tok string) (Operand, error) {
	if !labelRe.MatchString(tok) {
		return Operand{}, operandError(tok, "invalid identifier")
	}
	return Operand{Kind: OperandLabel, Name: tok}, nil
}

// ParseType validates a type name used by READ.
func ParseType(tok string) (Operand, error) {
	switch tok {
	case "int", "bool", "string":
		return Operand{Kind: OperandType, Name: tok}, nil
	default:
		return Operand{}, operandError(tok, "invalid type name")
	}
}

// ParseSymb validates a typed literal or a variable. The prefix of tok
// selects exactly one checker.
func ParseSymb(tok string) (Operand, error) {
	kind, value, found := strings.Cut(tok, "@")
	if !found {
		return Operand{}, operandError(tok, "invalid operand")
	}

	switch kind {
	case "int":
		return parseInt(tok, value)
	case "bool":
		return parseBool(tok, value)
	case "string":
		return parseString(tok, value)
	case "nil":
		if value != "nil" {
			return Operand{}, operandError(tok, "invalid nil literal")
		}
		return Operand{Kind: OperandNil, Text: value}, nil
	case "GF", "LF", "TF":
		return ParseVar(tok)
	default:
		return Operand{}, operandError(tok, "invalid operand")
	}
}

// parseInt commits to a base by prefix: 0o and 0x select octal and hex with
// no fallback to decimal.
func parseInt(tok, value string) (Operand, error) {
	var (
		re     *regexp.Regexp
		base   int
		prefix string
	)
	switch {
	case strings.HasPrefix(value, "0o") || strings.HasPrefix(value, "-0o"):
		re, base, prefix = octRe, 8, "0o"
	case strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "-0x"):
		re, base, prefix = hexRe, 16, "0x"
	default:
		re, base = decRe, 10
	}
	if !re.MatchString(value) {
		return Operand{}, operandError(tok, "invalid integer literal")
	}

	digits := value
	neg := false
	switch digits[0] {
	case '-':
		neg = true
		digits = digits[1:]
	case '+':
		digits = digits[1:]
	}
	digits = strings.TrimPrefix(digits, prefix)

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Operand{}, operandError(tok, "invalid integer literal")
	}
	if neg {
		n.Neg(n)
	}
	return Operand{Kind: OperandInt, Text: value, integer: n}, nil
}

func parseBool(tok, value string) (Operand, error) {
	switch value {
	case "true":
		return Operand{Kind: OperandBool, Text: value, boolean: true}, nil
	case "false":
		return Operand{Kind: OperandBool, Text: value}, nil
	default:
		return Operand{}, operandError(tok, "invalid bool literal")
	}
}

// parseString accepts any text in which every backslash starts a \ddd
// escape of exactly three decimal digits.
func parseString(tok, value string) (Operand, error) {
	if !utf8.ValidString(value) {
		return Operand{}, operandError(tok, "string literal is not valid UTF-8")
	}
	if !ValidXMLText(value) {
		return Operand{}, operandError(tok, "string literal contains a control character")
	}

	for i := 0; i < len(value); i++ {
		if value[i] != '\\' {
			continue
		}
		if i+4 > len(value) {
			return Operand{}, operandError(tok, "incomplete escape sequence")
		}
		for j := i + 1; j < i+4; j++ {
			if !isDigit(value[j]) {
				return Operand{}, operandError(tok, "invalid escape sequence")
			}
		}
		i += 3
	}
	return Operand{Kind: OperandString, Text: value}, nil
}

// ValidXMLText reports whether s is UTF-8 made only of characters XML 1.0
// allows in character data. Control characters in a string literal have to
// be written as \ddd escapes.
func ValidXMLText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

func isXMLChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
