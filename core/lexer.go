package core

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Header is the directive every program must start with.
const Header = ".IPPcode24"

const commentMarker = "#"

// lineClass is the result of classifying one raw source line.
type lineClass int

const (
	lineSkip lineClass = iota
	lineHeader
	lineInstruction
)

// classifyLine strips the comment from raw and classifies what is left. The
// comment is cut at the first marker before any literal is looked at, so a
// string literal cannot contain a '#'. The returned code keeps its leading
// whitespace so token columns match the source.
func classifyLine(raw string) (lineClass, string) {
	code, _, _ := strings.Cut(raw, commentMarker)

	switch strings.TrimSpace(code) {
	case "":
		return lineSkip, ""
	case Header:
		return lineHeader, code
	default:
		return lineInstruction, code
	}
}

// token is one whitespace-delimited word of an instruction line.
type token struct {
	text   string
	column int
}

// space matches the runes unicode.IsSpace accepts, the same set
// strings.TrimSpace removes in classifyLine. RE2's \s is ASCII only.
const space = `\t\n\v\f\r\x{85}\p{Z}`

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^` + space + `]+`},
	{Name: "Whitespace", Pattern: `[` + space + `]+`},
})

var wordType = lineLexer.Symbols()["Word"]

// tokenize splits an instruction line into its opcode and argument tokens.
// Nothing but whitespace is interpreted here.
func tokenize(line string) ([]token, error) {
	lex, err := lineLexer.LexString("", line)
	if err != nil {
		return nil, err
	}

	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	tokens := make([]token, 0, len(all))
	for _, t := range all {
		if t.Type != wordType {
			continue
		}
		tokens = append(tokens, token{text: t.Value, column: t.Pos.Column})
	}

	return tokens, nil
}
