package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sarchlab/ipparse/instr"
)

// Translator validates IPPcode24 source line by line and accumulates the
// accepted instructions. A Translator is single-use and not safe for
// concurrent use.
type Translator struct {
	isa    *instr.ISA
	logger *slog.Logger

	line       int
	seenHeader bool
	err        error

	program Program
}

// Feed classifies, tokenizes and validates one raw source line. After the
// first error every later call returns that same error.
func (t *Translator) Feed(raw string) error {
	if t.err != nil {
		return t.err
	}

	t.line++
	if err := t.feed(raw); err != nil {
		t.err = err
		return err
	}

	return nil
}

func (t *Translator) feed(raw string) error {
	class, code := classifyLine(raw)

	switch {
	case class == lineSkip:
		return nil
	case !t.seenHeader && class == lineHeader:
		t.seenHeader = true
		Trace(t.logger, "header accepted", "line", t.line)
		return nil
	case !t.seenHeader:
		return headerError(t.line, "expected "+Header+" as the first line, got", strings.TrimSpace(code))
	case class == lineHeader:
		return &Error{Kind: KindMalformed, Line: t.line, Msg: "duplicate header"}
	}

	inst, err := t.parseInstruction(code)
	if err != nil {
		return err
	}

	t.program.Instructions = append(t.program.Instructions, inst)
	t.logger.Debug("instruction accepted",
		"order", inst.Order, "opcode", inst.Opcode.String(), "line", t.line)

	return nil
}

// parseInstruction builds one instruction. Nothing is recorded unless every
// operand validates.
func (t *Translator) parseInstruction(code string) (Instruction, error) {
	tokens, err := tokenize(code)
	if err != nil {
		return Instruction{}, &Error{Kind: KindMalformed, Line: t.line, Msg: "cannot tokenize line", Err: err}
	}
	if len(tokens) == 0 {
		return Instruction{}, &Error{Kind: KindInternal, Line: t.line, Msg: "classified line has no tokens"}
	}

	head, argTokens := tokens[0], tokens[1:]
	op, shape, ok := t.isa.Lookup(head.text)
	if !ok {
		return Instruction{}, &Error{Kind: KindOpcode, Line: t.line, Column: head.column, Token: head.text}
	}

	if len(argTokens) != shape.Arity() {
		return Instruction{}, malformed(t.line, head,
			fmt.Sprintf("%s takes %d operands, got %d", op, shape.Arity(), len(argTokens)))
	}

	args := make([]Operand, 0, len(argTokens))
	for i, class := range shape.Args {
		tok := argTokens[i]
		arg, err := ParseOperand(class, tok.text)
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.Line, e.Column = t.line, tok.column
			}
			return Instruction{}, err
		}
		Trace(t.logger, "operand accepted",
			"line", t.line, "position", i+1, "class", class.String(), "kind", arg.Kind.String())
		args = append(args, arg)
	}

	return Instruction{
		Order:  len(t.program.Instructions) + 1,
		Opcode: op,
		Args:   args,
		Line:   t.line,
	}, nil
}

// Finish ends the pass and returns the program. A program without a header
// or without instructions is a header error.
func (t *Translator) Finish() (Program, error) {
	if t.err != nil {
		return Program{}, t.err
	}

	switch {
	case !t.seenHeader:
		t.err = headerError(0, "missing "+Header+" header", "")
	case len(t.program.Instructions) == 0:
		t.err = headerError(0, "program has no instructions", "")
	}
	if t.err != nil {
		return Program{}, t.err
	}

	t.logger.Info("translation finished",
		"language", t.program.Language, "instructions", t.program.Len(), "lines", t.line)

	return t.program, nil
}

// Translate feeds every line of r through the translator and finishes the
// pass. Only one line is held in memory at a time, however long it is.
func (t *Translator) Translate(r io.Reader) (Program, error) {
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if ferr := t.Feed(trimLineEnd(line)); ferr != nil {
				return Program{}, ferr
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			t.err = &Error{Kind: KindInput, Line: t.line + 1, Msg: "cannot read source", Err: err}
			return Program{}, t.err
		}
	}

	return t.Finish()
}

// trimLineEnd drops the LF or CRLF that ends line.
func trimLineEnd(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
