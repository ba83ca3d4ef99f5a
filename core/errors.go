package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a translation failure. Each kind maps to exactly one
// process exit code.
type ErrorKind int

const (
	// KindHeader reports a missing, misplaced or header-only program.
	KindHeader ErrorKind = iota + 1
	// KindOpcode reports a mnemonic that is not in the instruction set.
	KindOpcode
	// KindMalformed reports every other lexical or syntactic failure.
	KindMalformed
	// KindInput reports that the source could not be read.
	KindInput
	// KindOutput reports that the document could not be written.
	KindOutput
	// KindInternal reports a defect in the translator itself.
	KindInternal
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitParams    = 10
	ExitInput     = 11
	ExitOutput    = 12
	ExitHeader    = 21
	ExitOpcode    = 22
	ExitMalformed = 23
	ExitInternal  = 99
)

func (k ErrorKind) String() string {
	switch k {
	case KindHeader:
		return "header error"
	case KindOpcode:
		return "unknown opcode"
	case KindMalformed:
		return "malformed instruction"
	case KindInput:
		return "input error"
	case KindOutput:
		return "output error"
	case KindInternal:
		return "internal error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ExitCode returns the process exit code of the kind.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindHeader:
		return ExitHeader
	case KindOpcode:
		return ExitOpcode
	case KindMalformed:
		return ExitMalformed
	case KindInput:
		return ExitInput
	case KindOutput:
		return ExitOutput
	default:
		return ExitInternal
	}
}

// Error is a translation failure located in the source.
type Error struct {
	Kind   ErrorKind
	Line   int    // 1-based source line, 0 when not tied to a line
	Column int    // 1-based column of Token, 0 when unknown
	Token  string // offending token, if any
	Msg    string
	Err    error // underlying cause, if any
}

func (e *Error) Error() string {
	var b strings.Builder
	switch {
	case e.Line > 0 && e.Column > 0:
		fmt.Fprintf(&b, "line %d:%d: ", e.Line, e.Column)
	case e.Line > 0:
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": " + e.Msg)
	}
	if e.Token != "" {
		fmt.Fprintf(&b, " %q", e.Token)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ExitCode maps err to the process exit code. A nil error is success.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return KindOf(err).ExitCode()
}

func headerError(line int, msg, token string) *Error {
	return &Error{Kind: KindHeader, Line: line, Msg: msg, Token: token}
}

func malformed(line int, t token, msg string) *Error {
	return &Error{Kind: KindMalformed, Line: line, Column: t.column, Token: t.text, Msg: msg}
}
