// Package verify provides static checks over a translated program.
//
// The translator only validates each line in isolation. The lint here looks
// across instructions for mistakes that are legal IPPcode24 but almost
// certainly wrong:
//
//   - LABEL: a label defined twice, or a jump/call to a label that is never
//     defined.
//   - EXIT: an EXIT with an integer literal outside 0..9.
//   - DEBUG: BREAK or DPRINT left in the program.
//
// Issues are advisory. They never change the translation result or the exit
// code.
//
// # Usage Example
//
//	program, err := core.NewTranslatorBuilder().Build().Translate(os.Stdin)
//	if err != nil {
//	    return err
//	}
//
//	report := verify.GenerateReport(program)
//	report.WriteReport(os.Stderr)
package verify

import (
	"github.com/sarchlab/ipparse/instr"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueLabel IssueType = "LABEL" // Label defined twice or never defined
	IssueExit  IssueType = "EXIT"  // Exit code literal out of range
	IssueDebug IssueType = "DEBUG" // Debugging instruction left in
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // LABEL, EXIT or DEBUG
	Order   int                    // Instruction order
	Line    int                    // Source line
	Opcode  instr.Opcode           // Opcode of the offending instruction
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

// MinExitCode and MaxExitCode bound the literal accepted by EXIT.
const (
	MinExitCode = 0
	MaxExitCode = 9
)
