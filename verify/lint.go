package verify

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/sarchlab/ipparse/core"
	"github.com/sarchlab/ipparse/instr"
)

// RunLint performs static lint checks on a translated program.
// Returns a list of issues in instruction order, or an empty list if there
// are none.
func RunLint(p core.Program) []Issue {
	var issues []Issue

	// LABEL: collect definitions first, jumps may point forward
	defined := make(map[string]core.Instruction)
	for _, inst := range p.Instructions {
		if inst.Opcode != instr.LABEL {
			continue
		}

		name := inst.Args[0].Name
		if prev, exists := defined[name]; exists {
			issues = append(issues, Issue{
				Type:    IssueLabel,
				Order:   inst.Order,
				Line:    inst.Line,
				Opcode:  inst.Opcode,
				Message: fmt.Sprintf("Label %q redefined (first defined by instruction %d)", name, prev.Order),
				Details: map[string]interface{}{
					"label":     name,
					"prevOrder": prev.Order,
					"prevLine":  prev.Line,
				},
			})
			continue
		}
		defined[name] = inst
	}

	for _, inst := range p.Instructions {
		switch inst.Opcode {
		case instr.JUMP, instr.CALL, instr.JUMPIFEQ, instr.JUMPIFNEQ:
			issues = append(issues, checkTarget(inst, defined)...)
		case instr.EXIT:
			issues = append(issues, checkExit(inst)...)
		case instr.BREAK, instr.DPRINT:
			issues = append(issues, Issue{
				Type:    IssueDebug,
				Order:   inst.Order,
				Line:    inst.Line,
				Opcode:  inst.Opcode,
				Message: fmt.Sprintf("Debugging instruction %s left in program", inst.Opcode),
			})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Order < issues[j].Order
	})

	return issues
}

func checkTarget(inst core.Instruction, defined map[string]core.Instruction) []Issue {
	target := inst.Args[0].Name
	if _, ok := defined[target]; ok {
		return nil
	}

	return []Issue{{
		Type:    IssueLabel,
		Order:   inst.Order,
		Line:    inst.Line,
		Opcode:  inst.Opcode,
		Message: fmt.Sprintf("%s to undefined label %q", inst.Opcode, target),
		Details: map[string]interface{}{"label": target},
	}}
}

// checkExit only looks at literals; a variable operand is decided at run time.
func checkExit(inst core.Instruction) []Issue {
	arg := inst.Args[0]
	if arg.Kind != core.OperandInt {
		return nil
	}

	code, _ := arg.Int()
	if code.Cmp(big.NewInt(MinExitCode)) >= 0 && code.Cmp(big.NewInt(MaxExitCode)) <= 0 {
		return nil
	}

	return []Issue{{
		Type:    IssueExit,
		Order:   inst.Order,
		Line:    inst.Line,
		Opcode:  inst.Opcode,
		Message: fmt.Sprintf("EXIT code %s outside %d..%d", code, MinExitCode, MaxExitCode),
		Details: map[string]interface{}{"code": code.String()},
	}}
}
