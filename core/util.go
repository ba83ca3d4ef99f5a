package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace is more verbose than debug and logs every accepted operand.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs msg at LevelTrace.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

// ListProgram writes a table with one row per instruction to w.
func ListProgram(w io.Writer, p Program) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s program (%d instructions)", p.Language, p.Len()))
	t.AppendHeader(table.Row{"Order", "Line", "Opcode", "Arg1", "Arg2", "Arg3"})

	for _, inst := range p.Instructions {
		row := table.Row{inst.Order, inst.Line, inst.Opcode.String()}
		for i := 0; i < 3; i++ {
			if i < len(inst.Args) {
				row = append(row, formatArg(inst.Args[i]))
			} else {
				row = append(row, "")
			}
		}
		t.AppendRow(row)
	}

	t.Render()
}

func formatArg(o Operand) string {
	return fmt.Sprintf("%s: %s", o.Kind, o.Canonical())
}

// LogProgram records a summary of the program at debug level.
func LogProgram(logger *slog.Logger, p Program) {
	counts := make(map[string]int)
	for _, inst := range p.Instructions {
		counts[inst.Opcode.String()]++
	}

	logger.Debug("ProgramSummary",
		"language", p.Language,
		"instructions", p.Len(),
		"opcodes", counts,
	)
}
