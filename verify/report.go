package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/ipparse/core"
)

// LintReport represents a complete lint report for one program
type LintReport struct {
	Language         string
	InstructionCount int
	Issues           []Issue
	LabelIssues      []Issue
	ExitIssues       []Issue
	DebugIssues      []Issue
}

// GenerateReport runs the lint and returns a report
func GenerateReport(p core.Program) *LintReport {
	report := &LintReport{
		Language:         p.Language,
		InstructionCount: p.Len(),
		Issues:           RunLint(p),
	}

	// Categorize issues
	for _, issue := range report.Issues {
		switch issue.Type {
		case IssueLabel:
			report.LabelIssues = append(report.LabelIssues, issue)
		case IssueExit:
			report.ExitIssues = append(report.ExitIssues, issue)
		case IssueDebug:
			report.DebugIssues = append(report.DebugIssues, issue)
		}
	}

	return report
}

// Clean reports whether the lint found nothing.
func (r *LintReport) Clean() bool {
	return len(r.Issues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *LintReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "%s LINT REPORT\n", strings.ToUpper(r.Language))
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Instructions checked: %d\n", r.InstructionCount)

	if r.Clean() {
		fmt.Fprintln(w, "No lint issues found")
		fmt.Fprintln(w, separator)
		return
	}

	fmt.Fprintf(w, "Found %d lint issues (%d LABEL, %d EXIT, %d DEBUG)\n\n",
		len(r.Issues), len(r.LabelIssues), len(r.ExitIssues), len(r.DebugIssues))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Type", "Order", "Line", "Opcode", "Message"})
	for i, issue := range r.Issues {
		t.AppendRow(table.Row{
			i + 1, issue.Type, issue.Order, issue.Line, issue.Opcode.String(), issue.Message,
		})
	}
	t.Render()

	fmt.Fprintln(w, separator)
}
