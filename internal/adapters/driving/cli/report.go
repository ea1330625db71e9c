package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/term"

	"github.com/custodia-labs/gamefix/internal/adapters/driving/styles"
	"github.com/custodia-labs/gamefix/internal/core/domain"
)

// stylesFor returns coloured styles when w is a terminal, plain otherwise.
func stylesFor(w io.Writer) *styles.Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}

func renderReport(w io.Writer, st *styles.Styles, report *domain.RepairReport) {
	title := "Checked"
	if report.Written {
		title = "Repaired"
	}
	fmt.Fprintln(w, st.Title.Render(fmt.Sprintf("%s %s", title, report.Path)))

	for _, step := range report.Steps {
		fmt.Fprintf(w, "  %s %s  %s\n",
			st.Label.Render(fmt.Sprintf("%-8s", step.Step)),
			statusStyle(st, step.Status).Render(fmt.Sprintf("%-17s", step.Status.Description())),
			st.Muted.Render(stepDetail(step)))
	}

	b := report.Balance
	fmt.Fprintf(w, "  %s %s\n",
		st.Label.Render(fmt.Sprintf("%-8s", "balance")),
		balanceStyle(st, b).Render(balanceDetail(b)))

	written := "no"
	if report.Written {
		written = "yes"
	} else if report.Changed() {
		written = "no (dry run)"
	}
	fmt.Fprintf(w, "  %s %s\n", st.Label.Render(fmt.Sprintf("%-8s", "written")), written)
}

func statusStyle(st *styles.Styles, status domain.StepStatus) styleRenderer {
	switch status {
	case domain.StepApplied:
		return st.Success
	case domain.StepNotFound:
		return st.Warning
	default:
		return st.Muted
	}
}

func balanceStyle(st *styles.Styles, b domain.TagBalance) styleRenderer {
	switch {
	case b.Balanced():
		return st.Muted
	case b.Delta() < 0:
		return st.Error
	default:
		return st.Warning
	}
}

// styleRenderer is the subset of lipgloss.Style used here.
type styleRenderer interface {
	Render(strs ...string) string
}

func stepDetail(step domain.StepResult) string {
	switch step.Step {
	case domain.StepDedupe:
		if step.Status == domain.StepNotFound {
			return "marker absent"
		}
		return fmt.Sprintf("%s, %d bytes removed", plural(step.Matches, "marker"), step.Removed)
	case domain.StepRepair:
		if step.Status == domain.StepNotFound {
			return "no corrupted fragment"
		}
		return plural(step.Matches, "fragment")
	default:
		return ""
	}
}

func balanceDetail(b domain.TagBalance) string {
	s := fmt.Sprintf("<%s> opened %d, closed %d", b.Tag, b.Opened, b.Closed)
	switch d := b.Delta(); {
	case d > 0:
		s += fmt.Sprintf(" (%d unclosed)", d)
	case d < 0:
		s += fmt.Sprintf(" (%s)", plural(-d, "extra close"))
	}
	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// unifiedDiff returns a unified diff from the original to the result,
// or "" when they are identical.
func unifiedDiff(report *domain.RepairReport) (string, error) {
	if !report.Changed() {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(report.Original),
		B:        difflib.SplitLines(report.Result),
		FromFile: report.Path + " (original)",
		ToFile:   report.Path + " (repaired)",
		Context:  3,
	})
}
