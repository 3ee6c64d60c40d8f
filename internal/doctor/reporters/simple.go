// Package reporters provides output formatting for doctor check results
package reporters

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/smykla-labs/anvilcost/internal/doctor"
)

// SimpleReporter provides simple checklist-style output
type SimpleReporter struct {
	out   io.Writer
	icons bool
}

// NewSimpleReporter creates a reporter writing to out. Emoji icons are used
// only when out is a terminal.
func NewSimpleReporter(out io.Writer) *SimpleReporter {
	icons := false
	if f, ok := out.(*os.File); ok {
		icons = term.IsTerminal(int(f.Fd()))
	}

	return &SimpleReporter{out: out, icons: icons}
}

// WithIcons forces emoji icons on or off.
func (r *SimpleReporter) WithIcons(icons bool) *SimpleReporter {
	r.icons = icons

	return r
}

// Report outputs the results in a simple checklist format
func (r *SimpleReporter) Report(results []doctor.CheckResult, verbose bool) {
	fmt.Fprintln(r.out, "Checking anvilcost health...")
	fmt.Fprintln(r.out)

	categories, grouped := groupByCategory(results)

	for _, category := range categories {
		fmt.Fprintf(r.out, "%s:\n", category)

		for _, result := range grouped[category] {
			r.printResult(result, verbose)
		}

		fmt.Fprintln(r.out)
	}

	r.printSummary(results)
}

// ReportFixes lists the fixes that were applied.
func (r *SimpleReporter) ReportFixes(applied []string) {
	if len(applied) == 0 {
		fmt.Fprintln(r.out, "No fixes applied")

		return
	}

	for _, id := range applied {
		fmt.Fprintf(r.out, "Fixed: %s\n", id)
	}
}

// groupByCategory groups results by category in order of first appearance
func groupByCategory(results []doctor.CheckResult) ([]doctor.Category, map[doctor.Category][]doctor.CheckResult) {
	var order []doctor.Category

	grouped := make(map[doctor.Category][]doctor.CheckResult)

	for _, result := range results {
		category := result.Category
		if category == "" {
			category = "Other"
		}

		if _, ok := grouped[category]; !ok {
			order = append(order, category)
		}

		grouped[category] = append(grouped[category], result)
	}

	return order, grouped
}

func (r *SimpleReporter) printResult(result doctor.CheckResult, verbose bool) {
	fmt.Fprintf(r.out, "  %s %s", r.statusIcon(result), result.Name)

	if result.Message != "" {
		fmt.Fprintf(r.out, " - %s", result.Message)
	}

	fmt.Fprintln(r.out)

	if verbose {
		for _, detail := range result.Details {
			fmt.Fprintf(r.out, "     %s\n", detail)
		}
	}

	if result.HasFix() && result.Status == doctor.StatusFail {
		fmt.Fprintln(r.out, "     → Run: anvilcost doctor --fix")
	}
}

func (r *SimpleReporter) printSummary(results []doctor.CheckResult) {
	errorCount, warningCount, passedCount := countResults(results)

	fmt.Fprintf(r.out, "Summary: %d error(s), %d warning(s), %d passed\n",
		errorCount, warningCount, passedCount)
}

// statusIcon returns the icon for a check result, plain text off a terminal
func (r *SimpleReporter) statusIcon(result doctor.CheckResult) string {
	switch result.Status {
	case doctor.StatusPass:
		return r.pick("✅", "[ok]")
	case doctor.StatusFail:
		switch result.Severity {
		case doctor.SeverityError:
			return r.pick("❌", "[error]")
		case doctor.SeverityWarning:
			return r.pick("⚠️", "[warn]")
		default:
			return r.pick("ℹ️", "[info]")
		}
	case doctor.StatusSkipped:
		return r.pick("⊘", "[skip]")
	default:
		return "?"
	}
}

func (r *SimpleReporter) pick(icon, plain string) string {
	if r.icons {
		return icon
	}

	return plain
}

// countResults counts errors, warnings, and passed checks
func countResults(results []doctor.CheckResult) (errors, warnings, passed int) {
	for _, result := range results {
		switch {
		case result.IsPassed():
			passed++
		case result.IsError():
			errors++
		case result.IsWarning():
			warnings++
		}
	}

	return errors, warnings, passed
}
