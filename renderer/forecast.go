package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/foresight-cli/foresight"
)

// ForecastMarkdown renders a cash account's monthly forecast as a markdown
// document: one table row per month, and optionally the per-month breakdown
// of the items behind each net change.
func ForecastMarkdown(account foresight.Account, months []foresight.MonthlyProjection, showBreakdown bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Forecast for %s (%s)\n\n", account.Name, account.Range())

	ConditionalBlock(&b, func(w io.Writer) bool { return renderMonthlyTable(w, months) })
	if showBreakdown {
		ConditionalBlock(&b, func(w io.Writer) bool { return renderBreakdown(w, months) })
	}
	return b.String()
}

func renderMonthlyTable(w io.Writer, months []foresight.MonthlyProjection) bool {
	if len(months) == 0 {
		return false
	}
	fmt.Fprintln(w, "| Month | Starting | Income | Expenses | Net | Ending |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|---:|---:|")
	for _, m := range months {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			m.Month, m.Starting, m.Income, m.Expenses, m.Net.SignedString(), m.Ending)
	}
	fmt.Fprintln(w)
	return true
}

func renderBreakdown(w io.Writer, months []foresight.MonthlyProjection) bool {
	printed := false
	for _, m := range months {
		// Months made of recurring items only would repeat the same lines
		// every row; only months with scheduled items are worth detailing.
		if !hasPlannedLine(m.IncomeLines) && !hasPlannedLine(m.ExpenseLines) {
			continue
		}
		if !printed {
			fmt.Fprintln(w, "## Scheduled items")
			fmt.Fprintln(w)
			printed = true
		}
		for _, l := range m.IncomeLines {
			if planned(l.Source) {
				fmt.Fprintf(w, "* %s: +%s %s (%s)\n", m.Month, l.Amount, l.Name, l.Source)
			}
		}
		for _, l := range m.ExpenseLines {
			if planned(l.Source) {
				fmt.Fprintf(w, "* %s: -%s %s (%s)\n", m.Month, l.Amount, l.Name, l.Source)
			}
		}
	}
	if printed {
		fmt.Fprintln(w)
	}
	return printed
}

func planned(s foresight.LineSource) bool {
	return s == foresight.SourceOneOff || s == foresight.SourceRepeating
}

func hasPlannedLine(lines []foresight.BreakdownLine) bool {
	for _, l := range lines {
		if planned(l.Source) {
			return true
		}
	}
	return false
}

// YearlyMarkdown renders an account's per-year rollups as a markdown table.
func YearlyMarkdown(account foresight.Account, years []foresight.YearlyRollup) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Yearly forecast for %s\n\n", account.Name)
	if len(years) == 0 {
		return b.String()
	}
	fmt.Fprintln(&b, "| Year | Starting | Income | Expenses | Net | Ending |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, y := range years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			y.Year, y.Starting, y.Income, y.Expenses, y.Net.SignedString(), y.Ending)
	}
	fmt.Fprintln(&b)
	return b.String()
}
