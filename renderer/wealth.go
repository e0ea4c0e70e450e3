package renderer

import (
	"fmt"
	"strings"

	"github.com/foresight-cli/foresight"
)

// WealthMarkdown renders the aggregated net-worth timeline as a markdown
// document. Totals are naive sums in the plan's reporting currency:
// instruments held in other currencies are not converted.
func WealthMarkdown(currency string, timeline []foresight.WealthMonth) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Net worth (%s)\n\n", currency)
	if len(timeline) == 0 {
		return b.String()
	}

	fmt.Fprintln(&b, "| Month | Cash | Investments | Receivables | Debts | Net worth |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, m := range timeline {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			m.Month, m.Cash, m.Investments, m.Receivables, m.Debts, m.NetWorth)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "*Amounts in foreign currencies are summed without conversion.*")
	return b.String()
}
