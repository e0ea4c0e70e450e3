package renderer

import (
	"fmt"
	"strings"

	"github.com/foresight-cli/foresight"
)

// DebtMarkdown renders a debt's amortization schedule as a markdown document.
func DebtMarkdown(debt foresight.Debt, schedule []foresight.DebtMonth) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Amortization of %s\n\n", debt.Name)
	fmt.Fprintf(&b, "Principal %s over %d months at %s, level payment %s.\n\n",
		debt.Principal, debt.Term, debt.Rate, debt.Payment())

	if len(schedule) == 0 {
		return b.String()
	}

	totalInterest := foresight.M(0, debt.Currency)
	fmt.Fprintln(&b, "| Month | Rate | Interest | Principal | Extra | Balance |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, m := range schedule {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			m.Month, m.Rate, m.Interest, m.Principal, m.Extra.SignedString(), m.Balance)
		totalInterest = totalInterest.Add(m.Interest)
	}
	fmt.Fprintf(&b, "\nTotal interest over the schedule: %s.\n", totalInterest)
	return b.String()
}
