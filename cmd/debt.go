package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/foresight-cli/foresight"
	"github.com/foresight-cli/foresight/renderer"
	"github.com/google/subcommands"
)

// debtCmd holds the flags for the 'debt' subcommand.
type debtCmd struct {
	name string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "display a debt's amortization schedule" }
func (*debtCmd) Usage() string {
	return `fsc debt [-name <debt>]

  Amortizes a debt month by month: interest at the effective reference
  rate, the level payment split into interest and principal, and extra
  payments applied directly to the balance. Without -name, every debt is
  reported in turn.
`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Debt to amortize. Defaults to all debts.")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := DecodePlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var debts []foresight.Debt
	if c.name != "" {
		d := plan.Debt(c.name)
		if d == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown debt %q\n", c.name)
			return subcommands.ExitUsageError
		}
		debts = append(debts, *d)
	} else {
		for d := range plan.Debts() {
			debts = append(debts, d)
		}
		if len(debts) == 0 {
			fmt.Fprintln(os.Stderr, "Warning: the plan has no debts.")
		}
	}

	for _, d := range debts {
		printMarkdown(renderer.DebtMarkdown(d, foresight.ProjectDebt(d)))
	}
	return subcommands.ExitSuccess
}
