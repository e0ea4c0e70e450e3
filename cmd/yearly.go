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

// yearlyCmd holds the flags for the 'yearly' subcommand.
type yearlyCmd struct {
	account string
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display an account's forecast rolled up by calendar year" }
func (*yearlyCmd) Usage() string {
	return `fsc yearly [-account <name>]

  Rolls the monthly forecast up into one line per calendar year.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to report on. Defaults to all accounts.")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := DecodePlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	accounts, status := selectAccounts(plan, c.account)
	if status != subcommands.ExitSuccess {
		return status
	}

	for _, a := range accounts {
		recurring, planned := plan.Items(a.Name)
		_, years := foresight.ProjectAccount(a, recurring, planned)
		printMarkdown(renderer.YearlyMarkdown(a, years))
	}
	return subcommands.ExitSuccess
}
