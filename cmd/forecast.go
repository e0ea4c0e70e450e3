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

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	account   string
	from      string
	breakdown bool
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "display the monthly cashflow forecast of an account" }
func (*forecastCmd) Usage() string {
	return `fsc forecast [-account <name>] [-from <2006-01>] [-breakdown]

  Projects an account's balance month by month over its horizon: recurring
  items fire every month, planned items on their schedule, and the balance
  carries forward. Without -account, every account is forecast in turn.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to forecast. Defaults to all accounts.")
	f.StringVar(&c.from, "from", "", "Hide months before this one in the report.")
	f.BoolVar(&c.breakdown, "breakdown", false, "Also list the scheduled items behind each month.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		months, _ := foresight.ProjectAccount(a, recurring, planned)
		if c.from != "" {
			from, err := foresight.ParseMonth(c.from)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
			for len(months) > 0 && months[0].Month.Before(from) {
				months = months[1:]
			}
		}
		printMarkdown(renderer.ForecastMarkdown(a, months, c.breakdown))
	}
	return subcommands.ExitSuccess
}

// selectAccounts resolves the -account flag into the list of accounts to report on.
func selectAccounts(plan *foresight.Plan, name string) ([]foresight.Account, subcommands.ExitStatus) {
	if name != "" {
		a := plan.Account(name)
		if a == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown account %q\n", name)
			return nil, subcommands.ExitUsageError
		}
		return []foresight.Account{*a}, subcommands.ExitSuccess
	}
	var accounts []foresight.Account
	for a := range plan.Accounts() {
		accounts = append(accounts, a)
	}
	if len(accounts) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: the plan has no accounts to forecast.")
	}
	return accounts, subcommands.ExitSuccess
}
