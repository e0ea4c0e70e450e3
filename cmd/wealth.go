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

// wealthCmd holds the flags for the 'wealth' subcommand.
type wealthCmd struct {
	from string
}

func (*wealthCmd) Name() string     { return "wealth" }
func (*wealthCmd) Synopsis() string { return "display the aggregated net-worth timeline" }
func (*wealthCmd) Usage() string {
	return `fsc wealth [-from <2006-01>]

  Projects every instrument in the plan and merges them into one
  net-worth timeline: cash + investments + receivables - debts.
`
}

func (c *wealthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Hide months before this one in the report.")
}

func (c *wealthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := DecodePlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	timeline := foresight.ProjectWealth(plan)
	if c.from != "" {
		from, err := foresight.ParseMonth(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		for len(timeline) > 0 && timeline[0].Month.Before(from) {
			timeline = timeline[1:]
		}
	}

	printMarkdown(renderer.WealthMarkdown(plan.Currency(), timeline))
	return subcommands.ExitSuccess
}
