package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the plan file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fsc fmt

  Validates and formats the plan file. This command reads all records,
  validates them, and writes them back in a canonical JSONL format with
  sub-records grouped under their parent instrument.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan, err := DecodePlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodePlan(plan); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write plan: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully formatted %s\n", *planFile)
	return subcommands.ExitSuccess
}
