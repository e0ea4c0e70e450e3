package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/foresight-cli/foresight"
	"github.com/foresight-cli/foresight/agent"
	"github.com/foresight-cli/foresight/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `fsc assist [question]

  Starts an interactive session with the AI assistant. The assistant is
  given the rendered forecast reports of the current plan and answers
  questions about them. Requires a configured Gemini API key.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	plan, err := DecodePlan()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading plan:", err)
		return subcommands.ExitFailure
	}

	// Render every report once, they become the assistant's whole context.
	var reports []string
	for a := range plan.Accounts() {
		recurring, planned := plan.Items(a.Name)
		months, _ := foresight.ProjectAccount(a, recurring, planned)
		reports = append(reports, renderer.ForecastMarkdown(a, months, true))
	}
	for d := range plan.Debts() {
		reports = append(reports, renderer.DebtMarkdown(d, foresight.ProjectDebt(d)))
	}
	reports = append(reports, renderer.WealthMarkdown(plan.Currency(), foresight.ProjectWealth(plan)))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, reports...)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
