// Package cmd implements the CLI application to forecast a financial plan.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/foresight-cli/foresight"
	"github.com/google/subcommands"
)

// Register registers all subcommands. A main package calls Register() and
// then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&forecastCmd{}, "forecasting")
	c.Register(&yearlyCmd{}, "forecasting")
	c.Register(&debtCmd{}, "forecasting")
	c.Register(&wealthCmd{}, "forecasting")

	c.Register(&fmtCmd{}, "plan")
	c.Register(&importCmd{}, "plan")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// CommandNames returns the names of all registered subcommands, for shell completion.
func CommandNames() []string {
	return []string{"forecast", "yearly", "debt", "wealth", "fmt", "import", "topic", "assist"}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var planFile = flag.String("plan-file", "plan.jsonl", "Path to the plan file (JSONL format)")

// DecodePlan reads the app plan file. A missing file yields an empty plan
// with a warning, so first runs do not fail.
func DecodePlan() (p *foresight.Plan, err error) {
	f, err := os.Open(*planFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, plan file does not exist, using an empty plan instead")
		return foresight.NewPlan(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening plan file %q: %w", *planFile, err)
	}
	defer f.Close()
	return foresight.DecodePlan(f)
}

// EncodePlan rewrites the app plan file in canonical form.
func EncodePlan(p *foresight.Plan) error {
	f, err := os.Create(*planFile)
	if err != nil {
		return fmt.Errorf("creating plan file %q: %w", *planFile, err)
	}
	defer f.Close()
	return foresight.EncodePlan(f, p)
}

// printMarkdown renders a markdown document for the terminal. If rendering
// fails the raw markdown is printed instead, it is readable enough.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
