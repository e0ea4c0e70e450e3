package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/foresight-cli/foresight"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file     string
	account  string
	currency string
	start    string
	months   int

	balancePath string
	itemsPath   string
	itemType    string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "import an account and its recurring items from a JSON export"
}
func (*importCmd) Usage() string {
	return `fsc import -file <export.json> -account <name> -months <n> [options]

  Creates a cash account in the plan from a third-party JSON export (most
  budgeting apps can produce one). The starting balance is extracted with
  a JSONPath expression, and optionally a list of monthly recurring items:
  the items expression must select an array of objects carrying "name" and
  "amount" fields.

Usage Examples:
# Import the first account of a typical export, with its recurring expenses.
$ fsc import -file export.json -account main -currency EUR \
    -start 2026-01 -months 36 \
    -balance '$.accounts[0].balance' \
    -items '$.accounts[0].recurring' -type expense
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON export to read.")
	f.StringVar(&c.account, "account", "", "Name of the account to create.")
	f.StringVar(&c.currency, "currency", "", "Currency of the account.")
	f.StringVar(&c.start, "start", "", "First month of the account's horizon. Defaults to the current month.")
	f.IntVar(&c.months, "months", 0, "Horizon length in months.")
	f.StringVar(&c.balancePath, "balance", "$.balance", "JSONPath of the starting balance.")
	f.StringVar(&c.itemsPath, "items", "", "JSONPath of an array of recurring items (optional).")
	f.StringVar(&c.itemType, "type", "expense", "Item type for imported items (income or expense).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.account == "" || c.months == 0 {
		fmt.Fprintln(os.Stderr, "Error: -file, -account and -months are required")
		return subcommands.ExitUsageError
	}

	start := foresight.CurrentMonth()
	if c.start != "" {
		var err error
		start, err = foresight.ParseMonth(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	itemType, err := foresight.ParseItemType(c.itemType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	balance, err := jsonFloat(jobj, c.balancePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting balance: %v\n", err)
		return subcommands.ExitFailure
	}

	plan, err := DecodePlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	account := foresight.Account{
		Name:     c.account,
		Currency: c.currency,
		Balance:  foresight.M(balance, c.currency),
		Start:    start,
		Months:   c.months,
	}
	if err := plan.AddAccount(account); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	imported := 0
	if c.itemsPath != "" {
		items, err := jsonItems(jobj, c.itemsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting items: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, it := range items {
			err := plan.AddRecurring(foresight.RecurringItem{
				Account: c.account,
				Name:    it.name,
				Type:    itemType,
				Amount:  foresight.M(it.amount, c.currency),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			imported++
		}
	}

	if err := EncodePlan(plan); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write plan: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported account %q with %d recurring items into %s\n", c.account, imported, *planFile)
	return subcommands.ExitSuccess
}

// jsonFloat extracts a single number from the parsed export.
func jsonFloat(jobj any, path string) (float64, error) {
	val, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	f, ok := val.(float64)
	if !ok {
		return 0, fmt.Errorf("jsonpath %q: want a number, got %T", path, val)
	}
	return f, nil
}

type importedItem struct {
	name   string
	amount float64
}

// jsonItems extracts an array of {name, amount} objects from the parsed export.
func jsonItems(jobj any, path string) ([]importedItem, error) {
	val, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	arr, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("jsonpath %q: want an array, got %T", path, val)
	}
	items := make([]importedItem, 0, len(arr))
	for i, e := range arr {
		obj, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("jsonpath %q: element %d is not an object", path, i)
		}
		name, _ := obj["name"].(string)
		amount, ok := obj["amount"].(float64)
		if name == "" || !ok {
			return nil, fmt.Errorf("jsonpath %q: element %d needs \"name\" and \"amount\" fields", path, i)
		}
		items = append(items, importedItem{name: name, amount: amount})
	}
	return items, nil
}
