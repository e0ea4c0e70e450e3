package foresight

import "testing"

// the reference account used across the cashflow tests: 1000 starting
// balance, 2000 of monthly income, 1500 of monthly expenses.
func testAccount(months int) (Account, []RecurringItem) {
	account := Account{
		Name: "main", Currency: "EUR", Balance: EUR(1000),
		Start: month("2024-01"), Months: months,
	}
	recurring := []RecurringItem{
		{Account: "main", Name: "pay", Type: Income, Amount: EUR(2000), Salary: true},
		{Account: "main", Name: "living", Type: Expense, Amount: EUR(1500)},
	}
	return account, recurring
}

func TestProjectAccount_SteadyState(t *testing.T) {
	account, recurring := testAccount(3)
	months, _ := ProjectAccount(account, recurring, nil)

	if len(months) != 3 {
		t.Fatalf("got %d months, want 3", len(months))
	}
	wantEndings := []Money{EUR(1500), EUR(2000), EUR(2500)}
	for i, want := range wantEndings {
		if !months[i].Ending.Equal(want) {
			t.Errorf("month %s: ending = %s, want %s", months[i].Month, months[i].Ending, want)
		}
	}
	first := months[0]
	if !first.Starting.Equal(EUR(1000)) {
		t.Errorf("first month starting = %s, want the account balance", first.Starting)
	}
	if !first.Income.Equal(EUR(2000)) || !first.Expenses.Equal(EUR(1500)) {
		t.Errorf("first month income/expenses = %s/%s, want 2000/1500", first.Income, first.Expenses)
	}
	if !first.Net.Equal(EUR(500)) {
		t.Errorf("first month net = %s, want 500", first.Net)
	}
}

func TestProjectAccount_OneOff(t *testing.T) {
	account, recurring := testAccount(3)
	planned := []PlannedItem{
		{Account: "main", Name: "laptop", Type: Expense, Kind: OneOff, Amount: EUR(300), On: month("2024-02")},
	}

	months, _ := ProjectAccount(account, recurring, planned)

	// only february changes net, later endings all shift by the same amount.
	wantNets := []Money{EUR(500), EUR(200), EUR(500)}
	wantEndings := []Money{EUR(1500), EUR(1700), EUR(2200)}
	for i := range months {
		if !months[i].Net.Equal(wantNets[i]) {
			t.Errorf("month %s: net = %s, want %s", months[i].Month, months[i].Net, wantNets[i])
		}
		if !months[i].Ending.Equal(wantEndings[i]) {
			t.Errorf("month %s: ending = %s, want %s", months[i].Month, months[i].Ending, wantEndings[i])
		}
	}

	// the one-off appears in february's breakdown, and only there.
	for i, p := range months {
		found := false
		for _, l := range p.ExpenseLines {
			if l.Item == "laptop" {
				found = true
				if l.Source != SourceOneOff {
					t.Errorf("laptop line source = %q, want %q", l.Source, SourceOneOff)
				}
			}
		}
		if want := i == 1; found != want {
			t.Errorf("month %s: laptop in breakdown = %v, want %v", p.Month, found, want)
		}
	}
}

func TestProjectAccount_Reconciles(t *testing.T) {
	account, recurring := testAccount(24)
	planned := []PlannedItem{
		{Account: "main", Name: "insurance", Type: Expense, Kind: Repeating, Amount: EUR(120), Frequency: Quarterly, First: month("2024-02")},
		{Account: "main", Name: "bonus", Type: Income, Kind: Repeating, Amount: EUR(1000), Frequency: Yearly, First: month("2024-06")},
		{Account: "main", Name: "laptop", Type: Expense, Kind: OneOff, Amount: EUR(300), On: month("2024-02")},
	}

	months, years := ProjectAccount(account, recurring, planned)

	prev := account.Balance
	for _, p := range months {
		// continuity: each month starts where the previous one ended.
		if !p.Starting.Equal(prev) {
			t.Errorf("month %s: starting = %s, want %s", p.Month, p.Starting, prev)
		}
		// reconciliation: totals match the breakdown sums, and the ending
		// balance follows from them exactly.
		income, expenses := EUR(0), EUR(0)
		for _, l := range p.IncomeLines {
			income = income.Add(l.Amount)
		}
		for _, l := range p.ExpenseLines {
			expenses = expenses.Add(l.Amount)
		}
		if !p.Income.Equal(income) || !p.Expenses.Equal(expenses) {
			t.Errorf("month %s: totals %s/%s do not match breakdown sums %s/%s",
				p.Month, p.Income, p.Expenses, income, expenses)
		}
		if want := p.Starting.Add(p.Income).Sub(p.Expenses); !p.Ending.Equal(want) {
			t.Errorf("month %s: ending = %s, want %s", p.Month, p.Ending, want)
		}
		prev = p.Ending
	}

	// the yearly rollup is a pure regrouping of the same months.
	if len(years) != 2 {
		t.Fatalf("got %d yearly rollups, want 2", len(years))
	}
	for _, y := range years {
		if want := y.Income.Sub(y.Expenses); !y.Net.Equal(want) {
			t.Errorf("year %d: net = %s, want %s", y.Year, y.Net, want)
		}
		if want := y.Starting.Add(y.Net); !y.Ending.Equal(want) {
			t.Errorf("year %d: ending = %s, want %s", y.Year, y.Ending, want)
		}
	}
	if !years[0].Ending.Equal(years[1].Starting) {
		t.Errorf("year 2025 starts at %s, want %s", years[1].Starting, years[0].Ending)
	}
	if !years[1].Ending.Equal(months[len(months)-1].Ending) {
		t.Errorf("last rollup ending = %s, want the last month's %s", years[1].Ending, months[len(months)-1].Ending)
	}
}

func TestProjectAccount_EmptyAccount(t *testing.T) {
	account := Account{Name: "idle", Currency: "EUR", Balance: EUR(750), Start: month("2024-01"), Months: 4}
	months, years := ProjectAccount(account, nil, nil)

	if len(months) != 4 {
		t.Fatalf("got %d months, want 4", len(months))
	}
	for _, p := range months {
		if !p.Ending.Equal(EUR(750)) {
			t.Errorf("month %s: ending = %s, want the balance to stay at 750", p.Month, p.Ending)
		}
	}
	if len(years) != 1 || !years[0].Net.IsZero() {
		t.Errorf("rollup = %+v, want a single zero-net year", years)
	}
}

func TestProjectAccount_IgnoresOtherAccountsItems(t *testing.T) {
	account, _ := testAccount(2)
	recurring := []RecurringItem{
		{Account: "other", Name: "noise", Type: Income, Amount: EUR(9999)},
	}
	months, _ := ProjectAccount(account, recurring, nil)
	if !months[0].Income.IsZero() {
		t.Errorf("income = %s, want items of other accounts ignored", months[0].Income)
	}
}
