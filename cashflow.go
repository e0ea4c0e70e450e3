package foresight

// BreakdownLine is one contribution to a month's income or expenses.
type BreakdownLine struct {
	Name     string
	Amount   Money
	Category string
	Source   LineSource
	Item     string // name of the item that produced the line
}

// MonthlyProjection is one month of a cash account's forecast. The ending
// balance always reconciles exactly to the breakdown sums:
// Ending = Starting + TotalIncome - TotalExpenses.
type MonthlyProjection struct {
	Month    Month
	Starting Money
	Income   Money
	Expenses Money
	Net      Money // Income - Expenses
	Ending   Money // Starting + Net

	IncomeLines  []BreakdownLine
	ExpenseLines []BreakdownLine
}

// YearlyRollup aggregates a year of monthly projections.
// Net == Ending - Starting == the sum of the year's monthly nets.
type YearlyRollup struct {
	Year     int
	Starting Money // starting balance of the year's first projected month
	Ending   Money // ending balance of the year's last projected month
	Income   Money
	Expenses Money
	Net      Money
}

// ProjectAccount walks the account's month range in ascending order and
// returns one MonthlyProjection per month plus the per-year rollups.
//
// It is a strict left fold: each month's starting balance is the previous
// month's ending balance (the account's own starting balance for the first
// month), and each month is a pure function of that balance plus the items
// firing that month. There is no look-ahead.
func ProjectAccount(account Account, recurring []RecurringItem, planned []PlannedItem) ([]MonthlyProjection, []YearlyRollup) {
	rng := account.Range()
	months := make([]MonthlyProjection, 0, rng.Len())

	balance := account.Balance
	zero := M(0, account.Currency)
	for m := range rng.Months() {
		p := MonthlyProjection{
			Month:    m,
			Starting: balance,
			Income:   zero,
			Expenses: zero,
		}
		for _, it := range recurring {
			if it.Account != account.Name {
				continue
			}
			p.post(BreakdownLine{
				Name:     it.Name,
				Amount:   it.Amount,
				Category: it.Category,
				Source:   it.Source(),
				Item:     it.Name,
			}, it.Type)
		}
		for _, it := range planned {
			if it.Account != account.Name || !it.OccursIn(m) {
				continue
			}
			p.post(BreakdownLine{
				Name:     it.Name,
				Amount:   it.Amount,
				Category: it.Category,
				Source:   it.Source(),
				Item:     it.Name,
			}, it.Type)
		}
		p.Net = p.Income.Sub(p.Expenses)
		p.Ending = p.Starting.Add(p.Net)
		balance = p.Ending
		months = append(months, p)
	}

	return months, rollup(months)
}

// post appends the line to the month's income or expense breakdown and
// keeps the matching total in sync.
func (p *MonthlyProjection) post(line BreakdownLine, t ItemType) {
	if t == Income {
		p.IncomeLines = append(p.IncomeLines, line)
		p.Income = p.Income.Add(line.Amount)
		return
	}
	p.ExpenseLines = append(p.ExpenseLines, line)
	p.Expenses = p.Expenses.Add(line.Amount)
}

// rollup groups an ordered monthly sequence by calendar year. It is a
// single grouping pass: nothing is recomputed from the items.
func rollup(months []MonthlyProjection) []YearlyRollup {
	var years []YearlyRollup
	for _, p := range months {
		if len(years) == 0 || years[len(years)-1].Year != p.Month.Year() {
			years = append(years, YearlyRollup{
				Year:     p.Month.Year(),
				Starting: p.Starting,
				Income:   M(0, p.Income.Currency()),
				Expenses: M(0, p.Expenses.Currency()),
			})
		}
		y := &years[len(years)-1]
		y.Ending = p.Ending
		y.Income = y.Income.Add(p.Income)
		y.Expenses = y.Expenses.Add(p.Expenses)
		y.Net = y.Net.Add(p.Net)
	}
	return years
}
