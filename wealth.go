package foresight

import (
	"github.com/shopspring/decimal"
)

// WealthMonth is one month of the aggregated net-worth timeline.
// Debts holds the liability magnitude and is never negative, so that
// NetWorth = Cash + Investments + Receivables - Debts.
//
// Totals are sums across instruments in the plan's reporting currency.
// Instruments held in another currency are summed without conversion; this
// is a known, caller-visible limitation of the aggregation.
type WealthMonth struct {
	Month       Month
	Cash        Money
	Investments Money
	Receivables Money
	Debts       Money
	NetWorth    Money
}

// wealthSeries is one instrument's monthly values on the aggregate timeline.
type wealthSeries struct {
	start  Month
	values []decimal.Decimal
}

// at resolves the instrument's value for a month of the aggregate span:
// zero before the instrument opens, its own projection within range, and
// its last computed value carried forward unchanged after its own
// projection ends (a closed debt correctly stays at zero, a finished
// account retains its last ending balance).
func (s wealthSeries) at(m Month) decimal.Decimal {
	i := m.Sub(s.start)
	switch {
	case i < 0 || len(s.values) == 0:
		return decimal.Zero
	case i >= len(s.values):
		return s.values[len(s.values)-1]
	default:
		return s.values[i]
	}
}

// ProjectWealth projects every instrument in the plan and merges the
// per-instrument series into a single net-worth timeline. The timeline
// spans from the earliest starting month among all instruments to the
// latest projected month among them.
//
// Per-instrument projections are independent pure folds; only this merge
// step joins them.
func ProjectWealth(p *Plan) []WealthMonth {
	var span Range
	collect := func(rng Range, balances []decimal.Decimal, into *[]wealthSeries) {
		span = span.Union(rng)
		*into = append(*into, wealthSeries{start: rng.From, values: balances})
	}

	var cash, investments, receivables, debts []wealthSeries
	for a := range p.Accounts() {
		recurring, planned := p.Items(a.Name)
		months, _ := ProjectAccount(a, recurring, planned)
		balances := make([]decimal.Decimal, len(months))
		for i, m := range months {
			balances[i] = m.Ending.Amount()
		}
		collect(a.Range(), balances, &cash)
	}
	for a := range p.Investments() {
		series := ProjectInvestment(a)
		balances := make([]decimal.Decimal, len(series))
		for i, m := range series {
			balances[i] = m.Balance.Amount()
		}
		collect(a.Range(), balances, &investments)
	}
	for r := range p.Receivables() {
		series := ProjectReceivable(r)
		balances := make([]decimal.Decimal, len(series))
		for i, m := range series {
			balances[i] = m.Balance.Amount()
		}
		collect(r.Range(), balances, &receivables)
	}
	for d := range p.Debts() {
		series := ProjectDebt(d)
		balances := make([]decimal.Decimal, len(series))
		for i, m := range series {
			balances[i] = m.Balance.Amount()
		}
		collect(d.Range(), balances, &debts)
	}

	if span.IsZero() {
		return nil
	}

	sum := func(series []wealthSeries, m Month) decimal.Decimal {
		total := decimal.Zero
		for _, s := range series {
			total = total.Add(s.at(m))
		}
		return total
	}

	timeline := make([]WealthMonth, 0, span.Len())
	for m := range span.Months() {
		c := sum(cash, m)
		i := sum(investments, m)
		r := sum(receivables, m)
		d := sum(debts, m)
		net := c.Add(i).Add(r).Sub(d)
		timeline = append(timeline, WealthMonth{
			Month:       m,
			Cash:        M(c, p.currency),
			Investments: M(i, p.currency),
			Receivables: M(r, p.currency),
			Debts:       M(d, p.currency),
			NetWorth:    M(net, p.currency),
		})
	}
	return timeline
}
