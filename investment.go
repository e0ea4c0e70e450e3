package foresight

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Contribution is a scheduled deposit into an investment account.
type Contribution struct {
	On     Month
	Amount Money
}

// InvestmentAccount is an invested principal compounding at an annual
// growth rate, with optional scheduled contributions.
type InvestmentAccount struct {
	Name      string
	Currency  string
	Principal Money
	Rate      Percent // annual growth rate
	Start     Month
	Months    int // projection horizon in months

	Contributions []Contribution
}

// Range returns the inclusive range of months the investment is projected over.
func (a InvestmentAccount) Range() Range {
	return NewRange(a.Start, a.Start.Add(a.Months-1))
}

// Validate checks the investment account's configuration.
func (a InvestmentAccount) Validate() error {
	if a.Name == "" {
		return errors.New("investment name is missing")
	}
	if a.Start.IsZero() {
		return fmt.Errorf("investment %q: starting month is missing", a.Name)
	}
	if a.Principal.IsNegative() {
		return fmt.Errorf("investment %q: principal must not be negative, got %s", a.Name, a.Principal)
	}
	if a.Months <= 0 {
		return fmt.Errorf("investment %q: horizon must be positive, got %d", a.Name, a.Months)
	}
	if a.Months > maxHorizonMonths {
		return fmt.Errorf("investment %q: horizon of %d months exceeds the maximum of %d", a.Name, a.Months, maxHorizonMonths)
	}
	for _, c := range a.Contributions {
		if err := validEvent(fmt.Sprintf("investment %q", a.Name), "contribution", a.Currency, a.Range(), c.On, c.Amount); err != nil {
			return err
		}
	}
	return nil
}

// InvestmentMonth is one month of an investment's growth projection.
type InvestmentMonth struct {
	Month        Month
	Growth       Money // return earned on the opening balance
	Contribution Money // deposits posted this month
	Balance      Money // balance at the end of the month
}

// ProjectInvestment compounds the investment month by month. Each month the
// opening balance grows by (1+annual)^(1/12), then that month's scheduled
// contributions are added: deposits posted within a month do not earn that
// month's return. No withdrawals are modeled.
func ProjectInvestment(a InvestmentAccount) []InvestmentMonth {
	monthlyFactor := decimal.NewFromFloat(math.Pow(1+a.Rate.Fraction(), 1.0/12))

	rng := a.Range()
	series := make([]InvestmentMonth, 0, rng.Len())
	balance := a.Principal
	for m := range rng.Months() {
		grown := balance.Mul(monthlyFactor)
		growth := grown.Sub(balance)

		contribution := M(0, a.Currency)
		for _, c := range a.Contributions {
			if c.On == m {
				contribution = contribution.Add(c.Amount)
			}
		}

		balance = grown.Add(contribution)
		series = append(series, InvestmentMonth{
			Month:        m,
			Growth:       growth,
			Contribution: contribution,
			Balance:      balance,
		})
	}
	return series
}
