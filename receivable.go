package foresight

import (
	"errors"
	"fmt"
)

// Repayment is a scheduled repayment of money owed to the user.
type Repayment struct {
	On     Month
	Amount Money
}

// Receivable is a principal owed to the user, paid back through scheduled
// repayments. It accrues no interest.
type Receivable struct {
	Name      string
	Currency  string
	Principal Money
	Start     Month
	Months    int // projection horizon in months

	Repayments []Repayment
}

// Range returns the inclusive range of months the receivable is projected over.
func (r Receivable) Range() Range {
	return NewRange(r.Start, r.Start.Add(r.Months-1))
}

// Validate checks the receivable's configuration.
func (r Receivable) Validate() error {
	if r.Name == "" {
		return errors.New("receivable name is missing")
	}
	if r.Start.IsZero() {
		return fmt.Errorf("receivable %q: starting month is missing", r.Name)
	}
	if !r.Principal.IsPositive() {
		return fmt.Errorf("receivable %q: principal must be positive, got %s", r.Name, r.Principal)
	}
	if r.Months <= 0 {
		return fmt.Errorf("receivable %q: horizon must be positive, got %d", r.Name, r.Months)
	}
	if r.Months > maxHorizonMonths {
		return fmt.Errorf("receivable %q: horizon of %d months exceeds the maximum of %d", r.Name, r.Months, maxHorizonMonths)
	}
	for _, p := range r.Repayments {
		if err := validEvent(fmt.Sprintf("receivable %q", r.Name), "repayment", r.Currency, r.Range(), p.On, p.Amount); err != nil {
			return err
		}
	}
	return nil
}

// ReceivableMonth is one month of a receivable's paydown projection.
type ReceivableMonth struct {
	Month   Month
	Repaid  Money // repayments received this month, after clamping
	Balance Money // outstanding balance at the end of the month
}

// ProjectReceivable walks the receivable's month range subtracting the
// repayments received each month. A repayment larger than the outstanding
// balance is clamped: the balance never goes negative.
func ProjectReceivable(r Receivable) []ReceivableMonth {
	rng := r.Range()
	series := make([]ReceivableMonth, 0, rng.Len())
	balance := r.Principal
	for m := range rng.Months() {
		repaid := M(0, r.Currency)
		for _, p := range r.Repayments {
			if p.On == m {
				repaid = repaid.Add(p.Amount)
			}
		}
		repaid = repaid.Min(balance)
		balance = balance.Sub(repaid)
		series = append(series, ReceivableMonth{Month: m, Repaid: repaid, Balance: balance})
	}
	return series
}
