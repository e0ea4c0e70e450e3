package foresight

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// ReferenceRate is a discrete change of a debt's effective annual rate.
// From its effective month on, the debt accrues interest at this rate
// instead of the base rate.
type ReferenceRate struct {
	Effective Month
	Rate      Percent
}

// ExtraPayment is a lump sum applied directly to a debt's principal,
// outside the regular amortization schedule.
type ExtraPayment struct {
	On     Month
	Amount Money
}

// Debt is a liability amortized over a fixed term with a level payment.
// The payment is fixed at origination from the base rate; later reference
// rate changes re-split interest and principal but never recompute the
// payment itself.
type Debt struct {
	Name      string
	Currency  string
	Principal Money
	Rate      Percent // base annual rate
	Term      int     // amortization term in months
	Start     Month

	Rates  []ReferenceRate
	Extras []ExtraPayment
}

// Range returns the inclusive range of months the debt is amortized over.
func (d Debt) Range() Range {
	return NewRange(d.Start, d.Start.Add(d.Term-1))
}

// Validate checks the debt's configuration.
func (d Debt) Validate() error {
	if d.Name == "" {
		return errors.New("debt name is missing")
	}
	if d.Start.IsZero() {
		return fmt.Errorf("debt %q: starting month is missing", d.Name)
	}
	if !d.Principal.IsPositive() {
		return fmt.Errorf("debt %q: principal must be positive, got %s", d.Name, d.Principal)
	}
	if d.Rate < 0 {
		return fmt.Errorf("debt %q: base rate must not be negative, got %s", d.Name, d.Rate)
	}
	if d.Term <= 0 {
		return fmt.Errorf("debt %q: term must be positive, got %d", d.Name, d.Term)
	}
	if d.Term > maxHorizonMonths {
		return fmt.Errorf("debt %q: term of %d months exceeds the maximum of %d", d.Name, d.Term, maxHorizonMonths)
	}
	for _, e := range d.Extras {
		if err := validEvent(fmt.Sprintf("debt %q", d.Name), "extra payment", d.Currency, d.Range(), e.On, e.Amount); err != nil {
			return err
		}
	}
	return nil
}

// Payment returns the level monthly payment fixed at loan origination,
// computed with the standard annuity formula over the full term at the
// base rate. A zero-rate loan splits the principal evenly.
func (d Debt) Payment() Money {
	r := d.Rate.Monthly()
	if r == 0 {
		return d.Principal.Div(newDecimal(d.Term)).Round(2)
	}
	// P * r * (1+r)^n / ((1+r)^n - 1). The power is computed in float64,
	// then converted back to decimal for the monetary arithmetic.
	factor := math.Pow(1+r, float64(d.Term))
	coeff := decimal.NewFromFloat(r * factor / (factor - 1))
	return d.Principal.Mul(coeff).Round(2)
}

// rateIn returns the effective annual rate for a month: the most recent
// reference rate entry effective at or before it, falling back to the base
// rate when none applies yet.
func (d Debt) rateIn(m Month, sorted []ReferenceRate) Percent {
	rate := d.Rate
	for _, rr := range sorted {
		if rr.Effective.After(m) {
			break
		}
		rate = rr.Rate
	}
	return rate
}

// DebtMonth is one month of a debt's amortization schedule.
type DebtMonth struct {
	Month     Month
	Rate      Percent // effective annual rate applied this month
	Interest  Money   // interest accrued this month
	Principal Money   // principal paid down by the regular payment, never negative
	Extra     Money   // lump sums applied this month
	Balance   Money   // outstanding balance at the end of the month
}

// ProjectDebt amortizes the debt month by month over its term.
//
// Each month accrues interest at the effective rate, splits the fixed
// payment into interest and principal, and applies any extra payment
// directly to the balance. When a rate spike pushes interest above the
// payment, no principal is reported and the shortfall capitalizes: the
// balance grows (negative amortization). Once the balance reaches zero the
// loan is closed and the remaining months report zero balance and interest.
func ProjectDebt(d Debt) []DebtMonth {
	payment := d.Payment()
	zero := M(0, d.Currency)

	rates := append([]ReferenceRate(nil), d.Rates...)
	sort.SliceStable(rates, func(i, j int) bool { return rates[i].Effective.Before(rates[j].Effective) })

	rng := d.Range()
	schedule := make([]DebtMonth, 0, rng.Len())
	balance := d.Principal
	for m := range rng.Months() {
		if balance.IsZero() {
			schedule = append(schedule, DebtMonth{Month: m, Rate: 0, Interest: zero, Principal: zero, Extra: zero, Balance: zero})
			continue
		}

		rate := d.rateIn(m, rates)
		interest := balance.Mul(decimal.NewFromFloat(rate.Monthly())).Round(2)
		portion := payment.Sub(interest) // negative when interest exceeds the payment

		extra := zero
		for _, e := range d.Extras {
			if e.On == m {
				extra = extra.Add(e.Amount)
			}
		}

		// The signed portion drives the balance so that capitalized
		// interest makes it grow; the reported principal is floored at 0.
		next := balance.Sub(portion).Sub(extra)
		if next.IsNegative() {
			next = zero
		}
		principal := portion
		if principal.IsNegative() {
			principal = zero
		}
		balance = next

		schedule = append(schedule, DebtMonth{
			Month:     m,
			Rate:      rate,
			Interest:  interest,
			Principal: principal,
			Extra:     extra,
			Balance:   balance,
		})
	}
	return schedule
}
