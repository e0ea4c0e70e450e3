package foresight

import (
	"errors"
	"fmt"
)

// maxHorizonMonths caps how far a single instrument may project. It keeps
// the computation bounded; a few decades is plenty for personal planning.
const maxHorizonMonths = 600

// Account is a cash account to project: a starting balance at a starting
// month, and a horizon given either as a month count or an explicit end month.
type Account struct {
	Name     string
	Currency string
	Balance  Money // balance at the beginning of Start
	Start    Month
	Months   int   // horizon as a month count, exclusive with Until
	Until    Month // horizon as an explicit last month, exclusive with Months
}

// Range resolves the account's horizon into the inclusive range of months
// it is projected over.
func (a Account) Range() Range {
	if !a.Until.IsZero() {
		return NewRange(a.Start, a.Until)
	}
	return NewRange(a.Start, a.Start.Add(a.Months-1))
}

// Validate checks that the account's horizon resolves to a single, finite
// end month at or after its starting month.
func (a Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name is missing")
	}
	if a.Start.IsZero() {
		return fmt.Errorf("account %q: starting month is missing", a.Name)
	}
	if a.Months != 0 && !a.Until.IsZero() {
		return fmt.Errorf("account %q: months and until are mutually exclusive", a.Name)
	}
	if a.Months == 0 && a.Until.IsZero() {
		return fmt.Errorf("account %q: horizon is missing, set months or until", a.Name)
	}
	if a.Months < 0 {
		return fmt.Errorf("account %q: months must be positive, got %d", a.Name, a.Months)
	}
	if !a.Until.IsZero() && a.Until.Before(a.Start) {
		return fmt.Errorf("account %q: until %s is before start %s", a.Name, a.Until, a.Start)
	}
	if n := a.Range().Len(); n > maxHorizonMonths {
		return fmt.Errorf("account %q: horizon of %d months exceeds the maximum of %d", a.Name, n, maxHorizonMonths)
	}
	return nil
}

// validEvent checks a dated money event attached to an instrument. The
// amount must be positive and in the instrument's currency, and the month
// must fall within the instrument's range: an event outside it would be
// silently skipped by the projection.
func validEvent(prefix, kind, currency string, rng Range, on Month, amount Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%s: %s in %s must be positive, got %s", prefix, kind, on, amount)
	}
	if cur := amount.Currency(); cur != "" && currency != "" && cur != currency {
		return fmt.Errorf("%s: %s in %s is in %s, want %s", prefix, kind, on, cur, currency)
	}
	if !rng.Contains(on) {
		return fmt.Errorf("%s: %s in %s is outside %s", prefix, kind, on, rng)
	}
	return nil
}
