package foresight

import (
	"fmt"
	"iter"
	"slices"
)

// Plan represents all recorded financial facts of one user: cash accounts
// with their recurring and planned items, investments, receivables and
// debts, plus the currency that aggregated totals are reported in.
//
// A Plan is a read-only snapshot for the duration of a projection call;
// projections never mutate it.
type Plan struct {
	currency    string // reporting currency for aggregated totals
	accounts    []Account
	recurring   []RecurringItem
	planned     []PlannedItem
	investments []InvestmentAccount
	receivables []Receivable
	debts       []Debt
}

// NewPlan creates an empty plan reporting in the given currency.
func NewPlan(currency string) *Plan {
	return &Plan{currency: currency}
}

// Currency returns the plan's reporting currency.
func (p *Plan) Currency() string { return p.currency }

// SetCurrency sets the plan's reporting currency.
func (p *Plan) SetCurrency(c string) { p.currency = c }

// Account returns the cash account with this name, or nil if unknown.
func (p *Plan) Account(name string) *Account {
	for i := range p.accounts {
		if p.accounts[i].Name == name {
			return &p.accounts[i]
		}
	}
	return nil
}

// Debt returns the debt with this name, or nil if unknown.
func (p *Plan) Debt(name string) *Debt {
	for i := range p.debts {
		if p.debts[i].Name == name {
			return &p.debts[i]
		}
	}
	return nil
}

// Investment returns the investment account with this name, or nil if unknown.
func (p *Plan) Investment(name string) *InvestmentAccount {
	for i := range p.investments {
		if p.investments[i].Name == name {
			return &p.investments[i]
		}
	}
	return nil
}

// Receivable returns the receivable with this name, or nil if unknown.
func (p *Plan) Receivable(name string) *Receivable {
	for i := range p.receivables {
		if p.receivables[i].Name == name {
			return &p.receivables[i]
		}
	}
	return nil
}

// Accounts returns an iterator over the plan's cash accounts.
func (p *Plan) Accounts() iter.Seq[Account] { return slices.Values(p.accounts) }

// Investments returns an iterator over the plan's investment accounts.
func (p *Plan) Investments() iter.Seq[InvestmentAccount] { return slices.Values(p.investments) }

// Receivables returns an iterator over the plan's receivables.
func (p *Plan) Receivables() iter.Seq[Receivable] { return slices.Values(p.receivables) }

// Debts returns an iterator over the plan's debts.
func (p *Plan) Debts() iter.Seq[Debt] { return slices.Values(p.debts) }

// Items returns the recurring and planned items attached to an account.
func (p *Plan) Items(account string) (recurring []RecurringItem, planned []PlannedItem) {
	for _, it := range p.recurring {
		if it.Account == account {
			recurring = append(recurring, it)
		}
	}
	for _, it := range p.planned {
		if it.Account == account {
			planned = append(planned, it)
		}
	}
	return recurring, planned
}

// AddAccount validates the account and appends it to the plan.
func (p *Plan) AddAccount(a Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if p.Account(a.Name) != nil {
		return fmt.Errorf("account %q is already defined", a.Name)
	}
	p.accounts = append(p.accounts, a)
	return nil
}

// AddRecurring validates the item and appends it to the plan. The item's
// account must already be defined, and the item's amount must be in the
// account's currency (or carry none and inherit it).
func (p *Plan) AddRecurring(it RecurringItem) error {
	if err := it.Validate(); err != nil {
		return err
	}
	a := p.Account(it.Account)
	if a == nil {
		return fmt.Errorf("recurring item %q: unknown account %q", it.Name, it.Account)
	}
	if cur := it.Amount.Currency(); cur != "" && a.Currency != "" && cur != a.Currency {
		return fmt.Errorf("recurring item %q: amount in %s but account %q is in %s", it.Name, cur, a.Name, a.Currency)
	}
	p.recurring = append(p.recurring, it)
	return nil
}

// AddPlanned validates the item and appends it to the plan. The item's
// account must already be defined, and the item's amount must be in the
// account's currency (or carry none and inherit it).
func (p *Plan) AddPlanned(it PlannedItem) error {
	if err := it.Validate(); err != nil {
		return err
	}
	a := p.Account(it.Account)
	if a == nil {
		return fmt.Errorf("planned item %q: unknown account %q", it.Name, it.Account)
	}
	if cur := it.Amount.Currency(); cur != "" && a.Currency != "" && cur != a.Currency {
		return fmt.Errorf("planned item %q: amount in %s but account %q is in %s", it.Name, cur, a.Name, a.Currency)
	}
	p.planned = append(p.planned, it)
	return nil
}

// AddInvestment validates the investment and appends it to the plan.
func (p *Plan) AddInvestment(a InvestmentAccount) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if p.Investment(a.Name) != nil {
		return fmt.Errorf("investment %q is already defined", a.Name)
	}
	p.investments = append(p.investments, a)
	return nil
}

// AddReceivable validates the receivable and appends it to the plan.
func (p *Plan) AddReceivable(r Receivable) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if p.Receivable(r.Name) != nil {
		return fmt.Errorf("receivable %q is already defined", r.Name)
	}
	p.receivables = append(p.receivables, r)
	return nil
}

// AddContribution attaches a contribution event to an investment account.
func (p *Plan) AddContribution(investment string, c Contribution) error {
	a := p.Investment(investment)
	if a == nil {
		return fmt.Errorf("contribution: unknown investment %q", investment)
	}
	if err := validEvent(fmt.Sprintf("investment %q", a.Name), "contribution", a.Currency, a.Range(), c.On, c.Amount); err != nil {
		return err
	}
	a.Contributions = append(a.Contributions, c)
	return nil
}

// AddRepayment attaches a repayment event to a receivable.
func (p *Plan) AddRepayment(receivable string, r Repayment) error {
	rcv := p.Receivable(receivable)
	if rcv == nil {
		return fmt.Errorf("repayment: unknown receivable %q", receivable)
	}
	if err := validEvent(fmt.Sprintf("receivable %q", rcv.Name), "repayment", rcv.Currency, rcv.Range(), r.On, r.Amount); err != nil {
		return err
	}
	rcv.Repayments = append(rcv.Repayments, r)
	return nil
}

// AddReferenceRate attaches a rate change event to a debt.
func (p *Plan) AddReferenceRate(debt string, r ReferenceRate) error {
	d := p.Debt(debt)
	if d == nil {
		return fmt.Errorf("reference rate: unknown debt %q", debt)
	}
	if r.Rate < 0 {
		return fmt.Errorf("debt %q: reference rate must not be negative, got %s", debt, r.Rate)
	}
	d.Rates = append(d.Rates, r)
	return nil
}

// AddExtraPayment attaches an extra principal payment to a debt.
func (p *Plan) AddExtraPayment(debt string, e ExtraPayment) error {
	d := p.Debt(debt)
	if d == nil {
		return fmt.Errorf("extra payment: unknown debt %q", debt)
	}
	if err := validEvent(fmt.Sprintf("debt %q", d.Name), "extra payment", d.Currency, d.Range(), e.On, e.Amount); err != nil {
		return err
	}
	d.Extras = append(d.Extras, e)
	return nil
}

// AddDebt validates the debt and appends it to the plan.
func (p *Plan) AddDebt(d Debt) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if p.Debt(d.Name) != nil {
		return fmt.Errorf("debt %q is already defined", d.Name)
	}
	p.debts = append(p.debts, d)
	return nil
}
