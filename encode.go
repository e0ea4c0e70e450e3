package foresight

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a plan as a JSONL file: one record per line, with a
// "record" discriminator. The format is human-readable and git-friendly, so
// a plan can live in a private repository and be edited by hand.

// RecordType is a typed string identifying plan records.
type RecordType string

const (
	RecPlan         RecordType = "plan"
	RecAccount      RecordType = "account"
	RecRecurring    RecordType = "recurring"
	RecPlanned      RecordType = "planned"
	RecInvestment   RecordType = "investment"
	RecContribution RecordType = "contribution"
	RecReceivable   RecordType = "receivable"
	RecRepayment    RecordType = "repayment"
	RecDebt         RecordType = "debt"
	RecRate         RecordType = "rate"
	RecExtraPayment RecordType = "extra-payment"
)

// amountRec reads a monetary amount from its two persisted fields.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRec) Money() Money { return M(a.Amount, a.Currency) }

// DecodePlan decodes a plan from a stream of JSONL records. Records are
// validated as they are added, so a malformed schedule or a dangling
// reference fails here, before any projection runs.
func DecodePlan(r io.Reader) (*Plan, error) {
	plan := NewPlan("")
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record in %q: %w", line, string(lineBytes), err)
		}

		if err := plan.decodeRecord(identifier.Record, lineBytes); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return plan, nil
}

func (p *Plan) decodeRecord(record RecordType, lineBytes []byte) error {
	switch record {
	case RecPlan:
		var temp struct {
			Currency string `json:"currency"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		p.currency = temp.Currency
		return nil

	case RecAccount:
		var temp struct {
			Name     string          `json:"name"`
			Currency string          `json:"currency"`
			Balance  decimal.Decimal `json:"balance"`
			Start    Month           `json:"start"`
			Months   int             `json:"months"`
			Until    Month           `json:"until"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddAccount(Account{
			Name:     temp.Name,
			Currency: temp.Currency,
			Balance:  M(temp.Balance, temp.Currency),
			Start:    temp.Start,
			Months:   temp.Months,
			Until:    temp.Until,
		})

	case RecRecurring:
		var temp struct {
			amountRec
			Account  string   `json:"account"`
			Name     string   `json:"name"`
			Type     ItemType `json:"type"`
			Category string   `json:"category"`
			Salary   bool     `json:"salary"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddRecurring(RecurringItem{
			Account:  temp.Account,
			Name:     temp.Name,
			Type:     temp.Type,
			Amount:   temp.Money(),
			Category: temp.Category,
			Salary:   temp.Salary,
		})

	case RecPlanned:
		var temp struct {
			amountRec
			Account   string    `json:"account"`
			Name      string    `json:"name"`
			Type      ItemType  `json:"type"`
			Kind      ItemKind  `json:"kind"`
			Category  string    `json:"category"`
			On        Month     `json:"on"`
			Frequency Frequency `json:"frequency"`
			Every     int       `json:"every"`
			First     Month     `json:"first"`
			Until     Month     `json:"until"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddPlanned(PlannedItem{
			Account:   temp.Account,
			Name:      temp.Name,
			Type:      temp.Type,
			Kind:      temp.Kind,
			Amount:    temp.Money(),
			Category:  temp.Category,
			On:        temp.On,
			Frequency: temp.Frequency,
			Every:     temp.Every,
			First:     temp.First,
			Until:     temp.Until,
		})

	case RecInvestment:
		var temp struct {
			Name      string          `json:"name"`
			Currency  string          `json:"currency"`
			Principal decimal.Decimal `json:"principal"`
			Rate      Percent         `json:"rate"`
			Start     Month           `json:"start"`
			Months    int             `json:"months"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddInvestment(InvestmentAccount{
			Name:      temp.Name,
			Currency:  temp.Currency,
			Principal: M(temp.Principal, temp.Currency),
			Rate:      temp.Rate,
			Start:     temp.Start,
			Months:    temp.Months,
		})

	case RecContribution:
		var temp struct {
			amountRec
			Investment string `json:"investment"`
			On         Month  `json:"on"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddContribution(temp.Investment, Contribution{On: temp.On, Amount: temp.Money()})

	case RecReceivable:
		var temp struct {
			Name      string          `json:"name"`
			Currency  string          `json:"currency"`
			Principal decimal.Decimal `json:"principal"`
			Start     Month           `json:"start"`
			Months    int             `json:"months"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddReceivable(Receivable{
			Name:      temp.Name,
			Currency:  temp.Currency,
			Principal: M(temp.Principal, temp.Currency),
			Start:     temp.Start,
			Months:    temp.Months,
		})

	case RecRepayment:
		var temp struct {
			amountRec
			Receivable string `json:"receivable"`
			On         Month  `json:"on"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddRepayment(temp.Receivable, Repayment{On: temp.On, Amount: temp.Money()})

	case RecDebt:
		var temp struct {
			Name      string          `json:"name"`
			Currency  string          `json:"currency"`
			Principal decimal.Decimal `json:"principal"`
			Rate      Percent         `json:"rate"`
			Term      int             `json:"term"`
			Start     Month           `json:"start"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddDebt(Debt{
			Name:      temp.Name,
			Currency:  temp.Currency,
			Principal: M(temp.Principal, temp.Currency),
			Rate:      temp.Rate,
			Term:      temp.Term,
			Start:     temp.Start,
		})

	case RecRate:
		var temp struct {
			Debt      string  `json:"debt"`
			Effective Month   `json:"effective"`
			Rate      Percent `json:"rate"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddReferenceRate(temp.Debt, ReferenceRate{Effective: temp.Effective, Rate: temp.Rate})

	case RecExtraPayment:
		var temp struct {
			amountRec
			Debt string `json:"debt"`
			On   Month  `json:"on"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return err
		}
		return p.AddExtraPayment(temp.Debt, ExtraPayment{On: temp.On, Amount: temp.Money()})

	default:
		return fmt.Errorf("unknown record type %q", record)
	}
}

// EncodePlan writes the plan as JSONL in canonical order: the plan header,
// then accounts with their items, investments with their contributions,
// receivables with their repayments, and debts with their rates and extra
// payments. Encoding then decoding a plan yields the same plan.
func EncodePlan(w io.Writer, p *Plan) error {
	writeln := func(record RecordType, build func(jw *jsonObjectWriter)) error {
		var jw jsonObjectWriter
		jw.Append("record", record)
		build(&jw)
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encoding %s record: %w", record, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
		return nil
	}

	if err := writeln(RecPlan, func(jw *jsonObjectWriter) {
		jw.Optional("currency", p.currency)
	}); err != nil {
		return err
	}

	for _, a := range p.accounts {
		if err := writeln(RecAccount, func(jw *jsonObjectWriter) {
			jw.Append("name", a.Name)
			jw.Optional("currency", a.Currency)
			jw.Append("balance", a.Balance.Amount())
			jw.Append("start", a.Start)
			jw.Optional("months", a.Months)
			if !a.Until.IsZero() {
				jw.Append("until", a.Until)
			}
		}); err != nil {
			return err
		}
		for _, it := range p.recurring {
			if it.Account != a.Name {
				continue
			}
			if err := writeln(RecRecurring, func(jw *jsonObjectWriter) {
				jw.Append("account", it.Account)
				jw.Append("name", it.Name)
				jw.Append("type", it.Type)
				jw.Append("amount", it.Amount.Amount())
				jw.Optional("currency", it.Amount.Currency())
				jw.Optional("category", it.Category)
				jw.Optional("salary", it.Salary)
			}); err != nil {
				return err
			}
		}
		for _, it := range p.planned {
			if it.Account != a.Name {
				continue
			}
			if err := writeln(RecPlanned, func(jw *jsonObjectWriter) {
				jw.Append("account", it.Account)
				jw.Append("name", it.Name)
				jw.Append("type", it.Type)
				jw.Append("kind", it.Kind)
				jw.Append("amount", it.Amount.Amount())
				jw.Optional("currency", it.Amount.Currency())
				jw.Optional("category", it.Category)
				if it.Kind == OneOff {
					jw.Append("on", it.On)
					return
				}
				jw.Append("frequency", it.Frequency)
				jw.Optional("every", it.Every)
				jw.Append("first", it.First)
				if !it.Until.IsZero() {
					jw.Append("until", it.Until)
				}
			}); err != nil {
				return err
			}
		}
	}

	for _, a := range p.investments {
		if err := writeln(RecInvestment, func(jw *jsonObjectWriter) {
			jw.Append("name", a.Name)
			jw.Optional("currency", a.Currency)
			jw.Append("principal", a.Principal.Amount())
			jw.Append("rate", a.Rate)
			jw.Append("start", a.Start)
			jw.Append("months", a.Months)
		}); err != nil {
			return err
		}
		for _, c := range a.Contributions {
			if err := writeln(RecContribution, func(jw *jsonObjectWriter) {
				jw.Append("investment", a.Name)
				jw.Append("on", c.On)
				jw.Append("amount", c.Amount.Amount())
				jw.Optional("currency", c.Amount.Currency())
			}); err != nil {
				return err
			}
		}
	}

	for _, r := range p.receivables {
		if err := writeln(RecReceivable, func(jw *jsonObjectWriter) {
			jw.Append("name", r.Name)
			jw.Optional("currency", r.Currency)
			jw.Append("principal", r.Principal.Amount())
			jw.Append("start", r.Start)
			jw.Append("months", r.Months)
		}); err != nil {
			return err
		}
		for _, rp := range r.Repayments {
			if err := writeln(RecRepayment, func(jw *jsonObjectWriter) {
				jw.Append("receivable", r.Name)
				jw.Append("on", rp.On)
				jw.Append("amount", rp.Amount.Amount())
				jw.Optional("currency", rp.Amount.Currency())
			}); err != nil {
				return err
			}
		}
	}

	for _, d := range p.debts {
		if err := writeln(RecDebt, func(jw *jsonObjectWriter) {
			jw.Append("name", d.Name)
			jw.Optional("currency", d.Currency)
			jw.Append("principal", d.Principal.Amount())
			jw.Append("rate", d.Rate)
			jw.Append("term", d.Term)
			jw.Append("start", d.Start)
		}); err != nil {
			return err
		}
		for _, rr := range d.Rates {
			if err := writeln(RecRate, func(jw *jsonObjectWriter) {
				jw.Append("debt", d.Name)
				jw.Append("effective", rr.Effective)
				jw.Append("rate", rr.Rate)
			}); err != nil {
				return err
			}
		}
		for _, e := range d.Extras {
			if err := writeln(RecExtraPayment, func(jw *jsonObjectWriter) {
				jw.Append("debt", d.Name)
				jw.Append("on", e.On)
				jw.Append("amount", e.Amount.Amount())
				jw.Optional("currency", e.Amount.Currency())
			}); err != nil {
				return err
			}
		}
	}

	return nil
}
