package foresight

import (
	"errors"
	"fmt"
)

// ItemType is a typed string discriminating income from expense items.
type ItemType string

const (
	Income  ItemType = "income"
	Expense ItemType = "expense"
)

// ParseItemType parses a string into an ItemType.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case Income, Expense:
		return ItemType(s), nil
	default:
		return "", fmt.Errorf("unknown item type %q, want %q or %q", s, Income, Expense)
	}
}

// LineSource identifies which kind of item produced a breakdown line.
type LineSource string

const (
	SourceRecurring LineSource = "recurring"
	SourceSalary    LineSource = "salary"
	SourceOneOff    LineSource = "planned-one-off"
	SourceRepeating LineSource = "planned-repeating"
)

// RecurringItem is a fixed monthly cash item. It contributes its amount
// every month within the account's active window; no schedule expansion
// is needed.
type RecurringItem struct {
	Account  string // name of the account the item belongs to
	Name     string
	Type     ItemType
	Amount   Money // always positive; Type carries the direction
	Category string
	Salary   bool // marks the item as the salary subtype
}

// Source returns the breakdown source for the item.
func (it RecurringItem) Source() LineSource {
	if it.Salary {
		return SourceSalary
	}
	return SourceRecurring
}

// Validate checks the recurring item's configuration.
func (it RecurringItem) Validate() error {
	if it.Account == "" {
		return fmt.Errorf("recurring item %q: account is missing", it.Name)
	}
	if it.Name == "" {
		return errors.New("recurring item name is missing")
	}
	if _, err := ParseItemType(string(it.Type)); err != nil {
		return fmt.Errorf("recurring item %q: %w", it.Name, err)
	}
	if !it.Amount.IsPositive() {
		return fmt.Errorf("recurring item %q: amount must be positive, got %s", it.Name, it.Amount)
	}
	return nil
}

// ItemKind discriminates one-off from repeating planned items.
type ItemKind string

const (
	OneOff    ItemKind = "one-off"
	Repeating ItemKind = "repeating"
)

// Frequency is the cadence of a repeating planned item.
type Frequency string

const (
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
	Custom    Frequency = "custom"
)

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Quarterly, Yearly, Custom:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("unknown frequency %q, want quarterly, yearly or custom", s)
	}
}

// PlannedItem is a scheduled cash item, either a one-off on a single month
// or a repeating series. A one-off item never carries schedule fields, and
// a repeating item never carries a one-off date; Validate enforces the split.
type PlannedItem struct {
	Account  string
	Name     string
	Type     ItemType
	Kind     ItemKind
	Amount   Money // always positive; Type carries the direction
	Category string

	On Month // one-off only: the single month the item fires in

	Frequency Frequency // repeating only
	Every     int       // repeating with custom frequency: interval in months
	First     Month     // repeating only: first occurrence
	Until     Month     // repeating only, optional: last month the item may fire in
}

// Source returns the breakdown source for the item.
func (it PlannedItem) Source() LineSource {
	if it.Kind == OneOff {
		return SourceOneOff
	}
	return SourceRepeating
}

// interval returns the repeating item's cadence in months.
func (it PlannedItem) interval() int {
	switch it.Frequency {
	case Quarterly:
		return 3
	case Yearly:
		return 12
	case Custom:
		return it.Every
	default:
		panic(fmt.Sprintf("unknown frequency %q", it.Frequency))
	}
}

// OccursIn reports whether the item fires in the given month.
//
// A one-off fires only in its scheduled month. A repeating item fires at
// First + k*interval for k >= 0, bounded above by Until when set.
func (it PlannedItem) OccursIn(m Month) bool {
	switch it.Kind {
	case OneOff:
		return m == it.On
	case Repeating:
		if m.Before(it.First) {
			return false
		}
		if !it.Until.IsZero() && m.After(it.Until) {
			return false
		}
		return m.Sub(it.First)%it.interval() == 0
	default:
		panic(fmt.Sprintf("unknown planned item kind %q", it.Kind))
	}
}

// Validate checks the planned item's configuration. Malformed schedules are
// rejected here, before projection, so the engine never sees them mid-loop.
func (it PlannedItem) Validate() error {
	if it.Account == "" {
		return fmt.Errorf("planned item %q: account is missing", it.Name)
	}
	if it.Name == "" {
		return errors.New("planned item name is missing")
	}
	if _, err := ParseItemType(string(it.Type)); err != nil {
		return fmt.Errorf("planned item %q: %w", it.Name, err)
	}
	if !it.Amount.IsPositive() {
		return fmt.Errorf("planned item %q: amount must be positive, got %s", it.Name, it.Amount)
	}
	switch it.Kind {
	case OneOff:
		if it.On.IsZero() {
			return fmt.Errorf("planned item %q: one-off item needs a month", it.Name)
		}
		if it.Frequency != "" || it.Every != 0 || !it.First.IsZero() || !it.Until.IsZero() {
			return fmt.Errorf("planned item %q: one-off item must not carry schedule fields", it.Name)
		}
	case Repeating:
		if !it.On.IsZero() {
			return fmt.Errorf("planned item %q: repeating item must not carry a one-off month", it.Name)
		}
		if _, err := ParseFrequency(string(it.Frequency)); err != nil {
			return fmt.Errorf("planned item %q: %w", it.Name, err)
		}
		if it.Frequency == Custom && it.Every <= 0 {
			return fmt.Errorf("planned item %q: custom interval must be positive, got %d", it.Name, it.Every)
		}
		if it.Frequency != Custom && it.Every != 0 {
			return fmt.Errorf("planned item %q: interval is only valid with the custom frequency", it.Name)
		}
		if it.First.IsZero() {
			return fmt.Errorf("planned item %q: first occurrence is missing", it.Name)
		}
		if !it.Until.IsZero() && it.Until.Before(it.First) {
			return fmt.Errorf("planned item %q: until %s is before first occurrence %s", it.Name, it.Until, it.First)
		}
	default:
		return fmt.Errorf("planned item %q: unknown kind %q, want %q or %q", it.Name, it.Kind, OneOff, Repeating)
	}
	return nil
}
