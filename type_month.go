package foresight

import (
	"encoding/json"
	"fmt"
	"time"
)

const readMonthFormat = "2006-1" // Permissive read month format (allows single-digit month).

// MonthFormat is the format used to represent month keys as strings.
const MonthFormat = "2006-01" // write month format

// Month represents a calendar month with no day component. It is the
// projection's time unit: every projected value is keyed by a Month.
type Month struct {
	y int        // year
	m time.Month // month
}

// NewMonth returns a normalized Month for the given year and month.
// Out-of-range months roll over (year 2024 month 13 is 2025-01).
func NewMonth(year int, month time.Month) Month {
	d := Month{year, month}
	d.y, d.m, _ = d.time().Date()
	return d
}

// time returns a canonical time.Time for the month (first day, midnight UTC).
func (d Month) time() time.Time { return time.Date(d.y, d.m, 1, 0, 0, 0, 0, time.UTC) }

// Year returns the calendar year.
func (d Month) Year() int { return d.y }

// Month returns the month within the year.
func (d Month) Month() time.Month { return d.m }

// IsZero returns true if the month is the zero value.
func (d Month) IsZero() bool { return d.y == 0 && d.m == 0 }

// String formats the month key in its standard "2006-01" form.
func (d Month) String() string { return d.time().Format(MonthFormat) }

// index maps the month onto a continuous month axis, so that consecutive
// months have consecutive indices across year boundaries.
func (d Month) index() int { return d.y*12 + int(d.m) - 1 }

// Add returns the month i months later (or earlier for negative i).
func (d Month) Add(i int) Month { return NewMonth(d.y, d.m+time.Month(i)) }

// Sub returns the number of whole months from x to d (positive when d is after x).
func (d Month) Sub(x Month) int { return d.index() - x.index() }

// Before reports whether d is strictly before x.
func (d Month) Before(x Month) bool { return d.index() < x.index() }

// After reports whether d is strictly after x.
func (d Month) After(x Month) bool { return d.index() > x.index() }

// MonthOf returns the Month containing the given time.
func MonthOf(t time.Time) Month { return NewMonth(t.Year(), t.Month()) }

// CurrentMonth returns the month containing today.
//
// The engine itself never consults the clock: CurrentMonth is for callers
// (the CLI) choosing a default starting point.
func CurrentMonth() Month { return MonthOf(time.Now()) }

// ParseMonth parses a Month from a string. It is lenient and accepts
// formats like "2025-7" in addition to "2025-07".
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(readMonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return MonthOf(on), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	d, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements json.Unmarshaler reading a month from a json string.
func (d *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	m, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*d = m
	return nil
}

// MarshalJSON implements json.Marshaler writing the month as a json string.
func (d Month) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Month pointer is a valid json marshal/unmarshal type.
var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
