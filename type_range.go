package foresight

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of months. It is the calendar
// backbone of the engine: iterating it yields an ordered, gap-free
// sequence of month keys.
type Range struct{ From, To Month }

// NewRange creates a new month range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Month) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if the month is included in the range (boundaries included).
func (r Range) Contains(m Month) bool { return !m.Before(r.From) && !m.After(r.To) }

// Len returns the number of months in the range, boundaries included.
func (r Range) Len() int { return r.To.Sub(r.From) + 1 }

// IsZero returns true if the range is the zero value.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Months returns an iterator that yields each month within the range, inclusive.
func (r Range) Months() iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for m := r.From; !m.After(r.To); m = m.Add(1) {
			if !yield(m) {
				return
			}
		}
	}
}

// Union returns the smallest range covering both r and s. A zero range is
// treated as empty and does not extend the result.
func (r Range) Union(s Range) Range {
	if r.IsZero() {
		return s
	}
	if s.IsZero() {
		return r
	}
	u := r
	if s.From.Before(u.From) {
		u.From = s.From
	}
	if s.To.After(u.To) {
		u.To = s.To
	}
	return u
}

// String formats the range as "2025-01..2025-12".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
