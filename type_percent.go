package foresight

import "fmt"

// Percent represents a rate expressed in percent (6 means 6%).
// Annual interest and growth rates are carried as Percent.
type Percent float64

// Fraction returns the rate as a plain fraction (6% -> 0.06).
func (p Percent) Fraction() float64 { return float64(p) / 100 }

// Monthly returns the simple monthly rate, the annual rate divided by 12.
func (p Percent) Monthly() float64 { return p.Fraction() / 12 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
