package foresight

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// month is a helper for test to create a month from its "2006-01" key.
func month(s string) Month { return MustParseMonth(s) }
