package foresight

import "testing"

// the reference loan used across the debt tests: 12000 over 12 months at
// 12% annual, which is a convenient 1% per month.
func testDebt() Debt {
	return Debt{
		Name: "car", Currency: "EUR", Principal: EUR(12000),
		Rate: 12, Term: 12, Start: month("2024-01"),
	}
}

func TestDebt_Payment(t *testing.T) {
	testCases := []struct {
		name string
		debt Debt
		want Money
	}{
		{"annuity", testDebt(), EUR(1066.19)},
		{
			name: "zero rate splits evenly",
			debt: Debt{Name: "family", Currency: "EUR", Principal: EUR(1200), Rate: 0, Term: 12, Start: month("2024-01")},
			want: EUR(100),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.debt.Payment(); !got.Equal(tc.want) {
				t.Errorf("Payment() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestProjectDebt_Amortizes(t *testing.T) {
	schedule := ProjectDebt(testDebt())

	if len(schedule) != 12 {
		t.Fatalf("got %d months, want 12", len(schedule))
	}

	first := schedule[0]
	if !first.Interest.Equal(EUR(120)) {
		t.Errorf("first month interest = %s, want 120", first.Interest)
	}
	if !first.Principal.Equal(EUR(946.19)) {
		t.Errorf("first month principal = %s, want 946.19", first.Principal)
	}
	if !first.Balance.Equal(EUR(11053.81)) {
		t.Errorf("first month balance = %s, want 11053.81", first.Balance)
	}

	// interest declines and principal grows along the schedule, with the
	// split always adding up to the fixed payment.
	payment := testDebt().Payment()
	for i, m := range schedule {
		if want := m.Interest.Add(m.Principal); !want.Equal(payment) {
			t.Errorf("month %s: interest %s + principal %s != payment %s", m.Month, m.Interest, m.Principal, payment)
		}
		if i == 0 {
			continue
		}
		if !m.Interest.LessThan(schedule[i-1].Interest) {
			t.Errorf("month %s: interest %s did not decline from %s", m.Month, m.Interest, schedule[i-1].Interest)
		}
		if !m.Balance.LessThan(schedule[i-1].Balance) {
			t.Errorf("month %s: balance %s did not decline from %s", m.Month, m.Balance, schedule[i-1].Balance)
		}
	}

	last := schedule[len(schedule)-1]
	if !last.Balance.IsZero() {
		t.Errorf("final balance = %s, want 0", last.Balance)
	}

	// total interest of this loan, rounding included.
	total := EUR(0)
	for _, m := range schedule {
		total = total.Add(m.Interest)
	}
	if !total.Equal(EUR(794.23)) {
		t.Errorf("total interest = %s, want 794.23", total)
	}
}

func TestProjectDebt_ZeroRate(t *testing.T) {
	d := Debt{Name: "family", Currency: "EUR", Principal: EUR(1200), Rate: 0, Term: 12, Start: month("2024-01")}
	schedule := ProjectDebt(d)
	for i, m := range schedule {
		if !m.Interest.IsZero() {
			t.Errorf("month %s: interest = %s, want 0", m.Month, m.Interest)
		}
		if !m.Principal.Equal(EUR(100)) {
			t.Errorf("month %s: principal = %s, want 100", m.Month, m.Principal)
		}
		if want := EUR(1200 - 100*float64(i+1)); !m.Balance.Equal(want) {
			t.Errorf("month %s: balance = %s, want %s", m.Month, m.Balance, want)
		}
	}
}

func TestProjectDebt_ExtraPayment(t *testing.T) {
	plain := ProjectDebt(testDebt())

	d := testDebt()
	d.Extras = []ExtraPayment{{On: month("2024-03"), Amount: EUR(2000)}}
	schedule := ProjectDebt(d)

	// before the lump sum both schedules agree.
	for i := range 2 {
		if !schedule[i].Balance.Equal(plain[i].Balance) {
			t.Errorf("month %s: balance = %s, want %s", schedule[i].Month, schedule[i].Balance, plain[i].Balance)
		}
	}
	// the lump sum shifts the balance down by its amount that month.
	if want := plain[2].Balance.Sub(EUR(2000)); !schedule[2].Balance.Equal(want) {
		t.Errorf("month %s: balance = %s, want %s", schedule[2].Month, schedule[2].Balance, want)
	}
	if !schedule[2].Extra.Equal(EUR(2000)) {
		t.Errorf("month %s: extra = %s, want 2000", schedule[2].Month, schedule[2].Extra)
	}

	// paying early closes the loan before its term and costs less interest.
	closed := -1
	for i, m := range schedule {
		if m.Balance.IsZero() {
			closed = i
			break
		}
	}
	if closed < 0 || closed >= len(plain)-1 {
		t.Errorf("loan closed at month index %d, want earlier than the full term", closed)
	}
	totalInterest := func(s []DebtMonth) Money {
		total := EUR(0)
		for _, m := range s {
			total = total.Add(m.Interest)
		}
		return total
	}
	if got, want := totalInterest(schedule), totalInterest(plain); !got.LessThan(want) {
		t.Errorf("total interest with lump sum = %s, want less than %s", got, want)
	}

	// after closure the schedule keeps reporting closed months.
	for _, m := range schedule[closed+1:] {
		if !m.Balance.IsZero() || !m.Interest.IsZero() || !m.Principal.IsZero() {
			t.Errorf("month %s: closed loan reports %s interest, %s principal, %s balance",
				m.Month, m.Interest, m.Principal, m.Balance)
		}
	}
}

func TestProjectDebt_RateChange(t *testing.T) {
	d := testDebt()
	d.Rates = []ReferenceRate{{Effective: month("2024-07"), Rate: 18}}
	schedule := ProjectDebt(d)
	plain := ProjectDebt(testDebt())
	payment := testDebt().Payment()

	for i, m := range schedule {
		// the payment is fixed at origination, a rate change only re-splits it.
		if want := m.Interest.Add(m.Principal); !want.Equal(payment) {
			t.Errorf("month %s: interest + principal = %s, want the fixed payment %s", m.Month, want, payment)
		}
		wantRate := Percent(12)
		if !m.Month.Before(month("2024-07")) {
			wantRate = 18
		}
		if !m.Rate.Equal(wantRate) {
			t.Errorf("month %s: rate = %s, want %s", m.Month, m.Rate, wantRate)
		}
		// until the change both schedules agree.
		if m.Month.Before(month("2024-07")) && !m.Balance.Equal(plain[i].Balance) {
			t.Errorf("month %s: balance = %s, want %s", m.Month, m.Balance, plain[i].Balance)
		}
	}

	// dearer money amortizes slower: the balance stays above the base schedule.
	if !schedule[6].Balance.GreaterThan(plain[6].Balance) {
		t.Errorf("balance after the rate change = %s, want more than %s", schedule[6].Balance, plain[6].Balance)
	}
}

func TestProjectDebt_NegativeAmortization(t *testing.T) {
	// a long loan at a low rate, whose rate then spikes far above the level
	// the payment was computed for: interest exceeds the payment and the
	// shortfall capitalizes.
	d := Debt{
		Name: "mortgage", Currency: "EUR", Principal: EUR(200000),
		Rate: 1, Term: 300, Start: month("2024-01"),
		Rates: []ReferenceRate{{Effective: month("2024-03"), Rate: 12}},
	}
	schedule := ProjectDebt(d)

	m := schedule[2] // first spiked month
	if !m.Principal.IsZero() {
		t.Errorf("month %s: principal = %s, want 0 when interest exceeds the payment", m.Month, m.Principal)
	}
	if !m.Balance.GreaterThan(schedule[1].Balance) {
		t.Errorf("month %s: balance = %s, want it to grow above %s", m.Month, m.Balance, schedule[1].Balance)
	}
	if m.Interest.LessThan(d.Payment()) {
		t.Errorf("month %s: interest = %s, want more than the payment %s", m.Month, m.Interest, d.Payment())
	}
}

func TestDebt_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Debt)
		wantErr bool
	}{
		{"valid", func(d *Debt) {}, false},
		{"missing name", func(d *Debt) { d.Name = "" }, true},
		{"missing start", func(d *Debt) { d.Start = Month{} }, true},
		{"zero principal", func(d *Debt) { d.Principal = EUR(0) }, true},
		{"negative rate", func(d *Debt) { d.Rate = -1 }, true},
		{"zero term", func(d *Debt) { d.Term = 0 }, true},
		{"term too long", func(d *Debt) { d.Term = maxHorizonMonths + 1 }, true},
		{"negative extra", func(d *Debt) { d.Extras = []ExtraPayment{{On: month("2024-02"), Amount: EUR(-1)}} }, true},
		{"extra outside term", func(d *Debt) { d.Extras = []ExtraPayment{{On: month("2025-06"), Amount: EUR(100)}} }, true},
		{"extra in another currency", func(d *Debt) { d.Extras = []ExtraPayment{{On: month("2024-02"), Amount: USD(100)}} }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := testDebt()
			tc.mutate(&d)
			err := d.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Validate() = nil, want an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
