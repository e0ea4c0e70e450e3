package foresight

import "testing"

func TestAccount_Range(t *testing.T) {
	testCases := []struct {
		name    string
		account Account
		want    Range
	}{
		{
			name:    "months horizon",
			account: Account{Name: "main", Start: month("2024-01"), Months: 12},
			want:    NewRange(month("2024-01"), month("2024-12")),
		},
		{
			name:    "single month",
			account: Account{Name: "main", Start: month("2024-01"), Months: 1},
			want:    NewRange(month("2024-01"), month("2024-01")),
		},
		{
			name:    "until horizon",
			account: Account{Name: "main", Start: month("2024-01"), Until: month("2026-06")},
			want:    NewRange(month("2024-01"), month("2026-06")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.account.Range(); got != tc.want {
				t.Errorf("Range() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestAccount_Validate(t *testing.T) {
	valid := func() Account {
		return Account{Name: "main", Currency: "EUR", Balance: EUR(1000), Start: month("2024-01"), Months: 12}
	}

	testCases := []struct {
		name    string
		mutate  func(*Account)
		wantErr bool
	}{
		{"valid", func(a *Account) {}, false},
		{"valid with until", func(a *Account) { a.Months = 0; a.Until = month("2024-06") }, false},
		{"missing name", func(a *Account) { a.Name = "" }, true},
		{"missing start", func(a *Account) { a.Start = Month{} }, true},
		{"months and until", func(a *Account) { a.Until = month("2024-06") }, true},
		{"no horizon", func(a *Account) { a.Months = 0 }, true},
		{"negative months", func(a *Account) { a.Months = -3 }, true},
		{"until before start", func(a *Account) { a.Months = 0; a.Until = month("2023-06") }, true},
		{"horizon too long", func(a *Account) { a.Months = maxHorizonMonths + 1 }, true},
		{"horizon at the cap", func(a *Account) { a.Months = maxHorizonMonths }, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := valid()
			tc.mutate(&a)
			err := a.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Validate() = nil, want an error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}
