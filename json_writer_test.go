package foresight

import (
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("record", "account")
		w.Append("name", "main")
		w.Append("months", 12)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"record":"account","name":"main","months":12}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional skips zero values", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("name", "main")
		w.Optional("currency", "")
		w.Optional("months", 0)
		w.Optional("salary", false)
		w.Optional("category", "housing")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"name":"main","category":"housing"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshals months as keys", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("start", month("2024-01"))
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"start":"2024-01"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("unmarshalable value fails", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", func() {})
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("marshaling a function value did not fail")
		}
	})
}
