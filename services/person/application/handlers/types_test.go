package handlers

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalJSON(t *testing.T) {
	t.Run("parses ISO date", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"1994-10-21"`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Year() != 1994 || d.Month() != time.October || d.Day() != 21 {
			t.Fatalf("unexpected date: %v", d.Time)
		}
	})

	t.Run("null yields zero time", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`null`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Fatalf("expected zero time, got %v", d.Time)
		}
	})

	t.Run("empty string yields zero time", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`""`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Fatalf("expected zero time, got %v", d.Time)
		}
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"21/10/1994"`), &d); err == nil {
			t.Fatal("expected error for non-ISO layout")
		}
	})
}

func TestDateMarshalJSON(t *testing.T) {
	d := Date{time.Date(1994, 10, 21, 15, 4, 5, 0, time.Local)}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"1994-10-21"` {
		t.Fatalf("expected quoted ISO date, got %s", b)
	}
}

func TestPersonRequestFields(t *testing.T) {
	t.Run("nil birthDate maps to nil", func(t *testing.T) {
		req := PersonRequest{Name: "Lucas"}
		if f := req.fields(); f.BirthDate != nil {
			t.Fatalf("expected nil BirthDate, got %v", f.BirthDate)
		}
	})

	t.Run("zero birthDate maps to nil", func(t *testing.T) {
		req := PersonRequest{BirthDate: &Date{}}
		if f := req.fields(); f.BirthDate != nil {
			t.Fatalf("expected nil BirthDate, got %v", f.BirthDate)
		}
	})

	t.Run("set birthDate carries through", func(t *testing.T) {
		req := PersonRequest{BirthDate: &Date{time.Date(1994, 10, 21, 0, 0, 0, 0, time.Local)}}
		f := req.fields()
		if f.BirthDate == nil || f.BirthDate.Year() != 1994 {
			t.Fatalf("expected 1994 birth date, got %v", f.BirthDate)
		}
	})
}
