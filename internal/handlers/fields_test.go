package handlers

import (
	"testing"
	"time"
)

func TestStringField(t *testing.T) {
	body := map[string]any{"name": "Rex", "empty": "", "number": 3.0}

	if value, ok := stringField(body, "name"); !ok || value != "Rex" {
		t.Fatalf("expected Rex, got %q ok=%v", value, ok)
	}
	if _, ok := stringField(body, "empty"); ok {
		t.Fatal("empty string must be treated as missing")
	}
	if _, ok := stringField(body, "number"); ok {
		t.Fatal("non-string must be rejected")
	}
	if _, ok := stringField(body, "absent"); ok {
		t.Fatal("absent key must be rejected")
	}
}

func TestNumberFieldZeroQuirk(t *testing.T) {
	body := map[string]any{"hours": 0.0, "real": 2.5, "text": "3"}

	if _, ok := numberField(body, "hours"); ok {
		t.Fatal("zero must be indistinguishable from missing")
	}
	if value, ok := numberField(body, "real"); !ok || value != 2.5 {
		t.Fatalf("expected 2.5, got %v ok=%v", value, ok)
	}
	if _, ok := numberField(body, "text"); ok {
		t.Fatal("numeric strings must be rejected")
	}
}

func TestOptionalStringField(t *testing.T) {
	body := map[string]any{"picture": "url", "bad": 7, "null": nil}

	if value, ok := optionalStringField(body, "picture"); !ok || value == nil || *value != "url" {
		t.Fatalf("expected url, got %v ok=%v", value, ok)
	}
	if value, ok := optionalStringField(body, "absent"); !ok || value != nil {
		t.Fatalf("absent key must be accepted as nil, got %v ok=%v", value, ok)
	}
	if value, ok := optionalStringField(body, "null"); !ok || value != nil {
		t.Fatalf("explicit null must be accepted as nil, got %v ok=%v", value, ok)
	}
	if _, ok := optionalStringField(body, "bad"); ok {
		t.Fatal("present non-string must be rejected")
	}
}

func TestCoerceDate(t *testing.T) {
	cases := []struct {
		raw  any
		want time.Time
	}{
		{"2020-01-15", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2020-01-15T10:30:00Z", time.Date(2020, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"01/15/2020", time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{float64(1579046400000), time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		parsed, ok := coerceDate(tc.raw)
		if !ok {
			t.Fatalf("coerceDate(%v) failed", tc.raw)
		}
		if !parsed.Equal(tc.want) {
			t.Fatalf("coerceDate(%v) = %v, want %v", tc.raw, parsed, tc.want)
		}
	}

	for _, raw := range []any{nil, "not-a-date", true, map[string]any{}} {
		if _, ok := coerceDate(raw); ok {
			t.Fatalf("coerceDate(%v) unexpectedly succeeded", raw)
		}
	}
}

func TestParsePageLimit(t *testing.T) {
	cases := map[string]int{
		"":       10,
		"banana": 10,
		"0":      10,
		"-3":     10,
		"5":      5,
		" 7 ":    7,
	}
	for raw, want := range cases {
		if got := parsePageLimit(raw); got != want {
			t.Fatalf("parsePageLimit(%q) = %d, want %d", raw, got, want)
		}
	}
}
