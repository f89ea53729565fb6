package tui

import (
	"testing"
	"time"
)

func TestRelativeDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	layout := "02/01/2006"
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"same day", now.Add(-2 * time.Hour), "today"},
		{"late last night", time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC), "yesterday"},
		{"three days", now.AddDate(0, 0, -3), "3 days ago"},
		{"a week", now.AddDate(0, 0, -7), "7 days ago"},
		{"older", now.AddDate(0, 0, -8), "23/08/2026"},
		{"months back", now.AddDate(0, -3, 0), "31/05/2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := relativeDate(now, tc.at, layout); got != tc.want {
				t.Errorf("relativeDate(%v) = %q, want %q", tc.at, got, tc.want)
			}
		})
	}
}

func TestSymbolFor(t *testing.T) {
	if got := symbolFor("EUR", "?"); got != "€" {
		t.Errorf("EUR = %q", got)
	}
	if got := symbolFor("USD", "?"); got != "$" {
		t.Errorf("USD = %q", got)
	}
	if got := symbolFor("XXX", "?"); got != "?" {
		t.Errorf("fallback = %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney("€", 3840); got != "€3840.00" {
		t.Errorf("formatMoney = %q", got)
	}
	if got := formatMoney("$", -130.5); got != "$-130.50" {
		t.Errorf("formatMoney = %q", got)
	}
}

func TestCountdown(t *testing.T) {
	if got := countdown(300); got != "05:00" {
		t.Errorf("countdown(300) = %q", got)
	}
	if got := countdown(59); got != "00:59" {
		t.Errorf("countdown(59) = %q", got)
	}
	if got := countdown(-3); got != "00:00" {
		t.Errorf("countdown(-3) = %q", got)
	}
}
