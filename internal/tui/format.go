package tui

import (
	"fmt"
	"time"
)

// symbolFor maps an account currency hint to a display symbol. Unknown
// currencies fall back to the configured symbol.
func symbolFor(currency, fallback string) string {
	switch currency {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	}
	return fallback
}

func formatMoney(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// relativeDate labels a movement timestamp the way the dashboard shows
// it: today, yesterday, "N days ago" up to a week, then the configured
// date layout.
func relativeDate(now, at time.Time, layout string) string {
	days := daysBetween(at, now)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return at.Format(layout)
}

// daysBetween counts calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(b.Sub(a).Hours() / 24)
}
