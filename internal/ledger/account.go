package ledger

import "time"

// Account is one bank account in the demo set. Movements are
// append-only; storage order is chronological entry order.
type Account struct {
	Owner        string
	Username     string
	PIN          int
	Movements    []Movement
	InterestRate float64 // percent per qualifying deposit
	Currency     string
	Locale       string
}

// Movement is a single signed ledger entry. Positive amounts are
// deposits, negative are withdrawals. At is the entry timestamp and
// shares the movement's index for life.
type Movement struct {
	ID     string
	Amount float64
	At     time.Time
}

// Kind classifies a movement for display.
func (m Movement) Kind() string {
	if m.Amount > 0 {
		return "deposit"
	}
	return "withdrawal"
}

// Summary holds the three derived figures for an account.
type Summary struct {
	In       float64
	Out      float64
	Interest float64
}
