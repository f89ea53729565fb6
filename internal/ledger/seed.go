package ledger

import (
	"time"

	"github.com/google/uuid"
)

// DemoAccounts builds the four demo accounts the app ships with.
// Movement timestamps are synthesized backwards from now so the most
// recent entries land on today and yesterday and the oldest months
// back, exercising every relative-date label.
func DemoAccounts(now time.Time) []*Account {
	return []*Account{
		{
			Owner:        "Jonas Schmedtmann",
			PIN:          1111,
			InterestRate: 1.2,
			Currency:     "EUR",
			Locale:       "pt-PT",
			Movements:    seedMovements(now, []float64{200, 450, -400, 3000, -650, -130, 70, 1300}),
		},
		{
			Owner:        "Jessica Davis",
			PIN:          2222,
			InterestRate: 1.5,
			Currency:     "USD",
			Locale:       "en-US",
			Movements:    seedMovements(now, []float64{5000, 3400, -150, -790, -3210, -1000, 8500, -30}),
		},
		{
			Owner:        "Steven Thomas Williams",
			PIN:          3333,
			InterestRate: 0.7,
			Currency:     "EUR",
			Locale:       "en-GB",
			Movements:    seedMovements(now, []float64{200, -200, 340, -300, -20, 50, 400, -460}),
		},
		{
			Owner:        "Sarah Smith",
			PIN:          4444,
			InterestRate: 1,
			Currency:     "EUR",
			Locale:       "en-GB",
			Movements:    seedMovements(now, []float64{430, 1000, 700, 50, 90}),
		},
	}
}

// seedMovements spaces amounts over the past months, newest last. The
// final two entries sit on today and yesterday.
func seedMovements(now time.Time, amounts []float64) []Movement {
	out := make([]Movement, len(amounts))
	for i, amount := range amounts {
		daysAgo := (len(amounts) - 1 - i) * 30
		if i == len(amounts)-1 {
			daysAgo = 0
		} else if i == len(amounts)-2 {
			daysAgo = 1
		}
		out[i] = Movement{
			ID:     uuid.NewString(),
			Amount: amount,
			At:     now.AddDate(0, 0, -daysAgo),
		}
	}
	return out
}
