// Package ledger owns the in-memory account set and the single active
// session, computes derived balances and summaries, and applies the
// login, transfer, loan and close transitions. It never renders
// anything; the TUI layer consumes it through explicit calls.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CollisionPolicy controls what New does when username derivation
// produces duplicates.
type CollisionPolicy string

const (
	// CollisionWarn keeps colliding accounts as-is; lookups stay
	// first-match, matching the historical behavior.
	CollisionWarn CollisionPolicy = "warn"
	// CollisionReject makes New fail on a duplicate username.
	CollisionReject CollisionPolicy = "reject"
)

// Engine is the ledger aggregate: the full account set plus at most
// one authenticated session. All methods run to completion on the
// caller's goroutine; the Bubble Tea loop serializes access.
type Engine struct {
	accounts []*Account
	current  *Account
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the timestamp source. Tests pin it.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine over the given accounts, deriving a username
// for each from the owner's initials. Under CollisionWarn duplicate
// usernames are kept (first match wins on lookup); under
// CollisionReject they are an error. The returned collision list is
// non-empty whenever derivation collided, regardless of policy.
func New(accounts []*Account, policy CollisionPolicy, opts ...Option) (*Engine, []string, error) {
	e := &Engine{accounts: accounts, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	for _, a := range accounts {
		a.Username = deriveUsername(a.Owner)
	}
	collisions := findCollisions(accounts)
	if len(collisions) > 0 && policy == CollisionReject {
		return nil, collisions, ErrDuplicateUsername
	}
	return e, collisions, nil
}

// Accounts returns the live account set. Callers treat it as
// read-only; mutations go through the engine.
func (e *Engine) Accounts() []*Account {
	return e.accounts
}

// Current returns the session account, or nil when nobody is logged in.
func (e *Engine) Current() *Account {
	return e.current
}

// Authenticate looks up the first account whose username matches and
// checks the PIN. On success the session moves to that account. On
// failure the prior session is left untouched: a bad login after a
// good one does not log anyone out.
func (e *Engine) Authenticate(username string, pin int) (*Account, error) {
	a := e.findByUsername(username)
	if a == nil || a.PIN != pin {
		return nil, ErrBadCredentials
	}
	e.current = a
	return a, nil
}

// Logout clears the session. The inactivity timer calls this.
func (e *Engine) Logout() {
	e.current = nil
}

// Balance is the running sum of an account's movements, recomputed on
// every call. An empty history sums to 0.
func Balance(a *Account) float64 {
	var sum float64
	for _, m := range a.Movements {
		sum += m.Amount
	}
	return sum
}

// Summarize derives the three summary figures. All reductions are
// seeded, so an account with no deposits (or no withdrawals) yields 0
// rather than an error. Interest accrues per deposit at the account
// rate and entries below 1 are discarded before summing; interest is
// a separate figure and never part of the balance.
func Summarize(a *Account) Summary {
	var s Summary
	for _, m := range a.Movements {
		switch {
		case m.Amount > 0:
			s.In += m.Amount
			if interest := m.Amount * a.InterestRate / 100; interest >= 1 {
				s.Interest += interest
			}
		case m.Amount < 0:
			s.Out += -m.Amount
		}
	}
	return s
}

// Transfer moves amount from the session account to the named
// recipient. Both movements are appended in one step with the same
// timestamp; any failing precondition leaves both accounts untouched.
func (e *Engine) Transfer(amount float64, recipientUsername string) error {
	sender := e.current
	if sender == nil {
		return ErrNoSession
	}
	if amount <= 0 {
		return ErrBadAmount
	}
	recipient := e.findByUsername(recipientUsername)
	if recipient == nil {
		return ErrUnknownRecipient
	}
	if recipient.Username == sender.Username {
		return ErrSelfTransfer
	}
	if Balance(sender) < amount {
		return ErrInsufficientFunds
	}
	at := e.now()
	sender.Movements = append(sender.Movements, Movement{ID: uuid.NewString(), Amount: -amount, At: at})
	recipient.Movements = append(recipient.Movements, Movement{ID: uuid.NewString(), Amount: amount, At: at})
	return nil
}

// LoanEligible reports whether the session account qualifies for a
// loan of the given amount: some existing movement must be at least
// 10% of it. It never mutates state; the presenter uses it to reject
// a request up front before the grant delay.
func (e *Engine) LoanEligible(amount float64) error {
	a := e.current
	if a == nil {
		return ErrNoSession
	}
	if amount <= 0 {
		return ErrBadAmount
	}
	for _, m := range a.Movements {
		if m.Amount >= amount*0.1 {
			return nil
		}
	}
	return ErrLoanIneligible
}

// Loan grants amount to the session account, re-checking eligibility
// against the pre-loan history. The granted amount lands as a single
// deposit.
func (e *Engine) Loan(amount float64) error {
	if err := e.LoanEligible(amount); err != nil {
		return err
	}
	a := e.current
	a.Movements = append(a.Movements, Movement{ID: uuid.NewString(), Amount: amount, At: e.now()})
	return nil
}

// Close removes the session account from the set when the confirmation
// credentials match it exactly, then clears the session. Removal is by
// first username match, the same linear scan login uses.
func (e *Engine) Close(username string, pin int) error {
	a := e.current
	if a == nil {
		return ErrNoSession
	}
	if username != a.Username || pin != a.PIN {
		return ErrBadCredentials
	}
	for i, acct := range e.accounts {
		if acct.Username == username {
			e.accounts = append(e.accounts[:i], e.accounts[i+1:]...)
			break
		}
	}
	e.current = nil
	return nil
}

// MovementsView returns a presentation copy of an account's movements,
// ascending by amount when sorted is set. Storage order is never
// touched.
func MovementsView(a *Account, sorted bool) []Movement {
	out := make([]Movement, len(a.Movements))
	copy(out, a.Movements)
	if sorted {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount < out[j].Amount })
	}
	return out
}

func (e *Engine) findByUsername(username string) *Account {
	for _, a := range e.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}
