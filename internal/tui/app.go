// Package tui renders the bank and turns key presses into ledger
// operations. It is the only layer that touches the terminal.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/bankist/internal/config"
	"github.com/jask/bankist/internal/ledger"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	depositStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	withdrawalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// App ties together views.
type App struct {
	engine *ledger.Engine
	cfg    config.Config
	state  appState
	form   formState

	// login entry
	loginUser  string
	loginPIN   string
	loginField int

	// form entry (transfer: to/amount, close: user/pin, loan: amount)
	fieldA    string
	fieldB    string
	formField int

	sorted      bool
	secondsLeft int
	timerGen    int
	status      string
	now         func() time.Time
}

type appState string

const (
	viewLogin     appState = "login"
	viewDashboard appState = "dashboard"
)

type formState string

const (
	formNone     formState = ""
	formTransfer formState = "transfer"
	formLoan     formState = "loan"
	formClose    formState = "close"
)

type tickMsg struct {
	gen int
}

type loanApprovedMsg struct {
	amount   float64
	username string
}

// New builds the app over an engine.
func New(engine *ledger.Engine, cfg config.Config) *App {
	return &App{
		engine: engine,
		cfg:    cfg,
		state:  viewLogin,
		now:    time.Now,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// tickCmd drives the inactivity countdown. The generation tag retires
// stale chains after a logout/login cycle so only one chain decrements.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// loanCmd delivers the grant after the processing delay. The message
// carries the requesting username so a grant lands only on the account
// that asked for it, even if the session changed in the meantime.
func (a *App) loanCmd(amount float64, username string) tea.Cmd {
	delay := time.Duration(a.cfg.Session.LoanDelaySeconds) * time.Second
	return tea.Tick(delay, func(time.Time) tea.Msg { return loanApprovedMsg{amount: amount, username: username} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tickMsg:
		if m.gen != a.timerGen || a.engine.Current() == nil {
			return a, nil
		}
		a.secondsLeft--
		if a.secondsLeft <= 0 {
			a.engine.Logout()
			a.resetToLogin("You have been logged out.")
			return a, nil
		}
		return a, tickCmd(a.timerGen)
	case loanApprovedMsg:
		acct := a.engine.Current()
		if acct == nil || acct.Username != m.username {
			// requester logged out or the account closed during the
			// delay; the grant is dropped
			return a, nil
		}
		if err := a.engine.Loan(m.amount); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = fmt.Sprintf("Loan of %s approved.", a.money(m.amount))
		return a, nil
	case tea.KeyMsg:
		if a.engine.Current() != nil {
			a.secondsLeft = a.cfg.Session.TimeoutSeconds
		}
		if a.state == viewLogin {
			return a.handleLoginKey(m)
		}
		if a.form != formNone {
			return a.handleFormKey(m)
		}
		return a.handleDashboardKey(m)
	}
	return a, nil
}

func (a *App) handleLoginKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.loginUser, a.loginPIN = "", ""
		a.loginField = 0
		a.status = ""
	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		a.loginField = 1 - a.loginField
	case tea.KeyEnter:
		if a.loginField == 0 {
			a.loginField = 1
			return a, nil
		}
		return a.submitLogin()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if a.loginField == 0 && len(a.loginUser) > 0 {
			a.loginUser = a.loginUser[:len(a.loginUser)-1]
		}
		if a.loginField == 1 && len(a.loginPIN) > 0 {
			a.loginPIN = a.loginPIN[:len(a.loginPIN)-1]
		}
	case tea.KeyRunes:
		if a.loginField == 0 {
			a.loginUser += string(m.Runes)
		} else {
			a.loginPIN += string(m.Runes)
		}
	}
	return a, nil
}

func (a *App) submitLogin() (tea.Model, tea.Cmd) {
	pin, err := strconv.Atoi(strings.TrimSpace(a.loginPIN))
	if err != nil {
		a.status = ledger.ErrBadCredentials.Error()
		a.loginPIN = ""
		return a, nil
	}
	acct, err := a.engine.Authenticate(strings.TrimSpace(a.loginUser), pin)
	if err != nil {
		a.status = err.Error()
		a.loginPIN = ""
		return a, nil
	}
	a.state = viewDashboard
	a.loginUser, a.loginPIN = "", ""
	a.loginField = 0
	a.secondsLeft = a.cfg.Session.TimeoutSeconds
	a.timerGen++
	a.sorted = false
	a.status = fmt.Sprintf("Welcome back, %s!", firstName(acct.Owner))
	return a, tickCmd(a.timerGen)
}

func (a *App) handleDashboardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "t":
		a.openForm(formTransfer)
	case "l":
		a.openForm(formLoan)
	case "c":
		a.openForm(formClose)
	case "s":
		a.sorted = !a.sorted
	case "o":
		a.engine.Logout()
		a.resetToLogin("Logged out.")
	}
	return a, nil
}

func (a *App) openForm(f formState) {
	a.form = f
	a.fieldA, a.fieldB = "", ""
	a.formField = 0
	a.status = ""
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.form = formNone
		a.status = ""
	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		if a.form != formLoan {
			a.formField = 1 - a.formField
		}
	case tea.KeyEnter:
		if a.form != formLoan && a.formField == 0 {
			a.formField = 1
			return a, nil
		}
		return a.submitForm()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if a.formField == 0 && len(a.fieldA) > 0 {
			a.fieldA = a.fieldA[:len(a.fieldA)-1]
		}
		if a.formField == 1 && len(a.fieldB) > 0 {
			a.fieldB = a.fieldB[:len(a.fieldB)-1]
		}
	case tea.KeySpace:
		if a.formField == 0 {
			a.fieldA += " "
		} else {
			a.fieldB += " "
		}
	case tea.KeyRunes:
		if a.formField == 0 {
			a.fieldA += string(m.Runes)
		} else {
			a.fieldB += string(m.Runes)
		}
	}
	return a, nil
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	form := a.form
	a.form = formNone
	switch form {
	case formTransfer:
		to := strings.TrimSpace(a.fieldA)
		amount, err := strconv.ParseFloat(strings.TrimSpace(a.fieldB), 64)
		if err != nil {
			a.status = ledger.ErrBadAmount.Error()
			return a, nil
		}
		if err := a.engine.Transfer(amount, to); err != nil {
			a.status = err.Error()
			if err == ledger.ErrUnknownRecipient {
				if hint, ok := a.engine.SuggestRecipient(to); ok {
					a.status = fmt.Sprintf("%s (did you mean %q?)", err.Error(), hint)
				}
			}
			return a, nil
		}
		a.status = fmt.Sprintf("Transferred %s to %s.", a.money(amount), to)
		return a, nil
	case formLoan:
		amount, err := strconv.ParseFloat(strings.TrimSpace(a.fieldA), 64)
		if err != nil {
			a.status = ledger.ErrBadAmount.Error()
			return a, nil
		}
		if err := a.engine.LoanEligible(amount); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = "Loan request received, processing..."
		return a, a.loanCmd(amount, a.engine.Current().Username)
	case formClose:
		pin, err := strconv.Atoi(strings.TrimSpace(a.fieldB))
		if err != nil {
			a.status = ledger.ErrBadCredentials.Error()
			return a, nil
		}
		if err := a.engine.Close(strings.TrimSpace(a.fieldA), pin); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.resetToLogin("Account closed.")
		return a, nil
	}
	return a, nil
}

func (a *App) resetToLogin(status string) {
	a.state = viewLogin
	a.form = formNone
	a.loginUser, a.loginPIN = "", ""
	a.loginField = 0
	a.fieldA, a.fieldB = "", ""
	a.sorted = false
	a.status = status
}

func (a *App) View() string {
	if a.state == viewLogin {
		return a.renderLogin()
	}
	body := a.renderDashboard()
	if a.form != formNone {
		body += "\n\n" + a.renderForm()
	}
	return body
}

func (a *App) renderLogin() string {
	title := titleStyle.Render("Bankist")
	userMarker, pinMarker := " ", " "
	if a.loginField == 0 {
		userMarker = "▶"
	} else {
		pinMarker = "▶"
	}
	body := fmt.Sprintf("Log in to get started\n%s Username: %s\n%s PIN:      %s",
		userMarker, a.loginUser, pinMarker, strings.Repeat("*", len(a.loginPIN)))
	body += "\n[tab] Switch field  [enter] Log in  [ctrl+c] Quit"
	if a.status != "" {
		body += "\n" + a.status
	}
	return fmt.Sprintf("%s\n%s", title, body)
}

func (a *App) renderDashboard() string {
	acct := a.engine.Current()
	if acct == nil {
		return a.renderLogin()
	}
	now := a.now()
	title := titleStyle.Render("Bankist - " + now.Format(a.cfg.UI.DateFormat))

	out := title + "\n"
	movements := ledger.MovementsView(acct, a.sorted)
	for i := len(movements) - 1; i >= 0; i-- {
		m := movements[i]
		kind := fmt.Sprintf("%d %s", i+1, m.Kind())
		if m.Amount > 0 {
			kind = depositStyle.Render(kind)
		} else {
			kind = withdrawalStyle.Render(kind)
		}
		out += fmt.Sprintf("%-24s %-14s %12s\n", kind, relativeDate(now, m.At, a.cfg.UI.DateFormat), a.money(m.Amount))
	}
	sortLabel := "off"
	if a.sorted {
		sortLabel = "on"
	}
	summary := ledger.Summarize(acct)
	out += fmt.Sprintf("Balance: %s\n", a.money(ledger.Balance(acct)))
	out += fmt.Sprintf("In: %s  Out: %s  Interest: %s  Sort: %s\n", a.money(summary.In), a.money(summary.Out), a.money(summary.Interest), sortLabel)
	out += faintStyle.Render(fmt.Sprintf("You will be logged out in %s", countdown(a.secondsLeft))) + "\n"
	out += "[t] Transfer  [l] Loan  [c] Close account  [s] Sort  [o] Log out  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderForm() string {
	markerA, markerB := " ", " "
	if a.formField == 0 {
		markerA = "▶"
	} else {
		markerB = "▶"
	}
	var body string
	switch a.form {
	case formTransfer:
		body = titleStyle.Render("Transfer money") +
			fmt.Sprintf("\n%s Transfer to: %s\n%s Amount:      %s", markerA, a.fieldA, markerB, a.fieldB)
	case formLoan:
		body = titleStyle.Render("Request loan") +
			fmt.Sprintf("\n%s Amount: %s", markerA, a.fieldA)
	case formClose:
		body = titleStyle.Render("Close account") +
			fmt.Sprintf("\n%s Confirm user: %s\n%s Confirm PIN:  %s", markerA, a.fieldA, markerB, strings.Repeat("*", len(a.fieldB)))
	}
	return body + "\n[enter] Confirm  [esc] Cancel"
}

// money formats an amount in the session account's currency, falling
// back to the configured symbol for accounts without a hint.
func (a *App) money(amount float64) string {
	symbol := a.cfg.UI.CurrencySymbol
	if acct := a.engine.Current(); acct != nil {
		symbol = symbolFor(acct.Currency, symbol)
	}
	return formatMoney(symbol, amount)
}

func firstName(owner string) string {
	fields := strings.Fields(owner)
	if len(fields) == 0 {
		return owner
	}
	return fields[0]
}

func countdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
