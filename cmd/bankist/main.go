package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/bankist/internal/config"
	"github.com/jask/bankist/internal/ledger"
	"github.com/jask/bankist/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	policy := ledger.CollisionWarn
	if cfg.Login.CollisionPolicy == "reject" {
		policy = ledger.CollisionReject
	}

	engine, collisions, err := ledger.New(ledger.DemoAccounts(time.Now()), policy)
	if err != nil {
		log.Fatalf("accounts: %v (%s)", err, strings.Join(collisions, ", "))
	}
	if len(collisions) > 0 {
		log.Printf("warning: duplicate usernames, first match wins: %s", strings.Join(collisions, ", "))
	}

	app := tui.New(engine, cfg)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
