package main

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/paintflow/internal/api"
	"github.com/jask/paintflow/internal/chat"
	"github.com/jask/paintflow/internal/config"
	"github.com/jask/paintflow/internal/demo"
	"github.com/jask/paintflow/internal/scenario"
	"github.com/jask/paintflow/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	src := dataSource(cfg)

	// scenario overlay engine
	catalog := scenario.NewCatalog()
	store := scenario.NewStore(catalog)
	watchdog := scenario.NewWatchdog(store, cfg.Idle.Timeout, nil)

	// copilot conversation
	session := chat.NewSession()
	dispatcher := chat.NewDispatcher(session)

	app := tui.New(ctx, cfg, tui.Deps{
		Source:     src,
		Store:      store,
		Catalog:    catalog,
		Watchdog:   watchdog,
		Session:    session,
		Dispatcher: dispatcher,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Watchdog resets arrive outside the update loop; bridge them in so the
	// dashboard re-renders the moment the simulation drops back to baseline.
	store.Subscribe(func(id string) {
		p.Send(tui.ScenarioChangedMsg{ID: id})
	})

	watchdog.Start()
	defer watchdog.Stop()

	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func dataSource(cfg config.Config) tui.DataSource {
	if cfg.API.Demo {
		return demo.NewFetcher()
	}
	return api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
}
