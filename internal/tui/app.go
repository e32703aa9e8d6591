// Package tui is the terminal front end: a command-center dashboard with a
// scenario picker and a floating copilot chat panel. Views pull their data
// through the scenario overlay at render time, so simulation is invisible to
// them.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/paintflow/internal/api"
	"github.com/jask/paintflow/internal/chat"
	"github.com/jask/paintflow/internal/config"
	"github.com/jask/paintflow/internal/scenario"
)

// DataSource is the full fetch capability the app consumes. Satisfied by the
// HTTP client and the offline demo fetcher.
type DataSource interface {
	scenario.Source
	chat.Responder
	DashboardSummary(ctx context.Context) (api.DashboardSummary, error)
	InventoryMap(ctx context.Context) ([]api.WarehouseStatus, error)
	RecommendedTransfers(ctx context.Context) ([]api.TransferRecommendation, error)
	TopSKUs(ctx context.Context, limit int) ([]api.TopSKU, error)
}

// Deps bundles the wired collaborators handed in by the composition root.
type Deps struct {
	Source     DataSource
	Store      *scenario.Store
	Catalog    *scenario.Catalog
	Watchdog   *scenario.Watchdog
	Session    *chat.Session
	Dispatcher *chat.Dispatcher
}

// App ties together views.
type App struct {
	ctx  context.Context
	src  DataSource
	deps Deps

	currency   string
	dateFormat string

	width  int
	height int

	summary    api.DashboardSummary
	hasSummary bool
	warehouses []api.WarehouseStatus
	transfers  []api.TransferRecommendation
	topSKUs    []api.TopSKU
	status     string

	modal          modalState
	scenarioCursor int

	chatOpen  bool
	chatInput string
	promptIdx int
}

type modalState string

const (
	modalNone     modalState = ""
	modalScenario modalState = "scenarioPicker"
)

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	return &App{
		ctx:        ctx,
		src:        deps.Source,
		deps:       deps,
		currency:   cfg.UI.CurrencySymbol,
		dateFormat: cfg.UI.DateFormat,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadSummary(),
		a.loadWarehouses(),
		a.loadTransfers(),
		a.loadTopSKUs(),
		a.preloadScenarios(),
	)
}

// commands

func (a *App) loadSummary() tea.Cmd {
	return func() tea.Msg {
		s, err := a.src.DashboardSummary(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return summaryMsg(s)
	}
}

func (a *App) loadWarehouses() tea.Cmd {
	return func() tea.Msg {
		ws, err := a.src.InventoryMap(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return warehousesMsg(ws)
	}
}

func (a *App) loadTransfers() tea.Cmd {
	return func() tea.Msg {
		ts, err := a.src.RecommendedTransfers(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return transfersMsg(ts)
	}
}

func (a *App) loadTopSKUs() tea.Cmd {
	return func() tea.Msg {
		top, err := a.src.TopSKUs(a.ctx, 5)
		if err != nil {
			return errMsg{err}
		}
		return topSKUsMsg(top)
	}
}

// preloadScenarios populates the catalog in the background. Per-scenario
// failures stay absent; the join makes cleanup deterministic.
func (a *App) preloadScenarios() tea.Cmd {
	return func() tea.Msg {
		scenario.Preload(a.ctx, a.src, a.deps.Catalog, scenario.KnownScenarios)
		return preloadDoneMsg{}
	}
}

func (a *App) sendChatCmd() tea.Cmd {
	trimmed, ok := a.deps.Session.Begin(a.chatInput)
	if !ok {
		return nil
	}
	a.chatInput = ""
	scenarioID := a.deps.Store.Current()
	return func() tea.Msg {
		reply, err := a.src.Chat(a.ctx, trimmed, scenarioID)
		if err != nil {
			a.deps.Session.Fail()
		} else {
			a.deps.Session.Complete(reply)
		}
		return chatDoneMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height

	case tea.MouseMsg:
		a.deps.Watchdog.Touch()

	case tea.KeyMsg:
		a.deps.Watchdog.Touch()
		if a.modal == modalScenario {
			return a.handleScenarioKey(m)
		}
		if a.chatOpen {
			return a.handleChatKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "s":
			a.modal = modalScenario
			a.scenarioCursor = a.scenarioIndex(a.deps.Store.Current())
		case "c":
			a.chatOpen = true
		case "r":
			a.status = "refreshing..."
			return a, tea.Batch(a.loadSummary(), a.loadWarehouses(), a.loadTransfers(), a.loadTopSKUs())
		case "n":
			a.deps.Store.Select(scenario.Baseline)
		}

	case summaryMsg:
		a.summary = api.DashboardSummary(m)
		a.hasSummary = true
	case warehousesMsg:
		a.warehouses = []api.WarehouseStatus(m)
	case transfersMsg:
		a.transfers = []api.TransferRecommendation(m)
	case topSKUsMsg:
		a.topSKUs = []api.TopSKU(m)
	case preloadDoneMsg:
		a.status = "scenario data ready"
	case ScenarioChangedMsg:
		if m.ID == scenario.Baseline {
			a.status = "live data"
		} else {
			a.status = "simulating: " + a.scenarioName(m.ID)
		}
	case chatDoneMsg:
		// session state already updated; re-render only
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleScenarioKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := a.scenarioOptions()
	switch m.String() {
	case "esc", "s":
		a.modal = modalNone
	case "up", "k":
		if a.scenarioCursor > 0 {
			a.scenarioCursor--
		}
	case "down", "j":
		if a.scenarioCursor < len(options)-1 {
			a.scenarioCursor++
		}
	case "enter":
		a.modal = modalNone
		if a.scenarioCursor < len(options) {
			a.deps.Store.Select(options[a.scenarioCursor].ID)
		}
	case "q", "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleChatKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+t":
		if w, ok := latestTransferCard(a.deps.Session.Messages()); ok {
			a.deps.Dispatcher.Dispatch(w)
		}
		return a, nil
	case "tab":
		a.chatInput = chat.QuickPrompts[a.promptIdx%len(chat.QuickPrompts)]
		a.promptIdx++
		return a, nil
	}
	switch m.Type {
	case tea.KeyEsc:
		a.chatOpen = false
	case tea.KeyEnter:
		return a, a.sendChatCmd()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.chatInput) > 0 {
			a.chatInput = a.chatInput[:len(a.chatInput)-1]
		}
	case tea.KeySpace:
		a.chatInput += " "
	case tea.KeyRunes:
		a.chatInput += string(m.Runes)
	}
	return a, nil
}

// latestTransferCard finds the newest message carrying a transfer card, the
// card ctrl+t confirms.
func latestTransferCard(msgs []chat.Message) (chat.Widget, bool) {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Widget.Kind == chat.WidgetTransferCard {
			return msgs[i].Widget, true
		}
	}
	return chat.Widget{}, false
}

// scenarioOptions is the picker list: baseline first, then whatever the list
// fetch delivered. A failed or empty list fetch leaves only baseline.
func (a *App) scenarioOptions() []scenario.Scenario {
	options := []scenario.Scenario{{ID: scenario.Baseline, Name: "Normal Operations"}}
	return append(options, a.deps.Catalog.Scenarios()...)
}

func (a *App) scenarioIndex(id string) int {
	for i, s := range a.scenarioOptions() {
		if s.ID == id {
			return i
		}
	}
	return 0
}

func (a *App) scenarioName(id string) string {
	for _, s := range a.scenarioOptions() {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}

// messages

type summaryMsg api.DashboardSummary

type warehousesMsg []api.WarehouseStatus

type transfersMsg []api.TransferRecommendation

type topSKUsMsg []api.TopSKU

type preloadDoneMsg struct{}

type chatDoneMsg struct{}

type errMsg struct{ error }

// ScenarioChangedMsg is delivered from the store subscription via
// Program.Send, so watchdog resets re-render even with no input pending.
type ScenarioChangedMsg struct {
	ID string
}
