package main

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/stockroom/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/stockroom/internal/config"
	"github.com/MrJamesThe3rd/stockroom/internal/database"
	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/stockroom/internal/ledger/store"
	"github.com/MrJamesThe3rd/stockroom/internal/notify"
	"github.com/MrJamesThe3rd/stockroom/internal/refnum"
	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
	countStore "github.com/MrJamesThe3rd/stockroom/internal/stockcount/store"
)

type model struct {
	ledgerService *ledger.Service
	countService  *stockcount.Service
	cfg           *config.Config
	actor         string
	notifier      notify.Notifier

	currentView View

	countView    view.CountModel
	movementView view.MovementModel
	ledgerView   view.TransactionsModel
	balancesView view.BalancesModel
}

type View int

const (
	ViewMenu     View = 0
	ViewCount    View = 1
	ViewMovement View = 2
	ViewLedger   View = 3
	ViewBalances View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	actor := cfg.TUI.Actor
	if actor == "" {
		actor = os.Getenv("USER")
	}

	// The terminal owns stdout: warnings are dropped, and so are ledger events
	// unless a broker is configured.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := notify.Select(cfg.KafkaConfig(), notify.Discard{}, logger)

	ledgerSvc := ledger.NewService(
		ledgerStore.New(db),
		refnum.NewGenerator(logger),
		ledger.WithNotifier(notifier),
		ledger.WithLogger(logger),
		ledger.WithNotifyTimeout(cfg.Kafka.SendTimeout),
	)
	countSvc := stockcount.NewService(countStore.New(db), ledgerSvc)

	return model{
		ledgerService: ledgerSvc,
		countService:  countSvc,
		cfg:           cfg,
		actor:         actor,
		notifier:      notifier,
		currentView:   ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCount
				m.countView = view.NewCountModel(m.countService, m.actor, m.cfg.Ledger.WriteOffThreshold)

				return m, m.countView.Init()
			case "2":
				m.currentView = ViewMovement
				m.movementView = view.NewMovementModel(m.ledgerService, m.actor)

				return m, m.movementView.Init()
			case "3":
				m.currentView = ViewLedger
				m.ledgerView = view.NewTransactionsModel(m.ledgerService)

				return m, m.ledgerView.Init()
			case "4":
				m.currentView = ViewBalances
				m.balancesView = view.NewBalancesModel(m.ledgerService)

				return m, m.balancesView.Init()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCount:
		var newModel tea.Model
		newModel, cmd = m.countView.Update(msg)
		m.countView = newModel.(view.CountModel)
	case ViewMovement:
		var newModel tea.Model
		newModel, cmd = m.movementView.Update(msg)
		m.movementView = newModel.(view.MovementModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.TransactionsModel)
	case ViewBalances:
		var newModel tea.Model
		newModel, cmd = m.balancesView.Update(msg)
		m.balancesView = newModel.(view.BalancesModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.cfg.App.Name + " (" + m.actor + ")\n\n" +
				"1. Stock Counts\n" +
				"2. Record Movement\n" +
				"3. Browse Ledger\n" +
				"4. Balances\n\n" +
				"q. Quit",
		)
	case ViewCount:
		current = m.countView
	case ViewMovement:
		current = m.movementView
	case ViewLedger:
		current = m.ledgerView
	case ViewBalances:
		current = m.balancesView
	default:
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).PaddingLeft(1).Render(current.Title())
	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(current.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, current.View(), help)
}

func main() {
	m := initialModel()

	p := tea.NewProgram(m)
	_, err := p.Run()

	if cerr := notify.Close(m.notifier); cerr != nil {
		slog.Error("failed to close kafka writer", "error", cerr)
	}

	if err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
