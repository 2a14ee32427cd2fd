package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

var typeFilters = []ledger.Type{"", ledger.TypeIssue, ledger.TypeReceive, ledger.TypeAdjustment, ledger.TypeBackorder}

// TransactionsModel browses the ledger.
type TransactionsModel struct {
	svc *ledger.Service

	table  table.Model
	txs    []*ledger.Transaction
	detail *ledger.Transaction
	codes  map[uuid.UUID]string

	typeFilterIdx int
	timeframe     Timeframe

	filter  ledger.ListFilter
	loading bool
	err     error
}

func NewTransactionsModel(svc *ledger.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Reference", Width: 18},
		{Title: "Type", Width: 11},
		{Title: "Actor", Width: 14},
		{Title: "Short", Width: 6},
		{Title: "Notes", Width: 40},
	}

	return TransactionsModel{
		svc:     svc,
		table:   newTable(columns),
		loading: true,
	}
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m TransactionsModel) Title() string { return "Ledger" }
func (m TransactionsModel) ShortHelp() string {
	return "Esc: back | Enter: lines | t: type filter | d: date filter | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return tea.Batch(m.loadTxsCmd(), m.loadCodesCmd())
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case loadCodesMsg:
		if msg.err == nil {
			m.codes = msg.codes
		}

		return m, nil

	case txDetailMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.detail = msg.tx

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}

			return m, Back
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.txs) {
				return m, nil
			}

			return m, m.detailCmd(m.txs[idx].ID)
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % len(typeFilters)
			m.applyFilter()

			return m, m.loadTxsCmd()
		case "d":
			m.timeframe = m.timeframe.Next()
			m.applyFilter()

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *TransactionsModel) applyFilter() {
	m.filter.Type = nil
	if t := typeFilters[m.typeFilterIdx]; t != "" {
		m.filter.Type = new(t)
	}

	m.filter.From, m.filter.To = nil, nil
	if start, end, ok := m.timeframe.DateRange(time.Now()); ok {
		m.filter.From = new(start)
		m.filter.To = new(end)
	}
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		short := ""
		if tx.InsufficientStock {
			short = "yes"
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			tx.ReferenceNumber,
			string(tx.Type),
			tx.ActorID,
			short,
			tx.Notes,
		})
	}

	m.table.SetRows(rows)
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading ledger...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	typeLabel := "All"
	if t := typeFilters[m.typeFilterIdx]; t != "" {
		typeLabel = string(t)
	}

	header := fmt.Sprintf(
		"Filter: [t] Type: %s | [d] Date: %s",
		activeStyle(typeLabel),
		activeStyle(m.timeframe.String()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.detail != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.detailView())
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m TransactionsModel) detailView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n\n", m.detail.ReferenceNumber, m.detail.Type)

	for _, l := range m.detail.Lines {
		code := m.codes[l.ItemID]
		if code == "" {
			code = l.ItemID.String()[:8]
		}

		fmt.Fprintf(&b, "%-12s %10s  %s -> %s\n",
			code,
			FormatQuantity(l.Quantity),
			FormatQuantity(l.PreviousQuantity),
			FormatQuantity(l.NewQuantity),
		)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(52).
		Render(b.String())
}

// Messages

type loadTxsMsg struct {
	txs []*ledger.Transaction
	err error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.svc.ListTransactions(ctx, filter)

		return loadTxsMsg{txs: txs, err: err}
	}
}

type loadCodesMsg struct {
	codes map[uuid.UUID]string
	err   error
}

func (m TransactionsModel) loadCodesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		balances, err := m.svc.ListBalances(ctx)
		if err != nil {
			return loadCodesMsg{err: err}
		}

		codes := make(map[uuid.UUID]string, len(balances))
		for _, b := range balances {
			codes[b.ItemID] = b.ItemCode
		}

		return loadCodesMsg{codes: codes}
	}
}

type txDetailMsg struct {
	tx  *ledger.Transaction
	err error
}

func (m TransactionsModel) detailCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.svc.GetTransaction(ctx, id)

		return txDetailMsg{tx: tx, err: err}
	}
}
