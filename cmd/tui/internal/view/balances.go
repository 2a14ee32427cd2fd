package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

// BalancesModel lists on-hand quantities and runs the ledger audit.
type BalancesModel struct {
	svc *ledger.Service

	table        table.Model
	balances     []*ledger.Balance
	belowReorder bool

	loading bool
	err     error
	status  string
}

func NewBalancesModel(svc *ledger.Service) BalancesModel {
	columns := []table.Column{
		{Title: "Item", Width: 16},
		{Title: "On Hand", Width: 12},
		{Title: "Reorder At", Width: 12},
		{Title: "", Width: 8},
		{Title: "Updated", Width: 12},
	}

	return BalancesModel{
		svc:     svc,
		table:   newTable(columns),
		loading: true,
	}
}

func (m BalancesModel) Title() string { return "Balances" }
func (m BalancesModel) ShortHelp() string {
	return "Esc: back | b: below reorder only | a: audit ledger | r: refresh"
}

func (m BalancesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BalancesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBalancesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.balances = msg.balances
		m.refreshTable()

		return m, nil

	case auditMsg:
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("Audit failed: %v", msg.err)
		case len(msg.drift) == 0:
			m.status = "Audit: every balance matches its ledger lines"
		default:
			m.status = warnStyle(fmt.Sprintf("Audit: %d item(s) drifted, first %s (on hand %s, ledger %s)",
				len(msg.drift),
				msg.drift[0].ItemCode,
				FormatQuantity(msg.drift[0].OnHand),
				FormatQuantity(msg.drift[0].LedgerTotal),
			))
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "b":
			m.belowReorder = !m.belowReorder
			m.refreshTable()

			return m, nil
		case "a":
			m.status = "Auditing..."
			return m, m.auditCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *BalancesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.balances))
	for _, b := range m.balances {
		if m.belowReorder && !b.BelowReorder() {
			continue
		}

		flag := ""
		if b.BelowReorder() {
			flag = "REORDER"
		}

		rows = append(rows, table.Row{
			b.ItemCode,
			FormatQuantity(b.Quantity),
			FormatQuantity(b.ReorderLevel),
			flag,
			FormatDate(b.UpdatedAt),
		})
	}

	m.table.SetRows(rows)
}

func (m BalancesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading balances...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	scope := "All items"
	if m.belowReorder {
		scope = "Below reorder level"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render("Showing: "+activeStyle(scope)),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// Messages

type loadBalancesMsg struct {
	balances []*ledger.Balance
	err      error
}

func (m BalancesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		balances, err := m.svc.ListBalances(ctx)

		return loadBalancesMsg{balances: balances, err: err}
	}
}

type auditMsg struct {
	drift []ledger.Drift
	err   error
}

func (m BalancesModel) auditCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		drift, err := m.svc.Audit(ctx)

		return auditMsg{drift: drift, err: err}
	}
}
