package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
)

type countState int

const (
	countStateList countState = iota
	countStateCreate
	countStateSheet
	countStateEntry
	countStatePost
)

// countInput holds form bindings across model copies.
type countInput struct {
	countType string
	period    string
	notes     string
	counted   string
	threshold string
}

// CountModel is the stock-count worksheet: create a count, key in counted
// quantities, complete it and post the differences.
type CountModel struct {
	svc       *stockcount.Service
	actor     string
	threshold decimal.Decimal

	state  countState
	counts []*stockcount.Count
	count  *stockcount.Count
	list   table.Model
	sheet  table.Model
	form   *huh.Form
	input  *countInput

	variance *stockcount.Variance
	loading  bool
	status   string
	err      error
}

func NewCountModel(svc *stockcount.Service, actor string, threshold decimal.Decimal) CountModel {
	return CountModel{
		svc:       svc,
		actor:     actor,
		threshold: threshold,
		state:     countStateList,
		list: newTable([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Type", Width: 7},
			{Title: "Period", Width: 8},
			{Title: "Status", Width: 12},
			{Title: "By", Width: 14},
			{Title: "Notes", Width: 30},
		}),
		sheet: newTable([]table.Column{
			{Title: "Item", Width: 16},
			{Title: "System", Width: 10},
			{Title: "Counted", Width: 10},
			{Title: "Diff", Width: 10},
			{Title: "Status", Width: 11},
			{Title: "Review", Width: 7},
		}),
		input:   &countInput{},
		loading: true,
	}
}

func (m CountModel) Title() string { return "Stock Counts" }
func (m CountModel) ShortHelp() string {
	switch m.state {
	case countStateSheet:
		return "Esc: counts | e: enter count | c: complete | p: post | x: resolve flagged | v: variance"
	case countStateCreate, countStateEntry, countStatePost:
		return "Esc: cancel"
	}

	return "Esc: back | Enter: open | n: new count | r: refresh"
}

func (m CountModel) Init() tea.Cmd {
	return m.loadCountsCmd()
}

func (m CountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCountsMsg:
		m.loading = false
		m.err = msg.err
		m.counts = msg.counts
		m.refreshList()

		return m, nil

	case countMsg:
		m.loading = false
		if msg.err != nil {
			m.status = warnStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.status = msg.status
		m.count = msg.count
		m.variance = nil
		m.state = countStateSheet
		m.refreshSheet()

		return m, nil

	case varianceMsg:
		if msg.err != nil {
			m.status = warnStyle(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}

		m.variance = msg.variance

		return m, nil

	case tea.WindowSizeMsg:
		m.list.SetHeight(msg.Height - 10)
		m.sheet.SetHeight(msg.Height - 10)

		return m, nil
	}

	switch m.state {
	case countStateList:
		return m.updateList(msg)
	case countStateSheet:
		return m.updateSheet(msg)
	case countStateCreate, countStateEntry, countStatePost:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m CountModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCountsCmd()
		case "n":
			m.input = &countInput{countType: string(stockcount.TypeEndOfMonth)}
			m.form = m.buildCreateForm()
			m.state = countStateCreate

			return m, m.form.Init()
		case "enter":
			idx := m.list.Cursor()
			if idx < 0 || idx >= len(m.counts) {
				return m, nil
			}

			m.loading = true

			return m, m.openCmd(m.counts[idx])
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m CountModel) updateSheet(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = countStateList
			m.count = nil
			m.status = ""

			return m, m.loadCountsCmd()
		case "e":
			line := m.selectedLine()
			if line == nil || !m.count.Status.Open() {
				return m, nil
			}

			m.input.counted = ""
			if line.CountedQuantity != nil {
				m.input.counted = line.CountedQuantity.String()
			}

			m.form = m.buildEntryForm(line)
			m.state = countStateEntry
			m.sheet.Blur()

			return m, m.form.Init()
		case "c":
			return m, m.completeCmd()
		case "p":
			m.input.threshold = m.threshold.String()
			m.form = m.buildPostForm()
			m.state = countStatePost
			m.sheet.Blur()

			return m, m.form.Init()
		case "x":
			line := m.selectedLine()
			if line == nil || !line.ReviewRequired {
				return m, nil
			}

			return m, m.resolveCmd(line)
		case "v":
			if m.variance != nil {
				m.variance = nil
				return m, nil
			}

			return m, m.varianceCmd()
		}
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)

	return m, cmd
}

func (m CountModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.sheet.Focus()

		if m.state == countStateCreate {
			m.state = countStateList
		} else {
			m.state = countStateSheet
		}

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	state := m.state
	m.form = nil
	m.sheet.Focus()
	m.loading = true

	switch state {
	case countStateCreate:
		m.state = countStateList
		return m, m.createCmd()
	case countStateEntry:
		m.state = countStateSheet
		return m, m.recordCmd(m.selectedLine())
	case countStatePost:
		m.state = countStateSheet
		return m, m.postCmd()
	}

	return m, nil
}

func (m CountModel) selectedLine() *stockcount.Line {
	if m.count == nil {
		return nil
	}

	idx := m.sheet.Cursor()
	if idx < 0 || idx >= len(m.count.Lines) {
		return nil
	}

	return m.count.Lines[idx]
}

func (m CountModel) buildCreateForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Count Type").
				Options(
					huh.NewOption("End of month", string(stockcount.TypeEndOfMonth)),
					huh.NewOption("Cycle count", string(stockcount.TypeCycle)),
					huh.NewOption("Ad hoc", string(stockcount.TypeAdHoc)),
				).
				Value(&m.input.countType),

			huh.NewInput().
				Key("period").
				Title("Period").
				Description("YYYY-MM, defaults to the current month").
				Placeholder("2025-03").
				CharLimit(7).
				Value(&m.input.period),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.input.notes),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m CountModel) buildEntryForm(line *stockcount.Line) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("counted").
				Title("Counted " + line.ItemCode).
				Description("System quantity " + FormatQuantity(line.SystemQuantity)).
				Value(&m.input.counted).
				Validate(validateQuantity),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m CountModel) buildPostForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("threshold").
				Title("Auto-adjust threshold").
				Description("Larger differences are flagged for review").
				Value(&m.input.threshold).
				Validate(validateQuantity),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m *CountModel) refreshList() {
	rows := make([]table.Row, 0, len(m.counts))
	for _, c := range m.counts {
		rows = append(rows, table.Row{
			FormatDate(c.CountDate),
			string(c.Type),
			c.Period,
			string(c.Status),
			c.CreatedBy,
			c.Notes,
		})
	}

	m.list.SetRows(rows)
}

func (m *CountModel) refreshSheet() {
	rows := make([]table.Row, 0, len(m.count.Lines))
	for _, l := range m.count.Lines {
		counted, diff := "", ""
		if l.CountedQuantity != nil {
			counted = FormatQuantity(*l.CountedQuantity)
			diff = FormatQuantity(l.Discrepancy)
		}

		review := ""
		if l.ReviewRequired {
			review = "yes"
		}

		rows = append(rows, table.Row{
			l.ItemCode,
			FormatQuantity(l.SystemQuantity),
			counted,
			diff,
			string(l.Status),
			review,
		})
	}

	m.sheet.SetRows(rows)
}

func (m CountModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	var content string

	switch m.state {
	case countStateList, countStateCreate:
		content = border.Render(m.list.View())
	default:
		header := fmt.Sprintf("%s count %s | %s | %d uncounted",
			m.count.Type, m.count.Period, activeStyle(string(m.count.Status)), m.count.Uncounted())

		content = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			border.Render(m.sheet.View()),
		)
	}

	if m.form != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel(m.form.View()))
	} else if m.variance != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel(m.varianceView()))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func panel(body string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(50).
		Render(body)
}

func (m CountModel) varianceView() string {
	var b strings.Builder

	b.WriteString("Variance\n\n")

	for _, l := range m.variance.Lines {
		fmt.Fprintf(&b, "%-14s %8s x %8s = %10s\n",
			l.ItemCode, FormatQuantity(l.Discrepancy), FormatMoney(l.UnitCost), FormatMoney(l.Value))
	}

	fmt.Fprintf(&b, "\nTotal %s", FormatMoney(m.variance.Total))

	return b.String()
}

// Messages

type loadCountsMsg struct {
	counts []*stockcount.Count
	err    error
}

func (m CountModel) loadCountsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		counts, err := m.svc.List(ctx, stockcount.ListFilter{})

		return loadCountsMsg{counts: counts, err: err}
	}
}

type countMsg struct {
	count  *stockcount.Count
	status string
	err    error
}

func (m CountModel) openCmd(c *stockcount.Count) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		count, err := m.svc.Get(ctx, c.ID)

		return countMsg{count: count, err: err}
	}
}

func (m CountModel) createCmd() tea.Cmd {
	in := *m.input

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		count, err := m.svc.Create(ctx, stockcount.CreateParams{
			Type:    stockcount.Type(in.countType),
			Period:  strings.TrimSpace(in.period),
			ActorID: m.actor,
			Notes:   in.notes,
		})
		if err != nil {
			return countMsg{err: err}
		}

		return countMsg{count: count, status: fmt.Sprintf("Created %s count with %d lines", count.Type, len(count.Lines))}
	}
}

// reload fetches the count again after a change so that the sheet reflects
// the stored state.
func (m CountModel) reload(status string, err error) tea.Msg {
	if err != nil {
		return countMsg{err: err}
	}

	ctx, cancel := DbCtx()
	defer cancel()

	count, err := m.svc.Get(ctx, m.count.ID)

	return countMsg{count: count, status: status, err: err}
}

func (m CountModel) recordCmd(line *stockcount.Line) tea.Cmd {
	if line == nil {
		return nil
	}

	counted := decimal.RequireFromString(strings.TrimSpace(m.input.counted))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		l, err := m.svc.UpdateLine(ctx, line.ID, counted)
		if err != nil {
			return m.reload("", err)
		}

		return m.reload(fmt.Sprintf("%s: %s", l.ItemCode, l.Status), nil)
	}
}

func (m CountModel) completeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.Complete(ctx, m.count.ID, m.actor)

		return m.reload("Count completed", err)
	}
}

func (m CountModel) postCmd() tea.Cmd {
	threshold := decimal.RequireFromString(strings.TrimSpace(m.input.threshold))

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.Post(ctx, stockcount.PostParams{
			CountID:   m.count.ID,
			Threshold: threshold,
			ActorID:   m.actor,
		})
		if err != nil {
			return m.reload("", err)
		}

		return m.reload(fmt.Sprintf("Posted: %d adjusted, %d flagged for review", len(res.Adjustments), len(res.Flagged)), nil)
	}
}

func (m CountModel) resolveCmd(line *stockcount.Line) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		adj, err := m.svc.ResolveLine(ctx, line.ID, m.actor)
		if err != nil {
			return m.reload("", err)
		}

		return m.reload(fmt.Sprintf("%s adjusted under %s", line.ItemCode, adj.Reference), nil)
	}
}

type varianceMsg struct {
	variance *stockcount.Variance
	err      error
}

func (m CountModel) varianceCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		v, err := m.svc.Variance(ctx, m.count.ID)

		return varianceMsg{variance: v, err: err}
	}
}
