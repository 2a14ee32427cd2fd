package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

type movementState int

const (
	movementStateLoading movementState = iota
	movementStateForm
	movementStateConfirm
	movementStateSaving
	movementStateResult
)

// movementInput holds the form bindings. It lives on the heap so that the
// pointers handed to huh survive model copies.
type movementInput struct {
	txType    string
	itemID    string
	quantity  string
	notes     string
	backorder bool
}

// MovementModel records a single-line issue, receipt or adjustment.
type MovementModel struct {
	svc   *ledger.Service
	actor string

	state    movementState
	balances []*ledger.Balance
	input    *movementInput
	form     *huh.Form
	spinner  spinner.Model

	shortage *ledger.InsufficientStockError
	result   *ledger.Result
	err      error
}

func NewMovementModel(svc *ledger.Service, actor string) MovementModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return MovementModel{
		svc:     svc,
		actor:   actor,
		state:   movementStateLoading,
		input:   &movementInput{txType: string(ledger.TypeIssue)},
		spinner: s,
	}
}

func (m MovementModel) Title() string { return "Record Movement" }
func (m MovementModel) ShortHelp() string {
	if m.state == movementStateResult {
		return "Esc: back | n: new movement"
	}

	return "Esc: back"
}

func (m MovementModel) Init() tea.Cmd {
	return m.loadItemsCmd()
}

func (m MovementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	switch m.state {
	case movementStateLoading:
		if loaded, ok := msg.(loadBalancesMsg); ok {
			if loaded.err != nil {
				m.err = loaded.err
				m.state = movementStateResult

				return m, nil
			}

			m.balances = loaded.balances
			m.form = m.buildForm()
			m.state = movementStateForm

			return m, m.form.Init()
		}
	case movementStateForm, movementStateConfirm:
		return m.updateForm(msg)
	case movementStateSaving:
		return m.updateSaving(msg)
	case movementStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "n" {
			m.input = &movementInput{txType: m.input.txType}
			m.result, m.err, m.shortage = nil, nil, nil
			m.form = m.buildForm()
			m.state = movementStateForm

			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m MovementModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == movementStateConfirm && !m.input.backorder {
		m.err = m.shortage
		m.state = movementStateResult

		return m, nil
	}

	m.state = movementStateSaving

	return m, tea.Batch(m.spinner.Tick, m.processCmd())
}

func (m MovementModel) updateSaving(msg tea.Msg) (tea.Model, tea.Cmd) {
	res, ok := msg.(movementResultMsg)
	if !ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	var short *ledger.InsufficientStockError
	if errors.As(res.err, &short) && !m.input.backorder && ledger.Type(m.input.txType) == ledger.TypeIssue {
		m.shortage = short
		m.form = m.buildConfirmForm()
		m.state = movementStateConfirm

		return m, m.form.Init()
	}

	m.result = res.result
	m.err = res.err
	m.state = movementStateResult

	return m, nil
}

func (m MovementModel) buildForm() *huh.Form {
	items := make([]huh.Option[string], len(m.balances))
	for i, b := range m.balances {
		label := fmt.Sprintf("%s (on hand %s)", b.ItemCode, FormatQuantity(b.Quantity))
		items[i] = huh.NewOption(label, b.ItemID.String())
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Movement").
				Options(
					huh.NewOption("Issue to department", string(ledger.TypeIssue)),
					huh.NewOption("Receive from supplier", string(ledger.TypeReceive)),
					huh.NewOption("Adjust to counted balance", string(ledger.TypeAdjustment)),
				).
				Value(&m.input.txType),

			huh.NewSelect[string]().
				Key("item").
				Title("Item").
				Options(items...).
				Height(8).
				Value(&m.input.itemID),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Description("For adjustments, the new on-hand balance").
				Value(&m.input.quantity).
				Validate(validateQuantity),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.input.notes),
		),
	).WithWidth(60).WithShowHelp(false)
}

func validateQuantity(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}

	if d.IsNegative() {
		return fmt.Errorf("quantity cannot be negative")
	}

	return nil
}

func (m MovementModel) buildConfirmForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("backorder").
				Title(m.shortage.Error()).
				Description("Issue what is on hand and backorder the rest?").
				Affirmative("Backorder").
				Negative("Cancel").
				Value(&m.input.backorder),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m MovementModel) View() string {
	switch m.state {
	case movementStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading items...")

	case movementStateForm, movementStateConfirm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case movementStateSaving:
		return lipgloss.NewStyle().Padding(1).Render(fmt.Sprintf("%s Posting to ledger...", m.spinner.View()))

	case movementStateResult:
		return m.viewResult()
	}

	return ""
}

func (m MovementModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).Render("Recorded " + m.result.ReferenceNumber),
		"",
	}

	for _, l := range m.result.Transaction.Lines {
		lines = append(lines, fmt.Sprintf("%s -> %s", FormatQuantity(l.PreviousQuantity), FormatQuantity(l.NewQuantity)))
	}

	for _, b := range m.result.Backorders {
		lines = append(lines, warnStyle(fmt.Sprintf("Backordered %s", FormatQuantity(b.Quantity))))
	}

	for _, code := range m.result.Notice.BelowReorder {
		lines = append(lines, warnStyle(code+" is at or below its reorder level"))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Messages

func (m MovementModel) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		balances, err := m.svc.ListBalances(ctx)

		return loadBalancesMsg{balances: balances, err: err}
	}
}

type movementResultMsg struct {
	result *ledger.Result
	err    error
}

func (m MovementModel) processCmd() tea.Cmd {
	in := *m.input

	return func() tea.Msg {
		itemID, err := uuid.Parse(in.itemID)
		if err != nil {
			return movementResultMsg{err: fmt.Errorf("%w: no item selected", ledger.ErrInvalidLine)}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.svc.Process(ctx, ledger.ProcessParams{
			Type: ledger.Type(in.txType),
			Lines: []ledger.LineParams{{
				ItemID:   itemID,
				Quantity: decimal.RequireFromString(strings.TrimSpace(in.quantity)),
			}},
			Notes:            in.notes,
			ActorID:          m.actor,
			ConfirmBackorder: in.backorder,
		})

		return movementResultMsg{result: res, err: err}
	}
}
