package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/notify"
	"github.com/MrJamesThe3rd/stockroom/internal/refnum"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	refnum.Sequencer

	Begin(ctx context.Context) (Tx, error)

	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)

	GetStock(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]*Stock, error)
	GetBalance(ctx context.Context, itemID uuid.UUID) (*Balance, error)
	ListBalances(ctx context.Context) ([]*Balance, error)

	ListBackorders(ctx context.Context, filter BackorderFilter) ([]*Backorder, error)
	Audit(ctx context.Context) ([]Drift, error)
}

// Tx is a unit of work. Every ledger mutation of a single Process call goes
// through one Tx; callers defer Rollback, which is a no-op after Commit.
type Tx interface {
	refnum.Sequencer

	// LockStock locks the balance rows of itemIDs in ascending id order,
	// creating zero rows for items that have none yet. Unknown items are absent
	// from the result.
	LockStock(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]*Stock, error)
	InsertTransaction(ctx context.Context, t *Transaction) error
	InsertLines(ctx context.Context, lines []*Line) error
	// ApplyDelta adds delta to the on-hand quantity and returns the new value.
	ApplyDelta(ctx context.Context, itemID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	InsertBackorders(ctx context.Context, backorders []*Backorder) error
	LockBackorder(ctx context.Context, id uuid.UUID) (*Backorder, error)
	UpdateBackorder(ctx context.Context, b *Backorder) error

	Commit() error
	Rollback() error
}

// Metrics receives counters from the processor.
type Metrics interface {
	ObserveTransaction(txType string, lines int)
	ObserveShortage()
	ObserveNotification(err error)
}

type nopMetrics struct{}

func (nopMetrics) ObserveTransaction(string, int) {}
func (nopMetrics) ObserveShortage()               {}
func (nopMetrics) ObserveNotification(error)      {}

const (
	EventTransactionCompleted = "stockroom.ledger.transaction.completed"
	eventSource               = "stockroom/ledger"

	defaultNotifyTimeout = 5 * time.Second
)

type Service struct {
	repo          Repository
	refs          *refnum.Generator
	notifier      notify.Notifier
	metrics       Metrics
	logger        *slog.Logger
	now           func() time.Time
	notifyTimeout time.Duration
}

type Option func(*Service)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithNotifyTimeout bounds each post-commit notification.
func WithNotifyTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

func NewService(repo Repository, refs *refnum.Generator, opts ...Option) *Service {
	s := &Service{
		repo:          repo,
		refs:          refs,
		notifier:      notify.Discard{},
		metrics:       nopMetrics{},
		logger:        slog.Default(),
		now:           time.Now,
		notifyTimeout: defaultNotifyTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type LineParams struct {
	ItemID uuid.UUID
	// Quantity is the amount to move, or the new absolute balance for ADJUSTMENT.
	Quantity decimal.Decimal
	// UnitCost falls back to the item's cost when zero.
	UnitCost decimal.Decimal
	Notes    string
}

type ProcessParams struct {
	Type            Type
	CounterpartyID  *uuid.UUID
	Lines           []LineParams
	ReferenceNumber string
	Notes           string
	ActorID         string
	Date            time.Time
	// ConfirmBackorder accepts a partial issue and records the shortfall as backorders.
	ConfirmBackorder bool
}

type ListFilter struct {
	Type   *Type
	From   *time.Time
	To     *time.Time
	ItemID *uuid.UUID
}

type BackorderFilter struct {
	Status *BackorderStatus
	ItemID *uuid.UUID
}

type Result struct {
	TransactionID   uuid.UUID
	ReferenceNumber string
	Transaction     *Transaction
	Backorders      []*Backorder
	Notice          Notice
}

// Process validates and applies one business transaction atomically. On
// success the post-commit notification has already been dispatched.
func (s *Service) Process(ctx context.Context, params ProcessParams) (*Result, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: starting transaction: %w", ErrPersistence, err)
	}
	defer tx.Rollback()

	res, err := s.process(ctx, tx, params)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing: %w", ErrPersistence, err)
	}

	s.Dispatch(res)

	return res, nil
}

// ProcessInTx runs the same algorithm inside a unit of work owned by the
// caller. The caller commits and then calls Dispatch with the result.
func (s *Service) ProcessInTx(ctx context.Context, tx Tx, params ProcessParams) (*Result, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	return s.process(ctx, tx, params)
}

func (s *Service) process(ctx context.Context, tx Tx, params ProcessParams) (*Result, error) {
	ids := make([]uuid.UUID, len(params.Lines))
	for i, l := range params.Lines {
		ids[i] = l.ItemID
	}

	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })

	stock, err := tx.LockStock(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: locking balances: %w", ErrPersistence, err)
	}

	for i, l := range params.Lines {
		st, ok := stock[l.ItemID]
		if !ok || !st.Item.Active {
			return nil, fmt.Errorf("%w: line %d: item %s not found or inactive", ErrInvalidLine, i+1, l.ItemID)
		}
	}

	var shortages []Shortage
	if params.Type.Outbound() {
		shortages = findShortages(params.Lines, stock)
		if len(shortages) > 0 {
			s.metrics.ObserveShortage()

			if !params.ConfirmBackorder || params.Type == TypeBackorder {
				return nil, &InsufficientStockError{Shortages: shortages}
			}
		}
	}

	date := params.Date
	if date.IsZero() {
		date = s.now()
	}

	ref, err := s.reference(ctx, tx, params.Type, params.ReferenceNumber, date)
	if err != nil {
		return nil, err
	}

	header := &Transaction{
		ID:                uuid.New(),
		Type:              params.Type,
		Date:              refnum.Day(date),
		CounterpartyID:    params.CounterpartyID,
		ReferenceNumber:   ref,
		Notes:             params.Notes,
		Status:            StatusCompleted,
		InsufficientStock: len(shortages) > 0,
		ActorID:           params.ActorID,
		CreatedAt:         s.now(),
	}

	if err := tx.InsertTransaction(ctx, header); err != nil {
		if errors.Is(err, ErrDuplicateReference) {
			return nil, fmt.Errorf("%w: %w: %s", ErrPersistence, ErrDuplicateReference, ref)
		}

		return nil, fmt.Errorf("%w: inserting transaction: %w", ErrPersistence, err)
	}

	lines := make([]*Line, len(params.Lines))
	for i, l := range params.Lines {
		st := stock[l.ItemID]

		cost := l.UnitCost
		if cost.IsZero() {
			cost = st.Item.UnitCost
		}

		delta := lineDelta(params.Type, l.Quantity, st.Quantity)
		lines[i] = &Line{
			ID:               uuid.New(),
			TransactionID:    header.ID,
			ItemID:           l.ItemID,
			Quantity:         delta,
			UnitCost:         cost,
			PreviousQuantity: st.Quantity,
			NewQuantity:      st.Quantity.Add(delta),
			Notes:            l.Notes,
		}
	}

	if err := tx.InsertLines(ctx, lines); err != nil {
		return nil, fmt.Errorf("%w: inserting lines: %w", ErrPersistence, err)
	}

	for _, l := range lines {
		qty, err := tx.ApplyDelta(ctx, l.ItemID, l.Quantity)
		if err != nil {
			return nil, fmt.Errorf("%w: updating balance of %s: %w", ErrPersistence, l.ItemID, err)
		}

		stock[l.ItemID].Quantity = qty
	}

	backorders := make([]*Backorder, 0, len(shortages))
	for _, sh := range shortages {
		backorders = append(backorders, &Backorder{
			ID:            uuid.New(),
			ItemID:        sh.ItemID,
			DepartmentID:  params.CounterpartyID,
			Quantity:      sh.Shortage,
			Status:        BackorderPending,
			Notes:         fmt.Sprintf("Shortfall from %s", ref),
			TransactionID: header.ID,
			CreatedAt:     header.CreatedAt,
			UpdatedAt:     header.CreatedAt,
		})
	}

	if len(backorders) > 0 {
		if err := tx.InsertBackorders(ctx, backorders); err != nil {
			return nil, fmt.Errorf("%w: inserting backorders: %w", ErrPersistence, err)
		}
	}

	header.Lines = lines

	return &Result{
		TransactionID:   header.ID,
		ReferenceNumber: ref,
		Transaction:     header,
		Backorders:      backorders,
		Notice:          newNotice(header, stock),
	}, nil
}

func (s *Service) reference(ctx context.Context, tx Tx, t Type, supplied string, date time.Time) (string, error) {
	if supplied == "" {
		ref, err := s.refs.Next(ctx, tx, string(t), date)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidLine, err)
		}

		return ref, nil
	}

	if err := s.refs.Claim(ctx, tx, string(t), supplied); err != nil {
		if errors.Is(err, refnum.ErrMalformed) {
			return "", fmt.Errorf("%w: %w", ErrInvalidLine, err)
		}

		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return supplied, nil
}

// lineDelta returns the signed change a line applies to the on-hand quantity.
func lineDelta(t Type, qty, onHand decimal.Decimal) decimal.Decimal {
	switch t {
	case TypeReceive:
		return qty
	case TypeAdjustment:
		return qty.Sub(onHand)
	default:
		return decimal.Min(qty, onHand).Neg()
	}
}

func findShortages(lines []LineParams, stock map[uuid.UUID]*Stock) []Shortage {
	var out []Shortage

	for _, l := range lines {
		st := stock[l.ItemID]
		if l.Quantity.LessThanOrEqual(st.Quantity) {
			continue
		}

		out = append(out, Shortage{
			ItemID:    l.ItemID,
			ItemCode:  st.Item.Code,
			Requested: l.Quantity,
			Available: st.Quantity,
			Shortage:  l.Quantity.Sub(st.Quantity),
		})
	}

	return out
}

func validate(params ProcessParams) error {
	if !params.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidLine, params.Type)
	}

	if params.ActorID == "" {
		return fmt.Errorf("%w: actor is required", ErrInvalidLine)
	}

	return validateLines(params.Type, params.Lines)
}

func validateLines(t Type, lines []LineParams) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: at least one line is required", ErrInvalidLine)
	}

	seen := make(map[uuid.UUID]bool, len(lines))

	for i, l := range lines {
		n := i + 1

		if l.ItemID == uuid.Nil {
			return fmt.Errorf("%w: line %d: item is required", ErrInvalidLine, n)
		}

		if seen[l.ItemID] {
			return fmt.Errorf("%w: line %d: item %s appears more than once", ErrInvalidLine, n, l.ItemID)
		}

		seen[l.ItemID] = true

		if t == TypeAdjustment {
			if l.Quantity.IsNegative() {
				return fmt.Errorf("%w: line %d: adjusted quantity must not be negative", ErrInvalidLine, n)
			}
		} else if !l.Quantity.IsPositive() {
			return fmt.Errorf("%w: line %d: quantity must be positive", ErrInvalidLine, n)
		}

		if l.UnitCost.IsNegative() {
			return fmt.Errorf("%w: line %d: unit cost must not be negative", ErrInvalidLine, n)
		}
	}

	return nil
}

// Dispatch records a committed result and sends its notification on its own
// goroutine. Notification failures are logged and counted, never returned.
func (s *Service) Dispatch(res *Result) {
	s.metrics.ObserveTransaction(string(res.Transaction.Type), len(res.Transaction.Lines))

	event := notify.NewEvent(EventTransactionCompleted, eventSource, res.ReferenceNumber, res.Notice)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		err := s.notifier.Notify(ctx, event)
		s.metrics.ObserveNotification(err)

		if err != nil {
			s.logger.Warn("ledger notification failed",
				"reference", res.ReferenceNumber, "transaction_id", res.TransactionID, "error", err)
		}
	}()
}

// CheckStock reports shortages for an issue without locking or mutating anything.
func (s *Service) CheckStock(ctx context.Context, lines []LineParams) ([]Shortage, error) {
	if err := validateLines(TypeIssue, lines); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.ItemID
	}

	stock, err := s.repo.GetStock(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("reading stock: %w", err)
	}

	for i, l := range lines {
		if _, ok := stock[l.ItemID]; !ok {
			return nil, fmt.Errorf("%w: line %d: item %s not found", ErrInvalidLine, i+1, l.ItemID)
		}
	}

	return findShortages(lines, stock), nil
}

// NextReference previews the reference number the next transaction of type t
// dated date would receive. It does not consume the counter.
func (s *Service) NextReference(ctx context.Context, t Type, date time.Time) (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidLine, t)
	}

	return s.refs.Peek(ctx, s.repo, string(t), date)
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) GetBalance(ctx context.Context, itemID uuid.UUID) (*Balance, error) {
	return s.repo.GetBalance(ctx, itemID)
}

func (s *Service) ListBalances(ctx context.Context) ([]*Balance, error) {
	return s.repo.ListBalances(ctx)
}

func (s *Service) ListBackorders(ctx context.Context, filter BackorderFilter) ([]*Backorder, error) {
	return s.repo.ListBackorders(ctx, filter)
}

// FulfillBackorder issues the outstanding quantity of a pending backorder as a
// BACKORDER transaction and marks it fulfilled in the same unit of work.
func (s *Service) FulfillBackorder(ctx context.Context, id uuid.UUID, actorID string) (*Result, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: starting transaction: %w", ErrPersistence, err)
	}
	defer tx.Rollback()

	bo, err := tx.LockBackorder(ctx, id)
	if err != nil {
		return nil, err
	}

	if bo.Status != BackorderPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrBackorderClosed, id, bo.Status)
	}

	params := ProcessParams{
		Type:           TypeBackorder,
		CounterpartyID: bo.DepartmentID,
		Lines:          []LineParams{{ItemID: bo.ItemID, Quantity: bo.Quantity}},
		Notes:          fmt.Sprintf("Fulfils backorder %s", bo.ID),
		ActorID:        actorID,
	}

	res, err := s.ProcessInTx(ctx, tx, params)
	if err != nil {
		return nil, err
	}

	bo.Status = BackorderFulfilled
	bo.FulfilledBy = &res.TransactionID
	bo.UpdatedAt = s.now()

	if err := tx.UpdateBackorder(ctx, bo); err != nil {
		return nil, fmt.Errorf("%w: updating backorder: %w", ErrPersistence, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing: %w", ErrPersistence, err)
	}

	res.Backorders = []*Backorder{bo}
	s.Dispatch(res)

	return res, nil
}

func (s *Service) CancelBackorder(ctx context.Context, id uuid.UUID, actorID string) (*Backorder, error) {
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidLine)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: starting transaction: %w", ErrPersistence, err)
	}
	defer tx.Rollback()

	bo, err := tx.LockBackorder(ctx, id)
	if err != nil {
		return nil, err
	}

	if bo.Status != BackorderPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrBackorderClosed, id, bo.Status)
	}

	bo.Status = BackorderCancelled
	bo.Notes = joinNotes(bo.Notes, "Cancelled by "+actorID)
	bo.UpdatedAt = s.now()

	if err := tx.UpdateBackorder(ctx, bo); err != nil {
		return nil, fmt.Errorf("%w: updating backorder: %w", ErrPersistence, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing: %w", ErrPersistence, err)
	}

	return bo, nil
}

// Audit lists items whose on-hand quantity differs from the sum of their ledger lines.
func (s *Service) Audit(ctx context.Context) ([]Drift, error) {
	return s.repo.Audit(ctx)
}

func joinNotes(existing, add string) string {
	if existing == "" {
		return add
	}

	return existing + "; " + add
}
