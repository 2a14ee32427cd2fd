package stockcount

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=stockcount
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	GetCount(ctx context.Context, id uuid.UUID) (*Count, error)
	ListCounts(ctx context.Context, filter ListFilter) ([]*Count, error)
}

// Tx extends the ledger unit of work so that count changes and the
// adjustments they produce commit together.
type Tx interface {
	ledger.Tx

	PeriodTaken(ctx context.Context, period string) (bool, error)
	SnapshotItems(ctx context.Context) ([]Snapshot, error)
	InsertCount(ctx context.Context, c *Count) error
	// FindLine reads a line without locking it.
	FindLine(ctx context.Context, lineID uuid.UUID) (*Line, error)
	// LockCount locks the count header and loads its lines.
	LockCount(ctx context.Context, id uuid.UUID) (*Count, error)
	UpdateCount(ctx context.Context, c *Count) error
	UpdateLine(ctx context.Context, l *Line) error
	InsertAdjustment(ctx context.Context, a *Adjustment) error
}

// Ledger is the part of the transaction processor used for posting.
type Ledger interface {
	ProcessInTx(ctx context.Context, tx ledger.Tx, params ledger.ProcessParams) (*ledger.Result, error)
	Dispatch(res *ledger.Result)
}

type Metrics interface {
	ObservePosting(automatic, flagged int)
	ObserveResolution()
}

type nopMetrics struct{}

func (nopMetrics) ObservePosting(int, int) {}
func (nopMetrics) ObserveResolution()      {}

type Service struct {
	repo    Repository
	ledger  Ledger
	metrics Metrics
	now     func() time.Time
}

func NewService(repo Repository, l Ledger) *Service {
	return &Service{repo: repo, ledger: l, metrics: nopMetrics{}, now: time.Now}
}

// WithMetrics replaces the metrics sink.
func (s *Service) WithMetrics(m Metrics) *Service {
	s.metrics = m
	return s
}

// WithClock replaces the clock used for timestamps and default dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type CreateParams struct {
	Type      Type
	CountDate time.Time
	// Period is YYYY-MM. Derived from CountDate when empty.
	Period  string
	ActorID string
	Notes   string
}

type ListFilter struct {
	Status *Status
	Type   *Type
}

type PostParams struct {
	CountID uuid.UUID
	// Threshold is the largest absolute discrepancy adjusted automatically.
	Threshold decimal.Decimal
	ActorID   string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Count, error) {
	if !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidCount, params.Type)
	}

	if params.ActorID == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidCount)
	}

	date := params.CountDate
	if date.IsZero() {
		date = s.now()
	}

	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	period := params.Period
	if period == "" {
		period = date.Format(periodLayout)
	}

	if _, err := time.Parse(periodLayout, period); err != nil {
		return nil, fmt.Errorf("%w: period %q is not YYYY-MM", ErrInvalidCount, period)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if params.Type == TypeEndOfMonth {
		taken, err := tx.PeriodTaken(ctx, period)
		if err != nil {
			return nil, fmt.Errorf("checking period: %w", err)
		}

		if taken {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePeriod, period)
		}
	}

	snapshot, err := tx.SnapshotItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshotting items: %w", err)
	}

	if len(snapshot) == 0 {
		return nil, ErrNoItems
	}

	now := s.now()
	count := &Count{
		ID:        uuid.New(),
		Type:      params.Type,
		CountDate: date,
		Period:    period,
		Status:    StatusDraft,
		Notes:     params.Notes,
		CreatedBy: params.ActorID,
		CreatedAt: now,
		Lines:     make([]*Line, len(snapshot)),
	}

	for i, item := range snapshot {
		count.Lines[i] = &Line{
			ID:             uuid.New(),
			CountID:        count.ID,
			ItemID:         item.ItemID,
			ItemCode:       item.ItemCode,
			UnitCost:       item.UnitCost,
			SystemQuantity: item.Quantity,
			Status:         LinePending,
			UpdatedAt:      now,
		}
	}

	if err := tx.InsertCount(ctx, count); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	return count, nil
}

// UpdateLine records a counted quantity. The first entry moves a DRAFT count
// to IN_PROGRESS. Concurrent entries on the same line are last-write-wins.
func (s *Service) UpdateLine(ctx context.Context, lineID uuid.UUID, counted decimal.Decimal) (*Line, error) {
	if counted.IsNegative() {
		return nil, fmt.Errorf("%w: counted quantity must not be negative", ErrInvalidCount)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	count, line, err := lockLine(ctx, tx, lineID)
	if err != nil {
		return nil, err
	}

	if !count.Status.Open() {
		return nil, fmt.Errorf("%w: count is %s", ErrCountClosed, count.Status)
	}

	line.Record(counted, s.now())

	if err := tx.UpdateLine(ctx, line); err != nil {
		return nil, fmt.Errorf("updating line: %w", err)
	}

	if count.Status == StatusDraft {
		count.Status = StatusInProgress

		if err := tx.UpdateCount(ctx, count); err != nil {
			return nil, fmt.Errorf("updating count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	return line, nil
}

// lockLine locks the owning count before touching the line, matching the lock
// order used by Post.
func lockLine(ctx context.Context, tx Tx, lineID uuid.UUID) (*Count, *Line, error) {
	found, err := tx.FindLine(ctx, lineID)
	if err != nil {
		return nil, nil, err
	}

	count, err := tx.LockCount(ctx, found.CountID)
	if err != nil {
		return nil, nil, err
	}

	line := count.Line(lineID)
	if line == nil {
		return nil, nil, ErrNotFound
	}

	return count, line, nil
}

func (s *Service) Complete(ctx context.Context, countID uuid.UUID, actorID string) (*Count, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.LockCount(ctx, countID)
	if err != nil {
		return nil, err
	}

	if count.Status != StatusInProgress {
		return nil, fmt.Errorf("%w: cannot complete a %s count", ErrInvalidTransition, count.Status)
	}

	if n := count.Uncounted(); n > 0 {
		return nil, fmt.Errorf("%w: %d remaining", ErrUncountedLines, n)
	}

	now := s.now()
	count.Status = StatusCompleted
	count.CompletedAt = &now

	if actorID != "" {
		count.Notes = appendNote(count.Notes, "Completed by "+actorID)
	}

	if err := tx.UpdateCount(ctx, count); err != nil {
		return nil, fmt.Errorf("updating count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	return count, nil
}

// Post settles a completed count in one unit of work. Lines whose absolute
// discrepancy is within the threshold are adjusted to the counted quantity;
// larger ones are flagged for review and left for ResolveLine.
func (s *Service) Post(ctx context.Context, params PostParams) (*PostResult, error) {
	if params.Threshold.IsNegative() {
		return nil, fmt.Errorf("%w: threshold must not be negative", ErrInvalidCount)
	}

	if params.ActorID == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidCount)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.LockCount(ctx, params.CountID)
	if err != nil {
		return nil, err
	}

	if count.Status != StatusCompleted {
		return nil, fmt.Errorf("%w: count is %s", ErrNotCompleted, count.Status)
	}

	result := &PostResult{Count: count}

	var posted []*ledger.Result

	for _, line := range count.Lines {
		if line.Discrepancy.IsZero() {
			continue
		}

		if line.Discrepancy.Abs().GreaterThan(params.Threshold) {
			line.ReviewRequired = true

			if err := tx.UpdateLine(ctx, line); err != nil {
				return nil, fmt.Errorf("flagging line %s: %w", line.ItemCode, err)
			}

			result.Flagged = append(result.Flagged, line)

			continue
		}

		adj, res, err := s.adjust(ctx, tx, count, line, params.ActorID, true)
		if err != nil {
			return nil, err
		}

		result.Adjustments = append(result.Adjustments, adj)
		posted = append(posted, res)
	}

	now := s.now()
	count.Status = StatusPosted
	count.PostedBy = params.ActorID
	count.PostedAt = &now

	if err := tx.UpdateCount(ctx, count); err != nil {
		return nil, fmt.Errorf("updating count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	for _, res := range posted {
		s.ledger.Dispatch(res)
	}

	s.metrics.ObservePosting(len(result.Adjustments), len(result.Flagged))

	return result, nil
}

// ResolveLine adjusts a flagged line of a posted count to its counted quantity
// and clears the flag.
func (s *Service) ResolveLine(ctx context.Context, lineID uuid.UUID, actorID string) (*Adjustment, error) {
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidCount)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	count, line, err := lockLine(ctx, tx, lineID)
	if err != nil {
		return nil, err
	}

	if count.Status != StatusPosted || !line.ReviewRequired {
		return nil, ErrNothingToResolve
	}

	adj, res, err := s.adjust(ctx, tx, count, line, actorID, false)
	if err != nil {
		return nil, err
	}

	line.ReviewRequired = false
	line.UpdatedAt = s.now()

	if err := tx.UpdateLine(ctx, line); err != nil {
		return nil, fmt.Errorf("clearing review flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}

	s.ledger.Dispatch(res)
	s.metrics.ObserveResolution()

	return adj, nil
}

func (s *Service) adjust(ctx context.Context, tx Tx, count *Count, line *Line, actorID string, automatic bool) (*Adjustment, *ledger.Result, error) {
	res, err := s.ledger.ProcessInTx(ctx, tx, ledger.ProcessParams{
		Type: ledger.TypeAdjustment,
		Lines: []ledger.LineParams{{
			ItemID:   line.ItemID,
			Quantity: *line.CountedQuantity,
			UnitCost: line.UnitCost,
			Notes:    fmt.Sprintf("Counted %s, system %s", line.CountedQuantity, line.SystemQuantity),
		}},
		Notes:   fmt.Sprintf("%s stock count %s", count.Type, count.Period),
		ActorID: actorID,
		Date:    s.now(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("adjusting %s: %w", line.ItemCode, err)
	}

	adj := &Adjustment{
		ID:            uuid.New(),
		CountID:       count.ID,
		LineID:        line.ID,
		TransactionID: res.TransactionID,
		Reference:     res.ReferenceNumber,
		Quantity:      line.Discrepancy,
		Automatic:     automatic,
		CreatedBy:     actorID,
		CreatedAt:     s.now(),
	}

	if err := tx.InsertAdjustment(ctx, adj); err != nil {
		return nil, nil, fmt.Errorf("recording adjustment for %s: %w", line.ItemCode, err)
	}

	return adj, res, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Count, error) {
	return s.repo.GetCount(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Count, error) {
	return s.repo.ListCounts(ctx, filter)
}

// Variance values each line's absolute discrepancy at its snapshot unit cost.
func (s *Service) Variance(ctx context.Context, countID uuid.UUID) (*Variance, error) {
	count, err := s.repo.GetCount(ctx, countID)
	if err != nil {
		return nil, err
	}

	v := &Variance{CountID: count.ID, Total: decimal.Zero}

	for _, l := range count.Lines {
		if l.Discrepancy.IsZero() {
			continue
		}

		value := l.Discrepancy.Abs().Mul(l.UnitCost)
		v.Lines = append(v.Lines, VarianceLine{
			LineID:      l.ID,
			ItemID:      l.ItemID,
			ItemCode:    l.ItemCode,
			Discrepancy: l.Discrepancy,
			UnitCost:    l.UnitCost,
			Value:       value,
		})
		v.Total = v.Total.Add(value)
	}

	return v, nil
}

func appendNote(existing, add string) string {
	if existing == "" {
		return add
	}

	return existing + "; " + add
}
