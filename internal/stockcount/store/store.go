package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	ledgerstore "github.com/MrJamesThe3rd/stockroom/internal/ledger/store"
	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
)

const eomPeriodIndex = "stock_counts_eom_period_idx"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type countTx struct {
	*ledgerstore.Tx
}

func (s *Store) Begin(ctx context.Context) (stockcount.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning count tx: %w", err)
	}

	return &countTx{Tx: ledgerstore.WrapTx(dbTx)}, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const selectCountColumns = `
	id, type, count_date, period, status, notes, created_by, posted_by, created_at, completed_at, posted_at
`

func scanCount(sc scanner) (*stockcount.Count, error) {
	var c stockcount.Count

	var postedBy sql.NullString

	var completedAt, postedAt sql.NullTime

	if err := sc.Scan(
		&c.ID, &c.Type, &c.CountDate, &c.Period, &c.Status, &c.Notes, &c.CreatedBy,
		&postedBy, &c.CreatedAt, &completedAt, &postedAt,
	); err != nil {
		return nil, err
	}

	c.PostedBy = postedBy.String

	if completedAt.Valid {
		c.CompletedAt = &completedAt.Time
	}

	if postedAt.Valid {
		c.PostedAt = &postedAt.Time
	}

	return &c, nil
}

const selectLineColumns = `
	id, count_id, item_id, item_code, unit_cost, system_quantity, counted_quantity,
	discrepancy, status, review_required, updated_at
`

func scanLine(sc scanner) (*stockcount.Line, error) {
	var l stockcount.Line

	var counted decimal.NullDecimal

	if err := sc.Scan(
		&l.ID, &l.CountID, &l.ItemID, &l.ItemCode, &l.UnitCost, &l.SystemQuantity, &counted,
		&l.Discrepancy, &l.Status, &l.ReviewRequired, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if counted.Valid {
		l.CountedQuantity = &counted.Decimal
	}

	return &l, nil
}

func loadLines(ctx context.Context, q querier, countID uuid.UUID) ([]*stockcount.Line, error) {
	query := `SELECT ` + selectLineColumns + ` FROM stock_count_lines WHERE count_id = $1 ORDER BY item_code`

	rows, err := q.QueryContext(ctx, query, countID)
	if err != nil {
		return nil, fmt.Errorf("listing count lines: %w", err)
	}
	defer rows.Close()

	var lines []*stockcount.Line

	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning count line: %w", err)
		}

		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating count lines: %w", err)
	}

	return lines, nil
}

func getCount(ctx context.Context, q querier, id uuid.UUID, lock bool) (*stockcount.Count, error) {
	query := `SELECT ` + selectCountColumns + ` FROM stock_counts WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	c, err := scanCount(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, stockcount.ErrNotFound
		}

		return nil, fmt.Errorf("getting count: %w", err)
	}

	lines, err := loadLines(ctx, q, id)
	if err != nil {
		return nil, err
	}

	c.Lines = lines

	return c, nil
}

func (s *Store) GetCount(ctx context.Context, id uuid.UUID) (*stockcount.Count, error) {
	return getCount(ctx, s.db, id, false)
}

func (s *Store) ListCounts(ctx context.Context, filter stockcount.ListFilter) ([]*stockcount.Count, error) {
	query := `SELECT ` + selectCountColumns + ` FROM stock_counts WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	query += " ORDER BY count_date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing counts: %w", err)
	}
	defer rows.Close()

	var counts []*stockcount.Count

	for rows.Next() {
		c, err := scanCount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}

		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counts: %w", err)
	}

	return counts, nil
}

func (t *countTx) PeriodTaken(ctx context.Context, period string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM stock_counts WHERE type = 'EOM' AND period = $1)`

	var taken bool
	if err := t.SQL().QueryRowContext(ctx, query, period).Scan(&taken); err != nil {
		return false, fmt.Errorf("checking period %s: %w", period, err)
	}

	return taken, nil
}

func (t *countTx) SnapshotItems(ctx context.Context) ([]stockcount.Snapshot, error) {
	query := `
		SELECT i.id, i.code, i.unit_cost, COALESCE(s.quantity, 0)
		FROM items i
		LEFT JOIN inventory_status s ON s.item_id = i.id
		WHERE i.active
		ORDER BY i.code
	`

	rows, err := t.SQL().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshotting items: %w", err)
	}
	defer rows.Close()

	var out []stockcount.Snapshot

	for rows.Next() {
		var s stockcount.Snapshot
		if err := rows.Scan(&s.ItemID, &s.ItemCode, &s.UnitCost, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}

		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot: %w", err)
	}

	return out, nil
}

func (t *countTx) InsertCount(ctx context.Context, c *stockcount.Count) error {
	header := `
		INSERT INTO stock_counts (id, type, count_date, period, status, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := t.SQL().ExecContext(ctx, header, c.ID, c.Type, c.CountDate, c.Period, c.Status, c.Notes, c.CreatedBy, c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == eomPeriodIndex {
			return fmt.Errorf("%w: %s", stockcount.ErrDuplicatePeriod, c.Period)
		}

		return fmt.Errorf("inserting count: %w", err)
	}

	line := `
		INSERT INTO stock_count_lines (id, count_id, item_id, item_code, unit_cost, system_quantity,
			discrepancy, status, review_required, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for _, l := range c.Lines {
		_, err := t.SQL().ExecContext(ctx, line,
			l.ID,
			l.CountID,
			l.ItemID,
			l.ItemCode,
			l.UnitCost,
			l.SystemQuantity,
			l.Discrepancy,
			l.Status,
			l.ReviewRequired,
			l.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting count line %s: %w", l.ItemCode, err)
		}
	}

	return nil
}

func (t *countTx) FindLine(ctx context.Context, lineID uuid.UUID) (*stockcount.Line, error) {
	query := `SELECT ` + selectLineColumns + ` FROM stock_count_lines WHERE id = $1`

	l, err := scanLine(t.SQL().QueryRowContext(ctx, query, lineID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, stockcount.ErrNotFound
		}

		return nil, fmt.Errorf("finding line: %w", err)
	}

	return l, nil
}

func (t *countTx) LockCount(ctx context.Context, id uuid.UUID) (*stockcount.Count, error) {
	return getCount(ctx, t.SQL(), id, true)
}

func (t *countTx) UpdateCount(ctx context.Context, c *stockcount.Count) error {
	query := `
		UPDATE stock_counts
		SET status = $1, notes = $2, posted_by = $3, completed_at = $4, posted_at = $5
		WHERE id = $6
	`

	var postedBy sql.NullString
	if c.PostedBy != "" {
		postedBy = sql.NullString{String: c.PostedBy, Valid: true}
	}

	_, err := t.SQL().ExecContext(ctx, query, c.Status, c.Notes, postedBy, c.CompletedAt, c.PostedAt, c.ID)
	if err != nil {
		return fmt.Errorf("updating count: %w", err)
	}

	return nil
}

func (t *countTx) UpdateLine(ctx context.Context, l *stockcount.Line) error {
	query := `
		UPDATE stock_count_lines
		SET counted_quantity = $1, discrepancy = $2, status = $3, review_required = $4, updated_at = $5
		WHERE id = $6
	`

	var counted decimal.NullDecimal
	if l.CountedQuantity != nil {
		counted = decimal.NewNullDecimal(*l.CountedQuantity)
	}

	_, err := t.SQL().ExecContext(ctx, query, counted, l.Discrepancy, l.Status, l.ReviewRequired, l.UpdatedAt, l.ID)
	if err != nil {
		return fmt.Errorf("updating count line: %w", err)
	}

	return nil
}

func (t *countTx) InsertAdjustment(ctx context.Context, a *stockcount.Adjustment) error {
	query := `
		INSERT INTO stock_count_adjustments (id, count_id, line_id, transaction_id, quantity, automatic,
			created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := t.SQL().ExecContext(ctx, query,
		a.ID,
		a.CountID,
		a.LineID,
		a.TransactionID,
		a.Quantity,
		a.Automatic,
		a.CreatedBy,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting adjustment: %w", err)
	}

	return nil
}
