package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

const (
	uniqueViolation = "23505"
	checkViolation  = "23514"

	referenceConstraint = "transactions_reference_number_key"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return WrapTx(dbTx), nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}

func uuidPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}

	id := n.UUID

	return &id
}

const selectStockColumns = `
	i.id, i.code, i.description, i.base_uom, i.unit_cost, i.reorder_level, i.active, COALESCE(s.quantity, 0)
`

func scanStock(sc scanner) (*ledger.Stock, error) {
	var st ledger.Stock

	if err := sc.Scan(
		&st.Item.ID, &st.Item.Code, &st.Item.Description, &st.Item.BaseUOM,
		&st.Item.UnitCost, &st.Item.ReorderLevel, &st.Item.Active, &st.Quantity,
	); err != nil {
		return nil, err
	}

	return &st, nil
}

func queryStock(ctx context.Context, q querier, query string, args ...any) (map[uuid.UUID]*ledger.Stock, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying stock: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]*ledger.Stock)

	for rows.Next() {
		st, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stock: %w", err)
		}

		out[st.Item.ID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock: %w", err)
	}

	return out, nil
}

func (s *Store) GetStock(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]*ledger.Stock, error) {
	query := `SELECT ` + selectStockColumns + `
		FROM items i
		LEFT JOIN inventory_status s ON s.item_id = i.id
		WHERE i.id = ANY($1::uuid[])`

	return queryStock(ctx, s.db, query, idStrings(itemIDs))
}

const selectTransactionColumns = `
	t.id, t.type, t.date, t.counterparty_id, t.reference_number, t.notes, t.status,
	t.insufficient_stock, t.actor_id, t.created_at
`

func scanTransaction(sc scanner) (*ledger.Transaction, error) {
	var t ledger.Transaction

	var counterparty uuid.NullUUID

	if err := sc.Scan(
		&t.ID, &t.Type, &t.Date, &counterparty, &t.ReferenceNumber, &t.Notes, &t.Status,
		&t.InsufficientStock, &t.ActorID, &t.CreatedAt,
	); err != nil {
		return nil, err
	}

	t.CounterpartyID = uuidPtr(counterparty)

	return &t, nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions t WHERE t.id = $1`

	t, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	lines, err := s.listLines(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Lines = lines

	return t, nil
}

func (s *Store) listLines(ctx context.Context, txID uuid.UUID) ([]*ledger.Line, error) {
	query := `
		SELECT id, transaction_id, item_id, quantity, unit_cost, previous_quantity, new_quantity, notes
		FROM transaction_lines
		WHERE transaction_id = $1
		ORDER BY item_id
	`

	rows, err := s.db.QueryContext(ctx, query, txID)
	if err != nil {
		return nil, fmt.Errorf("listing lines: %w", err)
	}
	defer rows.Close()

	var lines []*ledger.Line

	for rows.Next() {
		var l ledger.Line
		if err := rows.Scan(
			&l.ID, &l.TransactionID, &l.ItemID, &l.Quantity, &l.UnitCost,
			&l.PreviousQuantity, &l.NewQuantity, &l.Notes,
		); err != nil {
			return nil, fmt.Errorf("scanning line: %w", err)
		}

		lines = append(lines, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lines: %w", err)
	}

	return lines, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions t WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	if filter.ItemID != nil {
		query += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM transaction_lines l WHERE l.transaction_id = t.id AND l.item_id = $%d)", argIdx)

		args = append(args, *filter.ItemID)
		argIdx++
	}

	query += " ORDER BY t.date ASC, t.reference_number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

const selectBalanceColumns = `
	i.id, i.code, COALESCE(s.quantity, 0), i.reorder_level, COALESCE(s.updated_at, i.created_at)
`

func scanBalance(sc scanner) (*ledger.Balance, error) {
	var b ledger.Balance

	if err := sc.Scan(&b.ItemID, &b.ItemCode, &b.Quantity, &b.ReorderLevel, &b.UpdatedAt); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) GetBalance(ctx context.Context, itemID uuid.UUID) (*ledger.Balance, error) {
	query := `SELECT ` + selectBalanceColumns + `
		FROM items i
		LEFT JOIN inventory_status s ON s.item_id = i.id
		WHERE i.id = $1`

	b, err := scanBalance(s.db.QueryRowContext(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting balance: %w", err)
	}

	return b, nil
}

func (s *Store) ListBalances(ctx context.Context) ([]*ledger.Balance, error) {
	query := `SELECT ` + selectBalanceColumns + `
		FROM items i
		LEFT JOIN inventory_status s ON s.item_id = i.id
		WHERE i.active
		ORDER BY i.code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing balances: %w", err)
	}
	defer rows.Close()

	var out []*ledger.Balance

	for rows.Next() {
		b, err := scanBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning balance: %w", err)
		}

		out = append(out, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating balances: %w", err)
	}

	return out, nil
}

const selectBackorderColumns = `
	id, item_id, department_id, quantity, status, notes, transaction_id, fulfilled_by, created_at, updated_at
`

func scanBackorder(sc scanner) (*ledger.Backorder, error) {
	var b ledger.Backorder

	var dept, fulfilledBy uuid.NullUUID

	if err := sc.Scan(
		&b.ID, &b.ItemID, &dept, &b.Quantity, &b.Status, &b.Notes,
		&b.TransactionID, &fulfilledBy, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	b.DepartmentID = uuidPtr(dept)
	b.FulfilledBy = uuidPtr(fulfilledBy)

	return &b, nil
}

func (s *Store) ListBackorders(ctx context.Context, filter ledger.BackorderFilter) ([]*ledger.Backorder, error) {
	query := `SELECT ` + selectBackorderColumns + ` FROM backorders WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ItemID != nil {
		query += fmt.Sprintf(" AND item_id = $%d", argIdx)

		args = append(args, *filter.ItemID)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing backorders: %w", err)
	}
	defer rows.Close()

	var out []*ledger.Backorder

	for rows.Next() {
		b, err := scanBackorder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning backorder: %w", err)
		}

		out = append(out, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating backorders: %w", err)
	}

	return out, nil
}

func (s *Store) Audit(ctx context.Context) ([]ledger.Drift, error) {
	query := `
		SELECT i.id, i.code, COALESCE(s.quantity, 0), COALESCE(l.total, 0)
		FROM items i
		LEFT JOIN inventory_status s ON s.item_id = i.id
		LEFT JOIN (
			SELECT item_id, SUM(quantity) AS total FROM transaction_lines GROUP BY item_id
		) l ON l.item_id = i.id
		WHERE COALESCE(s.quantity, 0) <> COALESCE(l.total, 0)
		ORDER BY i.code
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("auditing balances: %w", err)
	}
	defer rows.Close()

	var out []ledger.Drift

	for rows.Next() {
		var d ledger.Drift
		if err := rows.Scan(&d.ItemID, &d.ItemCode, &d.OnHand, &d.LedgerTotal); err != nil {
			return nil, fmt.Errorf("scanning drift: %w", err)
		}

		out = append(out, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drift: %w", err)
	}

	return out, nil
}

func (s *Store) NextSequence(ctx context.Context, prefix string, day time.Time) (int64, error) {
	return nextSequence(ctx, s.db, prefix, day)
}

func (s *Store) PeekSequence(ctx context.Context, prefix string, day time.Time) (int64, error) {
	return peekSequence(ctx, s.db, prefix, day)
}

func (s *Store) ClaimSequence(ctx context.Context, prefix string, day time.Time, n int64) error {
	return claimSequence(ctx, s.db, prefix, day, n)
}

func nextSequence(ctx context.Context, q querier, prefix string, day time.Time) (int64, error) {
	query := `
		INSERT INTO reference_sequences (prefix, day, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, day) DO UPDATE SET last_number = reference_sequences.last_number + 1
		RETURNING last_number
	`

	var n int64
	if err := q.QueryRowContext(ctx, query, prefix, day).Scan(&n); err != nil {
		return 0, fmt.Errorf("advancing sequence %s: %w", prefix, err)
	}

	return n, nil
}

func peekSequence(ctx context.Context, q querier, prefix string, day time.Time) (int64, error) {
	query := `SELECT COALESCE(MAX(last_number), 0) FROM reference_sequences WHERE prefix = $1 AND day = $2`

	var n int64
	if err := q.QueryRowContext(ctx, query, prefix, day).Scan(&n); err != nil {
		return 0, fmt.Errorf("reading sequence %s: %w", prefix, err)
	}

	return n, nil
}

func claimSequence(ctx context.Context, q querier, prefix string, day time.Time, n int64) error {
	query := `
		INSERT INTO reference_sequences (prefix, day, last_number)
		VALUES ($1, $2, $3)
		ON CONFLICT (prefix, day) DO UPDATE
		SET last_number = GREATEST(reference_sequences.last_number, EXCLUDED.last_number)
	`

	if _, err := q.ExecContext(ctx, query, prefix, day, n); err != nil {
		return fmt.Errorf("claiming sequence %s: %w", prefix, err)
	}

	return nil
}

// Tx implements ledger.Tx over a database transaction. Other stores wrap the
// same *sql.Tx to join their writes to a ledger unit of work.
type Tx struct {
	tx *sql.Tx
}

func WrapTx(tx *sql.Tx) *Tx {
	return &Tx{tx: tx}
}

// SQL returns the underlying database transaction.
func (t *Tx) SQL() *sql.Tx { return t.tx }

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

// NextSequence runs the upsert under a savepoint so that a failed draw leaves
// the transaction usable for the caller's fallback reference.
func (t *Tx) NextSequence(ctx context.Context, prefix string, day time.Time) (int64, error) {
	if _, err := t.tx.ExecContext(ctx, `SAVEPOINT refseq`); err != nil {
		return 0, fmt.Errorf("opening sequence savepoint: %w", err)
	}

	n, err := nextSequence(ctx, t.tx, prefix, day)
	if err != nil {
		if _, rbErr := t.tx.ExecContext(context.WithoutCancel(ctx), `ROLLBACK TO SAVEPOINT refseq`); rbErr != nil {
			return 0, errors.Join(err, fmt.Errorf("rolling back sequence savepoint: %w", rbErr))
		}

		return 0, err
	}

	if _, err := t.tx.ExecContext(ctx, `RELEASE SAVEPOINT refseq`); err != nil {
		return 0, fmt.Errorf("releasing sequence savepoint: %w", err)
	}

	return n, nil
}

func (t *Tx) PeekSequence(ctx context.Context, prefix string, day time.Time) (int64, error) {
	return peekSequence(ctx, t.tx, prefix, day)
}

func (t *Tx) ClaimSequence(ctx context.Context, prefix string, day time.Time, n int64) error {
	return claimSequence(ctx, t.tx, prefix, day, n)
}

// seedBalances creates missing balance rows in id order, the same order
// LockStock locks them in.
const seedBalances = `
	INSERT INTO inventory_status (item_id, quantity, updated_at)
	SELECT id, 0, NOW() FROM items WHERE id = ANY($1::uuid[])
	ORDER BY id
	ON CONFLICT (item_id) DO NOTHING
`

func (t *Tx) LockStock(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID]*ledger.Stock, error) {
	ids := idStrings(itemIDs)

	if _, err := t.tx.ExecContext(ctx, seedBalances, ids); err != nil {
		return nil, fmt.Errorf("seeding balances: %w", err)
	}

	query := `SELECT ` + selectStockColumns + `
		FROM items i
		JOIN inventory_status s ON s.item_id = i.id
		WHERE i.id = ANY($1::uuid[])
		ORDER BY i.id
		FOR UPDATE OF s`

	return queryStock(ctx, t.tx, query, ids)
}

func (t *Tx) InsertTransaction(ctx context.Context, tr *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (id, type, date, counterparty_id, reference_number, notes, status,
			insufficient_stock, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := t.tx.ExecContext(ctx, query,
		tr.ID,
		tr.Type,
		tr.Date,
		nullUUID(tr.CounterpartyID),
		tr.ReferenceNumber,
		tr.Notes,
		tr.Status,
		tr.InsufficientStock,
		tr.ActorID,
		tr.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == referenceConstraint {
			return ledger.ErrDuplicateReference
		}

		return fmt.Errorf("inserting transaction: %w", err)
	}

	return nil
}

func (t *Tx) InsertLines(ctx context.Context, lines []*ledger.Line) error {
	query := `
		INSERT INTO transaction_lines (id, transaction_id, item_id, quantity, unit_cost,
			previous_quantity, new_quantity, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, l := range lines {
		_, err := t.tx.ExecContext(ctx, query,
			l.ID,
			l.TransactionID,
			l.ItemID,
			l.Quantity,
			l.UnitCost,
			l.PreviousQuantity,
			l.NewQuantity,
			l.Notes,
		)
		if err != nil {
			return fmt.Errorf("inserting line for item %s: %w", l.ItemID, err)
		}
	}

	return nil
}

func (t *Tx) ApplyDelta(ctx context.Context, itemID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE inventory_status
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE item_id = $2
		RETURNING quantity
	`

	var qty decimal.Decimal

	err := t.tx.QueryRowContext(ctx, query, delta, itemID).Scan(&qty)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
			return decimal.Zero, fmt.Errorf("balance of %s would become negative: %w", itemID, err)
		}

		return decimal.Zero, fmt.Errorf("applying delta: %w", err)
	}

	return qty, nil
}

func (t *Tx) InsertBackorders(ctx context.Context, backorders []*ledger.Backorder) error {
	query := `
		INSERT INTO backorders (id, item_id, department_id, quantity, status, notes, transaction_id,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, b := range backorders {
		_, err := t.tx.ExecContext(ctx, query,
			b.ID,
			b.ItemID,
			nullUUID(b.DepartmentID),
			b.Quantity,
			b.Status,
			b.Notes,
			b.TransactionID,
			b.CreatedAt,
			b.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting backorder for item %s: %w", b.ItemID, err)
		}
	}

	return nil
}

func (t *Tx) LockBackorder(ctx context.Context, id uuid.UUID) (*ledger.Backorder, error) {
	query := `SELECT ` + selectBackorderColumns + ` FROM backorders WHERE id = $1 FOR UPDATE`

	b, err := scanBackorder(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("locking backorder: %w", err)
	}

	return b, nil
}

func (t *Tx) UpdateBackorder(ctx context.Context, b *ledger.Backorder) error {
	query := `
		UPDATE backorders
		SET status = $1, notes = $2, fulfilled_by = $3, updated_at = $4
		WHERE id = $5
	`

	_, err := t.tx.ExecContext(ctx, query, b.Status, b.Notes, nullUUID(b.FulfilledBy), b.UpdatedAt, b.ID)
	if err != nil {
		return fmt.Errorf("updating backorder: %w", err)
	}

	return nil
}
