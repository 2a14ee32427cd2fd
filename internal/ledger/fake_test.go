package ledger_test

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

// memState is the committed state of memStore. Each memTx works on a copy and
// writes it back on Commit.
type memState struct {
	items      map[uuid.UUID]ledger.Item
	onHand     map[uuid.UUID]decimal.Decimal
	txs        []*ledger.Transaction
	lines      []*ledger.Line
	backorders map[uuid.UUID]*ledger.Backorder
	seq        map[string]int64
}

func (s *memState) clone() *memState {
	c := &memState{
		items:      maps.Clone(s.items),
		onHand:     maps.Clone(s.onHand),
		txs:        append([]*ledger.Transaction(nil), s.txs...),
		lines:      append([]*ledger.Line(nil), s.lines...),
		backorders: make(map[uuid.UUID]*ledger.Backorder, len(s.backorders)),
		seq:        maps.Clone(s.seq),
	}

	for id, b := range s.backorders {
		cp := *b
		c.backorders[id] = &cp
	}

	return c
}

type memStore struct {
	mu    sync.Mutex
	state *memState
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		items:      map[uuid.UUID]ledger.Item{},
		onHand:     map[uuid.UUID]decimal.Decimal{},
		backorders: map[uuid.UUID]*ledger.Backorder{},
		seq:        map[string]int64{},
	}}
}

func (m *memStore) addItem(code string, qty string) uuid.UUID {
	id := uuid.New()
	m.state.items[id] = ledger.Item{ID: id, Code: code, BaseUOM: "each", UnitCost: dec("2.50"), Active: true}
	m.state.onHand[id] = dec(qty)

	if !dec(qty).IsZero() {
		// Opening balance carried by a synthetic line so that the ledger sum holds.
		m.state.lines = append(m.state.lines, &ledger.Line{ID: uuid.New(), ItemID: id, Quantity: dec(qty)})
	}

	return id
}

func (m *memStore) balance(id uuid.UUID) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.onHand[id]
}

func (m *memStore) ledgerSum(id uuid.UUID) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	sum := decimal.Zero

	for _, l := range m.state.lines {
		if l.ItemID == id {
			sum = sum.Add(l.Quantity)
		}
	}

	return sum
}

func seqKey(prefix string, day time.Time) string {
	return prefix + day.Format("20060102")
}

func (m *memStore) Begin(context.Context) (ledger.Tx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &memTx{store: m, state: m.state.clone()}, nil
}

func (m *memStore) GetTransaction(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	for _, t := range m.state.txs {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, ledger.ErrNotFound
}

func (m *memStore) ListTransactions(context.Context, ledger.ListFilter) ([]*ledger.Transaction, error) {
	return m.state.txs, nil
}

func (m *memStore) GetStock(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*ledger.Stock, error) {
	return stockOf(m.state, ids), nil
}

func (m *memStore) GetBalance(_ context.Context, id uuid.UUID) (*ledger.Balance, error) {
	item, ok := m.state.items[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	return &ledger.Balance{ItemID: id, ItemCode: item.Code, Quantity: m.state.onHand[id]}, nil
}

func (m *memStore) ListBalances(context.Context) ([]*ledger.Balance, error) {
	return nil, nil
}

func (m *memStore) ListBackorders(context.Context, ledger.BackorderFilter) ([]*ledger.Backorder, error) {
	out := make([]*ledger.Backorder, 0, len(m.state.backorders))
	for _, b := range m.state.backorders {
		out = append(out, b)
	}

	return out, nil
}

func (m *memStore) Audit(context.Context) ([]ledger.Drift, error) {
	return nil, nil
}

func (m *memStore) NextSequence(_ context.Context, prefix string, day time.Time) (int64, error) {
	m.state.seq[seqKey(prefix, day)]++
	return m.state.seq[seqKey(prefix, day)], nil
}

func (m *memStore) PeekSequence(_ context.Context, prefix string, day time.Time) (int64, error) {
	return m.state.seq[seqKey(prefix, day)], nil
}

func (m *memStore) ClaimSequence(_ context.Context, prefix string, day time.Time, n int64) error {
	m.state.seq[seqKey(prefix, day)] = max(m.state.seq[seqKey(prefix, day)], n)
	return nil
}

func stockOf(s *memState, ids []uuid.UUID) map[uuid.UUID]*ledger.Stock {
	out := make(map[uuid.UUID]*ledger.Stock, len(ids))

	for _, id := range ids {
		item, ok := s.items[id]
		if !ok {
			continue
		}

		out[id] = &ledger.Stock{Item: item, Quantity: s.onHand[id]}
	}

	return out
}

type memTx struct {
	store *memStore
	state *memState
	done  bool
}

func (t *memTx) Commit() error {
	if t.done {
		return fmt.Errorf("tx already closed")
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	t.store.state = t.state
	t.done = true

	return nil
}

func (t *memTx) Rollback() error {
	t.done = true
	return nil
}

func (t *memTx) NextSequence(_ context.Context, prefix string, day time.Time) (int64, error) {
	t.state.seq[seqKey(prefix, day)]++
	return t.state.seq[seqKey(prefix, day)], nil
}

func (t *memTx) PeekSequence(_ context.Context, prefix string, day time.Time) (int64, error) {
	return t.state.seq[seqKey(prefix, day)], nil
}

func (t *memTx) ClaimSequence(_ context.Context, prefix string, day time.Time, n int64) error {
	t.state.seq[seqKey(prefix, day)] = max(t.state.seq[seqKey(prefix, day)], n)
	return nil
}

func (t *memTx) LockStock(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*ledger.Stock, error) {
	return stockOf(t.state, ids), nil
}

func (t *memTx) InsertTransaction(_ context.Context, tr *ledger.Transaction) error {
	for _, existing := range t.state.txs {
		if existing.ReferenceNumber == tr.ReferenceNumber {
			return ledger.ErrDuplicateReference
		}
	}

	t.state.txs = append(t.state.txs, tr)

	return nil
}

func (t *memTx) InsertLines(_ context.Context, lines []*ledger.Line) error {
	t.state.lines = append(t.state.lines, lines...)
	return nil
}

func (t *memTx) ApplyDelta(_ context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	next := t.state.onHand[id].Add(delta)
	if next.IsNegative() {
		return decimal.Zero, fmt.Errorf("check violation on %s", id)
	}

	t.state.onHand[id] = next

	return next, nil
}

func (t *memTx) InsertBackorders(_ context.Context, bos []*ledger.Backorder) error {
	for _, b := range bos {
		t.state.backorders[b.ID] = b
	}

	return nil
}

func (t *memTx) LockBackorder(_ context.Context, id uuid.UUID) (*ledger.Backorder, error) {
	b, ok := t.state.backorders[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	cp := *b

	return &cp, nil
}

func (t *memTx) UpdateBackorder(_ context.Context, b *ledger.Backorder) error {
	cp := *b
	t.state.backorders[b.ID] = &cp

	return nil
}
