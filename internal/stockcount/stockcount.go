// Package stockcount runs physical inventory counts: it snapshots system
// quantities, records counted quantities and posts the differences to the
// ledger as adjustments.
package stockcount

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidCount      = errors.New("invalid stock count")
	ErrDuplicatePeriod   = errors.New("an end-of-month count already exists for this period")
	ErrNoItems           = errors.New("no active items to count")
	ErrCountClosed       = errors.New("stock count no longer accepts entries")
	ErrUncountedLines    = errors.New("stock count has uncounted lines")
	ErrInvalidTransition = errors.New("invalid stock count status transition")
	ErrNotCompleted      = errors.New("stock count is not completed")
	ErrNothingToResolve  = errors.New("line has no variance awaiting review")
)

const periodLayout = "2006-01"

type Type string

const (
	TypeEndOfMonth Type = "EOM"
	TypeCycle      Type = "CYCLE"
	TypeAdHoc      Type = "ADHOC"
)

func (t Type) Valid() bool {
	return t == TypeEndOfMonth || t == TypeCycle || t == TypeAdHoc
}

type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusPosted     Status = "POSTED"
)

// Open reports whether the count still accepts counted quantities.
func (s Status) Open() bool {
	return s == StatusDraft || s == StatusInProgress
}

type LineStatus string

const (
	LinePending    LineStatus = "PENDING"
	LineMatched    LineStatus = "MATCHED"
	LineDifference LineStatus = "DIFFERENCE"
)

type Count struct {
	ID          uuid.UUID
	Type        Type
	CountDate   time.Time
	Period      string
	Status      Status
	Notes       string
	CreatedBy   string
	PostedBy    string
	CreatedAt   time.Time
	CompletedAt *time.Time
	PostedAt    *time.Time
	Lines       []*Line
}

// Line returns the count line with the given id, or nil.
func (c *Count) Line(id uuid.UUID) *Line {
	for _, l := range c.Lines {
		if l.ID == id {
			return l
		}
	}

	return nil
}

// Uncounted returns the number of lines still PENDING.
func (c *Count) Uncounted() int {
	n := 0

	for _, l := range c.Lines {
		if l.CountedQuantity == nil {
			n++
		}
	}

	return n
}

// Line is one item on a count. SystemQuantity is the balance captured when the
// count was created and never changes afterwards.
type Line struct {
	ID              uuid.UUID
	CountID         uuid.UUID
	ItemID          uuid.UUID
	ItemCode        string
	UnitCost        decimal.Decimal
	SystemQuantity  decimal.Decimal
	CountedQuantity *decimal.Decimal
	Discrepancy     decimal.Decimal
	Status          LineStatus
	ReviewRequired  bool
	UpdatedAt       time.Time
}

// Record stores a counted quantity and reclassifies the line.
func (l *Line) Record(counted decimal.Decimal, at time.Time) {
	l.CountedQuantity = &counted
	l.Discrepancy = counted.Sub(l.SystemQuantity)
	l.UpdatedAt = at

	if l.Discrepancy.IsZero() {
		l.Status = LineMatched
	} else {
		l.Status = LineDifference
	}
}

// Adjustment links a count line to the ledger transaction that settled it.
type Adjustment struct {
	ID            uuid.UUID
	CountID       uuid.UUID
	LineID        uuid.UUID
	TransactionID uuid.UUID
	Reference     string
	Quantity      decimal.Decimal
	Automatic     bool
	CreatedBy     string
	CreatedAt     time.Time
}

type PostResult struct {
	Count       *Count
	Adjustments []*Adjustment
	Flagged     []*Line
}

type VarianceLine struct {
	LineID      uuid.UUID
	ItemID      uuid.UUID
	ItemCode    string
	Discrepancy decimal.Decimal
	UnitCost    decimal.Decimal
	Value       decimal.Decimal
}

// Variance is the monetary size of a count's discrepancies, for display only.
type Variance struct {
	CountID uuid.UUID
	Lines   []VarianceLine
	Total   decimal.Decimal
}

// Snapshot is an active item with its current balance, used to seed count lines.
type Snapshot struct {
	ItemID   uuid.UUID
	ItemCode string
	UnitCost decimal.Decimal
	Quantity decimal.Decimal
}
