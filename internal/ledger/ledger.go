package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidLine        = errors.New("invalid transaction line")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrPersistence        = errors.New("ledger persistence failure")
	ErrDuplicateReference = errors.New("reference number already used")
	ErrBackorderClosed    = errors.New("backorder is no longer pending")
)

// Type is the kind of business transaction recorded in the ledger.
type Type string

const (
	TypeIssue      Type = "ISSUE"
	TypeReceive    Type = "RECEIVE"
	TypeAdjustment Type = "ADJUSTMENT"
	TypeBackorder  Type = "BACKORDER"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIssue, TypeReceive, TypeAdjustment, TypeBackorder:
		return true
	}

	return false
}

// Outbound reports whether the type removes stock.
func (t Type) Outbound() bool {
	return t == TypeIssue || t == TypeBackorder
}

// Status of a ledger transaction. Transactions are created complete or not at all.
type Status string

const StatusCompleted Status = "COMPLETED"

type BackorderStatus string

const (
	BackorderPending   BackorderStatus = "PENDING"
	BackorderFulfilled BackorderStatus = "FULFILLED"
	BackorderCancelled BackorderStatus = "CANCELLED"
)

// Item is a stock-keeping unit.
type Item struct {
	ID           uuid.UUID
	Code         string
	Description  string
	BaseUOM      string
	UnitCost     decimal.Decimal
	ReorderLevel decimal.Decimal
	Active       bool
}

// Stock is an item together with its locked on-hand quantity.
type Stock struct {
	Item     Item
	Quantity decimal.Decimal
}

// Balance is the on-hand quantity of an item.
type Balance struct {
	ItemID       uuid.UUID
	ItemCode     string
	Quantity     decimal.Decimal
	ReorderLevel decimal.Decimal
	UpdatedAt    time.Time
}

// BelowReorder reports whether on-hand has dropped to the reorder level or below.
func (b *Balance) BelowReorder() bool {
	return b.ReorderLevel.IsPositive() && b.Quantity.LessThanOrEqual(b.ReorderLevel)
}

// Transaction is an append-only ledger header.
type Transaction struct {
	ID                uuid.UUID
	Type              Type
	Date              time.Time
	CounterpartyID    *uuid.UUID // department, or supplier for RECEIVE
	ReferenceNumber   string
	Notes             string
	Status            Status
	InsufficientStock bool
	ActorID           string
	CreatedAt         time.Time
	Lines             []*Line // Loaded separately
}

// Line carries the signed quantity applied to the item's balance.
type Line struct {
	ID               uuid.UUID
	TransactionID    uuid.UUID
	ItemID           uuid.UUID
	Quantity         decimal.Decimal
	UnitCost         decimal.Decimal
	PreviousQuantity decimal.Decimal
	NewQuantity      decimal.Decimal
	Notes            string
}

// Backorder records the part of an issue request that could not be served.
type Backorder struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	DepartmentID  *uuid.UUID
	Quantity      decimal.Decimal
	Status        BackorderStatus
	Notes         string
	TransactionID uuid.UUID
	FulfilledBy   *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Shortage is the gap between requested and on-hand quantity for one item.
type Shortage struct {
	ItemID    uuid.UUID
	ItemCode  string
	Requested decimal.Decimal
	Available decimal.Decimal
	Shortage  decimal.Decimal
}

// InsufficientStockError carries the shortage set of a blocked issue so the
// caller can either cancel or resubmit with backorder confirmation.
type InsufficientStockError struct {
	Shortages []Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		parts[i] = fmt.Sprintf("%s short by %s", s.ItemCode, s.Shortage)
	}

	return fmt.Sprintf("insufficient stock: %s", strings.Join(parts, ", "))
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Drift is an item whose balance disagrees with the sum of its ledger lines.
type Drift struct {
	ItemID      uuid.UUID
	ItemCode    string
	OnHand      decimal.Decimal
	LedgerTotal decimal.Decimal
}
