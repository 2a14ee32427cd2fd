package uom

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoConversion  = errors.New("no conversion path")
	ErrInvalidFactor = errors.New("conversion factor must be positive")
	ErrInvalidUnit   = errors.New("unit of measure is required")
	ErrUnknownItem   = errors.New("item not found")
)

// Conversion is a directed edge: 1 FromUOM equals Factor ToUOM.
// A nil ItemID makes the edge global.
type Conversion struct {
	ID        uuid.UUID
	ItemID    *uuid.UUID
	FromUOM   string
	ToUOM     string
	Factor    decimal.Decimal
	CreatedAt time.Time
}

// Global reports whether the conversion applies to every item.
func (c *Conversion) Global() bool {
	return c.ItemID == nil
}
