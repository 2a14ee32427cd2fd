package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Notice is the payload of the post-commit ledger event.
type Notice struct {
	TransactionID     uuid.UUID    `json:"transaction_id"`
	Type              Type         `json:"type"`
	ReferenceNumber   string       `json:"reference_number"`
	CounterpartyID    *uuid.UUID   `json:"counterparty_id,omitempty"`
	ItemCount         int          `json:"item_count"`
	ActorID           string       `json:"actor_id"`
	Timestamp         time.Time    `json:"timestamp"`
	InsufficientStock bool         `json:"insufficient_stock,omitempty"`
	Changes           []ItemChange `json:"changes,omitempty"`
	BelowReorder      []string     `json:"below_reorder,omitempty"`
}

// ItemChange is the before/after balance of one adjusted item.
type ItemChange struct {
	ItemID   uuid.UUID       `json:"item_id"`
	ItemCode string          `json:"item_code"`
	Before   decimal.Decimal `json:"before"`
	After    decimal.Decimal `json:"after"`
}

func newNotice(t *Transaction, stock map[uuid.UUID]*Stock) Notice {
	n := Notice{
		TransactionID:     t.ID,
		Type:              t.Type,
		ReferenceNumber:   t.ReferenceNumber,
		CounterpartyID:    t.CounterpartyID,
		ItemCount:         len(t.Lines),
		ActorID:           t.ActorID,
		Timestamp:         t.CreatedAt,
		InsufficientStock: t.InsufficientStock,
	}

	for _, l := range t.Lines {
		st := stock[l.ItemID]

		if t.Type == TypeAdjustment {
			n.Changes = append(n.Changes, ItemChange{
				ItemID:   l.ItemID,
				ItemCode: st.Item.Code,
				Before:   l.PreviousQuantity,
				After:    st.Quantity,
			})
		}

		if l.Quantity.IsNegative() && st.Item.ReorderLevel.IsPositive() &&
			st.Quantity.LessThanOrEqual(st.Item.ReorderLevel) {
			n.BelowReorder = append(n.BelowReorder, st.Item.Code)
		}
	}

	return n
}
