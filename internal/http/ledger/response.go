package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

type lineResponse struct {
	ID               uuid.UUID       `json:"id"`
	ItemID           uuid.UUID       `json:"item_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Notes            string          `json:"notes,omitempty"`
}

type transactionResponse struct {
	ID                uuid.UUID      `json:"id"`
	Type              ledger.Type    `json:"type"`
	Date              time.Time      `json:"date"`
	CounterpartyID    *uuid.UUID     `json:"counterparty_id,omitempty"`
	ReferenceNumber   string         `json:"reference_number"`
	Notes             string         `json:"notes,omitempty"`
	Status            ledger.Status  `json:"status"`
	InsufficientStock bool           `json:"insufficient_stock"`
	ActorID           string         `json:"actor_id"`
	CreatedAt         time.Time      `json:"created_at"`
	Lines             []lineResponse `json:"lines,omitempty"`
}

type backorderResponse struct {
	ID            uuid.UUID              `json:"id"`
	ItemID        uuid.UUID              `json:"item_id"`
	DepartmentID  *uuid.UUID             `json:"department_id,omitempty"`
	Quantity      decimal.Decimal        `json:"quantity"`
	Status        ledger.BackorderStatus `json:"status"`
	Notes         string                 `json:"notes,omitempty"`
	TransactionID uuid.UUID              `json:"transaction_id"`
	FulfilledBy   *uuid.UUID             `json:"fulfilled_by,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type resultResponse struct {
	TransactionID   uuid.UUID           `json:"transaction_id"`
	ReferenceNumber string              `json:"reference_number"`
	Transaction     transactionResponse `json:"transaction"`
	Backorders      []backorderResponse `json:"backorders,omitempty"`
}

type shortageResponse struct {
	ItemID    uuid.UUID       `json:"item_id"`
	ItemCode  string          `json:"item_code"`
	Requested decimal.Decimal `json:"requested"`
	Available decimal.Decimal `json:"available"`
	Shortage  decimal.Decimal `json:"shortage"`
}

type checkResponse struct {
	Sufficient bool               `json:"sufficient"`
	Shortages  []shortageResponse `json:"shortages"`
}

type referenceResponse struct {
	Type            ledger.Type `json:"type"`
	ReferenceNumber string      `json:"reference_number"`
}

type balanceResponse struct {
	ItemID       uuid.UUID       `json:"item_id"`
	ItemCode     string          `json:"item_code"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	BelowReorder bool            `json:"below_reorder"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type driftResponse struct {
	ItemID      uuid.UUID       `json:"item_id"`
	ItemCode    string          `json:"item_code"`
	OnHand      decimal.Decimal `json:"on_hand"`
	LedgerTotal decimal.Decimal `json:"ledger_total"`
}

type auditResponse struct {
	Consistent bool            `json:"consistent"`
	Drift      []driftResponse `json:"drift"`
}

func toTransactionResponse(tx *ledger.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:                tx.ID,
		Type:              tx.Type,
		Date:              tx.Date,
		CounterpartyID:    tx.CounterpartyID,
		ReferenceNumber:   tx.ReferenceNumber,
		Notes:             tx.Notes,
		Status:            tx.Status,
		InsufficientStock: tx.InsufficientStock,
		ActorID:           tx.ActorID,
		CreatedAt:         tx.CreatedAt,
	}

	for _, l := range tx.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			ID:               l.ID,
			ItemID:           l.ItemID,
			Quantity:         l.Quantity,
			UnitCost:         l.UnitCost,
			PreviousQuantity: l.PreviousQuantity,
			NewQuantity:      l.NewQuantity,
			Notes:            l.Notes,
		})
	}

	return resp
}

func toTransactionResponses(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}

	return resp
}

func toBackorderResponse(b *ledger.Backorder) backorderResponse {
	return backorderResponse{
		ID:            b.ID,
		ItemID:        b.ItemID,
		DepartmentID:  b.DepartmentID,
		Quantity:      b.Quantity,
		Status:        b.Status,
		Notes:         b.Notes,
		TransactionID: b.TransactionID,
		FulfilledBy:   b.FulfilledBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toBackorderResponses(bos []*ledger.Backorder) []backorderResponse {
	resp := make([]backorderResponse, len(bos))
	for i, b := range bos {
		resp[i] = toBackorderResponse(b)
	}

	return resp
}

func toResultResponse(res *ledger.Result) resultResponse {
	resp := resultResponse{
		TransactionID:   res.TransactionID,
		ReferenceNumber: res.ReferenceNumber,
	}

	if res.Transaction != nil {
		resp.Transaction = toTransactionResponse(res.Transaction)
	}

	if len(res.Backorders) > 0 {
		resp.Backorders = toBackorderResponses(res.Backorders)
	}

	return resp
}

func toShortageResponses(shortages []ledger.Shortage) []shortageResponse {
	resp := make([]shortageResponse, len(shortages))
	for i, s := range shortages {
		resp[i] = shortageResponse(s)
	}

	return resp
}

func toBalanceResponse(b *ledger.Balance) balanceResponse {
	return balanceResponse{
		ItemID:       b.ItemID,
		ItemCode:     b.ItemCode,
		Quantity:     b.Quantity,
		ReorderLevel: b.ReorderLevel,
		BelowReorder: b.BelowReorder(),
		UpdatedAt:    b.UpdatedAt,
	}
}
