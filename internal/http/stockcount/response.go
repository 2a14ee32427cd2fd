package stockcount

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
)

type lineResponse struct {
	ID              uuid.UUID             `json:"id"`
	ItemID          uuid.UUID             `json:"item_id"`
	ItemCode        string                `json:"item_code"`
	SystemQuantity  decimal.Decimal       `json:"system_quantity"`
	CountedQuantity *decimal.Decimal      `json:"counted_quantity"`
	Discrepancy     decimal.Decimal       `json:"discrepancy"`
	Status          stockcount.LineStatus `json:"status"`
	ReviewRequired  bool                  `json:"review_required"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type countResponse struct {
	ID          uuid.UUID         `json:"id"`
	Type        stockcount.Type   `json:"type"`
	CountDate   time.Time         `json:"count_date"`
	Period      string            `json:"period"`
	Status      stockcount.Status `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedBy   string            `json:"created_by"`
	PostedBy    string            `json:"posted_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	PostedAt    *time.Time        `json:"posted_at,omitempty"`
	Lines       []lineResponse    `json:"lines"`
}

type adjustmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	LineID          uuid.UUID       `json:"line_id"`
	TransactionID   uuid.UUID       `json:"transaction_id"`
	ReferenceNumber string          `json:"reference_number"`
	Quantity        decimal.Decimal `json:"quantity"`
	Automatic       bool            `json:"automatic"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

type postResponse struct {
	Count       countResponse        `json:"count"`
	Adjustments []adjustmentResponse `json:"adjustments"`
	Flagged     []lineResponse       `json:"flagged"`
}

type varianceLineResponse struct {
	LineID      uuid.UUID       `json:"line_id"`
	ItemID      uuid.UUID       `json:"item_id"`
	ItemCode    string          `json:"item_code"`
	Discrepancy decimal.Decimal `json:"discrepancy"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Value       decimal.Decimal `json:"value"`
}

type varianceResponse struct {
	CountID uuid.UUID              `json:"count_id"`
	Lines   []varianceLineResponse `json:"lines"`
	Total   decimal.Decimal        `json:"total"`
}

func toLineResponse(l *stockcount.Line) lineResponse {
	return lineResponse{
		ID:              l.ID,
		ItemID:          l.ItemID,
		ItemCode:        l.ItemCode,
		SystemQuantity:  l.SystemQuantity,
		CountedQuantity: l.CountedQuantity,
		Discrepancy:     l.Discrepancy,
		Status:          l.Status,
		ReviewRequired:  l.ReviewRequired,
		UpdatedAt:       l.UpdatedAt,
	}
}

func toLineResponses(lines []*stockcount.Line) []lineResponse {
	resp := make([]lineResponse, len(lines))
	for i, l := range lines {
		resp[i] = toLineResponse(l)
	}

	return resp
}

func toCountResponse(c *stockcount.Count) countResponse {
	return countResponse{
		ID:          c.ID,
		Type:        c.Type,
		CountDate:   c.CountDate,
		Period:      c.Period,
		Status:      c.Status,
		Notes:       c.Notes,
		CreatedBy:   c.CreatedBy,
		PostedBy:    c.PostedBy,
		CreatedAt:   c.CreatedAt,
		CompletedAt: c.CompletedAt,
		PostedAt:    c.PostedAt,
		Lines:       toLineResponses(c.Lines),
	}
}

func toAdjustmentResponse(a *stockcount.Adjustment) adjustmentResponse {
	return adjustmentResponse{
		ID:              a.ID,
		LineID:          a.LineID,
		TransactionID:   a.TransactionID,
		ReferenceNumber: a.Reference,
		Quantity:        a.Quantity,
		Automatic:       a.Automatic,
		CreatedBy:       a.CreatedBy,
		CreatedAt:       a.CreatedAt,
	}
}

func toPostResponse(res *stockcount.PostResult) postResponse {
	resp := postResponse{
		Count:       toCountResponse(res.Count),
		Adjustments: make([]adjustmentResponse, len(res.Adjustments)),
		Flagged:     toLineResponses(res.Flagged),
	}

	for i, a := range res.Adjustments {
		resp.Adjustments[i] = toAdjustmentResponse(a)
	}

	return resp
}

func toVarianceResponse(v *stockcount.Variance) varianceResponse {
	resp := varianceResponse{
		CountID: v.CountID,
		Lines:   make([]varianceLineResponse, len(v.Lines)),
		Total:   v.Total,
	}

	for i, l := range v.Lines {
		resp.Lines[i] = varianceLineResponse(l)
	}

	return resp
}
