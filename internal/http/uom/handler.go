package uom

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=uom

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/http/respond"
	"github.com/MrJamesThe3rd/stockroom/internal/uom"
)

type Service interface {
	AddConversion(ctx context.Context, params uom.AddParams) (*uom.Conversion, error)
	ListConversions(ctx context.Context, itemID uuid.UUID) ([]*uom.Conversion, error)
	Convert(ctx context.Context, itemID uuid.UUID, qty decimal.Decimal, from, to string) (decimal.Decimal, error)
	ValidateChain(ctx context.Context, itemID uuid.UUID, units []string) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/convert", h.convert)
	r.Post("/validate-chain", h.validateChain)
	r.Get("/conversions", h.list)
	r.Post("/conversions", h.add)
}

type convertRequest struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity" validate:"gte=0"`
	From     string          `json:"from" validate:"required"`
	To       string          `json:"to" validate:"required"`
}

type convertResponse struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	qty, err := h.svc.Convert(r.Context(), req.ItemID, req.Quantity, req.From, req.To)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, convertResponse{ItemID: req.ItemID, Quantity: qty, Unit: req.To})
}

type validateChainRequest struct {
	ItemID uuid.UUID `json:"item_id"`
	Units  []string  `json:"units" validate:"required,min=2,dive,required"`
}

type validateChainResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func (h *Handler) validateChain(w http.ResponseWriter, r *http.Request) {
	var req validateChainRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	err := h.svc.ValidateChain(r.Context(), req.ItemID, req.Units)
	if errors.Is(err, uom.ErrNoConversion) {
		respond.JSON(w, http.StatusOK, validateChainResponse{Valid: false, Reason: err.Error()})
		return
	}

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, validateChainResponse{Valid: true})
}

type conversionResponse struct {
	ID      uuid.UUID       `json:"id"`
	ItemID  *uuid.UUID      `json:"item_id,omitempty"`
	FromUOM string          `json:"from_uom"`
	ToUOM   string          `json:"to_uom"`
	Factor  decimal.Decimal `json:"factor"`
	Global  bool            `json:"global"`
}

func toConversionResponse(c *uom.Conversion) conversionResponse {
	return conversionResponse{
		ID:      c.ID,
		ItemID:  c.ItemID,
		FromUOM: c.FromUOM,
		ToUOM:   c.ToUOM,
		Factor:  c.Factor,
		Global:  c.Global(),
	}
}

// list returns global conversions, plus item-specific ones when item_id is given.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var itemID uuid.UUID

	if s := r.URL.Query().Get("item_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid item id", http.StatusBadRequest)
			return
		}

		itemID = id
	}

	convs, err := h.svc.ListConversions(r.Context(), itemID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]conversionResponse, len(convs))
	for i, c := range convs {
		resp[i] = toConversionResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type addRequest struct {
	ItemID  *uuid.UUID      `json:"item_id"`
	FromUOM string          `json:"from_uom" validate:"required"`
	ToUOM   string          `json:"to_uom" validate:"required"`
	Factor  decimal.Decimal `json:"factor" validate:"gt=0"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.AddConversion(r.Context(), uom.AddParams{
		ItemID:  req.ItemID,
		FromUOM: req.FromUOM,
		ToUOM:   req.ToUOM,
		Factor:  req.Factor,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toConversionResponse(c))
}
