package ledger

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=ledger

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/http/auth"
	"github.com/MrJamesThe3rd/stockroom/internal/http/respond"
	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

type Service interface {
	Process(ctx context.Context, params ledger.ProcessParams) (*ledger.Result, error)
	CheckStock(ctx context.Context, lines []ledger.LineParams) ([]ledger.Shortage, error)
	NextReference(ctx context.Context, t ledger.Type, date time.Time) (string, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	ListTransactions(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error)
	GetBalance(ctx context.Context, itemID uuid.UUID) (*ledger.Balance, error)
	ListBalances(ctx context.Context) ([]*ledger.Balance, error)
	ListBackorders(ctx context.Context, filter ledger.BackorderFilter) ([]*ledger.Backorder, error)
	FulfillBackorder(ctx context.Context, id uuid.UUID, actorID string) (*ledger.Result, error)
	CancelBackorder(ctx context.Context, id uuid.UUID, actorID string) (*ledger.Backorder, error)
	Audit(ctx context.Context) ([]ledger.Drift, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.process)
		r.Get("/", h.list)
		r.Post("/check", h.check)
		r.Get("/{id}", h.get)
	})

	r.Get("/reference-numbers/next", h.nextReference)

	r.Get("/balances", h.balances)
	r.Get("/balances/{itemID}", h.balance)
	r.Get("/ledger/audit", h.audit)

	r.Route("/backorders", func(r chi.Router) {
		r.Get("/", h.backorders)
		r.Post("/{id}/fulfill", h.fulfill)
		r.Post("/{id}/cancel", h.cancel)
	})
}

type lineRequest struct {
	ItemID   uuid.UUID       `json:"item_id" validate:"uuid_required"`
	Quantity decimal.Decimal `json:"quantity" validate:"gte=0"`
	UnitCost decimal.Decimal `json:"unit_cost" validate:"gte=0"`
	Notes    string          `json:"notes"`
}

type processRequest struct {
	Type             ledger.Type   `json:"type" validate:"required,oneof=ISSUE RECEIVE ADJUSTMENT BACKORDER"`
	CounterpartyID   *uuid.UUID    `json:"counterparty_id"`
	Date             *time.Time    `json:"date"`
	ReferenceNumber  string        `json:"reference_number" validate:"omitempty,max=32"`
	Notes            string        `json:"notes"`
	ConfirmBackorder bool          `json:"confirm_backorder"`
	Lines            []lineRequest `json:"lines" validate:"required,min=1,dive"`
}

func toLineParams(lines []lineRequest) []ledger.LineParams {
	out := make([]ledger.LineParams, len(lines))
	for i, l := range lines {
		out[i] = ledger.LineParams{ItemID: l.ItemID, Quantity: l.Quantity, UnitCost: l.UnitCost, Notes: l.Notes}
	}

	return out
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := ledger.ProcessParams{
		Type:             req.Type,
		CounterpartyID:   req.CounterpartyID,
		Lines:            toLineParams(req.Lines),
		ReferenceNumber:  req.ReferenceNumber,
		Notes:            req.Notes,
		ActorID:          auth.Actor(r.Context()),
		ConfirmBackorder: req.ConfirmBackorder,
	}

	if req.Date != nil {
		params.Date = *req.Date
	}

	res, err := h.svc.Process(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResultResponse(res))
}

type checkRequest struct {
	Lines []lineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	shortages, err := h.svc.CheckStock(r.Context(), toLineParams(req.Lines))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, checkResponse{
		Sufficient: len(shortages) == 0,
		Shortages:  toShortageResponses(shortages),
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(ledger.Type(s))
	}

	if s := r.URL.Query().Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.From = new(t)
		}
	}

	if s := r.URL.Query().Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.To = new(t)
		}
	}

	if s := r.URL.Query().Get("item_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ItemID = new(id)
		}
	}

	txs, err := h.svc.ListTransactions(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTransactionResponses(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.GetTransaction(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTransactionResponse(tx))
}

func (h *Handler) nextReference(w http.ResponseWriter, r *http.Request) {
	t := ledger.Type(r.URL.Query().Get("type"))

	var date time.Time

	if s := r.URL.Query().Get("date"); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		date = d
	}

	ref, err := h.svc.NextReference(r.Context(), t, date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, referenceResponse{Type: t, ReferenceNumber: ref})
}

func (h *Handler) balances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.svc.ListBalances(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if r.URL.Query().Get("below_reorder") == "true" {
		filtered := balances[:0]

		for _, b := range balances {
			if b.BelowReorder() {
				filtered = append(filtered, b)
			}
		}

		balances = filtered
	}

	resp := make([]balanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = toBalanceResponse(b)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.GetBalance(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBalanceResponse(b))
}

func (h *Handler) audit(w http.ResponseWriter, r *http.Request) {
	drift, err := h.svc.Audit(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := auditResponse{Consistent: len(drift) == 0, Drift: make([]driftResponse, len(drift))}
	for i, d := range drift {
		resp.Drift[i] = driftResponse{ItemID: d.ItemID, ItemCode: d.ItemCode, OnHand: d.OnHand, LedgerTotal: d.LedgerTotal}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) backorders(w http.ResponseWriter, r *http.Request) {
	filter := ledger.BackorderFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(ledger.BackorderStatus(s))
	}

	if s := r.URL.Query().Get("item_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ItemID = new(id)
		}
	}

	bos, err := h.svc.ListBackorders(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBackorderResponses(bos))
}

func (h *Handler) fulfill(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.FulfillBackorder(r.Context(), id, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResultResponse(res))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	bo, err := h.svc.CancelBackorder(r.Context(), id, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBackorderResponse(bo))
}
