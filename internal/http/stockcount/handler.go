package stockcount

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=stockcount

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/http/auth"
	"github.com/MrJamesThe3rd/stockroom/internal/http/respond"
	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
)

type Service interface {
	Create(ctx context.Context, params stockcount.CreateParams) (*stockcount.Count, error)
	Get(ctx context.Context, id uuid.UUID) (*stockcount.Count, error)
	List(ctx context.Context, filter stockcount.ListFilter) ([]*stockcount.Count, error)
	UpdateLine(ctx context.Context, lineID uuid.UUID, counted decimal.Decimal) (*stockcount.Line, error)
	Complete(ctx context.Context, countID uuid.UUID, actorID string) (*stockcount.Count, error)
	Post(ctx context.Context, params stockcount.PostParams) (*stockcount.PostResult, error)
	ResolveLine(ctx context.Context, lineID uuid.UUID, actorID string) (*stockcount.Adjustment, error)
	Variance(ctx context.Context, countID uuid.UUID) (*stockcount.Variance, error)
}

type Handler struct {
	svc Service
	// threshold applies when a post request does not carry its own.
	threshold decimal.Decimal
}

func NewHandler(svc Service, threshold decimal.Decimal) *Handler {
	return &Handler{svc: svc, threshold: threshold}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/complete", h.complete)
	r.Post("/{id}/post", h.post)
	r.Get("/{id}/variance", h.variance)
	r.Patch("/lines/{lineID}", h.updateLine)
	r.Post("/lines/{lineID}/resolve", h.resolve)
}

type createRequest struct {
	Type      stockcount.Type `json:"type" validate:"required,oneof=EOM CYCLE ADHOC"`
	CountDate *time.Time      `json:"count_date"`
	Period    string          `json:"period" validate:"omitempty,len=7"`
	Notes     string          `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := stockcount.CreateParams{
		Type:    req.Type,
		Period:  req.Period,
		ActorID: auth.Actor(r.Context()),
		Notes:   req.Notes,
	}

	if req.CountDate != nil {
		params.CountDate = *req.CountDate
	}

	c, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toCountResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := stockcount.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(stockcount.Status(s))
	}

	if s := r.URL.Query().Get("type"); s != "" {
		filter.Type = new(stockcount.Type(s))
	}

	counts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]countResponse, len(counts))
	for i, c := range counts {
		resp[i] = toCountResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toCountResponse(c))
}

type updateLineRequest struct {
	CountedQuantity decimal.Decimal `json:"counted_quantity" validate:"gte=0"`
}

func (h *Handler) updateLine(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "lineID"))
	if err != nil {
		http.Error(w, "invalid line id", http.StatusBadRequest)
		return
	}

	var req updateLineRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := h.svc.UpdateLine(r.Context(), lineID, req.CountedQuantity)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLineResponse(l))
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Complete(r.Context(), id, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toCountResponse(c))
}

type postRequest struct {
	Threshold *decimal.Decimal `json:"threshold"`
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req postRequest
	if err := respond.DecodeOptional(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	threshold := h.threshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	res, err := h.svc.Post(r.Context(), stockcount.PostParams{
		CountID:   id,
		Threshold: threshold,
		ActorID:   auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPostResponse(res))
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	lineID, err := uuid.Parse(chi.URLParam(r, "lineID"))
	if err != nil {
		http.Error(w, "invalid line id", http.StatusBadRequest)
		return
	}

	adj, err := h.svc.ResolveLine(r.Context(), lineID, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toAdjustmentResponse(adj))
}

func (h *Handler) variance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	v, err := h.svc.Variance(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toVarianceResponse(v))
}
