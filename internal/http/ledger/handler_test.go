package ledger

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stockroom/internal/http/auth"
	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
)

func newServer(t *testing.T) (*MockService, http.Handler) {
	t.Helper()

	svc := NewMockService(gomock.NewController(t))

	r := chi.NewRouter()
	r.Use(auth.Middleware(""))
	NewHandler(svc).Routes(r)

	return svc, r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.ActorHeader, "clerk-1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestProcess_Created(t *testing.T) {
	svc, srv := newServer(t)

	itemID := uuid.New()
	txID := uuid.New()

	svc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p ledger.ProcessParams) (*ledger.Result, error) {
			assert.Equal(t, ledger.TypeReceive, p.Type)
			assert.Equal(t, "clerk-1", p.ActorID)
			require.Len(t, p.Lines, 1)
			assert.Equal(t, itemID, p.Lines[0].ItemID)
			assert.True(t, decimal.NewFromInt(50).Equal(p.Lines[0].Quantity))

			return &ledger.Result{
				TransactionID:   txID,
				ReferenceNumber: "REC-202503140001",
				Transaction: &ledger.Transaction{
					ID:              txID,
					Type:            ledger.TypeReceive,
					ReferenceNumber: "REC-202503140001",
					Status:          ledger.StatusCompleted,
					Lines: []*ledger.Line{{
						ItemID:      itemID,
						Quantity:    decimal.NewFromInt(50),
						NewQuantity: decimal.NewFromInt(50),
					}},
				},
			}, nil
		})

	body := fmt.Sprintf(`{"type":"RECEIVE","lines":[{"item_id":"%s","quantity":50}]}`, itemID)
	rec := do(srv, http.MethodPost, "/transactions", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got resultResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "REC-202503140001", got.ReferenceNumber)
	assert.Equal(t, ledger.StatusCompleted, got.Transaction.Status)
	require.Len(t, got.Transaction.Lines, 1)
	assert.True(t, decimal.NewFromInt(50).Equal(got.Transaction.Lines[0].NewQuantity))
}

func TestProcess_Errors(t *testing.T) {
	itemID := uuid.New()
	valid := fmt.Sprintf(`{"type":"ISSUE","lines":[{"item_id":"%s","quantity":10}]}`, itemID)

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown type",
			body:       fmt.Sprintf(`{"type":"SELL","lines":[{"item_id":"%s","quantity":1}]}`, itemID),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no lines",
			body:       `{"type":"ISSUE","lines":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "insufficient stock",
			body: valid,
			svcErr: &ledger.InsufficientStockError{Shortages: []ledger.Shortage{{
				ItemID:    itemID,
				ItemCode:  "BOLT-M8",
				Requested: decimal.NewFromInt(10),
				Available: decimal.NewFromInt(4),
				Shortage:  decimal.NewFromInt(6),
			}}},
			wantStatus: http.StatusConflict,
			wantBody:   `"shortages"`,
		},
		{
			name:       "invalid line from service",
			body:       valid,
			svcErr:     fmt.Errorf("%w: item is inactive", ledger.ErrInvalidLine),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "persistence",
			body:       valid,
			svcErr:     fmt.Errorf("%w: connection reset", ledger.ErrPersistence),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, srv := newServer(t)

			if tt.svcErr != nil {
				svc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil, tt.svcErr)
			}

			rec := do(srv, http.MethodPost, "/transactions", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestProcess_RequiresActor(t *testing.T) {
	_, srv := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheck(t *testing.T) {
	svc, srv := newServer(t)

	itemID := uuid.New()
	svc.EXPECT().CheckStock(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, lines []ledger.LineParams) ([]ledger.Shortage, error) {
			require.Len(t, lines, 1)
			assert.Equal(t, itemID, lines[0].ItemID)
			assert.True(t, decimal.NewFromInt(3).Equal(lines[0].Quantity))

			return nil, nil
		})

	rec := do(srv, http.MethodPost, "/transactions/check", fmt.Sprintf(`{"lines":[{"item_id":"%s","quantity":"3"}]}`, itemID))

	require.Equal(t, http.StatusOK, rec.Code)

	var got checkResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.True(t, got.Sufficient)
	assert.Empty(t, got.Shortages)
}

func TestNextReference(t *testing.T) {
	svc, srv := newServer(t)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().NextReference(gomock.Any(), ledger.TypeIssue, date).Return("ISU-202503140004", nil)

	rec := do(srv, http.MethodGet, "/reference-numbers/next?type=ISSUE&date=2025-03-14", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference_number":"ISU-202503140004"`)

	rec = do(srv, http.MethodGet, "/reference-numbers/next?type=ISSUE&date=14/03/2025", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_Filters(t *testing.T) {
	svc, srv := newServer(t)

	itemID := uuid.New()

	svc.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, f ledger.ListFilter) ([]*ledger.Transaction, error) {
			require.NotNil(t, f.Type)
			assert.Equal(t, ledger.TypeAdjustment, *f.Type)
			require.NotNil(t, f.From)
			assert.Equal(t, 2025, f.From.Year())
			assert.Nil(t, f.To)
			require.NotNil(t, f.ItemID)
			assert.Equal(t, itemID, *f.ItemID)

			return []*ledger.Transaction{{ID: uuid.New(), Type: ledger.TypeAdjustment}}, nil
		})

	rec := do(srv, http.MethodGet, "/transactions?type=ADJUSTMENT&from=2025-03-01&to=bad&item_id="+itemID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []transactionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestGet(t *testing.T) {
	svc, srv := newServer(t)

	id := uuid.New()
	svc.EXPECT().GetTransaction(gomock.Any(), id).Return(nil, ledger.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, do(srv, http.MethodGet, "/transactions/"+id.String(), "").Code)
	assert.Equal(t, http.StatusBadRequest, do(srv, http.MethodGet, "/transactions/nope", "").Code)
}

func TestBalances_BelowReorder(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().ListBalances(gomock.Any()).Return([]*ledger.Balance{
		{ItemID: uuid.New(), ItemCode: "A", Quantity: decimal.NewFromInt(3), ReorderLevel: decimal.NewFromInt(5)},
		{ItemID: uuid.New(), ItemCode: "B", Quantity: decimal.NewFromInt(30), ReorderLevel: decimal.NewFromInt(5)},
		{ItemID: uuid.New(), ItemCode: "C", Quantity: decimal.Zero},
	}, nil)

	rec := do(srv, http.MethodGet, "/balances?below_reorder=true", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []balanceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].ItemCode)
	assert.True(t, got[0].BelowReorder)
}

func TestAudit(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().Audit(gomock.Any()).Return([]ledger.Drift{{
		ItemCode:    "BOLT-M8",
		OnHand:      decimal.NewFromInt(10),
		LedgerTotal: decimal.NewFromInt(12),
	}}, nil)

	rec := do(srv, http.MethodGet, "/ledger/audit", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got auditResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.False(t, got.Consistent)
	require.Len(t, got.Drift, 1)
	assert.Equal(t, "BOLT-M8", got.Drift[0].ItemCode)
}

func TestBackorders(t *testing.T) {
	svc, srv := newServer(t)

	id := uuid.New()

	svc.EXPECT().ListBackorders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, f ledger.BackorderFilter) ([]*ledger.Backorder, error) {
			require.NotNil(t, f.Status)
			assert.Equal(t, ledger.BackorderPending, *f.Status)

			return []*ledger.Backorder{{ID: id, Status: ledger.BackorderPending}}, nil
		})
	svc.EXPECT().FulfillBackorder(gomock.Any(), id, "clerk-1").
		Return(nil, fmt.Errorf("%w: FULFILLED", ledger.ErrBackorderClosed))
	svc.EXPECT().CancelBackorder(gomock.Any(), id, "clerk-1").
		Return(&ledger.Backorder{ID: id, Status: ledger.BackorderCancelled}, nil)

	rec := do(srv, http.MethodGet, "/backorders?status=PENDING", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(srv, http.MethodPost, "/backorders/"+id.String()+"/fulfill", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(srv, http.MethodPost, "/backorders/"+id.String()+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CANCELLED"`)
}
