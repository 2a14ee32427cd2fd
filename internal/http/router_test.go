package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	stockroomHttp "github.com/MrJamesThe3rd/stockroom/internal/http"
	"github.com/MrJamesThe3rd/stockroom/internal/http/auth"
	"github.com/MrJamesThe3rd/stockroom/internal/http/ledger"
	"github.com/MrJamesThe3rd/stockroom/internal/http/stockcount"
	"github.com/MrJamesThe3rd/stockroom/internal/http/uom"
	"github.com/MrJamesThe3rd/stockroom/internal/metrics"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newRouter(t *testing.T, db stockroomHttp.Pinger) (*ledger.MockService, *metrics.Metrics, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ledgerSvc := ledger.NewMockService(ctrl)
	m := metrics.New("stockroom_test")

	h := stockroomHttp.New(
		stockroomHttp.Options{CORSOrigins: []string{"*"}, Metrics: m, DB: db},
		ledger.NewHandler(ledgerSvc),
		stockcount.NewHandler(stockcount.NewMockService(ctrl), decimal.Zero),
		uom.NewHandler(uom.NewMockService(ctrl)),
	)

	return ledgerSvc, m, h
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name string
		ping error
		want int
	}{
		{name: "up", want: http.StatusOK},
		{name: "down", ping: errors.New("connection refused"), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, h := newRouter(t, pingFunc(func(context.Context) error { return tt.ping }))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

type eventSink bool

func (s eventSink) Available() bool { return bool(s) }

func TestHealthz_ReportsEventSink(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		want      string
	}{
		{name: "available", available: true, want: `{"events":"available","status":"ok"}`},
		{name: "tripped", available: false, want: `{"events":"unavailable","status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			h := stockroomHttp.New(
				stockroomHttp.Options{Events: eventSink(tt.available)},
				ledger.NewHandler(ledger.NewMockService(ctrl)),
				stockcount.NewHandler(stockcount.NewMockService(ctrl), decimal.Zero),
				uom.NewHandler(uom.NewMockService(ctrl)),
			)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestAPI_RequiresActorAndJSON(t *testing.T) {
	_, _, h := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balances", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(`type=ISSUE`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(auth.ActorHeader, "clerk-1")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAPI_RecordsMetrics(t *testing.T) {
	ledgerSvc, _, h := newRouter(t, nil)

	ledgerSvc.EXPECT().ListBalances(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balances", nil)
	req.Header.Set(auth.ActorHeader, "clerk-1")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stockroom_test_http_requests_total{method="GET",path="/api/v1/balances",status="200"} 1`)
}
