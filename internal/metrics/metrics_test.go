package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New("test")

	m.ObserveTransaction("ISSUE", 3)
	m.ObserveTransaction("ISSUE", 2)
	m.ObserveShortage()
	m.ObserveNotification(nil)
	m.ObserveNotification(errors.New("boom"))
	m.ObservePosting(4, 1)
	m.ObserveResolution()

	assert.InDelta(t, 2, testutil.ToFloat64(m.TransactionsTotal.WithLabelValues("ISSUE")), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.TransactionLines.WithLabelValues("ISSUE")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ShortagesTotal), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CountsPostedTotal), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.CountAdjustments.WithLabelValues("automatic")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CountAdjustments.WithLabelValues("manual")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CountLinesFlagged), 0)
}

func TestMiddleware(t *testing.T) {
	m := New("test")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/items/{id}", "418")), 0)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "test_http_requests_total")
}
