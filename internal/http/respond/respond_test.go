package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/stockroom/internal/http/respond"
	"github.com/MrJamesThe3rd/stockroom/internal/ledger"
	"github.com/MrJamesThe3rd/stockroom/internal/stockcount"
	"github.com/MrJamesThe3rd/stockroom/internal/uom"
)

type lineRequest struct {
	ItemID   uuid.UUID       `json:"item_id" validate:"uuid_required"`
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0"`
}

type request struct {
	Type  string        `json:"type" validate:"required,oneof=ISSUE RECEIVE"`
	Lines []lineRequest `json:"lines" validate:"required,min=1,dive"`
}

func TestDecode(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{
			name: "valid",
			body: fmt.Sprintf(`{"type":"ISSUE","lines":[{"item_id":"%s","quantity":"2.5"}]}`, itemID),
		},
		{
			name:       "malformed json",
			body:       `{"type":`,
			wantFields: []string{"body"},
		},
		{
			name:       "unknown type",
			body:       fmt.Sprintf(`{"type":"SELL","lines":[{"item_id":"%s","quantity":"1"}]}`, itemID),
			wantFields: []string{"request.Type"},
		},
		{
			name:       "no lines",
			body:       `{"type":"ISSUE","lines":[]}`,
			wantFields: []string{"request.Lines"},
		},
		{
			name:       "nil item and zero quantity",
			body:       `{"type":"ISSUE","lines":[{"item_id":"00000000-0000-0000-0000-000000000000","quantity":"0"}]}`,
			wantFields: []string{"request.Lines[0].ItemID", "request.Lines[0].Quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got request
			err := respond.Decode(req, &got)

			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, itemID, got.Lines[0].ItemID)
				assert.True(t, decimal.RequireFromString("2.5").Equal(got.Lines[0].Quantity))

				return
			}

			var verr *respond.ValidationError
			require.ErrorAs(t, err, &verr)

			fields := make([]string, len(verr.Fields))
			for i, f := range verr.Fields {
				fields[i] = f.Field
			}

			assert.Equal(t, tt.wantFields, fields)
			assert.Equal(t, http.StatusBadRequest, respond.Status(err))
		})
	}
}

type optionalRequest struct {
	Threshold *decimal.Decimal `json:"threshold" validate:"omitempty"`
}

func TestDecodeOptional(t *testing.T) {
	t.Run("empty body of unknown length", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", io.NopCloser(strings.NewReader("")))
		require.EqualValues(t, -1, req.ContentLength)

		var got optionalRequest
		require.NoError(t, respond.DecodeOptional(req, &got))
		assert.Nil(t, got.Threshold)
	})

	t.Run("value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"threshold":"1.5"}`))

		var got optionalRequest
		require.NoError(t, respond.DecodeOptional(req, &got))
		require.NotNil(t, got.Threshold)
		assert.True(t, decimal.RequireFromString("1.5").Equal(*got.Threshold))
	})

	t.Run("truncated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"threshold":`))

		var got optionalRequest
		err := respond.DecodeOptional(req, &got)

		var verr *respond.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "body", verr.Fields[0].Field)
	})
}

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad", ledger.ErrInvalidLine), http.StatusBadRequest},
		{stockcount.ErrInvalidCount, http.StatusBadRequest},
		{uom.ErrInvalidFactor, http.StatusBadRequest},
		{ledger.ErrNotFound, http.StatusNotFound},
		{stockcount.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: 42", uom.ErrUnknownItem), http.StatusNotFound},
		{&ledger.InsufficientStockError{}, http.StatusConflict},
		{fmt.Errorf("%w: %w", ledger.ErrPersistence, ledger.ErrDuplicateReference), http.StatusConflict},
		{fmt.Errorf("%w: disk", ledger.ErrPersistence), http.StatusInternalServerError},
		{stockcount.ErrDuplicatePeriod, http.StatusConflict},
		{stockcount.ErrNotCompleted, http.StatusConflict},
		{uom.ErrNoConversion, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, respond.Status(tt.err))
		})
	}
}

func TestError_Shortages(t *testing.T) {
	itemID := uuid.New()
	err := fmt.Errorf("issuing: %w", &ledger.InsufficientStockError{Shortages: []ledger.Shortage{{
		ItemID:    itemID,
		ItemCode:  "BOLT-M8",
		Requested: decimal.NewFromInt(10),
		Available: decimal.NewFromInt(4),
		Shortage:  decimal.NewFromInt(6),
	}}})

	rec := httptest.NewRecorder()
	respond.Error(rec, httptest.NewRequest(http.MethodPost, "/", nil), err)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Error     string `json:"error"`
		Shortages []struct {
			ItemCode string          `json:"item_code"`
			Shortage decimal.Decimal `json:"shortage"`
		} `json:"shortages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	require.Len(t, body.Shortages, 1)
	assert.Equal(t, "BOLT-M8", body.Shortages[0].ItemCode)
	assert.True(t, decimal.NewFromInt(6).Equal(body.Shortages[0].Shortage))
	assert.Contains(t, body.Error, "BOLT-M8 short by 6")
}

func TestError_HidesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
