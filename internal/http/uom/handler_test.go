package uom

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stockroom/internal/uom"
)

func newServer(t *testing.T) (*MockService, http.Handler) {
	t.Helper()

	svc := NewMockService(gomock.NewController(t))

	r := chi.NewRouter()
	r.Route("/uom", NewHandler(svc).Routes)

	return svc, r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	return rec
}

func TestConvert(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name       string
		body       string
		result     decimal.Decimal
		svcErr     error
		wantStatus int
	}{
		{
			name:       "box to each",
			body:       fmt.Sprintf(`{"item_id":"%s","quantity":"2","from":"box","to":"each"}`, itemID),
			result:     decimal.NewFromInt(24),
			wantStatus: http.StatusOK,
		},
		{
			name:       "no path",
			body:       fmt.Sprintf(`{"item_id":"%s","quantity":"2","from":"box","to":"litre"}`, itemID),
			svcErr:     fmt.Errorf("%w: box to litre", uom.ErrNoConversion),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing unit",
			body:       `{"quantity":"2","from":"box"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, srv := newServer(t)

			if tt.wantStatus != http.StatusBadRequest {
				svc.EXPECT().Convert(gomock.Any(), itemID, gomock.Any(), "box", gomock.Any()).Return(tt.result, tt.svcErr)
			}

			rec := do(srv, http.MethodPost, "/uom/convert", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var got convertResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.True(t, tt.result.Equal(got.Quantity))
				assert.Equal(t, "each", got.Unit)
			}
		})
	}
}

func TestValidateChain(t *testing.T) {
	svc, srv := newServer(t)

	svc.EXPECT().ValidateChain(gomock.Any(), uuid.Nil, []string{"pallet", "box", "each"}).Return(nil)
	svc.EXPECT().ValidateChain(gomock.Any(), uuid.Nil, []string{"box", "litre"}).
		Return(fmt.Errorf("%w: box to litre", uom.ErrNoConversion))

	rec := do(srv, http.MethodPost, "/uom/validate-chain", `{"units":["pallet","box","each"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true}`, rec.Body.String())

	rec = do(srv, http.MethodPost, "/uom/validate-chain", `{"units":["box","litre"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)

	rec = do(srv, http.MethodPost, "/uom/validate-chain", `{"units":["box"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversions(t *testing.T) {
	svc, srv := newServer(t)

	itemID := uuid.New()

	svc.EXPECT().ListConversions(gomock.Any(), itemID).Return([]*uom.Conversion{
		{ID: uuid.New(), FromUOM: "box", ToUOM: "each", Factor: decimal.NewFromInt(12)},
		{ID: uuid.New(), ItemID: &itemID, FromUOM: "pallet", ToUOM: "box", Factor: decimal.NewFromInt(40)},
	}, nil)
	svc.EXPECT().AddConversion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p uom.AddParams) (*uom.Conversion, error) {
			assert.Nil(t, p.ItemID)
			assert.Equal(t, "dozen", p.FromUOM)

			return &uom.Conversion{ID: uuid.New(), FromUOM: "dozen", ToUOM: "each", Factor: p.Factor}, nil
		})

	rec := do(srv, http.MethodGet, "/uom/conversions?item_id="+itemID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []conversionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Global)
	assert.False(t, got[1].Global)

	rec = do(srv, http.MethodPost, "/uom/conversions", `{"from_uom":"dozen","to_uom":"each","factor":"12"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(srv, http.MethodPost, "/uom/conversions", `{"from_uom":"dozen","to_uom":"each","factor":"0"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusBadRequest, do(srv, http.MethodGet, "/uom/conversions?item_id=bad", "").Code)
}

func TestConversions_UnknownItem(t *testing.T) {
	svc, srv := newServer(t)

	itemID := uuid.New()

	svc.EXPECT().AddConversion(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %s", uom.ErrUnknownItem, itemID))

	body := fmt.Sprintf(`{"item_id":%q,"from_uom":"case","to_uom":"each","factor":"6"}`, itemID)

	rec := do(srv, http.MethodPost, "/uom/conversions", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "item not found")
}
