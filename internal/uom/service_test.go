package uom_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/stockroom/internal/uom"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func edge(itemID *uuid.UUID, from, to, factor string) *uom.Conversion {
	return &uom.Conversion{ID: uuid.New(), ItemID: itemID, FromUOM: from, ToUOM: to, Factor: dec(factor)}
}

func TestService_Convert(t *testing.T) {
	itemID := uuid.New()
	otherItem := uuid.New()

	catalogue := []*uom.Conversion{
		edge(nil, "case", "box", "12"),
		edge(nil, "box", "each", "10"),
		edge(nil, "kg", "g", "1000"),
		edge(&itemID, "box", "each", "6"),
		edge(&otherItem, "pallet", "case", "40"),
	}

	tests := []struct {
		name    string
		qty     string
		from    string
		to      string
		want    string
		wantErr error
	}{
		{name: "SameUnit", qty: "7", from: "each", to: "EACH", want: "7"},
		{name: "DirectItemSpecificWins", qty: "2", from: "box", to: "each", want: "12"},
		{name: "InverseOfItemSpecific", qty: "18", from: "each", to: "box", want: "3"},
		{name: "GlobalDirect", qty: "1.5", from: "kg", to: "g", want: "1500"},
		{name: "GlobalInverse", qty: "250", from: "g", to: "kg", want: "0.25"},
		{name: "MultiHop", qty: "2", from: "case", to: "each", want: "144"},
		{name: "MultiHopInverse", qty: "72", from: "each", to: "case", want: "1"},
		{name: "RepeatingFraction", qty: "1", from: "each", to: "box", want: "0.166667"},
		{name: "OtherItemEdgeIgnored", qty: "1", from: "pallet", to: "case", wantErr: uom.ErrNoConversion},
		{name: "Disconnected", qty: "1", from: "kg", to: "each", wantErr: uom.ErrNoConversion},
		{name: "EmptyUnit", qty: "1", from: " ", to: "each", wantErr: uom.ErrInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := uom.NewMockRepository(ctrl)
			repo.EXPECT().ListConversions(gomock.Any(), itemID).Return(catalogue, nil).AnyTimes()

			svc := uom.NewService(repo)
			got, err := svc.Convert(context.Background(), itemID, dec(tt.qty), tt.from, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestService_Convert_DirectEdgeBeatsInverseInSameLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()
	repo := uom.NewMockRepository(ctrl)
	repo.EXPECT().ListConversions(gomock.Any(), itemID).Return([]*uom.Conversion{
		edge(nil, "box", "each", "10"),
		edge(nil, "each", "box", "0.125"),
	}, nil)

	got, err := uom.NewService(repo).Convert(context.Background(), itemID, dec("16"), "each", "box")
	require.NoError(t, err)
	assert.True(t, dec("2").Equal(got), "got %s", got)
}

func TestService_Convert_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := uom.NewMockRepository(ctrl)
	repo.EXPECT().ListConversions(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	_, err := uom.NewService(repo).Convert(context.Background(), uuid.New(), dec("1"), "box", "each")
	assert.Error(t, err)
}

func TestService_ValidateChain(t *testing.T) {
	itemID := uuid.New()
	catalogue := []*uom.Conversion{
		edge(nil, "case", "box", "12"),
		edge(nil, "box", "each", "10"),
		edge(nil, "kg", "g", "1000"),
	}

	tests := []struct {
		name    string
		units   []string
		wantErr error
	}{
		{name: "Connected", units: []string{"case", "box", "each"}},
		{name: "TransitiveHop", units: []string{"case", "each"}},
		{name: "Repeated", units: []string{"box", "box", "each"}},
		{name: "Broken", units: []string{"case", "each", "kg"}, wantErr: uom.ErrNoConversion},
		{name: "TooShort", units: []string{"case"}, wantErr: uom.ErrInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := uom.NewMockRepository(ctrl)
			repo.EXPECT().ListConversions(gomock.Any(), itemID).Return(catalogue, nil).AnyTimes()

			err := uom.NewService(repo).ValidateChain(context.Background(), itemID, tt.units)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_AddConversion(t *testing.T) {
	itemID := uuid.New()

	tests := []struct {
		name      string
		params    uom.AddParams
		setupMock func(m *uom.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: uom.AddParams{ItemID: &itemID, FromUOM: " Box ", ToUOM: "EACH", Factor: dec("6")},
			setupMock: func(m *uom.MockRepository) {
				m.EXPECT().
					UpsertConversion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *uom.Conversion) error {
						assert.Equal(t, "box", c.FromUOM)
						assert.Equal(t, "each", c.ToUOM)
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "ZeroFactor",
			params:  uom.AddParams{FromUOM: "box", ToUOM: "each", Factor: decimal.Zero},
			wantErr: uom.ErrInvalidFactor,
		},
		{
			name:    "SelfLoop",
			params:  uom.AddParams{FromUOM: "box", ToUOM: "BOX", Factor: dec("1")},
			wantErr: uom.ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := uom.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := uom.NewService(repo).AddConversion(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}
