package currency_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremtx/grana/internal/currency"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type args struct {
		params currency.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *currency.MockRepository)
		wantCode  string
		wantBase  bool
		wantErr   error
	}

	tests := []testCase{
		{
			name: "UppercasesCode",
			args: args{
				params: currency.CreateParams{Code: " eur ", Symbol: "€", Rate: 0.9},
			},
			setupMock: func(m *currency.MockRepository) {
				m.EXPECT().
					CreateCurrency(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *currency.Currency) error {
						c.ID = uuid.New()
						return nil
					})
			},
			wantCode: "EUR",
		},
		{
			name: "BaseFlagDesignates",
			args: args{
				params: currency.CreateParams{Code: "USD", Rate: 1, IsBase: true},
			},
			setupMock: func(m *currency.MockRepository) {
				var id uuid.UUID
				m.EXPECT().
					CreateCurrency(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *currency.Currency) error {
						c.ID = uuid.New()
						id = c.ID
						return nil
					})
				m.EXPECT().
					SetBaseCurrency(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, got uuid.UUID) error {
						assert.Equal(t, id, got)
						return nil
					})
			},
			wantCode: "USD",
			wantBase: true,
		},
		{
			name: "EmptyCode",
			args: args{
				params: currency.CreateParams{Code: "  ", Rate: 1},
			},
			wantErr: currency.ErrInvalidInput,
		},
		{
			name: "ZeroRate",
			args: args{
				params: currency.CreateParams{Code: "EUR", Rate: 0},
			},
			wantErr: currency.ErrInvalidInput,
		},
		{
			name: "NaNRate",
			args: args{
				params: currency.CreateParams{Code: "EUR", Rate: math.NaN()},
			},
			wantErr: currency.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := currency.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := currency.NewService(repo)
			got, err := svc.Create(context.Background(), userID, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantBase, got.IsBase)
		})
	}
}

func TestService_SetBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	repo := currency.NewMockRepository(ctrl)
	repo.EXPECT().
		SetBaseCurrency(gomock.Any(), userID, id).
		Return(nil)
	repo.EXPECT().
		GetCurrency(gomock.Any(), userID, id).
		Return(&currency.Currency{ID: id, UserID: userID, Code: "USD", IsBase: true}, nil)

	svc := currency.NewService(repo)
	got, err := svc.SetBase(context.Background(), userID, id)

	require.NoError(t, err)
	assert.True(t, got.IsBase)
}

func TestService_SetBase_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	repo := currency.NewMockRepository(ctrl)
	repo.EXPECT().
		SetBaseCurrency(gomock.Any(), userID, id).
		Return(currency.ErrNotFound)

	svc := currency.NewService(repo)
	_, err := svc.SetBase(context.Background(), userID, id)
	assert.ErrorIs(t, err, currency.ErrNotFound)
}

func TestService_Update_RejectsBadRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	repo := currency.NewMockRepository(ctrl)
	repo.EXPECT().
		GetCurrency(gomock.Any(), userID, id).
		Return(&currency.Currency{ID: id, UserID: userID, Code: "EUR", Rate: 0.9}, nil)

	svc := currency.NewService(repo)
	_, err := svc.Update(context.Background(), userID, id, currency.UpdateParams{
		Rate: new(float64(-1)),
	})
	assert.ErrorIs(t, err, currency.ErrInvalidInput)
}
