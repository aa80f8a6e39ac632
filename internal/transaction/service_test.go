package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremtx/grana/internal/category"
	"github.com/andremtx/grana/internal/transaction"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *transaction.MockRepository, resolver *transaction.MockResolver)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: transaction.CreateParams{
					Amount:      1000,
					Type:        transaction.TypeExpense,
					Description: "Groceries",
					Category:    category.Ref{Kind: category.RefByName, Name: "Food"},
					Date:        time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(repo *transaction.MockRepository, resolver *transaction.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), userID, category.Ref{Kind: category.RefByName, Name: "Food"}, gomock.Not(gomock.Nil())).
					Return(&categoryID, nil)
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "InvalidAmount",
			args: args{
				params: transaction.CreateParams{
					Amount: -50,
					Type:   transaction.TypeExpense,
				},
			},
			wantErr: transaction.ErrInvalidInput,
		},
		{
			name: "InvalidType",
			args: args{
				params: transaction.CreateParams{
					Amount: 50,
					Type:   transaction.Type("transfer"),
				},
			},
			wantErr: transaction.ErrInvalidInput,
		},
		{
			name: "UnknownCategoryID",
			args: args{
				params: transaction.CreateParams{
					Amount:   50,
					Type:     transaction.TypeExpense,
					Category: category.Ref{Kind: category.RefByID, ID: categoryID},
				},
			},
			setupMock: func(repo *transaction.MockRepository, resolver *transaction.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), userID, gomock.Any(), gomock.Any()).
					Return(nil, &category.InvalidReferenceError{Value: categoryID.String()})
			},
			wantErr: &category.InvalidReferenceError{},
		},
		{
			name: "RepoError",
			args: args{
				params: transaction.CreateParams{
					Amount: 500,
					Type:   transaction.TypeIncome,
				},
			},
			setupMock: func(repo *transaction.MockRepository, resolver *transaction.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), userID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
				repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			resolver := transaction.NewMockResolver(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, resolver)
			}

			svc := transaction.NewService(repo, resolver)
			got, err := svc.Create(context.Background(), userID, tt.args.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, userID, got.UserID)
			assert.Equal(t, &categoryID, got.CategoryID)
		})
	}
}

func TestService_Create_DefaultsDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := transaction.NewMockRepository(ctrl)
	resolver := transaction.NewMockResolver(ctrl)

	resolver.EXPECT().
		Resolve(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := transaction.NewService(repo, resolver)
	got, err := svc.Create(context.Background(), userID, transaction.CreateParams{
		Amount: 10,
		Type:   transaction.TypeIncome,
	})

	require.NoError(t, err)
	assert.False(t, got.Date.IsZero())
}

func TestService_List(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()

	type args struct {
		params transaction.ListParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *transaction.MockRepository, resolver *transaction.MockResolver)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: transaction.ListParams{}},
			setupMock: func(repo *transaction.MockRepository, resolver *transaction.MockResolver) {
				repo.EXPECT().
					ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name: "CategoryFilterResolved",
			args: args{params: transaction.ListParams{
				Category: category.Ref{Kind: category.RefByName, Name: "Food"},
			}},
			setupMock: func(repo *transaction.MockRepository, resolver *transaction.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), userID, category.Ref{Kind: category.RefByName, Name: "Food"}, nil).
					Return(&categoryID, nil)
				repo.EXPECT().
					ListTransactions(gomock.Any(), userID, transaction.ListFilter{CategoryID: &categoryID}).
					Return([]*transaction.Transaction{{ID: uuid.New()}}, nil)
			},
			wantLen: 1,
		},
		{
			name: "UnknownCategoryYieldsEmpty",
			args: args{params: transaction.ListParams{
				Category: category.Ref{Kind: category.RefByName, Name: "nope"},
			}},
			setupMock: func(repo *transaction.MockRepository, resolver *transaction.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), userID, gomock.Any(), nil).
					Return(nil, &category.InvalidReferenceError{Value: "nope"})
			},
			wantLen: 0,
		},
		{
			name: "Error",
			args: args{params: transaction.ListParams{}},
			setupMock: func(repo *transaction.MockRepository, resolver *transaction.MockResolver) {
				repo.EXPECT().
					ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			resolver := transaction.NewMockResolver(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, resolver)
			}

			svc := transaction.NewService(repo, resolver)
			got, err := svc.List(context.Background(), userID, tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()
	cardID := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	resolver := transaction.NewMockResolver(ctrl)

	repo.EXPECT().
		GetTransaction(gomock.Any(), userID, id).
		Return(&transaction.Transaction{
			ID:     id,
			UserID: userID,
			Amount: 100,
			Type:   transaction.TypeExpense,
			CardID: &cardID,
		}, nil)
	resolver.EXPECT().
		Resolve(gomock.Any(), userID, category.Ref{Kind: category.RefEmpty}, nil).
		Return(nil, nil)
	repo.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := transaction.NewService(repo, resolver)
	got, err := svc.Update(context.Background(), userID, id, transaction.UpdateParams{
		Amount:    new(float64(250)),
		Category:  &category.Ref{Kind: category.RefEmpty},
		ClearCard: true,
	})

	require.NoError(t, err)
	assert.Equal(t, float64(250), got.Amount)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.CardID)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	resolver := transaction.NewMockResolver(ctrl)

	repo.EXPECT().
		DeleteTransaction(gomock.Any(), userID, id).
		Return(transaction.ErrNotFound)

	svc := transaction.NewService(repo, resolver)
	err := svc.Delete(context.Background(), userID, id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
