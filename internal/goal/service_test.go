package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremtx/grana/internal/category"
	"github.com/andremtx/grana/internal/goal"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	type args struct {
		params goal.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *goal.MockRepository, resolver *goal.MockResolver)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: goal.CreateParams{
					Name:         "Emergency fund",
					TargetAmount: 10000,
					Deadline:     deadline,
					Category:     category.Ref{Kind: category.RefByName, Name: "Savings"},
				},
			},
			setupMock: func(repo *goal.MockRepository, resolver *goal.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), userID, gomock.Any(), gomock.Not(gomock.Nil())).
					Return(nil, nil)
				repo.EXPECT().
					CreateGoal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, g *goal.Goal) error {
						g.ID = goalID
						return nil
					})
				repo.EXPECT().
					GetGoal(gomock.Any(), userID, goalID).
					Return(&goal.Goal{ID: goalID, UserID: userID, Name: "Emergency fund", TargetAmount: 10000, Deadline: deadline}, nil)
			},
		},
		{
			name: "MissingName",
			args: args{
				params: goal.CreateParams{TargetAmount: 100, Deadline: deadline},
			},
			wantErr: true,
		},
		{
			name: "InvalidTarget",
			args: args{
				params: goal.CreateParams{Name: "x", TargetAmount: 0, Deadline: deadline},
			},
			wantErr: true,
		},
		{
			name: "MissingDeadline",
			args: args{
				params: goal.CreateParams{Name: "x", TargetAmount: 100},
			},
			wantErr: true,
		},
		{
			name: "NegativeCurrentAmount",
			args: args{
				params: goal.CreateParams{Name: "x", TargetAmount: 100, Deadline: deadline, CurrentAmount: -5},
			},
			setupMock: func(repo *goal.MockRepository, resolver *goal.MockResolver) {
				resolver.EXPECT().
					Resolve(gomock.Any(), userID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := goal.NewMockRepository(ctrl)
			resolver := goal.NewMockResolver(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, resolver)
			}

			svc := goal.NewService(repo, resolver)
			got, err := svc.Create(context.Background(), userID, tt.args.params)

			if tt.wantErr {
				assert.ErrorIs(t, err, goal.ErrInvalidInput)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, goalID, got.ID)
		})
	}
}

func TestService_Contribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	goalID := uuid.New()
	currencyID := uuid.New()

	repo := goal.NewMockRepository(ctrl)
	resolver := goal.NewMockResolver(ctrl)

	repo.EXPECT().
		GetGoal(gomock.Any(), userID, goalID).
		Return(&goal.Goal{
			ID:            goalID,
			UserID:        userID,
			TargetAmount:  1000,
			CurrentAmount: 900,
			CurrencyID:    &currencyID,
		}, nil)
	repo.EXPECT().
		AddContribution(gomock.Any(), userID, goalID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, c *goal.Contribution) error {
			assert.Equal(t, float64(500), c.Amount)
			assert.Equal(t, &currencyID, c.CurrencyID)
			return nil
		})
	// The stored amount is clamped to the target inside the repository.
	repo.EXPECT().
		GetGoal(gomock.Any(), userID, goalID).
		Return(&goal.Goal{
			ID:            goalID,
			UserID:        userID,
			TargetAmount:  1000,
			CurrentAmount: 1000,
			CurrencyID:    &currencyID,
		}, nil)

	svc := goal.NewService(repo, resolver)
	updated, contribution, err := svc.Contribute(context.Background(), userID, goalID, goal.ContributionParams{
		Amount: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, float64(1000), updated.CurrentAmount)
	assert.True(t, updated.Completed())
	assert.False(t, contribution.Date.IsZero())
}

func TestService_Contribute_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	resolver := goal.NewMockResolver(ctrl)

	svc := goal.NewService(repo, resolver)
	_, _, err := svc.Contribute(context.Background(), uuid.New(), uuid.New(), goal.ContributionParams{
		Amount: -10,
	})
	assert.ErrorIs(t, err, goal.ErrInvalidInput)
}

func TestService_Contribute_GoalNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	goalID := uuid.New()

	repo := goal.NewMockRepository(ctrl)
	resolver := goal.NewMockResolver(ctrl)
	repo.EXPECT().
		GetGoal(gomock.Any(), userID, goalID).
		Return(nil, goal.ErrNotFound)

	svc := goal.NewService(repo, resolver)
	_, _, err := svc.Contribute(context.Background(), userID, goalID, goal.ContributionParams{Amount: 10})
	assert.ErrorIs(t, err, goal.ErrNotFound)
}

func TestService_Update_ClearsCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	goalID := uuid.New()
	currencyID := uuid.New()

	repo := goal.NewMockRepository(ctrl)
	resolver := goal.NewMockResolver(ctrl)

	repo.EXPECT().
		GetGoal(gomock.Any(), userID, goalID).
		Return(&goal.Goal{ID: goalID, UserID: userID, TargetAmount: 100, CurrencyID: &currencyID}, nil)
	repo.EXPECT().
		UpdateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *goal.Goal) error {
			assert.Nil(t, g.CurrencyID)
			return nil
		})
	repo.EXPECT().
		GetGoal(gomock.Any(), userID, goalID).
		Return(&goal.Goal{ID: goalID, UserID: userID, TargetAmount: 100}, nil)

	svc := goal.NewService(repo, resolver)
	got, err := svc.Update(context.Background(), userID, goalID, goal.UpdateParams{
		ClearCurrency: true,
	})

	require.NoError(t, err)
	assert.Nil(t, got.CurrencyID)
}
