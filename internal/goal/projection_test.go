package goal_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/andremtx/grana/internal/goal"
)

func TestProject(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name string
		goal goal.Goal
		want goal.Projection
	}

	tests := []testCase{
		{
			name: "FutureDeadline",
			goal: goal.Goal{
				TargetAmount:  1000,
				CurrentAmount: 250,
				Deadline:      now.AddDate(0, 0, 10),
			},
			want: goal.Projection{
				DaysRemaining:       10,
				AmountNeeded:        750,
				DailyAmountToSave:   75,
				MonthlyAmountToSave: 2250,
			},
		},
		{
			name: "PartialDayRoundsUp",
			goal: goal.Goal{
				TargetAmount:  100,
				CurrentAmount: 0,
				Deadline:      now.Add(36 * time.Hour),
			},
			want: goal.Projection{
				DaysRemaining:       2,
				AmountNeeded:        100,
				DailyAmountToSave:   50,
				MonthlyAmountToSave: 1500,
			},
		},
		{
			name: "PastDeadlineDueImmediately",
			goal: goal.Goal{
				TargetAmount:  1000,
				CurrentAmount: 400,
				Deadline:      now.AddDate(0, 0, -5),
			},
			want: goal.Projection{
				DaysRemaining:       0,
				AmountNeeded:        600,
				DailyAmountToSave:   600,
				MonthlyAmountToSave: 600,
				IsOverdue:           true,
			},
		},
		{
			name: "PastDeadlineCompletedNotOverdue",
			goal: goal.Goal{
				TargetAmount:  1000,
				CurrentAmount: 1000,
				Deadline:      now.AddDate(0, 0, -5),
			},
			want: goal.Projection{
				DaysRemaining: 0,
				IsCompleted:   true,
			},
		},
		{
			name: "DeadlineRightNowNotOverdue",
			goal: goal.Goal{
				TargetAmount:  500,
				CurrentAmount: 100,
				Deadline:      now,
			},
			want: goal.Projection{
				DaysRemaining:       0,
				AmountNeeded:        400,
				DailyAmountToSave:   400,
				MonthlyAmountToSave: 400,
			},
		},
		{
			name: "OverfundedClampsToZeroNeeded",
			goal: goal.Goal{
				TargetAmount:  500,
				CurrentAmount: 700,
				Deadline:      now.AddDate(0, 0, 10),
			},
			want: goal.Projection{
				DaysRemaining: 10,
				IsCompleted:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, goal.Project(&tt.goal, now))
		})
	}
}

func TestProjectCurrency(t *testing.T) {
	assert.Nil(t, goal.ProjectCurrency(nil))

	// A joined currency row without a code counts as absent.
	assert.Nil(t, goal.ProjectCurrency(&goal.CurrencySummary{ID: uuid.New()}))

	cur := &goal.CurrencySummary{ID: uuid.New(), Code: "EUR", Rate: 0.9}
	assert.Equal(t, cur, goal.ProjectCurrency(cur))
}
