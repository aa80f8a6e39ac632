package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/category"
	"github.com/andremtx/grana/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	// GetGoal loads a goal with its joined category/currency summaries and
	// contribution history.
	GetGoal(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, userID, id uuid.UUID) error
	// AddContribution atomically increments current_amount, clamps it to
	// target_amount and appends the contribution record in one storage
	// transaction.
	AddContribution(ctx context.Context, userID, goalID uuid.UUID, c *Contribution) error
}

// Resolver is the category resolution contract the service depends on.
type Resolver interface {
	Resolve(ctx context.Context, userID uuid.UUID, ref category.Ref, auto *category.AutoCreate) (*uuid.UUID, error)
}

type Service struct {
	repo     Repository
	resolver Resolver
}

func NewService(repo Repository, resolver Resolver) *Service {
	return &Service{repo: repo, resolver: resolver}
}

// Categories auto-created from a goal default to expense with the goal
// accent color.
var goalCategoryDefaults = category.AutoCreate{
	Type:  category.TypeExpense,
	Color: "#4ECDC4",
	Icon:  "flag",
}

type CreateParams struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      time.Time
	Category      category.Ref
	CurrencyID    *uuid.UUID
	Priority      int
	Color         string
	Description   string
}

type UpdateParams struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
	Category      *category.Ref
	CurrencyID    *uuid.UUID
	ClearCurrency bool
	Priority      *int
	Color         *string
	Description   *string
}

type ListFilter struct {
	Status *Status
}

type ContributionParams struct {
	Amount float64
	Date   time.Time
	Notes  string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Goal, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	target, err := money.ParseAmount(params.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: target amount %s", ErrInvalidInput, err)
	}

	if params.Deadline.IsZero() {
		return nil, fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	}

	auto := goalCategoryDefaults

	categoryID, err := s.resolver.Resolve(ctx, userID, params.Category, &auto)
	if err != nil {
		return nil, err
	}

	current := params.CurrentAmount
	if current < 0 {
		return nil, fmt.Errorf("%w: current amount cannot be negative", ErrInvalidInput)
	}

	g := &Goal{
		UserID:        userID,
		Name:          params.Name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      params.Deadline,
		CategoryID:    categoryID,
		CurrencyID:    params.CurrencyID,
		Priority:      params.Priority,
		Color:         params.Color,
		Description:   params.Description,
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return s.repo.GetGoal(ctx, userID, g.ID)
}

// List returns the user's goals sorted by priority then deadline.
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, userID, filter)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	return s.repo.GetGoal(ctx, userID, id)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, params UpdateParams) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		g.Name = *params.Name
	}

	if params.TargetAmount != nil {
		target, err := money.ParseAmount(*params.TargetAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: target amount %s", ErrInvalidInput, err)
		}

		g.TargetAmount = target
	}

	if params.CurrentAmount != nil {
		if *params.CurrentAmount < 0 {
			return nil, fmt.Errorf("%w: current amount cannot be negative", ErrInvalidInput)
		}

		g.CurrentAmount = *params.CurrentAmount
	}

	if params.Deadline != nil {
		g.Deadline = *params.Deadline
	}

	// A present category field is always re-resolved; an empty reference
	// clears it. Updates never auto-create categories.
	if params.Category != nil {
		categoryID, err := s.resolver.Resolve(ctx, userID, *params.Category, nil)
		if err != nil {
			return nil, err
		}

		g.CategoryID = categoryID
	}

	if params.ClearCurrency {
		g.CurrencyID = nil
	} else if params.CurrencyID != nil {
		g.CurrencyID = params.CurrencyID
	}

	if params.Priority != nil {
		g.Priority = *params.Priority
	}

	if params.Color != nil {
		g.Color = *params.Color
	}

	if params.Description != nil {
		g.Description = *params.Description
	}

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return s.repo.GetGoal(ctx, userID, g.ID)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, userID, id)
}

// Contribute validates and appends a contribution, returning the goal with
// its clamped current amount. Current amount never exceeds the target.
func (s *Service) Contribute(ctx context.Context, userID, goalID uuid.UUID, params ContributionParams) (*Goal, *Contribution, error) {
	amount, err := money.ParseAmount(params.Amount)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: contribution amount %s", ErrInvalidInput, err)
	}

	g, err := s.repo.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	c := &Contribution{
		GoalID:     g.ID,
		Amount:     amount,
		CurrencyID: g.CurrencyID,
		Date:       date,
		Notes:      params.Notes,
	}
	if err := s.repo.AddContribution(ctx, userID, g.ID, c); err != nil {
		return nil, nil, err
	}

	updated, err := s.repo.GetGoal(ctx, userID, g.ID)
	if err != nil {
		return nil, nil, err
	}

	return updated, c, nil
}
