package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/goal"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectGoalColumns = `
	g.id, g.user_id, g.name, g.target_amount, g.current_amount, g.deadline,
	g.category_id, c.name, c.color,
	g.currency_id, cu.code, cu.symbol, cu.name, cu.rate, cu.is_base,
	g.priority, g.color, g.description, g.created_at, g.updated_at
`

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var description sql.NullString

	var catName, catColor sql.NullString

	var curCode, curSymbol, curName sql.NullString

	var curRate sql.NullFloat64

	var curIsBase sql.NullBool

	if err := s.Scan(
		&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline,
		&g.CategoryID, &catName, &catColor,
		&g.CurrencyID, &curCode, &curSymbol, &curName, &curRate, &curIsBase,
		&g.Priority, &g.Color, &description, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	g.Description = description.String

	if g.CategoryID != nil && catName.Valid {
		g.Category = &goal.CategorySummary{
			ID:    *g.CategoryID,
			Name:  catName.String,
			Color: catColor.String,
		}
	}

	if g.CurrencyID != nil && curCode.Valid {
		g.Currency = &goal.CurrencySummary{
			ID:     *g.CurrencyID,
			Code:   curCode.String,
			Symbol: curSymbol.String,
			Name:   curName.String,
			Rate:   curRate.Float64,
			IsBase: curIsBase.Bool,
		}
	}

	return &g, nil
}

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (user_id, name, target_amount, current_amount, deadline, category_id, currency_id, priority, color, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.UserID,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.Deadline,
		g.CategoryID,
		g.CurrencyID,
		g.Priority,
		g.Color,
		g.Description,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, userID, id uuid.UUID) (*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM goals g
		LEFT JOIN categories c ON g.category_id = c.id
		LEFT JOIN currencies cu ON g.currency_id = cu.id
		WHERE g.id = $1 AND g.user_id = $2`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	contributions, err := s.listContributions(ctx, g.ID)
	if err != nil {
		return nil, err
	}

	g.Contributions = contributions

	return g, nil
}

func (s *Store) listContributions(ctx context.Context, goalID uuid.UUID) ([]goal.Contribution, error) {
	query := `
		SELECT id, goal_id, amount, currency_id, date, notes, created_at
		FROM goal_contributions
		WHERE goal_id = $1
		ORDER BY date ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing contributions: %w", err)
	}
	defer rows.Close()

	var contributions []goal.Contribution

	for rows.Next() {
		var c goal.Contribution

		var notes sql.NullString

		if err := rows.Scan(&c.ID, &c.GoalID, &c.Amount, &c.CurrencyID, &c.Date, &notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}

		c.Notes = notes.String

		contributions = append(contributions, c)
	}

	return contributions, rows.Err()
}

func (s *Store) ListGoals(ctx context.Context, userID uuid.UUID, filter goal.ListFilter) ([]*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM goals g
		LEFT JOIN categories c ON g.category_id = c.id
		LEFT JOIN currencies cu ON g.currency_id = cu.id
		WHERE g.user_id = $1`

	args := []any{userID}

	if filter.Status != nil {
		switch *filter.Status {
		case goal.StatusActive:
			query += " AND g.current_amount < g.target_amount"
		case goal.StatusCompleted:
			query += " AND g.current_amount >= g.target_amount"
		}
	}

	query += " ORDER BY g.priority ASC, g.deadline ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, deadline = $4,
			category_id = $5, currency_id = $6, priority = $7, color = $8,
			description = $9, updated_at = NOW()
		WHERE id = $10 AND user_id = $11
	`

	_, err := s.db.ExecContext(ctx, query,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.Deadline,
		g.CategoryID,
		g.CurrencyID,
		g.Priority,
		g.Color,
		g.Description,
		g.ID,
		g.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return goal.ErrNotFound
	}

	return nil
}

// AddContribution increments the goal's current amount, clamping it to the
// target at the storage layer so concurrent contributions cannot push past
// it, then appends the contribution record. Both run in one database
// transaction.
func (s *Store) AddContribution(ctx context.Context, userID, goalID uuid.UUID, c *goal.Contribution) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	updateQuery := `
		UPDATE goals
		SET current_amount = LEAST(target_amount, current_amount + $1), updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING id
	`

	var id uuid.UUID
	if err := dbTx.QueryRowContext(ctx, updateQuery, c.Amount, goalID, userID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return goal.ErrNotFound
		}

		return fmt.Errorf("applying contribution: %w", err)
	}

	insertQuery := `
		INSERT INTO goal_contributions (goal_id, amount, currency_id, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	if err := dbTx.QueryRowContext(ctx, insertQuery,
		c.GoalID,
		c.Amount,
		c.CurrencyID,
		c.Date,
		c.Notes,
	).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("recording contribution: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing contribution: %w", err)
	}

	return nil
}
