package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andremtx/grana/internal/category"
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

const selectCategoryColumns = `
	c.id, c.user_id, c.name, c.type, c.color, c.icon, c.budget, c.created_at, c.updated_at
`

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr string

	if err := s.Scan(
		&c.ID, &c.UserID, &c.Name, &typeStr, &c.Color, &c.Icon, &c.Budget,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = category.Type(typeStr)

	return &c, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, color, icon, budget, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.UserID,
		c.Name,
		c.Type,
		c.Color,
		c.Icon,
		c.Budget,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return category.ErrAlreadyExists
		}

		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, userID, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.id = $1 AND c.user_id = $2`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) FindCategoryByName(ctx context.Context, userID uuid.UUID, name string) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.user_id = $1 AND LOWER(c.name) = LOWER($2)`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("finding category by name: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID, filter category.ListFilter) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.user_id = $1`

	args := []any{userID}

	if filter.Type != nil {
		query += " AND c.type = $2"

		args = append(args, *filter.Type)
	}

	query += " ORDER BY c.name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (s *Store) UpdateCategory(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET name = $1, type = $2, color = $3, icon = $4, budget = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.Type,
		c.Color,
		c.Icon,
		c.Budget,
		c.ID,
		c.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return category.ErrAlreadyExists
		}

		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}

func (s *Store) CountCategories(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}

	return count, nil
}
