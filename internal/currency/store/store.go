package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/currency"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectCurrencyColumns = `
	id, user_id, code, symbol, name, rate, is_base, created_at
`

func scanCurrency(s scanner) (*currency.Currency, error) {
	var c currency.Currency

	if err := s.Scan(
		&c.ID, &c.UserID, &c.Code, &c.Symbol, &c.Name, &c.Rate, &c.IsBase, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCurrency(ctx context.Context, c *currency.Currency) error {
	query := `
		INSERT INTO currencies (user_id, code, symbol, name, rate, is_base, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.UserID,
		c.Code,
		c.Symbol,
		c.Name,
		c.Rate,
		c.IsBase,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating currency: %w", err)
	}

	return nil
}

func (s *Store) GetCurrency(ctx context.Context, userID, id uuid.UUID) (*currency.Currency, error) {
	query := `SELECT ` + selectCurrencyColumns + ` FROM currencies WHERE id = $1 AND user_id = $2`

	c, err := scanCurrency(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, currency.ErrNotFound
		}

		return nil, fmt.Errorf("getting currency: %w", err)
	}

	return c, nil
}

func (s *Store) ListCurrencies(ctx context.Context, userID uuid.UUID) ([]*currency.Currency, error) {
	query := `SELECT ` + selectCurrencyColumns + ` FROM currencies WHERE user_id = $1 ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing currencies: %w", err)
	}
	defer rows.Close()

	var currencies []*currency.Currency

	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning currency: %w", err)
		}

		currencies = append(currencies, c)
	}

	return currencies, rows.Err()
}

func (s *Store) UpdateCurrency(ctx context.Context, c *currency.Currency) error {
	query := `
		UPDATE currencies
		SET code = $1, symbol = $2, name = $3, rate = $4
		WHERE id = $5 AND user_id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Code,
		c.Symbol,
		c.Name,
		c.Rate,
		c.ID,
		c.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating currency: %w", err)
	}

	return nil
}

func (s *Store) DeleteCurrency(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM currencies WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting currency: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return currency.ErrNotFound
	}

	return nil
}

func (s *Store) GetBaseCurrency(ctx context.Context, userID uuid.UUID) (*currency.Currency, error) {
	query := `SELECT ` + selectCurrencyColumns + ` FROM currencies WHERE user_id = $1 AND is_base`

	c, err := scanCurrency(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting base currency: %w", err)
	}

	return c, nil
}

// SetBaseCurrency clears the base flag across the user's currencies and sets
// it on the given one, in a single transaction so the single-base invariant
// holds at every point observable outside it.
func (s *Store) SetBaseCurrency(ctx context.Context, userID, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `UPDATE currencies SET is_base = FALSE WHERE user_id = $1 AND is_base`, userID); err != nil {
		return fmt.Errorf("clearing base currency: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `UPDATE currencies SET is_base = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("setting base currency: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return currency.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing base currency change: %w", err)
	}

	return nil
}
