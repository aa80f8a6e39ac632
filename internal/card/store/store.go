package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/card"
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

const selectCardColumns = `
	id, user_id, name, type, last_digits, color, credit_limit, created_at
`

func scanCard(s scanner) (*card.Card, error) {
	var c card.Card

	if err := s.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Type, &c.LastDigits, &c.Color, &c.Limit, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCard(ctx context.Context, c *card.Card) error {
	query := `
		INSERT INTO cards (user_id, name, type, last_digits, color, credit_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.UserID,
		c.Name,
		c.Type,
		c.LastDigits,
		c.Color,
		c.Limit,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating card: %w", err)
	}

	return nil
}

func (s *Store) GetCard(ctx context.Context, userID, id uuid.UUID) (*card.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM cards WHERE id = $1 AND user_id = $2`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("getting card: %w", err)
	}

	return c, nil
}

func (s *Store) ListCards(ctx context.Context, userID uuid.UUID) ([]*card.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM cards WHERE user_id = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []*card.Card

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}

		cards = append(cards, c)
	}

	return cards, rows.Err()
}

func (s *Store) UpdateCard(ctx context.Context, c *card.Card) error {
	query := `
		UPDATE cards
		SET name = $1, type = $2, last_digits = $3, color = $4, credit_limit = $5
		WHERE id = $6 AND user_id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name,
		c.Type,
		c.LastDigits,
		c.Color,
		c.Limit,
		c.ID,
		c.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating card: %w", err)
	}

	return nil
}

func (s *Store) DeleteCard(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return card.ErrNotFound
	}

	return nil
}

func (s *Store) CountCards(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting cards: %w", err)
	}

	return count, nil
}
