package export

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/transaction"
)

type mockLister struct {
	listFunc func(ctx context.Context, userID uuid.UUID, params transaction.ListParams) ([]*transaction.Transaction, error)
}

func (m *mockLister) List(ctx context.Context, userID uuid.UUID, params transaction.ListParams) ([]*transaction.Transaction, error) {
	return m.listFunc(ctx, userID, params)
}

func TestService_TransactionsCSV(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	txs := []*transaction.Transaction{
		{
			ID:          uuid.New(),
			Amount:      1250.5,
			Type:        transaction.TypeIncome,
			Description: "Salary",
			Date:        date,
			Category:    &transaction.CategorySummary{Name: "Work"},
		},
		{
			ID:          uuid.New(),
			Amount:      42.9,
			Type:        transaction.TypeExpense,
			Description: "Groceries, weekly",
			Notes:       "market",
			Date:        date,
			Card:        &transaction.CardSummary{Name: "Visa"},
		},
		{
			ID:          uuid.New(),
			Amount:      10,
			Type:        transaction.TypeExpense,
			Description: "Coffee",
			Date:        date,
		},
	}

	lister := &mockLister{
		listFunc: func(context.Context, uuid.UUID, transaction.ListParams) ([]*transaction.Transaction, error) {
			return txs, nil
		},
	}

	svc := NewService(lister)

	out, err := svc.TransactionsCSV(context.Background(), userID, transaction.ListParams{})
	if err != nil {
		t.Fatalf("TransactionsCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}

	if lines[0] != "date,type,description,amount,category,card,notes" {
		t.Errorf("unexpected header: %s", lines[0])
	}

	if lines[1] != "2026-03-15,income,Salary,1250.50,Work,," {
		t.Errorf("unexpected income row: %s", lines[1])
	}

	// Expenses are negated and fields with commas are quoted.
	if lines[2] != `2026-03-15,expense,"Groceries, weekly",-42.90,,Visa,market` {
		t.Errorf("unexpected expense row: %s", lines[2])
	}

	if lines[3] != "2026-03-15,expense,Coffee,-10.00,,," {
		t.Errorf("unexpected row: %s", lines[3])
	}
}

func TestService_TransactionsCSV_Empty(t *testing.T) {
	lister := &mockLister{
		listFunc: func(context.Context, uuid.UUID, transaction.ListParams) ([]*transaction.Transaction, error) {
			return nil, nil
		},
	}

	svc := NewService(lister)

	out, err := svc.TransactionsCSV(context.Background(), uuid.New(), transaction.ListParams{})
	if err != nil {
		t.Fatalf("TransactionsCSV failed: %v", err)
	}

	if strings.TrimRight(string(out), "\n") != "date,type,description,amount,category,card,notes" {
		t.Errorf("expected header only, got %q", string(out))
	}
}

func TestService_TransactionsCSV_ListError(t *testing.T) {
	lister := &mockLister{
		listFunc: func(context.Context, uuid.UUID, transaction.ListParams) ([]*transaction.Transaction, error) {
			return nil, errors.New("db error")
		},
	}

	svc := NewService(lister)

	if _, err := svc.TransactionsCSV(context.Background(), uuid.New(), transaction.ListParams{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	if got := Filename(now); got != "transactions_20260315.csv" {
		t.Errorf("unexpected filename: %s", got)
	}
}
