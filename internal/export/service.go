package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/andremtx/grana/internal/transaction"
)

// Lister is the slice of the transaction service the exporter needs.
type Lister interface {
	List(ctx context.Context, userID uuid.UUID, params transaction.ListParams) ([]*transaction.Transaction, error)
}

// Service renders a user's transactions as a downloadable CSV document.
type Service struct {
	transactions Lister
}

func NewService(transactions Lister) *Service {
	return &Service{transactions: transactions}
}

var csvHeader = []string{"date", "type", "description", "amount", "category", "card", "notes"}

// TransactionsCSV lists the transactions matching the filter and encodes them
// as CSV, newest first. Expense amounts are written with a leading minus so
// the column sums to the net balance in a spreadsheet.
func (s *Service) TransactionsCSV(ctx context.Context, userID uuid.UUID, params transaction.ListParams) ([]byte, error) {
	txs, err := s.transactions.List(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		amount := tx.Amount
		if tx.Type == transaction.TypeExpense {
			amount = -amount
		}

		categoryName := ""
		if tx.Category != nil {
			categoryName = tx.Category.Name
		}

		cardName := ""
		if tx.Card != nil {
			cardName = tx.Card.Name
		}

		record := []string{
			tx.Date.Format(time.DateOnly),
			string(tx.Type),
			tx.Description,
			strconv.FormatFloat(amount, 'f', 2, 64),
			categoryName,
			cardName,
			tx.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing transaction %s: %w", tx.ID, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// Filename names the download after the day it was generated.
func Filename(now time.Time) string {
	return fmt.Sprintf("transactions_%s.csv", now.Format("20060102"))
}
