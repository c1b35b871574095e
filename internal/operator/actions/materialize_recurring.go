package actions

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Occurrence is a single due instance of a recurring template, computed
// by the schedule expander before the action runs.
type Occurrence struct {
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Title      string
	Amount     decimal.Decimal
	Kind       TransactionKind
	Date       time.Time
	Comment    string
}

// TransactionKind aliases the storage type so callers building occurrences
// do not need two imports.
type TransactionKind = sqlconfig.TransactionKind

// MaterializeRecurring inserts the occurrences that are not yet stored.
// The existence check and the inserts share one transaction, so repeated
// runs over the same window produce each occurrence exactly once.
type MaterializeRecurring struct {
	Occurrences []Occurrence

	// Created holds the transactions inserted by Perform, in occurrence order.
	Created []*sqlconfig.Transaction

	IAction
}

func (m *MaterializeRecurring) Perform(ctx context.Context, writer *storage.Writer) error {
	m.Created = nil

	for _, occ := range m.Occurrences {
		exists, err := writer.Transactions.ExistsGenerated(ctx, occ.BudgetID, occ.CategoryID, occ.Title, occ.Amount, occ.Date)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		created, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
			BudgetID:    occ.BudgetID,
			CategoryID:  occ.CategoryID,
			Title:       occ.Title,
			Amount:      occ.Amount,
			Kind:        occ.Kind,
			Date:        occ.Date,
			Comment:     sql.NullString{String: occ.Comment, Valid: occ.Comment != ""},
			IsGenerated: true,
		})
		if err != nil {
			return err
		}
		m.Created = append(m.Created, created)
	}

	return nil
}
