package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID           uuid.UUID
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	Title        string
	Amount       decimal.Decimal
	Kind         sqlconfig.TransactionKind
	Date         time.Time
	Comment      string
	IsGenerated  bool
	PaidByUserID *uuid.UUID
	CreatedAt    time.Time
}

// TransactionCreate is the input for creating a transaction by hand.
type TransactionCreate struct {
	CategoryID   uuid.UUID
	Title        string
	Amount       decimal.Decimal
	Kind         sqlconfig.TransactionKind
	Date         time.Time
	Comment      string
	PaidByUserID *uuid.UUID
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	transaction := Transaction{
		ID:          row.ID,
		BudgetID:    row.BudgetID,
		CategoryID:  row.CategoryID,
		Title:       row.Title,
		Amount:      row.Amount,
		Kind:        row.Kind,
		Date:        row.Date,
		Comment:     row.Comment.String,
		IsGenerated: row.IsGenerated,
		CreatedAt:   row.CreatedAt,
	}
	if row.PaidByUserID.Valid {
		payerID := row.PaidByUserID.UUID
		transaction.PaidByUserID = &payerID
	}
	return transaction
}
