package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// CreateTransaction creates a manual transaction. The category must belong
// to the budget, and the payer, when given, must be a budget member.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID, budgetID uuid.UUID, create TransactionCreate) (Transaction, error) {
	budget, err := getBudgetForMember(ctx, s.storage, budgetID, userID)
	if err != nil {
		return Transaction{}, err
	}

	category, err := s.storage.Categories.FindByID(ctx, create.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}
	if category.BudgetID != budgetID {
		return Transaction{}, ErrNotFound
	}

	if create.PaidByUserID != nil && *create.PaidByUserID != budget.UserID {
		isMember, err := s.storage.Members.IsMember(ctx, budgetID, *create.PaidByUserID)
		if err != nil {
			return Transaction{}, err
		}
		if !isMember {
			return Transaction{}, ErrNotFound
		}
	}

	storageCreate := &sqlconfig.TransactionCreate{
		BudgetID:   budgetID,
		CategoryID: create.CategoryID,
		Title:      create.Title,
		Amount:     create.Amount,
		Kind:       create.Kind,
		Date:       create.Date,
		Comment:    sql.NullString{String: create.Comment, Valid: create.Comment != ""},
	}
	if storageCreate.Date.IsZero() {
		storageCreate.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if create.PaidByUserID != nil {
		storageCreate.PaidByUserID = uuid.NullUUID{UUID: *create.PaidByUserID, Valid: true}
	}

	row, err := s.storage.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		return Transaction{}, err
	}
	return transactionFromStorage(row), nil
}

// ListTransactions returns a budget's transactions, newest date first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID, budgetID uuid.UUID) ([]Transaction, error) {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction from a budget.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, budgetID, transactionID uuid.UUID) error {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return err
	}

	row, err := s.storage.Transactions.FindByID(ctx, transactionID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if row.BudgetID != budgetID {
		return ErrNotFound
	}

	return s.storage.Transactions.Delete(ctx, transactionID)
}
