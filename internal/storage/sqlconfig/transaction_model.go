package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes money coming in from money going out.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Transaction represents a transaction record. Date carries no time
// component; IsGenerated marks rows materialized from recurring templates.
type Transaction struct {
	ID           uuid.UUID       `db:"id"`
	BudgetID     uuid.UUID       `db:"budget_id"`
	CategoryID   uuid.UUID       `db:"category_id"`
	Title        string          `db:"title"`
	Amount       decimal.Decimal `db:"amount"`
	Kind         TransactionKind `db:"transaction_type"`
	Date         time.Time       `db:"date"`
	Comment      sql.NullString  `db:"comment"`
	IsGenerated  bool            `db:"is_generated"`
	PaidByUserID uuid.NullUUID   `db:"paid_by_user_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	BudgetID     uuid.UUID
	CategoryID   uuid.UUID
	Title        string
	Amount       decimal.Decimal
	Kind         TransactionKind
	Date         time.Time
	Comment      sql.NullString
	IsGenerated  bool
	PaidByUserID uuid.NullUUID
}

// PayerSum is an income total attributed to a single paying member.
type PayerSum struct {
	UserID uuid.UUID       `db:"paid_by_user_id"`
	Total  decimal.Decimal `db:"total"`
}

// ITransactionsTable defines the interface for transaction storage operations.
type ITransactionsTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsGenerated reports whether a generated transaction with exactly
	// this (budget, category, title, amount, date) tuple is already stored.
	// The match is exact; edited templates produce new tuples on purpose.
	ExistsGenerated(ctx context.Context, budgetID, categoryID uuid.UUID, title string, amount decimal.Decimal, date time.Time) (bool, error)

	// SumIncomeByPayer sums income transaction amounts per paying member.
	// Transactions without a payer are excluded.
	SumIncomeByPayer(ctx context.Context, budgetID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}
