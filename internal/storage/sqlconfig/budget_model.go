package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// BudgetType distinguishes personal budgets from shared group budgets.
type BudgetType string

const (
	BudgetTypePersonal BudgetType = "personal"
	BudgetTypeGroup    BudgetType = "group"
)

// Budget represents a budget record.
type Budget struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	Name       string     `db:"name"`
	BudgetType BudgetType `db:"budget_type"`
	IsActive   bool       `db:"is_active"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID     uuid.UUID
	Name       string
	BudgetType BudgetType
}

// IBudgetsTable defines the interface for budget storage operations.
type IBudgetsTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
