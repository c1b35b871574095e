package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Category represents a category record. A category with a non-null
// ParentID is a sub-allocation of its parent.
type Category struct {
	ID        uuid.UUID       `db:"id"`
	BudgetID  uuid.UUID       `db:"budget_id"`
	ParentID  uuid.NullUUID   `db:"parent_id"`
	Name      string          `db:"name"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	BudgetID uuid.UUID
	ParentID uuid.NullUUID
	Name     string
	Amount   decimal.Decimal
}

// CategoryUpdate is the input for updating a category. Nil fields are left unchanged.
type CategoryUpdate struct {
	Name   *string
	Amount *decimal.Decimal
}

// ICategoriesTable defines the interface for category storage operations.
type ICategoriesTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SumRootAllocations sums the amounts of root categories (parent IS NULL)
	// for a budget. Only roots count toward the budget's total allocation so
	// that parents whose amount is derived from their children are not
	// double-counted.
	SumRootAllocations(ctx context.Context, budgetID uuid.UUID) (decimal.Decimal, error)

	// RecomputeParentAmount resets a parent category's amount to the sum of
	// its children's amounts.
	RecomputeParentAmount(ctx context.Context, parentID uuid.UUID) error
}
