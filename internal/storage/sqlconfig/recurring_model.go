package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring template produces an occurrence.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTemplate represents a recurring transaction template.
// Day is frequency-dependent: a weekday index (0=Monday..6=Sunday) for
// weekly templates, a day of month for monthly and yearly ones, and
// ignored for daily ones.
type RecurringTemplate struct {
	ID         uuid.UUID       `db:"id"`
	BudgetID   uuid.UUID       `db:"budget_id"`
	CategoryID uuid.UUID       `db:"category_id"`
	Title      string          `db:"title"`
	Amount     decimal.Decimal `db:"amount"`
	Kind       TransactionKind `db:"transaction_type"`
	Frequency  Frequency       `db:"frequency"`
	Day        sql.NullInt64   `db:"day"`
	Active     bool            `db:"active"`
	CreatedAt  time.Time       `db:"created_at"`
}

// RecurringTemplateCreate is the input for creating a recurring template.
type RecurringTemplateCreate struct {
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Title      string
	Amount     decimal.Decimal
	Kind       TransactionKind
	Frequency  Frequency
	Day        sql.NullInt64
}

// IRecurringTable defines the interface for recurring template storage operations.
type IRecurringTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecurringTemplate, error)
	ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*RecurringTemplate, error)
	ListActiveByBudget(ctx context.Context, budgetID uuid.UUID) ([]*RecurringTemplate, error)
	Insert(ctx context.Context, create *RecurringTemplateCreate) (*RecurringTemplate, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
