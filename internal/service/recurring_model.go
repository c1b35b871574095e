package service

import (
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// RecurringTemplate represents a recurring template in the service layer.
// Day is nil when the template relies on the frequency's default.
type RecurringTemplate struct {
	ID         uuid.UUID
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Title      string
	Amount     decimal.Decimal
	Kind       sqlconfig.TransactionKind
	Frequency  sqlconfig.Frequency
	Day        *int
	Active     bool
	CreatedAt  time.Time
}

// RecurringTemplateCreate is the input for creating a recurring template.
type RecurringTemplateCreate struct {
	CategoryID uuid.UUID
	Title      string
	Amount     decimal.Decimal
	Kind       sqlconfig.TransactionKind
	Frequency  sqlconfig.Frequency
	Day        *int
}

func recurringFromStorage(row *sqlconfig.RecurringTemplate) RecurringTemplate {
	template := RecurringTemplate{
		ID:         row.ID,
		BudgetID:   row.BudgetID,
		CategoryID: row.CategoryID,
		Title:      row.Title,
		Amount:     row.Amount,
		Kind:       row.Kind,
		Frequency:  row.Frequency,
		Active:     row.Active,
		CreatedAt:  row.CreatedAt,
	}
	if row.Day.Valid {
		day := int(row.Day.Int64)
		template.Day = &day
	}
	return template
}

func dayToStorage(day *int) sql.NullInt64 {
	if day == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*day), Valid: true}
}
