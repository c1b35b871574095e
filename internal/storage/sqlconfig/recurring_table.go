package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/stephenafamo/bob/dialect/psql/dialect"
)

var recurringColumns = []string{
	"id", "budget_id", "category_id", "title", "amount", "transaction_type",
	"frequency", "day", "active", "created_at",
}

var _ IRecurringTable = (*RecurringTable)(nil)

// RecurringTable provides access to the recurring_transactions table.
type RecurringTable struct {
	exec bob.Executor
}

// NewRecurringTable creates a RecurringTable bound to the given executor.
func NewRecurringTable(exec bob.Executor) RecurringTable {
	return RecurringTable{exec: exec}
}

// FindByID retrieves a recurring template by primary key.
func (t *RecurringTable) FindByID(ctx context.Context, id uuid.UUID) (*RecurringTemplate, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(recurringColumns)...),
		sm.From("recurring_transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[RecurringTemplate]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByBudget returns all recurring templates of a budget.
func (t *RecurringTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*RecurringTemplate, error) {
	return t.list(ctx, sm.Where(psql.Quote("budget_id").EQ(psql.Arg(budgetID))))
}

// ListActiveByBudget returns the active recurring templates of a budget.
func (t *RecurringTable) ListActiveByBudget(ctx context.Context, budgetID uuid.UUID) ([]*RecurringTemplate, error) {
	return t.list(ctx, psql.WhereAnd(
		sm.Where(psql.Quote("budget_id").EQ(psql.Arg(budgetID))),
		sm.Where(psql.Quote("active").EQ(psql.Arg(true))),
	))
}

func (t *RecurringTable) list(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) ([]*RecurringTemplate, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(recurringColumns)...),
		sm.From("recurring_transactions"),
		where,
		sm.OrderBy("created_at").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[RecurringTemplate]())
	if err != nil {
		return nil, err
	}
	result := make([]*RecurringTemplate, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new recurring template and returns the stored row.
// Templates start out active.
func (t *RecurringTable) Insert(ctx context.Context, create *RecurringTemplateCreate) (*RecurringTemplate, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("recurring_transactions", recurringColumns...),
		im.Values(psql.Arg(
			id, create.BudgetID, create.CategoryID, create.Title, create.Amount,
			string(create.Kind), string(create.Frequency), create.Day, true, now,
		)),
		im.Returning(toAnySlice(recurringColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[RecurringTemplate]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SetActive flips the active flag of a recurring template.
func (t *RecurringTable) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := psql.Update(
		um.Table("recurring_transactions"),
		um.SetCol("active").ToArg(active),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes a recurring template. Transactions already materialized
// from it are kept.
func (t *RecurringTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("recurring_transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
