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
	"github.com/stephenafamo/scan"
)

var budgetColumns = []string{"id", "user_id", "name", "budget_type", "is_active", "created_at", "updated_at"}

var _ IBudgetsTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

// NewBudgetsTable creates a BudgetsTable bound to the given executor.
func NewBudgetsTable(exec bob.Executor) BudgetsTable {
	return BudgetsTable{exec: exec}
}

// FindByID retrieves a budget by primary key.
func (t *BudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(budgetColumns)...),
		sm.From("budgets"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByUser returns the budgets the user created or joined, newest first.
func (t *BudgetsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	sql := `SELECT DISTINCT b.id, b.user_id, b.name, b.budget_type, b.is_active, b.created_at, b.updated_at
	 FROM budgets b
	 LEFT JOIN budget_members bm ON bm.budget_id = b.id
	 WHERE b.user_id = $1 OR bm.user_id = $1
	 ORDER BY b.created_at DESC`
	rows, err := scan.All(ctx, t.exec, scan.StructMapper[Budget](), sql, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new budget and returns the stored row.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("budgets", "id", "user_id", "name", "budget_type", "is_active", "created_at", "updated_at"),
		im.Values(psql.Arg(id, create.UserID, create.Name, string(create.BudgetType), false, now, now)),
		im.Returning(toAnySlice(budgetColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes a budget. Dependent rows are removed by ON DELETE CASCADE.
func (t *BudgetsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
