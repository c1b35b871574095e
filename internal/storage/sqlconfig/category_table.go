package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var categoryColumns = []string{"id", "budget_id", "parent_id", "name", "amount", "created_at"}

var _ ICategoriesTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable bound to the given executor.
func NewCategoriesTable(exec bob.Executor) CategoriesTable {
	return CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByBudget returns all categories of a budget, oldest first.
func (t *CategoriesTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("budget_id").EQ(psql.Arg(budgetID))),
		sm.OrderBy("created_at").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("categories", "id", "budget_id", "parent_id", "name", "amount", "created_at"),
		im.Values(psql.Arg(id, create.BudgetID, create.ParentID, create.Name, create.Amount, now)),
		im.Returning(toAnySlice(categoryColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the non-nil fields of the update to a category.
func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error {
	if update == nil || (update.Name == nil && update.Amount == nil) {
		return nil
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("categories"),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if update.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*update.Name))
	}
	if update.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*update.Amount))
	}

	_, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	return err
}

// Delete removes a category. Children are removed by ON DELETE CASCADE.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// SumRootAllocations sums root category amounts for a budget.
func (t *CategoriesTable) SumRootAllocations(ctx context.Context, budgetID uuid.UUID) (decimal.Decimal, error) {
	return scan.One(ctx, t.exec, scan.SingleColumnMapper[decimal.Decimal],
		`SELECT COALESCE(SUM(amount), 0)
		 FROM categories
		 WHERE budget_id = $1 AND parent_id IS NULL`, budgetID)
}

// RecomputeParentAmount resets a parent's amount to the sum of its children.
func (t *CategoriesTable) RecomputeParentAmount(ctx context.Context, parentID uuid.UUID) error {
	_, err := t.exec.ExecContext(ctx,
		`UPDATE categories
		 SET amount = (
		     SELECT COALESCE(SUM(sub.amount), 0)
		     FROM categories sub
		     WHERE sub.parent_id = $1
		 )
		 WHERE id = $1`, parentID)
	return err
}
