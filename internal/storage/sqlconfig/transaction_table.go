package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var transactionColumns = []string{
	"id", "budget_id", "category_id", "title", "amount", "transaction_type",
	"date", "comment", "is_generated", "paid_by_user_id", "created_at",
}

var _ ITransactionsTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable bound to the given executor.
func NewTransactionsTable(exec bob.Executor) TransactionsTable {
	return TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(transactionColumns)...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByBudget returns all transactions of a budget, newest date first.
func (t *TransactionsTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(transactionColumns)...),
		sm.From("transactions"),
		sm.Where(psql.Quote("budget_id").EQ(psql.Arg(budgetID))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("transactions", transactionColumns...),
		im.Values(psql.Arg(
			id, create.BudgetID, create.CategoryID, create.Title, create.Amount,
			string(create.Kind), create.Date, create.Comment, create.IsGenerated,
			create.PaidByUserID, now,
		)),
		im.Returning(toAnySlice(transactionColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes a transaction.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ExistsGenerated reports whether a generated transaction with exactly this
// tuple is already stored.
func (t *TransactionsTable) ExistsGenerated(ctx context.Context, budgetID, categoryID uuid.UUID, title string, amount decimal.Decimal, date time.Time) (bool, error) {
	return scan.One(ctx, t.exec, scan.SingleColumnMapper[bool],
		`SELECT EXISTS (
		     SELECT 1 FROM transactions
		     WHERE budget_id = $1
		       AND category_id = $2
		       AND title = $3
		       AND amount = $4
		       AND date = $5
		       AND is_generated
		 )`, budgetID, categoryID, title, amount, date)
}

// SumIncomeByPayer sums income amounts grouped by paying member.
func (t *TransactionsTable) SumIncomeByPayer(ctx context.Context, budgetID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	rows, err := scan.All(ctx, t.exec, scan.StructMapper[PayerSum](),
		`SELECT paid_by_user_id, SUM(amount) AS total
		 FROM transactions
		 WHERE budget_id = $1
		   AND transaction_type = $2
		   AND paid_by_user_id IS NOT NULL
		 GROUP BY paid_by_user_id`, budgetID, string(TransactionKindIncome))
	if err != nil {
		return nil, err
	}

	sums := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.UserID] = row.Total
	}
	return sums, nil
}
