package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Writer exposes the table gateways bound to a single database transaction.
type Writer struct {
	tx bob.Tx

	Budgets      sqlconfig.IBudgetsTable
	Categories   sqlconfig.ICategoriesTable
	Transactions sqlconfig.ITransactionsTable
	Recurring    sqlconfig.IRecurringTable
	Members      sqlconfig.IMembersTable
	Invitations  sqlconfig.IInvitationsTable
}

func NewWriter(tx bob.Tx) *Writer {
	budgets := sqlconfig.NewBudgetsTable(tx)
	categories := sqlconfig.NewCategoriesTable(tx)
	transactions := sqlconfig.NewTransactionsTable(tx)
	recurring := sqlconfig.NewRecurringTable(tx)
	members := sqlconfig.NewMembersTable(tx)
	invitations := sqlconfig.NewInvitationsTable(tx)

	return &Writer{
		tx:           tx,
		Budgets:      &budgets,
		Categories:   &categories,
		Transactions: &transactions,
		Recurring:    &recurring,
		Members:      &members,
		Invitations:  &invitations,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
