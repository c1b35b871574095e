package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/tempo-networks/budget-server/internal/config"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Storage bundles the table gateways used for reads and standalone writes.
// Multi-row writes that must be atomic go through Write and the operator.
type Storage struct {
	DB *sql.DB

	Users        sqlconfig.IUsersTable
	Budgets      sqlconfig.IBudgetsTable
	Categories   sqlconfig.ICategoriesTable
	Transactions sqlconfig.ITransactionsTable
	Recurring    sqlconfig.IRecurringTable
	Members      sqlconfig.IMembersTable
	Invitations  sqlconfig.IInvitationsTable

	bdb bob.DB
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return NewStorageWithDB(db)
}

// NewStorageWithDB builds a Storage over an existing database handle.
func NewStorageWithDB(db *sql.DB) *Storage {
	bdb := bob.NewDB(db)

	users := sqlconfig.NewUsersTable(bdb)
	budgets := sqlconfig.NewBudgetsTable(bdb)
	categories := sqlconfig.NewCategoriesTable(bdb)
	transactions := sqlconfig.NewTransactionsTable(bdb)
	recurring := sqlconfig.NewRecurringTable(bdb)
	members := sqlconfig.NewMembersTable(bdb)
	invitations := sqlconfig.NewInvitationsTable(bdb)

	return &Storage{
		DB:           db,
		Users:        &users,
		Budgets:      &budgets,
		Categories:   &categories,
		Transactions: &transactions,
		Recurring:    &recurring,
		Members:      &members,
		Invitations:  &invitations,
		bdb:          bdb,
	}
}

// Write opens a transaction and returns a Writer whose table gateways are
// bound to it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
