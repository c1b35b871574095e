package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var userColumns = []string{"id", "email", "name", "password_hash", "avatar", "phone", "created_at", "updated_at"}

var _ IUsersTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// NewUsersTable creates a UsersTable bound to the given executor.
// Pass bob.NewDB(db) for standalone use or a bob.Tx for transactional use.
func NewUsersTable(exec bob.Executor) UsersTable {
	return UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByEmail retrieves a user by email address.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new user and returns the stored row.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("users", "id", "email", "name", "password_hash", "created_at", "updated_at"),
		im.Values(psql.Arg(id, create.Email, create.Name, create.PasswordHash, now, now)),
		im.Returning(toAnySlice(userColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdatePasswordHash replaces the stored password hash for a user.
func (t *UsersTable) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := psql.Update(
		um.Table("users"),
		um.SetCol("password_hash").ToArg(passwordHash),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func toAnySlice(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}
