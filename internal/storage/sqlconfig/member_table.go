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
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var memberColumns = []string{"id", "budget_id", "user_id", "role", "share", "created_at"}

var _ IMembersTable = (*MembersTable)(nil)

// MembersTable provides access to the budget_members table.
type MembersTable struct {
	exec bob.Executor
}

// NewMembersTable creates a MembersTable bound to the given executor.
func NewMembersTable(exec bob.Executor) MembersTable {
	return MembersTable{exec: exec}
}

// FindByID retrieves a membership by primary key.
func (t *MembersTable) FindByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(memberColumns)...),
		sm.From("budget_members"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Member]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByBudget returns the budget's members joined with user details.
func (t *MembersTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*MemberWithUser, error) {
	rows, err := scan.All(ctx, t.exec, scan.StructMapper[MemberWithUser](),
		`SELECT bm.id, bm.budget_id, bm.user_id, bm.role, bm.share, bm.created_at,
		        u.name AS user_name, u.email AS user_email
		 FROM budget_members bm
		 JOIN users u ON u.id = bm.user_id
		 WHERE bm.budget_id = $1
		 ORDER BY bm.created_at ASC`, budgetID)
	if err != nil {
		return nil, err
	}
	result := make([]*MemberWithUser, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert adds a member to a budget and returns the stored row.
func (t *MembersTable) Insert(ctx context.Context, create *MemberCreate) (*Member, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("budget_members", memberColumns...),
		im.Values(psql.Arg(id, create.BudgetID, create.UserID, string(create.Role), create.Share, now)),
		im.Returning(toAnySlice(memberColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Member]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateShare sets a member's share percentage.
func (t *MembersTable) UpdateShare(ctx context.Context, id uuid.UUID, share decimal.Decimal) error {
	q := psql.Update(
		um.Table("budget_members"),
		um.SetCol("share").ToArg(share),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes a membership.
func (t *MembersTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("budget_members"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// IsMember reports whether the user belongs to the budget.
func (t *MembersTable) IsMember(ctx context.Context, budgetID, userID uuid.UUID) (bool, error) {
	return scan.One(ctx, t.exec, scan.SingleColumnMapper[bool],
		`SELECT EXISTS (
		     SELECT 1 FROM budget_members
		     WHERE budget_id = $1 AND user_id = $2
		 )`, budgetID, userID)
}

// IsOwner reports whether the user owns the budget.
func (t *MembersTable) IsOwner(ctx context.Context, budgetID, userID uuid.UUID) (bool, error) {
	return scan.One(ctx, t.exec, scan.SingleColumnMapper[bool],
		`SELECT EXISTS (
		     SELECT 1 FROM budget_members
		     WHERE budget_id = $1 AND user_id = $2 AND role = $3
		 )`, budgetID, userID, string(MemberRoleOwner))
}
