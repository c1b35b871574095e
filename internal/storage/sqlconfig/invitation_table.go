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

var invitationColumns = []string{"id", "budget_id", "inviter_id", "invitee_email", "role", "status", "created_at"}

var _ IInvitationsTable = (*InvitationsTable)(nil)

// InvitationsTable provides access to the budget_invitations table.
type InvitationsTable struct {
	exec bob.Executor
}

// NewInvitationsTable creates an InvitationsTable bound to the given executor.
func NewInvitationsTable(exec bob.Executor) InvitationsTable {
	return InvitationsTable{exec: exec}
}

// FindByID retrieves an invitation by primary key.
func (t *InvitationsTable) FindByID(ctx context.Context, id uuid.UUID) (*Invitation, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(invitationColumns)...),
		sm.From("budget_invitations"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Invitation]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListPendingByEmail returns the pending invitations addressed to an email,
// joined with budget and inviter names.
func (t *InvitationsTable) ListPendingByEmail(ctx context.Context, email string) ([]*InvitationWithDetails, error) {
	rows, err := scan.All(ctx, t.exec, scan.StructMapper[InvitationWithDetails](),
		`SELECT bi.id, bi.budget_id, bi.inviter_id, bi.invitee_email, bi.role, bi.status, bi.created_at,
		        b.name AS budget_name, u.name AS inviter_name
		 FROM budget_invitations bi
		 JOIN budgets b ON b.id = bi.budget_id
		 JOIN users u ON u.id = bi.inviter_id
		 WHERE bi.invitee_email = $1 AND bi.status = $2
		 ORDER BY bi.created_at DESC`, email, string(InvitationStatusPending))
	if err != nil {
		return nil, err
	}
	result := make([]*InvitationWithDetails, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new pending invitation and returns the stored row.
func (t *InvitationsTable) Insert(ctx context.Context, create *InvitationCreate) (*Invitation, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	q := psql.Insert(
		im.Into("budget_invitations", invitationColumns...),
		im.Values(psql.Arg(
			id, create.BudgetID, create.InviterID, create.InviteeEmail,
			string(create.Role), string(InvitationStatusPending), now,
		)),
		im.Returning(toAnySlice(invitationColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Invitation]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatus marks an invitation accepted or rejected.
func (t *InvitationsTable) UpdateStatus(ctx context.Context, id uuid.UUID, status InvitationStatus) error {
	q := psql.Update(
		um.Table("budget_invitations"),
		um.SetCol("status").ToArg(string(status)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
