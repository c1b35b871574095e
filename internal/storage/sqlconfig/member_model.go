package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// MemberRole is a member's role within a group budget.
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleMember MemberRole = "member"
)

// Member represents a budget membership record. Share is the percentage
// of the budget's total allocation attributed to the member; shares across
// a budget are not required to sum to 100.
type Member struct {
	ID        uuid.UUID       `db:"id"`
	BudgetID  uuid.UUID       `db:"budget_id"`
	UserID    uuid.UUID       `db:"user_id"`
	Role      MemberRole      `db:"role"`
	Share     decimal.Decimal `db:"share"`
	CreatedAt time.Time       `db:"created_at"`
}

// MemberWithUser is a membership row joined with the member's user record.
type MemberWithUser struct {
	Member
	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
}

// MemberCreate is the input for adding a member to a budget.
type MemberCreate struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
	Role     MemberRole
	Share    decimal.Decimal
}

// IMembersTable defines the interface for budget membership storage operations.
type IMembersTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)
	ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*MemberWithUser, error)
	Insert(ctx context.Context, create *MemberCreate) (*Member, error)
	UpdateShare(ctx context.Context, id uuid.UUID, share decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error

	// IsMember reports whether the user belongs to the budget at all;
	// IsOwner additionally requires the owner role.
	IsMember(ctx context.Context, budgetID, userID uuid.UUID) (bool, error)
	IsOwner(ctx context.Context, budgetID, userID uuid.UUID) (bool, error)
}
