package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// InvitationStatus is the lifecycle state of a budget invitation.
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
)

// Invitation represents a pending or resolved budget invitation.
type Invitation struct {
	ID           uuid.UUID        `db:"id"`
	BudgetID     uuid.UUID        `db:"budget_id"`
	InviterID    uuid.UUID        `db:"inviter_id"`
	InviteeEmail string           `db:"invitee_email"`
	Role         MemberRole       `db:"role"`
	Status       InvitationStatus `db:"status"`
	CreatedAt    time.Time        `db:"created_at"`
}

// InvitationWithDetails is an invitation joined with budget and inviter names.
type InvitationWithDetails struct {
	Invitation
	BudgetName  string `db:"budget_name"`
	InviterName string `db:"inviter_name"`
}

// InvitationCreate is the input for creating a budget invitation.
type InvitationCreate struct {
	BudgetID     uuid.UUID
	InviterID    uuid.UUID
	InviteeEmail string
	Role         MemberRole
}

// IInvitationsTable defines the interface for invitation storage operations.
type IInvitationsTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invitation, error)
	ListPendingByEmail(ctx context.Context, email string) ([]*InvitationWithDetails, error)
	Insert(ctx context.Context, create *InvitationCreate) (*Invitation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status InvitationStatus) error
}
