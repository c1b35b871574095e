package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

var ErrInvitationResolved = errors.New("invitation already resolved")

// AcceptInvitation adds the invitee as a budget member and marks the
// invitation accepted in one transaction. The pending check happens here
// rather than in the service so two concurrent accepts cannot both land.
type AcceptInvitation struct {
	Invitation *sqlconfig.Invitation
	UserID     uuid.UUID

	// Created is set by Perform.
	Created *sqlconfig.Member

	IAction
}

func (a *AcceptInvitation) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.Invitations.FindByID(ctx, a.Invitation.ID)
	if err != nil {
		return err
	}
	if current.Status != sqlconfig.InvitationStatusPending {
		return ErrInvitationResolved
	}

	member, err := writer.Members.Insert(ctx, &sqlconfig.MemberCreate{
		BudgetID: current.BudgetID,
		UserID:   a.UserID,
		Role:     current.Role,
		Share:    decimal.Zero,
	})
	if err != nil {
		return err
	}

	if err = writer.Invitations.UpdateStatus(ctx, current.ID, sqlconfig.InvitationStatusAccepted); err != nil {
		return err
	}

	a.Created = member
	return nil
}
