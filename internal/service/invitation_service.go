package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/operator/actions"
	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// InvitationService handles the invitee side of budget invitations.
type InvitationService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(store *storage.Storage, op actionProcessor) *InvitationService {
	return &InvitationService{storage: store, operator: op}
}

// ListInvitations returns the user's pending invitations.
func (s *InvitationService) ListInvitations(ctx context.Context, userID uuid.UUID) ([]Invitation, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Invitations.ListPendingByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	invitations := make([]Invitation, len(rows))
	for i, row := range rows {
		invitations[i] = invitationFromStorage(row)
	}
	return invitations, nil
}

// AcceptInvitation joins the user to the invitation's budget and marks
// the invitation accepted, atomically.
func (s *InvitationService) AcceptInvitation(ctx context.Context, userID, invitationID uuid.UUID) error {
	invitation, err := s.loadForUser(ctx, userID, invitationID)
	if err != nil {
		return err
	}

	isMember, err := s.storage.Members.IsMember(ctx, invitation.BudgetID, userID)
	if err != nil {
		return err
	}
	if isMember {
		return ErrAlreadyMember
	}

	err = s.operator.Process(ctx, &actions.AcceptInvitation{
		Invitation: invitation,
		UserID:     userID,
	})
	if errors.Is(err, actions.ErrInvitationResolved) {
		return ErrInvitationResolved
	}
	return err
}

// RejectInvitation marks the invitation rejected.
func (s *InvitationService) RejectInvitation(ctx context.Context, userID, invitationID uuid.UUID) error {
	invitation, err := s.loadForUser(ctx, userID, invitationID)
	if err != nil {
		return err
	}
	return s.storage.Invitations.UpdateStatus(ctx, invitation.ID, sqlconfig.InvitationStatusRejected)
}

// loadForUser loads a pending invitation addressed to the user's email.
func (s *InvitationService) loadForUser(ctx context.Context, userID, invitationID uuid.UUID) (*sqlconfig.Invitation, error) {
	invitation, err := s.storage.Invitations.FindByID(ctx, invitationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(invitation.InviteeEmail, user.Email) {
		return nil, ErrForbidden
	}
	if invitation.Status != sqlconfig.InvitationStatusPending {
		return nil, ErrInvitationResolved
	}
	return invitation, nil
}
