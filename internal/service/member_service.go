package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// MemberService handles group budget membership.
type MemberService struct {
	storage *storage.Storage
}

// NewMemberService creates a new MemberService.
func NewMemberService(store *storage.Storage) *MemberService {
	return &MemberService{storage: store}
}

// ListMembers returns the members of a group budget with user details.
func (s *MemberService) ListMembers(ctx context.Context, userID, budgetID uuid.UUID) ([]Member, error) {
	budget, err := getBudgetForMember(ctx, s.storage, budgetID, userID)
	if err != nil {
		return nil, err
	}
	if budget.BudgetType != sqlconfig.BudgetTypeGroup {
		return nil, ErrNotGroupBudget
	}

	rows, err := s.storage.Members.ListByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	members := make([]Member, len(rows))
	for i, row := range rows {
		members[i] = memberFromStorage(row)
	}
	return members, nil
}

// InviteMember creates a pending invitation. Owner only. The invitee does
// not need an account yet; the email is matched at accept time.
func (s *MemberService) InviteMember(ctx context.Context, userID, budgetID uuid.UUID, email string, role sqlconfig.MemberRole) (uuid.UUID, error) {
	budget, err := getBudgetForOwner(ctx, s.storage, budgetID, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if budget.BudgetType != sqlconfig.BudgetTypeGroup {
		return uuid.Nil, ErrNotGroupBudget
	}
	if role != sqlconfig.MemberRoleOwner && role != sqlconfig.MemberRoleMember {
		role = sqlconfig.MemberRoleMember
	}

	invitee, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, err
	}
	if invitee != nil {
		isMember, err := s.storage.Members.IsMember(ctx, budgetID, invitee.ID)
		if err != nil {
			return uuid.Nil, err
		}
		if isMember {
			return uuid.Nil, ErrAlreadyMember
		}
	}

	pending, err := s.storage.Invitations.ListPendingByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, err
	}
	for _, invitation := range pending {
		if invitation.BudgetID == budgetID {
			return uuid.Nil, ErrAlreadyInvited
		}
	}

	created, err := s.storage.Invitations.Insert(ctx, &sqlconfig.InvitationCreate{
		BudgetID:     budgetID,
		InviterID:    userID,
		InviteeEmail: email,
		Role:         role,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

// UpdateShare sets a member's percentage share. Owner only. Shares are
// not required to sum to 100 across the budget.
func (s *MemberService) UpdateShare(ctx context.Context, userID, budgetID, memberID uuid.UUID, share decimal.Decimal) error {
	if _, err := getBudgetForOwner(ctx, s.storage, budgetID, userID); err != nil {
		return err
	}
	if share.IsNegative() || share.GreaterThan(oneHundred) {
		return ErrInvalidShare
	}

	member, err := s.findInBudget(ctx, memberID, budgetID)
	if err != nil {
		return err
	}
	return s.storage.Members.UpdateShare(ctx, member.ID, share)
}

// RemoveMember removes a member from a group budget. Owner only; owners
// themselves cannot be removed.
func (s *MemberService) RemoveMember(ctx context.Context, userID, budgetID, memberID uuid.UUID) error {
	if _, err := getBudgetForOwner(ctx, s.storage, budgetID, userID); err != nil {
		return err
	}

	member, err := s.findInBudget(ctx, memberID, budgetID)
	if err != nil {
		return err
	}
	if member.Role == sqlconfig.MemberRoleOwner {
		return ErrOwnerRemoval
	}
	return s.storage.Members.Delete(ctx, member.ID)
}

func (s *MemberService) findInBudget(ctx context.Context, memberID, budgetID uuid.UUID) (*sqlconfig.Member, error) {
	member, err := s.storage.Members.FindByID(ctx, memberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if member.BudgetID != budgetID {
		return nil, ErrNotFound
	}
	return member, nil
}
