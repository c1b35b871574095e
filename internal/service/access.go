package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// getBudgetForMember loads a budget and verifies the user may see it.
// Personal budgets are visible only to their creator; group budgets to
// the creator and every member.
func getBudgetForMember(ctx context.Context, store *storage.Storage, budgetID, userID uuid.UUID) (*sqlconfig.Budget, error) {
	budget, err := store.Budgets.FindByID(ctx, budgetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if budget.UserID == userID {
		return budget, nil
	}
	if budget.BudgetType != sqlconfig.BudgetTypeGroup {
		return nil, ErrForbidden
	}

	isMember, err := store.Members.IsMember(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrForbidden
	}
	return budget, nil
}

// getBudgetForOwner is like getBudgetForMember but requires the owner role
// for group budgets. Used for destructive and membership operations.
func getBudgetForOwner(ctx context.Context, store *storage.Storage, budgetID, userID uuid.UUID) (*sqlconfig.Budget, error) {
	budget, err := store.Budgets.FindByID(ctx, budgetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if budget.UserID == userID {
		return budget, nil
	}
	if budget.BudgetType != sqlconfig.BudgetTypeGroup {
		return nil, ErrForbidden
	}

	isOwner, err := store.Members.IsOwner(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, ErrForbidden
	}
	return budget, nil
}
