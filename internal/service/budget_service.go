package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/operator/actions"
	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, op actionProcessor) *BudgetService {
	return &BudgetService{storage: store, operator: op}
}

// CreateBudget creates a budget. Group budgets also get the creator's
// owner membership, atomically.
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, name string, budgetType sqlconfig.BudgetType) (Budget, error) {
	action := &actions.CreateBudget{
		UserID:     userID,
		Name:       name,
		BudgetType: budgetType,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Budget{}, err
	}
	return budgetFromStorage(action.Created), nil
}

// ListBudgets returns the budgets the user created or is a member of.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	rows, err := s.storage.Budgets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(rows))
	for i, row := range rows {
		budgets[i] = budgetFromStorage(row)
	}
	return budgets, nil
}

// GetBudget returns a single budget the user has access to.
func (s *BudgetService) GetBudget(ctx context.Context, budgetID, userID uuid.UUID) (Budget, error) {
	row, err := getBudgetForMember(ctx, s.storage, budgetID, userID)
	if err != nil {
		return Budget{}, err
	}
	return budgetFromStorage(row), nil
}

// DeleteBudget removes a budget and everything under it. Only the creator
// of a personal budget or an owner of a group budget may delete.
func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID, userID uuid.UUID) error {
	if _, err := getBudgetForOwner(ctx, s.storage, budgetID, userID); err != nil {
		return err
	}
	return s.storage.Budgets.Delete(ctx, budgetID)
}
