package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tempo-networks/budget-server/internal/operator/actions"
	"github.com/tempo-networks/budget-server/internal/storage"
)

// actionProcessor runs an action inside a single database transaction.
// Satisfied by operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	User        *UserService
	Budget      *BudgetService
	Category    *CategoryService
	Transaction *TransactionService
	Recurring   *RecurringService
	Balance     *BalanceService
	Member      *MemberService
	Invitation  *InvitationService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, op actionProcessor, jwtSecret string, log *logrus.Logger) *Service {
	return &Service{
		User:        NewUserService(store, jwtSecret),
		Budget:      NewBudgetService(store, op),
		Category:    NewCategoryService(store, op),
		Transaction: NewTransactionService(store),
		Recurring:   NewRecurringService(store, op, log),
		Balance:     NewBalanceService(store),
		Member:      NewMemberService(store),
		Invitation:  NewInvitationService(store, op),
	}
}
