package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

var oneHundred = decimal.NewFromInt(100)

// BalanceService computes per-member settlement balances for group budgets.
type BalanceService struct {
	storage *storage.Storage
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(store *storage.Storage) *BalanceService {
	return &BalanceService{storage: store}
}

// ComputeBalances returns the settlement summary for a group budget.
// The total allocation counts root categories only, so derived parent
// amounts are not double-counted. All money values are rounded to two
// decimal places, half away from zero.
func (s *BalanceService) ComputeBalances(ctx context.Context, userID, budgetID uuid.UUID) (BudgetBalances, error) {
	budget, err := getBudgetForMember(ctx, s.storage, budgetID, userID)
	if err != nil {
		return BudgetBalances{}, err
	}
	if budget.BudgetType != sqlconfig.BudgetTypeGroup {
		return BudgetBalances{}, ErrNotGroupBudget
	}

	total, err := s.storage.Categories.SumRootAllocations(ctx, budgetID)
	if err != nil {
		return BudgetBalances{}, err
	}

	members, err := s.storage.Members.ListByBudget(ctx, budgetID)
	if err != nil {
		return BudgetBalances{}, err
	}

	paidByUser, err := s.storage.Transactions.SumIncomeByPayer(ctx, budgetID)
	if err != nil {
		return BudgetBalances{}, err
	}

	balances := BudgetBalances{
		TotalAllocation: total.Round(2),
		Members:         make([]MemberBalance, len(members)),
	}
	for i, member := range members {
		due := total.Mul(member.Share).Div(oneHundred).Round(2)
		paid := paidByUser[member.UserID].Round(2)

		balances.Members[i] = MemberBalance{
			UserID:  member.UserID,
			Name:    member.UserName,
			Email:   member.UserEmail,
			Share:   member.Share,
			Due:     due,
			Paid:    paid,
			Balance: paid.Sub(due),
		}
	}
	return balances, nil
}
