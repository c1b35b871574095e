package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

type balanceFixture struct {
	svc          *BalanceService
	budgets      *mockBudgetsTable
	categories   *mockCategoriesTable
	transactions *mockTransactionsTable
	members      *mockMembersTable
}

func newBalanceFixture(t *testing.T) *balanceFixture {
	t.Helper()

	f := &balanceFixture{
		budgets:      new(mockBudgetsTable),
		categories:   new(mockCategoriesTable),
		transactions: new(mockTransactionsTable),
		members:      new(mockMembersTable),
	}
	f.svc = NewBalanceService(&storage.Storage{
		Budgets:      f.budgets,
		Categories:   f.categories,
		Transactions: f.transactions,
		Members:      f.members,
	})
	return f
}

func makeMemberRow(budgetID uuid.UUID, name, share string) *sqlconfig.MemberWithUser {
	return &sqlconfig.MemberWithUser{
		Member: sqlconfig.Member{
			ID:       uuid.Must(uuid.NewV4()),
			BudgetID: budgetID,
			UserID:   uuid.Must(uuid.NewV4()),
			Role:     sqlconfig.MemberRoleMember,
			Share:    decimal.RequireFromString(share),
		},
		UserName:  name,
		UserEmail: name + "@example.com",
	}
}

func TestComputeBalances_SplitsByShare(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())

	f := newBalanceFixture(t)
	f.budgets.On("FindByID", mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:         budgetID,
		UserID:     ownerID,
		BudgetType: sqlconfig.BudgetTypeGroup,
	}, nil)

	alice := makeMemberRow(budgetID, "alice", "60")
	bob := makeMemberRow(budgetID, "bob", "40")
	f.members.On("ListByBudget", mock.Anything, budgetID).
		Return([]*sqlconfig.MemberWithUser{alice, bob}, nil)

	f.categories.On("SumRootAllocations", mock.Anything, budgetID).
		Return(decimal.RequireFromString("1000.00"), nil)

	f.transactions.On("SumIncomeByPayer", mock.Anything, budgetID).
		Return(map[uuid.UUID]decimal.Decimal{
			alice.UserID: decimal.RequireFromString("700.00"),
			bob.UserID:   decimal.RequireFromString("100.00"),
		}, nil)

	balances, err := f.svc.ComputeBalances(context.Background(), ownerID, budgetID)
	require.NoError(t, err)

	assert.True(t, balances.TotalAllocation.Equal(decimal.RequireFromString("1000.00")))
	require.Len(t, balances.Members, 2)

	assert.True(t, balances.Members[0].Due.Equal(decimal.RequireFromString("600.00")))
	assert.True(t, balances.Members[0].Paid.Equal(decimal.RequireFromString("700.00")))
	assert.True(t, balances.Members[0].Balance.Equal(decimal.RequireFromString("100.00")))

	assert.True(t, balances.Members[1].Due.Equal(decimal.RequireFromString("400.00")))
	assert.True(t, balances.Members[1].Paid.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, balances.Members[1].Balance.Equal(decimal.RequireFromString("-300.00")))
}

func TestComputeBalances_RoundsHalfAwayFromZero(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())

	f := newBalanceFixture(t)
	f.budgets.On("FindByID", mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:         budgetID,
		UserID:     ownerID,
		BudgetType: sqlconfig.BudgetTypeGroup,
	}, nil)

	member := makeMemberRow(budgetID, "carol", "50")
	f.members.On("ListByBudget", mock.Anything, budgetID).
		Return([]*sqlconfig.MemberWithUser{member}, nil)

	// 333.35 * 50% = 166.675, which rounds up to 166.68.
	f.categories.On("SumRootAllocations", mock.Anything, budgetID).
		Return(decimal.RequireFromString("333.35"), nil)
	f.transactions.On("SumIncomeByPayer", mock.Anything, budgetID).
		Return(map[uuid.UUID]decimal.Decimal{}, nil)

	balances, err := f.svc.ComputeBalances(context.Background(), ownerID, budgetID)
	require.NoError(t, err)

	require.Len(t, balances.Members, 1)
	assert.True(t, balances.Members[0].Due.Equal(decimal.RequireFromString("166.68")))
	assert.True(t, balances.Members[0].Paid.IsZero())
	assert.True(t, balances.Members[0].Balance.Equal(decimal.RequireFromString("-166.68")))
}

func TestComputeBalances_EmptyBudget(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())

	f := newBalanceFixture(t)
	f.budgets.On("FindByID", mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:         budgetID,
		UserID:     ownerID,
		BudgetType: sqlconfig.BudgetTypeGroup,
	}, nil)
	f.members.On("ListByBudget", mock.Anything, budgetID).
		Return([]*sqlconfig.MemberWithUser{}, nil)
	f.categories.On("SumRootAllocations", mock.Anything, budgetID).
		Return(decimal.Zero, nil)
	f.transactions.On("SumIncomeByPayer", mock.Anything, budgetID).
		Return(map[uuid.UUID]decimal.Decimal{}, nil)

	balances, err := f.svc.ComputeBalances(context.Background(), ownerID, budgetID)
	require.NoError(t, err)

	assert.True(t, balances.TotalAllocation.IsZero())
	assert.Empty(t, balances.Members)
}

func TestComputeBalances_PersonalBudgetRejected(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())

	f := newBalanceFixture(t)
	f.budgets.On("FindByID", mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:         budgetID,
		UserID:     ownerID,
		BudgetType: sqlconfig.BudgetTypePersonal,
	}, nil)

	_, err := f.svc.ComputeBalances(context.Background(), ownerID, budgetID)
	assert.ErrorIs(t, err, ErrNotGroupBudget)
}

func TestComputeBalances_NonMemberForbidden(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	strangerID := uuid.Must(uuid.NewV4())

	f := newBalanceFixture(t)
	f.budgets.On("FindByID", mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:         budgetID,
		UserID:     ownerID,
		BudgetType: sqlconfig.BudgetTypeGroup,
	}, nil)
	f.members.On("IsMember", mock.Anything, budgetID, strangerID).Return(false, nil)

	_, err := f.svc.ComputeBalances(context.Background(), strangerID, budgetID)
	assert.ErrorIs(t, err, ErrForbidden)
}
