package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/tempo-networks/budget-server/internal/operator/actions"
	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// stubProcessor runs actions inline against a writer assembled from mocks,
// standing in for the operator's transactional queue.
type stubProcessor struct {
	writer *storage.Writer
}

func (p *stubProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.writer)
}

type mockBudgetsTable struct {
	mock.Mock
}

func (m *mockBudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Budget), args.Error(1)
}

func (m *mockBudgetsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Budget), args.Error(1)
}

func (m *mockBudgetsTable) Insert(ctx context.Context, create *sqlconfig.BudgetCreate) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Budget), args.Error(1)
}

func (m *mockBudgetsTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoriesTable struct {
	mock.Mock
}

func (m *mockCategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Category), args.Error(1)
}

func (m *mockCategoriesTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Category), args.Error(1)
}

func (m *mockCategoriesTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Category), args.Error(1)
}

func (m *mockCategoriesTable) Update(ctx context.Context, id uuid.UUID, update *sqlconfig.CategoryUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockCategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCategoriesTable) SumRootAllocations(ctx context.Context, budgetID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, budgetID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockCategoriesTable) RecomputeParentAmount(ctx context.Context, parentID uuid.UUID) error {
	args := m.Called(ctx, parentID)
	return args.Error(0)
}

type mockTransactionsTable struct {
	mock.Mock
}

func (m *mockTransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionsTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionsTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTransactionsTable) ExistsGenerated(ctx context.Context, budgetID, categoryID uuid.UUID, title string, amount decimal.Decimal, date time.Time) (bool, error) {
	args := m.Called(ctx, budgetID, categoryID, title, amount, date)
	return args.Bool(0), args.Error(1)
}

func (m *mockTransactionsTable) SumIncomeByPayer(ctx context.Context, budgetID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]decimal.Decimal), args.Error(1)
}

type mockRecurringTable struct {
	mock.Mock
}

func (m *mockRecurringTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.RecurringTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.RecurringTemplate), args.Error(1)
}

func (m *mockRecurringTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*sqlconfig.RecurringTemplate, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.RecurringTemplate), args.Error(1)
}

func (m *mockRecurringTable) ListActiveByBudget(ctx context.Context, budgetID uuid.UUID) ([]*sqlconfig.RecurringTemplate, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.RecurringTemplate), args.Error(1)
}

func (m *mockRecurringTable) Insert(ctx context.Context, create *sqlconfig.RecurringTemplateCreate) (*sqlconfig.RecurringTemplate, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.RecurringTemplate), args.Error(1)
}

func (m *mockRecurringTable) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *mockRecurringTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMembersTable struct {
	mock.Mock
}

func (m *mockMembersTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Member), args.Error(1)
}

func (m *mockMembersTable) ListByBudget(ctx context.Context, budgetID uuid.UUID) ([]*sqlconfig.MemberWithUser, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.MemberWithUser), args.Error(1)
}

func (m *mockMembersTable) Insert(ctx context.Context, create *sqlconfig.MemberCreate) (*sqlconfig.Member, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Member), args.Error(1)
}

func (m *mockMembersTable) UpdateShare(ctx context.Context, id uuid.UUID, share decimal.Decimal) error {
	args := m.Called(ctx, id, share)
	return args.Error(0)
}

func (m *mockMembersTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMembersTable) IsMember(ctx context.Context, budgetID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, budgetID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockMembersTable) IsOwner(ctx context.Context, budgetID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, budgetID, userID)
	return args.Bool(0), args.Error(1)
}
