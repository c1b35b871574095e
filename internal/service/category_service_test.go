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

type categoryFixture struct {
	svc        *CategoryService
	budgets    *mockBudgetsTable
	categories *mockCategoriesTable

	// writerCategories is the gateway the operator action writes through.
	writerCategories *mockCategoriesTable
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	t.Helper()

	f := &categoryFixture{
		budgets:          new(mockBudgetsTable),
		categories:       new(mockCategoriesTable),
		writerCategories: new(mockCategoriesTable),
	}
	store := &storage.Storage{
		Budgets:    f.budgets,
		Categories: f.categories,
	}
	writer := &storage.Writer{Categories: f.writerCategories}
	f.svc = NewCategoryService(store, &stubProcessor{writer: writer})
	return f
}

func (f *categoryFixture) expectMemberAccess(budgetID, userID uuid.UUID) {
	f.budgets.On("FindByID", mock.Anything, budgetID).Return(&sqlconfig.Budget{
		ID:         budgetID,
		UserID:     userID,
		BudgetType: sqlconfig.BudgetTypePersonal,
	}, nil)
}

func TestCreateCategory_ChildRollsUpIntoParent(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())

	f := newCategoryFixture(t)
	f.expectMemberAccess(budgetID, userID)
	f.categories.On("FindByID", mock.Anything, parentID).Return(&sqlconfig.Category{
		ID:       parentID,
		BudgetID: budgetID,
		Name:     "Groceries",
	}, nil)

	f.writerCategories.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.CategoryCreate) bool {
		return c.BudgetID == budgetID && c.ParentID.UUID == parentID && c.ParentID.Valid
	})).Return(&sqlconfig.Category{
		ID:       uuid.Must(uuid.NewV4()),
		BudgetID: budgetID,
		ParentID: uuid.NullUUID{UUID: parentID, Valid: true},
		Name:     "Produce",
		Amount:   decimal.RequireFromString("150.00"),
	}, nil)
	f.writerCategories.On("RecomputeParentAmount", mock.Anything, parentID).Return(nil)

	created, err := f.svc.CreateCategory(context.Background(), userID, budgetID, &parentID,
		"Produce", decimal.RequireFromString("150.00"))
	require.NoError(t, err)

	require.NotNil(t, created.ParentID)
	assert.Equal(t, parentID, *created.ParentID)
	f.writerCategories.AssertCalled(t, "RecomputeParentAmount", mock.Anything, parentID)
}

func TestCreateCategory_RootSkipsRollup(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	f := newCategoryFixture(t)
	f.expectMemberAccess(budgetID, userID)

	f.writerCategories.On("Insert", mock.Anything, mock.Anything).Return(&sqlconfig.Category{
		ID:       uuid.Must(uuid.NewV4()),
		BudgetID: budgetID,
		Name:     "Rent",
		Amount:   decimal.RequireFromString("1200.00"),
	}, nil)

	created, err := f.svc.CreateCategory(context.Background(), userID, budgetID, nil,
		"Rent", decimal.RequireFromString("1200.00"))
	require.NoError(t, err)

	assert.Nil(t, created.ParentID)
	f.writerCategories.AssertNotCalled(t, "RecomputeParentAmount", mock.Anything, mock.Anything)
}

func TestCreateCategory_ParentFromOtherBudgetRejected(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())

	f := newCategoryFixture(t)
	f.expectMemberAccess(budgetID, userID)
	f.categories.On("FindByID", mock.Anything, parentID).Return(&sqlconfig.Category{
		ID:       parentID,
		BudgetID: uuid.Must(uuid.NewV4()),
	}, nil)

	_, err := f.svc.CreateCategory(context.Background(), userID, budgetID, &parentID,
		"Produce", decimal.RequireFromString("150.00"))
	assert.ErrorIs(t, err, ErrNotFound)
	f.writerCategories.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestDeleteCategory_RecomputesFormerParent(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())
	parentID := uuid.Must(uuid.NewV4())
	childID := uuid.Must(uuid.NewV4())

	f := newCategoryFixture(t)
	f.expectMemberAccess(budgetID, userID)
	f.categories.On("FindByID", mock.Anything, childID).Return(&sqlconfig.Category{
		ID:       childID,
		BudgetID: budgetID,
		ParentID: uuid.NullUUID{UUID: parentID, Valid: true},
	}, nil)

	f.writerCategories.On("Delete", mock.Anything, childID).Return(nil)
	f.writerCategories.On("RecomputeParentAmount", mock.Anything, parentID).Return(nil)

	err := f.svc.DeleteCategory(context.Background(), userID, budgetID, childID)
	require.NoError(t, err)

	f.writerCategories.AssertCalled(t, "Delete", mock.Anything, childID)
	f.writerCategories.AssertCalled(t, "RecomputeParentAmount", mock.Anything, parentID)
}
