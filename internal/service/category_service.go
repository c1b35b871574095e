package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/operator/actions"
	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// CategoryService handles category business logic. Writes that touch a
// parent's derived amount run through the operator so the rollup stays
// consistent.
type CategoryService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, op actionProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

// CreateCategory creates a category in a budget the user can access.
// A parent, when given, must belong to the same budget.
func (s *CategoryService) CreateCategory(ctx context.Context, userID, budgetID uuid.UUID, parentID *uuid.UUID, name string, amount decimal.Decimal) (Category, error) {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return Category{}, err
	}

	create := &sqlconfig.CategoryCreate{
		BudgetID: budgetID,
		Name:     name,
		Amount:   amount,
	}
	if parentID != nil {
		parent, err := s.findInBudget(ctx, *parentID, budgetID)
		if err != nil {
			return Category{}, err
		}
		create.ParentID = uuid.NullUUID{UUID: parent.ID, Valid: true}
	}

	action := &actions.CreateCategory{Create: create}
	if err := s.operator.Process(ctx, action); err != nil {
		return Category{}, err
	}
	return categoryFromStorage(action.Created), nil
}

// ListCategories returns all categories of a budget.
func (s *CategoryService) ListCategories(ctx context.Context, userID, budgetID uuid.UUID) ([]Category, error) {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return nil, err
	}

	rows, err := s.storage.Categories.ListByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

// UpdateCategory applies a partial update to a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID, update CategoryUpdate) (Category, error) {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return Category{}, err
	}

	row, err := s.findInBudget(ctx, categoryID, budgetID)
	if err != nil {
		return Category{}, err
	}

	action := &actions.UpdateCategory{
		ID:       categoryID,
		ParentID: row.ParentID,
		Update: &sqlconfig.CategoryUpdate{
			Name:   update.Name,
			Amount: update.Amount,
		},
	}
	if err = s.operator.Process(ctx, action); err != nil {
		return Category{}, err
	}

	updated, err := s.storage.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return Category{}, err
	}
	return categoryFromStorage(updated), nil
}

// DeleteCategory removes a category and its transactions.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID) error {
	if _, err := getBudgetForMember(ctx, s.storage, budgetID, userID); err != nil {
		return err
	}

	row, err := s.findInBudget(ctx, categoryID, budgetID)
	if err != nil {
		return err
	}

	return s.operator.Process(ctx, &actions.DeleteCategory{
		ID:       categoryID,
		ParentID: row.ParentID,
	})
}

func (s *CategoryService) findInBudget(ctx context.Context, categoryID, budgetID uuid.UUID) (*sqlconfig.Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if row.BudgetID != budgetID {
		return nil, ErrNotFound
	}
	return row, nil
}
