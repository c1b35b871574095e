package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// CreateBudget inserts a budget and, for group budgets, the creator's
// owner membership in the same transaction.
type CreateBudget struct {
	UserID     uuid.UUID
	Name       string
	BudgetType sqlconfig.BudgetType

	// Created is set by Perform.
	Created *sqlconfig.Budget

	IAction
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	budget, err := writer.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		UserID:     c.UserID,
		Name:       c.Name,
		BudgetType: c.BudgetType,
	})
	if err != nil {
		return err
	}

	if c.BudgetType == sqlconfig.BudgetTypeGroup {
		_, err = writer.Members.Insert(ctx, &sqlconfig.MemberCreate{
			BudgetID: budget.ID,
			UserID:   c.UserID,
			Role:     sqlconfig.MemberRoleOwner,
			Share:    decimal.Zero,
		})
		if err != nil {
			return err
		}
	}

	c.Created = budget
	return nil
}
