package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/tempo-networks/budget-server/internal/storage"
	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// CreateCategory inserts a category and, when it is a sub-category,
// rolls its amount up into the parent in the same transaction.
type CreateCategory struct {
	Create *sqlconfig.CategoryCreate

	// Created is set by Perform.
	Created *sqlconfig.Category

	IAction
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.Insert(ctx, c.Create)
	if err != nil {
		return err
	}

	if category.ParentID.Valid {
		if err = writer.Categories.RecomputeParentAmount(ctx, category.ParentID.UUID); err != nil {
			return err
		}
	}

	c.Created = category
	return nil
}

// UpdateCategory applies a partial update and keeps the parent's derived
// amount consistent.
type UpdateCategory struct {
	ID       uuid.UUID
	ParentID uuid.NullUUID
	Update   *sqlconfig.CategoryUpdate

	IAction
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Categories.Update(ctx, u.ID, u.Update); err != nil {
		return err
	}

	if u.ParentID.Valid && u.Update.Amount != nil {
		return writer.Categories.RecomputeParentAmount(ctx, u.ParentID.UUID)
	}
	return nil
}

// DeleteCategory removes a category and recomputes the former parent's
// amount from the remaining children.
type DeleteCategory struct {
	ID       uuid.UUID
	ParentID uuid.NullUUID

	IAction
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := writer.Categories.Delete(ctx, d.ID); err != nil {
		return err
	}

	if d.ParentID.Valid {
		return writer.Categories.RecomputeParentAmount(ctx, d.ParentID.UUID)
	}
	return nil
}
