package commands

import (
	"context"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// DeleteCategoryResult contains the result of a category deletion
type DeleteCategoryResult struct {
	DeletedID string
	Message   string
}

// DeleteCategoryCommand removes a category. Administrators only. Member
// pages are not deleted; their category reference is nulled by the store.
type DeleteCategoryCommand struct {
	cats ports.CategoryStore

	Actor      *domain.User
	CategoryID string
}

// NewDeleteCategoryCommand creates a new DeleteCategoryCommand
func NewDeleteCategoryCommand(cats ports.CategoryStore, actor *domain.User, categoryID string) *DeleteCategoryCommand {
	return &DeleteCategoryCommand{cats: cats, Actor: actor, CategoryID: categoryID}
}

// Validate checks if the delete operation is valid
func (c *DeleteCategoryCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if !c.Actor.IsAdmin {
		return application.ErrForbidden
	}
	if c.CategoryID == "" {
		return &application.ValidationError{Field: "category_id", Message: "category ID is required"}
	}
	return nil
}

// Execute runs the delete category command
func (c *DeleteCategoryCommand) Execute(ctx context.Context) (*DeleteCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := c.cats.GetCategory(ctx, c.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("reading category: %w", err)
	}
	if existing == nil {
		return nil, &application.NotFoundError{Entity: "category", ID: c.CategoryID}
	}

	if err := c.cats.DeleteCategory(ctx, c.CategoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category %s: %w", c.CategoryID, err)
	}

	return &DeleteCategoryResult{
		DeletedID: c.CategoryID,
		Message:   fmt.Sprintf("Deleted category %s", existing.Name),
	}, nil
}
