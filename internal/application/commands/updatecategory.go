package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// UpdateCategoryResult contains the result of updating a category
type UpdateCategoryResult struct {
	Category *domain.Category
	Message  string
}

// UpdateCategoryCommand applies a partial update to a category. The slug is
// never rewritten, even when the name changes; existing URLs stay valid.
type UpdateCategoryCommand struct {
	cats ports.CategoryStore

	Actor      *domain.User
	CategoryID string

	Name        *string
	Description *string
	Color       *string
	SortOrder   *int
}

// NewUpdateCategoryCommand creates a new UpdateCategoryCommand
func NewUpdateCategoryCommand(cats ports.CategoryStore, actor *domain.User, categoryID string) *UpdateCategoryCommand {
	return &UpdateCategoryCommand{cats: cats, Actor: actor, CategoryID: categoryID}
}

// Validate checks if the update operation is valid
func (c *UpdateCategoryCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if c.CategoryID == "" {
		return &application.ValidationError{Field: "category_id", Message: "category ID is required"}
	}
	if c.Name != nil {
		if err := application.ValidateName(*c.Name); err != nil {
			return err
		}
	}
	if c.Description != nil {
		if err := application.ValidateDescription(*c.Description); err != nil {
			return err
		}
	}
	if c.Color != nil {
		if err := application.ValidateColor(*c.Color); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the update category command
func (c *UpdateCategoryCommand) Execute(ctx context.Context) (*UpdateCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	current, err := c.cats.GetCategory(ctx, c.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("reading category: %w", err)
	}
	if current == nil {
		return nil, &application.NotFoundError{Entity: "category", ID: c.CategoryID}
	}

	merged := *current
	merged.UpdatedAt = time.Now().UTC()
	if c.Name != nil {
		merged.Name = *c.Name
	}
	if c.Description != nil {
		merged.Description = c.Description
	}
	if c.Color != nil {
		merged.Color = *c.Color
	}
	if c.SortOrder != nil {
		merged.SortOrder = *c.SortOrder
	}

	if err := c.cats.UpdateCategory(ctx, &merged); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", c.CategoryID, err)
	}

	return &UpdateCategoryResult{
		Category: &merged,
		Message:  fmt.Sprintf("Updated category %s", merged.Name),
	}, nil
}
