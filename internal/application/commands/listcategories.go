package commands

import (
	"context"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// ListCategoriesCommand lists all categories with their published-page
// counts, ordered for display.
type ListCategoriesCommand struct {
	cats ports.CategoryStore
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(cats ports.CategoryStore) *ListCategoriesCommand {
	return &ListCategoriesCommand{cats: cats}
}

// Execute runs the listing
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]domain.CategoryCount, error) {
	categories, err := c.cats.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// GetCategoryCommand looks up a single category by ID.
type GetCategoryCommand struct {
	cats ports.CategoryStore

	CategoryID string
}

// NewGetCategoryCommand creates a new GetCategoryCommand
func NewGetCategoryCommand(cats ports.CategoryStore, categoryID string) *GetCategoryCommand {
	return &GetCategoryCommand{cats: cats, CategoryID: categoryID}
}

// Validate checks if the lookup is valid
func (c *GetCategoryCommand) Validate() error {
	if c.CategoryID == "" {
		return &application.ValidationError{Field: "category_id", Message: "category ID is required"}
	}
	return nil
}

// Execute runs the lookup
func (c *GetCategoryCommand) Execute(ctx context.Context) (*domain.Category, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, err := c.cats.GetCategory(ctx, c.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("reading category: %w", err)
	}
	if cat == nil {
		return nil, &application.NotFoundError{Entity: "category", ID: c.CategoryID}
	}
	return cat, nil
}
