package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// CreateCategoryResult contains the result of creating a category
type CreateCategoryResult struct {
	Category *domain.Category
	Message  string
}

// CreateCategoryCommand creates a category. The slug is derived from the
// name with the same collision scheme pages use.
type CreateCategoryCommand struct {
	cats ports.CategoryStore

	Actor       *domain.User
	Name        string
	Description *string
	Color       string // empty defaults to domain.DefaultCategoryColor
	SortOrder   int
}

// NewCreateCategoryCommand creates a new CreateCategoryCommand
func NewCreateCategoryCommand(cats ports.CategoryStore, actor *domain.User) *CreateCategoryCommand {
	return &CreateCategoryCommand{cats: cats, Actor: actor}
}

// Validate checks if the create operation is valid
func (c *CreateCategoryCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if err := application.ValidateName(c.Name); err != nil {
		return err
	}
	if c.Description != nil {
		if err := application.ValidateDescription(*c.Description); err != nil {
			return err
		}
	}
	if c.Color != "" {
		if err := application.ValidateColor(c.Color); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the create category command
func (c *CreateCategoryCommand) Execute(ctx context.Context) (*CreateCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	slug := domain.Slugify(c.Name)
	taken, err := c.cats.CategorySlugTaken(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("checking slug: %w", err)
	}
	if taken {
		slug = domain.Disambiguate(slug)
	}

	color := c.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	now := time.Now().UTC()
	cat := &domain.Category{
		ID:          domain.NewID(),
		Name:        c.Name,
		Slug:        slug,
		Description: c.Description,
		Color:       color,
		SortOrder:   c.SortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.cats.CreateCategory(ctx, cat); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryResult{
		Category: cat,
		Message:  fmt.Sprintf("Created category %s (%s)", cat.Name, cat.Slug),
	}, nil
}
