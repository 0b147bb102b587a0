package commands

import (
	"context"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// GetPageCommand looks up a single page by ID.
type GetPageCommand struct {
	pages ports.PageStore

	PageID string
}

// NewGetPageCommand creates a new GetPageCommand
func NewGetPageCommand(pages ports.PageStore, pageID string) *GetPageCommand {
	return &GetPageCommand{pages: pages, PageID: pageID}
}

// Validate checks if the lookup is valid
func (c *GetPageCommand) Validate() error {
	if c.PageID == "" {
		return &application.ValidationError{Field: "page_id", Message: "page ID is required"}
	}
	return nil
}

// Execute runs the lookup
func (c *GetPageCommand) Execute(ctx context.Context) (*domain.PageMeta, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	page, err := c.pages.GetPage(ctx, c.PageID)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	if page == nil {
		return nil, &application.NotFoundError{Entity: "page", ID: c.PageID}
	}
	return page, nil
}

// GetPageBySlugCommand looks up a single page by its slug.
type GetPageBySlugCommand struct {
	pages ports.PageStore

	Slug string
}

// NewGetPageBySlugCommand creates a new GetPageBySlugCommand
func NewGetPageBySlugCommand(pages ports.PageStore, slug string) *GetPageBySlugCommand {
	return &GetPageBySlugCommand{pages: pages, Slug: slug}
}

// Validate checks if the lookup is valid
func (c *GetPageBySlugCommand) Validate() error {
	if c.Slug == "" {
		return &application.ValidationError{Field: "slug", Message: "slug is required"}
	}
	return nil
}

// Execute runs the lookup
func (c *GetPageBySlugCommand) Execute(ctx context.Context) (*domain.PageMeta, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	page, err := c.pages.GetPageBySlug(ctx, c.Slug)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	if page == nil {
		return nil, &application.NotFoundError{Entity: "page", ID: c.Slug}
	}
	return page, nil
}
