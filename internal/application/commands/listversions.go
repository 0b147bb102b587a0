package commands

import (
	"context"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// ListVersionsCommand returns a page's version history, newest first.
type ListVersionsCommand struct {
	pages ports.PageStore

	PageID string
}

// NewListVersionsCommand creates a new ListVersionsCommand
func NewListVersionsCommand(pages ports.PageStore, pageID string) *ListVersionsCommand {
	return &ListVersionsCommand{pages: pages, PageID: pageID}
}

// Validate checks if the listing is valid
func (c *ListVersionsCommand) Validate() error {
	if c.PageID == "" {
		return &application.ValidationError{Field: "page_id", Message: "page ID is required"}
	}
	return nil
}

// Execute runs the listing
func (c *ListVersionsCommand) Execute(ctx context.Context) ([]domain.VersionMeta, error) {
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

	versions, err := c.pages.ListVersions(ctx, c.PageID)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	return versions, nil
}
