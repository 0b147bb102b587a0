package commands

import (
	"context"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// DeletePageResult contains the result of a page deletion
type DeletePageResult struct {
	DeletedID string
	Message   string
}

// DeletePageCommand removes a page; its versions and board links cascade.
// Only the page's original author or an administrator may delete it.
type DeletePageCommand struct {
	pages ports.PageStore

	Actor  *domain.User
	PageID string
}

// NewDeletePageCommand creates a new DeletePageCommand
func NewDeletePageCommand(pages ports.PageStore, actor *domain.User, pageID string) *DeletePageCommand {
	return &DeletePageCommand{
		pages:  pages,
		Actor:  actor,
		PageID: pageID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeletePageCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if c.PageID == "" {
		return &application.ValidationError{Field: "page_id", Message: "page ID is required"}
	}
	return nil
}

// Execute runs the delete page command
func (c *DeletePageCommand) Execute(ctx context.Context) (*DeletePageResult, error) {
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

	if page.AuthorID != c.Actor.ID && !c.Actor.IsAdmin {
		return nil, application.ErrForbidden
	}

	if err := c.pages.DeletePage(ctx, c.PageID); err != nil {
		return nil, fmt.Errorf("failed to delete page %s: %w", c.PageID, err)
	}

	return &DeletePageResult{
		DeletedID: c.PageID,
		Message:   fmt.Sprintf("Deleted page %s", page.Slug),
	}, nil
}
