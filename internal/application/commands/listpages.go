package commands

import (
	"context"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// ListPagesCommand lists pages newest-updated first, optionally filtered by
// status and category, paginated with the shared limit cap.
type ListPagesCommand struct {
	pages ports.PageStore

	Status     string // empty means any
	CategoryID string // empty means any
	Limit      int
	Offset     int
}

// NewListPagesCommand creates a new ListPagesCommand
func NewListPagesCommand(pages ports.PageStore) *ListPagesCommand {
	return &ListPagesCommand{pages: pages}
}

// Validate checks if the listing parameters are valid
func (c *ListPagesCommand) Validate() error {
	if c.Status != "" {
		if _, ok := domain.ParseStatus(c.Status); !ok {
			return &application.ValidationError{
				Field:   "status",
				Message: fmt.Sprintf("unknown status: %s", c.Status),
			}
		}
	}
	return nil
}

// Execute runs the listing
func (c *ListPagesCommand) Execute(ctx context.Context) ([]domain.PageMeta, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	f := ports.PageFilter{
		Limit:  application.ClampLimit(c.Limit),
		Offset: application.ClampOffset(c.Offset),
	}
	if c.Status != "" {
		status, _ := domain.ParseStatus(c.Status)
		f.Status = &status
	}
	if c.CategoryID != "" {
		f.CategoryID = &c.CategoryID
	}

	pages, err := c.pages.ListPages(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	return pages, nil
}
