package commands

import (
	"context"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// SearchPagesCommand finds pages whose title or content contains the query
// as a raw substring. There is no tokenization or ranking; case semantics
// are whatever the store's LIKE operator provides. Status defaults to
// published when not supplied.
type SearchPagesCommand struct {
	pages ports.PageStore

	Query      string
	Status     string // empty defaults to published
	CategoryID string // empty means any
	Limit      int
	Offset     int
}

// NewSearchPagesCommand creates a new SearchPagesCommand
func NewSearchPagesCommand(pages ports.PageStore, query string) *SearchPagesCommand {
	return &SearchPagesCommand{pages: pages, Query: query}
}

// Validate checks if the search parameters are valid
func (c *SearchPagesCommand) Validate() error {
	if c.Query == "" {
		return &application.ValidationError{Field: "q", Message: "search query is required"}
	}
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

// Execute runs the search
func (c *SearchPagesCommand) Execute(ctx context.Context) ([]domain.PageMeta, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	status := domain.StatusPublished
	if c.Status != "" {
		status, _ = domain.ParseStatus(c.Status)
	}

	f := ports.PageFilter{
		Status: &status,
		Limit:  application.ClampLimit(c.Limit),
		Offset: application.ClampOffset(c.Offset),
	}
	if c.CategoryID != "" {
		f.CategoryID = &c.CategoryID
	}

	pages, err := c.pages.SearchPages(ctx, c.Query, f)
	if err != nil {
		return nil, fmt.Errorf("searching pages: %w", err)
	}
	return pages, nil
}
