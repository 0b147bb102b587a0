package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// UpdatePageResult contains the result of updating a page
type UpdatePageResult struct {
	NewVersion int
	Message    string
}

// UpdatePageCommand applies a partial update to a page: it reads the current
// row, merges the supplied fields, bumps the version counter, and appends a
// version snapshot carrying the resulting title and content. Every update
// produces a new version entry, even a metadata-only one; there is no no-op
// detection.
//
// Nil fields are left unchanged. CategoryID pointing at an empty string
// clears the category. A nil Tags slice leaves tags unchanged; an empty
// non-nil slice clears them.
type UpdatePageCommand struct {
	pages ports.PageStore
	cats  ports.CategoryStore

	Actor  *domain.User
	PageID string

	Title         *string
	Content       *string
	CategoryID    *string
	Tags          []string
	Status        *string
	ChangeSummary *string
}

// NewUpdatePageCommand creates a new UpdatePageCommand
func NewUpdatePageCommand(pages ports.PageStore, cats ports.CategoryStore, actor *domain.User, pageID string) *UpdatePageCommand {
	return &UpdatePageCommand{
		pages:  pages,
		cats:   cats,
		Actor:  actor,
		PageID: pageID,
	}
}

// Validate checks if the update operation is valid
func (c *UpdatePageCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if c.PageID == "" {
		return &application.ValidationError{Field: "page_id", Message: "page ID is required"}
	}
	if c.Title != nil {
		if err := application.ValidateTitle(*c.Title); err != nil {
			return err
		}
	}
	if c.Content != nil {
		if err := application.ValidateContent(*c.Content); err != nil {
			return err
		}
	}
	if c.Tags != nil {
		if err := application.ValidateTags(c.Tags); err != nil {
			return err
		}
	}
	if c.Status != nil {
		if _, ok := domain.ParseStatus(*c.Status); !ok {
			return &application.ValidationError{
				Field:   "status",
				Message: fmt.Sprintf("unknown status: %s", *c.Status),
			}
		}
	}
	if c.ChangeSummary != nil {
		if err := application.ValidateSummary(*c.ChangeSummary); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the update page command
func (c *UpdatePageCommand) Execute(ctx context.Context) (*UpdatePageResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	current, err := c.pages.GetPage(ctx, c.PageID)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}
	if current == nil {
		return nil, &application.NotFoundError{Entity: "page", ID: c.PageID}
	}

	if c.CategoryID != nil && *c.CategoryID != "" {
		cat, err := c.cats.GetCategory(ctx, *c.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("looking up category: %w", err)
		}
		if cat == nil {
			return nil, &application.ValidationError{
				Field:   "category_id",
				Message: fmt.Sprintf("category %s does not exist", *c.CategoryID),
			}
		}
	}

	merged := current.Page
	merged.Version = current.Version + 1
	merged.UpdatedAt = time.Now().UTC()

	if c.Title != nil {
		merged.Title = *c.Title
	}
	if c.Content != nil {
		merged.Content = *c.Content
	}
	if c.CategoryID != nil {
		merged.CategoryID = normalizeRef(c.CategoryID)
	}
	if c.Tags != nil {
		merged.Tags = c.Tags
	}
	if c.Status != nil {
		merged.Status, _ = domain.ParseStatus(*c.Status)
	}

	snapshot := &domain.Version{
		ID:            domain.NewID(),
		PageID:        merged.ID,
		Title:         merged.Title,
		Content:       merged.Content,
		Version:       merged.Version,
		AuthorID:      c.Actor.ID,
		ChangeSummary: c.ChangeSummary,
		CreatedAt:     merged.UpdatedAt,
	}

	if err := c.pages.UpdatePage(ctx, &merged, snapshot, current.Version); err != nil {
		return nil, fmt.Errorf("failed to update page %s: %w", c.PageID, err)
	}

	return &UpdatePageResult{
		NewVersion: merged.Version,
		Message:    fmt.Sprintf("Updated %s to version %d", merged.Slug, merged.Version),
	}, nil
}
