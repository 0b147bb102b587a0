package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// CreatePageResult contains the result of creating a page
type CreatePageResult struct {
	Page    *domain.Page
	Message string
}

// CreatePageCommand creates a page at version 1 together with its initial
// version snapshot.
type CreatePageCommand struct {
	pages ports.PageStore
	cats  ports.CategoryStore

	Actor      *domain.User
	Title      string
	Content    string
	CategoryID *string
	Tags       []string
	Status     string // empty defaults to draft
}

// NewCreatePageCommand creates a new CreatePageCommand
func NewCreatePageCommand(pages ports.PageStore, cats ports.CategoryStore, actor *domain.User) *CreatePageCommand {
	return &CreatePageCommand{
		pages: pages,
		cats:  cats,
		Actor: actor,
	}
}

// Validate checks if the create operation is valid
func (c *CreatePageCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if err := application.ValidateTitle(c.Title); err != nil {
		return err
	}
	if err := application.ValidateContent(c.Content); err != nil {
		return err
	}
	if err := application.ValidateTags(c.Tags); err != nil {
		return err
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

// Execute runs the create page command
func (c *CreatePageCommand) Execute(ctx context.Context) (*CreatePageResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
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

	status := domain.StatusDraft
	if c.Status != "" {
		status, _ = domain.ParseStatus(c.Status)
	}

	slug, err := c.uniqueSlug(ctx)
	if err != nil {
		return nil, err
	}

	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	page := &domain.Page{
		ID:         domain.NewID(),
		Title:      c.Title,
		Slug:       slug,
		Content:    c.Content,
		CategoryID: normalizeRef(c.CategoryID),
		Tags:       tags,
		Status:     status,
		AuthorID:   c.Actor.ID,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	summary := domain.InitialChangeSummary
	initial := &domain.Version{
		ID:            domain.NewID(),
		PageID:        page.ID,
		Title:         page.Title,
		Content:       page.Content,
		Version:       1,
		AuthorID:      c.Actor.ID,
		ChangeSummary: &summary,
		CreatedAt:     now,
	}

	if err := c.pages.CreatePage(ctx, page, initial); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &CreatePageResult{
		Page:    page,
		Message: fmt.Sprintf("Created page %s (%s)", page.Title, page.Slug),
	}, nil
}

// uniqueSlug derives the slug from the title and, if it is already taken,
// appends a short random disambiguator.
func (c *CreatePageCommand) uniqueSlug(ctx context.Context) (string, error) {
	slug := domain.Slugify(c.Title)
	taken, err := c.pages.SlugTaken(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("checking slug: %w", err)
	}
	if taken {
		slug = domain.Disambiguate(slug)
	}
	return slug, nil
}

// normalizeRef maps a nil or empty reference to nil.
func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}
