package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// CreateLinkResult contains the result of creating a board link
type CreateLinkResult struct {
	Link    *domain.BoardLink
	Message string
}

// CreateLinkCommand associates a page with a Pix3lBoard entity. The page
// must exist; the board-side identities are opaque and not verified.
type CreateLinkCommand struct {
	links ports.LinkStore
	pages ports.PageStore

	Actor       *domain.User
	PageID      string
	BoardID     *string
	CardID      *string
	WorkspaceID *string
	LinkType    string // empty defaults to reference
}

// NewCreateLinkCommand creates a new CreateLinkCommand
func NewCreateLinkCommand(links ports.LinkStore, pages ports.PageStore, actor *domain.User) *CreateLinkCommand {
	return &CreateLinkCommand{links: links, pages: pages, Actor: actor}
}

// Validate checks if the create operation is valid
func (c *CreateLinkCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if c.PageID == "" {
		return &application.ValidationError{Field: "wiki_page_id", Message: "page ID is required"}
	}
	if c.LinkType != "" {
		if _, ok := domain.ParseLinkType(c.LinkType); !ok {
			return &application.ValidationError{
				Field:   "link_type",
				Message: fmt.Sprintf("unknown link type: %s", c.LinkType),
			}
		}
	}
	return nil
}

// Execute runs the create link command
func (c *CreateLinkCommand) Execute(ctx context.Context) (*CreateLinkResult, error) {
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

	linkType := domain.LinkReference
	if c.LinkType != "" {
		linkType, _ = domain.ParseLinkType(c.LinkType)
	}

	link := &domain.BoardLink{
		ID:          domain.NewID(),
		PageID:      c.PageID,
		BoardID:     normalizeRef(c.BoardID),
		CardID:      normalizeRef(c.CardID),
		WorkspaceID: normalizeRef(c.WorkspaceID),
		LinkType:    linkType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.links.CreateLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return &CreateLinkResult{
		Link:    link,
		Message: fmt.Sprintf("Linked page %s (%s)", page.Slug, linkType),
	}, nil
}

// ListLinksCommand lists board links newest first, optionally filtered by
// page, board, or card.
type ListLinksCommand struct {
	links ports.LinkStore

	PageID  string
	BoardID string
	CardID  string
}

// NewListLinksCommand creates a new ListLinksCommand
func NewListLinksCommand(links ports.LinkStore) *ListLinksCommand {
	return &ListLinksCommand{links: links}
}

// Execute runs the listing
func (c *ListLinksCommand) Execute(ctx context.Context) ([]domain.BoardLink, error) {
	f := ports.LinkFilter{}
	if c.PageID != "" {
		f.PageID = &c.PageID
	}
	if c.BoardID != "" {
		f.BoardID = &c.BoardID
	}
	if c.CardID != "" {
		f.CardID = &c.CardID
	}

	links, err := c.links.ListLinks(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}
	return links, nil
}

// DeleteLinkResult contains the result of a link deletion
type DeleteLinkResult struct {
	DeletedID string
	Message   string
}

// DeleteLinkCommand removes a board link.
type DeleteLinkCommand struct {
	links ports.LinkStore

	Actor  *domain.User
	LinkID string
}

// NewDeleteLinkCommand creates a new DeleteLinkCommand
func NewDeleteLinkCommand(links ports.LinkStore, actor *domain.User, linkID string) *DeleteLinkCommand {
	return &DeleteLinkCommand{links: links, Actor: actor, LinkID: linkID}
}

// Validate checks if the delete operation is valid
func (c *DeleteLinkCommand) Validate() error {
	if c.Actor == nil {
		return application.ErrUnauthenticated
	}
	if c.LinkID == "" {
		return &application.ValidationError{Field: "link_id", Message: "link ID is required"}
	}
	return nil
}

// Execute runs the delete link command
func (c *DeleteLinkCommand) Execute(ctx context.Context) (*DeleteLinkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	existing, err := c.links.GetLink(ctx, c.LinkID)
	if err != nil {
		return nil, fmt.Errorf("reading link: %w", err)
	}
	if existing == nil {
		return nil, &application.NotFoundError{Entity: "link", ID: c.LinkID}
	}

	if err := c.links.DeleteLink(ctx, c.LinkID); err != nil {
		return nil, fmt.Errorf("failed to delete link %s: %w", c.LinkID, err)
	}

	return &DeleteLinkResult{
		DeletedID: c.LinkID,
		Message:   "Deleted link",
	}, nil
}
