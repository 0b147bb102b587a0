package ports

import (
	"context"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

// PageFilter narrows page listings and searches. A nil field means "any".
// Limit <= 0 means no limit (callers that serve requests clamp it first).
type PageFilter struct {
	Status     *domain.Status
	CategoryID *string
	Limit      int
	Offset     int
}

// PageStore owns page rows and their version log. Lookups return (nil, nil)
// when the page does not exist.
//
// CreatePage and UpdatePage write the page row and its version-log row as a
// single transaction: either both commit or neither does.
type PageStore interface {
	// CreatePage inserts a new page at version 1 together with its initial
	// version snapshot.
	CreatePage(ctx context.Context, page *domain.Page, initial *domain.Version) error

	// UpdatePage overwrites the page row and appends snapshot, but only if
	// the stored version still equals expectedVersion; otherwise nothing is
	// written and application.ErrVersionConflict is returned.
	UpdatePage(ctx context.Context, page *domain.Page, snapshot *domain.Version, expectedVersion int) error

	// DeletePage removes the page row; versions and board links cascade.
	DeletePage(ctx context.Context, id string) error

	GetPage(ctx context.Context, id string) (*domain.PageMeta, error)
	GetPageBySlug(ctx context.Context, slug string) (*domain.PageMeta, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)

	ListPages(ctx context.Context, f PageFilter) ([]domain.PageMeta, error)

	// SearchPages matches q as a raw substring of title or content, with
	// whatever case semantics the store's LIKE operator has.
	SearchPages(ctx context.Context, q string, f PageFilter) ([]domain.PageMeta, error)

	// ListVersions returns the page's history, newest first.
	ListVersions(ctx context.Context, pageID string) ([]domain.VersionMeta, error)
}

// CategoryStore owns category rows. Lookups return (nil, nil) when absent.
type CategoryStore interface {
	CreateCategory(ctx context.Context, cat *domain.Category) error
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, cat *domain.Category) error

	// DeleteCategory removes the category; member pages survive with their
	// category reference nulled.
	DeleteCategory(ctx context.Context, id string) error

	// ListCategories returns all categories with published-page counts,
	// ordered by sort order then name.
	ListCategories(ctx context.Context) ([]domain.CategoryCount, error)

	CategorySlugTaken(ctx context.Context, slug string) (bool, error)
}

// LinkFilter narrows board-link listings. A nil field means "any".
type LinkFilter struct {
	PageID  *string
	BoardID *string
	CardID  *string
}

// LinkStore owns cross-product link rows.
type LinkStore interface {
	CreateLink(ctx context.Context, link *domain.BoardLink) error
	GetLink(ctx context.Context, id string) (*domain.BoardLink, error)
	ListLinks(ctx context.Context, f LinkFilter) ([]domain.BoardLink, error)
	DeleteLink(ctx context.Context, id string) error
}
