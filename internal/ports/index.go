package ports

import "github.com/Pix3ltools-lab/pix3lwiki/internal/domain"

// PageHit is one full-text search result.
type PageHit struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Slug      string              `json:"slug"`
	Score     float64             `json:"score"`
	Fragments map[string][]string `json:"fragments,omitempty"`
}

// PageIndex is an optional full-text index over pages. It is advisory only:
// the store is always the source of truth, and index failures never fail a
// mutation. Implementations are updated best-effort after commits and can be
// rebuilt from the store at any time.
type PageIndex interface {
	IndexPage(page *domain.PageMeta) error
	DeletePage(id string) error
	Search(q string, limit int) ([]PageHit, error)
	Rebuild(pages []domain.PageMeta) error
	Count() (uint64, error)
	Close() error
}
