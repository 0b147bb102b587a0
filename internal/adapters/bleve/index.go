// Package bleve provides an optional full-text index over wiki pages. The
// SQLite store stays the source of truth; this index only serves keyword
// search and can be rebuilt from the store at any time.
package bleve

import (
	"fmt"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// Index wraps a Bleve index implementing ports.PageIndex.
type Index struct {
	index bleve.Index
}

var _ ports.PageIndex = (*Index)(nil)

// indexedPage is the document shape stored in the index. Only published
// pages are indexed; drafts and archived pages are removed.
type indexedPage struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Author    string
	Category  string
	Tags      []string
	UpdatedAt time.Time
}

// Open opens the index at path, creating it with the wiki mapping when it
// does not exist yet.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()

	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = "en"

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("ID", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Title", titleFieldMapping)
	docMapping.AddFieldMappingsAt("Slug", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Content", textFieldMapping)
	docMapping.AddFieldMappingsAt("Author", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Category", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Tags", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// Close closes the index.
func (i *Index) Close() error {
	return i.index.Close()
}

// IndexPage adds or updates a page in the index. Pages that are not
// published are deleted instead, so a page archived through an update
// drops out of search.
func (i *Index) IndexPage(page *domain.PageMeta) error {
	if page.Status != domain.StatusPublished {
		return i.DeletePage(page.ID)
	}
	return i.index.Index(page.ID, toIndexed(page))
}

// DeletePage removes a page from the index. Deleting an unindexed page is
// not an error.
func (i *Index) DeletePage(id string) error {
	return i.index.Delete(id)
}

// Search runs a query-string query (quotes, boolean operators and fuzzy ~
// all work) and returns scored hits with highlighted fragments.
func (i *Index) Search(q string, limit int) ([]ports.PageHit, error) {
	query := bleve.NewQueryStringQuery(q)

	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	req.Highlight = bleve.NewHighlightWithStyle("html")
	req.Fields = []string{"Title", "Slug"}

	results, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := []ports.PageHit{}
	for _, hit := range results.Hits {
		h := ports.PageHit{
			ID:        hit.ID,
			Score:     hit.Score,
			Fragments: hit.Fragments,
		}
		if title, ok := hit.Fields["Title"].(string); ok {
			h.Title = title
		}
		if slug, ok := hit.Fields["Slug"].(string); ok {
			h.Slug = slug
		}
		hits = append(hits, h)
	}
	return hits, nil
}

// Rebuild replaces the indexed set with the published pages in pages,
// writing them in one batch.
func (i *Index) Rebuild(pages []domain.PageMeta) error {
	batch := i.index.NewBatch()
	for idx := range pages {
		page := &pages[idx]
		if page.Status != domain.StatusPublished {
			batch.Delete(page.ID)
			continue
		}
		if err := batch.Index(page.ID, toIndexed(page)); err != nil {
			return fmt.Errorf("batch index %s: %w", page.ID, err)
		}
	}
	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// Count returns the number of indexed pages.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

func toIndexed(page *domain.PageMeta) *indexedPage {
	doc := &indexedPage{
		ID:        page.ID,
		Title:     page.Title,
		Slug:      page.Slug,
		Content:   page.Content,
		Author:    page.AuthorName,
		Tags:      page.Tags,
		UpdatedAt: page.UpdatedAt,
	}
	if page.CategoryName != nil {
		doc.Category = *page.CategoryName
	}
	return doc
}
