package domain

import "time"

// InitialChangeSummary is recorded on the version created alongside a page.
const InitialChangeSummary = "Initial version"

// Version is an immutable snapshot of a page's title and content at one
// point in its history. Versions are only ever created, never updated, and
// are removed only by the cascade when their page is deleted.
type Version struct {
	ID            string    `json:"id"`
	PageID        string    `json:"page_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Version       int       `json:"version"`
	AuthorID      string    `json:"author_id"`
	ChangeSummary *string   `json:"change_summary"`
	CreatedAt     time.Time `json:"created_at"`
}

// VersionMeta is a version row joined with the editing author's display
// fields.
type VersionMeta struct {
	Version
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}
