package domain

import "time"

// Status is the publication state of a page. It is a flat tagged value:
// any status may be set to any other, there is no transition guard.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ParseStatus returns the Status for s, or false if s is not a known status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(s), true
	}
	return "", false
}

// Page is the current, mutable state of a wiki page. Version counts up from 1
// and always matches the highest version number in the page's history.
type Page struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	CategoryID *string   `json:"category_id"`
	Tags       []string  `json:"tags"`
	Status     Status    `json:"status"`
	AuthorID   string    `json:"author_id"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PageMeta is a page row joined with display fields of its author and
// category, as listings and lookups return it.
type PageMeta struct {
	Page
	AuthorName    string  `json:"author_name"`
	AuthorEmail   string  `json:"author_email"`
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
}
