package domain

import "time"

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#8b5cf6"

// Category groups pages for display. Deleting a category never deletes its
// pages; their category reference is nulled instead.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryCount is a category together with the number of published pages in
// it.
type CategoryCount struct {
	Category
	PageCount int `json:"page_count"`
}
