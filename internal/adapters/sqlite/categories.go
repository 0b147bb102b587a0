package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

// CreateCategory inserts a category row.
func (s *Store) CreateCategory(ctx context.Context, cat *domain.Category) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO wiki_categories (id, name, slug, description, color, sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, cat.ID, cat.Name, cat.Slug, nullable(cat.Description), cat.Color, cat.SortOrder,
		formatTime(cat.CreatedAt), formatTime(cat.UpdatedAt)); err != nil {
		return fmt.Errorf("inserting category: %w", err)
	}
	return nil
}

// GetCategory retrieves a category by ID, or (nil, nil) if it does not exist.
func (s *Store) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	var description sql.NullString
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, slug, description, color, sort_order, created_at, updated_at
		FROM wiki_categories WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Slug, &description, &c.Color, &c.SortOrder, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning category: %w", err)
	}

	c.Description = fromNullable(description)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory overwrites the mutable fields of a category row.
func (s *Store) UpdateCategory(ctx context.Context, cat *domain.Category) error {
	if _, err := s.db.ExecContext(ctx, `
		UPDATE wiki_categories
		SET name = ?, description = ?, color = ?, sort_order = ?, updated_at = ?
		WHERE id = ?
	`, cat.Name, nullable(cat.Description), cat.Color, cat.SortOrder,
		formatTime(cat.UpdatedAt), cat.ID); err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category row. The category_id foreign key on
// wiki_pages is declared ON DELETE SET NULL, so member pages survive
// uncategorized.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM wiki_categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

// ListCategories returns all categories with their published-page counts,
// ordered by sort order then name.
func (s *Store) ListCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT wc.id, wc.name, wc.slug, wc.description, wc.color, wc.sort_order,
		       wc.created_at, wc.updated_at, COUNT(wp.id)
		FROM wiki_categories wc
		LEFT JOIN wiki_pages wp ON wp.category_id = wc.id AND wp.status = 'published'
		GROUP BY wc.id
		ORDER BY wc.sort_order ASC, wc.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.CategoryCount{}
	for rows.Next() {
		var c domain.CategoryCount
		var description sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &description, &c.Color,
			&c.SortOrder, &createdAt, &updatedAt, &c.PageCount); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		c.Description = fromNullable(description)
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CategorySlugTaken reports whether any category already uses slug.
func (s *Store) CategorySlugTaken(ctx context.Context, slug string) (bool, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM wiki_categories WHERE slug = ?`, slug).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking category slug: %w", err)
	}
	return true, nil
}
