package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/application"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

const pageSelect = `
	SELECT wp.id, wp.title, wp.slug, wp.content, wp.category_id, wp.tags,
	       wp.status, wp.author_id, wp.version, wp.created_at, wp.updated_at,
	       u.name, u.email, wc.name, wc.color
	FROM wiki_pages wp
	JOIN users u ON wp.author_id = u.id
	LEFT JOIN wiki_categories wc ON wp.category_id = wc.id
`

// CreatePage inserts the page row and its initial version snapshot in one
// transaction.
func (s *Store) CreatePage(ctx context.Context, page *domain.Page, initial *domain.Version) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	tags, err := encodeTags(page.Tags)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO wiki_pages (id, title, slug, content, category_id, tags, status, author_id, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.Title, page.Slug, page.Content, nullable(page.CategoryID), tags,
		string(page.Status), page.AuthorID, page.Version, formatTime(page.CreatedAt), formatTime(page.UpdatedAt)); err != nil {
		return fmt.Errorf("inserting page: %w", err)
	}

	if err := insertVersion(ctx, tx, initial); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing page create: %w", err)
	}
	return nil
}

// UpdatePage overwrites the page row and appends the version snapshot in one
// transaction. The page row write is guarded by a compare-and-swap on the
// version column: if another writer got there first, nothing is written and
// application.ErrVersionConflict is returned.
func (s *Store) UpdatePage(ctx context.Context, page *domain.Page, snapshot *domain.Version, expectedVersion int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	tags, err := encodeTags(page.Tags)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE wiki_pages
		SET title = ?, content = ?, category_id = ?, tags = ?, status = ?,
		    version = ?, updated_at = ?
		WHERE id = ? AND version = ?
	`, page.Title, page.Content, nullable(page.CategoryID), tags, string(page.Status),
		page.Version, formatTime(page.UpdatedAt), page.ID, expectedVersion)
	if err != nil {
		return fmt.Errorf("updating page: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return application.ErrVersionConflict
	}

	if err := insertVersion(ctx, tx, snapshot); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing page update: %w", err)
	}
	return nil
}

func insertVersion(ctx context.Context, tx *sql.Tx, v *domain.Version) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO wiki_versions (id, page_id, title, content, version, author_id, change_summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.PageID, v.Title, v.Content, v.Version, v.AuthorID, nullable(v.ChangeSummary), formatTime(v.CreatedAt)); err != nil {
		return fmt.Errorf("inserting version: %w", err)
	}
	return nil
}

// DeletePage removes the page row; versions and board links cascade via
// foreign keys.
func (s *Store) DeletePage(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM wiki_pages WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting page: %w", err)
	}
	return nil
}

// GetPage retrieves a page by ID, or (nil, nil) if it does not exist.
func (s *Store) GetPage(ctx context.Context, id string) (*domain.PageMeta, error) {
	row := s.db.QueryRowContext(ctx, pageSelect+` WHERE wp.id = ?`, id)
	return scanPageMeta(row)
}

// GetPageBySlug retrieves a page by slug, or (nil, nil) if it does not exist.
func (s *Store) GetPageBySlug(ctx context.Context, slug string) (*domain.PageMeta, error) {
	row := s.db.QueryRowContext(ctx, pageSelect+` WHERE wp.slug = ?`, slug)
	return scanPageMeta(row)
}

// SlugTaken reports whether any page already uses slug.
func (s *Store) SlugTaken(ctx context.Context, slug string) (bool, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM wiki_pages WHERE slug = ?`, slug).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}
	return true, nil
}

// ListPages lists pages newest-updated first, filtered per f.
func (s *Store) ListPages(ctx context.Context, f ports.PageFilter) ([]domain.PageMeta, error) {
	query := pageSelect + ` WHERE 1=1`
	var args []any
	if f.Status != nil {
		query += ` AND wp.status = ?`
		args = append(args, string(*f.Status))
	}
	if f.CategoryID != nil {
		query += ` AND wp.category_id = ?`
		args = append(args, *f.CategoryID)
	}
	query += ` ORDER BY wp.updated_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, f.Offset)
	}
	return s.queryPages(ctx, query, args...)
}

// SearchPages lists pages whose title or content contains q as a substring,
// newest-updated first, filtered per f. Matching is whatever LIKE does; the
// query is interpolated into the pattern verbatim.
func (s *Store) SearchPages(ctx context.Context, q string, f ports.PageFilter) ([]domain.PageMeta, error) {
	pattern := "%" + q + "%"
	query := pageSelect + ` WHERE (wp.title LIKE ? OR wp.content LIKE ?)`
	args := []any{pattern, pattern}
	if f.Status != nil {
		query += ` AND wp.status = ?`
		args = append(args, string(*f.Status))
	}
	if f.CategoryID != nil {
		query += ` AND wp.category_id = ?`
		args = append(args, *f.CategoryID)
	}
	query += ` ORDER BY wp.updated_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.Limit, f.Offset)
	}
	return s.queryPages(ctx, query, args...)
}

func (s *Store) queryPages(ctx context.Context, query string, args ...any) ([]domain.PageMeta, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	pages := []domain.PageMeta{}
	for rows.Next() {
		page, err := scanPageMetaRow(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}
	return pages, rows.Err()
}

// ListVersions returns the page's history, newest first.
func (s *Store) ListVersions(ctx context.Context, pageID string) ([]domain.VersionMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT wv.id, wv.page_id, wv.title, wv.content, wv.version,
		       wv.author_id, wv.change_summary, wv.created_at, u.name, u.email
		FROM wiki_versions wv
		JOIN users u ON wv.author_id = u.id
		WHERE wv.page_id = ?
		ORDER BY wv.version DESC
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("querying versions: %w", err)
	}
	defer rows.Close()

	versions := []domain.VersionMeta{}
	for rows.Next() {
		var v domain.VersionMeta
		var summary sql.NullString
		var createdAt string
		if err := rows.Scan(&v.ID, &v.PageID, &v.Title, &v.Content, &v.Version.Version,
			&v.AuthorID, &summary, &createdAt, &v.AuthorName, &v.AuthorEmail); err != nil {
			return nil, fmt.Errorf("scanning version: %w", err)
		}
		v.ChangeSummary = fromNullable(summary)
		if v.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPageMeta(row *sql.Row) (*domain.PageMeta, error) {
	page, err := scanPageMetaRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return page, err
}

func scanPageMetaRow(row rowScanner) (*domain.PageMeta, error) {
	var p domain.PageMeta
	var categoryID, catName, catColor sql.NullString
	var tags, status, createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &categoryID, &tags,
		&status, &p.AuthorID, &p.Version, &createdAt, &updatedAt,
		&p.AuthorName, &p.AuthorEmail, &catName, &catColor)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning page: %w", err)
	}

	p.CategoryID = fromNullable(categoryID)
	p.CategoryName = fromNullable(catName)
	p.CategoryColor = fromNullable(catColor)
	p.Status = domain.Status(status)
	if p.Tags, err = decodeTags(tags); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
