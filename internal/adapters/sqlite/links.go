package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"
)

// CreateLink inserts a board link row.
func (s *Store) CreateLink(ctx context.Context, link *domain.BoardLink) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO pix3lboard_links (id, wiki_page_id, board_id, card_id, workspace_id, link_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, link.ID, link.PageID, nullable(link.BoardID), nullable(link.CardID),
		nullable(link.WorkspaceID), string(link.LinkType), formatTime(link.CreatedAt)); err != nil {
		return fmt.Errorf("inserting link: %w", err)
	}
	return nil
}

// GetLink retrieves a link by ID, or (nil, nil) if it does not exist.
func (s *Store) GetLink(ctx context.Context, id string) (*domain.BoardLink, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, wiki_page_id, board_id, card_id, workspace_id, link_type, created_at
		FROM pix3lboard_links WHERE id = ?
	`, id)

	link, err := scanLink(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return link, err
}

// ListLinks lists links newest first, filtered per f.
func (s *Store) ListLinks(ctx context.Context, f ports.LinkFilter) ([]domain.BoardLink, error) {
	query := `
		SELECT id, wiki_page_id, board_id, card_id, workspace_id, link_type, created_at
		FROM pix3lboard_links WHERE 1=1`
	var args []any
	if f.PageID != nil {
		query += ` AND wiki_page_id = ?`
		args = append(args, *f.PageID)
	}
	if f.BoardID != nil {
		query += ` AND board_id = ?`
		args = append(args, *f.BoardID)
	}
	if f.CardID != nil {
		query += ` AND card_id = ?`
		args = append(args, *f.CardID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	links := []domain.BoardLink{}
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, rows.Err()
}

// DeleteLink removes a link row.
func (s *Store) DeleteLink(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM pix3lboard_links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting link: %w", err)
	}
	return nil
}

func scanLink(row rowScanner) (*domain.BoardLink, error) {
	var l domain.BoardLink
	var boardID, cardID, workspaceID sql.NullString
	var linkType, createdAt string

	err := row.Scan(&l.ID, &l.PageID, &boardID, &cardID, &workspaceID, &linkType, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning link: %w", err)
	}

	l.BoardID = fromNullable(boardID)
	l.CardID = fromNullable(cardID)
	l.WorkspaceID = fromNullable(workspaceID)
	l.LinkType = domain.LinkType(linkType)
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &l, nil
}
