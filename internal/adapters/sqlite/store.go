package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/ports"

	_ "modernc.org/sqlite"
)

// Store implements the wiki's persistence ports on a single SQLite database.
// It is constructed once at process start and injected wherever a store
// handle is needed; there is no package-level instance.
type Store struct {
	db   *sql.DB
	Path string
}

// Ensure Store implements the persistence ports
var (
	_ ports.PageStore     = (*Store)(nil)
	_ ports.CategoryStore = (*Store)(nil)
	_ ports.LinkStore     = (*Store)(nil)
	_ ports.UserStore     = (*Store)(nil)
	_ ports.Authenticator = (*Store)(nil)
)

// Open opens or creates the wiki database with WAL mode and foreign keys
// enabled, and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL for concurrent reads; foreign keys drive the cascade semantics
	// (page delete sweeps versions and links, category delete nulls pages).
	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, Path: path}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	is_admin INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	token TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	expires_at TEXT NOT NULL,
	created_at TEXT NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS wiki_categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	slug TEXT NOT NULL UNIQUE,
	description TEXT,
	color TEXT NOT NULL DEFAULT '#8b5cf6',
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS wiki_pages (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE,
	content TEXT NOT NULL DEFAULT '',
	category_id TEXT,
	tags TEXT NOT NULL DEFAULT '[]',
	status TEXT NOT NULL DEFAULT 'draft',
	author_id TEXT NOT NULL,
	version INTEGER NOT NULL DEFAULT 1,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	FOREIGN KEY (category_id) REFERENCES wiki_categories(id) ON DELETE SET NULL,
	FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS wiki_versions (
	id TEXT PRIMARY KEY,
	page_id TEXT NOT NULL,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	version INTEGER NOT NULL,
	author_id TEXT NOT NULL,
	change_summary TEXT,
	created_at TEXT NOT NULL,
	UNIQUE (page_id, version),
	FOREIGN KEY (page_id) REFERENCES wiki_pages(id) ON DELETE CASCADE,
	FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS pix3lboard_links (
	id TEXT PRIMARY KEY,
	wiki_page_id TEXT NOT NULL,
	board_id TEXT,
	card_id TEXT,
	workspace_id TEXT,
	link_type TEXT NOT NULL DEFAULT 'reference',
	created_at TEXT NOT NULL,
	FOREIGN KEY (wiki_page_id) REFERENCES wiki_pages(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_wiki_pages_slug ON wiki_pages(slug);
CREATE INDEX IF NOT EXISTS idx_wiki_pages_category ON wiki_pages(category_id);
CREATE INDEX IF NOT EXISTS idx_wiki_pages_author ON wiki_pages(author_id);
CREATE INDEX IF NOT EXISTS idx_wiki_pages_status ON wiki_pages(status);
CREATE INDEX IF NOT EXISTS idx_wiki_versions_page ON wiki_versions(page_id);
CREATE INDEX IF NOT EXISTS idx_pix3lboard_links_page ON pix3lboard_links(wiki_page_id);
CREATE INDEX IF NOT EXISTS idx_pix3lboard_links_board ON pix3lboard_links(board_id);
CREATE INDEX IF NOT EXISTS idx_pix3lboard_links_card ON pix3lboard_links(card_id);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`

// Timestamps are stored as RFC 3339 text, UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// Tags are stored as a JSON array, preserving order.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decoding tags %q: %w", raw, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
