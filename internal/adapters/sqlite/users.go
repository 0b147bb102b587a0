package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

// CreateUser inserts a user row.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.Name, user.Email, user.IsAdmin, formatTime(time.Now())); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email, or (nil, nil) if unknown.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, is_admin FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

// CreateSession mints an opaque session token for the user, valid for ttl.
func (s *Store) CreateSession(ctx context.Context, userID string, ttl time.Duration) (*domain.Session, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		Token:     domain.NewID(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)
	`, session.Token, session.UserID, formatTime(session.ExpiresAt), formatTime(session.CreatedAt)); err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	return session, nil
}

// Resolve maps a session token to its user. Unknown and expired tokens both
// resolve to (nil, nil); the caller decides how to surface that.
func (s *Store) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	var u domain.User
	var expiresAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.name, u.email, u.is_admin, se.expires_at
		FROM sessions se
		JOIN users u ON se.user_id = u.id
		WHERE se.token = ?
	`, token).Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}

	exp, err := parseTime(expiresAt)
	if err != nil {
		return nil, err
	}
	if !time.Now().Before(exp) {
		return nil, nil
	}
	return &u, nil
}
