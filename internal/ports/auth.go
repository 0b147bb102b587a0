package ports

import (
	"context"
	"time"

	"github.com/Pix3ltools-lab/pix3lwiki/internal/domain"
)

// Authenticator is the authentication gate the wiki depends on. How tokens
// are minted, signed, or stored is not this system's concern; callers only
// need a token resolved to an identity.
//
// Resolve returns (nil, nil) for an unknown or expired token.
type Authenticator interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// UserStore covers the bootstrap surface the CLI needs: creating users and
// minting opaque session tokens for them.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateSession(ctx context.Context, userID string, ttl time.Duration) (*domain.Session, error)
}
