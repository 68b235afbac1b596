// Package auth provides session token issuance/verification and
// password hashing for the credential collaborator.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT session tokens.
// Tokens are stateless: no server-side session table exists, trading
// revocability for per-request verification that is fast and
// side-effect-free.
type JWTService interface {
	// GenerateToken creates a signed session token for the user, valid
	// for the configured lifetime from now.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates the provided token string and extracts
	// the claims. Returns ErrExpiredToken if the embedded expiry has
	// passed, or ErrInvalidToken if the token is malformed or the
	// signature does not verify.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
