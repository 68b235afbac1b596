package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmorrow/taskdeck/internal/config"
	"github.com/jmorrow/taskdeck/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-that-is-32-chars!",
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	}
}

func TestNewJWTService_SecretTooShort(t *testing.T) {
	cfg := testAuthConfig()
	cfg.JWTSecret = "too-short"

	svc, err := auth.NewJWTService(cfg)
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestJWTService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, err := auth.NewJWTService(testAuthConfig())
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_Expiry(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt

	svc, err := auth.NewJWTServiceWithTimeFunc(testAuthConfig(), func() time.Time { return now })
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		checkAt time.Time
		wantErr error
	}{
		{
			name:    "immediately_after_issue",
			checkAt: issuedAt,
		},
		{
			name:    "just_inside_validity_window",
			checkAt: issuedAt.Add(time.Hour - time.Second),
		},
		{
			// The expiry boundary is inclusive.
			name:    "at_exact_expiry",
			checkAt: issuedAt.Add(time.Hour),
		},
		{
			name:    "just_past_expiry",
			checkAt: issuedAt.Add(time.Hour + time.Second),
			wantErr: auth.ErrExpiredToken,
		},
		{
			name:    "long_past_expiry",
			checkAt: issuedAt.Add(48 * time.Hour),
			wantErr: auth.ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = tt.checkAt
			claims, err := svc.ValidateToken(ctx, token)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestJWTService_InvalidTokens(t *testing.T) {
	ctx := context.Background()
	svc, err := auth.NewJWTService(testAuthConfig())
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-completely-different-32-char-key!!"
	otherSvc, err := auth.NewJWTService(otherCfg)
	require.NoError(t, err)

	validToken, err := svc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	foreignToken, err := otherSvc.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty_string", token: ""},
		{name: "garbage", token: "not-a-jwt-at-all"},
		{name: "truncated", token: validToken[:len(validToken)/2]},
		{name: "wrong_signing_key", token: foreignToken},
		{
			name:  "tampered_payload",
			token: tamper(validToken),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(ctx, tt.token)
			require.ErrorIs(t, err, auth.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

// tamper flips a character in the token's payload segment so the
// signature no longer matches.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)
	return strings.Join(parts, ".")
}

func TestBcryptHasherAndVerifier(t *testing.T) {
	hasher := auth.NewBcryptHasher(4)
	verifier := auth.NewBcryptVerifier()

	hashed, err := hasher.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "secret1", hashed)

	assert.NoError(t, verifier.Compare(hashed, "secret1"))
	assert.Error(t, verifier.Compare(hashed, "wrong-password"))
}
