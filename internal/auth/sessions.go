// Package auth gates the admin surface behind a single shared secret.
//
// The core is transport-agnostic: it verifies the admin password and
// issues/validates signed session tokens. Cookie handling lives in the
// HTTP adapter.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an admin session stays valid. There is no
// refresh path: after expiry the password is required again.
const DefaultTTL = 7 * 24 * time.Hour

// RoleAdmin is the only role the session token asserts.
const RoleAdmin = "admin"

// Config defines how admin sessions are verified. Secrets are passed
// in explicitly at startup, never read from ambient globals.
type Config struct {
	// Password is the shared admin password.
	Password string

	// SigningSecret is the HMAC key for session tokens.
	SigningSecret string

	// TTL overrides DefaultTTL when positive.
	TTL time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Sessions verifies the admin password and manages session tokens.
type Sessions struct {
	password []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// sessionClaims is the internal claims type used for JWT parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// New creates a session manager. It fails on missing secrets so a
// misconfigured deployment surfaces at startup instead of silently
// rejecting every login.
func New(cfg Config) (*Sessions, error) {
	password := strings.TrimSpace(cfg.Password)
	if password == "" {
		return nil, errors.New("admin password is required")
	}

	secret := strings.TrimSpace(cfg.SigningSecret)
	if secret == "" {
		return nil, errors.New("session signing secret is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Sessions{
		password: []byte(password),
		secret:   []byte(secret),
		ttl:      ttl,
		now:      now,
	}, nil
}

// VerifyPassword reports whether candidate matches the admin password.
// The comparison is constant-time.
func (s *Sessions) VerifyPassword(candidate string) bool {
	return subtle.ConstantTimeCompare(s.password, []byte(candidate)) == 1
}

// Issue produces a signed token asserting the admin role, valid for
// the configured TTL from now.
func (s *Sessions) Issue() (string, error) {
	issuedAt := s.now()

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
		Role: RoleAdmin,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return token, nil
}

// Validate reports whether token is a well-formed, unexpired admin
// session. Every failure mode (missing token, bad signature, expiry,
// wrong role) collapses to false: callers only need the yes/no.
func (s *Sessions) Validate(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	var claims sessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return false
	}

	return claims.Role == RoleAdmin
}
