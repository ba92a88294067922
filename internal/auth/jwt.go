// Package auth issues and validates the bearer tokens used by the
// dashboard API.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Default token lifetime.
const defaultTTL = 12 * time.Hour

// Principal represents the authenticated caller.
type Principal struct {
	Name string
	Role string // "admin" | "viewer"
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == "admin"
}

type principalKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given principal.
func Issue(secret, name, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	// Zero means "use the default"; negative TTLs are honored so callers
	// can mint already-expired tokens.
	if ttl == 0 {
		ttl = defaultTTL
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: name,
		Role: strings.ToLower(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns its principal.
func Parse(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrUnexpectedMethod
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = ErrInvalidToken
		}
		return nil, err
	}

	c, _ := tok.Claims.(*claims)
	if c == nil || c.Name == "" || c.Role == "" {
		return nil, ErrInvalidClaims
	}
	return &Principal{Name: c.Name, Role: strings.ToLower(c.Role)}, nil
}

// ParseFromRequest extracts and validates a Bearer token from the
// Authorization header.
func ParseFromRequest(r *http.Request, secret string) (*Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrInvalidHeader
	}

	return Parse(strings.TrimSpace(parts[1]), secret)
}
