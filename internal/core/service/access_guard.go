package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// TokenGuard validates HS256 session tokens without a server-side lookup.
type TokenGuard struct {
	secret []byte
	now    func() time.Time
}

func NewTokenGuard(jwtSecret string) *TokenGuard {
	return &TokenGuard{secret: []byte(jwtSecret), now: time.Now}
}

// Authenticate turns a raw token into an identity. An empty token is
// domain.ErrUnauthenticated; anything that fails verification is
// domain.ErrInvalidToken.
func (g *TokenGuard) Authenticate(_ context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Username == "" || claims.Role == "" {
		return nil, domain.ErrInvalidToken
	}

	id := &domain.Identity{Username: claims.Username, Role: claims.Role}
	if claims.IssuedAt != nil {
		id.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

// Authorize checks that the identity holds requiredRole.
func (g *TokenGuard) Authorize(identity *domain.Identity, requiredRole string) error {
	if identity == nil || identity.Role != requiredRole {
		return domain.ErrForbidden
	}
	return nil
}
