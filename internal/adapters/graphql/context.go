package graphql

import (
	"context"
	"net/http"

	"github.com/taskify/core/internal/domain/entities"
	"github.com/taskify/core/internal/ports"
)

type contextKey int

const (
	claimsKey contextKey = iota
	cookieKey
)

// WithClaims attaches the verified caller to ctx
func WithClaims(ctx context.Context, claims *ports.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the caller, or nil for anonymous requests
func ClaimsFromContext(ctx context.Context) *ports.Claims {
	claims, _ := ctx.Value(claimsKey).(*ports.Claims)
	return claims
}

func requireClaims(ctx context.Context) (*ports.Claims, error) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return nil, entities.ErrNotAuthenticated
	}
	return claims, nil
}

// withCookieWriter lets resolvers set cookies on the HTTP response
func withCookieWriter(ctx context.Context, set func(*http.Cookie)) context.Context {
	return context.WithValue(ctx, cookieKey, set)
}

func setCookie(ctx context.Context, cookie *http.Cookie) {
	if set, ok := ctx.Value(cookieKey).(func(*http.Cookie)); ok {
		set(cookie)
	}
}
