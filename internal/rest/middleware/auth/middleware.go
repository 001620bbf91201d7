package auth

import (
	"context"
	"net/http"

	"github.com/brkuhgk/Nestara/internal/identity"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

type claimsCtxKey struct{}

// NewContext returns a copy of ctx carrying the given claims.
func NewContext(ctx context.Context, claims *identity.Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, claims)
}

// FromContext retrieves the authenticated claims from context.
// Returns nil when the request carried no valid token.
func FromContext(ctx context.Context) *identity.Claims {
	if claims, ok := ctx.Value(claimsCtxKey{}).(*identity.Claims); ok {
		return claims
	}

	return nil
}

// Middleware validates bearer tokens and stores the claims in context.
type Middleware struct {
	provider *identity.Provider
	logger   *zap.Logger
}

// New creates a new auth middleware.
func New(provider *identity.Provider, logger *zap.Logger) *Middleware {
	return &Middleware{
		provider: provider,
		logger:   logger,
	}
}

// AsRESTMiddleware returns a bunrouter middleware that rejects requests
// without a valid bearer token.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		claims := m.provider.ExtractClaims(req.Request)
		if claims == nil {
			m.logger.Debug("Rejected unauthenticated request",
				zap.String("path", req.URL.Path))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)

			return nil
		}

		return next(w, req.WithContext(NewContext(req.Context(), claims)))
	}
}
