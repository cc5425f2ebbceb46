// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/robm15/vibetravels/internal/logging"
	"github.com/robm15/vibetravels/internal/models"
)

type contextKey string

// principalContextKey stores the resolved principal in the request context.
const principalContextKey contextKey = "principal"

// Resolver converts an inbound request's credential into a principal. It
// never aborts the pipeline: absent or invalid credentials resolve to the
// anonymous principal and downstream authorization decides whether that is
// acceptable for the route.
type Resolver struct {
	verifier Verifier
	fixed    *models.Principal
}

// NewResolver creates a resolver that verifies bearer tokens with the given
// verifier.
func NewResolver(verifier Verifier) *Resolver {
	return &Resolver{verifier: verifier}
}

// NewStaticResolver creates a resolver that attributes every request to one
// fixed principal without inspecting credentials. Selected once at startup
// for offline/local deployments.
func NewStaticResolver(p models.Principal) *Resolver {
	if p.ID == "" {
		p = models.Principal{ID: LocalPrincipalID, Email: "local@vibetravels.dev"}
	}
	return &Resolver{fixed: &p}
}

// ResolvePrincipal is middleware that resolves the Authorization header into
// a principal stored in the request context. Public routes run with the
// anonymous principal; a present-but-invalid token is logged at debug level
// and treated the same as no token.
func (rs *Resolver) ResolvePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := rs.resolve(r)
		ctx := context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve extracts and verifies the bearer credential, falling back to the
// anonymous principal on any failure.
func (rs *Resolver) resolve(r *http.Request) models.Principal {
	if rs.fixed != nil {
		return *rs.fixed
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return models.Principal{}
	}

	claims, err := rs.verifier.Verify(token)
	if err != nil {
		logging.Debug().Err(err).Msg("Bearer token rejected, continuing as anonymous")
		return models.Principal{}
	}

	return claims.Principal()
}

// bearerToken extracts the token from a "Bearer <token>" header value.
// Returns empty string for absent or malformed headers.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// PrincipalFrom returns the principal resolved for this request. The zero
// value means the request is unauthenticated.
func PrincipalFrom(ctx context.Context) models.Principal {
	if p, ok := ctx.Value(principalContextKey).(models.Principal); ok {
		return p
	}
	return models.Principal{}
}

// ContextWithPrincipal stores a principal in the context. Used by tests to
// exercise handlers without running the middleware stack.
func ContextWithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// RequireAuth is middleware that rejects anonymous requests with 401.
// It composes on top of ResolvePrincipal for protected route groups.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if PrincipalFrom(r.Context()).Anonymous() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"Unauthorized: authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
