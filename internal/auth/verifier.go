// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package auth provides stateless credential verification and the HTTP
// middleware that resolves a request's bearer token into a principal.
//
// Verification is a pure function of the shared HMAC key and the clock: a
// token is either valid (yielding a subject id plus optional email and role
// hints) or invalid, with no server-side session state. The Verifier is an
// interface so deployments without a configured key can swap in a fixed
// local principal at startup instead of null-checking per request.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robm15/vibetravels/internal/models"
)

// ErrInvalidToken is returned for any token that fails verification:
// malformed, tampered, expired, not yet valid, or signed with an
// unexpected algorithm. Callers get no further detail by design.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the verified claims extracted from a credential. Subject is the
// canonical principal identifier; Email and Role are display and
// authorization hints only and are never used for ownership decisions.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts the claims into a request-scoped principal.
func (c *Claims) Principal() models.Principal {
	return models.Principal{
		ID:    c.Subject,
		Email: c.Email,
		Role:  c.Role,
	}
}

// Verifier validates an opaque signed credential and extracts its claims.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// JWTVerifier verifies HMAC-signed JWTs against a shared secret.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for the given shared secret.
// The secret must be at least 32 characters.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters, got %d", len(secret))
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify validates the token's signature and time claims and returns the
// verified claims. Any structural, cryptographic, or expiry failure returns
// ErrInvalidToken; a token is never partially trusted.
func (v *JWTVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to prevent algorithm confusion.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

// Sign creates a signed token for the given principal, valid for ttl.
// Used by tests and local tooling; the production service only verifies.
func (v *JWTVerifier) Sign(p models.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: p.Email,
		Role:  p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// StaticVerifier returns one well-known principal for every token, including
// an empty one. It replaces the JWT verifier wholesale in offline/local
// deployments where no verification key is configured.
type StaticVerifier struct {
	principal models.Principal
}

// LocalPrincipalID is the subject id attributed to all requests in offline mode.
const LocalPrincipalID = "local-user"

// NewStaticVerifier creates a verifier pinned to the given principal.
// A zero principal defaults to the well-known local user.
func NewStaticVerifier(p models.Principal) *StaticVerifier {
	if p.ID == "" {
		p = models.Principal{ID: LocalPrincipalID, Email: "local@vibetravels.dev"}
	}
	return &StaticVerifier{principal: p}
}

// Verify always succeeds with the fixed principal.
func (v *StaticVerifier) Verify(string) (*Claims, error) {
	return &Claims{
		Email: v.principal.Email,
		Role:  v.principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: v.principal.ID,
		},
	}, nil
}
