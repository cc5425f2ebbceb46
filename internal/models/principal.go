// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package models defines the domain types shared across VibeTravels:
// principals, travel notes, travel preferences, and generated trip plans.
package models

// Principal is the authenticated identity making a request, derived from a
// verified credential. It is request-scoped and never persisted; ownership
// checks always compare ID, never Email.
type Principal struct {
	// ID is the stable, opaque subject identifier from the credential.
	ID string `json:"id"`

	// Email is an optional display handle. Informational only.
	Email string `json:"email,omitempty"`

	// Role is an optional role hint from the credential. Informational only.
	Role string `json:"role,omitempty"`
}

// Anonymous reports whether the principal is the unauthenticated zero value.
func (p Principal) Anonymous() bool {
	return p.ID == ""
}
