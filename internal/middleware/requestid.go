// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package middleware provides HTTP middleware shared across route groups:
// request-ID propagation and Prometheus request instrumentation.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/robm15/vibetravels/internal/logging"
)

// RequestID generates a unique ID for each request and adds it to both the
// response header and the request context for log correlation. An ID
// supplied by an upstream proxy via X-Request-ID is preserved.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
