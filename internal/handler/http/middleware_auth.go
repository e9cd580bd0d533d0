// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

// Package http implements the HTTP transport layer of the server. It
// provides middleware, route handlers, and the websocket change feed.
// Authentication, logging, and tracing concerns are handled at this layer
// before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// It extracts the bearer token from the "Authorization" header (or, for the
// websocket change feed where custom headers are awkward to set from browser
// clients, from the "token" query parameter), validates it via
// [service.SessionService.ParseToken], and on success stores the resolved
// profile in the request context under [utils.ProfileCtxKey].
//
// Requests are rejected with 401 Unauthorized when the token is missing,
// malformed, expired, or invalid, and with 403 Forbidden when the token is
// valid but its identity has since been removed from the allow-list.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		profile, err := h.services.SessionService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrIdentityNotAllowed):
				log.Warn().Msg("token identity no longer in allow-list")
				http.Error(w, service.DenialMessage, http.StatusForbidden)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the profile in the context so that downstream handlers can
		// retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.ProfileCtxKey, profile)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the session token from a request.
//
// The "Authorization" header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// When the header is absent, the "token" query parameter is consulted as a
// fallback (used by the websocket change-feed dial).
func getTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("token"); token != "" {
			return token, nil
		}
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
