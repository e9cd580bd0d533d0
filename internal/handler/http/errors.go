// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session token from an incoming request. Callers can match against them
// with [errors.Is].
var (
	// ErrMissingToken is returned when the request carries neither an
	// "Authorization" header nor a "token" query parameter.
	ErrMissingToken = errors.New("missing session token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
