// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import "errors"

// DenialMessage is the user-facing message surfaced when an identity is not
// allow-listed. Kept verbatim from the original application so existing
// players see the message they know.
const DenialMessage = "Accès refusé. Adresse non autorisée."

// Sentinel errors returned by the server-side services.
var (
	// ErrIdentityNotAllowed indicates a session attempt by an identity that
	// is not in the allow-list. The session is not established and no profile
	// is bound.
	ErrIdentityNotAllowed = errors.New("identity not in allow-list")

	// ErrInvalidDataProvided indicates input that fails basic validation
	// before any storage call (empty item name, non-positive quantity,
	// empty identity).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenIsExpiredOrInvalid indicates a bearer token that failed
	// signature, issuer, or expiry validation.
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")

	// ErrTokenCreationFailed indicates the session token could not be signed.
	ErrTokenCreationFailed = errors.New("session token creation failed")
)
