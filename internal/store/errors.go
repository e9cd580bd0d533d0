// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package store

import "errors"

// Sentinel errors returned by the ledger repositories. Callers match against
// them with [errors.Is]; the HTTP layer maps them to status codes.
var (
	// ErrRequestNotFound indicates that no request row matched the given id.
	ErrRequestNotFound = errors.New("request not found")

	// ErrDuplicateItemNotFound indicates that no duplicate-item row matched
	// the given id.
	ErrDuplicateItemNotFound = errors.New("duplicate item not found")

	// ErrEmptyPatch indicates an update call that supplied no fields to set.
	ErrEmptyPatch = errors.New("empty patch: no fields to update")

	// ErrConstraintViolation indicates that Postgres rejected a write due to
	// a schema constraint (unique or check violation).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrBuildingSQLQuery indicates a failure while assembling a dynamic
	// statement with squirrel.
	ErrBuildingSQLQuery = errors.New("error building SQL query")
)
