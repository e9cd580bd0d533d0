// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package adapter

import "errors"

// Sentinel errors mapped from backend HTTP status codes. Callers match with
// [errors.Is] to react to transport failures without inspecting status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrAccessDenied        = errors.New("access denied")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
