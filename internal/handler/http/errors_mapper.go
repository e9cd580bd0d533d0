// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"errors"
	"net/http"

	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrIdentityNotAllowed:      http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrRequestNotFound:       http.StatusNotFound,
	store.ErrDuplicateItemNotFound: http.StatusNotFound,
	store.ErrEmptyPatch:            http.StatusBadRequest,
	store.ErrConstraintViolation:   http.StatusConflict,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
