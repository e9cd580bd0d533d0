// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jessleroux/pigeon-raiders/internal/store"
	"github.com/jessleroux/pigeon-raiders/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDuplicate_ThroughRouter(t *testing.T) {
	duplicates := &mockDuplicateService{
		createFn: func(_ context.Context, item models.DuplicateItem) (models.DuplicateItem, error) {
			item.ID = "dup-1"
			item.Remaining = item.Total
			return item, nil
		},
	}

	h := newTestHandler(t, allowAllSession(testProfile), nil, duplicates)
	router := h.Init()

	body := `{"joueur":"Natdemon","objet":"Plume dorée","quantite_total":3}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/duplicates/", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.DuplicateItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "dup-1", got.ID)
	assert.Equal(t, 3, got.Remaining)
}

func TestPatchDuplicate_ThroughRouter(t *testing.T) {
	duplicates := &mockDuplicateService{
		patchFn: func(_ context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error) {
			return models.DuplicateItem{ID: id, Remaining: *patch.Remaining, ReservedBy: *patch.ReservedBy}, nil
		},
	}

	h := newTestHandler(t, allowAllSession(testProfile), nil, duplicates)
	router := h.Init()

	body := `{"restant":1,"reserved_by":"Jesjedo"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/duplicates/dup-1", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.DuplicateItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 1, got.Remaining)
	assert.Equal(t, "Jesjedo", got.ReservedBy)
}

func TestDeleteDuplicate_NotFound(t *testing.T) {
	duplicates := &mockDuplicateService{
		deleteFn: func(_ context.Context, _ string) error {
			return store.ErrDuplicateItemNotFound
		},
	}

	h := newTestHandler(t, allowAllSession(testProfile), nil, duplicates)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/duplicates/missing", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
