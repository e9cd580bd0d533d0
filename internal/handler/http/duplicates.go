// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/utils"
	"github.com/jessleroux/pigeon-raiders/models"
)

func (h *Handler) listDuplicates(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.DuplicateService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDuplicates").Msg("error listing duplicate items")
		http.Error(w, "error listing duplicate items", statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createDuplicate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var item models.DuplicateItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Str("func", "*Handler.createDuplicate").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.DuplicateService.Create(r.Context(), item)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDuplicate").Msg("error creating duplicate item")
		http.Error(w, "error creating duplicate item", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) patchDuplicate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var patch models.DuplicatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.patchDuplicate").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.DuplicateService.Patch(r.Context(), id, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchDuplicate").Str("id", id).Msg("error patching duplicate item")
		http.Error(w, "error patching duplicate item", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteDuplicate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.DuplicateService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDuplicate").Str("id", id).Msg("error deleting duplicate item")
		http.Error(w, "error deleting duplicate item", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
