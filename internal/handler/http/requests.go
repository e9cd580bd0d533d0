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

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	requests, err := h.services.RequestService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRequests").Msg("error listing requests")
		http.Error(w, "error listing requests", statusFromError(err))
		return
	}

	utils.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) createRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.Request
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createRequest").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.RequestService.Create(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRequest").Msg("error creating request")
		http.Error(w, "error creating request", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) patchRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var patch models.RequestPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.patchRequest").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.RequestService.Patch(r.Context(), id, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.patchRequest").Str("id", id).Msg("error patching request")
		http.Error(w, "error patching request", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.RequestService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRequest").Str("id", id).Msg("error deleting request")
		http.Error(w, "error deleting request", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
