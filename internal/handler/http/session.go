// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/internal/utils"
	"github.com/jessleroux/pigeon-raiders/models"
)

func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var sessionRequest models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&sessionRequest); err != nil {
		log.Err(err).Str("func", "*Handler.establishSession").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.SessionService.Establish(ctx, sessionRequest.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIdentityNotAllowed):
			log.Warn().Str("email", sessionRequest.Email).Msg("session denied: identity not in allow-list")
			http.Error(w, service.DenialMessage, http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during session establishment")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("pseudo", session.Profile.Pseudo).Msg("session established")

	utils.WriteJSON(w, session, http.StatusOK)
}
