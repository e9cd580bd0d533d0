// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/session", h.establishSession)
	})

	// ledger routes: every call carries a session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/requests", func(r chi.Router) {
			r.Get("/", h.listRequests)
			r.Post("/", h.createRequest)
			r.Patch("/{id}", h.patchRequest)
			r.Delete("/{id}", h.deleteRequest)
		})

		r.Route("/api/duplicates", func(r chi.Router) {
			r.Get("/", h.listDuplicates)
			r.Post("/", h.createDuplicate)
			r.Patch("/{id}", h.patchDuplicate)
			r.Delete("/{id}", h.deleteDuplicate)
		})

		r.Get("/api/events", h.changeFeed)
	})

	return router
}
