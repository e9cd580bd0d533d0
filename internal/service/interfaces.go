// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"

	"github.com/jessleroux/pigeon-raiders/models"
)

// SessionService is the server-side session gate. It maps authenticated
// identities to allow-listed display names and manages session tokens.
type SessionService interface {
	// Establish binds an identity to its allow-listed profile and issues a
	// session token. Identities absent from the allow-list yield
	// ErrIdentityNotAllowed and no profile is bound.
	Establish(ctx context.Context, email string) (models.SessionResponse, error)

	// ParseToken validates a bearer token and returns the profile it was
	// issued for. The allow-list is consulted again at parse time, so an
	// identity removed from the list loses access on its next call.
	ParseToken(ctx context.Context, tokenString string) (models.Profile, error)
}

// RequestService exposes the "demandes" ledger as a generic table surface.
// Lifecycle rules (who may validate, who may delete) are applied by clients
// before calling; the server publishes a change event after every successful
// mutation.
type RequestService interface {
	List(ctx context.Context) ([]models.Request, error)
	Create(ctx context.Context, request models.Request) (models.Request, error)
	Patch(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error)
	Delete(ctx context.Context, id string) error
}

// DuplicateService exposes the "doubles" ledger as a generic table surface.
type DuplicateService interface {
	List(ctx context.Context) ([]models.DuplicateItem, error)
	Create(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error)
	Patch(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error)
	Delete(ctx context.Context, id string) error
}

// ChangePublisher receives a change event after every successful ledger
// mutation. Implemented by the events broadcaster.
type ChangePublisher interface {
	Publish(event models.ChangeEvent)
}
