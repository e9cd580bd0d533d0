// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

// Package adapter provides transport-layer abstractions for communicating
// with the hosted backend and the external item catalog.
//
// The primary abstraction is [BackendAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]) plus a websocket change-feed
// subscriber ([NewChangeFeedSubscriber]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrAccessDenied] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/jessleroux/pigeon-raiders/models"
)

// BackendAdapter defines transport-agnostic communication with the backend
// data service. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type BackendAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful EstablishSession, and with an empty string to drop
	// the session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// EstablishSession exchanges an identity for a profile and a session
	// token. On success it stores the token via SetToken. An identity absent
	// from the server's allow-list yields [ErrAccessDenied].
	EstablishSession(ctx context.Context, email string) (models.SessionResponse, error)

	// ListRequests fetches the whole request ledger, newest first.
	ListRequests(ctx context.Context) ([]models.Request, error)

	// CreateRequest inserts a new request row and returns it as stored.
	CreateRequest(ctx context.Context, request models.Request) (models.Request, error)

	// PatchRequest applies a partial update to a request row and returns the
	// updated row.
	PatchRequest(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error)

	// DeleteRequest removes a request row.
	DeleteRequest(ctx context.Context, id string) error

	// ListDuplicates fetches the whole duplicate-item ledger, newest first.
	ListDuplicates(ctx context.Context) ([]models.DuplicateItem, error)

	// CreateDuplicate inserts a new duplicate-item row and returns it as
	// stored.
	CreateDuplicate(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error)

	// PatchDuplicate applies a partial update to a duplicate-item row and
	// returns the updated row.
	PatchDuplicate(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error)

	// DeleteDuplicate removes a duplicate-item row.
	DeleteDuplicate(ctx context.Context, id string) error
}

// ChangeFeed is a subscription to the backend's change notifications.
type ChangeFeed interface {
	// Subscribe dials the change feed and returns a channel of change
	// events. The channel is closed when the connection drops or ctx is
	// cancelled; callers are expected to re-subscribe.
	Subscribe(ctx context.Context, token string) (<-chan models.ChangeEvent, error)
}

// CatalogAdapter fetches the read-only external item catalog.
type CatalogAdapter interface {
	// Preview returns up to the first twelve catalog entries. It never
	// returns an error: any failure yields an empty slice, because the
	// catalog is a nice-to-have and must not break the client.
	Preview(ctx context.Context) []models.CatalogItem
}
