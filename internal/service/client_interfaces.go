// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"

	"github.com/jessleroux/pigeon-raiders/models"
)

// ClientSessionService manages the client's single session with the backend.
type ClientSessionService interface {
	// SignIn exchanges an identity for a bound profile and stores the
	// session token in the adapter. A denied identity yields
	// ErrSessionDenied with the session fully cleared: no profile, no
	// token, no table fetch.
	SignIn(ctx context.Context, email string) (models.Profile, error)

	// SignOut drops the profile and the stored token.
	SignOut()

	// Profile returns the bound profile, zero if not signed in.
	Profile() models.Profile

	// SignedIn reports whether a profile is currently bound.
	SignedIn() bool
}

// ClientLedgerService mirrors the two backend tables locally and applies
// every lifecycle rule before any remote call. Mutations update the mirror
// optimistically from the row the backend returns; a notification-triggered
// Refresh replaces the whole mirror and always wins.
type ClientLedgerService interface {
	// Requests returns the mirrored request ledger, newest first.
	Requests() []models.Request

	// Duplicates returns the mirrored duplicate-item ledger, newest first.
	Duplicates() []models.DuplicateItem

	// Refresh re-fetches one table ("demandes" or "doubles") and replaces
	// its whole mirror.
	Refresh(ctx context.Context, table string) error

	// RefreshAll refreshes both tables.
	RefreshAll(ctx context.Context) error

	// ClearLocal empties both mirrors. Called on sign-out.
	ClearLocal()

	// CreateRequest inserts a pending request for the signed-in player.
	CreateRequest(ctx context.Context, item string, quantity int) (models.Request, error)

	// ValidateRequest marks a pending request validated by the signed-in
	// player. Self-validation and re-validation are rejected locally.
	ValidateRequest(ctx context.Context, id string) (models.Request, error)

	// DeleteRequest removes a validated request. Only the original
	// requester may delete, and only once the request is validated.
	DeleteRequest(ctx context.Context, id string) error

	// CreateDuplicate lists a surplus item with remaining equal to total.
	CreateDuplicate(ctx context.Context, item string, quantity int) (models.DuplicateItem, error)

	// ReserveDuplicate reserves one unit of another player's surplus item.
	ReserveDuplicate(ctx context.Context, id string) (models.DuplicateItem, error)

	// ResupplyDuplicate sets the item's total and remaining to quantity,
	// resetting prior depletion. Owner only.
	ResupplyDuplicate(ctx context.Context, id string, quantity int) (models.DuplicateItem, error)

	// DeleteDuplicate removes a surplus item. Owner only.
	DeleteDuplicate(ctx context.Context, id string) error
}

// ClientCatalogService exposes the read-only external catalog preview.
type ClientCatalogService interface {
	// Preview returns up to twelve catalog entries; failures yield an empty
	// slice.
	Preview(ctx context.Context) []models.CatalogItem
}

// ClientRefreshJob keeps the local mirrors fresh by listening to the
// backend's change feed and triggering table refreshes.
type ClientRefreshJob interface {
	// Start launches the background subscription loop. It stops any
	// previously running job first. The loop re-dials a dropped feed after
	// the configured reconnect interval and exits when ctx is cancelled or
	// Stop is called.
	Start(ctx context.Context)

	// Stop cancels the background loop and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()
}
