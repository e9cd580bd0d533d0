// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import "errors"

// Client-side rule errors. Every rule violation is rejected locally, before
// any remote call, and surfaces as one of these sentinels; the presentation
// layer decides how to show them.
var (
	// ErrNotSignedIn indicates a ledger operation attempted without a bound
	// profile.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrSessionDenied indicates the identity was refused by the server's
	// allow-list. The session is force-cleared when this is returned.
	ErrSessionDenied = errors.New(DenialMessage)

	// ErrEmptyItemName indicates a create with an empty item name.
	ErrEmptyItemName = errors.New("item name must not be empty")

	// ErrNonPositiveQuantity indicates a create with a quantity of zero or
	// less.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")

	// ErrNegativeQuantity indicates a resupply with a quantity below zero.
	// Zero is legal there: an owner can zero out a listing.
	ErrNegativeQuantity = errors.New("quantity cannot be negative")

	// ErrRowNotFound indicates an operation on a row id absent from the
	// local mirror.
	ErrRowNotFound = errors.New("row not found in local data")

	// ErrSelfValidation indicates a player trying to validate their own
	// request.
	ErrSelfValidation = errors.New("players cannot validate their own requests")

	// ErrRequestAlreadyValidated indicates a validation attempt on a request
	// that is no longer pending.
	ErrRequestAlreadyValidated = errors.New("request is already validated")

	// ErrNotRequester indicates a deletion attempt by someone other than the
	// original requester.
	ErrNotRequester = errors.New("only the requester can remove a request")

	// ErrRequestNotValidated indicates a deletion attempt on a request that
	// has not been validated yet.
	ErrRequestNotValidated = errors.New("only validated requests can be removed")

	// ErrOutOfStock indicates a reservation attempt on a duplicate item with
	// no remaining units.
	ErrOutOfStock = errors.New("no units remaining")

	// ErrOwnReservation indicates an owner trying to reserve their own
	// surplus item.
	ErrOwnReservation = errors.New("owners cannot reserve their own items")

	// ErrNotOwner indicates a non-owner trying to edit or remove a surplus
	// item.
	ErrNotOwner = errors.New("only the owner can modify this item")
)
