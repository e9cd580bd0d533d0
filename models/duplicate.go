// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package models

import "time"

// DuplicateItem represents a surplus item row in the "doubles" table.
//
// The owner lists a surplus item with a total quantity; other players reserve
// units one at a time, decrementing Remaining. Only the last reservation
// holder is recorded, not a list.
//
// Intended invariant: 0 <= Remaining <= Total. It is not atomically enforced:
// a reservation reads the mirrored Remaining, decrements it locally and
// writes the result back, so two concurrent reservations can both write
// Remaining-1 (lost update). This matches the original behaviour on purpose.
type DuplicateItem struct {
	// ID is the backend-assigned row identifier.
	ID string `json:"id"`

	// Player is the owner's display name (column "joueur").
	Player string `json:"joueur"`

	// Item is the surplus item name (column "objet").
	Item string `json:"objet"`

	// Total is the owner-settable total quantity (column "quantite_total").
	Total int `json:"quantite_total"`

	// Remaining is the number of units still reservable (column "restant").
	Remaining int `json:"restant"`

	// ReservedBy is the display name of the last reservation holder
	// (column "reserved_by"), overwritten on each reservation.
	ReservedBy string `json:"reserved_by"`

	// CreatedAt is backend-assigned and used only for display ordering.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DuplicateItem model.
func (d DuplicateItem) TableName() string {
	return "doubles"
}
