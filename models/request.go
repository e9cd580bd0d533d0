// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package models

import "time"

// Request statuses as stored in the "statut" column. The values are kept in
// the original French wire format so that existing rows and clients remain
// compatible.
const (
	// StatusPending is the initial status of every created request.
	StatusPending = "En attente"

	// StatusValidated is the terminal stored status, reachable only from
	// StatusPending and only through a peer (non-requester) validation.
	StatusValidated = "Validée"
)

// Request represents an item request row in the "demandes" table.
//
// A request is created by a player, validated by a different player, and may
// be deleted by its original requester once validated. There is no version
// column: two validators racing on the same pending request last-write-win.
type Request struct {
	// ID is the backend-assigned row identifier.
	ID string `json:"id"`

	// Player is the requester's display name (column "joueur").
	Player string `json:"joueur"`

	// Item is the requested item name (column "objet"). Never empty.
	Item string `json:"objet"`

	// Quantity is the requested amount (column "quantite"). Always positive.
	Quantity int `json:"quantite"`

	// Status is either StatusPending or StatusValidated (column "statut").
	Status string `json:"statut"`

	// ValidatedBy is the validator's display name (column "valide_par").
	// Empty until the request is validated.
	ValidatedBy string `json:"valide_par"`

	// CreatedAt is backend-assigned and used only for display ordering,
	// newest first.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Request model.
func (r Request) TableName() string {
	return "demandes"
}
