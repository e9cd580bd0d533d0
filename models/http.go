// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package models

// SessionRequest is the body of a session-establishment call. The email is
// the identity reported by the external identity provider; the server checks
// it against the allow-list.
type SessionRequest struct {
	Email string `json:"email"`
}

// SessionResponse is returned on a successful session establishment. Token is
// a signed bearer token the client attaches to every subsequent ledger call
// and to the change-feed subscription.
type SessionResponse struct {
	Profile Profile `json:"profile"`
	Token   string  `json:"token"`
}

// RequestPatch is a partial update document for a request row. Only non-nil
// fields are written; the server returns the full updated row. There is no
// version field: concurrent patches last-write-win.
type RequestPatch struct {
	Status      *string `json:"statut,omitempty"`
	ValidatedBy *string `json:"valide_par,omitempty"`
}

// DuplicatePatch is a partial update document for a duplicate-item row.
type DuplicatePatch struct {
	Total      *int    `json:"quantite_total,omitempty"`
	Remaining  *int    `json:"restant,omitempty"`
	ReservedBy *string `json:"reserved_by,omitempty"`
}
