// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package models

// Profile binds an authenticated identity to its allow-listed display name.
// It is established once per session by the session gate and is immutable for
// the rest of the session.
type Profile struct {
	// Email is the identity reported by the external identity provider.
	Email string `json:"email"`

	// Pseudo is the display name the allow-list maps the identity to.
	// All ledger rows reference players by pseudo, never by email.
	Pseudo string `json:"pseudo"`
}

// IsZero reports whether no profile has been bound.
func (p Profile) IsZero() bool {
	return p.Email == "" && p.Pseudo == ""
}
