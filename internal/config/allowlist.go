// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package config

// Allowlist is the fixed set of authorized identities and their display
// names. It is injected configuration rather than a compiled constant so that
// deployments and tests can supply their own mapping.
type Allowlist map[string]string

// Pseudo returns the display name mapped to the given identity email and
// whether the identity is allow-listed at all.
func (a Allowlist) Pseudo(email string) (string, bool) {
	pseudo, ok := a[email]
	return pseudo, ok
}
