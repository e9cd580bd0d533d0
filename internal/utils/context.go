// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package utils

import (
	"context"

	"github.com/jessleroux/pigeon-raiders/models"
)

// contextKey is a private type for context keys defined in this package to
// avoid collisions with keys defined elsewhere.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ProfileCtxKey is the key used to store the authenticated profile in the
// request context.
//
// Example:
//
//	ctx := context.WithValue(ctx, utils.ProfileCtxKey, profile)
var ProfileCtxKey = contextKey("profile")

// GetProfileFromContext extracts the authenticated [models.Profile] stored in
// ctx by the auth middleware. The second return value reports whether a
// profile was present.
func GetProfileFromContext(ctx context.Context) (models.Profile, bool) {
	profile, ok := ctx.Value(ProfileCtxKey).(models.Profile)
	return profile, ok
}
