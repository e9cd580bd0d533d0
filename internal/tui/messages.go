// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package tui

import (
	"github.com/jessleroux/pigeon-raiders/models"
)

type signInDoneMsg struct {
	profile models.Profile
	err     error
}

// mirrorTickMsg triggers a re-read of the ledger mirrors so that background
// refreshes become visible without user input.
type mirrorTickMsg struct{}

type mutationDoneMsg struct {
	err error
}

type catalogLoadedMsg struct {
	items []models.CatalogItem
}
