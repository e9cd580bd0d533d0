// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package models

// CatalogItem is a read-only entry from the external item catalog, used for
// display suggestions only. There is no write path for catalog data.
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
