// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package store

import (
	"context"

	"github.com/jessleroux/pigeon-raiders/models"
)

// RequestRepository is the persistence boundary for the "demandes" ledger.
// It exposes the same generic surface the original delegated to its hosted
// backend: list-with-ordering, insert-returning-row, patch-by-id-returning-row
// and delete-by-id. Lifecycle rules are NOT enforced here.
type RequestRepository interface {
	List(ctx context.Context) ([]models.Request, error)
	Insert(ctx context.Context, request models.Request) (models.Request, error)
	Patch(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error)
	Delete(ctx context.Context, id string) error
}

// DuplicateRepository is the persistence boundary for the "doubles" ledger.
type DuplicateRepository interface {
	List(ctx context.Context) ([]models.DuplicateItem, error)
	Insert(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error)
	Patch(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error)
	Delete(ctx context.Context, id string) error
}
