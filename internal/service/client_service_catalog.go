// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"

	"github.com/jessleroux/pigeon-raiders/internal/adapter"
	"github.com/jessleroux/pigeon-raiders/models"
)

type clientCatalogService struct {
	adapter adapter.CatalogAdapter
}

// NewClientCatalogService constructs a [ClientCatalogService] over the given
// catalog adapter.
func NewClientCatalogService(catalogAdapter adapter.CatalogAdapter) ClientCatalogService {
	return &clientCatalogService{adapter: catalogAdapter}
}

// Preview delegates to the adapter: no retry, no cache, failures stay empty.
func (s *clientCatalogService) Preview(ctx context.Context) []models.CatalogItem {
	return s.adapter.Preview(ctx)
}
