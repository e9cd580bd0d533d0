// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"github.com/jessleroux/pigeon-raiders/internal/adapter"
	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
)

type ClientServices struct {
	SessionService ClientSessionService
	LedgerService  ClientLedgerService
	CatalogService ClientCatalogService
	RefreshJob     ClientRefreshJob
}

func NewClientServices(backendAdapter adapter.BackendAdapter, feed adapter.ChangeFeed, catalogAdapter adapter.CatalogAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(backendAdapter, logger)
	ledgerSvc := NewClientLedgerService(backendAdapter, sessionSvc, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		LedgerService:  ledgerSvc,
		CatalogService: NewClientCatalogService(catalogAdapter),
		RefreshJob:     NewClientRefreshJob(feed, backendAdapter, ledgerSvc, cfg.Workers.ReconnectInterval, logger),
	}
}
