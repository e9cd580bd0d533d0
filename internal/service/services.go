// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/store"
)

type Services struct {
	SessionService   SessionService
	RequestService   RequestService
	DuplicateService DuplicateService
}

func NewServices(storages *store.Storages, publisher ChangePublisher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		SessionService:   NewSessionService(cfg.Players.Allowlist, cfg.App, logger),
		RequestService:   NewRequestService(storages.Requests, publisher, logger),
		DuplicateService: NewDuplicateService(storages.Duplicates, publisher, logger),
	}
}
