// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"github.com/jessleroux/pigeon-raiders/internal/events"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/service"
)

type Handler struct {
	services    *service.Services
	broadcaster *events.Broadcaster

	logger *logger.Logger
}

func NewHandler(services *service.Services, broadcaster *events.Broadcaster, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		broadcaster: broadcaster,
		logger:      logger,
	}
}
