// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

// Package client assembles the guild client application: the service layer
// wired to the backend adapters, driven by the terminal UI.
package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/internal/tui"
)

var (
	errNoServicesProvided = errors.New("no client services provided")
	errNoUIProvided       = errors.New("no terminal ui provided")
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}
	if ui == nil {
		return nil, errNoUIProvided
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run drives the UI until the user quits or the process receives a
// termination signal. The UI owns the session and refresh-job lifecycle.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := a.tui.Run(ctx); err != nil {
		return err
	}

	a.services.RefreshJob.Stop()
	a.logger.Info().Msg("client stopped")
	return nil
}
