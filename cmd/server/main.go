// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package main

import (
	"context"
	"fmt"

	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/events"
	httphandler "github.com/jessleroux/pigeon-raiders/internal/handler/http"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/server"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pigeon-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	broadcaster := events.NewBroadcaster(log)
	services := service.NewServices(storages, broadcaster, cfg, log)
	handler := httphandler.NewHandler(services, broadcaster, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
