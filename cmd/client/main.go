// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jessleroux/pigeon-raiders/internal/adapter"
	"github.com/jessleroux/pigeon-raiders/internal/client"
	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("pigeon-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if missing := cfg.MissingBackendSettings(); len(missing) > 0 {
		log.Warn().Str("missing", strings.Join(missing, ", ")).
			Msg("backend settings incomplete, remote calls will fail")
	}

	backendAdapter := adapter.NewHTTPBackendAdapter(cfg.Adapter)
	changeFeed := adapter.NewChangeFeedSubscriber(cfg.Adapter, log)
	catalogAdapter := adapter.NewCatalogAdapter(cfg.Catalog, log)

	services := service.NewClientServices(backendAdapter, changeFeed, catalogAdapter, cfg, log)

	ui, err := tui.New(services, cfg.App.Email, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
