// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Email optionally prefills the identity field on the sign-in screen.
	Email string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend data-service endpoint.
	HTTPAddress string
	// APIKey is the shared service key attached to every backend call.
	APIKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCatalog holds the external item-catalog endpoint settings.
type ClientCatalog struct {
	// URL is the read-only catalog endpoint.
	URL string
}

// DefaultCatalogURL is used when no catalog endpoint is configured.
const DefaultCatalogURL = "https://metaforge.app/api/arc-raiders/items"

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ReconnectInterval defines how long the change-feed subscriber waits
	// before re-dialling a dropped connection.
	ReconnectInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend endpoint, key, and timeouts.
	Adapter ClientAdapter
	// Catalog contains the external catalog endpoint.
	Catalog ClientCatalog
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Email: cfg.App.Email,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIKey:         cfg.Adapter.APIKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Catalog: ClientCatalog{
			URL: cfg.Catalog.URL,
		},
		Workers: ClientWorkers{ReconnectInterval: cfg.Workers.ReconnectInterval},
	}
	if clientCfg.Catalog.URL == "" {
		clientCfg.Catalog.URL = DefaultCatalogURL
	}

	return clientCfg, clientCfg.validate()
}

// MissingBackendSettings lists the backend settings that are absent from the
// client configuration. A non-empty result is a warning, not a hard failure:
// the client proceeds with a non-functional backend connection and every
// remote call fails visibly.
func (cfg *ClientConfig) MissingBackendSettings() []string {
	var missing []string
	if cfg.Adapter.HTTPAddress == "" {
		missing = append(missing, "adapter address")
	}
	if cfg.Adapter.APIKey == "" {
		missing = append(missing, "adapter api key")
	}
	return missing
}
