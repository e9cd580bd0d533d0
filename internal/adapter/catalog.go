// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package adapter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
)

// catalogPreviewLimit caps how many catalog entries the preview shows.
const catalogPreviewLimit = 12

type catalogAdapter struct {
	client *resty.Client
	url    string
	logger *logger.Logger
}

// NewCatalogAdapter constructs a [CatalogAdapter] for the read-only external
// catalog at cfg.URL. An empty URL yields an adapter whose Preview always
// returns an empty slice.
func NewCatalogAdapter(cfg config.ClientCatalog, logger *logger.Logger) CatalogAdapter {
	cli := resty.New().SetTimeout(10 * time.Second)
	return &catalogAdapter{client: cli, url: cfg.URL, logger: logger}
}

// Preview fetches the catalog and returns at most the first twelve entries.
//
// All failures (network, non-2xx, malformed payload) are logged and swallowed:
// the catalog is decorative and must never break the client.
func (c *catalogAdapter) Preview(ctx context.Context) []models.CatalogItem {
	if c.url == "" {
		return []models.CatalogItem{}
	}

	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		c.logger.Warn().Err(err).Msg("catalog fetch failed")
		return []models.CatalogItem{}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode()).Msg("catalog fetch returned non-2xx status")
		return []models.CatalogItem{}
	}

	items := decodeCatalogPayload(resp.Body())
	if len(items) > catalogPreviewLimit {
		items = items[:catalogPreviewLimit]
	}
	return items
}

// decodeCatalogPayload accepts either a bare JSON array of catalog items or
// an object wrapping the array in an "items" field, the two shapes the
// catalog endpoint has been observed to serve.
func decodeCatalogPayload(body []byte) []models.CatalogItem {
	var items []models.CatalogItem
	if err := json.Unmarshal(body, &items); err == nil {
		return items
	}

	var wrapped struct {
		Items []models.CatalogItem `json:"items"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Items != nil {
		return wrapped.Items
	}

	return []models.CatalogItem{}
}
