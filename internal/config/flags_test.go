// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_ServerFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:9090",
		"-d", "postgres://localhost/guild",
		"-token-sign-key", "secret",
		"-token-issuer", "pigeon-raiders",
		"-token-duration", "1h",
		"-request-timeout", "45s",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/guild", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "pigeon-raiders", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFlags_ClientFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-backend-address", "guild.example.com:8080",
		"-api-key", "anon",
		"-catalog-url", "https://metaforge.app/api/arc-raiders/items",
		"-reconnect-interval", "10s",
	})
	require.NoError(t, err)

	assert.Equal(t, "guild.example.com:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "anon", cfg.Adapter.APIKey)
	assert.Equal(t, "https://metaforge.app/api/arc-raiders/items", cfg.Catalog.URL)
	assert.Equal(t, 10*time.Second, cfg.Workers.ReconnectInterval)
}

func TestParseFlags_Allowlist(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-allowlist", "a@example.com:Alpha,b@example.com:Bravo",
	})
	require.NoError(t, err)

	require.Len(t, cfg.Players.Allowlist, 2)
	assert.Equal(t, "Alpha", cfg.Players.Allowlist["a@example.com"])
	assert.Equal(t, "Bravo", cfg.Players.Allowlist["b@example.com"])
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Nil(t, cfg.Players.Allowlist)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "no-port"})
	require.Error(t, err)
}

func TestParseAllowlistFlag_MalformedPairsSkipped(t *testing.T) {
	list := parseAllowlistFlag("good@example.com:Good,malformed,also-bad:")
	require.Len(t, list, 1)
	assert.Equal(t, "Good", list["good@example.com"])
}

func TestNetAddress_SetAndString(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())
}

func TestNetAddress_EmptyString(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}
