// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// server's startup invariants.
//
// Only the settings the server cannot run without are checked here; missing
// client-side backend settings are deliberately NOT validation errors (see
// [ClientConfig.MissingBackendSettings]).
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validate checks the assembled [ClientConfig]. A missing backend endpoint or
// key is a warning rather than an error, so the only hard failure here is a
// negative timeout.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ReconnectInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
