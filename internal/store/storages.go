// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package store

import (
	"context"
	"fmt"

	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/migrations"
)

// Storages bundles the ledger repositories behind their interfaces so the
// service layer receives one wired dependency.
type Storages struct {
	Requests   RequestRepository
	Duplicates DuplicateRepository
}

// NewStorages connects to Postgres, applies pending migrations, and
// constructs the ledger repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Storages{
		Requests:   NewRequestRepository(db, log),
		Duplicates: NewDuplicateRepository(db, log),
	}, nil
}
