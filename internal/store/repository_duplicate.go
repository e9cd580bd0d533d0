// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
)

// duplicateRepository is the PostgreSQL-backed implementation of
// [DuplicateRepository]. It handles the "doubles" table.
//
// Note on reservations: the repository offers no conditional update. A
// reservation is a plain patch carrying the caller's already-decremented
// restant value, so the counter is subject to the documented lost-update
// race between concurrent reservers.
type duplicateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDuplicateRepository constructs a [DuplicateRepository] backed by the
// provided database connection and logger.
func NewDuplicateRepository(db *DB, logger *logger.Logger) DuplicateRepository {
	logger.Debug().Msg("creating duplicate repository")
	return &duplicateRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all duplicate-item rows ordered by creation time descending.
func (r *duplicateRepository) List(ctx context.Context) ([]models.DuplicateItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDuplicates)
	if err != nil {
		log.Err(err).Str("func", "*duplicateRepository.List").Msg("error querying doubles")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	items := make([]models.DuplicateItem, 0)
	for rows.Next() {
		var item models.DuplicateItem
		if err := rows.Scan(&item.ID, &item.Player, &item.Item, &item.Total, &item.Remaining, &item.ReservedBy, &item.CreatedAt); err != nil {
			log.Err(err).Str("func", "*duplicateRepository.List").Msg("error: scanning error")
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*duplicateRepository.List").Msg("error iterating rows")
		return nil, err
	}

	return items, nil
}

// Insert persists a new duplicate-item row and returns it with
// server-assigned fields. The caller supplies Total and Remaining already
// equal, per the create contract.
func (r *duplicateRepository) Insert(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertDuplicate, uuid.NewString(), item.Player, item.Item, item.Total, item.Remaining)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*duplicateRepository.Insert").Msg("error inserting double")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
			return models.DuplicateItem{}, ErrConstraintViolation
		default:
			return models.DuplicateItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.DuplicateItem
	if err := row.Scan(&saved.ID, &saved.Player, &saved.Item, &saved.Total, &saved.Remaining, &saved.ReservedBy, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*duplicateRepository.Insert").Msg("error: scanning error")
		return models.DuplicateItem{}, err
	}

	return saved, nil
}

// Patch applies a partial update built by [buildDuplicatePatch] and returns
// the updated row. A patch that matches no row yields
// [ErrDuplicateItemNotFound].
func (r *duplicateRepository) Patch(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDuplicatePatch(id, patch)
	if err != nil {
		log.Err(err).Str("func", "*duplicateRepository.Patch").Msg("error building patch query")
		return models.DuplicateItem{}, err
	}

	var updated models.DuplicateItem
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Player, &updated.Item, &updated.Total, &updated.Remaining, &updated.ReservedBy, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DuplicateItem{}, ErrDuplicateItemNotFound
		}
		log.Err(err).Str("func", "*duplicateRepository.Patch").Msg("error updating double")
		return models.DuplicateItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes a duplicate-item row by id.
func (r *duplicateRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteDuplicate, id)
	if err != nil {
		log.Err(err).Str("func", "*duplicateRepository.Delete").Msg("error deleting double")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDuplicateItemNotFound
	}

	return nil
}
