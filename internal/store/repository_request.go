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

// requestRepository is the PostgreSQL-backed implementation of
// [RequestRepository]. It handles the "demandes" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type requestRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRequestRepository constructs a [RequestRepository] backed by the
// provided database connection and logger.
func NewRequestRepository(db *DB, logger *logger.Logger) RequestRepository {
	logger.Debug().Msg("creating request repository")
	return &requestRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all request rows ordered by creation time descending. An empty
// ledger yields an empty slice, not nil, so callers can always replace their
// mirror wholesale.
func (r *requestRepository) List(ctx context.Context) ([]models.Request, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRequests)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.List").Msg("error querying demandes")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	requests := make([]models.Request, 0)
	for rows.Next() {
		var request models.Request
		if err := rows.Scan(&request.ID, &request.Player, &request.Item, &request.Quantity, &request.Status, &request.ValidatedBy, &request.CreatedAt); err != nil {
			log.Err(err).Str("func", "*requestRepository.List").Msg("error: scanning error")
			return nil, err
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*requestRepository.List").Msg("error iterating rows")
		return nil, err
	}

	return requests, nil
}

// Insert persists a new request row and returns the fully populated
// [models.Request] with server-assigned fields (ID, CreatedAt).
//
// The row id is assigned here; created_at comes from the table default. The
// INSERT returns all columns via a RETURNING clause so the caller receives
// the canonical database representation of the new row.
//
// Error handling:
//   - PostgreSQL unique/check violation → [ErrConstraintViolation].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *requestRepository) Insert(ctx context.Context, request models.Request) (models.Request, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertRequest, uuid.NewString(), request.Player, request.Item, request.Quantity, request.Status)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*requestRepository.Insert").Msg("error inserting demande")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation, pgerrcode.CheckViolation:
			return models.Request{}, ErrConstraintViolation
		default:
			return models.Request{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var saved models.Request
	if err := row.Scan(&saved.ID, &saved.Player, &saved.Item, &saved.Quantity, &saved.Status, &saved.ValidatedBy, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*requestRepository.Insert").Msg("error: scanning error")
		return models.Request{}, err
	}

	return saved, nil
}

// Patch applies a partial update built by [buildRequestPatch] and returns the
// updated row. A patch that matches no row yields [ErrRequestNotFound].
func (r *requestRepository) Patch(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRequestPatch(id, patch)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.Patch").Msg("error building patch query")
		return models.Request{}, err
	}

	var updated models.Request
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Player, &updated.Item, &updated.Quantity, &updated.Status, &updated.ValidatedBy, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Request{}, ErrRequestNotFound
		}
		log.Err(err).Str("func", "*requestRepository.Patch").Msg("error updating demande")
		return models.Request{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes a request row by id. Deleting an absent row yields
// [ErrRequestNotFound].
func (r *requestRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRequest, id)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.Delete").Msg("error deleting demande")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRequestNotFound
	}

	return nil
}
