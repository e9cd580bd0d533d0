// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"
	"fmt"

	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/store"
	"github.com/jessleroux/pigeon-raiders/models"
)

// requestService is the concrete implementation of RequestService.
//
// It is intentionally thin: the hosted backend the original app delegated to
// performed no lifecycle checks, so this service only validates shape (who is
// named, that quantities are positive) and publishes change events. Who may
// validate or delete a request is the caller's concern.
type requestService struct {
	requestRepository store.RequestRepository
	publisher         ChangePublisher
	logger            *logger.Logger
}

// NewRequestService constructs a RequestService over the given repository.
// Every successful mutation is announced through publisher.
func NewRequestService(requestRepository store.RequestRepository, publisher ChangePublisher, logger *logger.Logger) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		publisher:         publisher,
		logger:            logger,
	}
}

// List returns the whole ledger, newest first.
func (s *requestService) List(ctx context.Context) ([]models.Request, error) {
	requests, err := s.requestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing requests failed: %w", err)
	}

	return requests, nil
}

// Create persists a new request with status "En attente".
//
// Returns ErrInvalidDataProvided if the player or item name is empty or the
// quantity is not positive; these never reach storage.
func (s *requestService) Create(ctx context.Context, request models.Request) (models.Request, error) {
	log := logger.FromContext(ctx)

	if request.Player == "" || request.Item == "" || request.Quantity <= 0 {
		log.Error().Any("request", request).Msg("invalid request data provided")
		return models.Request{}, ErrInvalidDataProvided
	}

	request.Status = models.StatusPending
	request.ValidatedBy = ""

	created, err := s.requestRepository.Insert(ctx, request)
	if err != nil {
		log.Err(err).Any("request", request).Msg("request creation ended with error")
		return models.Request{}, fmt.Errorf("request creation ended with error: %w", err)
	}

	s.publisher.Publish(models.ChangeEvent{Table: created.TableName(), Action: models.ActionInsert})
	return created, nil
}

// Patch applies a partial update and returns the updated row. No version
// check is performed: concurrent patches last-write-win.
func (s *requestService) Patch(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Request{}, ErrInvalidDataProvided
	}

	updated, err := s.requestRepository.Patch(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("request patch ended with error")
		return models.Request{}, fmt.Errorf("request patch ended with error: %w", err)
	}

	s.publisher.Publish(models.ChangeEvent{Table: updated.TableName(), Action: models.ActionUpdate})
	return updated, nil
}

// Delete removes a request row.
func (s *requestService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.requestRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("request deletion ended with error")
		return fmt.Errorf("request deletion ended with error: %w", err)
	}

	s.publisher.Publish(models.ChangeEvent{Table: models.Request{}.TableName(), Action: models.ActionDelete})
	return nil
}
