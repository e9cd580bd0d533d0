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

// duplicateService is the concrete implementation of DuplicateService.
// Like requestService it is a thin table surface plus change events; the
// reserve/resupply rules live in the client.
type duplicateService struct {
	duplicateRepository store.DuplicateRepository
	publisher           ChangePublisher
	logger              *logger.Logger
}

// NewDuplicateService constructs a DuplicateService over the given
// repository. Every successful mutation is announced through publisher.
func NewDuplicateService(duplicateRepository store.DuplicateRepository, publisher ChangePublisher, logger *logger.Logger) DuplicateService {
	return &duplicateService{
		duplicateRepository: duplicateRepository,
		publisher:           publisher,
		logger:              logger,
	}
}

// List returns the whole ledger, newest first.
func (s *duplicateService) List(ctx context.Context) ([]models.DuplicateItem, error) {
	items, err := s.duplicateRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing duplicate items failed: %w", err)
	}

	return items, nil
}

// Create persists a new duplicate item with Remaining forced equal to Total.
func (s *duplicateService) Create(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error) {
	log := logger.FromContext(ctx)

	if item.Player == "" || item.Item == "" || item.Total <= 0 {
		log.Error().Any("item", item).Msg("invalid duplicate item data provided")
		return models.DuplicateItem{}, ErrInvalidDataProvided
	}

	item.Remaining = item.Total
	item.ReservedBy = ""

	created, err := s.duplicateRepository.Insert(ctx, item)
	if err != nil {
		log.Err(err).Any("item", item).Msg("duplicate item creation ended with error")
		return models.DuplicateItem{}, fmt.Errorf("duplicate item creation ended with error: %w", err)
	}

	s.publisher.Publish(models.ChangeEvent{Table: created.TableName(), Action: models.ActionInsert})
	return created, nil
}

// Patch applies a partial update and returns the updated row. The write is
// unconditional: a reservation carrying a stale restant value overwrites
// whatever is stored (the documented lost-update hazard).
func (s *duplicateService) Patch(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.DuplicateItem{}, ErrInvalidDataProvided
	}

	updated, err := s.duplicateRepository.Patch(ctx, id, patch)
	if err != nil {
		log.Err(err).Str("id", id).Msg("duplicate item patch ended with error")
		return models.DuplicateItem{}, fmt.Errorf("duplicate item patch ended with error: %w", err)
	}

	s.publisher.Publish(models.ChangeEvent{Table: updated.TableName(), Action: models.ActionUpdate})
	return updated, nil
}

// Delete removes a duplicate-item row.
func (s *duplicateService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.duplicateRepository.Delete(ctx, id); err != nil {
		log.Err(err).Str("id", id).Msg("duplicate item deletion ended with error")
		return fmt.Errorf("duplicate item deletion ended with error: %w", err)
	}

	s.publisher.Publish(models.ChangeEvent{Table: models.DuplicateItem{}.TableName(), Action: models.ActionDelete})
	return nil
}
