// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jessleroux/pigeon-raiders/internal/adapter"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
)

// clientLedgerService holds the local mirrors of the two backend tables and
// enforces every lifecycle rule before touching the network.
//
// Mirrors are whole-list replaced on refresh and patched optimistically on
// local mutations. The reservation path deliberately reads the mirrored
// restant, decrements it and writes the result back unconditionally, so two
// concurrent reservations can lose an update. This matches the original
// behaviour on purpose.
type clientLedgerService struct {
	adapter adapter.BackendAdapter
	session ClientSessionService
	logger  *logger.Logger

	mu         sync.RWMutex
	requests   []models.Request
	duplicates []models.DuplicateItem
}

// NewClientLedgerService constructs a [ClientLedgerService] with empty
// mirrors.
func NewClientLedgerService(backendAdapter adapter.BackendAdapter, session ClientSessionService, logger *logger.Logger) ClientLedgerService {
	return &clientLedgerService{
		adapter:    backendAdapter,
		session:    session,
		logger:     logger,
		requests:   []models.Request{},
		duplicates: []models.DuplicateItem{},
	}
}

func (s *clientLedgerService) Requests() []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *clientLedgerService) Duplicates() []models.DuplicateItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DuplicateItem, len(s.duplicates))
	copy(out, s.duplicates)
	return out
}

// Refresh replaces the named table's whole mirror with the backend's current
// list. Replacing, not merging: a refresh always wins over any optimistic
// local patch applied since the last one.
func (s *clientLedgerService) Refresh(ctx context.Context, table string) error {
	switch table {
	case models.Request{}.TableName():
		requests, err := s.adapter.ListRequests(ctx)
		if err != nil {
			return fmt.Errorf("refreshing requests failed: %w", err)
		}
		s.mu.Lock()
		s.requests = requests
		s.mu.Unlock()
		return nil

	case models.DuplicateItem{}.TableName():
		duplicates, err := s.adapter.ListDuplicates(ctx)
		if err != nil {
			return fmt.Errorf("refreshing duplicate items failed: %w", err)
		}
		s.mu.Lock()
		s.duplicates = duplicates
		s.mu.Unlock()
		return nil

	default:
		return fmt.Errorf("%w: unknown table %q", ErrInvalidDataProvided, table)
	}
}

func (s *clientLedgerService) RefreshAll(ctx context.Context) error {
	if err := s.Refresh(ctx, models.Request{}.TableName()); err != nil {
		return err
	}
	return s.Refresh(ctx, models.DuplicateItem{}.TableName())
}

func (s *clientLedgerService) ClearLocal() {
	s.mu.Lock()
	s.requests = []models.Request{}
	s.duplicates = []models.DuplicateItem{}
	s.mu.Unlock()
}

func (s *clientLedgerService) CreateRequest(ctx context.Context, item string, quantity int) (models.Request, error) {
	profile := s.session.Profile()
	switch {
	case profile.IsZero():
		return models.Request{}, ErrNotSignedIn
	case item == "":
		return models.Request{}, ErrEmptyItemName
	case quantity <= 0:
		return models.Request{}, ErrNonPositiveQuantity
	}

	created, err := s.adapter.CreateRequest(ctx, models.Request{
		Player:   profile.Pseudo,
		Item:     item,
		Quantity: quantity,
		Status:   models.StatusPending,
	})
	if err != nil {
		return models.Request{}, fmt.Errorf("request creation failed: %w", err)
	}

	s.mu.Lock()
	s.requests = append([]models.Request{created}, s.requests...)
	s.mu.Unlock()

	return created, nil
}

func (s *clientLedgerService) ValidateRequest(ctx context.Context, id string) (models.Request, error) {
	profile := s.session.Profile()
	if profile.IsZero() {
		return models.Request{}, ErrNotSignedIn
	}

	request, ok := s.findRequest(id)
	switch {
	case !ok:
		return models.Request{}, ErrRowNotFound
	case request.Status != models.StatusPending:
		return models.Request{}, ErrRequestAlreadyValidated
	case request.Player == profile.Pseudo:
		return models.Request{}, ErrSelfValidation
	}

	status := models.StatusValidated
	validatedBy := profile.Pseudo
	updated, err := s.adapter.PatchRequest(ctx, id, models.RequestPatch{
		Status:      &status,
		ValidatedBy: &validatedBy,
	})
	if err != nil {
		return models.Request{}, fmt.Errorf("request validation failed: %w", err)
	}

	s.replaceRequest(updated)
	return updated, nil
}

func (s *clientLedgerService) DeleteRequest(ctx context.Context, id string) error {
	profile := s.session.Profile()
	if profile.IsZero() {
		return ErrNotSignedIn
	}

	request, ok := s.findRequest(id)
	switch {
	case !ok:
		return ErrRowNotFound
	case request.Player != profile.Pseudo:
		return ErrNotRequester
	case request.Status != models.StatusValidated:
		return ErrRequestNotValidated
	}

	if err := s.adapter.DeleteRequest(ctx, id); err != nil {
		return fmt.Errorf("request deletion failed: %w", err)
	}

	s.mu.Lock()
	s.requests = removeRequest(s.requests, id)
	s.mu.Unlock()

	return nil
}

func (s *clientLedgerService) CreateDuplicate(ctx context.Context, item string, quantity int) (models.DuplicateItem, error) {
	profile := s.session.Profile()
	switch {
	case profile.IsZero():
		return models.DuplicateItem{}, ErrNotSignedIn
	case item == "":
		return models.DuplicateItem{}, ErrEmptyItemName
	case quantity <= 0:
		return models.DuplicateItem{}, ErrNonPositiveQuantity
	}

	created, err := s.adapter.CreateDuplicate(ctx, models.DuplicateItem{
		Player:    profile.Pseudo,
		Item:      item,
		Total:     quantity,
		Remaining: quantity,
	})
	if err != nil {
		return models.DuplicateItem{}, fmt.Errorf("duplicate item creation failed: %w", err)
	}

	s.mu.Lock()
	s.duplicates = append([]models.DuplicateItem{created}, s.duplicates...)
	s.mu.Unlock()

	return created, nil
}

// ReserveDuplicate reserves one unit: plain read-decrement-write on the
// mirrored restant, no version check.
func (s *clientLedgerService) ReserveDuplicate(ctx context.Context, id string) (models.DuplicateItem, error) {
	profile := s.session.Profile()
	if profile.IsZero() {
		return models.DuplicateItem{}, ErrNotSignedIn
	}

	item, ok := s.findDuplicate(id)
	switch {
	case !ok:
		return models.DuplicateItem{}, ErrRowNotFound
	case item.Player == profile.Pseudo:
		return models.DuplicateItem{}, ErrOwnReservation
	case item.Remaining <= 0:
		return models.DuplicateItem{}, ErrOutOfStock
	}

	remaining := item.Remaining - 1
	reservedBy := profile.Pseudo
	updated, err := s.adapter.PatchDuplicate(ctx, id, models.DuplicatePatch{
		Remaining:  &remaining,
		ReservedBy: &reservedBy,
	})
	if err != nil {
		return models.DuplicateItem{}, fmt.Errorf("reservation failed: %w", err)
	}

	s.replaceDuplicate(updated)
	return updated, nil
}

// ResupplyDuplicate sets total and remaining to quantity, whatever the old
// remaining was. Zero is a valid value: it empties the listing without
// deleting it.
func (s *clientLedgerService) ResupplyDuplicate(ctx context.Context, id string, quantity int) (models.DuplicateItem, error) {
	profile := s.session.Profile()
	switch {
	case profile.IsZero():
		return models.DuplicateItem{}, ErrNotSignedIn
	case quantity < 0:
		return models.DuplicateItem{}, ErrNegativeQuantity
	}

	item, ok := s.findDuplicate(id)
	switch {
	case !ok:
		return models.DuplicateItem{}, ErrRowNotFound
	case item.Player != profile.Pseudo:
		return models.DuplicateItem{}, ErrNotOwner
	}

	total := quantity
	remaining := quantity
	updated, err := s.adapter.PatchDuplicate(ctx, id, models.DuplicatePatch{
		Total:     &total,
		Remaining: &remaining,
	})
	if err != nil {
		return models.DuplicateItem{}, fmt.Errorf("resupply failed: %w", err)
	}

	s.replaceDuplicate(updated)
	return updated, nil
}

func (s *clientLedgerService) DeleteDuplicate(ctx context.Context, id string) error {
	profile := s.session.Profile()
	if profile.IsZero() {
		return ErrNotSignedIn
	}

	item, ok := s.findDuplicate(id)
	switch {
	case !ok:
		return ErrRowNotFound
	case item.Player != profile.Pseudo:
		return ErrNotOwner
	}

	if err := s.adapter.DeleteDuplicate(ctx, id); err != nil {
		return fmt.Errorf("duplicate item deletion failed: %w", err)
	}

	s.mu.Lock()
	s.duplicates = removeDuplicate(s.duplicates, id)
	s.mu.Unlock()

	return nil
}

func (s *clientLedgerService) findRequest(id string) (models.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, request := range s.requests {
		if request.ID == id {
			return request, true
		}
	}
	return models.Request{}, false
}

func (s *clientLedgerService) findDuplicate(id string) (models.DuplicateItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.duplicates {
		if item.ID == id {
			return item, true
		}
	}
	return models.DuplicateItem{}, false
}

func (s *clientLedgerService) replaceRequest(updated models.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, request := range s.requests {
		if request.ID == updated.ID {
			s.requests[i] = updated
			return
		}
	}
}

func (s *clientLedgerService) replaceDuplicate(updated models.DuplicateItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.duplicates {
		if item.ID == updated.ID {
			s.duplicates[i] = updated
			return
		}
	}
}

func removeRequest(requests []models.Request, id string) []models.Request {
	out := requests[:0]
	for _, request := range requests {
		if request.ID != id {
			out = append(out, request)
		}
	}
	return out
}

func removeDuplicate(items []models.DuplicateItem, id string) []models.DuplicateItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
