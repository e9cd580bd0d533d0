// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"

	"github.com/jessleroux/pigeon-raiders/models"
)

// mockRequestRepository is a hand-rolled store.RequestRepository stub.
type mockRequestRepository struct {
	listFn   func(ctx context.Context) ([]models.Request, error)
	insertFn func(ctx context.Context, request models.Request) (models.Request, error)
	patchFn  func(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockRequestRepository) List(ctx context.Context) ([]models.Request, error) {
	return m.listFn(ctx)
}

func (m *mockRequestRepository) Insert(ctx context.Context, request models.Request) (models.Request, error) {
	return m.insertFn(ctx, request)
}

func (m *mockRequestRepository) Patch(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error) {
	return m.patchFn(ctx, id, patch)
}

func (m *mockRequestRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockDuplicateRepository is a hand-rolled store.DuplicateRepository stub.
type mockDuplicateRepository struct {
	listFn   func(ctx context.Context) ([]models.DuplicateItem, error)
	insertFn func(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error)
	patchFn  func(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockDuplicateRepository) List(ctx context.Context) ([]models.DuplicateItem, error) {
	return m.listFn(ctx)
}

func (m *mockDuplicateRepository) Insert(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error) {
	return m.insertFn(ctx, item)
}

func (m *mockDuplicateRepository) Patch(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error) {
	return m.patchFn(ctx, id, patch)
}

func (m *mockDuplicateRepository) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockPublisher records every published change event.
type mockPublisher struct {
	events []models.ChangeEvent
}

func (m *mockPublisher) Publish(event models.ChangeEvent) {
	m.events = append(m.events, event)
}
