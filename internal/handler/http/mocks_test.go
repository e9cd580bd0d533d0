// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package http

import (
	"context"
	"testing"

	"github.com/jessleroux/pigeon-raiders/internal/events"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockSessionService implements service.SessionService for unit tests.
// Each method field can be overridden per test case.
type mockSessionService struct {
	establishFn  func(ctx context.Context, email string) (models.SessionResponse, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Profile, error)
}

func (m *mockSessionService) Establish(ctx context.Context, email string) (models.SessionResponse, error) {
	return m.establishFn(ctx, email)
}

func (m *mockSessionService) ParseToken(ctx context.Context, tokenString string) (models.Profile, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockRequestService implements service.RequestService for unit tests.
type mockRequestService struct {
	listFn   func(ctx context.Context) ([]models.Request, error)
	createFn func(ctx context.Context, request models.Request) (models.Request, error)
	patchFn  func(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockRequestService) List(ctx context.Context) ([]models.Request, error) {
	return m.listFn(ctx)
}

func (m *mockRequestService) Create(ctx context.Context, request models.Request) (models.Request, error) {
	return m.createFn(ctx, request)
}

func (m *mockRequestService) Patch(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error) {
	return m.patchFn(ctx, id, patch)
}

func (m *mockRequestService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockDuplicateService implements service.DuplicateService for unit tests.
type mockDuplicateService struct {
	listFn   func(ctx context.Context) ([]models.DuplicateItem, error)
	createFn func(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error)
	patchFn  func(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockDuplicateService) List(ctx context.Context) ([]models.DuplicateItem, error) {
	return m.listFn(ctx)
}

func (m *mockDuplicateService) Create(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error) {
	return m.createFn(ctx, item)
}

func (m *mockDuplicateService) Patch(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error) {
	return m.patchFn(ctx, id, patch)
}

func (m *mockDuplicateService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks; nil mocks are
// fine for handlers the test never reaches.
func newTestHandler(t *testing.T, session service.SessionService, requests service.RequestService, duplicates service.DuplicateService) *Handler {
	t.Helper()
	svcs := &service.Services{
		SessionService:   session,
		RequestService:   requests,
		DuplicateService: duplicates,
	}
	return NewHandler(svcs, events.NewBroadcaster(logger.Nop()), logger.Nop())
}

// allowAllSession is a session mock that accepts any token.
func allowAllSession(profile models.Profile) *mockSessionService {
	return &mockSessionService{
		parseTokenFn: func(_ context.Context, _ string) (models.Profile, error) {
			return profile, nil
		},
	}
}
