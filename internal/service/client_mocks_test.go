// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"
	"sync"

	"github.com/jessleroux/pigeon-raiders/models"
)

// mockBackendAdapter is a hand-rolled adapter.BackendAdapter stub. Token
// storage is real; every remote call is a function field and counts its
// invocations so tests can assert "no remote call was made".
type mockBackendAdapter struct {
	mu    sync.Mutex
	token string
	calls int

	establishSessionFn func(ctx context.Context, email string) (models.SessionResponse, error)
	listRequestsFn     func(ctx context.Context) ([]models.Request, error)
	createRequestFn    func(ctx context.Context, request models.Request) (models.Request, error)
	patchRequestFn     func(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error)
	deleteRequestFn    func(ctx context.Context, id string) error
	listDuplicatesFn   func(ctx context.Context) ([]models.DuplicateItem, error)
	createDuplicateFn  func(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error)
	patchDuplicateFn   func(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error)
	deleteDuplicateFn  func(ctx context.Context, id string) error
}

func (m *mockBackendAdapter) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *mockBackendAdapter) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *mockBackendAdapter) remoteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockBackendAdapter) countCall() {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
}

func (m *mockBackendAdapter) EstablishSession(ctx context.Context, email string) (models.SessionResponse, error) {
	m.countCall()
	return m.establishSessionFn(ctx, email)
}

func (m *mockBackendAdapter) ListRequests(ctx context.Context) ([]models.Request, error) {
	m.countCall()
	return m.listRequestsFn(ctx)
}

func (m *mockBackendAdapter) CreateRequest(ctx context.Context, request models.Request) (models.Request, error) {
	m.countCall()
	return m.createRequestFn(ctx, request)
}

func (m *mockBackendAdapter) PatchRequest(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error) {
	m.countCall()
	return m.patchRequestFn(ctx, id, patch)
}

func (m *mockBackendAdapter) DeleteRequest(ctx context.Context, id string) error {
	m.countCall()
	return m.deleteRequestFn(ctx, id)
}

func (m *mockBackendAdapter) ListDuplicates(ctx context.Context) ([]models.DuplicateItem, error) {
	m.countCall()
	return m.listDuplicatesFn(ctx)
}

func (m *mockBackendAdapter) CreateDuplicate(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error) {
	m.countCall()
	return m.createDuplicateFn(ctx, item)
}

func (m *mockBackendAdapter) PatchDuplicate(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error) {
	m.countCall()
	return m.patchDuplicateFn(ctx, id, patch)
}

func (m *mockBackendAdapter) DeleteDuplicate(ctx context.Context, id string) error {
	m.countCall()
	return m.deleteDuplicateFn(ctx, id)
}

// mockChangeFeed is a hand-rolled adapter.ChangeFeed stub.
type mockChangeFeed struct {
	subscribeFn func(ctx context.Context, token string) (<-chan models.ChangeEvent, error)
}

func (m *mockChangeFeed) Subscribe(ctx context.Context, token string) (<-chan models.ChangeEvent, error) {
	return m.subscribeFn(ctx, token)
}

// stubSession is a fixed-profile ClientSessionService for ledger tests.
type stubSession struct {
	profile models.Profile
}

func (s *stubSession) SignIn(_ context.Context, _ string) (models.Profile, error) {
	return s.profile, nil
}

func (s *stubSession) SignOut() {}

func (s *stubSession) Profile() models.Profile { return s.profile }

func (s *stubSession) SignedIn() bool { return !s.profile.IsZero() }
