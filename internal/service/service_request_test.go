// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestService_Create_ForcesPendingStatus(t *testing.T) {
	var inserted models.Request
	repo := &mockRequestRepository{
		insertFn: func(_ context.Context, request models.Request) (models.Request, error) {
			inserted = request
			request.ID = "req-1"
			return request, nil
		},
	}
	publisher := &mockPublisher{}
	svc := NewRequestService(repo, publisher, logger.Nop())

	created, err := svc.Create(context.Background(), models.Request{
		Player:      "Jesjedo",
		Item:        "Casque",
		Quantity:    2,
		Status:      models.StatusValidated, // must be overridden
		ValidatedBy: "Susu",                 // must be cleared
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, inserted.Status)
	assert.Empty(t, inserted.ValidatedBy)
	assert.Equal(t, "req-1", created.ID)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, models.ChangeEvent{Table: "demandes", Action: models.ActionInsert}, publisher.events[0])
}

func TestRequestService_Create_InvalidData(t *testing.T) {
	tests := []struct {
		name    string
		request models.Request
	}{
		{name: "empty player", request: models.Request{Item: "Casque", Quantity: 1}},
		{name: "empty item", request: models.Request{Player: "Jesjedo", Quantity: 1}},
		{name: "zero quantity", request: models.Request{Player: "Jesjedo", Item: "Casque"}},
		{name: "negative quantity", request: models.Request{Player: "Jesjedo", Item: "Casque", Quantity: -3}},
	}

	publisher := &mockPublisher{}
	svc := NewRequestService(&mockRequestRepository{}, publisher, logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.request)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
	assert.Empty(t, publisher.events, "invalid creates must not publish events")
}

func TestRequestService_Patch_PublishesUpdate(t *testing.T) {
	repo := &mockRequestRepository{
		patchFn: func(_ context.Context, id string, patch models.RequestPatch) (models.Request, error) {
			return models.Request{ID: id, Status: *patch.Status, ValidatedBy: *patch.ValidatedBy}, nil
		},
	}
	publisher := &mockPublisher{}
	svc := NewRequestService(repo, publisher, logger.Nop())

	status := models.StatusValidated
	validator := "Susu"
	updated, err := svc.Patch(context.Background(), "req-1", models.RequestPatch{Status: &status, ValidatedBy: &validator})
	require.NoError(t, err)

	assert.Equal(t, models.StatusValidated, updated.Status)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, models.ChangeEvent{Table: "demandes", Action: models.ActionUpdate}, publisher.events[0])
}

func TestRequestService_Patch_RepositoryError(t *testing.T) {
	repoErr := errors.New("boom")
	repo := &mockRequestRepository{
		patchFn: func(_ context.Context, _ string, _ models.RequestPatch) (models.Request, error) {
			return models.Request{}, repoErr
		},
	}
	publisher := &mockPublisher{}
	svc := NewRequestService(repo, publisher, logger.Nop())

	_, err := svc.Patch(context.Background(), "req-1", models.RequestPatch{})
	require.ErrorIs(t, err, repoErr)
	assert.Empty(t, publisher.events)
}

func TestRequestService_Delete_PublishesDelete(t *testing.T) {
	repo := &mockRequestRepository{
		deleteFn: func(_ context.Context, id string) error { return nil },
	}
	publisher := &mockPublisher{}
	svc := NewRequestService(repo, publisher, logger.Nop())

	require.NoError(t, svc.Delete(context.Background(), "req-1"))
	require.Len(t, publisher.events, 1)
	assert.Equal(t, models.ChangeEvent{Table: "demandes", Action: models.ActionDelete}, publisher.events[0])
}

func TestRequestService_List(t *testing.T) {
	repo := &mockRequestRepository{
		listFn: func(_ context.Context) ([]models.Request, error) {
			return []models.Request{{ID: "b"}, {ID: "a"}}, nil
		},
	}
	svc := NewRequestService(repo, &mockPublisher{}, logger.Nop())

	requests, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}
