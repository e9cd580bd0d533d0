// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/models"
)

type httpBackendAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPBackendAdapter constructs a [BackendAdapter] over HTTP/REST.
//
// The shared service key from cfg is attached to every call in the
// "X-Api-Key" header; the per-session bearer token is managed via SetToken.
func NewHTTPBackendAdapter(cfg config.ClientAdapter) BackendAdapter {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	if cfg.APIKey != "" {
		cli.SetHeader("X-Api-Key", cfg.APIKey)
	}

	return &httpBackendAdapter{client: cli}
}

func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBackendAdapter) EstablishSession(ctx context.Context, email string) (models.SessionResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SessionRequest{Email: email}).
		Post("/api/session")
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	var session models.SessionResponse
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.SessionResponse{}, fmt.Errorf("decode session response: %w", err)
	}

	h.SetToken(session.Token)
	return session, nil
}

func (h *httpBackendAdapter) ListRequests(ctx context.Context) ([]models.Request, error) {
	resp, err := h.authedRequest(ctx).Get("/api/requests/")
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var requests []models.Request
	if err = json.Unmarshal(resp.Body(), &requests); err != nil {
		return nil, fmt.Errorf("decode requests response: %w", err)
	}
	return requests, nil
}

func (h *httpBackendAdapter) CreateRequest(ctx context.Context, request models.Request) (models.Request, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/requests/")
	if err != nil {
		return models.Request{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Request{}, err
	}

	var created models.Request
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Request{}, fmt.Errorf("decode create request response: %w", err)
	}
	return created, nil
}

func (h *httpBackendAdapter) PatchRequest(ctx context.Context, id string, patch models.RequestPatch) (models.Request, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/requests/" + id)
	if err != nil {
		return models.Request{}, fmt.Errorf("patch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Request{}, err
	}

	var updated models.Request
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Request{}, fmt.Errorf("decode patch request response: %w", err)
	}
	return updated, nil
}

func (h *httpBackendAdapter) DeleteRequest(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/requests/" + id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) ListDuplicates(ctx context.Context) ([]models.DuplicateItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/duplicates/")
	if err != nil {
		return nil, fmt.Errorf("list duplicates: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.DuplicateItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode duplicates response: %w", err)
	}
	return items, nil
}

func (h *httpBackendAdapter) CreateDuplicate(ctx context.Context, item models.DuplicateItem) (models.DuplicateItem, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post("/api/duplicates/")
	if err != nil {
		return models.DuplicateItem{}, fmt.Errorf("create duplicate: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DuplicateItem{}, err
	}

	var created models.DuplicateItem
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.DuplicateItem{}, fmt.Errorf("decode create duplicate response: %w", err)
	}
	return created, nil
}

func (h *httpBackendAdapter) PatchDuplicate(ctx context.Context, id string, patch models.DuplicatePatch) (models.DuplicateItem, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/duplicates/" + id)
	if err != nil {
		return models.DuplicateItem{}, fmt.Errorf("patch duplicate: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DuplicateItem{}, err
	}

	var updated models.DuplicateItem
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.DuplicateItem{}, fmt.Errorf("decode patch duplicate response: %w", err)
	}
	return updated, nil
}

func (h *httpBackendAdapter) DeleteDuplicate(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/duplicates/" + id)
	if err != nil {
		return fmt.Errorf("delete duplicate: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
