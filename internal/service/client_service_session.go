// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jessleroux/pigeon-raiders/internal/adapter"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/models"
)

type clientSessionService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger

	mu      sync.RWMutex
	profile models.Profile
}

// NewClientSessionService constructs a [ClientSessionService] over the given
// backend adapter.
func NewClientSessionService(backendAdapter adapter.BackendAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{adapter: backendAdapter, logger: logger}
}

// SignIn implements the client half of the session gate.
//
// On denial the session is force-cleared: the adapter token is dropped, no
// profile is bound, and ErrSessionDenied is returned so the caller shows the
// denial message instead of fetching tables.
func (s *clientSessionService) SignIn(ctx context.Context, email string) (models.Profile, error) {
	if email == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}

	session, err := s.adapter.EstablishSession(ctx, email)
	if err != nil {
		s.SignOut()
		if errors.Is(err, adapter.ErrAccessDenied) {
			s.logger.Warn().Str("email", email).Msg("sign-in denied by allow-list")
			return models.Profile{}, ErrSessionDenied
		}
		return models.Profile{}, fmt.Errorf("sign-in failed: %w", err)
	}

	s.mu.Lock()
	s.profile = session.Profile
	s.mu.Unlock()

	s.logger.Debug().Str("pseudo", session.Profile.Pseudo).Msg("signed in")
	return session.Profile, nil
}

func (s *clientSessionService) SignOut() {
	s.mu.Lock()
	s.profile = models.Profile{}
	s.mu.Unlock()
	s.adapter.SetToken("")
}

func (s *clientSessionService) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *clientSessionService) SignedIn() bool {
	return !s.Profile().IsZero()
}
