// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jessleroux/pigeon-raiders/internal/config"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/utils"
	"github.com/jessleroux/pigeon-raiders/models"
)

// sessionService is the concrete implementation of SessionService.
// It checks identities against the injected allow-list and handles the
// session token lifecycle.
type sessionService struct {
	// allowlist is the injected identity → display name mapping. There is no
	// other source of authorization: an identity is either here or denied.
	allowlist config.Allowlist

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService over the given allow-list,
// populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(allowlist config.Allowlist, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		allowlist:     allowlist,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Establish implements the session gate.
//
// An allow-listed identity is bound to its profile {email, pseudo} and
// receives a signed session token. An unknown identity gets
// ErrIdentityNotAllowed: no partial access, no profile, no token.
func (s *sessionService) Establish(ctx context.Context, email string) (models.SessionResponse, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("empty identity provided")
		return models.SessionResponse{}, ErrInvalidDataProvided
	}

	pseudo, ok := s.allowlist.Pseudo(email)
	if !ok {
		log.Warn().Str("email", email).Msg("identity not in allow-list, session denied")
		return models.SessionResponse{}, ErrIdentityNotAllowed
	}

	tokenString, err := utils.GenerateSessionToken(s.tokenIssuer, email, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("email", email).Msg("session token creation failed")
		return models.SessionResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.SessionResponse{
		Profile: models.Profile{Email: email, Pseudo: pseudo},
		Token:   tokenString,
	}, nil
}

// ParseToken validates a raw token string and resolves it back to a profile.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors. An identity that has since been removed from the allow-list
// yields ErrIdentityNotAllowed.
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Profile, error) {
	email, err := utils.ParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Profile{}, ErrTokenIsExpiredOrInvalid
	}

	pseudo, ok := s.allowlist.Pseudo(email)
	if !ok {
		return models.Profile{}, ErrIdentityNotAllowed
	}

	return models.Profile{Email: email, Pseudo: pseudo}, nil
}
