// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

// Package tui implements the terminal user interface of the guild client:
// a sign-in screen followed by a three-tab board (requests, duplicate items,
// catalog preview). Rule violations and transport failures surface in a
// status line, never as blocking dialogs.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessleroux/pigeon-raiders/internal/logger"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger

	// initialEmail optionally prefills the sign-in input.
	initialEmail string
}

func New(services *service.ClientServices, initialEmail string, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, initialEmail: initialEmail, logger: logger}, nil
}

// Run drives the whole client lifecycle: sign-in, board, and back to sign-in
// on logout. It returns nil when the user quits.
func (t *TUI) Run(ctx context.Context) error {
	for {
		profile, err := t.signInFlow(ctx)
		if errors.Is(err, ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		// First full fetch. A failure here is not fatal: the board opens
		// empty and the refresh job converges it.
		if err := t.services.LedgerService.RefreshAll(ctx); err != nil {
			t.logger.Warn().Err(err).Msg("initial refresh failed")
		}

		t.services.RefreshJob.Start(ctx)
		logout, err := t.boardLoop(ctx, profile)
		t.services.RefreshJob.Stop()

		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		t.services.SessionService.SignOut()
		t.services.LedgerService.ClearLocal()
	}
}

func (t *TUI) signInFlow(ctx context.Context) (models.Profile, error) {
	model := newSignInModel(ctx, t.services.SessionService, t.initialEmail)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Profile{}, runErr
	}

	result, ok := finalModel.(signInModel)
	if !ok {
		return models.Profile{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Profile{}, ErrUserQuit
	}

	return result.profile, nil
}

func (t *TUI) boardLoop(ctx context.Context, profile models.Profile) (logout bool, err error) {
	model := newBoardModel(ctx, t.services, profile)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(boardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
