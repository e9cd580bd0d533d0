// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessleroux/pigeon-raiders/internal/service"
	"github.com/jessleroux/pigeon-raiders/models"
)

type signInModel struct {
	ctx     context.Context
	session service.ClientSessionService

	input      textinput.Model
	status     string
	signingIn  bool
	profile    models.Profile
	done       bool
	quitByUser bool
}

func newSignInModel(ctx context.Context, session service.ClientSessionService, initialEmail string) signInModel {
	input := textinput.New()
	input.Placeholder = "email"
	input.CharLimit = 128
	input.SetValue(initialEmail)
	input.Focus()

	return signInModel{ctx: ctx, session: session, input: input}
}

func (m signInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m signInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		// plain "q" must stay typable in the email field
		case msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc:
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			if m.signingIn {
				return m, nil
			}
			m.signingIn = true
			m.status = "signing in..."
			return m, m.cmdSignIn(m.input.Value())
		}

	case signInDoneMsg:
		m.signingIn = false
		if msg.err != nil {
			// denial and transport failures land in the status line; the
			// user stays on the sign-in screen
			m.status = msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m signInModel) View() string {
	view := titleStyle.Render("Pigeon Raiders") + "\n\n"
	view += "Sign in with your guild email:\n\n"
	view += m.input.View() + "\n\n"
	if m.status != "" {
		view += errorStyle.Render(m.status) + "\n\n"
	}
	view += helpStyle.Render("enter: sign in • esc: quit")
	return appStyle.Render(view)
}

func (m signInModel) cmdSignIn(email string) tea.Cmd {
	return func() tea.Msg {
		profile, err := m.session.SignIn(m.ctx, email)
		if err != nil {
			return signInDoneMsg{err: err}
		}
		return signInDoneMsg{profile: profile}
	}
}
