// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	validate key.Binding
	delete   key.Binding
	reserve  key.Binding
	edit     key.Binding
	refresh  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("o")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	validate: key.NewBinding(key.WithKeys("v")),
	delete:   key.NewBinding(key.WithKeys("d")),
	reserve:  key.NewBinding(key.WithKeys("r")),
	edit:     key.NewBinding(key.WithKeys("e")),
	refresh:  key.NewBinding(key.WithKeys("g")),
}
