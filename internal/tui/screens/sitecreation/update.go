// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package sitecreation

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
)

var errTitleRequired = errors.New("title is required")

type createdMsg struct {
	blog *models.Blog
}

type createFailedMsg struct {
	err error
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "sitecreation").Logger()

	switch msg := msg.(type) {
	case createdMsg:
		m.creating = false
		log.Info().Str("blog_id", msg.blog.ID).Str("url", msg.blog.URL).Msg("Site created")
		blog := msg.blog
		return m, func() tea.Msg {
			return messages.BlogCreatedMsg{Blog: blog}
		}

	case createFailedMsg:
		m.creating = false
		m.errMsg = msg.err.Error()
		log.Error().Err(msg.err).Msg("Site creation failed")
		// The completed form cannot be edited again; rebuild it over the same draft.
		m.initForm()
		return m, m.form.Init()

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	if m.chrome.Handle(msg) {
		if !m.chrome.KeyboardVisible() {
			m.editing = false
		}
		return m, nil
	}

	key, isKey := msg.(tea.KeyMsg)
	if isKey && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.editing {
		if !isKey {
			return m, nil
		}
		switch key.String() {
		case "esc", "backspace", "q":
			return m, func() tea.Msg {
				return messages.GoBackMsg{}
			}
		case "enter", "e":
			m.editing = true
			m.chrome.ShowKeyboard()
		}
		return m, nil
	}

	if isKey && key.String() == "esc" {
		m.editing = false
		m.chrome.DismissKeyboard()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.creating {
		title := m.form.GetString("title")
		address := m.form.GetString("address")
		tagline := m.form.GetString("tagline")

		m.creating = true
		m.editing = false
		m.errMsg = ""
		m.chrome.DismissKeyboard()
		log.Info().Str("title", title).Str("address", address).Msg("Creating site")
		return m, m.create(title, address, tagline)
	}

	return m, cmd
}
