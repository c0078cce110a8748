// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package discussionsettings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/discussion"
	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
		case "down", "j":
			if m.selectedIndex < len(m.rows())-1 {
				m.selectedIndex++
			}
		case " ":
			if row := m.SelectedRow(); row.IsSwitch() {
				discussion.Apply(m.settings, row.Action, !row.On())
			}
		case "enter":
			return m, m.activate(m.SelectedRow())
		case "esc", "backspace":
			return m, func() tea.Msg {
				return messages.GoBackMsg{}
			}
		}

	case messages.SelectionMadeMsg:
		if discussion.ApplySelection(m.settings, msg.Response) {
			log := logger.GetTUILogger()
			log.Debug().
				Str("blog_id", m.blog.ID).
				Str("field", msg.Response.Field.String()).
				Interface("value", msg.Response.Value).
				Msg("Discussion selection applied")
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// activate dispatches the row's action. Switches flip; value rows may ask the
// host for a picker.
func (m Model) activate(row discussion.Row) tea.Cmd {
	if row.IsSwitch() {
		discussion.Apply(m.settings, row.Action, !row.On())
		return nil
	}

	effect := discussion.Apply(m.settings, row.Action, nil)
	if effect.Selection == nil {
		return nil
	}
	req := *effect.Selection
	return func() tea.Msg {
		return messages.PushSelectionMsg{Request: req}
	}
}
