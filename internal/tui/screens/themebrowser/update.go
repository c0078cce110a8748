// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package themebrowser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the filter prompt is open every key belongs to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(ThemeItem)
			if !ok || m.blog == nil || item.Active {
				return m, nil
			}
			m.statusMessage = "Activating " + item.Theme.Name + "..."
			return m, activateTheme(m.source, m.blog.ID, item.Theme.ID)

		case "esc", "backspace":
			if m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}
			return m, func() tea.Msg {
				return messages.GoBackMsg{}
			}

		case "ctrl+c":
			return m, tea.Quit
		}

	case protocol.ThemesLoadedEvent:
		if m.blog == nil || msg.BlogID != m.blog.ID {
			return m, nil
		}
		m.themes = msg.Themes
		m.statusMessage = ""
		m.setItems(msg.ActiveThemeID)
		return m, nil

	case themeActivatedMsg:
		if m.blog == nil || msg.blogID != m.blog.ID {
			return m, nil
		}
		m.blog.ActiveThemeID = msg.themeID
		m.statusMessage = ""
		m.setItems(msg.themeID)
		return m, nil

	case protocol.ErrorEvent:
		m.statusMessage = fmt.Sprintf("Error: %s - %s", msg.Message, msg.Context)
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) setItems(activeID string) {
	items := lo.Map(m.themes, func(t models.Theme, _ int) list.Item {
		return ThemeItem{Theme: t, Active: t.ID == activeID}
	})
	m.list.SetItems(items)
}
