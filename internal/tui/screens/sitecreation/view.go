// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package sitecreation

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/blogdeck/blogdeck/internal/tui/layout"
)

// View renders the site creation screen
func (m Model) View() string {
	info := m.chrome.LayoutInfo(m.status())

	var errLine string
	if m.errMsg != "" {
		errLine = layout.ErrorStyle.Render("Error: " + m.errMsg)
	}

	content := lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, errLine, m.form.View()))

	return layout.RenderLayout(content, info, m.width, m.height)
}

func (m Model) status() string {
	switch {
	case m.creating:
		return "Creating site..."
	case m.editing:
		return "Press esc to hide the keyboard"
	default:
		return "Press enter to edit, esc to leave"
	}
}
