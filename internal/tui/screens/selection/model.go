// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package selection is a generic picker for a discussion.SelectionRequest.
package selection

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/discussion"
	"github.com/blogdeck/blogdeck/internal/tui/layout"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
)

// Model is the model for the selection screen.
type Model struct {
	request       discussion.SelectionRequest
	selectedIndex int
	width         int
	height        int
}

// NewModel opens the picker on the current value, or on the first option
// when the current value is not offered.
func NewModel(req discussion.SelectionRequest) Model {
	return Model{
		request:       req,
		selectedIndex: max(req.IndexOf(req.Current), 0),
		width:         50,
		height:        10,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Request returns the request the picker answers.
func (m Model) Request() discussion.SelectionRequest {
	return m.request
}

// GetLayoutInfo returns layout information for the selection screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       m.request.Title,
		Breadcrumbs: []string{"Discussion", m.request.Title},
		HelpItems: []layout.HelpItem{
			{Key: "↑/↓", Description: "navigate"},
			{Key: "enter", Description: "choose"},
			{Key: "esc", Description: "cancel"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

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
			if m.selectedIndex < len(m.request.Values)-1 {
				m.selectedIndex++
			}
		case "enter", " ":
			if len(m.request.Values) == 0 {
				return m, nil
			}
			resp := m.request.Respond(m.selectedIndex)
			return m, func() tea.Msg {
				return messages.SelectionMadeMsg{Response: resp}
			}
		case "esc", "backspace":
			return m, func() tea.Msg {
				return messages.GoBackMsg{}
			}
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the selection screen
func (m Model) View() string {
	var b strings.Builder
	for i, option := range m.request.Options() {
		title, value := option.Unpack()

		var marks []string
		if value == m.request.Current {
			marks = append(marks, layout.StatusStyle.Render("✓"))
		}
		if m.request.HasDefault && value == m.request.Default {
			marks = append(marks, layout.RowDetailStyle.Render("(default)"))
		}

		b.WriteString(layout.RenderRow(title, strings.Join(marks, " "), i == m.selectedIndex))
		b.WriteString("\n")
	}
	return layout.RenderLayout(strings.TrimRight(b.String(), "\n"), m.GetLayoutInfo(), m.width, m.height)
}
