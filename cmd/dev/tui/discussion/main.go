// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command discussion runs the discussion settings screen on its own, with the
// sub-selection picker, against an in-memory blog.
package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
	"github.com/blogdeck/blogdeck/internal/tui/screens/discussionsettings"
	"github.com/blogdeck/blogdeck/internal/tui/screens/selection"
)

type demoModel struct {
	screen  discussionsettings.Model
	picker  *selection.Model
	width   int
	height  int
	saves   int
	lastRev uint64
}

func (m demoModel) Init() tea.Cmd {
	return m.screen.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.SetSize(m.width, m.height)
		if m.picker != nil {
			m.picker.SetSize(m.width, m.height)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			// Simulate the exit hook without leaving the screen
			s := m.screen.Settings()
			if s.HasChanges() {
				m.saves++
				m.lastRev = s.Revision()
				s.MarkSaved(m.lastRev)
			}
			return m, nil
		}

	case messages.PushSelectionMsg:
		picker := selection.NewModel(msg.Request)
		picker.SetSize(m.width, m.height)
		m.picker = &picker
		return m, picker.Init()

	case messages.SelectionMadeMsg:
		m.picker = nil
		return m.forward(msg)

	case messages.GoBackMsg:
		if m.picker != nil {
			m.picker = nil
			return m, nil
		}
		return m, tea.Quit
	}

	if m.picker != nil {
		updated, cmd := m.picker.Update(msg)
		if p, ok := updated.(selection.Model); ok {
			m.picker = &p
		}
		return m, cmd
	}
	return m.forward(msg)
}

func (m demoModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.screen.Update(msg)
	if s, ok := updated.(discussionsettings.Model); ok {
		m.screen = s
	}
	return m, cmd
}

func (m demoModel) View() string {
	if m.picker != nil {
		return m.picker.View()
	}
	return m.screen.View() + fmt.Sprintf("\n simulated saves: %d (last revision %d)", m.saves, m.lastRev)
}

func main() {
	blog := &models.Blog{
		ID:       "demo",
		Name:     "Field Notes",
		URL:      "https://fieldnotes.example.com",
		Settings: models.DefaultDiscussionSettings("demo"),
	}

	screen := discussionsettings.NewModel(blog)
	screen.SetSize(80, 24)

	model := demoModel{
		screen: screen,
		width:  80,
		height: 24,
	}

	fmt.Println("Discussion Settings Demo")
	fmt.Println("Commands:")
	fmt.Println("  Up/Down - Move between rows")
	fmt.Println("  Space/Enter - Toggle a switch or open a picker")
	fmt.Println("  Ctrl+S - Simulate the save that runs when leaving")
	fmt.Println("  Esc - Close the picker, or quit")
	fmt.Println("  Ctrl+C - Quit")
	fmt.Println("")
	time.Sleep(2 * time.Second)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
