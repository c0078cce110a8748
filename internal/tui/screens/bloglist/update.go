// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package bloglist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if blog := m.selectedBlog(); blog != nil {
				return m, func() tea.Msg {
					return messages.GoToDiscussionSettingsMsg{Blog: blog}
				}
			}
			return m, nil

		case "t":
			if blog := m.selectedBlog(); blog != nil {
				return m, func() tea.Msg {
					return messages.GoToThemeBrowserMsg{Blog: blog}
				}
			}
			return m, nil

		case "n":
			return m, func() tea.Msg {
				return messages.GoToSiteCreationMsg{}
			}

		case "r":
			m.statusMessage = "Reloading..."
			return m, loadBlogs(m.source)

		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case protocol.BlogsLoadedEvent:
		m.blogs = msg.Blogs
		m.statusMessage = ""
		items := make([]list.Item, 0, len(msg.Blogs))
		for _, blog := range msg.Blogs {
			items = append(items, BlogItem{Blog: blog})
		}
		m.list.SetItems(items)

	case protocol.ErrorEvent:
		if msg.Context != "" {
			m.statusMessage = fmt.Sprintf("Error: %s - %s", msg.Message, msg.Context)
		} else {
			m.statusMessage = fmt.Sprintf("Error: %s", msg.Message)
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) selectedBlog() *models.Blog {
	item, ok := m.list.SelectedItem().(BlogItem)
	if !ok {
		return nil
	}
	return item.Blog
}
