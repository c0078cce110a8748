// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package discussionsettings is the screen that edits a blog's discussion settings.
package discussionsettings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/discussion"
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/tui/layout"
)

// Title is the screen title.
const Title = "Discussion"

// Model is the model for the discussion settings screen.
// Rows are projected from the settings on every render and key press.
type Model struct {
	blog          *models.Blog
	settings      *models.DiscussionSettings
	selectedIndex int
	width         int
	height        int
}

// NewModel creates the screen for blog. The screen edits blog.Settings in place.
func NewModel(blog *models.Blog) Model {
	if blog.Settings == nil {
		blog.Settings = models.DefaultDiscussionSettings(blog.ID)
	}
	return Model{
		blog:     blog,
		settings: blog.Settings,
		width:    50,
		height:   10,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Settings returns the settings being edited.
func (m Model) Settings() *models.DiscussionSettings {
	return m.settings
}

// BlogID returns the ID of the blog being edited.
func (m Model) BlogID() string {
	return m.blog.ID
}

// rows flattens the projection in display order.
func (m Model) rows() []discussion.Row {
	var rows []discussion.Row
	for _, section := range discussion.Project(m.settings) {
		rows = append(rows, section.Rows...)
	}
	return rows
}

// SelectedRow returns the row under the cursor.
func (m Model) SelectedRow() discussion.Row {
	return m.rows()[m.selectedIndex]
}

// GetLayoutInfo returns layout information for the discussion settings screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	status := ""
	if m.settings.HasChanges() {
		status = "Unsaved changes · saved when you leave"
	}

	helpItems := []layout.HelpItem{
		{Key: "↑/k", Description: "up"},
		{Key: "↓/j", Description: "down"},
		{Key: "space", Description: "toggle"},
		{Key: "enter", Description: "open"},
		{Key: "esc", Description: "back"},
	}

	return layout.LayoutInfo{
		Title:       Title,
		Breadcrumbs: []string{"Blogs", m.blog.DisplayName(), Title},
		Status:      status,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
