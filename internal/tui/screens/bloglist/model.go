// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package bloglist

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
	"github.com/blogdeck/blogdeck/internal/tui/layout"
)

const loadTimeout = 10 * time.Second

// BlogSource loads the blogs shown in the list.
type BlogSource interface {
	LoadBlogs(ctx context.Context) ([]*models.Blog, error)
}

// BlogItem represents a blog in the list
type BlogItem struct {
	Blog *models.Blog
}

// FilterValue returns the value to filter against
func (b BlogItem) FilterValue() string {
	return b.Blog.DisplayName()
}

// Title returns the blog name
func (b BlogItem) Title() string {
	return b.Blog.DisplayName()
}

// Description returns the blog address, followed by its tagline when set
func (b BlogItem) Description() string {
	if b.Blog.Tagline == "" {
		return b.Blog.URL
	}
	return fmt.Sprintf("%s · %s", b.Blog.URL, b.Blog.Tagline)
}

// String returns a string representation of the blog item
func (b BlogItem) String() string {
	return fmt.Sprintf("%s: %s", b.Title(), b.Blog.URL)
}

// Model is the model for the blog list screen.
type Model struct {
	list          list.Model
	source        BlogSource
	blogs         []*models.Blog
	statusMessage string
	width         int
	height        int
}

// NewModel creates a new blog list model
func NewModel(source BlogSource) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 50, 10)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Title = ""

	return Model{
		list:   l,
		source: source,
		width:  50,
		height: 10,
	}
}

// Init loads the blogs.
func (m Model) Init() tea.Cmd {
	return loadBlogs(m.source)
}

func loadBlogs(source BlogSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		blogs, err := source.LoadBlogs(ctx)
		if err != nil {
			return protocol.ErrorEvent{
				Metadata: protocol.NewMetadata(""),
				Message:  "Failed to load blogs",
				Context:  err.Error(),
			}
		}
		return protocol.BlogsLoadedEvent{Metadata: protocol.NewMetadata(""), Blogs: blogs}
	}
}

// Blogs returns the blogs currently listed.
func (m Model) Blogs() []*models.Blog {
	return m.blogs
}

// GetLayoutInfo returns layout information for the blog list screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	status := fmt.Sprintf("Total: %d blogs", len(m.blogs))
	if m.statusMessage != "" {
		status = m.statusMessage
	}

	helpItems := []layout.HelpItem{
		{Key: "enter", Description: "discussion"},
		{Key: "t", Description: "themes"},
		{Key: "n", Description: "new site"},
		{Key: "r", Description: "reload"},
		{Key: "q", Description: "quit"},
	}

	return layout.LayoutInfo{
		Title:       "Blogs",
		Breadcrumbs: []string{"Blogs"},
		Status:      status,
		HelpItems:   helpItems,
	}
}

// SetSize updates the model's dimensions and list size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	layoutInfo := m.GetLayoutInfo()
	dims := layout.GetContentArea(layoutInfo, width, height)
	m.list.SetWidth(dims.Width)
	m.list.SetHeight(dims.Height)
}
