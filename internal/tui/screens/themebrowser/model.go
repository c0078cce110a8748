// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package themebrowser

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
	"github.com/blogdeck/blogdeck/internal/tui/layout"
	"github.com/blogdeck/blogdeck/internal/tui/templates"
)

const requestTimeout = 10 * time.Second

// ThemeSource lists a blog's themes and switches the active one.
type ThemeSource interface {
	ListThemes(ctx context.Context, blogID string) ([]models.Theme, error)
	SetActiveTheme(ctx context.Context, blogID, themeID string) error
}

// ThemeItem represents a theme in the list
type ThemeItem struct {
	Theme  models.Theme
	Active bool
}

// FilterValue matches on name and author
func (i ThemeItem) FilterValue() string {
	return i.Theme.Name + " " + i.Theme.Author
}

// Title returns the theme name, marked when active
func (i ThemeItem) Title() string {
	if i.Active {
		return "● " + i.Theme.Name
	}
	return i.Theme.Name
}

// Description returns the author and whether the theme is premium
func (i ThemeItem) Description() string {
	desc := "by " + i.Theme.Author
	if i.Theme.Premium {
		desc += " · premium"
	}
	return desc
}

// themeActivatedMsg reports a successful SetActiveTheme.
type themeActivatedMsg struct {
	blogID  string
	themeID string
}

// Model is the theme browser screen. It is built by a Factory and does
// nothing useful until Configure gives it a blog.
type Model struct {
	template      templates.Template
	source        ThemeSource
	blog          *models.Blog
	list          list.Model
	themes        []models.Theme
	statusMessage string
	width         int
	height        int
}

// NewModel creates an unconfigured theme browser from its template.
func NewModel(t templates.Template, source ThemeSource) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 50, 10)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(true)

	return Model{
		template: t,
		source:   source,
		list:     l,
		width:    50,
		height:   10,
	}
}

// Configure points the browser at blog.
func (m *Model) Configure(blog *models.Blog) {
	m.blog = blog
	m.themes = nil
	m.statusMessage = ""
	m.list.ResetFilter()
	m.list.SetItems(nil)
}

// Blog returns the configured blog, or nil.
func (m Model) Blog() *models.Blog {
	return m.blog
}

// Init loads the themes of the configured blog.
func (m Model) Init() tea.Cmd {
	if m.blog == nil {
		return nil
	}
	return loadThemes(m.source, m.blog)
}

func loadThemes(source ThemeSource, blog *models.Blog) tea.Cmd {
	blogID, activeID := blog.ID, blog.ActiveThemeID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		themes, err := source.ListThemes(ctx, blogID)
		if err != nil {
			return protocol.ErrorEvent{
				Metadata: protocol.NewMetadata(""),
				Message:  "Failed to load themes",
				Context:  err.Error(),
			}
		}
		return protocol.ThemesLoadedEvent{
			Metadata:      protocol.NewMetadata(""),
			BlogID:        blogID,
			ActiveThemeID: activeID,
			Themes:        themes,
		}
	}
}

func activateTheme(source ThemeSource, blogID, themeID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := source.SetActiveTheme(ctx, blogID, themeID); err != nil {
			return protocol.ErrorEvent{
				Metadata: protocol.NewMetadata(""),
				Message:  "Failed to activate theme",
				Context:  err.Error(),
			}
		}
		return themeActivatedMsg{blogID: blogID, themeID: themeID}
	}
}

// GetLayoutInfo returns layout information for the theme browser
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	breadcrumbs := []string{"Blogs"}
	if m.blog != nil {
		breadcrumbs = append(breadcrumbs, m.blog.DisplayName())
	}
	breadcrumbs = append(breadcrumbs, m.template.Breadcrumb)

	status := fmt.Sprintf("%d themes", len(m.themes))
	if m.statusMessage != "" {
		status = m.statusMessage
	}

	return layout.LayoutInfo{
		Title:       m.template.Title,
		Breadcrumbs: breadcrumbs,
		Status:      status,
		HelpItems:   m.template.HelpItems(),
	}
}

// SetSize updates the model's dimensions and list size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	m.list.SetWidth(dims.Width)
	m.list.SetHeight(dims.Height)
}
