// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/tui/chrome"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
	"github.com/blogdeck/blogdeck/internal/tui/screens/bloglist"
	"github.com/blogdeck/blogdeck/internal/tui/screens/discussionsettings"
	"github.com/blogdeck/blogdeck/internal/tui/screens/selection"
	"github.com/blogdeck/blogdeck/internal/tui/screens/sitecreation"
	"github.com/blogdeck/blogdeck/internal/tui/screens/themebrowser"
	"github.com/blogdeck/blogdeck/internal/tui/templates"
)

// ScreenType represents the current active screen
type ScreenType int

const (
	BlogListScreen ScreenType = iota
	DiscussionScreen
	SelectionScreen
	ThemeBrowserScreen
	SiteCreationScreen
)

// BlogStore is everything the screens read from and write to.
type BlogStore interface {
	bloglist.BlogSource
	themebrowser.ThemeSource
	sitecreation.BlogCreator
}

// SettingsSaver is the discussion screen's exit hook.
type SettingsSaver interface {
	SaveIfNeeded(s *models.DiscussionSettings) bool
}

// Deps are the collaborators of the main model.
type Deps struct {
	Blogs     BlogStore
	Saver     SettingsSaver
	Templates *templates.Loader
	Themes    *themebrowser.Factory
	Keyboard  *chrome.KeyboardCenter
}

type MainModel struct {
	// Current screen state
	currentScreen ScreenType
	// Screen history for back navigation
	screenHistory []ScreenType

	// Individual screen models
	blogList     bloglist.Model
	discussion   discussionsettings.Model
	selection    selection.Model
	themeBrowser themebrowser.Model
	siteCreation sitecreation.Model

	// Settings edited in this session by blog ID, so a save reported after
	// the screen was left still clears the right dirty flag.
	edited map[string]*models.DiscussionSettings

	width, height int
	deps          Deps
}

// NewMainModel creates a new MainModel with the blog list as the initial screen
func NewMainModel(deps Deps) MainModel {
	return MainModel{
		currentScreen: BlogListScreen,
		screenHistory: []ScreenType{},
		blogList:      bloglist.NewModel(deps.Blogs),
		edited:        make(map[string]*models.DiscussionSettings),
		deps:          deps,
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.blogList.Init()
}

// CurrentScreen returns the screen on top of the stack.
func (m MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// setSize updates the size for the current screen
func (m *MainModel) setSize(width, height int) {
	m.width = width
	m.height = height
	switch m.currentScreen {
	case BlogListScreen:
		m.blogList.SetSize(width, height)
	case DiscussionScreen:
		m.discussion.SetSize(width, height)
	case SelectionScreen:
		m.selection.SetSize(width, height)
	case ThemeBrowserScreen:
		m.themeBrowser.SetSize(width, height)
	case SiteCreationScreen:
		m.siteCreation.SetSize(width, height)
	}
}

func (m *MainModel) push(screen ScreenType) {
	m.screenHistory = append(m.screenHistory, m.currentScreen)
	m.currentScreen = screen
	m.setSize(m.width, m.height)
}

// pop runs the leaving screen's exit hook and returns to the previous screen.
func (m *MainModel) pop() {
	m.leave(m.currentScreen)
	if len(m.screenHistory) > 0 {
		m.currentScreen = m.screenHistory[len(m.screenHistory)-1]
		m.screenHistory = m.screenHistory[:len(m.screenHistory)-1]
		m.setSize(m.width, m.height)
	}
}

// leave is the exit hook of a screen that is being dismissed.
func (m *MainModel) leave(screen ScreenType) {
	switch screen {
	case DiscussionScreen:
		settings := m.discussion.Settings()
		if m.deps.Saver.SaveIfNeeded(settings) {
			log := logger.GetTUILogger().With().Str("component", "main_model").Logger()
			log.Debug().Str("blog_id", settings.BlogID).Uint64("revision", settings.Revision()).Msg("Discussion settings save issued")
		}
	case SiteCreationScreen:
		m.siteCreation.Teardown()
	}
}

// Flush runs the exit hook of every screen still on the stack. It is called
// once the program has stopped.
func (m *MainModel) Flush() {
	m.leave(m.currentScreen)
	for i := len(m.screenHistory) - 1; i >= 0; i-- {
		m.leave(m.screenHistory[i])
	}
	m.screenHistory = nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if windowSize, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(windowSize.Width, windowSize.Height)
	}

	// Navigation messages are handled here and never reach the screens.
	switch msg := msg.(type) {
	case messages.GoToDiscussionSettingsMsg:
		m.discussion = discussionsettings.NewModel(msg.Blog)
		m.edited[msg.Blog.ID] = m.discussion.Settings()
		m.push(DiscussionScreen)
		return m, m.discussion.Init()

	case messages.PushSelectionMsg:
		m.selection = selection.NewModel(msg.Request)
		m.push(SelectionScreen)
		return m, m.selection.Init()

	case messages.SelectionMadeMsg:
		if m.currentScreen == SelectionScreen {
			m.pop()
		}
		if m.currentScreen == DiscussionScreen {
			model, cmd := m.discussion.Update(msg)
			m.discussion = model.(discussionsettings.Model)
			return m, cmd
		}
		return m, nil

	case messages.SettingsSavedMsg:
		if settings, ok := m.edited[msg.BlogID]; ok {
			settings.MarkSaved(msg.Revision)
		}
		return m, nil

	case messages.GoToThemeBrowserMsg:
		m.themeBrowser = m.deps.Themes.Create(msg.Blog)
		m.push(ThemeBrowserScreen)
		return m, m.themeBrowser.Init()

	case messages.GoToSiteCreationMsg:
		m.siteCreation = templates.MustInstantiate[sitecreation.Model](m.deps.Templates, sitecreation.TemplateName)
		m.push(SiteCreationScreen)
		return m, m.siteCreation.Appear()

	case messages.BlogCreatedMsg:
		return m.Update(messages.GoToBlogListMsg{})

	case messages.GoBackMsg:
		m.pop()
		return m, nil

	case messages.GoToBlogListMsg:
		// Clear history and go back to the blog list
		m.Flush()
		m.currentScreen = BlogListScreen
		m.blogList.SetSize(m.width, m.height)
		return m, m.blogList.Init()
	}

	var screenCmd tea.Cmd
	switch m.currentScreen {
	case BlogListScreen:
		var model tea.Model
		model, screenCmd = m.blogList.Update(msg)
		m.blogList = model.(bloglist.Model)
	case DiscussionScreen:
		var model tea.Model
		model, screenCmd = m.discussion.Update(msg)
		m.discussion = model.(discussionsettings.Model)
	case SelectionScreen:
		var model tea.Model
		model, screenCmd = m.selection.Update(msg)
		m.selection = model.(selection.Model)
	case ThemeBrowserScreen:
		var model tea.Model
		model, screenCmd = m.themeBrowser.Update(msg)
		m.themeBrowser = model.(themebrowser.Model)
	case SiteCreationScreen:
		var model tea.Model
		model, screenCmd = m.siteCreation.Update(msg)
		m.siteCreation = model.(sitecreation.Model)
	}

	return m, screenCmd
}

func (m MainModel) View() string {
	switch m.currentScreen {
	case BlogListScreen:
		return m.blogList.View()
	case DiscussionScreen:
		return m.discussion.View()
	case SelectionScreen:
		return m.selection.View()
	case ThemeBrowserScreen:
		return m.themeBrowser.View()
	case SiteCreationScreen:
		return m.siteCreation.View()
	default:
		return "Unknown screen"
	}
}

// screenName returns a string representation of the screen type for logging
func screenName(s ScreenType) string {
	switch s {
	case BlogListScreen:
		return "BlogList"
	case DiscussionScreen:
		return "Discussion"
	case SelectionScreen:
		return "Selection"
	case ThemeBrowserScreen:
		return "ThemeBrowser"
	case SiteCreationScreen:
		return "SiteCreation"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer
func (s ScreenType) String() string {
	return screenName(s)
}
