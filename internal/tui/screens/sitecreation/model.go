// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package sitecreation

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/services"
	"github.com/blogdeck/blogdeck/internal/tui/chrome"
	"github.com/blogdeck/blogdeck/internal/tui/templates"
)

const (
	// TemplateName is the UI template the screen is built from.
	TemplateName = "SiteCreation"
	// Kind is the screen kind the template's initial screen must name.
	Kind = "sitecreation"

	createTimeout = 15 * time.Second
)

// BlogCreator stores a new blog.
type BlogCreator interface {
	CreateBlog(ctx context.Context, name, address, tagline string) (*models.Blog, error)
}

// draft is shared by copies of the model so huh's value pointers stay valid.
type draft struct {
	title   string
	address string
	tagline string
}

// Model is the model for the site creation screen
type Model struct {
	chrome   *chrome.Chrome
	creator  BlogCreator
	form     *huh.Form
	draft    *draft
	editing  bool
	creating bool
	errMsg   string
	width    int
	height   int
}

// Register makes the screen constructible by the loader. Every screen built
// shares keyboard.
func Register(loader *templates.Loader, creator BlogCreator, keyboard *chrome.KeyboardCenter) {
	loader.Register(Kind, func(t templates.Template) templates.Screen {
		return NewModel(t, creator, keyboard)
	})
}

// NewModel creates a new site creation model
func NewModel(t templates.Template, creator BlogCreator, keyboard *chrome.KeyboardCenter) Model {
	m := Model{
		chrome:  chrome.New(t.Title, t.HelpItems(), keyboard),
		creator: creator,
		draft:   &draft{},
		width:   50,
		height:  10,
	}
	m.initForm()
	return m
}

// initForm initializes the huh form for the site details
func (m *Model) initForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Site Title").
				Placeholder("My new site").
				Value(&m.draft.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errTitleRequired
					}
					return nil
				}),

			huh.NewInput().
				Key("address").
				Title("Site Address").
				Placeholder("example.com").
				Value(&m.draft.address).
				Validate(func(s string) error {
					_, err := services.NormalizeBlogURL(s)
					return err
				}),

			huh.NewInput().
				Key("tagline").
				Title("Tagline").
				Placeholder("Optional").
				Value(&m.draft.tagline),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
}

// Appear starts the screen's visible lifetime: the form takes focus and the
// chrome starts observing the keyboard.
func (m *Model) Appear() tea.Cmd {
	m.chrome.Appear()
	m.editing = true
	m.chrome.ShowKeyboard()
	return m.form.Init()
}

// Teardown ends the visible lifetime and releases the keyboard subscriptions.
func (m *Model) Teardown() {
	m.editing = false
	m.chrome.Teardown()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// create stores the blog and reports the outcome as a message.
func (m Model) create(title, address, tagline string) tea.Cmd {
	creator := m.creator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
		defer cancel()

		blog, err := creator.CreateBlog(ctx, title, address, tagline)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return createdMsg{blog: blog}
	}
}
