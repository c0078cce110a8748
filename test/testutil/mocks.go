// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/blogdeck/blogdeck/internal/models"
)

// MockScreen is a tea.Model that records what it was sent
type MockScreen struct {
	InitCalled   bool
	UpdateCalled bool
	ViewCalled   bool
	LastMessage  tea.Msg
	LastCommand  tea.Cmd
	ViewOutput   string
}

// NewMockScreen creates a new mock screen with default view output
func NewMockScreen() *MockScreen {
	return &MockScreen{
		ViewOutput: "Mock Screen View",
	}
}

func (m *MockScreen) Init() tea.Cmd {
	m.InitCalled = true
	return nil
}

func (m *MockScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.UpdateCalled = true
	m.LastMessage = msg
	return m, m.LastCommand
}

func (m *MockScreen) View() string {
	m.ViewCalled = true
	return m.ViewOutput
}

// SetNextCommand sets the command that will be returned on the next Update call
func (m *MockScreen) SetNextCommand(cmd tea.Cmd) {
	m.LastCommand = cmd
}

// ErrMockStore is returned by MockBlogStore when Fail is set
var ErrMockStore = errors.New("mock store failure")

// MockBlogStore is an in-memory blog store for screen tests
type MockBlogStore struct {
	mu          sync.Mutex
	Blogs       []*models.Blog
	Themes      map[string][]models.Theme
	ActiveTheme map[string]string
	Created     []*models.Blog
	Fail        bool
}

// NewMockBlogStore creates a store holding the sample blogs and their themes
func NewMockBlogStore() *MockBlogStore {
	blogs := SampleBlogs()
	themes := make(map[string][]models.Theme, len(blogs))
	for _, b := range blogs {
		themes[b.ID] = SampleThemes(b.ID)
	}
	return &MockBlogStore{
		Blogs:       blogs,
		Themes:      themes,
		ActiveTheme: make(map[string]string),
	}
}

func (s *MockBlogStore) LoadBlogs(ctx context.Context) ([]*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrMockStore
	}
	return append([]*models.Blog(nil), s.Blogs...), nil
}

func (s *MockBlogStore) CreateBlog(ctx context.Context, name, address, tagline string) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrMockStore
	}
	blog := SampleBlog("created-"+name, name, address)
	blog.Tagline = tagline
	s.Blogs = append(s.Blogs, blog)
	s.Created = append(s.Created, blog)
	return blog, nil
}

func (s *MockBlogStore) ListThemes(ctx context.Context, blogID string) ([]models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, ErrMockStore
	}
	return s.Themes[blogID], nil
}

func (s *MockBlogStore) SetActiveTheme(ctx context.Context, blogID, themeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrMockStore
	}
	if !lo.ContainsBy(s.Themes[blogID], func(t models.Theme) bool { return t.ID == themeID }) {
		return ErrMockStore
	}
	s.ActiveTheme[blogID] = themeID
	return nil
}

// RecordingSaver stands in for the settings persister and records every
// settings value handed to its exit hook
type RecordingSaver struct {
	mu    sync.Mutex
	Calls []*models.DiscussionSettings
}

func (r *RecordingSaver) SaveIfNeeded(s *models.DiscussionSettings) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, s)
	return s.HasChanges()
}

// CallCount returns how many times the exit hook ran
func (r *RecordingSaver) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}
