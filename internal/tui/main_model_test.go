// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/discussion"
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
	"github.com/blogdeck/blogdeck/test/testutil"
)

type hostFixture struct {
	model MainModel
	store *testutil.MockBlogStore
	saver *testutil.RecordingSaver
}

func newHost(t *testing.T) *hostFixture {
	t.Helper()
	store := testutil.NewMockBlogStore()
	saver := &testutil.RecordingSaver{}
	deps, err := NewDeps(store, saver)
	require.NoError(t, err)

	h := &hostFixture{model: NewMainModel(deps), store: store, saver: saver}
	h.send(t, testutil.WindowSizeMsg(100, 40))
	h.send(t, testutil.ExecuteCommand(h.model.Init()))
	return h
}

// send delivers msg and returns the message produced by the resulting command.
func (h *hostFixture) send(t *testing.T, msg tea.Msg) tea.Msg {
	t.Helper()
	next, cmd := h.model.Update(msg)
	h.model = next.(MainModel)
	return testutil.ExecuteCommand(cmd)
}

// openDiscussion navigates to the discussion screen of the first blog.
func (h *hostFixture) openDiscussion(t *testing.T) *models.Blog {
	t.Helper()
	msg := h.send(t, testutil.SpecialKey(tea.KeyEnter))
	require.IsType(t, messages.GoToDiscussionSettingsMsg{}, msg)
	h.send(t, msg)
	require.Equal(t, DiscussionScreen, h.model.CurrentScreen())
	return msg.(messages.GoToDiscussionSettingsMsg).Blog
}

func TestNewMainModel(t *testing.T) {
	h := newHost(t)

	assert.Equal(t, BlogListScreen, h.model.CurrentScreen())
	assert.Len(t, h.model.blogList.Blogs(), 3)
	assert.Contains(t, h.model.View(), "Field Notes")
}

func TestDiscussionExitHook(t *testing.T) {
	t.Run("leaving runs the exit hook once", func(t *testing.T) {
		h := newHost(t)
		blog := h.openDiscussion(t)

		h.send(t, testutil.KeyPress(" "))
		assert.True(t, blog.Settings.HasChanges())

		back := h.send(t, testutil.SpecialKey(tea.KeyEsc))
		h.send(t, back)

		assert.Equal(t, BlogListScreen, h.model.CurrentScreen())
		require.Equal(t, 1, h.saver.CallCount())
		assert.Same(t, blog.Settings, h.saver.Calls[0])
		assert.False(t, blog.Settings.CommentsAllowed)
	})

	t.Run("leaving without edits still consults the hook", func(t *testing.T) {
		h := newHost(t)
		h.openDiscussion(t)

		h.send(t, messages.GoBackMsg{})

		require.Equal(t, 1, h.saver.CallCount())
		assert.False(t, h.saver.Calls[0].HasChanges())
	})

	t.Run("saved message clears the dirty flag", func(t *testing.T) {
		h := newHost(t)
		blog := h.openDiscussion(t)
		h.send(t, testutil.KeyPress(" "))
		rev := blog.Settings.Revision()
		h.send(t, messages.GoBackMsg{})

		h.send(t, messages.SettingsSavedMsg{BlogID: blog.ID, Revision: rev})
		assert.False(t, blog.Settings.HasChanges())
	})

	t.Run("stale saved message keeps newer edits dirty", func(t *testing.T) {
		h := newHost(t)
		blog := h.openDiscussion(t)
		h.send(t, testutil.KeyPress(" "))
		rev := blog.Settings.Revision()
		h.send(t, testutil.KeyPress(" "))

		h.send(t, messages.SettingsSavedMsg{BlogID: blog.ID, Revision: rev})
		assert.True(t, blog.Settings.HasChanges())
	})

	t.Run("save of replaced settings keeps the reloaded edit dirty", func(t *testing.T) {
		h := newHost(t)
		first := h.openDiscussion(t)
		h.send(t, testutil.KeyPress(" "))
		inFlight := first.Settings.Revision()
		h.send(t, messages.GoBackMsg{})

		h.send(t, testutil.BlogsLoadedEvent())
		reloaded := h.openDiscussion(t)
		require.NotSame(t, first.Settings, reloaded.Settings)
		h.send(t, testutil.KeyPress(" "))
		require.True(t, reloaded.Settings.HasChanges())

		h.send(t, messages.SettingsSavedMsg{BlogID: first.ID, Revision: inFlight})
		assert.True(t, reloaded.Settings.HasChanges(), "the reloaded edit was never saved")

		h.send(t, messages.GoBackMsg{})
		assert.Equal(t, 2, h.saver.CallCount())
	})

	t.Run("flush saves the screen still open at exit", func(t *testing.T) {
		h := newHost(t)
		h.openDiscussion(t)
		h.send(t, testutil.KeyPress(" "))

		h.model.Flush()
		assert.Equal(t, 1, h.saver.CallCount())
	})
}

func TestSelectionRouting(t *testing.T) {
	h := newHost(t)
	blog := h.openDiscussion(t)

	// Move to Sort By and open the picker.
	for h.model.discussion.SelectedRow().Action != discussion.ActionSelectSortBy {
		h.send(t, testutil.KeyPress("j"))
	}
	push := h.send(t, testutil.SpecialKey(tea.KeyEnter))
	require.IsType(t, messages.PushSelectionMsg{}, push)
	h.send(t, push)
	require.Equal(t, SelectionScreen, h.model.CurrentScreen())
	assert.Contains(t, h.model.View(), "Newest First")

	h.send(t, testutil.SpecialKey(tea.KeyDown))
	made := h.send(t, testutil.SpecialKey(tea.KeyEnter))
	require.IsType(t, messages.SelectionMadeMsg{}, made)
	h.send(t, made)

	assert.Equal(t, DiscussionScreen, h.model.CurrentScreen(), "the host pops the picker")
	assert.Equal(t, models.SortOrderDescending, blog.Settings.CommentsSortOrder)
	assert.True(t, blog.Settings.HasChanges())
	assert.Zero(t, h.saver.CallCount(), "the picker is not an exit of the discussion screen")
}

func TestSelectionCancel(t *testing.T) {
	h := newHost(t)
	blog := h.openDiscussion(t)
	h.send(t, messages.PushSelectionMsg{Request: discussion.NewSelectionRequest(blog.Settings, discussion.ActionSelectPaging)})

	h.send(t, messages.GoBackMsg{})

	assert.Equal(t, DiscussionScreen, h.model.CurrentScreen())
	assert.False(t, blog.Settings.HasChanges())
	assert.Zero(t, h.saver.CallCount())
}

func TestThemeBrowserNavigation(t *testing.T) {
	h := newHost(t)

	msg := h.send(t, testutil.KeyPress("t"))
	require.IsType(t, messages.GoToThemeBrowserMsg{}, msg)
	loaded := h.send(t, msg)

	assert.Equal(t, ThemeBrowserScreen, h.model.CurrentScreen())
	h.send(t, loaded)
	assert.Contains(t, h.model.View(), "Twenty Twenty")

	h.send(t, messages.GoBackMsg{})
	assert.Equal(t, BlogListScreen, h.model.CurrentScreen())
}

func TestSiteCreationNavigation(t *testing.T) {
	t.Run("subscriptions live while the screen is shown", func(t *testing.T) {
		h := newHost(t)
		keyboard := h.model.deps.Keyboard

		msg := h.send(t, testutil.KeyPress("n"))
		require.IsType(t, messages.GoToSiteCreationMsg{}, msg)
		h.send(t, msg)

		assert.Equal(t, SiteCreationScreen, h.model.CurrentScreen())
		assert.Equal(t, 1, keyboard.Observers())
		assert.True(t, keyboard.Visible())

		h.send(t, messages.GoBackMsg{})
		assert.Equal(t, BlogListScreen, h.model.CurrentScreen())
		assert.Zero(t, keyboard.Observers())
		assert.False(t, keyboard.Visible())
	})

	t.Run("created blog returns to a reloaded list", func(t *testing.T) {
		h := newHost(t)
		h.send(t, messages.GoToSiteCreationMsg{})
		_, err := h.store.CreateBlog(testContext(t), "Travel", "https://travel.example", "")
		require.NoError(t, err)

		reload := h.send(t, messages.BlogCreatedMsg{Blog: h.store.Created[0]})
		h.send(t, reload)

		assert.Equal(t, BlogListScreen, h.model.CurrentScreen())
		assert.Empty(t, h.model.screenHistory)
		assert.Zero(t, h.model.deps.Keyboard.Observers())
		assert.Len(t, h.model.blogList.Blogs(), 4)
	})
}

func TestScreenTypeString(t *testing.T) {
	assert.Equal(t, "Discussion", DiscussionScreen.String())
	assert.Equal(t, "Unknown", ScreenType(42).String())
}

// testContext mirrors testing.T.Context (Go 1.24+): a context canceled
// when the test's cleanup runs.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
