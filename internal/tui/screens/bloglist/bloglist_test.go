// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package bloglist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/protocol"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
	"github.com/blogdeck/blogdeck/test/testutil"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	model := NewModel(testutil.NewMockBlogStore())
	newModel, _ := testutil.SendMessage(model, testutil.BlogsLoadedEvent())
	return newModel.(Model)
}

func TestBlogItem(t *testing.T) {
	t.Run("implements list.Item interface correctly", func(t *testing.T) {
		blog := testutil.SampleBlog("b1", "Field Notes", "https://fieldnotes.example")
		item := BlogItem{Blog: blog}

		assert.Equal(t, "Field Notes", item.FilterValue())
		assert.Equal(t, "Field Notes", item.Title())
		assert.Equal(t, "https://fieldnotes.example", item.Description())
		assert.Equal(t, "Field Notes: https://fieldnotes.example", item.String())

		blog.Tagline = "Notes from the field"
		assert.Equal(t, "https://fieldnotes.example · Notes from the field", item.Description())
	})

	t.Run("untitled blog falls back to its address", func(t *testing.T) {
		item := BlogItem{Blog: testutil.SampleBlog("b3", "", "https://untitled.example")}
		assert.Equal(t, "https://untitled.example", item.Title())
	})
}

func TestModelInit(t *testing.T) {
	t.Run("loads blogs from the source", func(t *testing.T) {
		store := testutil.NewMockBlogStore()
		model := NewModel(store)

		msg := testutil.ExecuteCommand(model.Init())

		event, ok := msg.(protocol.BlogsLoadedEvent)
		require.True(t, ok, "expected BlogsLoadedEvent, got %T", msg)
		assert.Len(t, event.Blogs, 3)
		assert.Equal(t, protocol.CurrentProtocolVersion, event.Version)
	})

	t.Run("load failure becomes an error event", func(t *testing.T) {
		store := testutil.NewMockBlogStore()
		store.Fail = true
		model := NewModel(store)

		msg := testutil.ExecuteCommand(model.Init())

		event, ok := msg.(protocol.ErrorEvent)
		require.True(t, ok, "expected ErrorEvent, got %T", msg)
		assert.Equal(t, "Failed to load blogs", event.Message)
		assert.Contains(t, event.Context, testutil.ErrMockStore.Error())
	})
}

func TestModelUpdate_KeyHandling(t *testing.T) {
	empty := NewModel(testutil.NewMockBlogStore())

	t.Run("enter key with no blogs does nothing", func(t *testing.T) {
		newModel, cmd := testutil.SendMessage(empty, testutil.SpecialKey(tea.KeyEnter))

		assert.IsType(t, Model{}, newModel)
		testutil.AssertNoCommand(t, cmd)
	})

	t.Run("n key opens site creation", func(t *testing.T) {
		_, cmd := testutil.SendMessage(empty, testutil.KeyPress("n"))
		testutil.AssertNavigationMessage(t, cmd, messages.GoToSiteCreationMsg{})
	})

	t.Run("r key reloads", func(t *testing.T) {
		newModel, cmd := testutil.SendMessage(empty, testutil.KeyPress("r"))

		assert.Equal(t, "Reloading...", newModel.(Model).GetLayoutInfo().Status)
		assert.IsType(t, protocol.BlogsLoadedEvent{}, testutil.ExecuteCommand(cmd))
	})

	t.Run("q key generates quit message", func(t *testing.T) {
		_, cmd := testutil.SendMessage(empty, testutil.KeyPress("q"))
		testutil.AssertQuitMessage(t, cmd)
	})

	t.Run("ctrl+c generates quit message", func(t *testing.T) {
		_, cmd := testutil.SendMessage(empty, tea.KeyMsg{Type: tea.KeyCtrlC})
		testutil.AssertQuitMessage(t, cmd)
	})
}

func TestModelUpdate_NavigationWithSelection(t *testing.T) {
	model := loadedModel(t)

	t.Run("enter opens discussion settings of the selected blog", func(t *testing.T) {
		_, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEnter))

		msg := testutil.AssertNavigationMessage(t, cmd, messages.GoToDiscussionSettingsMsg{})
		assert.Equal(t, "blog1", msg.(messages.GoToDiscussionSettingsMsg).Blog.ID)
	})

	t.Run("t opens the theme browser of the selected blog", func(t *testing.T) {
		moved, _ := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyDown))
		_, cmd := testutil.SendMessage(moved, testutil.KeyPress("t"))

		msg := testutil.AssertNavigationMessage(t, cmd, messages.GoToThemeBrowserMsg{})
		assert.Equal(t, "blog2", msg.(messages.GoToThemeBrowserMsg).Blog.ID)
	})
}

func TestModelUpdate_EventHandling(t *testing.T) {
	t.Run("BlogsLoadedEvent updates blogs and list", func(t *testing.T) {
		model := loadedModel(t)

		assert.Len(t, model.Blogs(), 3)
		assert.Len(t, model.list.Items(), 3)
		assert.Equal(t, "Total: 3 blogs", model.GetLayoutInfo().Status)
	})

	t.Run("ErrorEvent shows in the status line", func(t *testing.T) {
		model := NewModel(testutil.NewMockBlogStore())
		newModel, _ := testutil.SendMessage(model, protocol.ErrorEvent{Message: "Failed to load blogs", Context: "disk full"})

		assert.Equal(t, "Error: Failed to load blogs - disk full", newModel.(Model).GetLayoutInfo().Status)
	})
}

func TestModelView(t *testing.T) {
	t.Run("contains help and blogs", func(t *testing.T) {
		model := loadedModel(t)
		newModel, _ := testutil.SendMessage(model, testutil.WindowSizeMsg(100, 30))

		view := newModel.View()
		assert.Contains(t, view, "Blogs")
		assert.Contains(t, view, "Field Notes")
		assert.Contains(t, view, "new site")
		assert.Contains(t, view, "quit")
	})
}
