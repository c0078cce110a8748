// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package discussionsettings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/discussion"
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
	"github.com/blogdeck/blogdeck/test/testutil"
)

// moveTo presses down until the cursor is on the row with action.
func moveTo(t *testing.T, m Model, action discussion.Action) Model {
	t.Helper()
	for i := 0; i < 20; i++ {
		if m.SelectedRow().Action == action {
			return m
		}
		next, _ := testutil.SendMessage(m, testutil.KeyPress("j"))
		m = next.(Model)
	}
	t.Fatalf("row %s not reachable", action)
	return m
}

func TestNewModel(t *testing.T) {
	t.Run("edits the blog's settings in place", func(t *testing.T) {
		blog := testutil.SingleBlog()
		model := NewModel(blog)

		assert.Same(t, blog.Settings, model.Settings())
		assert.Equal(t, "single", model.BlogID())
		assert.Equal(t, discussion.ActionToggleCommentsAllowed, model.SelectedRow().Action)
	})

	t.Run("blog without settings gets defaults", func(t *testing.T) {
		blog := &models.Blog{ID: "bare", Name: "Bare"}
		model := NewModel(blog)

		require.NotNil(t, blog.Settings)
		assert.Same(t, blog.Settings, model.Settings())
		assert.False(t, model.Settings().HasChanges())
	})

	t.Run("init returns nil command", func(t *testing.T) {
		testutil.AssertNoCommand(t, NewModel(testutil.SingleBlog()).Init())
	})
}

func TestModelUpdate_Toggle(t *testing.T) {
	t.Run("space flips the selected switch and marks dirty", func(t *testing.T) {
		model := NewModel(testutil.SingleBlog())
		require.True(t, model.Settings().CommentsAllowed)

		newModel, cmd := testutil.SendMessage(model, testutil.KeyPress(" "))
		updated := newModel.(Model)

		testutil.AssertNoCommand(t, cmd)
		assert.False(t, updated.Settings().CommentsAllowed)
		assert.True(t, updated.Settings().HasChanges())
		assert.False(t, updated.SelectedRow().On(), "row reflects the new value on the next projection")
	})

	t.Run("enter on a switch flips it", func(t *testing.T) {
		model := moveTo(t, NewModel(testutil.SingleBlog()), discussion.ActionToggleRequireRegistration)

		newModel, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEnter))

		testutil.AssertNoCommand(t, cmd)
		assert.True(t, newModel.(Model).Settings().CommentsRequireRegistration)
	})

	t.Run("space on a value row does nothing", func(t *testing.T) {
		model := moveTo(t, NewModel(testutil.SingleBlog()), discussion.ActionHoldForModeration)

		newModel, cmd := testutil.SendMessage(model, testutil.KeyPress(" "))

		testutil.AssertNoCommand(t, cmd)
		assert.False(t, newModel.(Model).Settings().HasChanges())
	})
}

func TestModelUpdate_Selection(t *testing.T) {
	t.Run("enter on Sort By asks for a picker", func(t *testing.T) {
		model := moveTo(t, NewModel(testutil.SingleBlog()), discussion.ActionSelectSortBy)

		_, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEnter))

		msg := testutil.AssertNavigationMessage(t, cmd, messages.PushSelectionMsg{})
		req := msg.(messages.PushSelectionMsg).Request
		assert.Equal(t, discussion.ActionSelectSortBy, req.Field)
		assert.Equal(t, models.SortTitles, req.Titles)
		assert.False(t, model.Settings().HasChanges(), "opening a picker does not mutate")
	})

	t.Run("enter on a stub row does nothing", func(t *testing.T) {
		model := moveTo(t, NewModel(testutil.SingleBlog()), discussion.ActionBlacklist)

		_, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEnter))
		testutil.AssertNoCommand(t, cmd)
	})

	t.Run("threading response is applied", func(t *testing.T) {
		model := NewModel(testutil.SingleBlog())
		msg := messages.SelectionMadeMsg{Response: discussion.SelectionResponse{
			Field: discussion.ActionSelectThreading,
			Value: models.ThreadingDepthDisabled,
		}}

		newModel, _ := testutil.SendMessage(model, msg)
		settings := newModel.(Model).Settings()

		assert.False(t, settings.CommentsThreadingEnabled)
		assert.True(t, settings.HasChanges())
	})

	t.Run("malformed response is ignored", func(t *testing.T) {
		model := NewModel(testutil.SingleBlog())
		msg := messages.SelectionMadeMsg{Response: discussion.SelectionResponse{
			Field: discussion.ActionSelectSortBy,
			Value: "newest",
		}}

		newModel, _ := testutil.SendMessage(model, msg)
		assert.False(t, newModel.(Model).Settings().HasChanges())
	})
}

func TestModelUpdate_KeyHandling(t *testing.T) {
	model := NewModel(testutil.SingleBlog())

	t.Run("esc key generates back navigation message", func(t *testing.T) {
		_, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyEsc))
		testutil.AssertNavigationMessage(t, cmd, messages.GoBackMsg{})
	})

	t.Run("backspace key generates back navigation message", func(t *testing.T) {
		_, cmd := testutil.SendMessage(model, testutil.SpecialKey(tea.KeyBackspace))
		testutil.AssertNavigationMessage(t, cmd, messages.GoBackMsg{})
	})

	t.Run("cursor stays within the rows", func(t *testing.T) {
		up, _ := testutil.SendMessage(model, testutil.KeyPress("k"))
		assert.Equal(t, 0, up.(Model).selectedIndex)

		var m tea.Model = model
		for i := 0; i < 30; i++ {
			m, _ = testutil.SendMessage(m, testutil.SpecialKey(tea.KeyDown))
		}
		assert.Equal(t, discussion.ActionBlacklist, m.(Model).SelectedRow().Action)
	})
}

func TestModelView(t *testing.T) {
	t.Run("renders sections and rows", func(t *testing.T) {
		model := NewModel(testutil.SingleBlog())
		newModel, _ := testutil.SendMessage(model, testutil.WindowSizeMsg(100, 40))
		view := newModel.View()

		assert.Contains(t, view, Title)
		assert.Contains(t, view, "DEFAULTS FOR NEW POSTS")
		assert.Contains(t, view, discussion.PostsFooter)
		assert.Contains(t, view, "COMMENTS")
		assert.Contains(t, view, "Allow Comments")
		assert.Contains(t, view, "Oldest First")
		assert.Contains(t, view, "5 levels")
		assert.Contains(t, view, "Blacklist")
	})

	t.Run("status shows unsaved changes", func(t *testing.T) {
		model := NewModel(testutil.SingleBlog())
		assert.Empty(t, model.GetLayoutInfo().Status)

		newModel, _ := testutil.SendMessage(model, testutil.KeyPress(" "))
		assert.Contains(t, newModel.(Model).GetLayoutInfo().Status, "Unsaved changes")
	})
}
