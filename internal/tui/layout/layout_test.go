// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestValidateSpace(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		valid         bool
		errorContains string
	}{
		{"fits", 80, 24, true, ""},
		{"too narrow", 20, 24, false, "Terminal too narrow"},
		{"too short", 80, 5, false, "Terminal too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := ValidateSpace(tt.width, tt.height)
			assert.Equal(t, tt.valid, dims.Valid)
			if tt.errorContains != "" {
				assert.Contains(t, dims.Error, tt.errorContains)
			}
		})
	}
}

func TestRenderLayout(t *testing.T) {
	info := LayoutInfo{
		Title:       "Discussion",
		Breadcrumbs: []string{"Blogs", "Field Notes", "Discussion"},
		Status:      "3 sections",
		HelpItems:   []HelpItem{{Key: "esc", Description: "back"}},
	}

	t.Run("renders title breadcrumbs and help", func(t *testing.T) {
		view := RenderLayout("body", info, 80, 24)

		assert.Contains(t, view, "Discussion")
		assert.Contains(t, view, "Field Notes")
		assert.Contains(t, view, "body")
		assert.Contains(t, view, "back")
		assert.Equal(t, 24, lipgloss.Height(view))
	})

	t.Run("hidden breadcrumbs", func(t *testing.T) {
		hidden := info
		hidden.HideBreadcrumbs = true
		view := RenderLayout("body", hidden, 80, 24)

		assert.Contains(t, view, "Discussion")
		assert.NotContains(t, view, "Field Notes")
	})

	t.Run("too small renders error", func(t *testing.T) {
		view := RenderLayout("body", info, 30, 12)
		assert.Contains(t, view, "Terminal Too Small")
		assert.Contains(t, view, "Please resize your terminal")
		assert.NotContains(t, view, "body")
	})

	t.Run("no help leaves no footer", func(t *testing.T) {
		bare := LayoutInfo{Title: "Blogs"}
		view := RenderLayout("body", bare, 80, 24)
		assert.Equal(t, 24, lipgloss.Height(view))
	})
}

func TestGetContentArea(t *testing.T) {
	withHelp := LayoutInfo{Title: "Blogs", HelpItems: []HelpItem{{Key: "q", Description: "quit"}}}
	withoutHelp := LayoutInfo{Title: "Blogs"}

	a := GetContentArea(withHelp, 80, 24)
	b := GetContentArea(withoutHelp, 80, 24)

	assert.True(t, a.Valid)
	assert.Equal(t, 80, a.Width)
	assert.Less(t, a.Height, b.Height, "footer should take rows from the content area")
}

func TestRenderFooter(t *testing.T) {
	items := []HelpItem{{Key: "tab", Description: "next field"}}
	toggle := HelpItem{Key: "f1", Description: "help"}

	t.Run("plain help lists every item", func(t *testing.T) {
		footer := RenderFooter(LayoutInfo{HelpItems: items}, 80)
		assert.Contains(t, footer, "next field")
	})

	t.Run("collapsed shows only the toggle", func(t *testing.T) {
		footer := RenderFooter(LayoutInfo{HelpItems: items, HelpToggle: toggle, HelpCollapsed: true}, 80)
		assert.Contains(t, footer, "help")
		assert.NotContains(t, footer, "next field")
	})

	t.Run("expanded lists the toggle last", func(t *testing.T) {
		footer := RenderFooter(LayoutInfo{HelpItems: items, HelpToggle: toggle}, 80)
		assert.Less(t, strings.Index(footer, "next field"), strings.LastIndex(footer, "help"))
	})

	t.Run("nothing to show", func(t *testing.T) {
		assert.Empty(t, RenderFooter(LayoutInfo{}, 80))
	})
}

func TestRenderRow(t *testing.T) {
	plain := RenderRow("Allow Comments", RenderSwitch(true), false)
	selected := RenderRow("Allow Comments", RenderSwitch(true), true)

	assert.Contains(t, plain, "Allow Comments")
	assert.Contains(t, plain, "[on ]")
	assert.NotContains(t, plain, ">")
	assert.Contains(t, selected, "> Allow Comments")

	assert.Contains(t, RenderSwitch(false), "[off]")
	assert.Equal(t, DisclosureStyle.String(), RenderDisclosure(""))
	assert.Contains(t, RenderDisclosure("Oldest First"), "Oldest First")
	assert.Contains(t, RenderSectionHeader("Comments"), "COMMENTS")
}

func TestGetDivider(t *testing.T) {
	assert.Empty(t, GetDivider(0))
	assert.Equal(t, 10, lipgloss.Width(GetDivider(10)))
}
