// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the minimum terminal width required
	MinimumWidth = 40
	// MinimumHeight is the minimum terminal height required (header + footer + some space)
	MinimumHeight = 10
)

// LayoutInfo contains all the information needed to render a layout
type LayoutInfo struct {
	Title       string
	Breadcrumbs []string
	// HideBreadcrumbs drops the trail even when Breadcrumbs is set.
	// Creation screens set it.
	HideBreadcrumbs bool
	Status          string
	HelpItems       []HelpItem

	// HelpToggle, when its key is set, is the entry that expands and
	// collapses the help bar. A collapsed bar shows only the toggle.
	HelpToggle    HelpItem
	HelpCollapsed bool
}

func (info LayoutInfo) visibleBreadcrumbs() []string {
	if info.HideBreadcrumbs {
		return nil
	}
	return info.Breadcrumbs
}

func (info LayoutInfo) footerItems() []HelpItem {
	if info.HelpToggle.Key == "" {
		return info.HelpItems
	}
	if info.HelpCollapsed {
		return []HelpItem{info.HelpToggle}
	}
	items := make([]HelpItem, 0, len(info.HelpItems)+1)
	items = append(items, info.HelpItems...)
	return append(items, info.HelpToggle)
}

// frame renders the header and footer for width and returns the rows left
// for content, at least one.
func (info LayoutInfo) frame(width, height int) (header, footer string, contentHeight int) {
	header = RenderHeader(info.Title, info.visibleBreadcrumbs(), info.Status, width)
	footer = RenderFooter(info, width)

	contentHeight = height - lipgloss.Height(header)
	if footer != "" {
		contentHeight -= lipgloss.Height(footer)
	}
	return header, footer, max(contentHeight, 1)
}

// Dimensions represents the available space for content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks if the terminal has enough space to render properly
func ValidateSpace(width, height int) Dimensions {
	dims := Dimensions{Width: width, Height: height}
	switch {
	case width < MinimumWidth:
		dims.Error = fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth)
	case height < MinimumHeight:
		dims.Error = fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight)
	default:
		dims.Valid = true
	}
	return dims
}

// RenderLayout frames content with the header and help bar of info, filling
// exactly height rows. A terminal below the minimum size gets an error view.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(dims, width, height)
	}

	header, footer, contentHeight := info.frame(width, height)

	body := ContentStyle.
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	if footer == "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// GetContentArea returns the space RenderLayout leaves for content.
func GetContentArea(info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	_, _, contentHeight := info.frame(totalWidth, totalHeight)
	dims.Height = contentHeight
	return dims
}

func renderSpaceError(dims Dimensions, width, height int) string {
	lines := []string{
		"Terminal Too Small",
		"",
		dims.Error,
		"",
		fmt.Sprintf("Current: %dx%d  Minimum: %dx%d", width, height, MinimumWidth, MinimumHeight),
		"Please resize your terminal",
	}

	return ErrorStyle.
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}
