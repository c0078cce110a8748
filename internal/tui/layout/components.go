// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RowTitleWidth is the column the value of a grouped-list row starts at.
const RowTitleWidth = 28

// HelpItem represents a single help entry
type HelpItem struct {
	Key         string
	Description string
}

func (h HelpItem) render() string {
	return fmt.Sprintf("[%s] %s", HelpKeyStyle.Render(h.Key), HelpTextStyle.Render(h.Description))
}

// RenderHeader renders the title line, the status line when set, and a divider.
// A trail of a single crumb repeats the title and is not shown.
func RenderHeader(title string, breadcrumbs []string, status string, width int) string {
	lines := []string{TitleStyle.Render(title)}
	if len(breadcrumbs) > 1 {
		lines[0] += "  " + BreadcrumbStyle.Render(strings.Join(breadcrumbs, BreadcrumbSeparator.String()))
	}
	if status != "" {
		lines = append(lines, StatsStyle.Render(status))
	}
	lines = append(lines, GetDivider(width))
	return strings.Join(lines, "\n")
}

// RenderFooter renders the help bar of info. When info.HelpToggle has a key the
// bar can collapse to the toggle alone; expanded, the toggle is listed last.
// It returns "" when there is nothing to show.
func RenderFooter(info LayoutInfo, width int) string {
	items := info.footerItems()
	if len(items) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, item.render())
	}
	return GetDivider(width) + "\n" + FooterStyle.Width(width).Render(strings.Join(rendered, " • "))
}

// RenderSectionHeader renders a grouped-list section header in caps.
func RenderSectionHeader(text string) string {
	return SectionHeaderStyle.Render(strings.ToUpper(text))
}

// RenderSectionFooter renders the note under a section.
func RenderSectionFooter(text string) string {
	return SectionFooterStyle.Render(text)
}

// RenderSwitch returns the on/off marker of a switch row.
func RenderSwitch(on bool) string {
	if on {
		return SwitchOnStyle.String()
	}
	return SwitchOffStyle.String()
}

// RenderDisclosure returns the value column of a row that opens something:
// the muted detail, if any, followed by the disclosure marker.
func RenderDisclosure(detail string) string {
	if detail == "" {
		return DisclosureStyle.String()
	}
	return RowDetailStyle.Render(detail) + " " + DisclosureStyle.String()
}

// RenderRow renders one grouped-list row with title and value columns.
// The selected row carries the cursor.
func RenderRow(title, value string, selected bool) string {
	line := lipgloss.NewStyle().Width(RowTitleWidth).Render(title) + value
	if selected {
		return SelectedRowStyle.Render("> " + line)
	}
	return RowStyle.Render("  " + line)
}
