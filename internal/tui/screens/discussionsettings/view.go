// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package discussionsettings

import (
	"strings"

	"github.com/blogdeck/blogdeck/internal/discussion"
	"github.com/blogdeck/blogdeck/internal/tui/layout"
)

// View renders the discussion settings screen
func (m Model) View() string {
	layoutInfo := m.GetLayoutInfo()
	return layout.RenderLayout(m.renderSections(), layoutInfo, m.width, m.height)
}

func (m Model) renderSections() string {
	var lines []string
	index := 0
	for _, section := range discussion.Project(m.settings) {
		if section.HasHeader() {
			lines = append(lines, layout.RenderSectionHeader(section.Header))
		} else {
			lines = append(lines, "")
		}
		for _, row := range section.Rows {
			lines = append(lines, layout.RenderRow(row.Title, rowValue(row), index == m.selectedIndex))
			index++
		}
		if section.HasFooter() {
			lines = append(lines, layout.RenderSectionFooter(section.Footer))
		}
	}
	return strings.Join(lines, "\n")
}

func rowValue(row discussion.Row) string {
	if row.IsSwitch() {
		return layout.RenderSwitch(row.On())
	}
	return layout.RenderDisclosure(row.Details)
}
