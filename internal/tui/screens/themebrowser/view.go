// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package themebrowser

import (
	"github.com/blogdeck/blogdeck/internal/tui/layout"
)

// View renders the theme browser
func (m Model) View() string {
	return layout.RenderLayout(m.list.View(), m.GetLayoutInfo(), m.width, m.height)
}
