// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import (
	"github.com/blogdeck/blogdeck/internal/discussion"
	"github.com/blogdeck/blogdeck/internal/models"
)

// Navigation messages for screen transitions within the TUI
type GoBackMsg struct{}

type GoToBlogListMsg struct{}

type GoToDiscussionSettingsMsg struct {
	Blog *models.Blog
}

type GoToThemeBrowserMsg struct {
	Blog *models.Blog
}

type GoToSiteCreationMsg struct{}

// PushSelectionMsg asks the host to present a picker for Request.
type PushSelectionMsg struct {
	Request discussion.SelectionRequest
}

// SelectionMadeMsg is the picker's answer. The host pops the picker and
// hands Response to the screen that asked.
type SelectionMadeMsg struct {
	Response discussion.SelectionResponse
}

// SettingsSavedMsg reports that the settings of BlogID were persisted as of Revision.
type SettingsSavedMsg struct {
	BlogID   string
	Revision uint64
}

type BlogCreatedMsg struct {
	Blog *models.Blog
}
