// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package discussion

import (
	"github.com/blogdeck/blogdeck/internal/models"
)

// Action identifies what a row does when the user interacts with it.
type Action int

const (
	ActionNone Action = iota

	ActionToggleCommentsAllowed
	ActionTogglePingbackOutbound
	ActionTogglePingbackInbound
	ActionToggleRequireNameAndEmail
	ActionToggleRequireRegistration

	ActionSelectCloseAfter
	ActionSelectSortBy
	ActionSelectThreading
	ActionSelectPaging

	// Rows that have no behavior yet.
	ActionAutomaticallyApprove
	ActionLinksInComments
	ActionHoldForModeration
	ActionBlacklist
)

var actionTitles = map[Action]string{
	ActionToggleCommentsAllowed:     "Allow Comments",
	ActionTogglePingbackOutbound:    "Send Pingbacks",
	ActionTogglePingbackInbound:     "Receive Pingbacks",
	ActionToggleRequireNameAndEmail: "Require name & email",
	ActionToggleRequireRegistration: "Require users to sign in",
	ActionSelectCloseAfter:          "Close After",
	ActionSelectSortBy:              "Sort By",
	ActionSelectThreading:           "Threading",
	ActionSelectPaging:              "Paging",
	ActionAutomaticallyApprove:      "Automatically Approve",
	ActionLinksInComments:           "Links in comments",
	ActionHoldForModeration:         "Hold for Moderation",
	ActionBlacklist:                 "Blacklist",
}

// Title is the row label for the action.
func (a Action) Title() string {
	return actionTitles[a]
}

// String implements fmt.Stringer
func (a Action) String() string {
	if t, ok := actionTitles[a]; ok {
		return t
	}
	return "None"
}

// IsToggle reports whether the action flips a boolean setting.
func (a Action) IsToggle() bool {
	return a >= ActionToggleCommentsAllowed && a <= ActionToggleRequireRegistration
}

// IsSelection reports whether the action opens a sub-selection.
func (a Action) IsSelection() bool {
	return a >= ActionSelectCloseAfter && a <= ActionSelectPaging
}

// Effect is what the host has to do after an action was applied.
type Effect struct {
	// Selection, when set, asks the host to present a picker and route the
	// answer back through ApplySelection.
	Selection *SelectionRequest
	// Changed reports whether the settings were mutated.
	Changed bool
}

// Apply runs action against s. Toggles need a bool payload; anything else is
// ignored. Selection actions never mutate s, they return a request instead.
func Apply(s *models.DiscussionSettings, action Action, payload any) Effect {
	if action.IsToggle() {
		enabled, ok := payload.(bool)
		if !ok {
			return Effect{}
		}
		applyToggle(s, action, enabled)
		return Effect{Changed: true}
	}

	if action.IsSelection() {
		req := NewSelectionRequest(s, action)
		return Effect{Selection: &req}
	}

	return Effect{}
}

func applyToggle(s *models.DiscussionSettings, action Action, enabled bool) {
	switch action {
	case ActionToggleCommentsAllowed:
		s.SetCommentsAllowed(enabled)
	case ActionTogglePingbackOutbound:
		s.SetPingbackOutboundEnabled(enabled)
	case ActionTogglePingbackInbound:
		s.SetPingbackInboundEnabled(enabled)
	case ActionToggleRequireNameAndEmail:
		s.SetCommentsRequireNameAndEmail(enabled)
	case ActionToggleRequireRegistration:
		s.SetCommentsRequireRegistration(enabled)
	}
}
