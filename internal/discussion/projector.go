// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package discussion turns a blog's discussion settings into display sections
// and applies the edits a user makes on them.
//
// Project is a pure function of the settings: rows are rebuilt on every call
// and never cached, so a mutation is visible on the next projection. Rows do
// not hold callbacks; each carries an Action that Apply interprets.
package discussion

import (
	"github.com/samber/lo"

	"github.com/blogdeck/blogdeck/internal/models"
)

// RowStyle selects how a row is rendered.
type RowStyle int

const (
	// StyleSwitch rows show an on/off value and toggle it.
	StyleSwitch RowStyle = iota
	// StyleValue1 rows show a title, an optional detail and a disclosure marker.
	StyleValue1
)

// Section groups rows under an optional header and footer.
type Section struct {
	Header string
	Footer string
	Rows   []Row
}

// HasHeader reports whether the section renders a header line.
func (s Section) HasHeader() bool { return s.Header != "" }

// HasFooter reports whether the section renders a footer line.
func (s Section) HasFooter() bool { return s.Footer != "" }

// Row is a single display entry. Value is set only for switch rows.
type Row struct {
	Style   RowStyle
	Title   string
	Details string
	Value   *bool
	Action  Action
}

// IsSwitch reports whether the row is a toggle.
func (r Row) IsSwitch() bool { return r.Style == StyleSwitch }

// On returns the toggle state; rows without a value render as on.
func (r Row) On() bool {
	if r.Value == nil {
		return true
	}
	return *r.Value
}

// Section headers and footers.
const (
	PostsHeader    = "Defaults for New Posts"
	PostsFooter    = "You can override these settings for individual posts. Learn more..."
	CommentsHeader = "Comments"
)

// Project returns the Posts, Comments and Other sections for s, in that order.
func Project(s *models.DiscussionSettings) []Section {
	return []Section{
		postsSection(s),
		commentsSection(s),
		otherSection(),
	}
}

func postsSection(s *models.DiscussionSettings) Section {
	return Section{
		Header: PostsHeader,
		Footer: PostsFooter,
		Rows: []Row{
			switchRow(ActionToggleCommentsAllowed, s.CommentsAllowed),
			switchRow(ActionTogglePingbackOutbound, s.PingbackOutboundEnabled),
			switchRow(ActionTogglePingbackInbound, s.PingbackInboundEnabled),
		},
	}
}

func commentsSection(s *models.DiscussionSettings) Section {
	return Section{
		Header: CommentsHeader,
		Rows: []Row{
			switchRow(ActionToggleRequireNameAndEmail, s.CommentsRequireNameAndEmail),
			switchRow(ActionToggleRequireRegistration, s.CommentsRequireRegistration),
			valueRow(ActionSelectCloseAfter, ""),
			valueRow(ActionSelectSortBy, s.CommentsSortOrder.String()),
			valueRow(ActionSelectThreading, threadingDetails(s)),
			valueRow(ActionSelectPaging, ""),
			valueRow(ActionAutomaticallyApprove, ""),
			valueRow(ActionLinksInComments, ""),
		},
	}
}

func otherSection() Section {
	return Section{
		Rows: []Row{
			valueRow(ActionHoldForModeration, ""),
			valueRow(ActionBlacklist, ""),
		},
	}
}

func switchRow(action Action, value bool) Row {
	return Row{
		Style:  StyleSwitch,
		Title:  action.Title(),
		Value:  lo.ToPtr(value),
		Action: action,
	}
}

func valueRow(action Action, details string) Row {
	return Row{
		Style:   StyleValue1,
		Title:   action.Title(),
		Details: details,
		Action:  action,
	}
}

func threadingDetails(s *models.DiscussionSettings) string {
	depth := s.EffectiveThreadingDepth()
	titles := models.ThreadingDepthTitles()
	idx := lo.IndexOf(models.ThreadingDepthValues(), depth)
	if idx < 0 {
		return ""
	}
	return titles[idx]
}
