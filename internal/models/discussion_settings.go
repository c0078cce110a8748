// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"fmt"
	"sync/atomic"
	"time"
)

// SortOrder is the order in which comments are listed.
type SortOrder int

const (
	SortOrderAscending SortOrder = iota
	SortOrderDescending
)

// SortTitles and SortValues are parallel: SortTitles[i] describes SortValues[i].
var (
	SortTitles = []string{"Oldest First", "Newest First"}
	SortValues = []int{int(SortOrderAscending), int(SortOrderDescending)}
)

// String returns the display title of the sort order
func (o SortOrder) String() string {
	switch o {
	case SortOrderAscending:
		return SortTitles[0]
	case SortOrderDescending:
		return SortTitles[1]
	default:
		return "Unknown"
	}
}

// Comment threading depth bounds. Depth 1 is not a valid threading depth.
const (
	ThreadingDepthDisabled = 0
	ThreadingDepthMin      = 2
	ThreadingDepthMax      = 10
)

// ThreadingDepthValues returns the selectable threading depths, disabled first.
func ThreadingDepthValues() []int {
	values := []int{ThreadingDepthDisabled}
	for d := ThreadingDepthMin; d <= ThreadingDepthMax; d++ {
		values = append(values, d)
	}
	return values
}

// ThreadingDepthTitles returns titles parallel to ThreadingDepthValues.
func ThreadingDepthTitles() []string {
	titles := []string{"Disabled"}
	for d := ThreadingDepthMin; d <= ThreadingDepthMax; d++ {
		titles = append(titles, fmt.Sprintf("%d levels", d))
	}
	return titles
}

// DiscussionSettings are a blog's comment and pingback preferences.
//
// Fields are mutated through the setters, which mark the settings dirty.
// The dirty flag and revision live only in memory; they are never stored.
type DiscussionSettings struct {
	BlogID                      string    `gorm:"primaryKey;type:text" json:"blog_id"`
	CommentsAllowed             bool      `json:"comments_allowed"`
	PingbackInboundEnabled      bool      `json:"pingback_inbound_enabled"`
	PingbackOutboundEnabled     bool      `json:"pingback_outbound_enabled"`
	CommentsRequireNameAndEmail bool      `json:"comments_require_name_and_email"`
	CommentsRequireRegistration bool      `json:"comments_require_registration"`
	CommentsSortOrder           SortOrder `json:"comments_sort_order"`
	CommentsThreadingEnabled    bool      `json:"comments_threading_enabled"`
	CommentsThreadingDepth      int       `json:"comments_threading_depth"`
	LastUpdatedAt               time.Time `gorm:"autoUpdateTime" json:"last_updated_at"`

	dirty    bool
	revision uint64
}

// TableName returns the table name for DiscussionSettings
func (DiscussionSettings) TableName() string {
	return "discussion_settings"
}

// DefaultDiscussionSettings returns the settings a freshly created blog starts with.
func DefaultDiscussionSettings(blogID string) *DiscussionSettings {
	return &DiscussionSettings{
		BlogID:                      blogID,
		CommentsAllowed:             true,
		PingbackInboundEnabled:      true,
		PingbackOutboundEnabled:     true,
		CommentsRequireNameAndEmail: true,
		CommentsSortOrder:           SortOrderAscending,
		CommentsThreadingEnabled:    true,
		CommentsThreadingDepth:      5,
	}
}

// HasChanges reports whether the settings were mutated since they were last saved.
func (s *DiscussionSettings) HasChanges() bool {
	return s.dirty
}

// revisions is shared by every settings value, so a revision identifies one
// edit of one value and a save of a replaced value never matches a newer one.
var revisions atomic.Uint64

// Revision changes on every mutation. It is unique across all settings values.
func (s *DiscussionSettings) Revision() uint64 {
	return s.revision
}

// MarkSaved clears the dirty flag if no mutation happened after revision.
// It reports whether the flag was cleared.
func (s *DiscussionSettings) MarkSaved(revision uint64) bool {
	if s.revision != revision {
		return false
	}
	s.dirty = false
	return true
}

func (s *DiscussionSettings) touch() {
	s.dirty = true
	s.revision = revisions.Add(1)
}

// SetCommentsAllowed sets whether new posts accept comments.
func (s *DiscussionSettings) SetCommentsAllowed(v bool) {
	s.CommentsAllowed = v
	s.touch()
}

// SetPingbackInboundEnabled sets whether pingbacks from other blogs are accepted.
func (s *DiscussionSettings) SetPingbackInboundEnabled(v bool) {
	s.PingbackInboundEnabled = v
	s.touch()
}

// SetPingbackOutboundEnabled sets whether pingbacks are sent to linked blogs.
func (s *DiscussionSettings) SetPingbackOutboundEnabled(v bool) {
	s.PingbackOutboundEnabled = v
	s.touch()
}

// SetCommentsRequireNameAndEmail sets whether commenters must leave a name and email.
func (s *DiscussionSettings) SetCommentsRequireNameAndEmail(v bool) {
	s.CommentsRequireNameAndEmail = v
	s.touch()
}

// SetCommentsRequireRegistration sets whether commenters must be signed in.
func (s *DiscussionSettings) SetCommentsRequireRegistration(v bool) {
	s.CommentsRequireRegistration = v
	s.touch()
}

// SetCommentsSortOrder sets the comment listing order.
func (s *DiscussionSettings) SetCommentsSortOrder(v SortOrder) {
	s.CommentsSortOrder = v
	s.touch()
}

// SetCommentsThreading sets the threading depth; ThreadingDepthDisabled turns threading off.
func (s *DiscussionSettings) SetCommentsThreading(depth int) {
	s.CommentsThreadingEnabled = depth != ThreadingDepthDisabled
	s.CommentsThreadingDepth = depth
	s.touch()
}

// EffectiveThreadingDepth is the depth shown to the user: the stored depth
// when threading is on, ThreadingDepthDisabled otherwise.
func (s *DiscussionSettings) EffectiveThreadingDepth() int {
	if !s.CommentsThreadingEnabled {
		return ThreadingDepthDisabled
	}
	return s.CommentsThreadingDepth
}

// DiscussionPayload is the wire form of DiscussionSettings sent to the settings API.
type DiscussionPayload struct {
	CommentsAllowed             bool      `json:"comments_allowed"`
	PingbackInboundEnabled      bool      `json:"pingback_inbound_enabled"`
	PingbackOutboundEnabled     bool      `json:"pingback_outbound_enabled"`
	CommentsRequireNameAndEmail bool      `json:"comments_require_name_and_email"`
	CommentsRequireRegistration bool      `json:"comments_require_registration"`
	CommentsSortOrder           SortOrder `json:"comments_sort_order" validate:"oneof=0 1"`
	CommentsThreadingEnabled    bool      `json:"comments_threading_enabled"`
	CommentsThreadingDepth      int       `json:"comments_threading_depth" validate:"min=0,max=10,ne=1"`
}

// Payload snapshots the current values.
func (s *DiscussionSettings) Payload() DiscussionPayload {
	return DiscussionPayload{
		CommentsAllowed:             s.CommentsAllowed,
		PingbackInboundEnabled:      s.PingbackInboundEnabled,
		PingbackOutboundEnabled:     s.PingbackOutboundEnabled,
		CommentsRequireNameAndEmail: s.CommentsRequireNameAndEmail,
		CommentsRequireRegistration: s.CommentsRequireRegistration,
		CommentsSortOrder:           s.CommentsSortOrder,
		CommentsThreadingEnabled:    s.CommentsThreadingEnabled,
		CommentsThreadingDepth:      s.CommentsThreadingDepth,
	}
}

// ApplyPayload overwrites the values with p without marking the settings dirty;
// it is used when loading state that already matches the remote.
func (s *DiscussionSettings) ApplyPayload(p DiscussionPayload) {
	s.CommentsAllowed = p.CommentsAllowed
	s.PingbackInboundEnabled = p.PingbackInboundEnabled
	s.PingbackOutboundEnabled = p.PingbackOutboundEnabled
	s.CommentsRequireNameAndEmail = p.CommentsRequireNameAndEmail
	s.CommentsRequireRegistration = p.CommentsRequireRegistration
	s.CommentsSortOrder = p.CommentsSortOrder
	s.CommentsThreadingEnabled = p.CommentsThreadingEnabled
	s.CommentsThreadingDepth = p.CommentsThreadingDepth
}
