// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Here lies the definition of the data that the settings API sends to its clients.
// Everything a client can receive is named: Event
// Responses to reads are Loaded events, e.g. GET /api/v1/blogs answers with BlogsLoadedEvent.
// Writes are answered directly and are also broadcast to WebSocket subscribers,
// e.g. PUT on discussion settings results in SettingsUpdatedEvent for every client watching that blog.
package protocol

import (
	"github.com/blogdeck/blogdeck/internal/models"
)

// EventType names an event on the WebSocket stream
type EventType string

// Event type constants
const (
	EventSettingsUpdated EventType = "settings.updated"
	EventBlogCreated     EventType = "blog.created"
)

// BlogsLoadedEvent is sent when blogs have been loaded
type BlogsLoadedEvent struct {
	Metadata
	Blogs []*models.Blog `json:"blogs"`
}

func (e BlogsLoadedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// DiscussionSettingsEvent carries the stored discussion settings of a blog
type DiscussionSettingsEvent struct {
	Metadata
	BlogID   string                   `json:"blog_id"`
	Settings models.DiscussionPayload `json:"settings"`
}

func (e DiscussionSettingsEvent) GetMetadata() Metadata {
	return e.Metadata
}

// ThemesLoadedEvent is sent when the themes of a blog have been loaded
type ThemesLoadedEvent struct {
	Metadata
	BlogID        string         `json:"blog_id"`
	ActiveThemeID string         `json:"active_theme_id"`
	Themes        []models.Theme `json:"themes"`
}

func (e ThemesLoadedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// SettingsUpdatedEvent is broadcast after a blog's discussion settings were stored
type SettingsUpdatedEvent struct {
	Metadata
	Type     EventType                `json:"type"`
	BlogID   string                   `json:"blog_id"`
	Settings models.DiscussionPayload `json:"settings"`
}

func (e SettingsUpdatedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// BlogCreatedEvent is broadcast after a blog was added
type BlogCreatedEvent struct {
	Metadata
	Type EventType    `json:"type"`
	Blog *models.Blog `json:"blog"`
}

func (e BlogCreatedEvent) GetMetadata() Metadata {
	return e.Metadata
}

// ErrorEvent is the body of every non-2xx API response
type ErrorEvent struct {
	Metadata
	Message string `json:"error"`
	Context string `json:"context,omitempty"`
	// Fields maps invalid payload fields to the rule they broke
	Fields map[string]string `json:"fields,omitempty"`
}

func (e ErrorEvent) GetMetadata() Metadata {
	return e.Metadata
}

// GetBlogID methods allow the API server's WebSocket filter
// to match events without maintaining an exhaustive type switch.

func (e DiscussionSettingsEvent) GetBlogID() string { return e.BlogID }
func (e ThemesLoadedEvent) GetBlogID() string       { return e.BlogID }
func (e SettingsUpdatedEvent) GetBlogID() string    { return e.BlogID }
func (e BlogCreatedEvent) GetBlogID() string        { return e.Blog.ID }
