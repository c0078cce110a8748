// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
)

// RemoteClient defines the methods used by services from the settings API client.
// Owned by the services package so both remote.Client and test fakes satisfy it.
type RemoteClient interface {
	ListBlogs(ctx context.Context) ([]*models.Blog, error)
	GetDiscussionSettings(ctx context.Context, blogID string) (models.DiscussionPayload, error)
	UpdateDiscussionSettings(ctx context.Context, blogID string, payload models.DiscussionPayload) error
	ListThemes(ctx context.Context, blogID string) (protocol.ThemesLoadedEvent, error)
}

// SettingsUpdater stores a settings payload for a blog. BlogService is the
// production implementation.
type SettingsUpdater interface {
	UpdateSettingsForBlog(ctx context.Context, blogID string, payload models.DiscussionPayload) error
}
