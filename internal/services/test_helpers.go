// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"testing"

	"github.com/blogdeck/blogdeck/internal/database"
)

// BlogServiceFixture represents a blog service setup with cleanup
type BlogServiceFixture struct {
	Service *BlogService
	DB      *database.GormDB
	Cleanup func()
}

// WithBlogService creates a blog service over a fresh migrated database.
// remote may be nil for a local-only service.
func WithBlogService(t *testing.T, remote RemoteClient) *BlogServiceFixture {
	fixture := database.UseFreshDatabase(t)

	return &BlogServiceFixture{
		Service: NewBlogServiceWithDB(fixture.DB, remote),
		DB:      fixture.DB,
		Cleanup: fixture.Cleanup,
	}
}
