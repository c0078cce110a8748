// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
)

// Sample data creators for consistent testing

// SampleBlogs returns blogs with default discussion settings, ordered by name
func SampleBlogs() []*models.Blog {
	return []*models.Blog{
		SampleBlog("blog1", "Field Notes", "https://fieldnotes.example"),
		SampleBlog("blog2", "Kitchen Log", "https://kitchen.example"),
		SampleBlog("blog3", "", "https://untitled.example"),
	}
}

// SampleBlog returns a single blog with default discussion settings
func SampleBlog(id, name, url string) *models.Blog {
	return &models.Blog{
		ID:            id,
		Name:          name,
		URL:           url,
		ActiveThemeID: "twentytwenty",
		Settings:      models.DefaultDiscussionSettings(id),
	}
}

// SingleBlog returns a single blog for simpler tests
func SingleBlog() *models.Blog {
	return SampleBlog("single", "Single Blog", "https://single.example")
}

// SampleThemes returns the themes of blogID in display order
func SampleThemes(blogID string) []models.Theme {
	return []models.Theme{
		{ID: "twentytwenty", BlogID: blogID, Name: "Twenty Twenty", Author: "the WordPress team", Order: 0},
		{ID: "lodestar", BlogID: blogID, Name: "Lodestar", Author: "Automattic", Premium: true, Order: 1},
		{ID: "minimal", BlogID: blogID, Name: "Minimal Grid", Author: "Jane Doe", Order: 2},
	}
}

// BlogsLoadedEvent creates a sample BlogsLoadedEvent
func BlogsLoadedEvent() protocol.BlogsLoadedEvent {
	return protocol.BlogsLoadedEvent{
		Metadata: protocol.NewMetadata(""),
		Blogs:    SampleBlogs(),
	}
}

// ThemesLoadedEvent creates a sample ThemesLoadedEvent for a given blog
func ThemesLoadedEvent(blogID string) protocol.ThemesLoadedEvent {
	return protocol.ThemesLoadedEvent{
		Metadata:      protocol.NewMetadata(""),
		BlogID:        blogID,
		ActiveThemeID: "twentytwenty",
		Themes:        SampleThemes(blogID),
	}
}
