// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/models"
)

func sampleBlog(id, name string) *models.Blog {
	return &models.Blog{
		ID:       id,
		Name:     name,
		URL:      "https://" + id + ".example.com",
		Settings: models.DefaultDiscussionSettings(id),
	}
}

func TestBlogsCRUD(t *testing.T) {
	fixture := UseFreshDatabase(t)
	defer fixture.Cleanup()
	db := fixture.DB
	ctx := context.Background()

	require.NoError(t, db.CreateBlog(ctx, sampleBlog("b2", "Zebra Notes")))
	require.NoError(t, db.CreateBlog(ctx, sampleBlog("b1", "Alpha Journal")))

	t.Run("list is ordered by name and preloads settings", func(t *testing.T) {
		blogs, err := db.GetAllBlogs(ctx)
		require.NoError(t, err)
		require.Len(t, blogs, 2)
		assert.Equal(t, "Alpha Journal", blogs[0].Name)
		require.NotNil(t, blogs[0].Settings)
		assert.True(t, blogs[0].Settings.CommentsAllowed)
	})

	t.Run("get unknown blog", func(t *testing.T) {
		_, err := db.GetBlog(ctx, "nope")
		assert.ErrorIs(t, err, ErrBlogNotFound)
	})

	t.Run("upsert refreshes name", func(t *testing.T) {
		renamed := &models.Blog{ID: "b1", Name: "Alpha Journal II", URL: "https://b1.example.com"}
		require.NoError(t, db.UpsertBlog(ctx, renamed))

		blog, err := db.GetBlog(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, "Alpha Journal II", blog.Name)
		require.NotNil(t, blog.Settings, "upsert must not drop settings")
	})

	t.Run("delete removes settings", func(t *testing.T) {
		require.NoError(t, db.DeleteBlog(ctx, "b2"))
		_, err := db.GetDiscussionSettings(ctx, "b2")
		assert.ErrorIs(t, err, ErrSettingsNotFound)
	})
}

func TestSaveDiscussionSettings(t *testing.T) {
	fixture := UseFreshDatabase(t)
	defer fixture.Cleanup()
	db := fixture.DB
	ctx := context.Background()

	require.NoError(t, db.CreateBlog(ctx, sampleBlog("b1", "Alpha")))

	payload := models.DefaultDiscussionSettings("b1").Payload()
	payload.CommentsAllowed = false
	payload.CommentsSortOrder = models.SortOrderDescending
	payload.CommentsThreadingEnabled = false
	payload.CommentsThreadingDepth = models.ThreadingDepthDisabled

	require.NoError(t, db.SaveDiscussionSettings(ctx, "b1", payload))

	stored, err := db.GetDiscussionSettings(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, payload, stored.Payload())
	assert.False(t, stored.HasChanges())

	t.Run("insert when absent", func(t *testing.T) {
		require.NoError(t, db.CreateBlog(ctx, &models.Blog{ID: "b3", Name: "Bare", URL: "https://b3.example.com"}))
		require.NoError(t, db.SaveDiscussionSettings(ctx, "b3", payload))

		stored, err := db.GetDiscussionSettings(ctx, "b3")
		require.NoError(t, err)
		assert.False(t, stored.CommentsAllowed)
	})
}

func TestThemes(t *testing.T) {
	fixture := UseFreshDatabase(t)
	defer fixture.Cleanup()
	db := fixture.DB
	ctx := context.Background()

	require.NoError(t, db.CreateBlog(ctx, sampleBlog("b1", "Alpha")))
	require.NoError(t, db.UpsertThemes(ctx, "b1", []models.Theme{
		{ID: "twentysixteen", Name: "Twenty Sixteen", Order: 2},
		{ID: "edin", Name: "Edin", Order: 1},
	}))

	themes, err := db.ListThemes(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "edin", themes[0].ID)
	assert.Equal(t, "b1", themes[1].BlogID)

	require.NoError(t, db.SetActiveTheme(ctx, "b1", "edin"))
	blog, err := db.GetBlog(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "edin", blog.ActiveThemeID)

	assert.ErrorIs(t, db.SetActiveTheme(ctx, "missing", "edin"), ErrBlogNotFound)
	assert.NoError(t, db.UpsertThemes(ctx, "b1", nil))
}

func TestValidateSchema(t *testing.T) {
	t.Run("fresh database without migrations", func(t *testing.T) {
		db, err := NewGormDB(&config.DatabaseConfig{
			Driver:   "sqlite",
			Database: filepath.Join(t.TempDir(), "empty.db"),
		})
		require.NoError(t, err)
		defer db.Close()

		err = db.ValidateSchema()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing tables")
	})

	t.Run("migrated database", func(t *testing.T) {
		fixture := UseFreshDatabase(t)
		defer fixture.Cleanup()
		assert.NoError(t, fixture.DB.ValidateSchema())
	})

	t.Run("unsupported driver", func(t *testing.T) {
		_, err := NewGormDB(&config.DatabaseConfig{Driver: "oracle"})
		assert.Error(t, err)
	})
}
