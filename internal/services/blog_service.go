// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/database"
	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/models"
)

var (
	dataLog     *zerolog.Logger
	dataLogOnce sync.Once
)

func getDataLog() *zerolog.Logger {
	dataLogOnce.Do(func() {
		l := logger.GetDatabaseLogger().With().Str("component", "service").Logger()
		dataLog = &l
	})
	return dataLog
}

// ErrInvalidBlog is returned when a blog cannot be created from the given input.
var ErrInvalidBlog = errors.New("invalid blog")

// BlogService loads and stores blogs, their discussion settings and themes.
// When a remote client is set, settings updates go to the settings API first.
type BlogService struct {
	db     *database.GormDB
	remote RemoteClient
}

// NewBlogService opens the configured database and validates its schema.
// remote may be nil, in which case all writes are local.
func NewBlogService(cfg *config.AppConfig, remote RemoteClient) (*BlogService, error) {
	getDataLog().Debug().Msg("Initializing blog service")

	db, err := database.NewGormDB(&cfg.Database)
	if err != nil {
		getDataLog().Error().Err(err).Msg("Failed to initialize database")
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.ValidateSchema(); err != nil {
		getDataLog().Error().Err(err).Msg("Database schema validation failed")
		db.Close()
		return nil, fmt.Errorf("database schema validation failed: %w", err)
	}

	getDataLog().Info().Bool("remote", remote != nil).Msg("Blog service initialized successfully")
	return NewBlogServiceWithDB(db, remote), nil
}

// NewBlogServiceWithDB wraps an already opened database.
func NewBlogServiceWithDB(db *database.GormDB, remote RemoteClient) *BlogService {
	return &BlogService{db: db, remote: remote}
}

// HasRemote reports whether settings are pushed to a settings API.
func (bs *BlogService) HasRemote() bool {
	return bs.remote != nil
}

// LoadBlogs loads all blogs ordered by name. Blogs without stored settings
// get defaults so callers can always dereference Settings.
func (bs *BlogService) LoadBlogs(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := bs.db.GetAllBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load blogs: %w", err)
	}
	for _, b := range blogs {
		ensureSettings(b)
	}
	return blogs, nil
}

// GetBlog loads a single blog.
func (bs *BlogService) GetBlog(ctx context.Context, blogID string) (*models.Blog, error) {
	blog, err := bs.db.GetBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	ensureSettings(blog)
	return blog, nil
}

func ensureSettings(b *models.Blog) {
	if b.Settings == nil {
		b.Settings = models.DefaultDiscussionSettings(b.ID)
	}
}

// CreateBlog creates a blog with default discussion settings.
// A bare host name is accepted as address and gets an https scheme.
func (bs *BlogService) CreateBlog(ctx context.Context, name, address, tagline string) (*models.Blog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidBlog)
	}
	normalized, err := NormalizeBlogURL(address)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	blog := &models.Blog{
		ID:       id,
		Name:     name,
		URL:      normalized,
		Tagline:  strings.TrimSpace(tagline),
		Settings: models.DefaultDiscussionSettings(id),
	}
	if err := bs.db.CreateBlog(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	getDataLog().Info().Str("blog_id", id).Str("url", normalized).Msg("Blog created")
	return blog, nil
}

// NormalizeBlogURL validates a blog address and returns it as an absolute URL.
func NormalizeBlogURL(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("%w: address is required", ErrInvalidBlog)
	}
	if !strings.Contains(address, "://") {
		address = "https://" + address
	}
	u, err := url.Parse(address)
	if err != nil || u.Host == "" || strings.ContainsAny(u.Host, " _") {
		return "", fmt.Errorf("%w: %q is not a valid address", ErrInvalidBlog, address)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidBlog, u.Scheme)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// ListThemes loads the themes of a blog in display order.
func (bs *BlogService) ListThemes(ctx context.Context, blogID string) ([]models.Theme, error) {
	return bs.db.ListThemes(ctx, blogID)
}

// SetActiveTheme records the theme a blog uses.
func (bs *BlogService) SetActiveTheme(ctx context.Context, blogID, themeID string) error {
	return bs.db.SetActiveTheme(ctx, blogID, themeID)
}

// UpdateSettingsForBlog stores payload as the blog's discussion settings.
// With a remote configured, the remote is updated first and a remote failure
// leaves the local store untouched.
func (bs *BlogService) UpdateSettingsForBlog(ctx context.Context, blogID string, payload models.DiscussionPayload) error {
	if bs.remote != nil {
		if err := bs.remote.UpdateDiscussionSettings(ctx, blogID, payload); err != nil {
			return fmt.Errorf("remote update failed: %w", err)
		}
	}

	if err := bs.db.SaveDiscussionSettings(ctx, blogID, payload); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}

// SyncResult summarizes a SyncFromRemote run.
type SyncResult struct {
	Blogs  int
	Themes int
	Failed []string
}

// SyncFromRemote pulls blogs, settings and themes from the settings API into
// the local store. A blog that fails to sync is recorded in Failed and does
// not stop the others.
func (bs *BlogService) SyncFromRemote(ctx context.Context) (SyncResult, error) {
	var result SyncResult
	if bs.remote == nil {
		return result, errors.New("no remote configured")
	}

	blogs, err := bs.remote.ListBlogs(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list remote blogs: %w", err)
	}

	for _, b := range blogs {
		themes, err := bs.syncBlog(ctx, b)
		if err != nil {
			getDataLog().Warn().Err(err).Str("blog_id", b.ID).Msg("Failed to sync blog")
			result.Failed = append(result.Failed, b.ID)
			continue
		}
		result.Blogs++
		result.Themes += themes
	}

	getDataLog().Info().
		Int("blogs", result.Blogs).
		Int("themes", result.Themes).
		Int("failed", len(result.Failed)).
		Msg("Sync from remote finished")
	return result, nil
}

func (bs *BlogService) syncBlog(ctx context.Context, b *models.Blog) (int, error) {
	if err := bs.db.UpsertBlog(ctx, b); err != nil {
		return 0, fmt.Errorf("failed to store blog: %w", err)
	}

	payload, err := bs.remote.GetDiscussionSettings(ctx, b.ID)
	if err != nil {
		return 0, err
	}
	if err := bs.db.SaveDiscussionSettings(ctx, b.ID, payload); err != nil {
		return 0, fmt.Errorf("failed to store settings: %w", err)
	}

	themes, err := bs.remote.ListThemes(ctx, b.ID)
	if err != nil {
		return 0, err
	}
	if err := bs.db.UpsertThemes(ctx, b.ID, themes.Themes); err != nil {
		return 0, fmt.Errorf("failed to store themes: %w", err)
	}
	if themes.ActiveThemeID != "" {
		if err := bs.db.SetActiveTheme(ctx, b.ID, themes.ActiveThemeID); err != nil {
			return 0, err
		}
	}
	return len(themes.Themes), nil
}

// Close closes the underlying database.
func (bs *BlogService) Close() error {
	return bs.db.Close()
}
