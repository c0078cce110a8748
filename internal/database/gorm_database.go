// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/models"
)

var (
	// ErrBlogNotFound is returned when no blog has the requested ID.
	ErrBlogNotFound = errors.New("blog not found")
	// ErrSettingsNotFound is returned when a blog has no stored discussion settings.
	ErrSettingsNotFound = errors.New("discussion settings not found")
)

// GormDB wraps the GORM database connection
type GormDB struct {
	db *gorm.DB
}

// NewGormDB creates a new GORM database connection
func NewGormDB(cfg *config.DatabaseConfig) (*GormDB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dsn := cfg.GetDSN()
		if cfg.Database != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{db: db}, nil
}

// AutoMigrate runs database migrations
func (db *GormDB) AutoMigrate() error {
	return db.db.AutoMigrate(
		&models.Blog{},
		&models.DiscussionSettings{},
		&models.Theme{},
	)
}

// ValidateSchema checks if GORM models match the database schema
func (db *GormDB) ValidateSchema() error {
	var missing []string

	tables := map[string]interface{}{
		"blogs":               &models.Blog{},
		"discussion_settings": &models.DiscussionSettings{},
		"themes":              &models.Theme{},
	}
	for name, model := range tables {
		if !db.db.Migrator().HasTable(model) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tables: %v\n\nRun 'blogdeck migrate' to create the required tables", missing)
	}

	settingsColumns := []string{
		"blog_id", "comments_allowed", "pingback_inbound_enabled", "pingback_outbound_enabled",
		"comments_require_name_and_email", "comments_require_registration",
		"comments_sort_order", "comments_threading_enabled", "comments_threading_depth",
	}
	for _, col := range settingsColumns {
		if !db.db.Migrator().HasColumn(&models.DiscussionSettings{}, col) {
			missing = append(missing, "discussion_settings."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %v\n\nRun 'blogdeck migrate' to add the required columns", missing)
	}

	return nil
}

// Close closes the database connection
func (db *GormDB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetAllBlogs retrieves all blogs with their discussion settings, ordered by name
func (db *GormDB) GetAllBlogs(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog

	err := db.db.WithContext(ctx).
		Preload("Settings").
		Order("name ASC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	return blogs, nil
}

// GetBlog retrieves a single blog with its discussion settings
func (db *GormDB) GetBlog(ctx context.Context, blogID string) (*models.Blog, error) {
	var blog models.Blog
	err := db.db.WithContext(ctx).Preload("Settings").First(&blog, "id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// CreateBlog creates a blog together with its settings, if set
func (db *GormDB) CreateBlog(ctx context.Context, blog *models.Blog) error {
	return db.db.WithContext(ctx).Create(blog).Error
}

// UpsertBlog inserts a blog or refreshes its name, URL and tagline
func (db *GormDB) UpsertBlog(ctx context.Context, blog *models.Blog) error {
	return db.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "url", "tagline", "active_theme_id", "last_updated_at"}),
		}).
		Create(blog).Error
}

// DeleteBlog deletes a blog and its dependent rows
func (db *GormDB) DeleteBlog(ctx context.Context, blogID string) error {
	return db.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Theme{}, "blog_id = ?", blogID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.DiscussionSettings{}, "blog_id = ?", blogID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, "id = ?", blogID).Error
	})
}

// GetDiscussionSettings retrieves the stored discussion settings of a blog
func (db *GormDB) GetDiscussionSettings(ctx context.Context, blogID string) (*models.DiscussionSettings, error) {
	var settings models.DiscussionSettings
	err := db.db.WithContext(ctx).First(&settings, "blog_id = ?", blogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveDiscussionSettings stores payload as the blog's discussion settings
func (db *GormDB) SaveDiscussionSettings(ctx context.Context, blogID string, payload models.DiscussionPayload) error {
	row := &models.DiscussionSettings{BlogID: blogID}
	row.ApplyPayload(payload)

	return db.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "blog_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"comments_allowed", "pingback_inbound_enabled", "pingback_outbound_enabled",
				"comments_require_name_and_email", "comments_require_registration",
				"comments_sort_order", "comments_threading_enabled", "comments_threading_depth",
				"last_updated_at",
			}),
		}).
		Create(row).Error
}

// ListThemes retrieves the themes of a blog in display order
func (db *GormDB) ListThemes(ctx context.Context, blogID string) ([]models.Theme, error) {
	var themes []models.Theme
	err := db.db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&themes).Error
	if err != nil {
		return nil, err
	}
	return themes, nil
}

// UpsertThemes inserts or refreshes the given themes of a blog
func (db *GormDB) UpsertThemes(ctx context.Context, blogID string, themes []models.Theme) error {
	if len(themes) == 0 {
		return nil
	}
	for i := range themes {
		themes[i].BlogID = blogID
	}
	return db.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}, {Name: "blog_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "author", "description", "premium", "sort_order"}),
		}).
		Create(&themes).Error
}

// SetActiveTheme records which theme a blog uses
func (db *GormDB) SetActiveTheme(ctx context.Context, blogID, themeID string) error {
	res := db.db.WithContext(ctx).Model(&models.Blog{}).
		Where("id = ?", blogID).
		Update("active_theme_id", themeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}
