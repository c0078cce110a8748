// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog represents the GORM model for a blog (site).
type Blog struct {
	ID            string    `gorm:"primaryKey;type:text" json:"id"`
	Name          string    `gorm:"not null;type:text" json:"name"`
	URL           string    `gorm:"type:text;uniqueIndex" json:"url"`
	Tagline       string    `gorm:"type:text" json:"tagline"`
	ActiveThemeID string    `gorm:"type:text" json:"active_theme_id"`
	LastUpdatedAt time.Time `gorm:"autoUpdateTime" json:"last_updated_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Settings *DiscussionSettings `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"settings,omitempty"`
	Themes   []Theme             `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE" json:"themes,omitempty"`
}

// TableName returns the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}

// BeforeCreate is a GORM hook that runs before creating a record
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.LastUpdatedAt.IsZero() {
		b.LastUpdatedAt = now
	}
	return nil
}

// DisplayName returns the blog name, falling back to its URL.
func (b *Blog) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.URL
}

// Theme is a theme installed on (or available to) a blog.
type Theme struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	BlogID      string    `gorm:"primaryKey;type:text;index" json:"blog_id"`
	Name        string    `gorm:"not null;type:text" json:"name"`
	Author      string    `gorm:"type:text" json:"author"`
	Description string    `gorm:"type:text" json:"description"`
	Premium     bool      `json:"premium"`
	Order       int       `gorm:"column:sort_order" json:"order"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for Theme
func (Theme) TableName() string {
	return "themes"
}
