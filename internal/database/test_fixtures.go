// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/config"
)

// DatabaseFixture represents a database setup with cleanup
type DatabaseFixture struct {
	DB      *GormDB
	Cleanup func()
}

// UseFreshDatabase creates a SQLite database in the test's temp dir with
// AutoMigrate applied. Each call gets its own file, so tests never share state.
func UseFreshDatabase(t *testing.T) *DatabaseFixture {
	cfg := &config.DatabaseConfig{
		Driver:   "sqlite",
		Database: filepath.Join(t.TempDir(), "blogdeck-test.db"),
	}

	db, err := NewGormDB(cfg)
	require.NoError(t, err, "Failed to create test database")

	err = db.AutoMigrate()
	require.NoError(t, err, "Failed to run migrations on test database")

	return &DatabaseFixture{
		DB: db,
		Cleanup: func() {
			db.Close()
		},
	}
}
