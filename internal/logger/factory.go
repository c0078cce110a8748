// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters that map directly to config.yaml log.levels
// These ensure consistent logger names across the codebase

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetDatabaseLogger returns a logger for database operations
func GetDatabaseLogger() zerolog.Logger {
	return GetLogger("database")
}

// GetSyncLogger returns a logger for settings persistence
func GetSyncLogger() zerolog.Logger {
	return GetLogger("sync")
}

// GetRemoteLogger returns a logger for the settings API client
func GetRemoteLogger() zerolog.Logger {
	return GetLogger("remote")
}

// GetAPILogger returns a logger for the settings API server
func GetAPILogger() zerolog.Logger {
	return GetLogger("api")
}
