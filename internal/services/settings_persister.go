// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/models"
)

// DefaultSaveTimeout bounds a single save when no timeout is configured.
const DefaultSaveTimeout = 30 * time.Second

// SavedFunc is called after a save succeeded. It runs on the save goroutine.
type SavedFunc func(blogID string, revision uint64)

// SettingsPersister saves discussion settings when the settings screen is left.
//
// Saves are fire-and-forget: each one runs on its own goroutine against a
// snapshot of the settings, is attempted once, and a failure is only logged.
type SettingsPersister struct {
	updater SettingsUpdater
	timeout time.Duration
	log     zerolog.Logger

	mu      sync.Mutex
	onSaved SavedFunc

	wg sync.WaitGroup
}

// PersisterOption customizes a SettingsPersister.
type PersisterOption func(*SettingsPersister)

// WithSaveTimeout bounds each save.
func WithSaveTimeout(d time.Duration) PersisterOption {
	return func(p *SettingsPersister) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithPersisterLogger replaces the sync logger.
func WithPersisterLogger(l zerolog.Logger) PersisterOption {
	return func(p *SettingsPersister) { p.log = l }
}

// NewSettingsPersister creates a persister writing through updater.
func NewSettingsPersister(updater SettingsUpdater, opts ...PersisterOption) *SettingsPersister {
	p := &SettingsPersister{
		updater: updater,
		timeout: DefaultSaveTimeout,
		log:     logger.GetSyncLogger().With().Str("component", "persister").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnSaved sets the success callback.
func (p *SettingsPersister) OnSaved(fn SavedFunc) {
	p.mu.Lock()
	p.onSaved = fn
	p.mu.Unlock()
}

func (p *SettingsPersister) savedFunc() SavedFunc {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.onSaved
}

// SaveIfNeeded issues one asynchronous save when s has unsaved changes and
// reports whether it did. It never blocks on the save.
func (p *SettingsPersister) SaveIfNeeded(s *models.DiscussionSettings) bool {
	if s == nil || !s.HasChanges() {
		return false
	}

	blogID := s.BlogID
	revision := s.Revision()
	payload := s.Payload()

	p.wg.Add(1)
	go p.save(blogID, revision, payload)
	return true
}

func (p *SettingsPersister) save(blogID string, revision uint64, payload models.DiscussionPayload) {
	defer p.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	start := time.Now()
	err := p.updater.UpdateSettingsForBlog(ctx, blogID, payload)
	settingsSaveDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		settingsSaves.WithLabelValues(outcomeFailed).Inc()
		p.log.Error().Err(err).Str("blog_id", blogID).Msg("Error while persisting settings")
		return
	}

	settingsSaves.WithLabelValues(outcomeSucceeded).Inc()
	p.log.Debug().Str("blog_id", blogID).Uint64("revision", revision).Msg("Settings persisted")

	if fn := p.savedFunc(); fn != nil {
		fn(blogID, revision)
	}
}

// Wait blocks until every issued save has finished.
func (p *SettingsPersister) Wait() {
	p.wg.Wait()
}
