// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package services

import (
	"context"
	"sync"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
)

type fakeRemote struct {
	mu       sync.Mutex
	blogs    []*models.Blog
	settings map[string]models.DiscussionPayload
	themes   map[string]protocol.ThemesLoadedEvent
	updates  []string
	err      error
	failFor  map[string]error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		settings: map[string]models.DiscussionPayload{},
		themes:   map[string]protocol.ThemesLoadedEvent{},
		failFor:  map[string]error{},
	}
}

func (f *fakeRemote) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	return f.blogs, f.err
}

func (f *fakeRemote) GetDiscussionSettings(ctx context.Context, blogID string) (models.DiscussionPayload, error) {
	if err := f.failFor[blogID]; err != nil {
		return models.DiscussionPayload{}, err
	}
	return f.settings[blogID], nil
}

func (f *fakeRemote) UpdateDiscussionSettings(ctx context.Context, blogID string, payload models.DiscussionPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, blogID)
	f.settings[blogID] = payload
	return nil
}

func (f *fakeRemote) ListThemes(ctx context.Context, blogID string) (protocol.ThemesLoadedEvent, error) {
	return f.themes[blogID], nil
}

type updateCall struct {
	BlogID  string
	Payload models.DiscussionPayload
}

// recordingUpdater records every update and answers with err.
type recordingUpdater struct {
	mu      sync.Mutex
	calls   []updateCall
	err     error
	release chan struct{}
}

func (r *recordingUpdater) UpdateSettingsForBlog(ctx context.Context, blogID string, payload models.DiscussionPayload) error {
	if r.release != nil {
		<-r.release
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, updateCall{BlogID: blogID, Payload: payload})
	return r.err
}

func (r *recordingUpdater) Calls() []updateCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]updateCall(nil), r.calls...)
}
