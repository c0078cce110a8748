// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogdeck/blogdeck/internal/database"
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
	"github.com/blogdeck/blogdeck/internal/services"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	broadcaster *EventBroadcaster
	blogs       *services.BlogService
}

// NewHandlers creates the handler set.
func NewHandlers(broadcaster *EventBroadcaster, blogs *services.BlogService) *Handlers {
	return &Handlers{broadcaster: broadcaster, blogs: blogs}
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		getLog().Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	body := protocol.ErrorEvent{
		Metadata: protocol.NewMetadata(GetRequestID(r.Context())),
		Message:  message,
	}
	if err != nil {
		body.Context = err.Error()
	}
	writeJSON(w, status, body)
}

// loadBlog resolves the {id} URL parameter, answering 404 or 500 itself.
func (h *Handlers) loadBlog(w http.ResponseWriter, r *http.Request) (*models.Blog, bool) {
	blog, err := h.blogs.GetBlog(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, database.ErrBlogNotFound) {
		writeError(w, r, http.StatusNotFound, "Blog not found", nil)
		return nil, false
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to load blog", err)
		return nil, false
	}
	return blog, true
}

// --- GET handlers ---

// GetBlogs handles GET /api/v1/blogs
func (h *Handlers) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogs.LoadBlogs(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to load blogs", err)
		return
	}
	writeJSON(w, http.StatusOK, protocol.BlogsLoadedEvent{
		Metadata: protocol.NewMetadata(GetRequestID(r.Context())),
		Blogs:    blogs,
	})
}

// GetDiscussionSettings handles GET /api/v1/blogs/{id}/settings/discussion
func (h *Handlers) GetDiscussionSettings(w http.ResponseWriter, r *http.Request) {
	blog, ok := h.loadBlog(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, protocol.DiscussionSettingsEvent{
		Metadata: protocol.NewMetadata(GetRequestID(r.Context())),
		BlogID:   blog.ID,
		Settings: blog.Settings.Payload(),
	})
}

// GetThemes handles GET /api/v1/blogs/{id}/themes
func (h *Handlers) GetThemes(w http.ResponseWriter, r *http.Request) {
	blog, ok := h.loadBlog(w, r)
	if !ok {
		return
	}
	themes, err := h.blogs.ListThemes(r.Context(), blog.ID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to load themes", err)
		return
	}
	if themes == nil {
		themes = []models.Theme{}
	}
	writeJSON(w, http.StatusOK, protocol.ThemesLoadedEvent{
		Metadata:      protocol.NewMetadata(GetRequestID(r.Context())),
		BlogID:        blog.ID,
		ActiveThemeID: blog.ActiveThemeID,
		Themes:        themes,
	})
}

// --- PUT/POST handlers ---

// UpdateDiscussionSettings handles PUT /api/v1/blogs/{id}/settings/discussion
func (h *Handlers) UpdateDiscussionSettings(w http.ResponseWriter, r *http.Request) {
	blog, ok := h.loadBlog(w, r)
	if !ok {
		return
	}

	var payload models.DiscussionPayload
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	if errs := validatePayload(payload); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, protocol.ErrorEvent{
			Metadata: protocol.NewMetadata(GetRequestID(r.Context())),
			Message:  "Invalid settings",
			Fields:   fieldErrorMap(errs),
		})
		return
	}

	if err := h.blogs.UpdateSettingsForBlog(r.Context(), blog.ID, payload); err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to store settings", err)
		return
	}

	event := protocol.SettingsUpdatedEvent{
		Metadata: protocol.NewMetadata(GetRequestID(r.Context())),
		Type:     protocol.EventSettingsUpdated,
		BlogID:   blog.ID,
		Settings: payload,
	}
	h.broadcaster.Publish(event)
	writeJSON(w, http.StatusOK, event)
}

// createBlogRequest is the JSON body for blog creation.
type createBlogRequest struct {
	Name    string `json:"name" validate:"required"`
	URL     string `json:"url" validate:"required"`
	Tagline string `json:"tagline"`
}

// CreateBlog handles POST /api/v1/blogs
func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var body createBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if errs := validatePayload(body); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, protocol.ErrorEvent{
			Metadata: protocol.NewMetadata(GetRequestID(r.Context())),
			Message:  "Invalid blog",
			Fields:   fieldErrorMap(errs),
		})
		return
	}

	blog, err := h.blogs.CreateBlog(r.Context(), body.Name, body.URL, body.Tagline)
	if errors.Is(err, services.ErrInvalidBlog) {
		writeError(w, r, http.StatusBadRequest, "Invalid blog", err)
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "Failed to create blog", err)
		return
	}

	h.broadcaster.Publish(protocol.BlogCreatedEvent{
		Metadata: protocol.NewMetadata(GetRequestID(r.Context())),
		Type:     protocol.EventBlogCreated,
		Blog:     blog,
	})
	writeJSON(w, http.StatusCreated, blog)
}

// Healthz handles GET /healthz
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
