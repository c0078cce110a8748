// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package remote is the HTTP client for the blogdeck settings API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/protocol"
	"github.com/blogdeck/blogdeck/internal/telemetry"
)

// RequestIDHeader carries the correlation ID of every request.
const RequestIDHeader = "X-Request-ID"

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("settings API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("settings API returned status %d: %s", e.StatusCode, e.Message)
}

// NotFound reports whether the API answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client talks to a settings API.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	tracer  trace.Tracer
	log     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer replaces the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a client for cfg.BaseURL.
func NewClient(cfg config.RemoteConfig, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("remote base URL is empty")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid remote base URL %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: base,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
		tracer:  telemetry.Tracer(),
		log:     logger.GetRemoteLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListBlogs fetches every blog the API knows about.
func (c *Client) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	var out protocol.BlogsLoadedEvent
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs", "", nil, &out); err != nil {
		return nil, errors.Wrap(err, "list blogs")
	}
	return out.Blogs, nil
}

// GetDiscussionSettings fetches the discussion settings of a blog.
func (c *Client) GetDiscussionSettings(ctx context.Context, blogID string) (models.DiscussionPayload, error) {
	var out protocol.DiscussionSettingsEvent
	if err := c.do(ctx, http.MethodGet, settingsPath(blogID), blogID, nil, &out); err != nil {
		return models.DiscussionPayload{}, errors.Wrapf(err, "get discussion settings for blog %s", blogID)
	}
	return out.Settings, nil
}

// UpdateDiscussionSettings replaces the discussion settings of a blog.
func (c *Client) UpdateDiscussionSettings(ctx context.Context, blogID string, payload models.DiscussionPayload) error {
	if err := c.do(ctx, http.MethodPut, settingsPath(blogID), blogID, payload, nil); err != nil {
		return errors.Wrapf(err, "update discussion settings for blog %s", blogID)
	}
	return nil
}

// ListThemes fetches the themes of a blog.
func (c *Client) ListThemes(ctx context.Context, blogID string) (protocol.ThemesLoadedEvent, error) {
	var out protocol.ThemesLoadedEvent
	if err := c.do(ctx, http.MethodGet, "/api/v1/blogs/"+url.PathEscape(blogID)+"/themes", blogID, nil, &out); err != nil {
		return protocol.ThemesLoadedEvent{}, errors.Wrapf(err, "list themes for blog %s", blogID)
	}
	return out, nil
}

func settingsPath(blogID string) string {
	return "/api/v1/blogs/" + url.PathEscape(blogID) + "/settings/discussion"
}

func (c *Client) do(ctx context.Context, method, path, blogID string, in, out interface{}) (err error) {
	requestID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, "remote "+method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
		attribute.String("blogdeck.request_id", requestID),
	)
	if blogID != "" {
		span.SetAttributes(attribute.String("blogdeck.blog_id", blogID))
	}
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Settings API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp, requestID)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func decodeAPIError(resp *http.Response, requestID string) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: requestID}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var body protocol.ErrorEvent
	if json.Unmarshal(data, &body) == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Fields = body.Fields
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(data))
	return apiErr
}
