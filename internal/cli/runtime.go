// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/remote"
	"github.com/blogdeck/blogdeck/internal/services"
	"github.com/blogdeck/blogdeck/internal/telemetry"
)

// runtime is the process-wide state every subcommand starts from.
type runtime struct {
	cfg             *config.AppConfig
	log             zerolog.Logger
	shutdownTracing telemetry.ShutdownFunc
}

func bootstrap(ctx context.Context, opts *globalOptions) (*runtime, error) {
	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	return &runtime{
		cfg:             cfg,
		log:             logger.GetLogger("cli"),
		shutdownTracing: shutdown,
	}, nil
}

// close flushes traces and log files. Errors are logged, not returned.
func (r *runtime) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if r.shutdownTracing != nil {
		if err := r.shutdownTracing(ctx); err != nil {
			r.log.Warn().Err(err).Msg("Failed to flush traces")
		}
	}
	_ = logger.CloseGlobal()
}

// openBlogService connects to the local store, and to the settings API when
// remote.base_url is configured.
func (r *runtime) openBlogService() (*services.BlogService, error) {
	var rc services.RemoteClient
	if r.cfg.Remote.BaseURL != "" {
		client, err := remote.NewClient(r.cfg.Remote)
		if err != nil {
			return nil, fmt.Errorf("failed to create settings API client: %w", err)
		}
		rc = client
	}

	blogs, err := services.NewBlogService(r.cfg, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to open blog store: %w", err)
	}
	return blogs, nil
}
