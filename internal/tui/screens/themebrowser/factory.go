// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package themebrowser

import (
	"fmt"

	"github.com/blogdeck/blogdeck/internal/models"
	"github.com/blogdeck/blogdeck/internal/tui/templates"
)

const (
	// TemplateName is the UI template the browser is built from.
	TemplateName = "ThemeBrowser"
	// Kind is the screen kind the template's initial screen must name.
	Kind = "themebrowser"
)

// Register makes the browser constructible by the loader.
func Register(loader *templates.Loader, source ThemeSource) {
	loader.Register(Kind, func(t templates.Template) templates.Screen {
		return NewModel(t, source)
	})
}

// Factory builds configured theme browsers.
type Factory struct {
	loader *templates.Loader
}

// NewFactory checks that the ThemeBrowser template exists and can be
// instantiated. A failure here is a packaging error and should stop startup.
func NewFactory(loader *templates.Loader) (*Factory, error) {
	if _, err := loader.InstantiateInitialScreen(TemplateName); err != nil {
		return nil, fmt.Errorf("theme browser unavailable: %w", err)
	}
	return &Factory{loader: loader}, nil
}

// Create returns a browser configured for blog. It panics if the template's
// initial screen is not a theme browser.
func (f *Factory) Create(blog *models.Blog) Model {
	m := templates.MustInstantiate[Model](f.loader, TemplateName)
	m.Configure(blog)
	return m
}
