// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package templates holds the named UI templates shipped with the binary and
// builds the initial screen each one names.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/blogdeck/blogdeck/internal/tui/layout"
)

//go:embed ui/*.yaml
var embedded embed.FS

var (
	// ErrTemplateNotFound is returned for a template name no document declares.
	ErrTemplateNotFound = errors.New("ui template not found")
	// ErrScreenNotRegistered is returned when a template's initial screen kind has no constructor.
	ErrScreenNotRegistered = errors.New("screen kind not registered")
)

// Screen is what a template instantiates.
type Screen = tea.Model

// Constructor builds a screen of one kind from the template that names it.
type Constructor func(t Template) Screen

// Template is one named UI template.
type Template struct {
	Name          string     `yaml:"name"`
	InitialScreen string     `yaml:"initial_screen"`
	Title         string     `yaml:"title"`
	Breadcrumb    string     `yaml:"breadcrumb"`
	Help          []HelpItem `yaml:"help"`
}

// HelpItem is a help bar entry.
type HelpItem struct {
	Key         string `yaml:"key"`
	Description string `yaml:"description"`
}

// HelpItems converts the template's help bar for the layout package.
func (t Template) HelpItems() []layout.HelpItem {
	items := make([]layout.HelpItem, 0, len(t.Help))
	for _, h := range t.Help {
		items = append(items, layout.HelpItem{Key: h.Key, Description: h.Description})
	}
	return items
}

// Loader resolves templates by name and instantiates their initial screens.
type Loader struct {
	mu           sync.RWMutex
	templates    map[string]Template
	constructors map[string]Constructor
}

// NewLoader loads the templates embedded in the binary.
func NewLoader() (*Loader, error) {
	return NewLoaderFromFS(embedded, "ui")
}

// NewLoaderFromFS loads every .yaml document in dir of fsys.
func NewLoaderFromFS(fsys fs.FS, dir string) (*Loader, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	l := &Loader{
		templates:    make(map[string]Template),
		constructors: make(map[string]Constructor),
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		file := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", file, err)
		}

		var t Template
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
		}
		if t.Name == "" || t.InitialScreen == "" {
			return nil, fmt.Errorf("template %s: name and initial_screen are required", file)
		}
		if _, dup := l.templates[t.Name]; dup {
			return nil, fmt.Errorf("template %s: duplicate name %q", file, t.Name)
		}
		l.templates[t.Name] = t
	}
	return l, nil
}

// Register binds a screen kind to its constructor. A later registration of
// the same kind replaces the earlier one.
func (l *Loader) Register(kind string, c Constructor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.constructors[kind] = c
}

// Template returns the template called name.
func (l *Loader) Template(name string) (Template, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return t, nil
}

// InstantiateInitialScreen builds the initial screen of the template called name.
func (l *Loader) InstantiateInitialScreen(name string) (Screen, error) {
	t, err := l.Template(name)
	if err != nil {
		return nil, err
	}

	l.mu.RLock()
	c, ok := l.constructors[t.InitialScreen]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s (template %s)", ErrScreenNotRegistered, t.InitialScreen, name)
	}
	return c(t), nil
}

// MustInstantiate builds the initial screen of the template called name and
// returns it as T. A missing template, an unregistered kind or a constructor
// returning another type is a packaging error and panics.
func MustInstantiate[T Screen](l *Loader, name string) T {
	screen, err := l.InstantiateInitialScreen(name)
	if err != nil {
		panic(fmt.Sprintf("ui template %s: %v", name, err))
	}
	typed, ok := screen.(T)
	if !ok {
		var want T
		panic(fmt.Sprintf("ui template %s: initial screen is %T, want %T", name, screen, want))
	}
	return typed
}
