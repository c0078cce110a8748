// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/services"
	"github.com/blogdeck/blogdeck/internal/tui/chrome"
	"github.com/blogdeck/blogdeck/internal/tui/messages"
	"github.com/blogdeck/blogdeck/internal/tui/screens/sitecreation"
	"github.com/blogdeck/blogdeck/internal/tui/screens/themebrowser"
	"github.com/blogdeck/blogdeck/internal/tui/templates"
)

// NewDeps wires the screens' collaborators and resolves the UI templates.
// A missing template or screen kind is reported here, before the program starts.
func NewDeps(blogs BlogStore, saver SettingsSaver) (Deps, error) {
	loader, err := templates.NewLoader()
	if err != nil {
		return Deps{}, err
	}

	keyboard := chrome.NewKeyboardCenter()
	themebrowser.Register(loader, blogs)
	sitecreation.Register(loader, blogs, keyboard)

	factory, err := themebrowser.NewFactory(loader)
	if err != nil {
		return Deps{}, err
	}
	if _, err := loader.InstantiateInitialScreen(sitecreation.TemplateName); err != nil {
		return Deps{}, fmt.Errorf("site creation unavailable: %w", err)
	}

	return Deps{
		Blogs:     blogs,
		Saver:     saver,
		Templates: loader,
		Themes:    factory,
		Keyboard:  keyboard,
	}, nil
}

// StartTUI initializes and runs the TUI application. It returns once the
// program has exited and every issued settings save has finished.
func StartTUI(cfg config.TUIConfig, blogs *services.BlogService, persister *services.SettingsPersister) error {
	log := logger.GetTUILogger()

	deps, err := NewDeps(blogs, persister)
	if err != nil {
		return fmt.Errorf("failed to prepare screens: %w", err)
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.MouseEvents {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewMainModel(deps), opts...)

	// Saves complete off the UI goroutine; the dirty flag is cleared on it.
	persister.OnSaved(func(blogID string, revision uint64) {
		p.Send(messages.SettingsSavedMsg{BlogID: blogID, Revision: revision})
	})

	final, runErr := p.Run()
	if m, ok := final.(MainModel); ok {
		m.Flush()
	}

	log.Debug().Msg("Waiting for pending settings saves")
	persister.Wait()

	return runErr
}
