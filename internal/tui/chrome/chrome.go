// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chrome is the frame shared by the account and site creation screens:
// a title without breadcrumbs, a help bar that is toggled on demand, and a
// background click that hides the keyboard.
package chrome

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/tui/layout"
)

// HelpToggleKey shows and hides the help bar.
const HelpToggleKey = "f1"

// Chrome is held by pointer so that copies of a screen model share its
// subscriptions.
type Chrome struct {
	title       string
	help        []layout.HelpItem
	helpVisible bool
	keyboardUp  bool

	keyboard      *KeyboardCenter
	subscriptions []*Subscription
}

// New creates the chrome for a screen titled title.
func New(title string, help []layout.HelpItem, keyboard *KeyboardCenter) *Chrome {
	return &Chrome{
		title:    title,
		help:     help,
		keyboard: keyboard,
	}
}

// Appear subscribes to keyboard changes for the time the screen is visible.
// Extra observers are notified in addition to the chrome's own.
func (c *Chrome) Appear(observers ...KeyboardObserver) {
	c.keyboardUp = c.keyboard.Visible()
	c.subscriptions = append(c.subscriptions, c.keyboard.Observe(func(visible bool) {
		c.keyboardUp = visible
	}))
	for _, fn := range observers {
		c.subscriptions = append(c.subscriptions, c.keyboard.Observe(fn))
	}
}

// Teardown releases every subscription taken in Appear and hides the keyboard.
func (c *Chrome) Teardown() {
	for _, s := range c.subscriptions {
		s.Release()
	}
	c.subscriptions = nil
	c.keyboard.SetVisible(false)
}

// ShowKeyboard marks the keyboard as shown, for example when a field gains focus.
func (c *Chrome) ShowKeyboard() { c.keyboard.SetVisible(true) }

// DismissKeyboard hides the keyboard.
func (c *Chrome) DismissKeyboard() { c.keyboard.SetVisible(false) }

// KeyboardVisible reports the state last delivered to this chrome.
func (c *Chrome) KeyboardVisible() bool { return c.keyboardUp }

// HelpVisible reports whether the help bar is expanded.
func (c *Chrome) HelpVisible() bool { return c.helpVisible }

// Handle consumes the messages the chrome owns: the help toggle and a
// background click, which dismisses the keyboard. It reports whether msg was
// consumed.
func (c *Chrome) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == HelpToggleKey {
			c.helpVisible = !c.helpVisible
			return true
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if c.keyboardUp {
				c.DismissKeyboard()
			}
			return true
		}
	}
	return false
}

// LayoutInfo returns the frame for the current state. Breadcrumbs are always
// hidden; the help bar collapses to its toggle unless expanded, and is
// dropped while the keyboard is up.
func (c *Chrome) LayoutInfo(status string) layout.LayoutInfo {
	info := layout.LayoutInfo{
		Title:           c.title,
		HideBreadcrumbs: true,
		Status:          status,
	}
	if c.keyboardUp {
		return info
	}

	info.HelpItems = c.help
	info.HelpCollapsed = !c.helpVisible
	info.HelpToggle = layout.HelpItem{Key: HelpToggleKey, Description: "help"}
	if c.helpVisible {
		info.HelpToggle.Description = "hide help"
	}
	return info
}
