// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package chrome

import "sync"

// KeyboardObserver is told whenever the on-screen keyboard is shown or hidden.
// In the terminal the keyboard is shown while a form field has focus.
type KeyboardObserver func(visible bool)

// KeyboardCenter tracks keyboard visibility for the whole program and fans
// changes out to observers. One center is shared by every screen.
type KeyboardCenter struct {
	mu        sync.Mutex
	visible   bool
	nextID    int
	observers map[int]KeyboardObserver
}

// NewKeyboardCenter returns a center with the keyboard hidden.
func NewKeyboardCenter() *KeyboardCenter {
	return &KeyboardCenter{observers: make(map[int]KeyboardObserver)}
}

// Observe registers fn until the returned Subscription is released.
func (c *KeyboardCenter) Observe(fn KeyboardObserver) *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return &Subscription{center: c, id: id}
}

// SetVisible records the keyboard state and notifies observers on change.
// Observers run on the caller's goroutine after the lock is released.
func (c *KeyboardCenter) SetVisible(visible bool) {
	c.mu.Lock()
	if c.visible == visible {
		c.mu.Unlock()
		return
	}
	c.visible = visible
	observers := make([]KeyboardObserver, 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(visible)
	}
}

// Visible reports the current keyboard state.
func (c *KeyboardCenter) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Observers returns the number of live subscriptions.
func (c *KeyboardCenter) Observers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.observers)
}

func (c *KeyboardCenter) remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.observers, id)
}

// Subscription ties an observer to the center. Release is idempotent.
type Subscription struct {
	center *KeyboardCenter
	id     int
	once   sync.Once
}

// Release stops delivery to the observer.
func (s *Subscription) Release() {
	s.once.Do(func() {
		s.center.remove(s.id)
	})
}
