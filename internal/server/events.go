// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server provides the settings REST + WebSocket API. Handlers call
// BlogService directly for reads and writes and broadcast resulting events
// to connected WebSocket clients.
package server

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/blogdeck/blogdeck/internal/logger"
	"github.com/blogdeck/blogdeck/internal/protocol"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetAPILogger()
		log = &l
	})
	return log
}

const eventBufferSize = 256

// EventBroadcaster queues events published by handlers and fans them out to
// all connected WebSocket clients.
type EventBroadcaster struct {
	events  chan protocol.Event
	clients *ClientRegistry
}

// NewEventBroadcaster creates a broadcaster that fans out to clients.
func NewEventBroadcaster(clients *ClientRegistry) *EventBroadcaster {
	return &EventBroadcaster{
		events:  make(chan protocol.Event, eventBufferSize),
		clients: clients,
	}
}

// Publish queues event for broadcast. It never blocks a handler: when the
// queue is full the event is dropped.
func (b *EventBroadcaster) Publish(event protocol.Event) {
	select {
	case b.events <- event:
	default:
		getLog().Warn().Str("event_type", eventType(event)).Msg("Event queue full, dropping event")
	}
}

// Run dispatches queued events until the context is cancelled.
func (b *EventBroadcaster) Run(ctx context.Context) {
	for {
		select {
		case event := <-b.events:
			b.dispatch(event)
		case <-ctx.Done():
			getLog().Info().Msg("Event broadcaster stopped (context cancelled)")
			return
		}
	}
}

func (b *EventBroadcaster) dispatch(event protocol.Event) {
	if b.clients != nil {
		b.clients.Broadcast(event)
	}
}
