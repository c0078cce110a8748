// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package protocol

// Metadata contains common fields for every message the settings API sends.
type Metadata struct {
	// RequestID correlates a response or broadcast with the request that caused it.
	// Optional - broadcasts not caused by a request leave it empty
	RequestID string `json:"request_id,omitempty"`

	// Version indicates the protocol version for backward compatibility.
	// Format: "v{major}.{minor}.{patch}" (e.g., "v1.0.0")
	Version string `json:"version"`
}

// CurrentProtocolVersion defines the current version of the protocol.
// This should be updated when making breaking changes to the protocol.
const CurrentProtocolVersion = "v1.0.0"

// Event represents anything the settings API can send to a client.
type Event interface {
	GetMetadata() Metadata
}

// NewMetadata returns metadata stamped with the current protocol version.
func NewMetadata(requestID string) Metadata {
	return Metadata{RequestID: requestID, Version: CurrentProtocolVersion}
}
