// Package events contains event contract definitions for WebSocket
// communication in the GrowDash dashboard.
package events

import (
	"time"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Data messages - sent when the cached dataset changes
	MessageTypeDataReloaded MessageType = "data:reloaded"

	// Connection messages
	MessageTypeConnect    MessageType = "connect"
	MessageTypeDisconnect MessageType = "disconnect"
	MessageTypeError      MessageType = "error"
)

// WebSocketMessage represents a complete WebSocket message
type WebSocketMessage struct {
	ID        string      `json:"id,omitempty"`
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	TraceID   string      `json:"trace_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// DataReloaded is the payload for MessageTypeDataReloaded. Open
// dashboards refetch their views when they receive it.
type DataReloaded struct {
	EnvironmentRows int       `json:"environment_rows"`
	GrowthRows      int       `json:"growth_rows"`
	Schools         int       `json:"schools"`
	LoadedAt        time.Time `json:"loaded_at"`
}

// ConnectionStatus is the payload sent to a client right after it
// registers with the hub.
type ConnectionStatus struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	ClientID string `json:"client_id"`
}
