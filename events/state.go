package events

import "time"

// ConnectionState is the lifecycle state of the stream connection.
// It is owned by the stream manager; folds never touch it.
type ConnectionState string

const (
	StateDisconnected ConnectionState = "disconnected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
	StateError        ConnectionState = "error"
)

// GenerationStatus tracks one generation family's progress.
type GenerationStatus string

const (
	GenerationNone      GenerationStatus = ""
	GenerationRunning   GenerationStatus = "generating"
	GenerationCompleted GenerationStatus = "completed"
	GenerationFailed    GenerationStatus = "failed"
)

// QueueItemStatus is the status bucket of a queue entry.
type QueueItemStatus string

const (
	QueuePending    QueueItemStatus = "pending"
	QueueProcessing QueueItemStatus = "processing"
	QueueCompleted  QueueItemStatus = "completed"
	QueueFailed     QueueItemStatus = "failed"
)

// ServerInfo is the metadata the server sends when the stream opens.
type ServerInfo struct {
	ClientID        string
	ProtocolVersion string
}

// PingStatus retains the most recent keep-alive.
type PingStatus struct {
	LastServerTime time.Time
	Count          int
}

// LLMGeneration is the last-value slot for the text generation family.
// Tokens is nil until the first progress update arrives.
type LLMGeneration struct {
	ID     string
	Status GenerationStatus
	Tokens *int
	Result string
	Error  string
}

// ImageGeneration is the last-value slot for the image generation family.
// ElapsedSeconds is nil until the first progress update arrives.
type ImageGeneration struct {
	ID             string
	Status         GenerationStatus
	ElapsedSeconds *float64
	ImageURL       string
	Error          string
}

// QueueItem is one entry of the latest queue snapshot.
type QueueItem struct {
	ID     string
	Kind   string
	Status QueueItemStatus
}

// QueueSnapshot is the last full queue list received.
type QueueSnapshot struct {
	Items []QueueItem
}

// State is the merged stream state: one named slot per tracked event
// kind plus connection metadata. Each slot holds the most recently
// folded value for its event family and changes only when a matching
// event arrives. The manager replaces the whole value atomically, so a
// copy handed to a subscriber is never torn.
type State struct {
	Connection      ConnectionState
	ConnectionError string
	LastActivity    time.Time

	Server ServerInfo
	Ping   PingStatus
	LLM    LLMGeneration
	Image  ImageGeneration
	Queue  QueueSnapshot
}

// NewState returns the initial state consumers can read before any
// event arrives.
func NewState() State {
	return State{Connection: StateDisconnected}
}
