package events

import "time"

// Type identifies a wire event. The set of values below is the full
// versioned vocabulary the backend emits.
type Type string

const (
	TypeConnected Type = "connected"
	TypePing      Type = "ping"

	TypeLLMGenerationStarted   Type = "llm.generation.started"
	TypeLLMGenerationUpdate    Type = "llm.generation.update"
	TypeLLMGenerationCompleted Type = "llm.generation.completed"
	TypeLLMGenerationFailed    Type = "llm.generation.failed"

	TypeImageGenerationStarted   Type = "image.generation.started"
	TypeImageGenerationUpdate    Type = "image.generation.update"
	TypeImageGenerationCompleted Type = "image.generation.completed"
	TypeImageGenerationFailed    Type = "image.generation.failed"

	TypeQueueUpdate Type = "queue.update"
)

// Payload is the closed set of decoded event payloads. Only types in
// this package implement it.
type Payload interface {
	isPayload()
}

// ConnectedPayload carries the server's stream-open metadata.
type ConnectedPayload struct {
	ClientID        string `json:"client_id"`
	ProtocolVersion string `json:"protocol_version"`
}

// PingPayload carries the optional server timestamp of a keep-alive.
// Pings are often sent without a data frame at all, in which case the
// payload decodes to its zero value.
type PingPayload struct {
	ServerTime time.Time `json:"server_time"`
}

// GenerationStartedPayload announces a new generation for either family.
type GenerationStartedPayload struct {
	ID string `json:"id"`
}

// GenerationFailedPayload terminates a generation with an error message.
type GenerationFailedPayload struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// LLMProgressPayload is an incremental token-count update.
type LLMProgressPayload struct {
	ID          string `json:"id"`
	TokensSoFar int    `json:"tokens_so_far"`
}

// LLMCompletedPayload carries the finished text result.
type LLMCompletedPayload struct {
	ID     string `json:"id"`
	Result string `json:"result"`
}

// ImageProgressPayload is an incremental elapsed-time update.
type ImageProgressPayload struct {
	ID             string  `json:"id"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// ImageCompletedPayload carries the URL of the finished image.
type ImageCompletedPayload struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// QueueSnapshotPayload is a full snapshot of the generation queue. The
// backend always sends complete lists, never deltas.
type QueueSnapshotPayload struct {
	Items []QueueItemPayload `json:"items"`
}

// QueueItemPayload is one queue entry on the wire.
type QueueItemPayload struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

func (ConnectedPayload) isPayload()         {}
func (PingPayload) isPayload()              {}
func (GenerationStartedPayload) isPayload() {}
func (GenerationFailedPayload) isPayload()  {}
func (LLMProgressPayload) isPayload()       {}
func (LLMCompletedPayload) isPayload()      {}
func (ImageProgressPayload) isPayload()     {}
func (ImageCompletedPayload) isPayload()    {}
func (QueueSnapshotPayload) isPayload()     {}
