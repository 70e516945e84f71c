package api

import "time"

// Card is one card in the player's collection.
type Card struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rarity      string    `json:"rarity"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CardList is one page of the collection.
type CardList struct {
	Cards    []Card `json:"cards"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// GenerationRequest asks the backend to generate card content.
// Kind is "llm" or "image"; progress arrives over the event stream.
type GenerationRequest struct {
	Kind   string `json:"kind"`
	Prompt string `json:"prompt"`
}

// GenerationAccepted acknowledges a queued generation request.
type GenerationAccepted struct {
	ID            string `json:"id"`
	QueuePosition int    `json:"queue_position"`
}

// QueueItem is one queue entry as the REST endpoint reports it, the
// same shape the queue.update stream event carries.
type QueueItem struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

// QueueItems is the point-in-time queue read.
type QueueItems struct {
	Items []QueueItem `json:"items"`
}
