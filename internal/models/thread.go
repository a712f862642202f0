package models

import "time"

// Thread is a titled conversation inside a channel. MessageCount always
// equals the number of messages appended to the thread, and Participants
// grows as distinct authors send into it. Threads are only removed through
// the owning channel's cascade delete.
type Thread struct {
	ID             string    `json:"id"`
	ChannelID      string    `json:"channel_id"`
	Title          string    `json:"title" validate:"required"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by"`
	MessageCount   int       `json:"message_count"`
	LastActivity   time.Time `json:"last_activity"`
	Participants   []string  `json:"participants"`
	IsAISummarized bool      `json:"is_ai_summarized,omitempty"`
}
