package kafka

import "github.com/nguyentranbao-ct/team-chat/internal/models"

// MessageEvent is the envelope published by upstream services when a user
// sends a message through an external surface (mobile push gateway, email
// bridge). Only "message.sent" events are ingested; every other pattern is
// logged and ignored.
type MessageEvent struct {
	Pattern string           `json:"pattern"`
	Data    MessageEventData `json:"data"`
}

type MessageEventData struct {
	ThreadID    string              `json:"thread_id"`
	AuthorID    string              `json:"author_id"`
	Body        string              `json:"body"`
	Attachments []models.Attachment `json:"attachments,omitempty"`
}
