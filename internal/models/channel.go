package models

import "time"

type ChannelType string

const (
	ChannelTypeTeam    ChannelType = "team"
	ChannelTypeProject ChannelType = "project"
	ChannelTypeClient  ChannelType = "client"
	ChannelTypePrivate ChannelType = "private"
)

func (t ChannelType) Valid() bool {
	switch t {
	case ChannelTypeTeam, ChannelTypeProject, ChannelTypeClient, ChannelTypePrivate:
		return true
	}
	return false
}

// Channel is a top-level conversation space. It exclusively owns its
// threads; deleting a channel cascades to every thread and message under it.
type Channel struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required"`
	Type        ChannelType     `json:"type" validate:"required"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	CreatedBy   string          `json:"created_by"`
	MemberCount int             `json:"member_count"`
	UnreadCount int             `json:"unread_count"`
	LastMessage *MessageSummary `json:"last_message,omitempty"`
}

// MessageSummary is the denormalized last-message projection kept on a
// channel. It is recomputed on every send and never read back by the
// message store, so it stays a one-way projection rather than a cycle.
type MessageSummary struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}
