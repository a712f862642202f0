package models

import "time"

// Message is an entry in a thread. Messages are append-only: once sent,
// nothing mutates except the reaction list. Author name and avatar are
// denormalized at send time so history keeps its attribution even if the
// directory entry changes later.
type Message struct {
	ID             string       `json:"id"`
	ThreadID       string       `json:"thread_id"`
	AuthorID       string       `json:"author_id"`
	AuthorName     string       `json:"author_name"`
	AuthorAvatar   string       `json:"author_avatar,omitempty"`
	Body           string       `json:"body"`
	Mentions       []string     `json:"mentions,omitempty"`
	MentionUserIDs []string     `json:"mention_user_ids,omitempty"`
	Attachments    []Attachment `json:"attachments,omitempty"`
	Reactions      []Reaction   `json:"reactions,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	EditedAt       *time.Time   `json:"edited_at,omitempty"`
}

// Attachment references binary content stored by an external attachment
// service; only the retrievable URL and descriptive metadata live here.
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}

// Reaction is a (user, emoji) marker on a message. At most one reaction
// exists per (message, user, emoji); toggling the same pair again removes it.
type Reaction struct {
	ID        string    `json:"id"`
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchResult pairs a matched message with the thread and channel it
// belongs to, so callers can render full context without extra lookups.
type SearchResult struct {
	Message Message `json:"message"`
	Thread  Thread  `json:"thread"`
	Channel Channel `json:"channel"`
}
