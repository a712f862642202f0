package memory

import (
	"context"
	"unicode/utf8"

	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/pkg/util"
)

// lastMessageMaxLen is the cut-off for the channel's denormalized
// last-message preview; longer bodies are truncated with an ellipsis.
const lastMessageMaxLen = 50

type MessageRepo struct {
	store *Store
}

func NewMessageRepository(store *Store) MessageRepository {
	return &MessageRepo{store: store}
}

// Append adds a message to the end of its thread's log and applies the two
// downstream effects in the same critical section: the thread's count,
// activity, and participant set, and the owning channel's last-message
// preview and unread counter. Every message delivered to a channel counts
// as unread until an explicit mark-read; viewers are expected to
// acknowledge as they go.
func (r *MessageRepo) Append(ctx context.Context, message *models.Message) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.threadIndex[message.ThreadID]
	if !ok {
		return models.NewNotFound("thread", message.ThreadID)
	}

	if message.ID == "" {
		message.ID = s.newID()
	}
	message.CreatedAt = s.now()
	stored := cloneMessage(*message)
	ts.messages = append(ts.messages, &stored)

	ts.thread.MessageCount++
	ts.thread.LastActivity = stored.CreatedAt
	if !util.SliceIncludes(ts.thread.Participants, stored.AuthorID) {
		ts.thread.Participants = append(ts.thread.Participants, stored.AuthorID)
	}

	cs := s.channels[ts.channelID]
	cs.channel.UnreadCount++
	cs.channel.LastMessage = &models.MessageSummary{
		Content:   truncateBody(stored.Body),
		Timestamp: stored.CreatedAt,
		Author:    stored.AuthorName,
	}
	return nil
}

// ListByThread returns the thread's messages in arrival order. Reaction
// activity never reorders the log.
func (r *MessageRepo) ListByThread(ctx context.Context, threadID string) ([]models.Message, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, ok := s.threadIndex[threadID]
	if !ok {
		return nil, models.NewNotFound("thread", threadID)
	}
	messages := make([]models.Message, 0, len(ts.messages))
	for _, msg := range ts.messages {
		messages = append(messages, cloneMessage(*msg))
	}
	return messages, nil
}

// ToggleReaction flips the (user, emoji) reaction on a message: present
// reactions are removed, absent ones appended with a fresh id. Applying the
// same toggle twice restores the original reaction set. Returns the updated
// message so callers can re-render.
func (r *MessageRepo) ToggleReaction(ctx context.Context, messageID, userID, userName, emoji string) (*models.Message, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, msg := s.lookupMessage(messageID)
	if msg == nil {
		return nil, models.NewNotFound("message", messageID)
	}

	for i, reaction := range msg.Reactions {
		if reaction.UserID == userID && reaction.Emoji == emoji {
			msg.Reactions = append(msg.Reactions[:i], msg.Reactions[i+1:]...)
			updated := cloneMessage(*msg)
			return &updated, nil
		}
	}

	msg.Reactions = append(msg.Reactions, models.Reaction{
		ID:        s.newID(),
		MessageID: messageID,
		UserID:    userID,
		UserName:  userName,
		Emoji:     emoji,
		CreatedAt: s.now(),
	})
	updated := cloneMessage(*msg)
	return &updated, nil
}

// truncateBody counts characters, not bytes, so multibyte text is never
// cut mid-rune.
func truncateBody(body string) string {
	if utf8.RuneCountInString(body) <= lastMessageMaxLen {
		return body
	}
	return string([]rune(body)[:lastMessageMaxLen]) + "..."
}
