// Package memory holds all chat state in process. The service keeps no
// durable backend: channels, threads, messages, reactions, and the user
// directory live in a single Store guarded by one RWMutex. Mutations run in
// one critical section covering every side effect of the operation, so a
// reader never observes an appended message without its thread and channel
// metadata, or a half-applied cascade delete.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
)

type Store struct {
	mu sync.RWMutex

	now   func() time.Time
	newID func() string

	channels     map[string]*channelState
	channelOrder []string
	threadIndex  map[string]*threadState
	users        map[string]*models.User
	userOrder    []string
}

type channelState struct {
	channel models.Channel
	threads []*threadState // creation order
}

type threadState struct {
	channelID string
	thread    models.Thread
	messages  []*models.Message // arrival order
}

type Option func(*Store)

// WithClock overrides the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id generation, for deterministic tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		newID:       uuid.NewString,
		channels:    make(map[string]*channelState),
		threadIndex: make(map[string]*threadState),
		users:       make(map[string]*models.User),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// findMessage walks a thread's log for a message id. Callers hold s.mu.
func (ts *threadState) findMessage(messageID string) *models.Message {
	for _, msg := range ts.messages {
		if msg.ID == messageID {
			return msg
		}
	}
	return nil
}

// lookupMessage resolves a message id across all threads. Callers hold s.mu.
func (s *Store) lookupMessage(messageID string) (*threadState, *models.Message) {
	for _, ts := range s.threadIndex {
		if msg := ts.findMessage(messageID); msg != nil {
			return ts, msg
		}
	}
	return nil, nil
}

func cloneChannel(ch models.Channel) models.Channel {
	if ch.LastMessage != nil {
		last := *ch.LastMessage
		ch.LastMessage = &last
	}
	return ch
}

func cloneThread(th models.Thread) models.Thread {
	th.Participants = append([]string(nil), th.Participants...)
	return th
}

func cloneMessage(msg models.Message) models.Message {
	msg.Mentions = append([]string(nil), msg.Mentions...)
	msg.MentionUserIDs = append([]string(nil), msg.MentionUserIDs...)
	msg.Attachments = append([]models.Attachment(nil), msg.Attachments...)
	msg.Reactions = append([]models.Reaction(nil), msg.Reactions...)
	if msg.EditedAt != nil {
		edited := *msg.EditedAt
		msg.EditedAt = &edited
	}
	return msg
}

func cloneUser(u models.User) models.User {
	if u.LastSeen != nil {
		seen := *u.LastSeen
		u.LastSeen = &seen
	}
	return u
}
