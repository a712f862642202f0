package memory

import (
	"context"

	"github.com/nguyentranbao-ct/team-chat/internal/models"
)

type ThreadRepo struct {
	store *Store
}

func NewThreadRepository(store *Store) ThreadRepository {
	return &ThreadRepo{store: store}
}

// Create registers a thread under its channel. The creator is the first
// participant; message count starts at zero and last activity at the
// creation time.
func (r *ThreadRepo) Create(ctx context.Context, thread *models.Thread) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.channels[thread.ChannelID]
	if !ok {
		return models.NewNotFound("channel", thread.ChannelID)
	}

	if thread.ID == "" {
		thread.ID = s.newID()
	}
	thread.CreatedAt = s.now()
	thread.LastActivity = thread.CreatedAt
	thread.MessageCount = 0
	thread.Participants = []string{thread.CreatedBy}

	ts := &threadState{channelID: thread.ChannelID, thread: cloneThread(*thread)}
	cs.threads = append(cs.threads, ts)
	s.threadIndex[thread.ID] = ts
	return nil
}

func (r *ThreadRepo) GetByID(ctx context.Context, id string) (*models.Thread, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, ok := s.threadIndex[id]
	if !ok {
		return nil, models.NewNotFound("thread", id)
	}
	th := cloneThread(ts.thread)
	return &th, nil
}

// ListByChannel returns a channel's threads in creation order. Callers that
// want activity ordering sort on their side; the store deliberately does not
// reorder threads when new messages arrive.
func (r *ThreadRepo) ListByChannel(ctx context.Context, channelID string) ([]models.Thread, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cs, ok := s.channels[channelID]
	if !ok {
		return nil, models.NewNotFound("channel", channelID)
	}
	threads := make([]models.Thread, 0, len(cs.threads))
	for _, ts := range cs.threads {
		threads = append(threads, cloneThread(ts.thread))
	}
	return threads, nil
}
