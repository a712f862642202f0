package memory

import (
	"context"

	"github.com/nguyentranbao-ct/team-chat/internal/models"
)

type ChannelRepo struct {
	store *Store
}

func NewChannelRepository(store *Store) ChannelRepository {
	return &ChannelRepo{store: store}
}

// Create registers a new channel, assigning id, creation time, and the
// initial counters. The channel becomes visible to list calls immediately.
func (r *ChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if channel.ID == "" {
		channel.ID = s.newID()
	}
	channel.CreatedAt = s.now()
	channel.MemberCount = 1
	channel.UnreadCount = 0
	channel.LastMessage = nil

	s.channels[channel.ID] = &channelState{channel: *channel}
	s.channelOrder = append(s.channelOrder, channel.ID)
	return nil
}

func (r *ChannelRepo) GetByID(ctx context.Context, id string) (*models.Channel, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	cs, ok := s.channels[id]
	if !ok {
		return nil, models.NewNotFound("channel", id)
	}
	ch := cloneChannel(cs.channel)
	return &ch, nil
}

// Delete removes a channel and cascades to every thread it owns and every
// message (with reactions) in those threads. Irreversible. The write lock
// serializes the cascade against concurrent appends: a send racing the
// delete either lands fully before it or fails with not-found after it.
func (r *ChannelRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.channels[id]
	if !ok {
		return models.NewNotFound("channel", id)
	}

	for _, ts := range cs.threads {
		delete(s.threadIndex, ts.thread.ID)
	}
	delete(s.channels, id)
	for i, chID := range s.channelOrder {
		if chID == id {
			s.channelOrder = append(s.channelOrder[:i], s.channelOrder[i+1:]...)
			break
		}
	}
	return nil
}

// MarkRead resets the unread counter to zero. Unknown ids are a silent
// no-op: the caller may be acknowledging a channel that was deleted from
// under it, which is not worth failing over.
func (r *ChannelRepo) MarkRead(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if cs, ok := s.channels[id]; ok {
		cs.channel.UnreadCount = 0
	}
	return nil
}

// List returns all channels in insertion order.
func (r *ChannelRepo) List(ctx context.Context) ([]models.Channel, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	channels := make([]models.Channel, 0, len(s.channelOrder))
	for _, id := range s.channelOrder {
		channels = append(channels, cloneChannel(s.channels[id].channel))
	}
	return channels, nil
}

// ListByType returns channels of the given type in insertion order.
func (r *ChannelRepo) ListByType(ctx context.Context, channelType models.ChannelType) ([]models.Channel, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var channels []models.Channel
	for _, id := range s.channelOrder {
		if cs := s.channels[id]; cs.channel.Type == channelType {
			channels = append(channels, cloneChannel(cs.channel))
		}
	}
	return channels, nil
}
