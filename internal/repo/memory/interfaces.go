package memory

import (
	"context"

	"github.com/nguyentranbao-ct/team-chat/internal/models"
)

// ChannelRepository owns channel lifecycle and the per-channel unread counter.
type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	GetByID(ctx context.Context, id string) (*models.Channel, error)
	Delete(ctx context.Context, id string) error
	MarkRead(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Channel, error)
	ListByType(ctx context.Context, channelType models.ChannelType) ([]models.Channel, error)
}

// ThreadRepository owns threads within channels. Thread metadata driven by
// message appends (count, activity, participants) is maintained by the
// message append itself, never by callers.
type ThreadRepository interface {
	Create(ctx context.Context, thread *models.Thread) error
	GetByID(ctx context.Context, id string) (*models.Thread, error)
	ListByChannel(ctx context.Context, channelID string) ([]models.Thread, error)
}

// MessageRepository owns the append-only message log per thread and the
// reaction set per message.
type MessageRepository interface {
	Append(ctx context.Context, message *models.Message) error
	ListByThread(ctx context.Context, threadID string) ([]models.Message, error)
	ToggleReaction(ctx context.Context, messageID, userID, userName, emoji string) (*models.Message, error)
}

// UserRepository is the identity directory.
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error)
}

// Searcher scans the message corpus for substring matches.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}
