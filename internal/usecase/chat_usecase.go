package usecase

import (
	"context"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/nguyentranbao-ct/team-chat/internal/mention"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/internal/repo/memory"
	"github.com/nguyentranbao-ct/team-chat/pkg/util"
)

// ChatUsecase is the single entry point external collaborators use. It
// composes the channel, thread, message, and user stores and exposes the
// full messaging operation set.
type ChatUsecase interface {
	CreateChannel(ctx context.Context, params CreateChannelParams) (*models.Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error
	MarkChannelRead(ctx context.Context, channelID string) error
	ListChannels(ctx context.Context, channelType string) ([]models.Channel, error)
	CreateThread(ctx context.Context, params CreateThreadParams) (*models.Thread, error)
	ListThreads(ctx context.Context, channelID string) ([]models.Thread, error)
	SendMessage(ctx context.Context, params SendMessageParams) (*models.Message, error)
	ListMessages(ctx context.Context, threadID string) ([]models.Message, error)
	ToggleReaction(ctx context.Context, params ToggleReactionParams) (*models.Message, error)
	SearchMessages(ctx context.Context, query string) ([]models.SearchResult, error)
}

type chatUsecase struct {
	channelRepo memory.ChannelRepository
	threadRepo  memory.ThreadRepository
	messageRepo memory.MessageRepository
	userRepo    memory.UserRepository
	searcher    memory.Searcher
}

func NewChatUsecase(
	channelRepo memory.ChannelRepository,
	threadRepo memory.ThreadRepository,
	messageRepo memory.MessageRepository,
	userRepo memory.UserRepository,
	searcher memory.Searcher,
) ChatUsecase {
	return &chatUsecase{
		channelRepo: channelRepo,
		threadRepo:  threadRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		searcher:    searcher,
	}
}

type CreateChannelParams struct {
	Name        string             `json:"name"`
	Type        models.ChannelType `json:"type"`
	Description string             `json:"description"`
	CreatedBy   string             `json:"created_by"`
}

func (uc *chatUsecase) CreateChannel(ctx context.Context, params CreateChannelParams) (*models.Channel, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, models.NewValidation("name", "must not be empty")
	}
	if !params.Type.Valid() {
		return nil, models.NewValidation("type", "must be one of team, project, client, private")
	}

	channel := &models.Channel{
		Name:        name,
		Type:        params.Type,
		Description: params.Description,
		CreatedBy:   params.CreatedBy,
	}
	if err := uc.channelRepo.Create(ctx, channel); err != nil {
		return nil, err
	}
	log.Infow(ctx, "channel created", "channel_id", channel.ID, "type", channel.Type)
	return channel, nil
}

func (uc *chatUsecase) DeleteChannel(ctx context.Context, channelID string) error {
	if err := uc.channelRepo.Delete(ctx, channelID); err != nil {
		return err
	}
	log.Infow(ctx, "channel deleted", "channel_id", channelID)
	return nil
}

func (uc *chatUsecase) MarkChannelRead(ctx context.Context, channelID string) error {
	return uc.channelRepo.MarkRead(ctx, channelID)
}

// ListChannels returns all channels, or only those of channelType when it
// is non-empty.
func (uc *chatUsecase) ListChannels(ctx context.Context, channelType string) ([]models.Channel, error) {
	if channelType == "" {
		return uc.channelRepo.List(ctx)
	}
	t := models.ChannelType(channelType)
	if !t.Valid() {
		return nil, models.NewValidation("type", "must be one of team, project, client, private")
	}
	return uc.channelRepo.ListByType(ctx, t)
}

type CreateThreadParams struct {
	ChannelID string `json:"channel_id"`
	Title     string `json:"title"`
	CreatedBy string `json:"created_by"`
}

func (uc *chatUsecase) CreateThread(ctx context.Context, params CreateThreadParams) (*models.Thread, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, models.NewValidation("title", "must not be empty")
	}

	thread := &models.Thread{
		ChannelID: params.ChannelID,
		Title:     title,
		CreatedBy: params.CreatedBy,
	}
	if err := uc.threadRepo.Create(ctx, thread); err != nil {
		return nil, err
	}
	log.Infow(ctx, "thread created", "thread_id", thread.ID, "channel_id", thread.ChannelID)
	return thread, nil
}

func (uc *chatUsecase) ListThreads(ctx context.Context, channelID string) ([]models.Thread, error) {
	return uc.threadRepo.ListByChannel(ctx, channelID)
}

type SendMessageParams struct {
	ThreadID string              `json:"thread_id"`
	AuthorID string              `json:"author_id"`
	Body     string              `json:"body"`
	// Mentions supplied by composer UIs are advisory only and ignored:
	// the parser's own extraction from the body is the single source of
	// truth, so capture can never drift from content.
	Mentions    []string            `json:"mentions,omitempty"`
	Attachments []models.Attachment `json:"attachments,omitempty"`
}

func (uc *chatUsecase) SendMessage(ctx context.Context, params SendMessageParams) (*models.Message, error) {
	author, err := uc.userRepo.GetByID(ctx, params.AuthorID)
	if err != nil {
		return nil, err
	}

	tokens := mention.Extract(params.Body)
	message := &models.Message{
		ThreadID:       params.ThreadID,
		AuthorID:       author.ID,
		AuthorName:     author.Name,
		Body:           params.Body,
		Mentions:       tokens,
		MentionUserIDs: uc.resolveMentions(ctx, tokens),
		Attachments:    params.Attachments,
	}
	if err := uc.messageRepo.Append(ctx, message); err != nil {
		return nil, err
	}
	log.Infow(ctx, "message sent",
		"message_id", message.ID,
		"thread_id", message.ThreadID,
		"author_id", message.AuthorID,
		"mentions", len(message.Mentions),
	)
	return message, nil
}

// resolveMentions maps raw @tokens to directory user ids at send time. A
// token matches a user whose first name equals it, or whose full name with
// spaces replaced by underscores equals it, case-insensitively. Tokens
// that resolve to nobody stay capture-only in the message's mention list.
func (uc *chatUsecase) resolveMentions(ctx context.Context, tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		log.Warnw(ctx, "mention resolution skipped", "error", err)
		return nil
	}

	var ids []string
	for _, token := range tokens {
		for _, u := range users {
			first, _, _ := strings.Cut(u.Name, " ")
			underscored := strings.ReplaceAll(u.Name, " ", "_")
			if !strings.EqualFold(token, first) && !strings.EqualFold(token, underscored) {
				continue
			}
			if !util.SliceIncludes(ids, u.ID) {
				ids = append(ids, u.ID)
			}
			break
		}
	}
	return ids
}

func (uc *chatUsecase) ListMessages(ctx context.Context, threadID string) ([]models.Message, error) {
	return uc.messageRepo.ListByThread(ctx, threadID)
}

type ToggleReactionParams struct {
	MessageID string `json:"message_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Emoji     string `json:"emoji"`
}

func (uc *chatUsecase) ToggleReaction(ctx context.Context, params ToggleReactionParams) (*models.Message, error) {
	if strings.TrimSpace(params.Emoji) == "" {
		return nil, models.NewValidation("emoji", "must not be empty")
	}
	return uc.messageRepo.ToggleReaction(ctx, params.MessageID, params.UserID, params.UserName, params.Emoji)
}

func (uc *chatUsecase) SearchMessages(ctx context.Context, query string) ([]models.SearchResult, error) {
	return uc.searcher.Search(ctx, query)
}
