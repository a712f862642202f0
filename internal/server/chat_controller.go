package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/internal/usecase"
)

type ChatController interface {
	Health(c echo.Context) error
	CreateChannel(c echo.Context) error
	ListChannels(c echo.Context) error
	DeleteChannel(c echo.Context) error
	MarkChannelRead(c echo.Context) error
	CreateThread(c echo.Context) error
	ListThreads(c echo.Context) error
	SendMessage(c echo.Context) error
	ListMessages(c echo.Context) error
	ToggleReaction(c echo.Context) error
	SearchMessages(c echo.Context) error
}

type chatController struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatController(chatUsecase usecase.ChatUsecase) ChatController {
	return &chatController{chatUsecase: chatUsecase}
}

func (cc *chatController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "team-chat",
	})
}

type CreateChannelRequest struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=team project client private"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

func (cc *chatController) CreateChannel(c echo.Context) error {
	var req CreateChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	channel, err := cc.chatUsecase.CreateChannel(ctx, usecase.CreateChannelParams{
		Name:        req.Name,
		Type:        models.ChannelType(req.Type),
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, channel)
}

func (cc *chatController) ListChannels(c echo.Context) error {
	ctx := c.Request().Context()
	channels, err := cc.chatUsecase.ListChannels(ctx, c.QueryParam("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channels)
}

func (cc *chatController) DeleteChannel(c echo.Context) error {
	ctx := c.Request().Context()
	if err := cc.chatUsecase.DeleteChannel(ctx, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (cc *chatController) MarkChannelRead(c echo.Context) error {
	ctx := c.Request().Context()
	if err := cc.chatUsecase.MarkChannelRead(ctx, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type CreateThreadRequest struct {
	Title     string `json:"title" validate:"required"`
	CreatedBy string `json:"created_by"`
}

func (cc *chatController) CreateThread(c echo.Context) error {
	var req CreateThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	thread, err := cc.chatUsecase.CreateThread(ctx, usecase.CreateThreadParams{
		ChannelID: c.Param("id"),
		Title:     req.Title,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, thread)
}

func (cc *chatController) ListThreads(c echo.Context) error {
	ctx := c.Request().Context()
	threads, err := cc.chatUsecase.ListThreads(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, threads)
}

type SendMessageRequest struct {
	AuthorID    string              `json:"author_id" validate:"required"`
	Body        string              `json:"body" validate:"required"`
	Mentions    []string            `json:"mentions"`
	Attachments []models.Attachment `json:"attachments"`
}

func (cc *chatController) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	message, err := cc.chatUsecase.SendMessage(ctx, usecase.SendMessageParams{
		ThreadID:    c.Param("id"),
		AuthorID:    req.AuthorID,
		Body:        req.Body,
		Mentions:    req.Mentions,
		Attachments: req.Attachments,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, message)
}

func (cc *chatController) ListMessages(c echo.Context) error {
	ctx := c.Request().Context()
	messages, err := cc.chatUsecase.ListMessages(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

type ToggleReactionRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	UserName string `json:"user_name"`
	Emoji    string `json:"emoji" validate:"required"`
}

func (cc *chatController) ToggleReaction(c echo.Context) error {
	var req ToggleReactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	message, err := cc.chatUsecase.ToggleReaction(ctx, usecase.ToggleReactionParams{
		MessageID: c.Param("id"),
		UserID:    req.UserID,
		UserName:  req.UserName,
		Emoji:     req.Emoji,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, message)
}

func (cc *chatController) SearchMessages(c echo.Context) error {
	ctx := c.Request().Context()
	results, err := cc.chatUsecase.SearchMessages(ctx, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}
