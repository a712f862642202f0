package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/internal/repo/memory"
	pkgmdw "github.com/nguyentranbao-ct/team-chat/internal/server/middleware"
	"github.com/nguyentranbao-ct/team-chat/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo *echo.Echo
	chat usecase.ChatUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	require.NoError(t, userRepo.Upsert(context.Background(), &models.User{
		ID: "u-sarah", Name: "Sarah Johnson", Email: "sarah@example.com", Status: models.UserStatusOnline,
	}))

	chat := usecase.NewChatUsecase(
		memory.NewChannelRepository(store),
		memory.NewThreadRepository(store),
		memory.NewMessageRepository(store),
		userRepo,
		memory.NewSearchRepository(store),
	)

	e := echo.New()
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	cc := NewChatController(chat)
	uc := NewUserController(usecase.NewUserUsecase(userRepo))
	api := e.Group("/api/v1")
	api.POST("/channels", cc.CreateChannel)
	api.GET("/channels", cc.ListChannels)
	api.DELETE("/channels/:id", cc.DeleteChannel)
	api.POST("/channels/:id/read", cc.MarkChannelRead)
	api.POST("/channels/:id/threads", cc.CreateThread)
	api.GET("/channels/:id/threads", cc.ListThreads)
	api.POST("/threads/:id/messages", cc.SendMessage)
	api.GET("/threads/:id/messages", cc.ListMessages)
	api.POST("/messages/:id/reactions", cc.ToggleReaction)
	api.GET("/search", cc.SearchMessages)
	api.GET("/users", uc.ListUsers)
	api.PUT("/users/:id/status", uc.UpdateStatus)

	return &testServer{echo: e, chat: chat}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestCreateChannelEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/channels", `{"name":"finance","type":"team","created_by":"u-sarah"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var ch models.Channel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ch))
	assert.NotEmpty(t, ch.ID)
	assert.Equal(t, models.ChannelTypeTeam, ch.Type)
	assert.Equal(t, 0, ch.UnreadCount)
}

func TestCreateChannelRejectsBadType(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/channels", `{"name":"finance","type":"broadcast"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessageUnknownThread(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/threads/nope/messages", `{"author_id":"u-sarah","body":"hi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMessageFlowEndpoints(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	ch, err := s.chat.CreateChannel(ctx, usecase.CreateChannelParams{Name: "finance", Type: models.ChannelTypeTeam, CreatedBy: "u-sarah"})
	require.NoError(t, err)
	th, err := s.chat.CreateThread(ctx, usecase.CreateThreadParams{ChannelID: ch.ID, Title: "q4", CreatedBy: "u-sarah"})
	require.NoError(t, err)

	rec := s.do(http.MethodPost, fmt.Sprintf("/api/v1/threads/%s/messages", th.ID), `{"author_id":"u-sarah","body":"Q4 results are strong"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var msg models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Sarah Johnson", msg.AuthorName)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/v1/messages/%s/reactions", msg.ID), `{"user_id":"u-sarah","user_name":"Sarah Johnson","emoji":"🎉"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Len(t, msg.Reactions, 1)

	rec = s.do(http.MethodGet, "/api/v1/search?q=q4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var results []models.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Len(t, results, 1)

	// unread was bumped by the send; an explicit read resets it
	rec = s.do(http.MethodPost, fmt.Sprintf("/api/v1/channels/%s/read", ch.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	got, err := s.chat.ListChannels(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, got[0].UnreadCount)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/channels/%s", ch.ID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, fmt.Sprintf("/api/v1/threads/%s/messages", th.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkReadUnknownChannelIsNoOp(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/v1/channels/nope/read", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateUserStatusEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPut, "/api/v1/users/u-sarah/status", `{"status":"away"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var u models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, models.UserStatusAway, u.Status)
	assert.NotNil(t, u.LastSeen)

	rec = s.do(http.MethodPut, "/api/v1/users/u-sarah/status", `{"status":"busy"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
