package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nguyentranbao-ct/team-chat/internal/config"
	pkgmdw "github.com/nguyentranbao-ct/team-chat/internal/server/middleware"
	"go.uber.org/fx"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	chat ChatController,
	users UserController,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/health", chat.Health)

	api := e.Group("/api/v1")
	api.POST("/channels", chat.CreateChannel)
	api.GET("/channels", chat.ListChannels)
	api.DELETE("/channels/:id", chat.DeleteChannel)
	api.POST("/channels/:id/read", chat.MarkChannelRead)
	api.POST("/channels/:id/threads", chat.CreateThread)
	api.GET("/channels/:id/threads", chat.ListThreads)
	api.POST("/threads/:id/messages", chat.SendMessage)
	api.GET("/threads/:id/messages", chat.ListMessages)
	api.POST("/messages/:id/reactions", chat.ToggleReaction)
	api.GET("/search", chat.SearchMessages)
	api.GET("/users", users.ListUsers)
	api.PUT("/users/:id/status", users.UpdateStatus)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
