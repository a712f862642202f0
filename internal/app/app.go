package app

import (
	"context"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/nguyentranbao-ct/team-chat/internal/config"
	"github.com/nguyentranbao-ct/team-chat/internal/repo/memory"
	"github.com/nguyentranbao-ct/team-chat/internal/server"
	"github.com/nguyentranbao-ct/team-chat/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newStore,

			memory.NewChannelRepository,
			memory.NewThreadRepository,
			memory.NewMessageRepository,
			memory.NewUserRepository,
			memory.NewSearchRepository,

			usecase.NewChatUsecase,
			usecase.NewUserUsecase,

			server.NewChatController,
			server.NewUserController,
		),
		fx.Supply(conf),
		fx.Invoke(InitializeDirectory),
		fx.Invoke(funcs...),
	)
}

func newStore() *memory.Store {
	return memory.NewStore()
}

// InitializeDirectory seeds the identity directory on startup so the
// messaging surfaces never run against an empty user set.
func InitializeDirectory(lc fx.Lifecycle, userRepo memory.UserRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return usecase.SeedDirectory(userRepo)
		},
	})
}
