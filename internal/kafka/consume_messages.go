package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/nguyentranbao-ct/team-chat/internal/config"
	"github.com/nguyentranbao-ct/team-chat/internal/usecase"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

// StartConsumeMessages routes externally published messages through the same
// send path as the HTTP API, so thread metadata, unread counters and mention
// capture stay consistent regardless of where a message originates.
func StartConsumeMessages(
	sd fx.Shutdowner,
	lc fx.Lifecycle,
	conf *config.Config,
	chatUsecase usecase.ChatUsecase,
) error {
	if !conf.Kafka.Enabled {
		log.Warnf(context.Background(), "Kafka consumer is disabled in configuration")
		return nil
	}
	return startKafkaConsumer(consumerOptions{
		sd: sd,
		lc: lc,
		readerConf: kafka.ReaderConfig{
			Brokers:     conf.Kafka.Brokers,
			GroupID:     conf.Kafka.GroupID,
			GroupTopics: []string{conf.Kafka.Topic},
		},
		maxWorkers:     conf.Kafka.Workers,
		consumeTimeout: 30 * time.Second,
		handler: func(ctx context.Context, msg kafka.Message) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, 4096)
					length := runtime.Stack(stack, false)
					err = fmt.Errorf("PANIC RECOVER: %+v / %s", r, string(stack[:length]))
				}
			}()

			var event MessageEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("unmarshal message event: %w", err)
			}

			if event.Pattern != "message.sent" {
				log.Infow(ctx, "ignoring event", "pattern", event.Pattern)
				return nil
			}

			_, err = chatUsecase.SendMessage(ctx, usecase.SendMessageParams{
				ThreadID:    event.Data.ThreadID,
				AuthorID:    event.Data.AuthorID,
				Body:        event.Data.Body,
				Attachments: event.Data.Attachments,
			})
			return err
		},
	})
}
