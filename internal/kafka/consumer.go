package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/gammazero/workerpool"
	"github.com/nguyentranbao-ct/team-chat/internal/models"
	"github.com/nguyentranbao-ct/team-chat/pkg/util"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
)

type consumerOptions struct {
	sd             fx.Shutdowner
	lc             fx.Lifecycle
	readerConf     kafka.ReaderConfig
	maxWorkers     int
	consumeTimeout time.Duration
	handler        func(ctx context.Context, msg kafka.Message) error
}

func startKafkaConsumer(opts consumerOptions) error {
	metrics, err := util.GetHistogramVec("kafka_messages_consumed", "code", "topic", "group")
	if err != nil {
		return fmt.Errorf("get histogram vec: %w", err)
	}

	reader := kafka.NewReader(opts.readerConf)
	wp := workerpool.New(opts.maxWorkers)
	runCtx, cancel := context.WithCancel(context.Background())

	consume := func(ctx context.Context, msg kafka.Message) {
		start := time.Now()
		lagMs := start.Sub(msg.Time).Milliseconds()

		hctx, hcancel := context.WithTimeout(ctx, opts.consumeTimeout)
		err := opts.handler(hctx, msg)
		hcancel()

		duration := time.Since(start)
		code := getCode(err)
		content := "success"
		if err != nil {
			content = err.Error()
		}
		log.Logw(ctx, getLogLevel(code), content,
			"code", code,
			"duration_ms", duration.Milliseconds(),
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"lag_ms", lagMs,
			"key", string(msg.Key),
			"value", json.RawMessage(msg.Value),
		)
		metrics.
			WithLabelValues(code.String(), msg.Topic, opts.readerConf.GroupID).
			Observe(duration.Seconds())
	}

	run := func(ctx context.Context) {
		for ctx.Err() == nil {
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Errorw(ctx, "read kafka message", "error", err)
				continue
			}
			wp.Submit(func() {
				consume(ctx, msg)
			})
		}
	}

	opts.lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow(ctx, "starting kafka consumer",
				"topics", opts.readerConf.GroupTopics,
				"group", opts.readerConf.GroupID,
			)
			go func() {
				run(runCtx)
				if runCtx.Err() == nil {
					_ = opts.sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			err := reader.Close()
			wp.StopWait()
			return err
		},
	})
	return nil
}

func getCode(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case models.IsNotFound(err):
		return codes.NotFound
	case models.IsValidation(err):
		return codes.InvalidArgument
	default:
		return codes.Unknown
	}
}

func getLogLevel(code codes.Code) logger.Level {
	switch code {
	case codes.OK:
		return logger.InfoLevel
	case codes.Canceled,
		codes.InvalidArgument,
		codes.NotFound,
		codes.AlreadyExists,
		codes.FailedPrecondition:
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}
