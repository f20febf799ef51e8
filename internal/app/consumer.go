package app

import (
	"context"
	"os/signal"
	"syscall"

	"school-erp/internal/events"
	"school-erp/internal/messaging/kafka/consumer"
	"school-erp/internal/payhistory"
	"school-erp/internal/shared/config"
	"school-erp/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer keeps the payroll history cache in step with generation and
// manual run events.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireBroker(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	history := payhistory.NewService(payhistory.NewRepository(gormDB), redisClient, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Messaging.Broker},
		GroupTopics:    events.HistoryTopics,
		GroupID:        cfg.Messaging.HistoryGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumePayrollHistory(ctx, reader, history, logger)

	logger.Info("consumer shut down")
	return nil
}
