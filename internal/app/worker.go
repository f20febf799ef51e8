package app

import (
	"context"
	"os/signal"
	"syscall"

	"school-erp/internal/messaging/kafka"
	"school-erp/internal/messaging/kafka/producer"
	"school-erp/internal/shared/config"
	"school-erp/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays payroll outbox events to kafka until SIGINT/SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

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

	writer, err := connection.ConnectKafkaWithRetry(cfg.Messaging.Broker, 5)
	if err != nil {
		return err
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(
		ctx,
		kafka.NewOutboxRepository(sqlDB),
		writer,
		logger,
		cfg.Messaging.OutboxPollInterval,
	)

	logger.Info("worker shut down")
	return nil
}
