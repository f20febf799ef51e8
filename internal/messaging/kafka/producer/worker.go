package producer

import (
	"context"
	"time"

	"school-erp/internal/messaging/kafka"

	"go.uber.org/zap"
)

const pendingBatchSize = 50

// BatchResult summarises one pass over the outbox.
type BatchResult struct {
	Listed int
	Sent   int
	Failed int
}

// Full reports whether the batch hit the page size, meaning more events may be waiting.
func (b BatchResult) Full() bool {
	return b.Listed >= pendingBatchSize
}

// ProcessOutboxEvents relays payroll events from the outbox to kafka until ctx is cancelled.
// A full batch is followed immediately by another pass instead of waiting for the next tick.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.relay")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("payroll event relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("payroll event relay stopped")
			return
		case <-ticker.C:
			for ctx.Err() == nil {
				result, err := ProcessPending(ctx, repo, writer, log)
				if err != nil {
					log.Error("relay pass failed", zap.Error(err))
					break
				}
				if !result.Full() {
					break
				}
			}
		}
	}
}

// ProcessPending publishes one batch of pending events. A failed publish is
// recorded on the event for retry and the rest of the batch still goes out.
func ProcessPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (BatchResult, error) {
	pending, err := repo.ListPending(ctx, pendingBatchSize)
	if err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Listed: len(pending)}
	if result.Listed == 0 {
		return result, nil
	}

	for _, event := range pending {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("aggregate_id", event.AggregateID),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			result.Failed++
			logger.Warn("payroll event publish failed", append(fields, zap.Error(err))...)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("record publish failure", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			// Published but still pending; the consumer tolerates the duplicate.
			result.Failed++
			logger.Error("mark payroll event sent", append(fields, zap.Error(err))...)
			continue
		}
		result.Sent++
	}

	logger.Info("payroll events relayed",
		zap.Int("listed", result.Listed),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
