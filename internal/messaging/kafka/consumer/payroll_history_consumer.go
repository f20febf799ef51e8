package consumer

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type HistoryInvalidator interface {
	Invalidate(ctx context.Context, employeeIDs ...string) error
}

// payrollEvent covers the fields shared by the generated and run saved events.
type payrollEvent struct {
	EventType   string   `json:"event_type"`
	EmployeeIDs []string `json:"employee_ids"`
}

type options struct {
	retryInitial time.Duration
	retryMax     time.Duration
}

type Option func(*options)

// WithRetryBackoff sets the wait between invalidation attempts, doubling from
// initial up to max.
func WithRetryBackoff(initial, max time.Duration) Option {
	return func(o *options) {
		o.retryInitial = initial
		o.retryMax = max
	}
}

// ConsumePayrollHistory drops cached payroll history for every employee named
// in a period generated or run saved event. The reader has already moved past
// a fetched message, so a failed invalidation is retried in place until it
// succeeds or ctx ends; the message is committed only after success.
func ConsumePayrollHistory(
	ctx context.Context,
	reader MessageReader,
	history HistoryInvalidator,
	logger *zap.Logger,
	opts ...Option,
) {
	o := options{retryInitial: 500 * time.Millisecond, retryMax: 30 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	log := logger.Named("kafka.consumer.payroll_history")
	log.Info("payroll history consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll history consumer stopped")
				return
			}
			log.Error("fetch payroll history message failed", zap.Error(err))
			continue
		}

		var event payrollEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll event failed",
				zap.String("topic", msg.Topic),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !invalidateWithRetry(ctx, history, event, o, log) {
			log.Info("payroll history consumer stopped before invalidation succeeded",
				zap.String("event_type", event.EventType),
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll history message failed", zap.Error(err))
			continue
		}

		log.Info("payroll history invalidated",
			zap.String("event_type", event.EventType),
			zap.String("key", string(msg.Key)),
			zap.Int("employees", len(event.EmployeeIDs)),
		)
	}
}

// invalidateWithRetry reports false only when ctx ended first.
func invalidateWithRetry(
	ctx context.Context,
	history HistoryInvalidator,
	event payrollEvent,
	o options,
	log *zap.Logger,
) bool {
	wait := o.retryInitial
	for attempt := 1; ; attempt++ {
		err := history.Invalidate(ctx, event.EmployeeIDs...)
		if err == nil {
			return true
		}
		log.Warn("invalidate payroll history failed, retrying",
			zap.String("event_type", event.EventType),
			zap.Int("employees", len(event.EmployeeIDs)),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)

		if ctx.Err() != nil {
			return false
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		wait *= 2
		if wait > o.retryMax {
			wait = o.retryMax
		}
	}
}
