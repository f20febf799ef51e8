package consumer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"school-erp/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeReader hands out queued messages, then cancels the context so the
// consumer loop exits.
type fakeReader struct {
	messages  []kafkago.Message
	cancel    context.CancelFunc
	committed []kafkago.Message
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.messages) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

type fakeInvalidator struct {
	invalidateFn func(ctx context.Context, employeeIDs ...string) error
	calls        [][]string
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, employeeIDs ...string) error {
	f.calls = append(f.calls, employeeIDs)
	if f.invalidateFn != nil {
		return f.invalidateFn(ctx, employeeIDs...)
	}
	return nil
}

func TestConsumePayrollHistory(t *testing.T) {
	t.Run("invalidates and commits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			cancel: cancel,
			messages: []kafkago.Message{
				{Topic: "school.payroll.period.generated.v1", Value: []byte(`{"event_type":"payroll.period.generated","employee_ids":["a","b"]}`)},
				{Topic: "school.payroll.run.saved.v1", Value: []byte(`{"event_type":"payroll.run.saved","employee_ids":["c"]}`)},
			},
		}
		history := &fakeInvalidator{}

		consumer.ConsumePayrollHistory(ctx, reader, history, zap.NewNop())

		assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, history.calls)
		assert.Len(t, reader.committed, 2)
	})

	t.Run("poison message is committed and skipped", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			cancel:   cancel,
			messages: []kafkago.Message{{Value: []byte(`not json`)}},
		}
		history := &fakeInvalidator{}

		consumer.ConsumePayrollHistory(ctx, reader, history, zap.NewNop())

		assert.Empty(t, history.calls)
		assert.Len(t, reader.committed, 1)
	})

	t.Run("redis failure is retried before the next message", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			cancel: cancel,
			messages: []kafkago.Message{
				{Offset: 1, Value: []byte(`{"employee_ids":["a"]}`)},
				{Offset: 2, Value: []byte(`{"employee_ids":["b"]}`)},
			},
		}
		failures := 2
		history := &fakeInvalidator{invalidateFn: func(_ context.Context, ids ...string) error {
			if ids[0] == "a" && failures > 0 {
				failures--
				return errors.New("redis down")
			}
			return nil
		}}

		consumer.ConsumePayrollHistory(ctx, reader, history, zap.NewNop(),
			consumer.WithRetryBackoff(time.Millisecond, 2*time.Millisecond))

		assert.Equal(t, [][]string{{"a"}, {"a"}, {"a"}, {"b"}}, history.calls)
		if assert.Len(t, reader.committed, 2) {
			assert.Equal(t, int64(1), reader.committed[0].Offset)
			assert.Equal(t, int64(2), reader.committed[1].Offset)
		}
	})

	t.Run("shutdown during retries leaves the message uncommitted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{
			cancel: cancel,
			messages: []kafkago.Message{
				{Offset: 1, Value: []byte(`{"employee_ids":["a"]}`)},
				{Offset: 2, Value: []byte(`{"employee_ids":["b"]}`)},
			},
		}
		history := &fakeInvalidator{}
		history.invalidateFn = func(context.Context, ...string) error {
			if len(history.calls) == 3 {
				cancel()
			}
			return errors.New("redis down")
		}

		consumer.ConsumePayrollHistory(ctx, reader, history, zap.NewNop(),
			consumer.WithRetryBackoff(time.Millisecond, time.Millisecond))

		assert.Len(t, history.calls, 3)
		assert.Empty(t, reader.committed)
		assert.Len(t, reader.messages, 1)
	})
}
