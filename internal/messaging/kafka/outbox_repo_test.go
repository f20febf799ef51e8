package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"school-erp/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	aggregateID := uuid.NewString()

	event, err := kafka.NewOutboxEvent("req-1", "pay_period", aggregateID, "payroll.period.generated", "payroll.period.generated",
		map[string]any{"employee_ids": []string{"a"}})

	assert.NoError(t, err)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Equal(t, aggregateID, event.AggregateID)
	assert.JSONEq(t, `{"employee_ids":["a"]}`, string(event.Payload))

	_, err = kafka.NewOutboxEvent("", "pay_period", "period-1", "payroll.period.generated", "payroll.period.generated", map[string]any{})
	assert.Error(t, err)

	_, err = kafka.NewOutboxEvent("", "pay_period", aggregateID, "payroll.period.generated", "", map[string]any{})
	assert.Error(t, err)
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("evt-1", kafka.OutboxStatusFailed, kafka.OutboxStatusDead, kafka.MaxPublishAttempts, "broker down", 5, 600).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkFailed(context.Background(), "evt-1", "broker down")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	event, err := kafka.NewOutboxEvent("", "payroll_run", uuid.NewString(), "payroll.run.saved", "payroll.run.saved", map[string]any{})
	assert.NoError(t, err)
	assert.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 5*time.Second, kafka.RetryDelay(0))
	assert.Equal(t, 20*time.Second, kafka.RetryDelay(2))
	assert.Equal(t, 10*time.Minute, kafka.RetryDelay(9))
}
