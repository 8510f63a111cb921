package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxCreateUsesTransactionWhenBound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("id-1", "req-1", "employee", "EMP-000001", "employee_created",
			"hrms.employee.lifecycle.v1", []byte(`{}`), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewOutboxRepository(db)
	err = repo.WithTx(tx).Create(context.Background(), OutboxEvent{
		ID:            "id-1",
		RequestID:     "req-1",
		AggregateType: "employee",
		AggregateID:   "EMP-000001",
		EventType:     "employee_created",
		Topic:         "hrms.employee.lifecycle.v1",
		Payload:       []byte(`{}`),
		Status:        OutboxStatusPending,
	})
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("id-1", "payroll", "p-1", "payroll_generated",
		"hrms.payroll.lifecycle.v1", []byte(`{}`), OutboxStatusPending, 0, now)

	mock.ExpectQuery("SELECT").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(rows)

	repo := NewOutboxRepository(db)
	events, err := repo.ListPending(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "payroll_generated", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{
		ID:      "id-1",
		Topic:   "hrms.finance.ledger.v1",
		Payload: []byte(`{}`),
		Status:  OutboxStatusPending,
	}
	assert.NoError(t, ValidateOutboxEvent(valid))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(missingTopic))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}
