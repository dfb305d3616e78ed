package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertOutboxSQL = "INSERT INTO outbox_events (id,entity_id,topic,event_type,payload,status,retry_count,max_retries,last_error,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)"
	selectOutboxSQL = "SELECT id, entity_id, topic, event_type, payload, status, retry_count, max_retries, last_error, created_at FROM outbox_events WHERE status = $1 ORDER BY created_at ASC LIMIT 100 FOR UPDATE SKIP LOCKED"
)

func TestOutboxRepository_CreateGameEvent(t *testing.T) {
	event := domain.GameEvent{
		Type:      domain.EventType_GAME_CREATED,
		GameID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertOutboxSQL).
					WithArgs(
						sqlmock.AnyArg(),
						event.GameID,
						domain.OutboxTopic_GameEvents,
						string(event.Type),
						payload,
						domain.OutboxStatus_Pending,
						0,
						5,
						nil,
						event.CreatedAt,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertOutboxSQL).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewOutboxRepository(db)
			gotErr := repo.CreateGameEvent(context.Background(), event)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_FetchPendingEvents(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	gameID := uuid.MustParse("3f1b2a7e-1a41-4f3e-8a52-6f2d9c4de222")
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectQuery(selectOutboxSQL).
		WithArgs(domain.OutboxStatus_Pending).
		WillReturnRows(sqlmock.NewRows(outboxEventFields).
			AddRow(eventID, gameID, "GameEvents", "GAME.CREATED", []byte(`{}`), "PENDING", 1, 5, nil, createdAt))

	repo := NewOutboxRepository(db)
	events, gotErr := repo.FetchPendingEvents(context.Background(), 100)
	assert.NoError(t, gotErr)
	require.Len(t, events, 1)
	assert.Equal(t, domain.OutboxEvent{
		ID:         eventID,
		EntityID:   gameID,
		Topic:      domain.OutboxTopic_GameEvents,
		EventType:  domain.EventType_GAME_CREATED,
		Payload:    []byte(`{}`),
		Status:     domain.OutboxStatus_Pending,
		RetryCount: 1,
		MaxRetries: 5,
		CreatedAt:  createdAt,
	}, events[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_UpdateEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	t.Run("requeue-keeps-processed-at-clear", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3 WHERE id = $4").
			WithArgs(domain.OutboxStatus_Pending, 2, "broker down", eventID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewOutboxRepository(db)
		assert.NoError(t, repo.UpdateEvent(context.Background(), eventID, domain.OutboxStatus_Pending, 2, "broker down"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("processed-stamps-processed-at", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		assert.NoError(t, err)
		defer db.Close() //nolint:errcheck

		mock.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3, processed_at = $4 WHERE id = $5").
			WithArgs(domain.OutboxStatus_Processed, 0, "", sqlmock.AnyArg(), eventID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewOutboxRepository(db)
		assert.NoError(t, repo.UpdateEvent(context.Background(), eventID, domain.OutboxStatus_Processed, 0, ""))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
