package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_GAME_CREATED represents the event when a game is added to the catalog.
	EventType_GAME_CREATED EventType = "GAME.CREATED"
	// EventType_GAME_UPDATED represents the event when a game is updated.
	EventType_GAME_UPDATED EventType = "GAME.UPDATED"
	// EventType_GAME_DELETED represents the event when a game is removed.
	EventType_GAME_DELETED EventType = "GAME.DELETED"
)

// GameEvent represents a catalog change that requires reindexing.
type GameEvent struct {
	Type      EventType
	GameID    uuid.UUID
	CreatedAt time.Time
}

// OutboxStatus represents the processing lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is ready to be processed.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed indicates the event exceeded retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
	// OutboxStatus_Processed indicates the event was successfully published.
	OutboxStatus_Processed OutboxStatus = "PROCESSED"
)

// OutboxTopic identifies the broker topic used for publishing outbox events.
type OutboxTopic string

const (
	// OutboxTopic_GameEvents is the topic for game catalog change events.
	OutboxTopic_GameEvents OutboxTopic = "GameEvents"
)

// OutboxEvent represents an event stored in the outbox.
type OutboxEvent struct {
	ID          uuid.UUID
	EntityID    uuid.UUID
	Topic       OutboxTopic
	EventType   EventType
	Payload     []byte
	Status      OutboxStatus
	RetryCount  int
	MaxRetries  int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
}

// OutboxRepository defines the interface for managing outbox events.
type OutboxRepository interface {
	// CreateGameEvent records a new game change event in the outbox.
	CreateGameEvent(ctx context.Context, event GameEvent) error
	// FetchPendingEvents retrieves a batch of pending outbox events.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// UpdateEvent updates the status, retry count, and last error of an outbox event.
	UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
