package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxConversationExchanges caps how many past exchanges a conversation keeps.
const MaxConversationExchanges = 10

// Exchange is one user query and the engine's reply within a conversation.
type Exchange struct {
	Query     string
	Response  string
	CreatedAt time.Time
}

// ConversationState is the rolling context of a recommendation dialogue.
type ConversationState struct {
	ID uuid.UUID
	// UserID identifies the authenticated user, uuid.Nil for anonymous turns.
	UserID    uuid.UUID
	Exchanges []Exchange
	// LastRecommendedIDs are the game IDs returned on the most recent turn.
	LastRecommendedIDs []uuid.UUID
	// Context carries free-form per-conversation values across turns.
	Context      map[string]any
	LastAnalysis *QueryAnalysis
	UpdatedAt    time.Time
}

// AppendExchange records an exchange, dropping the oldest once the cap is hit.
func (c *ConversationState) AppendExchange(e Exchange) {
	c.Exchanges = append(c.Exchanges, e)
	if len(c.Exchanges) > MaxConversationExchanges {
		c.Exchanges = c.Exchanges[len(c.Exchanges)-MaxConversationExchanges:]
	}
	c.UpdatedAt = e.CreatedAt
}

// SetContext stores a per-conversation value under key.
func (c *ConversationState) SetContext(key string, value any) {
	if c.Context == nil {
		c.Context = map[string]any{}
	}
	c.Context[key] = value
}

// GetContext returns the value stored under key, and whether it exists.
func (c *ConversationState) GetContext(key string) (any, bool) {
	value, ok := c.Context[key]
	return value, ok
}

// ConversationStateRepository stores per-conversation dialogue state.
type ConversationStateRepository interface {
	// GetState returns the state for the conversation, and whether it exists.
	GetState(id uuid.UUID) (ConversationState, bool)
	// SaveState stores the state, creating the conversation if needed.
	SaveState(state ConversationState)
	// DeleteState removes the conversation.
	DeleteState(id uuid.UUID)
	// SweepIdle evicts conversations idle for longer than maxIdle, relative to
	// now, and returns how many were evicted.
	SweepIdle(now time.Time, maxIdle time.Duration) int
}
