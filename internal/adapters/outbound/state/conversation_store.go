package state

import (
	"context"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ConversationStore is an in-memory implementation of
// domain.ConversationStateRepository. Conversation history lives only for
// the lifetime of the process; idle conversations are evicted by SweepIdle.
type ConversationStore struct {
	mu     sync.Mutex
	states map[uuid.UUID]domain.ConversationState
}

// NewConversationStore creates an empty ConversationStore.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		states: map[uuid.UUID]domain.ConversationState{},
	}
}

// GetState returns the state for the conversation, and whether it exists.
func (s *ConversationStore) GetState(id uuid.UUID) (domain.ConversationState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[id]
	return state, ok
}

// SaveState stores the state, creating the conversation if needed.
func (s *ConversationStore) SaveState(state domain.ConversationState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.ID] = state
}

// DeleteState removes the conversation.
func (s *ConversationStore) DeleteState(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
}

// SweepIdle evicts conversations whose last update is older than maxIdle
// relative to now, and returns how many were evicted.
func (s *ConversationStore) SweepIdle(now time.Time, maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, state := range s.states {
		if now.Sub(state.UpdatedAt) > maxIdle {
			delete(s.states, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live conversations.
func (s *ConversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

// InitConversationStore initializes the in-memory conversation store and
// registers it in the dependency container.
type InitConversationStore struct {
}

// Initialize registers the ConversationStore in the dependency container.
func (i *InitConversationStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ConversationStateRepository](NewConversationStore())
	return ctx, nil
}
