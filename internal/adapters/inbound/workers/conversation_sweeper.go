package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
)

// ConversationSweeper is a runnable that periodically evicts idle
// conversations from the conversation store.
type ConversationSweeper struct {
	Conversations       domain.ConversationStateRepository `resolve:""`
	TimeProvider        domain.CurrentTimeProvider         `resolve:""`
	Logger              *log.Logger                        `resolve:""`
	Interval            time.Duration                      `config:"CONVERSATION_SWEEP_INTERVAL" default:"1h"`
	MaxIdle             time.Duration                      `config:"CONVERSATION_MAX_IDLE" default:"24h"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic sweep of idle conversations.
func (cs ConversationSweeper) Run(ctx context.Context) error {
	cs.Logger.Println("ConversationSweeper: running...")
	ticker := time.NewTicker(cs.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			evicted := cs.Conversations.SweepIdle(cs.TimeProvider.Now(), cs.MaxIdle)
			if evicted > 0 {
				cs.Logger.Printf("ConversationSweeper: evicted %d idle conversations", evicted)
			}
			if cs.workerExecutionChan != nil {
				cs.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			cs.Logger.Println("ConversationSweeper: stopping...")
			return nil
		}
	}
}
