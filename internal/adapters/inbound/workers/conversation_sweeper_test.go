package workers

import (
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
)

func TestConversationSweeper_Run(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	maxIdle := 24 * time.Hour

	tests := map[string]struct {
		evicted int
	}{
		"evicts-idle-conversations": {evicted: 3},
		"nothing-to-evict":          {evicted: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()

			tp := domain.NewMockCurrentTimeProvider(t)
			tp.EXPECT().Now().Return(now)

			repo := domain.NewMockConversationStateRepository(t)
			repo.EXPECT().SweepIdle(now, maxIdle).Return(tt.evicted)

			signalChan := make(chan struct{})
			cancel, doneChan := run(t, ctx, ConversationSweeper{
				Conversations:       repo,
				TimeProvider:        tp,
				Logger:              log.Default(),
				Interval:            2 * time.Millisecond,
				MaxIdle:             maxIdle,
				workerExecutionChan: signalChan,
			})

			waitForBatchSignals(t, signalChan, 1, 1*time.Second)

			cancel()
			waitRunnableStop(t, doneChan)
		})
	}
}
