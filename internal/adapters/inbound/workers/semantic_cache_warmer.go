package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
)

// SemanticCacheWarmer is a runnable that pre-populates the embedding cache
// with popular and catalog-derived keyword combinations, on start and then
// periodically so refreshed TTLs keep the hot set warm.
type SemanticCacheWarmer struct {
	WarmSemanticCache   usecases.WarmSemanticCache `resolve:""`
	Logger              *log.Logger                `resolve:""`
	Interval            time.Duration              `config:"CACHE_WARM_INTERVAL" default:"30m"`
	workerExecutionChan chan struct{}
}

// Run warms the cache immediately and then on every interval tick.
func (w SemanticCacheWarmer) Run(ctx context.Context) error {
	w.Logger.Println("SemanticCacheWarmer: running...")

	w.warm(ctx)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.warm(ctx)
		case <-ctx.Done():
			w.Logger.Println("SemanticCacheWarmer: stopping...")
			return nil
		}
	}
}

func (w SemanticCacheWarmer) warm(ctx context.Context) {
	warmed, err := w.WarmSemanticCache.Execute(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			w.Logger.Printf("SemanticCacheWarmer: %v", err)
		}
	} else {
		w.Logger.Printf("SemanticCacheWarmer: warmed %d combinations", warmed)
	}
	if w.workerExecutionChan != nil {
		w.workerExecutionChan <- struct{}{}
	}
}
