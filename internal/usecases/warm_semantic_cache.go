package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/semantic"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// WarmSemanticCache is the use case interface for pre-computing embeddings
// of keyword combinations that queries are likely to hit.
type WarmSemanticCache interface {
	// Execute warms the embedding cache and returns how many texts were encoded.
	Execute(ctx context.Context) (int, error)
}

// WarmSemanticCacheImpl is the implementation of the WarmSemanticCache use case.
type WarmSemanticCacheImpl struct {
	store   *semantic.KeywordStore
	games   domain.GameRepository
	encoder domain.SemanticEncoder
	logger  *log.Logger
}

// NewWarmSemanticCacheImpl creates a new instance of WarmSemanticCacheImpl.
func NewWarmSemanticCacheImpl(store *semantic.KeywordStore, games domain.GameRepository, encoder domain.SemanticEncoder, logger *log.Logger) WarmSemanticCacheImpl {
	return WarmSemanticCacheImpl{
		store:   store,
		games:   games,
		encoder: encoder,
		logger:  logger,
	}
}

// Execute encodes the curated popular combinations plus the cache-worthy
// combinations of every catalog game. Encoding failures on individual texts
// are logged and skipped.
func (wc WarmSemanticCacheImpl) Execute(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	warmed := 0
	seen := map[string]struct{}{}

	warm := func(text string) {
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		if _, err := wc.encoder.EncodeText(spanCtx, text); err != nil {
			wc.logger.Printf("WarmSemanticCache: failed to encode %q: %v", text, err)
			return
		}
		warmed++
	}

	for _, combo := range wc.store.PopularCombinations() {
		warm(combo)
	}

	for page := 0; ; page++ {
		games, hasMore, err := wc.games.ListGamesForIndexing(spanCtx, page, IndexBatchSize)
		if telemetry.RecordErrorAndStatus(span, err) {
			return warmed, err
		}
		for _, game := range games {
			for _, combo := range wc.store.Combinations(game) {
				if wc.store.CacheWorthy(combo) {
					warm(combo)
				}
			}
		}
		if !hasMore {
			break
		}
	}

	wc.logger.Printf("WarmSemanticCache: warmed %d combination embeddings", warmed)
	return warmed, nil
}

// InitWarmSemanticCache initializes the WarmSemanticCache use case and
// registers it in the dependency container.
type InitWarmSemanticCache struct {
	Store   *semantic.KeywordStore `resolve:""`
	Games   domain.GameRepository  `resolve:""`
	Encoder domain.SemanticEncoder `resolve:""`
	Logger  *log.Logger            `resolve:""`
}

// Initialize registers the WarmSemanticCacheImpl use case in the dependency container.
func (iwc InitWarmSemanticCache) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[WarmSemanticCache](NewWarmSemanticCacheImpl(iwc.Store, iwc.Games, iwc.Encoder, iwc.Logger))
	return ctx, nil
}
