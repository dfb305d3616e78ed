package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CacheRefreshResult reports what a manual cache refresh did.
type CacheRefreshResult struct {
	Purged int
	Warmed int
}

// RefreshCaches is the use case interface for the manual cache-refresh admin
// operation: it drops every cached embedding and re-warms the cache from the
// current catalog.
type RefreshCaches interface {
	Execute(ctx context.Context) (CacheRefreshResult, error)
}

// RefreshCachesImpl is the implementation of the RefreshCaches use case.
type RefreshCachesImpl struct {
	cache  domain.EmbeddingCache
	warmer WarmSemanticCache
	logger *log.Logger
}

// NewRefreshCachesImpl creates a new instance of RefreshCachesImpl.
func NewRefreshCachesImpl(cache domain.EmbeddingCache, warmer WarmSemanticCache, logger *log.Logger) RefreshCachesImpl {
	return RefreshCachesImpl{
		cache:  cache,
		warmer: warmer,
		logger: logger,
	}
}

// Execute purges the embedding cache and re-warms it. A failed warmup still
// reports how much was purged.
func (rc RefreshCachesImpl) Execute(ctx context.Context) (CacheRefreshResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result := CacheRefreshResult{Purged: rc.cache.Purge()}
	rc.logger.Printf("RefreshCaches: purged %d cached embeddings", result.Purged)

	warmed, err := rc.warmer.Execute(spanCtx)
	result.Warmed = warmed
	if telemetry.RecordErrorAndStatus(span, err) {
		return result, err
	}
	return result, nil
}

// InitRefreshCaches initializes the RefreshCaches use case and registers it
// in the dependency container.
type InitRefreshCaches struct {
	Cache  domain.EmbeddingCache `resolve:""`
	Warmer WarmSemanticCache     `resolve:""`
	Logger *log.Logger           `resolve:""`
}

// Initialize registers the RefreshCachesImpl use case in the dependency container.
func (irc InitRefreshCaches) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshCaches](NewRefreshCachesImpl(irc.Cache, irc.Warmer, irc.Logger))
	return ctx, nil
}
