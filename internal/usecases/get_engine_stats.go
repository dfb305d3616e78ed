package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// EngineStats is a point-in-time snapshot of the discovery engine.
type EngineStats struct {
	CatalogGames int
	IndexedGames int
	Cache        domain.EmbeddingCacheStats
}

// GetEngineStats is the use case interface for the admin stats endpoint.
type GetEngineStats interface {
	Execute(ctx context.Context) (EngineStats, error)
}

// GetEngineStatsImpl is the implementation of the GetEngineStats use case.
type GetEngineStatsImpl struct {
	games domain.GameRepository
	index domain.VectorIndex
	cache domain.EmbeddingCache
}

// NewGetEngineStatsImpl creates a new instance of GetEngineStatsImpl.
func NewGetEngineStatsImpl(games domain.GameRepository, index domain.VectorIndex, cache domain.EmbeddingCache) GetEngineStatsImpl {
	return GetEngineStatsImpl{
		games: games,
		index: index,
		cache: cache,
	}
}

// Execute gathers catalog, index and cache statistics.
func (ges GetEngineStatsImpl) Execute(ctx context.Context) (EngineStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	catalogCount, err := ges.games.CountGames(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return EngineStats{}, err
	}

	indexedCount, err := ges.index.Count(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return EngineStats{}, err
	}

	return EngineStats{
		CatalogGames: catalogCount,
		IndexedGames: indexedCount,
		Cache:        ges.cache.Stats(),
	}, nil
}

// InitGetEngineStats initializes the GetEngineStats use case and registers it
// in the dependency container.
type InitGetEngineStats struct {
	Games domain.GameRepository `resolve:""`
	Index domain.VectorIndex    `resolve:""`
	Cache domain.EmbeddingCache `resolve:""`
}

// Initialize registers the GetEngineStatsImpl use case in the dependency container.
func (ige InitGetEngineStats) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetEngineStats](NewGetEngineStatsImpl(ige.Games, ige.Index, ige.Cache))
	return ctx, nil
}
