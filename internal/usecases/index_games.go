package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/semantic"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// IndexBatchSize is how many games are embedded and upserted per batch.
const IndexBatchSize = 50

// IndexGames is the use case interface for (re)building the vector index
// from the game catalog.
type IndexGames interface {
	// ExecuteAll embeds every game in the catalog and returns how many were indexed.
	ExecuteAll(ctx context.Context) (int, error)
	// ExecuteGames reindexes the given game IDs, removing vectors for games
	// that no longer exist in the catalog.
	ExecuteGames(ctx context.Context, ids []uuid.UUID) error
}

// IndexGamesImpl is the implementation of the IndexGames use case.
type IndexGamesImpl struct {
	games   domain.GameRepository
	encoder domain.SemanticEncoder
	index   domain.VectorIndex
	logger  *log.Logger
}

// NewIndexGamesImpl creates a new instance of IndexGamesImpl.
func NewIndexGamesImpl(games domain.GameRepository, encoder domain.SemanticEncoder, index domain.VectorIndex, logger *log.Logger) IndexGamesImpl {
	return IndexGamesImpl{
		games:   games,
		encoder: encoder,
		index:   index,
		logger:  logger,
	}
}

// ExecuteAll embeds every game in the catalog in stable pages and upserts
// them into the vector index.
func (ig IndexGamesImpl) ExecuteAll(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := ig.index.EnsureCollection(spanCtx, domain.EmbeddingDims)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	indexed := 0
	for page := 0; ; page++ {
		games, hasMore, err := ig.games.ListGamesForIndexing(spanCtx, page, IndexBatchSize)
		if telemetry.RecordErrorAndStatus(span, err) {
			return indexed, err
		}

		count, err := ig.indexBatch(spanCtx, games)
		indexed += count
		if telemetry.RecordErrorAndStatus(span, err) {
			return indexed, err
		}

		if !hasMore {
			break
		}
	}

	ig.logger.Printf("IndexGames: indexed %d games", indexed)
	return indexed, nil
}

// ExecuteGames reindexes specific games after catalog changes. IDs missing
// from the catalog are treated as deletions.
func (ig IndexGamesImpl) ExecuteGames(ctx context.Context, ids []uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := ig.index.EnsureCollection(spanCtx, domain.EmbeddingDims)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	var batch []domain.Game
	var deleted []uuid.UUID
	for _, id := range ids {
		game, found, err := ig.games.GetGame(spanCtx, id)
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		if !found {
			deleted = append(deleted, id)
			continue
		}
		batch = append(batch, game)
	}

	if len(deleted) > 0 {
		if err := ig.index.Delete(spanCtx, deleted); telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}

	_, err = ig.indexBatch(spanCtx, batch)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// indexBatch embeds games in IndexBatchSize chunks and upserts them. A single
// game's embedding failure is logged and skipped; a dimension mismatch aborts
// because the index is fixed-dimension once created.
func (ig IndexGamesImpl) indexBatch(ctx context.Context, games []domain.Game) (int, error) {
	indexed := 0
	for start := 0; start < len(games); start += IndexBatchSize {
		end := min(start+IndexBatchSize, len(games))

		vectors := make([]domain.GameVector, 0, end-start)
		for _, game := range games[start:end] {
			vector, err := ig.encoder.EncodeGame(ctx, game)
			if err != nil {
				ig.logger.Printf("IndexGames: skipping game %s: embedding failed: %v", game.ID, err)
				continue
			}
			if err := semantic.ValidateDims(vector); err != nil {
				return indexed, fmt.Errorf("game %s: %w", game.ID, err)
			}
			vectors = append(vectors, domain.GameVector{Game: game, Vector: vector})
		}

		if len(vectors) == 0 {
			continue
		}
		if err := ig.index.UpsertBatch(ctx, vectors); err != nil {
			return indexed, err
		}
		indexed += len(vectors)
		RecordGamesIndexed(ctx, len(vectors))
	}
	return indexed, nil
}

// InitIndexGames initializes the IndexGames use case and registers it in the
// dependency container.
type InitIndexGames struct {
	Games   domain.GameRepository  `resolve:""`
	Encoder domain.SemanticEncoder `resolve:""`
	Index   domain.VectorIndex     `resolve:""`
	Logger  *log.Logger            `resolve:""`
}

// Initialize registers the IndexGamesImpl use case in the dependency container.
func (iig InitIndexGames) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IndexGames](NewIndexGamesImpl(iig.Games, iig.Encoder, iig.Index, iig.Logger))
	return ctx, nil
}
