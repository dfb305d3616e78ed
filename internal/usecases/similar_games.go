package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetSimilarGames is the use case interface for finding games close to an
// existing catalog entry in embedding space.
type GetSimilarGames interface {
	Execute(ctx context.Context, gameID uuid.UUID, limit int) ([]domain.ScoredGame, error)
}

// GetSimilarGamesImpl is the implementation of the GetSimilarGames use case.
type GetSimilarGamesImpl struct {
	games   domain.GameRepository
	encoder domain.SemanticEncoder
	index   domain.VectorIndex
}

// NewGetSimilarGamesImpl creates a new instance of GetSimilarGamesImpl.
func NewGetSimilarGamesImpl(games domain.GameRepository, encoder domain.SemanticEncoder, index domain.VectorIndex) GetSimilarGamesImpl {
	return GetSimilarGamesImpl{
		games:   games,
		encoder: encoder,
		index:   index,
	}
}

// Execute embeds the reference game and returns its nearest neighbours,
// excluding the game itself.
func (gs GetSimilarGamesImpl) Execute(ctx context.Context, gameID uuid.UUID, limit int) ([]domain.ScoredGame, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		limit = MaxRecommendationLimit
	}

	game, found, err := gs.games.GetGame(spanCtx, gameID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("game %s not found", gameID))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vector, err := gs.encoder.EncodeGame(spanCtx, game)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	// Fetch one extra hit since the reference game scores highest against itself.
	hits, err := gs.index.Search(spanCtx, vector, domain.SearchFilter{}, limit+1)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	similar := make([]domain.ScoredGame, 0, limit)
	for _, hit := range hits {
		if hit.Game.ID == gameID {
			continue
		}
		similar = append(similar, hit)
		if len(similar) == limit {
			break
		}
	}
	return similar, nil
}

// InitGetSimilarGames initializes the GetSimilarGames use case and registers
// it in the dependency container.
type InitGetSimilarGames struct {
	Games   domain.GameRepository  `resolve:""`
	Encoder domain.SemanticEncoder `resolve:""`
	Index   domain.VectorIndex     `resolve:""`
}

// Initialize registers the GetSimilarGamesImpl use case in the dependency container.
func (igs InitGetSimilarGames) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetSimilarGames](NewGetSimilarGamesImpl(igs.Games, igs.Encoder, igs.Index))
	return ctx, nil
}
