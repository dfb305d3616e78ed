package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SearchGamesInput is the structured search request.
type SearchGamesInput struct {
	Query              string
	Genres             []string
	Platforms          []string
	GameModes          []string
	PlayerPerspectives []string
	ReleasedAfter      *string
	ReleasedBefore     *string
	MinRating          float64
	Limit              int
}

// SearchGames is the use case interface for semantic search with explicit
// structured filters, without the conversational layer.
type SearchGames interface {
	Execute(ctx context.Context, input SearchGamesInput) ([]domain.ScoredGame, error)
}

// SearchGamesImpl is the implementation of the SearchGames use case.
type SearchGamesImpl struct {
	encoder  domain.SemanticEncoder
	index    domain.VectorIndex
	resolver domain.CategoryResolver
}

// NewSearchGamesImpl creates a new instance of SearchGamesImpl.
func NewSearchGamesImpl(encoder domain.SemanticEncoder, index domain.VectorIndex, resolver domain.CategoryResolver) SearchGamesImpl {
	return SearchGamesImpl{
		encoder:  encoder,
		index:    index,
		resolver: resolver,
	}
}

// Execute embeds the query text and searches the index with the validated
// filter. When the query is empty, the filter categories become the query text.
func (sg SearchGamesImpl) Execute(ctx context.Context, input SearchGamesInput) ([]domain.ScoredGame, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	filter, err := NewGameSearchBuilder(sg.resolver).
		WithGenres(input.Genres).
		WithPlatforms(input.Platforms).
		WithGameModes(input.GameModes).
		WithPlayerPerspectives(input.PlayerPerspectives).
		WithReleaseDateRange(input.ReleasedAfter, input.ReleasedBefore).
		WithMinRating(input.MinRating).
		Build()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	queryText := strings.TrimSpace(input.Query)
	if queryText == "" {
		queryText = filterText(filter)
	}
	if queryText == "" {
		err := domain.NewValidationErr("search needs a query or at least one category filter")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vector, err := sg.encoder.EncodeQuery(spanCtx, queryText)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		limit = MaxRecommendationLimit
	}

	hits, err := sg.index.Search(spanCtx, vector, filter, limit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return hits, nil
}

// filterText renders the category filters as query text for embedding.
func filterText(filter domain.SearchFilter) string {
	parts := make([]string, 0, 8)
	parts = append(parts, filter.Genres...)
	parts = append(parts, filter.Platforms...)
	parts = append(parts, filter.GameModes...)
	parts = append(parts, filter.PlayerPerspectives...)
	return strings.ToLower(strings.Join(parts, " "))
}

// InitSearchGames initializes the SearchGames use case and registers it in
// the dependency container.
type InitSearchGames struct {
	Encoder  domain.SemanticEncoder  `resolve:""`
	Index    domain.VectorIndex      `resolve:""`
	Resolver domain.CategoryResolver `resolve:""`
}

// Initialize registers the SearchGamesImpl use case in the dependency container.
func (isg InitSearchGames) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SearchGames](NewSearchGamesImpl(isg.Encoder, isg.Index, isg.Resolver))
	return ctx, nil
}
