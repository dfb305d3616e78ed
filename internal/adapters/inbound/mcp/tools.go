package mcp

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type recommendGamesArgs struct {
	Query              string   `json:"query" jsonschema:"natural language description of the games the user wants"`
	ConversationID     string   `json:"conversation_id,omitempty" jsonschema:"conversation to continue; omit to start a new one"`
	FavoriteGenres     []string `json:"favorite_genres,omitempty"`
	LikedGames         []string `json:"liked_games,omitempty"`
	FollowedFranchises []string `json:"followed_franchises,omitempty"`
	Limit              int      `json:"limit,omitempty" jsonschema:"maximum number of recommendations"`
}

type recommendedGame struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	ReleaseYear int      `json:"release_year,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Confidence  float64  `json:"confidence"`
	Reasons     []string `json:"reasons,omitempty"`
}

type recommendGamesResult struct {
	ConversationID   string            `json:"conversation_id"`
	Message          string            `json:"message"`
	RequiresFollowUp bool              `json:"requires_follow_up"`
	FollowUpQuestion string            `json:"follow_up_question,omitempty"`
	Confidence       float64           `json:"confidence"`
	Games            []recommendedGame `json:"games"`
}

func (s GameDiscoveryMCPServer) recommendGames(ctx context.Context, _ *sdk.CallToolRequest, args recommendGamesArgs) (*sdk.CallToolResult, recommendGamesResult, error) {
	conversationID := uuid.Nil
	if args.ConversationID != "" {
		id, err := uuid.Parse(args.ConversationID)
		if err != nil {
			return nil, recommendGamesResult{}, fmt.Errorf("invalid conversation_id: %v", err)
		}
		conversationID = id
	}

	resp, err := s.RecommendGamesUseCase.Execute(ctx, domain.RecommendationRequest{
		ConversationID: conversationID,
		Query:          args.Query,
		Preferences: domain.UserPreferences{
			FavoriteGenres:     args.FavoriteGenres,
			LikedGames:         args.LikedGames,
			FollowedFranchises: args.FollowedFranchises,
		},
		Limit: args.Limit,
	})
	if err != nil {
		return nil, recommendGamesResult{}, err
	}

	result := recommendGamesResult{
		ConversationID:   resp.ConversationID.String(),
		Message:          resp.Message,
		RequiresFollowUp: resp.RequiresFollowUp,
		FollowUpQuestion: resp.FollowUpQuestion,
		Confidence:       resp.OverallConfidence,
		Games:            []recommendedGame{},
	}
	for _, rec := range resp.Recommendations {
		g := toRecommendedGame(rec.Game)
		g.Confidence = rec.Confidence
		g.Reasons = rec.Reasons
		result.Games = append(result.Games, g)
	}
	return nil, result, nil
}

type searchGamesArgs struct {
	Query              string   `json:"query" jsonschema:"free-text description of the games to find"`
	Genres             []string `json:"genres,omitempty"`
	Platforms          []string `json:"platforms,omitempty"`
	GameModes          []string `json:"game_modes,omitempty"`
	PlayerPerspectives []string `json:"player_perspectives,omitempty"`
	ReleasedAfter      string   `json:"released_after,omitempty" jsonschema:"earliest release date, as a year or date"`
	ReleasedBefore     string   `json:"released_before,omitempty" jsonschema:"latest release date, as a year or date"`
	MinRating          float64  `json:"min_rating,omitempty"`
	Limit              int      `json:"limit,omitempty"`
}

type searchHit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	ReleaseYear int      `json:"release_year,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Score       float64  `json:"score"`
}

type searchGamesResult struct {
	Games []searchHit `json:"games"`
}

func (s GameDiscoveryMCPServer) searchGames(ctx context.Context, _ *sdk.CallToolRequest, args searchGamesArgs) (*sdk.CallToolResult, searchGamesResult, error) {
	input := usecases.SearchGamesInput{
		Query:              args.Query,
		Genres:             args.Genres,
		Platforms:          args.Platforms,
		GameModes:          args.GameModes,
		PlayerPerspectives: args.PlayerPerspectives,
		MinRating:          args.MinRating,
		Limit:              args.Limit,
	}
	if args.ReleasedAfter != "" {
		input.ReleasedAfter = &args.ReleasedAfter
	}
	if args.ReleasedBefore != "" {
		input.ReleasedBefore = &args.ReleasedBefore
	}

	hits, err := s.SearchGamesUseCase.Execute(ctx, input)
	if err != nil {
		return nil, searchGamesResult{}, err
	}
	return nil, toSearchGamesResult(hits), nil
}

type similarGamesArgs struct {
	GameID string `json:"game_id" jsonschema:"catalog id of the game to find matches for"`
	Limit  int    `json:"limit,omitempty"`
}

func (s GameDiscoveryMCPServer) similarGames(ctx context.Context, _ *sdk.CallToolRequest, args similarGamesArgs) (*sdk.CallToolResult, searchGamesResult, error) {
	gameID, err := uuid.Parse(args.GameID)
	if err != nil {
		return nil, searchGamesResult{}, fmt.Errorf("invalid game_id: %v", err)
	}

	hits, err := s.GetSimilarGamesUseCase.Execute(ctx, gameID, args.Limit)
	if err != nil {
		return nil, searchGamesResult{}, err
	}
	return nil, toSearchGamesResult(hits), nil
}

func toRecommendedGame(g domain.Game) recommendedGame {
	return recommendedGame{
		ID:          g.ID.String(),
		Name:        g.Name,
		Summary:     g.Summary,
		Genres:      g.Genres,
		Platforms:   g.PlatformNames(),
		ReleaseYear: g.ReleaseYear(),
		Rating:      g.Rating,
	}
}

func toSearchGamesResult(hits []domain.ScoredGame) searchGamesResult {
	result := searchGamesResult{Games: []searchHit{}}
	for _, hit := range hits {
		result.Games = append(result.Games, searchHit{
			ID:          hit.Game.ID.String(),
			Name:        hit.Game.Name,
			Summary:     hit.Game.Summary,
			Genres:      hit.Game.Genres,
			Platforms:   hit.Game.PlatformNames(),
			ReleaseYear: hit.Game.ReleaseYear(),
			Rating:      hit.Game.Rating,
			Score:       hit.Score,
		})
	}
	return result
}
