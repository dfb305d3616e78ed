package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/common"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

const (
	// DefaultRecommendationLimit caps results when the caller does not ask
	// for a specific count.
	DefaultRecommendationLimit = 5
	// MaxRecommendationLimit is the hard ceiling per request.
	MaxRecommendationLimit = 25

	// FollowUpConfidenceThreshold is the overall confidence below which the
	// engine asks a clarifying question instead of answering.
	FollowUpConfidenceThreshold = 0.7

	// QueryBlendWeight is the share of the query embedding when blending with
	// user preference signals.
	QueryBlendWeight = 0.7

	favoriteGenreBoost = 0.2
	likedGameBoost     = 0.1
	franchiseBoost     = 0.15

	// recommendationFailureMessage is returned verbatim when the pipeline
	// cannot produce an answer.
	recommendationFailureMessage = "I'm having trouble processing your request right now. Please try again."

	defaultFollowUpQuestion = "Could you tell me a bit more about what you're looking for? A genre, a platform, or a game you enjoyed helps."
)

// RecommendGames is the use case interface for the conversational
// recommendation pipeline.
type RecommendGames interface {
	Execute(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error)
}

// RecommendGamesImpl is the implementation of the RecommendGames use case.
type RecommendGamesImpl struct {
	analyzer      AnalyzeQuery
	explainer     ExplainResults
	encoder       domain.SemanticEncoder
	index         domain.VectorIndex
	resolver      domain.CategoryResolver
	conversations domain.ConversationStateRepository
	timeProvider  domain.CurrentTimeProvider
	logger        *log.Logger
	createUUID    func() uuid.UUID
}

// NewRecommendGamesImpl creates a new instance of RecommendGamesImpl.
func NewRecommendGamesImpl(
	analyzer AnalyzeQuery,
	explainer ExplainResults,
	encoder domain.SemanticEncoder,
	index domain.VectorIndex,
	resolver domain.CategoryResolver,
	conversations domain.ConversationStateRepository,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) RecommendGamesImpl {
	return RecommendGamesImpl{
		analyzer:      analyzer,
		explainer:     explainer,
		encoder:       encoder,
		index:         index,
		resolver:      resolver,
		conversations: conversations,
		timeProvider:  timeProvider,
		logger:        logger,
		createUUID:    uuid.New,
	}
}

// Execute runs one turn of the recommendation dialogue. Pipeline failures are
// reported as a graceful response rather than an error so the conversation
// can continue.
func (rg RecommendGamesImpl) Execute(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(req.Query) == "" {
		err := domain.NewValidationErr("query must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.RecommendationResponse{}, err
	}

	conversationID := req.ConversationID
	if conversationID == uuid.Nil {
		conversationID = rg.createUUID()
	}

	state, found := rg.conversations.GetState(conversationID)
	if !found {
		state = domain.ConversationState{ID: conversationID}
	}

	response, err := rg.answer(spanCtx, req, conversationID, state)
	if err != nil {
		rg.logger.Printf("RecommendGames: pipeline failed for conversation %s: %v", conversationID, err)
		telemetry.RecordErrorAndStatus(span, err)
		response = domain.RecommendationResponse{
			ConversationID: conversationID,
			Message:        recommendationFailureMessage,
		}
	}

	rg.recordExchange(state, req, response)

	return response, nil
}

// answer runs the analysis, embedding and search pipeline for one turn.
func (rg RecommendGamesImpl) answer(ctx context.Context, req domain.RecommendationRequest, conversationID uuid.UUID, state domain.ConversationState) (domain.RecommendationResponse, error) {
	analysis, err := rg.analyzer.Execute(ctx, req.Query, state.Exchanges)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	if analysis.Ambiguous {
		RecordRecommendationFollowUp(ctx, "ambiguous")
		return followUpResponse(conversationID, analysis.FollowUpQuestion), nil
	}

	filter, err := NewGameSearchBuilder(rg.resolver).
		WithGenres(analysis.Genres).
		WithPlatforms(analysis.Platforms).
		WithGameModes(analysis.GameModes).
		WithPlayerPerspectives(analysis.PlayerPerspectives).
		WithReleaseYears(analysis.ReleaseYearFrom, analysis.ReleaseYearTo).
		Build()
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	vector, err := rg.buildSearchVector(ctx, req, analysis)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		limit = MaxRecommendationLimit
	}

	hits, err := rg.index.Search(ctx, vector, filter, limit)
	if err != nil {
		return domain.RecommendationResponse{}, err
	}

	recommendations := rg.scoreHits(hits, analysis, req.Preferences)
	overall := overallConfidence(recommendations)

	if len(recommendations) == 0 {
		RecordRecommendationFollowUp(ctx, "no_results")
		response := followUpResponse(conversationID, analysis.FollowUpQuestion)
		response.Message = summaryMessage(nil, analysis)
		return response, nil
	}

	rg.explainRecommendations(ctx, req.Query, recommendations)

	if reason, ok := followUpReason(overall, len(recommendations), limit); ok {
		RecordRecommendationFollowUp(ctx, reason)
		response := followUpResponse(conversationID, analysis.FollowUpQuestion)
		response.Recommendations = recommendations
		response.OverallConfidence = overall
		return response, nil
	}

	RecordRecommendationsServed(ctx, len(recommendations), analysis.Intent)

	return domain.RecommendationResponse{
		ConversationID:    conversationID,
		Recommendations:   recommendations,
		Message:           summaryMessage(recommendations, analysis),
		OverallConfidence: overall,
	}, nil
}

// followUpReason reports whether a results turn should still ask a clarifying
// question: confidence below the threshold, or fewer results than half of
// what the caller asked for.
func followUpReason(overall float64, count, limit int) (string, bool) {
	if overall < FollowUpConfidenceThreshold {
		return "low_confidence", true
	}
	if count*2 < limit {
		return "few_results", true
	}
	return "", false
}

// buildSearchVector embeds the query and, when preference signals exist,
// blends in a preference embedding.
func (rg RecommendGamesImpl) buildSearchVector(ctx context.Context, req domain.RecommendationRequest, analysis domain.QueryAnalysis) (domain.EmbeddingVector, error) {
	queryText := req.Query
	if analysis.SimilarToGame != "" {
		queryText = fmt.Sprintf("%s games similar to %s", req.Query, analysis.SimilarToGame)
	}

	queryVector, err := rg.encoder.EncodeQuery(ctx, queryText)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}

	if !req.Preferences.HasSignals() {
		return queryVector, nil
	}

	prefVector, err := rg.encoder.EncodeText(ctx, preferenceText(req.Preferences))
	if err != nil {
		return domain.EmbeddingVector{}, err
	}

	blended, ok := common.BlendVectors(queryVector.Vector, prefVector.Vector, QueryBlendWeight)
	if !ok {
		return queryVector, nil
	}
	common.NormalizeVector(blended)
	return domain.EmbeddingVector{Vector: blended}, nil
}

// scoreHits converts search hits into recommendations, applying preference
// boosts on top of the similarity score.
func (rg RecommendGamesImpl) scoreHits(hits []domain.ScoredGame, analysis domain.QueryAnalysis, prefs domain.UserPreferences) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(hits))
	for _, hit := range hits {
		confidence := hit.Score
		reasons := matchReasons(hit.Game, analysis)

		if genre, ok := firstOverlap(hit.Game.Genres, prefs.FavoriteGenres); ok {
			confidence += favoriteGenreBoost
			reasons = append(reasons, fmt.Sprintf("matches your favorite genre %s", genre))
		}
		if liked, ok := containsFold(prefs.LikedGames, hit.Game.Name); ok {
			confidence += likedGameBoost
			reasons = append(reasons, fmt.Sprintf("you liked %s", liked))
		}
		if hit.Game.Franchise != "" {
			if franchise, ok := containsFold(prefs.FollowedFranchises, hit.Game.Franchise); ok {
				confidence += franchiseBoost
				reasons = append(reasons, fmt.Sprintf("part of the %s franchise you follow", franchise))
			}
		}

		if confidence > 1 {
			confidence = 1
		}

		recommendations = append(recommendations, domain.Recommendation{
			Game:       hit.Game,
			Confidence: confidence,
			Reasons:    reasons,
		})
	}
	return recommendations
}

// explainRecommendations appends one generated explanation to each
// recommendation's reasons. It degrades progressively: one batch call, then
// per-result calls, then a templated line built from the game itself. Every
// recommendation ends up with at least one reason, and a generation failure
// never fails the request.
func (rg RecommendGamesImpl) explainRecommendations(ctx context.Context, query string, recommendations []domain.Recommendation) {
	explanations, err := rg.explainer.ExplainBatch(ctx, query, recommendations)
	if err != nil || len(explanations) != len(recommendations) {
		if err != nil {
			rg.logger.Printf("RecommendGames: batch explanation failed, explaining per result: %v", err)
		}
		explanations = rg.explainEach(ctx, query, recommendations)
	}

	for i := range recommendations {
		text := strings.TrimSpace(explanations[i])
		if text == "" {
			text = templatedExplanation(recommendations[i].Game)
		}
		recommendations[i].Reasons = append(recommendations[i].Reasons, text)
	}
}

// explainEach explains every recommendation individually, substituting a
// templated line for the ones that fail.
func (rg RecommendGamesImpl) explainEach(ctx context.Context, query string, recommendations []domain.Recommendation) []string {
	explanations := make([]string, len(recommendations))
	for i, rec := range recommendations {
		text, err := rg.explainer.ExplainOne(ctx, query, rec)
		if err != nil {
			rg.logger.Printf("RecommendGames: explanation failed for %s: %v", rec.Game.Name, err)
			text = templatedExplanation(rec.Game)
		}
		explanations[i] = text
	}
	return explanations
}

// templatedExplanation is the last explanation tier, built purely from the
// game's own attributes.
func templatedExplanation(game domain.Game) string {
	if len(game.Genres) > 0 {
		return fmt.Sprintf("%s is a strong %s pick for this request", game.Name, strings.ToLower(game.Genres[0]))
	}
	return fmt.Sprintf("%s closely matches what you asked for", game.Name)
}

// preferenceText flattens preference signals into a text the encoder can embed.
func preferenceText(prefs domain.UserPreferences) string {
	var parts []string
	parts = append(parts, prefs.FavoriteGenres...)
	parts = append(parts, prefs.LikedGames...)
	parts = append(parts, prefs.FollowedFranchises...)
	return strings.ToLower(strings.Join(parts, " "))
}

// recordExchange appends this turn to the conversation state, together with
// the games it surfaced, and persists it.
func (rg RecommendGamesImpl) recordExchange(state domain.ConversationState, req domain.RecommendationRequest, response domain.RecommendationResponse) {
	message := response.Message
	if response.RequiresFollowUp {
		message = response.FollowUpQuestion
	}
	if state.UserID == uuid.Nil {
		state.UserID = req.UserID
	}
	state.LastRecommendedIDs = recommendedIDs(response.Recommendations)
	state.SetContext("requires_follow_up", response.RequiresFollowUp)
	state.AppendExchange(domain.Exchange{
		Query:     req.Query,
		Response:  message,
		CreatedAt: rg.timeProvider.Now(),
	})
	rg.conversations.SaveState(state)
}

// recommendedIDs collects the game IDs of a turn's recommendations.
func recommendedIDs(recommendations []domain.Recommendation) []uuid.UUID {
	if len(recommendations) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(recommendations))
	for _, rec := range recommendations {
		ids = append(ids, rec.Game.ID)
	}
	return ids
}

// followUpResponse builds a clarification turn.
func followUpResponse(conversationID uuid.UUID, question string) domain.RecommendationResponse {
	if question == "" {
		question = defaultFollowUpQuestion
	}
	return domain.RecommendationResponse{
		ConversationID:   conversationID,
		RequiresFollowUp: true,
		FollowUpQuestion: question,
	}
}

// summaryMessage builds a short deterministic answer line.
func summaryMessage(recommendations []domain.Recommendation, analysis domain.QueryAnalysis) string {
	if len(recommendations) == 0 {
		return "I couldn't find games matching your request. Try loosening a filter or naming a genre you enjoy."
	}

	subject := "games"
	if len(analysis.Genres) > 0 {
		subject = fmt.Sprintf("%s games", strings.ToLower(analysis.Genres[0]))
	}
	if analysis.SimilarToGame != "" {
		subject = fmt.Sprintf("games similar to %s", analysis.SimilarToGame)
	}

	return fmt.Sprintf("Here are %d %s I think you'll enjoy, starting with %s.",
		len(recommendations), subject, recommendations[0].Game.Name)
}

// matchReasons explains which requested filters a game satisfies.
func matchReasons(game domain.Game, analysis domain.QueryAnalysis) []string {
	var reasons []string
	if genre, ok := firstOverlap(game.Genres, analysis.Genres); ok {
		reasons = append(reasons, fmt.Sprintf("matches genre %s", genre))
	}
	if platform, ok := firstOverlap(game.PlatformNames(), analysis.Platforms); ok {
		reasons = append(reasons, fmt.Sprintf("available on %s", platform))
	}
	if mode, ok := firstOverlap(game.GameModes, analysis.GameModes); ok {
		reasons = append(reasons, fmt.Sprintf("supports %s", strings.ToLower(mode)))
	}
	if analysis.ReleaseYearFrom != nil || analysis.ReleaseYearTo != nil {
		if year := game.ReleaseYear(); year != 0 {
			reasons = append(reasons, fmt.Sprintf("released in %d", year))
		}
	}
	return reasons
}

// overallConfidence is the mean confidence of the returned recommendations.
func overallConfidence(recommendations []domain.Recommendation) float64 {
	if len(recommendations) == 0 {
		return 0
	}
	var sum float64
	for _, rec := range recommendations {
		sum += rec.Confidence
	}
	return sum / float64(len(recommendations))
}

// firstOverlap returns the first value present in both lists, comparing
// case-insensitively; the returned value comes from the first list.
func firstOverlap(values, wanted []string) (string, bool) {
	for _, value := range values {
		if _, ok := containsFold(wanted, value); ok {
			return value, true
		}
	}
	return "", false
}

// containsFold reports whether list contains value case-insensitively and
// returns the matching list entry.
func containsFold(list []string, value string) (string, bool) {
	for _, entry := range list {
		if strings.EqualFold(entry, value) {
			return entry, true
		}
	}
	return "", false
}

// InitRecommendGames initializes the RecommendGames use case and registers it
// in the dependency container.
type InitRecommendGames struct {
	Analyzer      AnalyzeQuery                       `resolve:""`
	Explainer     ExplainResults                     `resolve:""`
	Encoder       domain.SemanticEncoder             `resolve:""`
	Index         domain.VectorIndex                 `resolve:""`
	Resolver      domain.CategoryResolver            `resolve:""`
	Conversations domain.ConversationStateRepository `resolve:""`
	TimeService   domain.CurrentTimeProvider         `resolve:""`
	Logger        *log.Logger                        `resolve:""`
}

// Initialize registers the RecommendGamesImpl use case in the dependency container.
func (irg InitRecommendGames) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecommendGames](NewRecommendGamesImpl(
		irg.Analyzer,
		irg.Explainer,
		irg.Encoder,
		irg.Index,
		irg.Resolver,
		irg.Conversations,
		irg.TimeService,
		irg.Logger,
	))
	return ctx, nil
}
