package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// AnalyzeQuery is the use case interface for extracting structured search
// criteria from a natural-language request.
type AnalyzeQuery interface {
	Execute(ctx context.Context, query string, history []domain.Exchange) (domain.QueryAnalysis, error)
}

// AnalyzeQueryImpl is the implementation of the AnalyzeQuery use case.
type AnalyzeQueryImpl struct {
	llmClient domain.LLMClient
	resolver  domain.CategoryResolver
	model     string
}

// NewAnalyzeQueryImpl creates a new instance of AnalyzeQueryImpl.
func NewAnalyzeQueryImpl(llmClient domain.LLMClient, resolver domain.CategoryResolver, model string) AnalyzeQueryImpl {
	return AnalyzeQueryImpl{
		llmClient: llmClient,
		resolver:  resolver,
		model:     model,
	}
}

// Execute asks the language model to interpret the request and normalizes the
// extracted categories to the catalog vocabulary.
func (aq AnalyzeQueryImpl) Execute(ctx context.Context, query string, history []domain.Exchange) (domain.QueryAnalysis, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		err := domain.NewValidationErr("query must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.QueryAnalysis{}, err
	}

	messages, err := aq.buildPromptMessages(trimmed, history)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.QueryAnalysis{}, err
	}

	content, err := aq.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       aq.model,
		Messages:    messages,
		Temperature: 0.1,
		JSONMode:    true,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.QueryAnalysis{}, err
	}

	analysis, err := aq.parseAnalysis(content)
	if err != nil {
		// Malformed model output degrades to a clarification turn instead of
		// failing the request.
		span.RecordError(err)
		return fallbackAnalysis(trimmed), nil
	}

	return analysis, nil
}

// fallbackAnalysis is returned when the model's answer cannot be parsed: an
// ambiguous, low-confidence analysis that echoes the query back to the user.
func fallbackAnalysis(query string) domain.QueryAnalysis {
	return domain.QueryAnalysis{
		Intent:           "recommendation",
		Ambiguous:        true,
		FollowUpQuestion: fmt.Sprintf("I didn't quite catch what you meant by %q. Could you name a genre, platform, or a game you enjoyed?", query),
	}
}

//go:embed prompts/analyze_query.yml
var analyzeQueryPrompt embed.FS

// catalogVocabulary is the set of canonical catalog values handed to the LLM
// so it maps user wording onto known filters.
type catalogVocabulary struct {
	Genres             []string
	Platforms          []string
	GameModes          []string
	PlayerPerspectives []string
	Themes             []string
}

// buildPromptMessages constructs the LLM messages for the analysis prompt.
func (aq AnalyzeQueryImpl) buildPromptMessages(query string, history []domain.Exchange) ([]domain.LLMChatMessage, error) {
	vocab := catalogVocabulary{
		Genres:             aq.resolver.Canonical(domain.CategoryKind_Genre),
		Platforms:          aq.resolver.Canonical(domain.CategoryKind_Platform),
		GameModes:          aq.resolver.Canonical(domain.CategoryKind_GameMode),
		PlayerPerspectives: aq.resolver.Canonical(domain.CategoryKind_Perspective),
		Themes:             aq.resolver.Canonical(domain.CategoryKind_Theme),
	}
	vocabTOON, err := toon.MarshalString(vocab, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog vocabulary: %w", err)
	}

	historyText := "none"
	if len(history) > 0 {
		var b strings.Builder
		for _, exchange := range history {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", exchange.Query, exchange.Response)
		}
		historyText = strings.TrimSpace(b.String())
	}

	file, err := analyzeQueryPrompt.Open("prompts/analyze_query.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open analysis prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode analysis prompt: %w", err)
	}
	if len(messages) != 2 {
		return nil, fmt.Errorf("analysis prompt must contain exactly 2 messages, got %d", len(messages))
	}

	messages[0].Content = fmt.Sprintf(messages[0].Content, vocabTOON)
	messages[1].Content = fmt.Sprintf(messages[1].Content, historyText, query)

	return messages, nil
}

// queryAnalysisPayload is the JSON contract the model must answer with.
type queryAnalysisPayload struct {
	Intent             string   `json:"intent"`
	Genres             []string `json:"genres"`
	Platforms          []string `json:"platforms"`
	GameModes          []string `json:"game_modes"`
	PlayerPerspectives []string `json:"player_perspectives"`
	Themes             []string `json:"themes"`
	ReleaseYearFrom    *int     `json:"release_year_from"`
	ReleaseYearTo      *int     `json:"release_year_to"`
	SimilarToGame      string   `json:"similar_to_game"`
	Ambiguous          bool     `json:"ambiguous"`
	FollowUpQuestion   string   `json:"follow_up_question"`
}

// parseAnalysis extracts the JSON object from the model output and maps the
// categories back onto canonical catalog values.
func (aq AnalyzeQueryImpl) parseAnalysis(content string) (domain.QueryAnalysis, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return domain.QueryAnalysis{}, err
	}

	var payload queryAnalysisPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.QueryAnalysis{}, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	intent := strings.ToLower(strings.TrimSpace(payload.Intent))
	switch intent {
	case "recommendation", "search", "similar":
	default:
		intent = "recommendation"
	}

	return domain.QueryAnalysis{
		Intent:             intent,
		Genres:             aq.resolver.ResolveAll(domain.CategoryKind_Genre, payload.Genres),
		Platforms:          aq.resolver.ResolveAll(domain.CategoryKind_Platform, payload.Platforms),
		GameModes:          aq.resolver.ResolveAll(domain.CategoryKind_GameMode, payload.GameModes),
		PlayerPerspectives: aq.resolver.ResolveAll(domain.CategoryKind_Perspective, payload.PlayerPerspectives),
		Themes:             aq.resolver.ResolveAll(domain.CategoryKind_Theme, payload.Themes),
		ReleaseYearFrom:    payload.ReleaseYearFrom,
		ReleaseYearTo:      payload.ReleaseYearTo,
		SimilarToGame:      strings.TrimSpace(payload.SimilarToGame),
		Ambiguous:          payload.Ambiguous,
		FollowUpQuestion:   strings.TrimSpace(payload.FollowUpQuestion),
	}, nil
}

// extractJSONObject pulls the outermost JSON object out of the model output,
// tolerating markdown code fences around it.
func extractJSONObject(content string) (string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object in model response")
	}
	return content[start : end+1], nil
}

// InitAnalyzeQuery initializes the AnalyzeQuery use case and registers it in
// the dependency container.
type InitAnalyzeQuery struct {
	LLMClient domain.LLMClient        `resolve:""`
	Resolver  domain.CategoryResolver `resolve:""`
	ChatModel string                  `config:"LLM_ANALYSIS_MODEL"`
}

// Initialize registers the AnalyzeQueryImpl use case in the dependency container.
func (iaq InitAnalyzeQuery) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeQuery](NewAnalyzeQueryImpl(iaq.LLMClient, iaq.Resolver, iaq.ChatModel))
	return ctx, nil
}
