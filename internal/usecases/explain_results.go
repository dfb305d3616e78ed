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
	"go.yaml.in/yaml/v3"
)

// maxSummaryCharsInPrompt caps how much of each game summary reaches the
// explanation prompt.
const maxSummaryCharsInPrompt = 100

// ExplainResults is the use case interface for generating user-facing
// explanations of why games were recommended.
type ExplainResults interface {
	// ExplainBatch returns one explanation per recommendation, aligned by index.
	ExplainBatch(ctx context.Context, query string, recommendations []domain.Recommendation) ([]string, error)
	// ExplainOne explains a single recommendation.
	ExplainOne(ctx context.Context, query string, recommendation domain.Recommendation) (string, error)
}

// ExplainResultsImpl is the implementation of the ExplainResults use case.
type ExplainResultsImpl struct {
	llmClient domain.LLMClient
	model     string
}

// NewExplainResultsImpl creates a new instance of ExplainResultsImpl.
func NewExplainResultsImpl(llmClient domain.LLMClient, model string) ExplainResultsImpl {
	return ExplainResultsImpl{
		llmClient: llmClient,
		model:     model,
	}
}

//go:embed prompts/explain_results.yml
var explainResultsPrompt embed.FS

// ExplainBatch asks the language model for one explanation per recommendation
// in a single call. The reply must align with the input by index.
func (er ExplainResultsImpl) ExplainBatch(ctx context.Context, query string, recommendations []domain.Recommendation) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(recommendations) == 0 {
		return nil, nil
	}

	messages, err := er.buildPromptMessages(query, gamesPromptText(recommendations))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	content, err := er.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       er.model,
		Messages:    messages,
		Temperature: 0.4,
		JSONMode:    true,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	explanations, err := parseExplanations(content)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(explanations) != len(recommendations) {
		err := fmt.Errorf("got %d explanations for %d recommendations", len(explanations), len(recommendations))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	return explanations, nil
}

// ExplainOne explains a single recommendation with a plain-text completion.
func (er ExplainResultsImpl) ExplainOne(ctx context.Context, query string, recommendation domain.Recommendation) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, err := er.buildPromptMessages(query, gamesPromptText([]domain.Recommendation{recommendation}))
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	content, err := er.llmClient.Chat(spanCtx, domain.LLMChatRequest{
		Model:       er.model,
		Messages:    messages,
		Temperature: 0.4,
		JSONMode:    true,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	explanations, err := parseExplanations(content)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	if len(explanations) == 0 || strings.TrimSpace(explanations[0]) == "" {
		err := fmt.Errorf("empty explanation")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	return strings.TrimSpace(explanations[0]), nil
}

// buildPromptMessages constructs the LLM messages for the explanation prompt.
func (er ExplainResultsImpl) buildPromptMessages(query, gamesText string) ([]domain.LLMChatMessage, error) {
	file, err := explainResultsPrompt.Open("prompts/explain_results.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open explanation prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode explanation prompt: %w", err)
	}
	if len(messages) != 2 {
		return nil, fmt.Errorf("explanation prompt must contain exactly 2 messages, got %d", len(messages))
	}

	messages[1].Content = fmt.Sprintf(messages[1].Content, query, gamesText)
	return messages, nil
}

// gamesPromptText renders the recommendations as a numbered list for the prompt.
func gamesPromptText(recommendations []domain.Recommendation) string {
	var b strings.Builder
	for i, rec := range recommendations {
		summary := rec.Game.Summary
		if len(summary) > maxSummaryCharsInPrompt {
			summary = summary[:maxSummaryCharsInPrompt] + "..."
		}
		fmt.Fprintf(&b, "%d. %s", i+1, rec.Game.Name)
		if len(rec.Game.Genres) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(rec.Game.Genres, ", "))
		}
		if summary != "" {
			fmt.Fprintf(&b, ": %s", summary)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// explanationsPayload is the JSON contract the model must answer with.
type explanationsPayload struct {
	Explanations []string `json:"explanations"`
}

// parseExplanations extracts the explanations array from the model output,
// tolerating markdown code fences around the JSON object.
func parseExplanations(content string) ([]string, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	var payload explanationsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse explanation response: %w", err)
	}
	return payload.Explanations, nil
}

// InitExplainResults initializes the ExplainResults use case and registers it
// in the dependency container.
type InitExplainResults struct {
	LLMClient domain.LLMClient `resolve:""`
	ChatModel string           `config:"LLM_ANALYSIS_MODEL"`
}

// Initialize registers the ExplainResultsImpl use case in the dependency container.
func (ier InitExplainResults) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExplainResults](NewExplainResultsImpl(ier.LLMClient, ier.ChatModel))
	return ctx, nil
}
