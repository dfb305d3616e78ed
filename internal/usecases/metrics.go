package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("usecases")
	LLMTokensUsed          metric.Int64Counter
	RecommendationsServed  metric.Int64Counter
	GamesIndexed           metric.Int64Counter
	RecommendationFollowUp metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output + embeddings)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	RecommendationsServed, err = meter.Int64Counter(
		"recommendations_served_total",
		metric.WithDescription("Total game recommendations returned to callers"),
	)
	if err != nil {
		panic(err)
	}

	GamesIndexed, err = meter.Int64Counter(
		"games_indexed_total",
		metric.WithDescription("Total games embedded and upserted into the vector index"),
	)
	if err != nil {
		panic(err)
	}

	RecommendationFollowUp, err = meter.Int64Counter(
		"recommendation_follow_ups_total",
		metric.WithDescription("Total recommendation turns answered with a follow-up question"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordRecommendationsServed records recommendations returned for one request.
func RecordRecommendationsServed(ctx context.Context, count int, intent string) {
	RecommendationsServed.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("intent", intent),
	))
}

// RecordGamesIndexed records games upserted into the vector index.
func RecordGamesIndexed(ctx context.Context, count int) {
	GamesIndexed.Add(ctx, int64(count))
}

// RecordRecommendationFollowUp records a turn that required clarification.
func RecordRecommendationFollowUp(ctx context.Context, reason string) {
	RecommendationFollowUp.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
