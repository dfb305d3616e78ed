package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExplainResultsImpl_ExplainBatch(t *testing.T) {
	recommendations := []domain.Recommendation{
		{Game: domain.Game{ID: uuid.New(), Name: "Elden Ring", Genres: []string{"Role-playing (RPG)"}}},
		{Game: domain.Game{ID: uuid.New(), Name: "Hades", Genres: []string{"Roguelike"}}},
	}

	tests := map[string]struct {
		recommendations []domain.Recommendation
		llmContent      string
		llmErr          error
		expected        []string
		expectedErr     string
	}{
		"aligned-explanations-are-returned": {
			recommendations: recommendations,
			llmContent:      `{"explanations": ["Elden Ring is a sprawling dark RPG", "Hades turns every run into a story"]}`,
			expected:        []string{"Elden Ring is a sprawling dark RPG", "Hades turns every run into a story"},
		},
		"markdown-fences-are-tolerated": {
			recommendations: recommendations,
			llmContent:      "```json\n{\"explanations\": [\"first\", \"second\"]}\n```",
			expected:        []string{"first", "second"},
		},
		"misaligned-count-is-an-error": {
			recommendations: recommendations,
			llmContent:      `{"explanations": ["only one"]}`,
			expectedErr:     "got 1 explanations for 2 recommendations",
		},
		"non-json-response-is-an-error": {
			recommendations: recommendations,
			llmContent:      "These are both great picks!",
			expectedErr:     "no JSON object in model response",
		},
		"llm-failure-propagates": {
			recommendations: recommendations,
			llmErr:          errors.New("model overloaded"),
			expectedErr:     "model overloaded",
		},
		"empty-input-yields-no-call": {
			recommendations: nil,
			expected:        nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain.NewMockLLMClient(t)
			if tc.llmContent != "" || tc.llmErr != nil {
				llm.EXPECT().
					Chat(mock.Anything, mock.MatchedBy(func(req domain.LLMChatRequest) bool {
						return req.JSONMode && req.Model == "test-model" && len(req.Messages) == 2
					})).
					Return(tc.llmContent, tc.llmErr)
			}

			explainer := NewExplainResultsImpl(llm, "test-model")
			explanations, err := explainer.ExplainBatch(context.Background(), "dark fantasy rpgs", tc.recommendations)

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, explanations)
		})
	}
}

func TestExplainResultsImpl_ExplainOne(t *testing.T) {
	recommendation := domain.Recommendation{
		Game: domain.Game{ID: uuid.New(), Name: "Hades", Genres: []string{"Roguelike"}},
	}

	tests := map[string]struct {
		llmContent  string
		llmErr      error
		expected    string
		expectedErr string
	}{
		"first-explanation-is-returned-trimmed": {
			llmContent: `{"explanations": ["  Hades turns every run into a story  "]}`,
			expected:   "Hades turns every run into a story",
		},
		"blank-explanation-is-an-error": {
			llmContent:  `{"explanations": ["   "]}`,
			expectedErr: "empty explanation",
		},
		"empty-list-is-an-error": {
			llmContent:  `{"explanations": []}`,
			expectedErr: "empty explanation",
		},
		"llm-failure-propagates": {
			llmErr:      errors.New("model overloaded"),
			expectedErr: "model overloaded",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			llm := domain.NewMockLLMClient(t)
			llm.EXPECT().
				Chat(mock.Anything, mock.Anything).
				Return(tc.llmContent, tc.llmErr)

			explainer := NewExplainResultsImpl(llm, "test-model")
			text, err := explainer.ExplainOne(context.Background(), "roguelikes", recommendation)

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, text)
		})
	}
}

func TestExplainResultsImpl_PromptCarriesQueryAndGames(t *testing.T) {
	var captured domain.LLMChatRequest
	llm := domain.NewMockLLMClient(t)
	llm.EXPECT().
		Chat(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req domain.LLMChatRequest) {
			captured = req
		}).
		Return(`{"explanations": ["fits the brief"]}`, nil)

	explainer := NewExplainResultsImpl(llm, "test-model")
	_, err := explainer.ExplainBatch(context.Background(), "cozy farming games", []domain.Recommendation{
		{Game: domain.Game{Name: "Stardew Valley", Genres: []string{"Simulator"}, Summary: "Build the farm of your dreams."}},
	})
	require.NoError(t, err)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, domain.LLMChatRole_System, captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[1].Content, "cozy farming games")
	assert.Contains(t, captured.Messages[1].Content, "1. Stardew Valley (Simulator): Build the farm of your dreams.")
}
