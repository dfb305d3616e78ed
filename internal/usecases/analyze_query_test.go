package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/common"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeQueryImpl_Execute(t *testing.T) {
	resolver := semantic.NewResolver()

	tests := map[string]struct {
		query            string
		history          []domain.Exchange
		llmContent       string
		llmErr           error
		expectedAnalysis domain.QueryAnalysis
		expectedErr      string
	}{
		"structured-response-is-normalized": {
			query: "dark rpgs on ps5 from the last few years",
			llmContent: `{
				"intent": "recommendation",
				"genres": ["rpg"],
				"platforms": ["ps5"],
				"game_modes": [],
				"player_perspectives": [],
				"themes": ["horror"],
				"release_year_from": 2020,
				"release_year_to": null,
				"similar_to_game": "",
				"ambiguous": false,
				"follow_up_question": ""
			}`,
			expectedAnalysis: domain.QueryAnalysis{
				Intent:          "recommendation",
				Genres:          []string{"Role-playing (RPG)"},
				Platforms:       []string{"PlayStation 5"},
				Themes:          []string{"Horror"},
				ReleaseYearFrom: common.Ptr(2020),
			},
		},
		"markdown-fences-are-tolerated": {
			query:      "games like dark souls",
			llmContent: "```json\n{\"intent\": \"similar\", \"similar_to_game\": \"Dark Souls\"}\n```",
			expectedAnalysis: domain.QueryAnalysis{
				Intent:        "similar",
				SimilarToGame: "Dark Souls",
			},
		},
		"unknown-intent-defaults-to-recommendation": {
			query:      "strategy games",
			llmContent: `{"intent": "browse", "genres": ["strategy"]}`,
			expectedAnalysis: domain.QueryAnalysis{
				Intent: "recommendation",
				Genres: []string{"Strategy"},
			},
		},
		"ambiguous-request-carries-follow-up": {
			query:      "something fun",
			llmContent: `{"intent": "recommendation", "ambiguous": true, "follow_up_question": "What genres do you usually enjoy?"}`,
			expectedAnalysis: domain.QueryAnalysis{
				Intent:           "recommendation",
				Ambiguous:        true,
				FollowUpQuestion: "What genres do you usually enjoy?",
			},
		},
		"non-json-response-falls-back-to-ambiguous": {
			query:      "rpgs",
			llmContent: "I think you would enjoy some role-playing games!",
			expectedAnalysis: domain.QueryAnalysis{
				Intent:           "recommendation",
				Ambiguous:        true,
				FollowUpQuestion: `I didn't quite catch what you meant by "rpgs". Could you name a genre, platform, or a game you enjoyed?`,
			},
		},
		"truncated-json-falls-back-to-ambiguous": {
			query:      "co-op shooters",
			llmContent: `{"intent": "recommendation", "genres": ["shoo`,
			expectedAnalysis: domain.QueryAnalysis{
				Intent:           "recommendation",
				Ambiguous:        true,
				FollowUpQuestion: `I didn't quite catch what you meant by "co-op shooters". Could you name a genre, platform, or a game you enjoyed?`,
			},
		},
		"llm-failure-propagates": {
			query:       "rpgs",
			llmErr:      errors.New("model not loaded"),
			expectedErr: "model not loaded",
		},
		"empty-query-is-rejected": {
			query:       "   ",
			expectedErr: "query must not be empty",
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

			analyzer := NewAnalyzeQueryImpl(llm, resolver, "test-model")
			analysis, err := analyzer.Execute(context.Background(), tc.query, tc.history)

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAnalysis, analysis)
		})
	}
}

func TestAnalyzeQueryImpl_PromptContainsVocabularyAndHistory(t *testing.T) {
	resolver := semantic.NewResolver()

	var captured domain.LLMChatRequest
	llm := domain.NewMockLLMClient(t)
	llm.EXPECT().
		Chat(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req domain.LLMChatRequest) {
			captured = req
		}).
		Return(`{"intent": "recommendation"}`, nil)

	analyzer := NewAnalyzeQueryImpl(llm, resolver, "test-model")
	history := []domain.Exchange{
		{Query: "any racing games?", Response: "Here are 3 racing games."},
	}
	_, err := analyzer.Execute(context.Background(), "what about rally ones", history)
	require.NoError(t, err)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, domain.LLMChatRole_System, captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "Role-playing (RPG)")
	assert.Contains(t, captured.Messages[0].Content, "PlayStation 5")
	assert.Contains(t, captured.Messages[1].Content, "any racing games?")
	assert.Contains(t, captured.Messages[1].Content, "what about rally ones")
}
