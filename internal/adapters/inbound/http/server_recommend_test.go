package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	releaseDate = time.Date(2015, 5, 19, 0, 0, 0, 0, time.UTC)
	domainGame  = domain.Game{
		ID:      uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Name:    "The Witcher 3: Wild Hunt",
		Summary: "An open world RPG set in a dark fantasy universe.",
		Genres:  []string{"Role-playing (RPG)"},
		Platforms: []domain.Platform{
			{Name: "PlayStation 5", Aliases: []string{"PS5"}},
		},
		GameModes:   []string{"Single player"},
		Franchise:   "The Witcher",
		GameType:    domain.GameType_MainGame,
		ReleaseDate: &releaseDate,
		Rating:      93,
		CreatedAt:   time.Date(2026, 1, 22, 10, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 1, 22, 10, 30, 0, 0, time.UTC),
	}
)

func serializeJSON(t *testing.T, payload any) []byte {
	t.Helper()
	b, err := json.Marshal(payload)
	assert.NoError(t, err)
	return b
}

func TestGameDiscoveryServer_PostRecommendations(t *testing.T) {
	conversationID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	userID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*usecases.MockRecommendGames)
		expectedStatus int
		checkBody      func(*testing.T, recommendationResp)
		expectedError  *errorResp
	}{
		"success": {
			requestBody: serializeJSON(t, recommendationReq{
				Query: "dark fantasy rpg",
				Limit: 5,
			}),
			setupMocks: func(m *usecases.MockRecommendGames) {
				m.EXPECT().
					Execute(mock.Anything, domain.RecommendationRequest{
						Query: "dark fantasy rpg",
						Limit: 5,
					}).
					Return(domain.RecommendationResponse{
						ConversationID: conversationID,
						Recommendations: []domain.Recommendation{
							{Game: domainGame, Confidence: 0.91, Reasons: []string{"matches dark fantasy"}},
						},
						Message:           "Here are some games you might enjoy.",
						OverallConfidence: 0.91,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, resp recommendationResp) {
				assert.Equal(t, conversationID, resp.ConversationID)
				assert.Len(t, resp.Recommendations, 1)
				assert.Equal(t, domainGame.ID, resp.Recommendations[0].Game.ID)
				assert.InDelta(t, 0.91, resp.Recommendations[0].Confidence, 1e-9)
				assert.False(t, resp.RequiresFollowUp)
			},
		},
		"carries-conversation-user-and-preferences": {
			requestBody: serializeJSON(t, recommendationReq{
				ConversationID: conversationID.String(),
				UserID:         userID.String(),
				Query:          "something similar",
				Preferences: preferencesReq{
					FavoriteGenres: []string{"Role-playing (RPG)"},
				},
			}),
			setupMocks: func(m *usecases.MockRecommendGames) {
				m.EXPECT().
					Execute(mock.Anything, domain.RecommendationRequest{
						ConversationID: conversationID,
						UserID:         userID,
						Query:          "something similar",
						Preferences: domain.UserPreferences{
							FavoriteGenres: []string{"Role-playing (RPG)"},
						},
					}).
					Return(domain.RecommendationResponse{ConversationID: conversationID}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, resp recommendationResp) {
				assert.Equal(t, conversationID, resp.ConversationID)
				assert.Empty(t, resp.Recommendations)
			},
		},
		"invalid-conversation-id": {
			requestBody: serializeJSON(t, recommendationReq{
				ConversationID: "not-a-uuid",
				Query:          "anything",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedError: func() *errorResp {
				resp := newErrorResp(errorCode_BadRequest, "invalid conversation_id: invalid UUID length: 10")
				return &resp
			}(),
		},
		"invalid-user-id": {
			requestBody: serializeJSON(t, recommendationReq{
				UserID: "not-a-uuid",
				Query:  "anything",
			}),
			expectedStatus: http.StatusBadRequest,
			expectedError: func() *errorResp {
				resp := newErrorResp(errorCode_BadRequest, "invalid user_id: invalid UUID length: 10")
				return &resp
			}(),
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"query":`),
			expectedStatus: http.StatusBadRequest,
			expectedError: func() *errorResp {
				resp := newErrorResp(errorCode_BadRequest, "invalid request body: unexpected EOF")
				return &resp
			}(),
		},
		"validation-error": {
			requestBody: serializeJSON(t, recommendationReq{}),
			setupMocks: func(m *usecases.MockRecommendGames) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(domain.RecommendationResponse{}, domain.NewValidationErr("query must not be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: func() *errorResp {
				resp := newErrorResp(errorCode_BadRequest, "query must not be empty")
				return &resp
			}(),
		},
		"internal-error": {
			requestBody: serializeJSON(t, recommendationReq{Query: "anything"}),
			setupMocks: func(m *usecases.MockRecommendGames) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(domain.RecommendationResponse{}, errors.New("index down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: func() *errorResp {
				resp := newErrorResp(errorCode_Internal, "internal server error")
				return &resp
			}(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			recommender := usecases.NewMockRecommendGames(t)
			if tt.setupMocks != nil {
				tt.setupMocks(recommender)
			}

			server := GameDiscoveryServer{
				RecommendGamesUseCase: recommender,
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.checkBody != nil {
				var response recommendationResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				tt.checkBody(t, response)
			}

			if tt.expectedError != nil {
				var response errorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}
