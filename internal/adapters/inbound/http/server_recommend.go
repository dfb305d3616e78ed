package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/google/uuid"
)

// PostRecommendations runs one turn of the recommendation dialogue.
func (api GameDiscoveryServer) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	conversationID := uuid.Nil
	if req.ConversationID != "" {
		id, err := uuid.Parse(req.ConversationID)
		if err != nil {
			respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid conversation_id: %v", err)))
			return
		}
		conversationID = id
	}

	userID := uuid.Nil
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid user_id: %v", err)))
			return
		}
		userID = id
	}

	resp, err := api.RecommendGamesUseCase.Execute(r.Context(), domain.RecommendationRequest{
		ConversationID: conversationID,
		UserID:         userID,
		Query:          req.Query,
		Preferences: domain.UserPreferences{
			FavoriteGenres:     req.Preferences.FavoriteGenres,
			LikedGames:         req.Preferences.LikedGames,
			FollowedFranchises: req.Preferences.FollowedFranchises,
		},
		Limit: req.Limit,
	})
	if err != nil {
		api.Logger.Printf("Error recommending games: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toRecommendationResp(resp))
}
