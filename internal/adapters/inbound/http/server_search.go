package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
)

// PostSearch runs a semantic search with explicit structured filters.
func (api GameDiscoveryServer) PostSearch(w http.ResponseWriter, r *http.Request) {
	var req searchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	hits, err := api.SearchGamesUseCase.Execute(r.Context(), usecases.SearchGamesInput{
		Query:              req.Query,
		Genres:             req.Genres,
		Platforms:          req.Platforms,
		GameModes:          req.GameModes,
		PlayerPerspectives: req.PlayerPerspectives,
		ReleasedAfter:      req.ReleasedAfter,
		ReleasedBefore:     req.ReleasedBefore,
		MinRating:          req.MinRating,
		Limit:              req.Limit,
	})
	if err != nil {
		api.Logger.Printf("Error searching games: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSearchResp(hits))
}
