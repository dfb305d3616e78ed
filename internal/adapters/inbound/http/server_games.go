package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// GetSimilarGames returns the nearest neighbours of an indexed game.
func (api GameDiscoveryServer) GetSimilarGames(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid game id: %v", err)))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid limit: %v", err)))
			return
		}
	}

	hits, err := api.GetSimilarGamesUseCase.Execute(r.Context(), id, limit)
	if err != nil {
		api.Logger.Printf("Error finding similar games: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSearchResp(hits))
}

// CreateGame adds a game to the catalog.
func (api GameDiscoveryServer) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req gameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	game, err := api.CreateGameUseCase.Execute(r.Context(), fromGameReq(req))
	if err != nil {
		api.Logger.Printf("Error creating game: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toGame(game))
}

// UpdateGame replaces a catalog game.
func (api GameDiscoveryServer) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid game id: %v", err)))
		return
	}

	var req gameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	game := fromGameReq(req)
	game.ID = id

	updated, err := api.UpdateGameUseCase.Execute(r.Context(), game)
	if err != nil {
		api.Logger.Printf("Error updating game: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toGame(updated))
}

// DeleteGame removes a catalog game.
func (api GameDiscoveryServer) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, newErrorResp(errorCode_BadRequest, fmt.Sprintf("invalid game id: %v", err)))
		return
	}

	if err := api.DeleteGameUseCase.Execute(r.Context(), id); err != nil {
		api.Logger.Printf("Error deleting game: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
