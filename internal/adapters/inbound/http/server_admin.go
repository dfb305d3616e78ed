package http

import (
	"net/http"
)

// Reindex rebuilds the vector index from the full catalog.
func (api GameDiscoveryServer) Reindex(w http.ResponseWriter, r *http.Request) {
	indexed, err := api.IndexGamesUseCase.ExecuteAll(r.Context())
	if err != nil {
		api.Logger.Printf("Error reindexing catalog: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, reindexResp{Indexed: indexed})
}

// RefreshCaches purges the embedding cache and re-warms it from the catalog.
func (api GameDiscoveryServer) RefreshCaches(w http.ResponseWriter, r *http.Request) {
	result, err := api.RefreshCachesUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("Error refreshing caches: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, cacheRefreshResp{
		Purged: result.Purged,
		Warmed: result.Warmed,
	})
}

// GetEngineStats reports catalog, index and embedding-cache statistics.
func (api GameDiscoveryServer) GetEngineStats(w http.ResponseWriter, r *http.Request) {
	stats, err := api.GetEngineStatsUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("Error gathering engine stats: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toEngineStatsResp(stats))
}
