// Package http exposes the game discovery engine over a JSON REST API.
package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
	"github.com/rs/cors"
)

// GameDiscoveryServer is the REST API server for the game discovery engine.
type GameDiscoveryServer struct {
	Port                   int                      `config:"HTTP_PORT" default:"8080"`
	Logger                 *log.Logger              `resolve:""`
	RecommendGamesUseCase  usecases.RecommendGames  `resolve:""`
	SearchGamesUseCase     usecases.SearchGames     `resolve:""`
	GetSimilarGamesUseCase usecases.GetSimilarGames `resolve:""`
	CreateGameUseCase      usecases.CreateGame      `resolve:""`
	UpdateGameUseCase      usecases.UpdateGame      `resolve:""`
	DeleteGameUseCase      usecases.DeleteGame      `resolve:""`
	IndexGamesUseCase      usecases.IndexGames      `resolve:""`
	RefreshCachesUseCase   usecases.RefreshCaches   `resolve:""`
	GetEngineStatsUseCase  usecases.GetEngineStats  `resolve:""`
	Index                  domain.VectorIndex       `resolve:""`
}

// Handler builds the API routing table.
func (api GameDiscoveryServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Health)
	mux.HandleFunc("/introspect", IntrospectHandler)

	mux.HandleFunc("POST /api/recommendations", api.PostRecommendations)
	mux.HandleFunc("POST /api/search", api.PostSearch)
	mux.HandleFunc("GET /api/games/{id}/similar", api.GetSimilarGames)
	mux.HandleFunc("POST /api/games", api.CreateGame)
	mux.HandleFunc("PUT /api/games/{id}", api.UpdateGame)
	mux.HandleFunc("DELETE /api/games/{id}", api.DeleteGame)
	mux.HandleFunc("POST /api/admin/reindex", api.Reindex)
	mux.HandleFunc("POST /api/admin/cache/refresh", api.RefreshCaches)
	mux.HandleFunc("GET /api/admin/cache/stats", api.GetEngineStats)

	h := telemetry.Middleware("gamediscovery-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the GameDiscoveryServer.
func (api GameDiscoveryServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GameDiscoveryServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GameDiscoveryServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GameDiscoveryServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// Health reports whether the engine can serve requests. The vector index is
// the one dependency every query path needs, so its reachability decides the
// verdict.
func (api GameDiscoveryServer) Health(w http.ResponseWriter, r *http.Request) {
	indexed, err := api.Index.Count(r.Context())
	if err != nil {
		api.Logger.Printf("Health: vector index unreachable: %v", err)
		respondJSON(w, http.StatusServiceUnavailable, healthResp{
			Status: "degraded",
			Reason: "vector index unreachable",
		})
		return
	}
	respondJSON(w, http.StatusOK, healthResp{Status: "ok", IndexedGames: indexed})
}

// IsReady checks if the GameDiscoveryServer is ready by performing a health check.
func (api GameDiscoveryServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
