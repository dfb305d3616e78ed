package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGameDiscoveryServer_Reindex(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		indexer := usecases.NewMockIndexGames(t)
		indexer.EXPECT().
			ExecuteAll(mock.Anything).
			Return(120, nil)

		server := GameDiscoveryServer{
			IndexGamesUseCase: indexer,
			Logger:            log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodPost, "/api/admin/reindex", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response reindexResp
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 120, response.Indexed)
	})

	t.Run("indexing-failure", func(t *testing.T) {
		indexer := usecases.NewMockIndexGames(t)
		indexer.EXPECT().
			ExecuteAll(mock.Anything).
			Return(0, errors.New("index down"))

		server := GameDiscoveryServer{
			IndexGamesUseCase: indexer,
			Logger:            log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodPost, "/api/admin/reindex", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGameDiscoveryServer_GetEngineStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stats := usecases.NewMockGetEngineStats(t)
		stats.EXPECT().
			Execute(mock.Anything).
			Return(usecases.EngineStats{
				CatalogGames: 120,
				IndexedGames: 118,
				Cache: domain.EmbeddingCacheStats{
					Entries:   42,
					Hits:      100,
					Misses:    20,
					Evictions: 3,
				},
			}, nil)

		server := GameDiscoveryServer{
			GetEngineStatsUseCase: stats,
			Logger:                log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodGet, "/api/admin/cache/stats", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response engineStatsResp
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 120, response.CatalogGames)
		assert.Equal(t, 118, response.IndexedVectors)
		assert.Equal(t, 42, response.CacheEntries)
		assert.Equal(t, int64(100), response.CacheHits)
	})

	t.Run("stats-failure", func(t *testing.T) {
		stats := usecases.NewMockGetEngineStats(t)
		stats.EXPECT().
			Execute(mock.Anything).
			Return(usecases.EngineStats{}, errors.New("database error"))

		server := GameDiscoveryServer{
			GetEngineStatsUseCase: stats,
			Logger:                log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodGet, "/api/admin/cache/stats", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGameDiscoveryServer_RefreshCaches(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		refresher := usecases.NewMockRefreshCaches(t)
		refresher.EXPECT().
			Execute(mock.Anything).
			Return(usecases.CacheRefreshResult{Purged: 42, Warmed: 37}, nil)

		server := GameDiscoveryServer{
			RefreshCachesUseCase: refresher,
			Logger:               log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodPost, "/api/admin/cache/refresh", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"purged":42,"warmed":37}`, w.Body.String())
	})

	t.Run("refresh-failure", func(t *testing.T) {
		refresher := usecases.NewMockRefreshCaches(t)
		refresher.EXPECT().
			Execute(mock.Anything).
			Return(usecases.CacheRefreshResult{Purged: 42}, errors.New("database error"))

		server := GameDiscoveryServer{
			RefreshCachesUseCase: refresher,
			Logger:               log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodPost, "/api/admin/cache/refresh", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGameDiscoveryServer_Health(t *testing.T) {
	t.Run("index-reachable", func(t *testing.T) {
		index := domain.NewMockVectorIndex(t)
		index.EXPECT().Count(mock.Anything).Return(118, nil)

		server := GameDiscoveryServer{
			Index:  index,
			Logger: log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","indexed_games":118}`, w.Body.String())
	})

	t.Run("index-unreachable", func(t *testing.T) {
		index := domain.NewMockVectorIndex(t)
		index.EXPECT().Count(mock.Anything).Return(0, errors.New("connection refused"))

		server := GameDiscoveryServer{
			Index:  index,
			Logger: log.New(io.Discard, "", 0),
		}

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		server.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"degraded","reason":"vector index unreachable"}`, w.Body.String())
	})
}
