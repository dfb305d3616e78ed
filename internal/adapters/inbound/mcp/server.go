// Package mcp exposes the game discovery engine as Model Context Protocol
// tools, so LLM agents can call recommendations and search directly.
package mcp

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GameDiscoveryMCPServer is a runnable that serves the MCP tool surface.
// It speaks streamable HTTP by default; set MCP_TRANSPORT=stdio to run it
// as a stdio server for local agent hosts.
type GameDiscoveryMCPServer struct {
	Port                   int                      `config:"MCP_PORT" default:"8090"`
	Transport              string                   `config:"MCP_TRANSPORT" default:"http"`
	Logger                 *log.Logger              `resolve:""`
	RecommendGamesUseCase  usecases.RecommendGames  `resolve:""`
	SearchGamesUseCase     usecases.SearchGames     `resolve:""`
	GetSimilarGamesUseCase usecases.GetSimilarGames `resolve:""`
}

func (s GameDiscoveryMCPServer) newServer() *sdk.Server {
	srv := sdk.NewServer(&sdk.Implementation{
		Name:    "gamediscovery",
		Version: "1.0.0",
	}, nil)

	sdk.AddTool(srv, &sdk.Tool{
		Name:        "recommend_games",
		Description: "Recommend games from a natural language query, optionally continuing a conversation",
	}, s.recommendGames)

	sdk.AddTool(srv, &sdk.Tool{
		Name:        "search_games",
		Description: "Search the game catalog semantically with optional structured filters",
	}, s.searchGames)

	sdk.AddTool(srv, &sdk.Tool{
		Name:        "similar_games",
		Description: "Find games similar to a known game by its catalog id",
	}, s.similarGames)

	return srv
}

// Run serves the MCP tools until the context is cancelled.
func (s GameDiscoveryMCPServer) Run(ctx context.Context) error {
	srv := s.newServer()

	if s.Transport == "stdio" {
		s.Logger.Println("GameDiscoveryMCPServer: serving on stdio")
		return srv.Run(ctx, &sdk.StdioTransport{})
	}

	handler := sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return srv
	}, nil)

	httpServer := &http.Server{
		Handler: handler,
		Addr:    fmt.Sprintf(":%d", s.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("GameDiscoveryMCPServer: Listening on port %d", s.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("GameDiscoveryMCPServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("GameDiscoveryMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}
