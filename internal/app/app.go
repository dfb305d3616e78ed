package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/state"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/vectorindex"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/semantic"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/usecases"
)

// NewGameDiscoveryApp creates and returns a new instance of the game discovery application.
func NewGameDiscoveryApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitGameRepository{},
			&vectorindex.InitVectorIndex{},
			&state.InitConversationStore{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitLLMClient{},

			&semantic.InitCategoryResolver{},
			&semantic.InitKeywordStore{},
			&semantic.InitEmbeddingCache{},
			&semantic.InitSemanticEncoder{},

			&usecases.InitAnalyzeQuery{},
			&usecases.InitExplainResults{},
			&usecases.InitRecommendGames{},
			&usecases.InitSearchGames{},
			&usecases.InitGetSimilarGames{},
			&usecases.InitCreateGame{},
			&usecases.InitUpdateGame{},
			&usecases.InitDeleteGame{},
			&usecases.InitIndexGames{},
			&usecases.InitGetEngineStats{},
			&usecases.InitWarmSemanticCache{},
		&usecases.InitRefreshCaches{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.GameDiscoveryServer{},
			&mcp.GameDiscoveryMCPServer{},
			&workers.MessageRelay{},
			&workers.Reindexer{},
			&workers.SemanticCacheWarmer{},
			&workers.ConversationSweeper{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
