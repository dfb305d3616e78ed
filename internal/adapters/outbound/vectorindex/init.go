// Package vectorindex selects the vector index backend at startup.
package vectorindex

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/adapters/outbound/qdrant"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitVectorIndex registers the configured domain.VectorIndex implementation.
// The pgvector-backed index is the default; set VECTOR_BACKEND=qdrant to use
// a dedicated Qdrant server instead.
type InitVectorIndex struct {
	DB               *sql.DB      `resolve:""`
	HttpClient       *http.Client `resolve:""`
	Backend          string       `config:"VECTOR_BACKEND" default:"postgres"`
	QdrantHost       string       `config:"QDRANT_HOST" default:"http://localhost:6333"`
	QdrantCollection string       `config:"QDRANT_COLLECTION" default:"games"`
}

// Initialize registers the selected VectorIndex in the dependency container.
func (i *InitVectorIndex) Initialize(ctx context.Context) (context.Context, error) {
	switch i.Backend {
	case "postgres":
		depend.Register[domain.VectorIndex](postgres.NewVectorIndex(i.DB))
	case "qdrant":
		depend.Register[domain.VectorIndex](qdrant.NewVectorIndex(i.QdrantHost, i.QdrantCollection, i.HttpClient))
	default:
		return ctx, fmt.Errorf("unknown vector backend %q", i.Backend)
	}
	return ctx, nil
}
