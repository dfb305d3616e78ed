package domain

import "context"

const (
	// BaseEmbeddingDims is the number of dimensions carrying the semantic signal.
	BaseEmbeddingDims = 384
	// StructuredFeatureDims is the number of trailing dimensions reserved for
	// scalar game features.
	StructuredFeatureDims = 20
	// EmbeddingDims is the total dimensionality of every vector produced by the
	// engine. Producing or accepting any other size is an error.
	EmbeddingDims = BaseEmbeddingDims + StructuredFeatureDims
)

// EmbeddingVector is a fixed-size embedding produced by the semantic encoder.
type EmbeddingVector struct {
	Vector []float64
}

// Dims returns the vector dimensionality.
func (v EmbeddingVector) Dims() int {
	return len(v.Vector)
}

// SemanticEncoder produces embeddings for games and free-text queries.
type SemanticEncoder interface {
	// EncodeGame embeds a full game record, including its structured features.
	EncodeGame(ctx context.Context, game Game) (EmbeddingVector, error)
	// EncodeQuery embeds a search query using query-side axis weights.
	EncodeQuery(ctx context.Context, query string) (EmbeddingVector, error)
	// EncodeText embeds arbitrary text with the default axis weights.
	EncodeText(ctx context.Context, text string) (EmbeddingVector, error)
}

// EmbeddingCacheStats is a point-in-time snapshot of cache effectiveness.
type EmbeddingCacheStats struct {
	Entries   int
	Hits      int64
	Misses    int64
	Evictions int64
}

// EmbeddingCache caches embeddings keyed by their input text.
type EmbeddingCache interface {
	// Get returns the cached vector for the text, if present and not expired.
	Get(text string) (EmbeddingVector, bool)
	// Put stores the vector for the text, evicting stale entries as needed.
	Put(text string, vector EmbeddingVector)
	// Purge drops every entry and returns how many were removed.
	Purge() int
	// Stats returns a snapshot of the cache counters.
	Stats() EmbeddingCacheStats
}
