package domain

import (
	"context"

	"github.com/google/uuid"
)

// GameVector pairs a game with its embedding for indexing.
type GameVector struct {
	Game   Game
	Vector EmbeddingVector
}

// ScoredGame is a search hit with its similarity score in [0,1].
type ScoredGame struct {
	Game  Game
	Score float64
}

// SearchFilter restricts a vector search to games matching structured criteria.
// Category slices are OR-groups: a game matches when at least one of the
// populated groups matches. Release bounds and MinRating are hard constraints.
type SearchFilter struct {
	Genres             []string
	Platforms          []string
	GameModes          []string
	PlayerPerspectives []string
	ReleasedAfter      *int
	ReleasedBefore     *int
	MinRating          float64
}

// IsZero reports whether the filter imposes no constraints.
func (f SearchFilter) IsZero() bool {
	return len(f.Genres) == 0 &&
		len(f.Platforms) == 0 &&
		len(f.GameModes) == 0 &&
		len(f.PlayerPerspectives) == 0 &&
		f.ReleasedAfter == nil &&
		f.ReleasedBefore == nil &&
		f.MinRating == 0
}

// VectorIndex is the port to the vector database holding game embeddings.
type VectorIndex interface {
	// EnsureCollection creates the backing collection for vectors of the given
	// dimensionality if it does not exist yet.
	EnsureCollection(ctx context.Context, dims int) error
	// UpsertBatch inserts or replaces a batch of game vectors.
	UpsertBatch(ctx context.Context, batch []GameVector) error
	// Search returns up to limit games ordered by similarity to the vector,
	// restricted by the filter.
	Search(ctx context.Context, vector EmbeddingVector, filter SearchFilter, limit int) ([]ScoredGame, error)
	// Delete removes the vectors for the given game IDs.
	Delete(ctx context.Context, ids []uuid.UUID) error
	// Count returns the number of indexed vectors.
	Count(ctx context.Context) (int, error)
}
