package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fullVector() domain.EmbeddingVector {
	return domain.EmbeddingVector{Vector: make([]float64, domain.EmbeddingDims)}
}

func TestIndexGamesImpl_ExecuteAll(t *testing.T) {
	gameA := domain.Game{ID: uuid.New(), Name: "Celeste"}
	gameB := domain.Game{ID: uuid.New(), Name: "Hades"}

	tests := map[string]struct {
		setup         func(games *domain.MockGameRepository, encoder *domain.MockSemanticEncoder, index *domain.MockVectorIndex)
		expectedCount int
		expectedErr   string
	}{
		"indexes-all-pages": {
			setup: func(games *domain.MockGameRepository, encoder *domain.MockSemanticEncoder, index *domain.MockVectorIndex) {
				index.EXPECT().EnsureCollection(mock.Anything, domain.EmbeddingDims).Return(nil)
				games.EXPECT().ListGamesForIndexing(mock.Anything, 0, IndexBatchSize).Return([]domain.Game{gameA}, true, nil)
				games.EXPECT().ListGamesForIndexing(mock.Anything, 1, IndexBatchSize).Return([]domain.Game{gameB}, false, nil)
				encoder.EXPECT().EncodeGame(mock.Anything, gameA).Return(fullVector(), nil)
				encoder.EXPECT().EncodeGame(mock.Anything, gameB).Return(fullVector(), nil)
				index.EXPECT().UpsertBatch(mock.Anything, mock.MatchedBy(func(batch []domain.GameVector) bool {
					return len(batch) == 1
				})).Return(nil).Times(2)
			},
			expectedCount: 2,
		},
		"empty-catalog-indexes-nothing": {
			setup: func(games *domain.MockGameRepository, encoder *domain.MockSemanticEncoder, index *domain.MockVectorIndex) {
				index.EXPECT().EnsureCollection(mock.Anything, domain.EmbeddingDims).Return(nil)
				games.EXPECT().ListGamesForIndexing(mock.Anything, 0, IndexBatchSize).Return(nil, false, nil)
			},
			expectedCount: 0,
		},
		"embedding-failure-skips-the-game": {
			setup: func(games *domain.MockGameRepository, encoder *domain.MockSemanticEncoder, index *domain.MockVectorIndex) {
				index.EXPECT().EnsureCollection(mock.Anything, domain.EmbeddingDims).Return(nil)
				games.EXPECT().ListGamesForIndexing(mock.Anything, 0, IndexBatchSize).Return([]domain.Game{gameA, gameB}, false, nil)
				encoder.EXPECT().EncodeGame(mock.Anything, gameA).Return(domain.EmbeddingVector{}, errors.New("encoder down"))
				encoder.EXPECT().EncodeGame(mock.Anything, gameB).Return(fullVector(), nil)
				index.EXPECT().UpsertBatch(mock.Anything, mock.MatchedBy(func(batch []domain.GameVector) bool {
					return len(batch) == 1 && batch[0].Game.ID == gameB.ID
				})).Return(nil)
			},
			expectedCount: 1,
		},
		"all-embeddings-failing-indexes-nothing": {
			setup: func(games *domain.MockGameRepository, encoder *domain.MockSemanticEncoder, index *domain.MockVectorIndex) {
				index.EXPECT().EnsureCollection(mock.Anything, domain.EmbeddingDims).Return(nil)
				games.EXPECT().ListGamesForIndexing(mock.Anything, 0, IndexBatchSize).Return([]domain.Game{gameA}, false, nil)
				encoder.EXPECT().EncodeGame(mock.Anything, gameA).Return(domain.EmbeddingVector{}, errors.New("encoder down"))
			},
			expectedCount: 0,
		},
		"wrong-dimensionality-is-rejected": {
			setup: func(games *domain.MockGameRepository, encoder *domain.MockSemanticEncoder, index *domain.MockVectorIndex) {
				index.EXPECT().EnsureCollection(mock.Anything, domain.EmbeddingDims).Return(nil)
				games.EXPECT().ListGamesForIndexing(mock.Anything, 0, IndexBatchSize).Return([]domain.Game{gameA}, false, nil)
				encoder.EXPECT().EncodeGame(mock.Anything, gameA).Return(domain.EmbeddingVector{Vector: make([]float64, 3)}, nil)
			},
			expectedErr: gameA.ID.String(),
		},
		"collection-setup-failure-aborts": {
			setup: func(games *domain.MockGameRepository, encoder *domain.MockSemanticEncoder, index *domain.MockVectorIndex) {
				index.EXPECT().EnsureCollection(mock.Anything, domain.EmbeddingDims).Return(errors.New("index unavailable"))
			},
			expectedErr: "index unavailable",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			games := domain.NewMockGameRepository(t)
			encoder := domain.NewMockSemanticEncoder(t)
			index := domain.NewMockVectorIndex(t)
			tc.setup(games, encoder, index)

			indexer := NewIndexGamesImpl(games, encoder, index, log.New(io.Discard, "", 0))
			count, err := indexer.ExecuteAll(context.Background())

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCount, count)
		})
	}
}

func TestIndexGamesImpl_ExecuteGames(t *testing.T) {
	existing := domain.Game{ID: uuid.New(), Name: "Celeste"}
	missingID := uuid.New()

	games := domain.NewMockGameRepository(t)
	encoder := domain.NewMockSemanticEncoder(t)
	index := domain.NewMockVectorIndex(t)

	index.EXPECT().EnsureCollection(mock.Anything, domain.EmbeddingDims).Return(nil)
	games.EXPECT().GetGame(mock.Anything, existing.ID).Return(existing, true, nil)
	games.EXPECT().GetGame(mock.Anything, missingID).Return(domain.Game{}, false, nil)
	index.EXPECT().Delete(mock.Anything, []uuid.UUID{missingID}).Return(nil)
	encoder.EXPECT().EncodeGame(mock.Anything, existing).Return(fullVector(), nil)
	index.EXPECT().UpsertBatch(mock.Anything, mock.MatchedBy(func(batch []domain.GameVector) bool {
		return len(batch) == 1 && batch[0].Game.ID == existing.ID
	})).Return(nil)

	indexer := NewIndexGamesImpl(games, encoder, index, log.New(io.Discard, "", 0))
	err := indexer.ExecuteGames(context.Background(), []uuid.UUID{existing.ID, missingID})
	require.NoError(t, err)
}
