package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/common"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inspectEmbeddingSQL = "SELECT atttypmod FROM pg_attribute WHERE attrelid = 'games'::regclass AND attname = 'embedding'"

func TestVectorIndex_EnsureCollection(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     string
	}{
		"matching-dimensions": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(inspectEmbeddingSQL).
					WillReturnRows(sqlmock.NewRows([]string{"atttypmod"}).AddRow(domain.EmbeddingDims))
			},
		},
		"wrong-dimensions": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(inspectEmbeddingSQL).
					WillReturnRows(sqlmock.NewRows([]string{"atttypmod"}).AddRow(1536))
			},
			expectedErr: "1536 dimensions",
		},
		"inspection-failure": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(inspectEmbeddingSQL).
					WillReturnError(errors.New("relation does not exist"))
			},
			expectedErr: "failed to inspect embedding column",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			index := NewVectorIndex(db)
			gotErr := index.EnsureCollection(context.Background(), domain.EmbeddingDims)
			if tt.expectedErr != "" {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.expectedErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVectorIndex_UpsertBatch(t *testing.T) {
	game := testGame()
	vector := domain.EmbeddingVector{Vector: []float64{0.1, 0.2, 0.3}}

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("UPDATE games SET embedding = $1 WHERE id = $2").
		WithArgs(pgvector.NewVector(toFloat32(vector.Vector)), game.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	index := NewVectorIndex(db)
	err = index.UpsertBatch(context.Background(), []domain.GameVector{{Game: game, Vector: vector}})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVectorIndex_Search(t *testing.T) {
	game := testGame()
	queryVector := domain.EmbeddingVector{Vector: []float64{0.5, 0.5}}
	pgvec := pgvector.NewVector(toFloat32(queryVector.Vector))

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	row, err := newGameRow(game)
	require.NoError(t, err)
	rows := sqlmock.NewRows(append(append([]string{}, gameFields...), "score")).
		AddRow(
			row.id,
			row.name,
			row.summary,
			row.genres,
			row.platforms,
			row.gameModes,
			row.playerPerspectives,
			row.companies,
			row.franchise,
			row.gameType,
			row.releaseDate,
			row.rating,
			row.createdAt,
			row.updatedAt,
			0.87,
		)

	searchSQL := "SELECT id, name, summary, genres, platforms, game_modes, player_perspectives, companies, franchise, game_type, release_date, rating, created_at, updated_at, 1 - (embedding <=> $1) AS score FROM games WHERE embedding IS NOT NULL AND rating >= $2 ORDER BY embedding <=> $3 LIMIT 5"
	mock.ExpectQuery(searchSQL).
		WithArgs(pgvec, 75.0, pgvec).
		WillReturnRows(rows)

	index := NewVectorIndex(db)
	hits, gotErr := index.Search(context.Background(), queryVector, domain.SearchFilter{MinRating: 75}, 5)
	assert.NoError(t, gotErr)
	require.Len(t, hits, 1)
	assert.Equal(t, game, hits[0].Game)
	assert.InDelta(t, 0.87, hits[0].Score, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVectorIndex_Delete(t *testing.T) {
	idA := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	idB := uuid.MustParse("3f1b2a7e-1a41-4f3e-8a52-6f2d9c4de222")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("UPDATE games SET embedding = $1 WHERE id IN ($2,$3)").
		WithArgs(nil, idA, idB).
		WillReturnResult(sqlmock.NewResult(0, 2))

	index := NewVectorIndex(db)
	assert.NoError(t, index.Delete(context.Background(), []uuid.UUID{idA, idB}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVectorIndex_Count(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectQuery("SELECT COUNT(*) FROM games WHERE embedding IS NOT NULL").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	index := NewVectorIndex(db)
	count, gotErr := index.Count(context.Background())
	assert.NoError(t, gotErr)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplySearchFilter(t *testing.T) {
	base := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("id").
		From("games").
		Where("embedding IS NOT NULL")

	filter := domain.SearchFilter{
		Genres:         []string{"Role-playing (RPG)"},
		Platforms:      []string{"PlayStation 5"},
		GameModes:      []string{"Co-operative"},
		ReleasedAfter:  common.Ptr(2015),
		ReleasedBefore: common.Ptr(2020),
		MinRating:      80,
	}

	sqlStr, args, err := applySearchFilter(base, filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlStr, "jsonb_exists_any(genres, $")
	assert.Contains(t, sqlStr, "jsonb_exists_any(game_modes, $")
	assert.Contains(t, sqlStr, "jsonb_array_elements(platforms)")
	assert.Contains(t, sqlStr, " OR ", "category groups should be alternatives")
	assert.Contains(t, sqlStr, "date_part('year', release_date) >= $")
	assert.Contains(t, sqlStr, "date_part('year', release_date) <= $")
	assert.Contains(t, sqlStr, "rating >= $")
	assert.Len(t, args, 6)
}
