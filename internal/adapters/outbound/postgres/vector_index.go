package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// VectorIndex implements the domain.VectorIndex interface on top of the
// games table's pgvector embedding column.
type VectorIndex struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewVectorIndex creates a new instance of VectorIndex.
func NewVectorIndex(db *sql.DB) VectorIndex {
	return VectorIndex{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// EnsureCollection verifies the embedding column matches the expected
// dimensionality. The column itself is created by migrations.
func (vi VectorIndex) EnsureCollection(ctx context.Context, dims int) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("dims", dims)))
	defer span.End()

	var columnDims int
	err := vi.db.QueryRowContext(spanCtx,
		`SELECT atttypmod FROM pg_attribute WHERE attrelid = 'games'::regclass AND attname = 'embedding'`,
	).Scan(&columnDims)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to inspect embedding column: %w", err)
	}

	if columnDims != dims {
		err := fmt.Errorf("embedding column has %d dimensions, want %d", columnDims, dims)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// UpsertBatch stores the vectors on their game rows.
func (vi VectorIndex) UpsertBatch(ctx context.Context, batch []domain.GameVector) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("batch_size", len(batch))))
	defer span.End()

	for _, gv := range batch {
		_, err := vi.sb.
			Update("games").
			Set("embedding", pgvector.NewVector(toFloat32(gv.Vector.Vector))).
			Where(squirrel.Eq{"id": gv.Game.ID}).
			ExecContext(spanCtx)
		if telemetry.RecordErrorAndStatus(span, err) {
			return fmt.Errorf("failed to store vector for game %s: %w", gv.Game.ID, err)
		}
	}
	return nil
}

// Search returns up to limit games ordered by cosine similarity to the
// vector, restricted by the filter.
func (vi VectorIndex) Search(ctx context.Context, vector domain.EmbeddingVector, filter domain.SearchFilter, limit int) ([]domain.ScoredGame, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("limit", limit)))
	defer span.End()

	pgvec := pgvector.NewVector(toFloat32(vector.Vector))

	qry := vi.sb.
		Select(gameFields...).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS score", pgvec)).
		From("games").
		Where("embedding IS NOT NULL").
		OrderByClause(squirrel.Expr("embedding <=> ?", pgvec)).
		Limit(uint64(limit))

	qry = applySearchFilter(qry, filter)

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var hits []domain.ScoredGame
	for rows.Next() {
		hit, err := scanScoredGame(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return hits, nil
}

// Delete clears the vectors for the given game IDs.
func (vi VectorIndex) Delete(ctx context.Context, ids []uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.Int("ids", len(ids))))
	defer span.End()

	_, err := vi.sb.
		Update("games").
		Set("embedding", nil).
		Where(squirrel.Eq{"id": ids}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Count returns how many games carry a vector.
func (vi VectorIndex) Count(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := vi.sb.
		Select("COUNT(*)").
		From("games").
		Where("embedding IS NOT NULL").
		QueryRowContext(spanCtx).
		Scan(&count)

	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// applySearchFilter translates the structured filter into SQL predicates.
// Category groups match when the game's JSONB array shares at least one value.
func applySearchFilter(qry squirrel.SelectBuilder, filter domain.SearchFilter) squirrel.SelectBuilder {
	var groups squirrel.Or
	for _, group := range []struct {
		column string
		values []string
	}{
		{"genres", filter.Genres},
		{"game_modes", filter.GameModes},
		{"player_perspectives", filter.PlayerPerspectives},
	} {
		if len(group.values) > 0 {
			groups = append(groups, squirrel.Expr(
				fmt.Sprintf("jsonb_exists_any(%s, ?)", group.column),
				group.values,
			))
		}
	}

	if len(filter.Platforms) > 0 {
		groups = append(groups, squirrel.Expr(
			`EXISTS (SELECT 1 FROM jsonb_array_elements(platforms) p WHERE p->>'Name' = ANY(?))`,
			filter.Platforms,
		))
	}

	if len(groups) > 0 {
		qry = qry.Where(groups)
	}

	if filter.ReleasedAfter != nil {
		qry = qry.Where(squirrel.Expr("date_part('year', release_date) >= ?", *filter.ReleasedAfter))
	}
	if filter.ReleasedBefore != nil {
		qry = qry.Where(squirrel.Expr("date_part('year', release_date) <= ?", *filter.ReleasedBefore))
	}
	if filter.MinRating > 0 {
		qry = qry.Where(squirrel.GtOrEq{"rating": filter.MinRating})
	}
	return qry
}

func scanScoredGame(rows *sql.Rows) (domain.ScoredGame, error) {
	var (
		hit                domain.ScoredGame
		genres             []byte
		platforms          []byte
		gameModes          []byte
		playerPerspectives []byte
		companies          []byte
		gameType           string
		releaseDate        sql.NullTime
	)

	if err := rows.Scan(
		&hit.Game.ID,
		&hit.Game.Name,
		&hit.Game.Summary,
		&genres,
		&platforms,
		&gameModes,
		&playerPerspectives,
		&companies,
		&hit.Game.Franchise,
		&gameType,
		&releaseDate,
		&hit.Game.Rating,
		&hit.Game.CreatedAt,
		&hit.Game.UpdatedAt,
		&hit.Score,
	); err != nil {
		return domain.ScoredGame{}, err
	}

	hit.Game.GameType = domain.GameType(gameType)
	if releaseDate.Valid {
		hit.Game.ReleaseDate = &releaseDate.Time
	}

	for _, field := range []struct {
		raw []byte
		dst any
	}{
		{genres, &hit.Game.Genres},
		{platforms, &hit.Game.Platforms},
		{gameModes, &hit.Game.GameModes},
		{playerPerspectives, &hit.Game.PlayerPerspectives},
		{companies, &hit.Game.Companies},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dst); err != nil {
			return domain.ScoredGame{}, fmt.Errorf("failed to decode game %s: %w", hit.Game.ID, err)
		}
	}
	return hit, nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}
