package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	gameFields = []string{
		"id",
		"name",
		"summary",
		"genres",
		"platforms",
		"game_modes",
		"player_perspectives",
		"companies",
		"franchise",
		"game_type",
		"release_date",
		"rating",
		"created_at",
		"updated_at",
	}
)

// GameRepository implements the domain.GameRepository interface using
// PostgreSQL as the storage backend.
type GameRepository struct {
	sb squirrel.StatementBuilderType
}

// NewGameRepository creates a new instance of GameRepository.
func NewGameRepository(br squirrel.BaseRunner) GameRepository {
	return GameRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateGame inserts a new game into the catalog.
func (gr GameRepository) CreateGame(ctx context.Context, game domain.Game) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row, err := newGameRow(game)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = gr.sb.
		Insert("games").
		Columns(gameFields...).
		Values(
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
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetGame retrieves a game by its ID.
func (gr GameRepository) GetGame(ctx context.Context, id uuid.UUID) (domain.Game, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	game, err := scanGame(gr.sb.
		Select(gameFields...).
		From("games").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx))

	if err == sql.ErrNoRows {
		return domain.Game{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Game{}, false, err
	}

	return game, true, nil
}

// UpdateGame replaces the stored game with the given one.
func (gr GameRepository) UpdateGame(ctx context.Context, game domain.Game) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row, err := newGameRow(game)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = gr.sb.
		Update("games").
		Set("name", row.name).
		Set("summary", row.summary).
		Set("genres", row.genres).
		Set("platforms", row.platforms).
		Set("game_modes", row.gameModes).
		Set("player_perspectives", row.playerPerspectives).
		Set("companies", row.companies).
		Set("franchise", row.franchise).
		Set("game_type", row.gameType).
		Set("release_date", row.releaseDate).
		Set("rating", row.rating).
		Set("updated_at", row.updatedAt).
		Where(squirrel.Eq{"id": row.id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteGame removes a game by its ID.
func (gr GameRepository) DeleteGame(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := gr.sb.
		Delete("games").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListGamesForIndexing pages through the catalog ordered by creation time so
// bulk indexing sees a stable sequence.
func (gr GameRepository) ListGamesForIndexing(ctx context.Context, page int, pageSize int) ([]domain.Game, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("page", page),
		attribute.Int("pageSize", pageSize),
	))
	defer span.End()

	if pageSize <= 0 {
		return nil, false, domain.NewValidationErr("page_size must be greater than 0")
	}
	if page < 0 {
		return nil, false, domain.NewValidationErr("page must not be negative")
	}

	rows, err := gr.sb.
		Select(gameFields...).
		From("games").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(pageSize + 1)). // fetch one extra to determine if there's more
		Offset(uint64(page * pageSize)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	defer rows.Close() //nolint:errcheck

	var games []domain.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, false, err
		}
		games = append(games, game)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	if len(games) > pageSize {
		return games[:pageSize], true, nil
	}
	return games, false, nil
}

// CountGames returns the number of games in the catalog.
func (gr GameRepository) CountGames(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := gr.sb.
		Select("COUNT(*)").
		From("games").
		QueryRowContext(spanCtx).
		Scan(&count)

	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return count, nil
}

// gameRow holds a game flattened into column values, with the nested slices
// encoded as JSONB.
type gameRow struct {
	id                 uuid.UUID
	name               string
	summary            string
	genres             []byte
	platforms          []byte
	gameModes          []byte
	playerPerspectives []byte
	companies          []byte
	franchise          string
	gameType           string
	releaseDate        sql.NullTime
	rating             float64
	createdAt          sql.NullTime
	updatedAt          sql.NullTime
}

func newGameRow(game domain.Game) (gameRow, error) {
	row := gameRow{
		id:        game.ID,
		name:      game.Name,
		summary:   game.Summary,
		franchise: game.Franchise,
		gameType:  string(game.GameType),
		rating:    game.Rating,
		createdAt: sql.NullTime{Time: game.CreatedAt, Valid: true},
		updatedAt: sql.NullTime{Time: game.UpdatedAt, Valid: true},
	}
	if game.ReleaseDate != nil {
		row.releaseDate = sql.NullTime{Time: *game.ReleaseDate, Valid: true}
	}

	for _, field := range []struct {
		dst   *[]byte
		value any
	}{
		{&row.genres, emptyIfNil(game.Genres)},
		{&row.platforms, game.Platforms},
		{&row.gameModes, emptyIfNil(game.GameModes)},
		{&row.playerPerspectives, emptyIfNil(game.PlayerPerspectives)},
		{&row.companies, game.Companies},
	} {
		encoded, err := json.Marshal(field.value)
		if err != nil {
			return gameRow{}, fmt.Errorf("failed to encode game %s: %w", game.ID, err)
		}
		*field.dst = encoded
	}
	return row, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(scanner rowScanner) (domain.Game, error) {
	var (
		game               domain.Game
		genres             []byte
		platforms          []byte
		gameModes          []byte
		playerPerspectives []byte
		companies          []byte
		gameType           string
		releaseDate        sql.NullTime
	)

	if err := scanner.Scan(
		&game.ID,
		&game.Name,
		&game.Summary,
		&genres,
		&platforms,
		&gameModes,
		&playerPerspectives,
		&companies,
		&game.Franchise,
		&gameType,
		&releaseDate,
		&game.Rating,
		&game.CreatedAt,
		&game.UpdatedAt,
	); err != nil {
		return domain.Game{}, err
	}

	game.GameType = domain.GameType(gameType)
	if releaseDate.Valid {
		game.ReleaseDate = &releaseDate.Time
	}

	for _, field := range []struct {
		raw []byte
		dst any
	}{
		{genres, &game.Genres},
		{platforms, &game.Platforms},
		{gameModes, &game.GameModes},
		{playerPerspectives, &game.PlayerPerspectives},
		{companies, &game.Companies},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dst); err != nil {
			return domain.Game{}, fmt.Errorf("failed to decode game %s: %w", game.ID, err)
		}
	}
	return game, nil
}

// InitGameRepository is a Symbiont initializer for GameRepository.
type InitGameRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the GameRepository in the dependency container.
func (igr InitGameRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.GameRepository](NewGameRepository(igr.DB))
	return ctx, nil
}
