package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GameType classifies a catalog entry by release form.
type GameType string

const (
	GameType_MainGame   GameType = "main_game"
	GameType_Expansion  GameType = "expansion"
	GameType_DLC        GameType = "dlc_addon"
	GameType_Remake     GameType = "remake"
	GameType_Remaster   GameType = "remaster"
	GameType_Standalone GameType = "standalone_expansion"
)

// Platform is a playable platform with its known alternative names.
type Platform struct {
	Name    string
	Aliases []string
}

// Company is a developer or publisher attached to a game.
type Company struct {
	Name      string
	Developer bool
	Publisher bool
}

// Game represents a catalog entry that can be embedded and indexed.
type Game struct {
	ID                 uuid.UUID
	Name               string
	Summary            string
	Genres             []string
	Platforms          []Platform
	GameModes          []string
	PlayerPerspectives []string
	Companies          []Company
	Franchise          string
	GameType           GameType
	ReleaseDate        *time.Time
	Rating             float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks that the game carries the minimum data required for indexing.
func (g Game) Validate() error {
	if g.Name == "" {
		return NewValidationErr("game name cannot be empty")
	}
	if g.Rating < 0 || g.Rating > 100 {
		return NewValidationErr("game rating must be between 0 and 100")
	}
	return nil
}

// ReleaseYear returns the release year, or 0 when the release date is unknown.
func (g Game) ReleaseYear() int {
	if g.ReleaseDate == nil {
		return 0
	}
	return g.ReleaseDate.Year()
}

// PlatformNames returns the primary names of the game's platforms.
func (g Game) PlatformNames() []string {
	names := make([]string, 0, len(g.Platforms))
	for _, p := range g.Platforms {
		names = append(names, p.Name)
	}
	return names
}

// GameRepository defines the interface for managing the game catalog.
type GameRepository interface {
	// CreateGame inserts a new game into the catalog.
	CreateGame(ctx context.Context, game Game) error
	// GetGame returns the game with the given ID, a boolean indicating if it was found, and an error if any.
	GetGame(ctx context.Context, id uuid.UUID) (Game, bool, error)
	// UpdateGame replaces the stored game with the given one.
	UpdateGame(ctx context.Context, game Game) error
	// DeleteGame removes the game with the given ID.
	DeleteGame(ctx context.Context, id uuid.UUID) error
	// ListGamesForIndexing pages through the catalog in a stable order for bulk indexing.
	ListGamesForIndexing(ctx context.Context, page int, pageSize int) ([]Game, bool, error)
	// CountGames returns the number of games in the catalog.
	CountGames(ctx context.Context) (int, error)
}
