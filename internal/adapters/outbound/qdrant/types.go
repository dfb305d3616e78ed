package qdrant

import (
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/google/uuid"
)

// gamePayload is the point payload stored alongside each vector. Category
// slices are stored flat so Qdrant match conditions can filter on them;
// release_year is denormalized for range conditions.
type gamePayload struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Summary            string           `json:"summary"`
	Genres             []string         `json:"genres"`
	Platforms          []string         `json:"platforms"`
	PlatformDetails    []domain.Platform `json:"platform_details"`
	GameModes          []string         `json:"game_modes"`
	PlayerPerspectives []string         `json:"player_perspectives"`
	Companies          []domain.Company `json:"companies"`
	Franchise          string           `json:"franchise"`
	GameType           string           `json:"game_type"`
	ReleaseDate        *time.Time       `json:"release_date,omitempty"`
	ReleaseYear        int              `json:"release_year"`
	Rating             float64          `json:"rating"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func newGamePayload(game domain.Game) gamePayload {
	return gamePayload{
		ID:                 game.ID.String(),
		Name:               game.Name,
		Summary:            game.Summary,
		Genres:             game.Genres,
		Platforms:          game.PlatformNames(),
		PlatformDetails:    game.Platforms,
		GameModes:          game.GameModes,
		PlayerPerspectives: game.PlayerPerspectives,
		Companies:          game.Companies,
		Franchise:          game.Franchise,
		GameType:           string(game.GameType),
		ReleaseDate:        game.ReleaseDate,
		ReleaseYear:        game.ReleaseYear(),
		Rating:             game.Rating,
		CreatedAt:          game.CreatedAt,
		UpdatedAt:          game.UpdatedAt,
	}
}

func (p gamePayload) game() (domain.Game, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return domain.Game{}, fmt.Errorf("invalid game id in payload: %w", err)
	}
	return domain.Game{
		ID:                 id,
		Name:               p.Name,
		Summary:            p.Summary,
		Genres:             p.Genres,
		Platforms:          p.PlatformDetails,
		GameModes:          p.GameModes,
		PlayerPerspectives: p.PlayerPerspectives,
		Companies:          p.Companies,
		Franchise:          p.Franchise,
		GameType:           domain.GameType(p.GameType),
		ReleaseDate:        p.ReleaseDate,
		Rating:             p.Rating,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}, nil
}

type collectionInfoResponse struct {
	Result struct {
		Config struct {
			Params struct {
				Vectors struct {
					Size int `json:"size"`
				} `json:"vectors"`
			} `json:"params"`
		} `json:"config"`
	} `json:"result"`
}

type searchResponse struct {
	Result []struct {
		ID      string      `json:"id"`
		Score   float64     `json:"score"`
		Payload gamePayload `json:"payload"`
	} `json:"result"`
}

type countResponse struct {
	Result struct {
		Count int `json:"count"`
	} `json:"result"`
}
