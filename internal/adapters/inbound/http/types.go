package http

import (
	"time"

	"github.com/google/uuid"
)

type errorCode string

const (
	errorCode_BadRequest errorCode = "BAD_REQUEST"
	errorCode_NotFound   errorCode = "NOT_FOUND"
	errorCode_Internal   errorCode = "INTERNAL_ERROR"
)

type errorResp struct {
	Error struct {
		Code    errorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func newErrorResp(code errorCode, message string) errorResp {
	resp := errorResp{}
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

type platformResp struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

type companyResp struct {
	Name      string `json:"name"`
	Developer bool   `json:"developer"`
	Publisher bool   `json:"publisher"`
}

type gameResp struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Summary            string         `json:"summary,omitempty"`
	Genres             []string       `json:"genres,omitempty"`
	Platforms          []platformResp `json:"platforms,omitempty"`
	GameModes          []string       `json:"game_modes,omitempty"`
	PlayerPerspectives []string       `json:"player_perspectives,omitempty"`
	Companies          []companyResp  `json:"companies,omitempty"`
	Franchise          string         `json:"franchise,omitempty"`
	GameType           string         `json:"game_type"`
	ReleaseDate        *time.Time     `json:"release_date,omitempty"`
	Rating             float64        `json:"rating"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type gameReq struct {
	Name               string         `json:"name"`
	Summary            string         `json:"summary"`
	Genres             []string       `json:"genres"`
	Platforms          []platformResp `json:"platforms"`
	GameModes          []string       `json:"game_modes"`
	PlayerPerspectives []string       `json:"player_perspectives"`
	Companies          []companyResp  `json:"companies"`
	Franchise          string         `json:"franchise"`
	GameType           string         `json:"game_type"`
	ReleaseDate        *time.Time     `json:"release_date"`
	Rating             float64        `json:"rating"`
}

type preferencesReq struct {
	FavoriteGenres     []string `json:"favorite_genres"`
	LikedGames         []string `json:"liked_games"`
	FollowedFranchises []string `json:"followed_franchises"`
}

type recommendationReq struct {
	ConversationID string         `json:"conversation_id"`
	UserID         string         `json:"user_id"`
	Query          string         `json:"query"`
	Preferences    preferencesReq `json:"preferences"`
	Limit          int            `json:"limit"`
}

type recommendationItem struct {
	Game       gameResp `json:"game"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons,omitempty"`
}

type recommendationResp struct {
	ConversationID    uuid.UUID            `json:"conversation_id"`
	Recommendations   []recommendationItem `json:"recommendations"`
	Message           string               `json:"message"`
	RequiresFollowUp  bool                 `json:"requires_follow_up"`
	FollowUpQuestion  string               `json:"follow_up_question,omitempty"`
	OverallConfidence float64              `json:"overall_confidence"`
}

type searchReq struct {
	Query              string   `json:"query"`
	Genres             []string `json:"genres"`
	Platforms          []string `json:"platforms"`
	GameModes          []string `json:"game_modes"`
	PlayerPerspectives []string `json:"player_perspectives"`
	ReleasedAfter      *string  `json:"released_after"`
	ReleasedBefore     *string  `json:"released_before"`
	MinRating          float64  `json:"min_rating"`
	Limit              int      `json:"limit"`
}

type scoredGameResp struct {
	Game  gameResp `json:"game"`
	Score float64  `json:"score"`
}

type searchResp struct {
	Items []scoredGameResp `json:"items"`
}

type reindexResp struct {
	Indexed int `json:"indexed"`
}

type cacheRefreshResp struct {
	Purged int `json:"purged"`
	Warmed int `json:"warmed"`
}

type healthResp struct {
	Status       string `json:"status"`
	IndexedGames int    `json:"indexed_games,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

type engineStatsResp struct {
	CatalogGames   int   `json:"catalog_games"`
	IndexedVectors int   `json:"indexed_vectors"`
	CacheEntries   int   `json:"cache_entries"`
	CacheHits      int64 `json:"cache_hits"`
	CacheMisses    int64 `json:"cache_misses"`
	CacheEvictions int64 `json:"cache_evictions"`
}
