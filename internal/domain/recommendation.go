package domain

import (
	"github.com/google/uuid"
)

// QueryAnalysis is the structured interpretation of a user's request,
// produced by the language model.
type QueryAnalysis struct {
	Intent             string
	Genres             []string
	Platforms          []string
	GameModes          []string
	PlayerPerspectives []string
	Themes             []string
	ReleaseYearFrom    *int
	ReleaseYearTo      *int
	SimilarToGame      string
	Ambiguous          bool
	FollowUpQuestion   string
}

// UserPreferences carries per-user signals that bias recommendations.
type UserPreferences struct {
	FavoriteGenres     []string
	LikedGames         []string
	FollowedFranchises []string
}

// HasSignals reports whether any preference signal is present.
func (p UserPreferences) HasSignals() bool {
	return len(p.FavoriteGenres) > 0 || len(p.LikedGames) > 0 || len(p.FollowedFranchises) > 0
}

// RecommendationRequest is a single turn of the recommendation dialogue.
type RecommendationRequest struct {
	ConversationID uuid.UUID
	// UserID identifies the authenticated caller, uuid.Nil when anonymous.
	UserID      uuid.UUID
	Query       string
	Preferences UserPreferences
	Limit       int
}

// Recommendation is a single recommended game with its confidence score.
type Recommendation struct {
	Game       Game
	Confidence float64
	Reasons    []string
}

// RecommendationResponse is the engine's answer to a recommendation request.
type RecommendationResponse struct {
	ConversationID    uuid.UUID
	Recommendations   []Recommendation
	Message           string
	RequiresFollowUp  bool
	FollowUpQuestion  string
	OverallConfidence float64
}
