package usecases

import (
	"fmt"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
)

// GameSearchBuilder builds a domain.SearchFilter from raw request input and
// centralizes validation plus category normalization for usecases.
type GameSearchBuilder struct {
	resolver domain.CategoryResolver

	genres         []string
	platforms      []string
	gameModes      []string
	perspectives   []string
	releasedAfter  *string
	releasedBefore *string
	yearFrom       *int
	yearTo         *int
	minRating      float64
}

// NewGameSearchBuilder creates a new GameSearchBuilder.
func NewGameSearchBuilder(resolver domain.CategoryResolver) *GameSearchBuilder {
	return &GameSearchBuilder{resolver: resolver}
}

// WithGenres sets optional genre filters.
func (b *GameSearchBuilder) WithGenres(genres []string) *GameSearchBuilder {
	b.genres = genres
	return b
}

// WithPlatforms sets optional platform filters.
func (b *GameSearchBuilder) WithPlatforms(platforms []string) *GameSearchBuilder {
	b.platforms = platforms
	return b
}

// WithGameModes sets optional game mode filters.
func (b *GameSearchBuilder) WithGameModes(modes []string) *GameSearchBuilder {
	b.gameModes = modes
	return b
}

// WithPlayerPerspectives sets optional player perspective filters.
func (b *GameSearchBuilder) WithPlayerPerspectives(perspectives []string) *GameSearchBuilder {
	b.perspectives = perspectives
	return b
}

// WithReleaseDateRange sets an optional release window from free-form date
// strings such as "2015", "2015-03-01" or "June 3, 2015".
func (b *GameSearchBuilder) WithReleaseDateRange(after, before *string) *GameSearchBuilder {
	b.releasedAfter = after
	b.releasedBefore = before
	return b
}

// WithReleaseYears sets an optional release window from already-parsed years.
// Parsed date strings take precedence when both are configured.
func (b *GameSearchBuilder) WithReleaseYears(from, to *int) *GameSearchBuilder {
	b.yearFrom = from
	b.yearTo = to
	return b
}

// WithMinRating sets an optional minimum aggregated rating in [0,100].
func (b *GameSearchBuilder) WithMinRating(minRating float64) *GameSearchBuilder {
	b.minRating = minRating
	return b
}

// Build validates configured filters and returns the normalized search filter.
func (b *GameSearchBuilder) Build() (domain.SearchFilter, error) {
	filter := domain.SearchFilter{
		Genres:             b.resolveAll(domain.CategoryKind_Genre, b.genres),
		Platforms:          b.resolveAll(domain.CategoryKind_Platform, b.platforms),
		GameModes:          b.resolveAll(domain.CategoryKind_GameMode, b.gameModes),
		PlayerPerspectives: b.resolveAll(domain.CategoryKind_Perspective, b.perspectives),
		ReleasedAfter:      b.yearFrom,
		ReleasedBefore:     b.yearTo,
	}

	if b.releasedAfter != nil {
		year, err := parseReleaseYear(*b.releasedAfter)
		if err != nil {
			return domain.SearchFilter{}, err
		}
		filter.ReleasedAfter = &year
	}
	if b.releasedBefore != nil {
		year, err := parseReleaseYear(*b.releasedBefore)
		if err != nil {
			return domain.SearchFilter{}, err
		}
		filter.ReleasedBefore = &year
	}

	if filter.ReleasedAfter != nil && filter.ReleasedBefore != nil &&
		*filter.ReleasedAfter > *filter.ReleasedBefore {
		return domain.SearchFilter{}, domain.NewValidationErr("released_after must be less than or equal to released_before")
	}

	if b.minRating < 0 || b.minRating > 100 {
		return domain.SearchFilter{}, domain.NewValidationErr("min_rating must be between 0 and 100")
	}
	filter.MinRating = b.minRating

	return filter, nil
}

// resolveAll normalizes raw labels, keeping unresolved ones as cleaned-up
// passthrough values so the filter still narrows the search.
func (b *GameSearchBuilder) resolveAll(kind domain.CategoryKind, raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	return b.resolver.ResolveAll(kind, raw)
}

// parseReleaseYear extracts a year from a free-form date string.
func parseReleaseYear(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, domain.NewValidationErr("release date must not be empty")
	}
	parsed, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return 0, domain.NewValidationErr(fmt.Sprintf("unrecognized release date %q", input))
	}
	return parsed.Year(), nil
}
