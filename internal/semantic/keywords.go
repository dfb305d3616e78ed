package semantic

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
)

// CombinationLimits bounds combination generation so cache warmup stays cheap.
type CombinationLimits struct {
	MaxCombinations         int
	MaxGenresPerTheme       int
	MaxPlatformsPerEra      int
	MaxGenresPerPlatform    int
	MaxGenresPerGameMode    int
	MaxGenresPerPerspective int
	MinKeywordsForCaching   int
}

// DefaultCombinationLimits returns the built-in combination bounds.
func DefaultCombinationLimits() CombinationLimits {
	return CombinationLimits{
		MaxCombinations:         200,
		MaxGenresPerTheme:       3,
		MaxPlatformsPerEra:      2,
		MaxGenresPerPlatform:    3,
		MaxGenresPerGameMode:    3,
		MaxGenresPerPerspective: 3,
		MinKeywordsForCaching:   3,
	}
}

// popularGenrePairs are combinations warmed into the cache first because they
// dominate real query traffic.
var popularGenrePairs = [][2]string{
	{"action", "rpg"},
	{"horror", "survival"},
	{"racing", "simulation"},
	{"strategy", "real-time"},
	{"puzzle", "adventure"},
	{"fighting", "action"},
	{"sports", "simulation"},
	{"shooter", "first-person"},
}

// KeywordStore serves taxonomy lookups, category mapping lookups and bounded
// combination generation. It is immutable after construction and safe for
// concurrent use.
type KeywordStore struct {
	taxonomy Taxonomy
	limits   CombinationLimits
	terms    map[string]struct{}
}

// NewKeywordStore creates a KeywordStore over the given taxonomy.
func NewKeywordStore(taxonomy Taxonomy, limits CombinationLimits) *KeywordStore {
	terms := make(map[string]struct{})
	for _, kws := range taxonomy.Keywords {
		for _, kw := range kws {
			terms[kw.Term] = struct{}{}
		}
	}
	return &KeywordStore{taxonomy: taxonomy, limits: limits, terms: terms}
}

// isTaxonomyTerm reports whether the lowered token is a taxonomy keyword on
// any axis.
func (s *KeywordStore) isTaxonomyTerm(token string) bool {
	_, ok := s.terms[token]
	return ok
}

// Taxonomy returns the underlying taxonomy.
func (s *KeywordStore) Taxonomy() Taxonomy {
	return s.taxonomy
}

// Limits returns the combination bounds in effect.
func (s *KeywordStore) Limits() CombinationLimits {
	return s.limits
}

// KeywordsFor returns the axis keywords matched in the lowercased text:
// literal taxonomy hits plus the cross-axis terms of the text's category
// mappings, ordered by weight descending and capped per axis.
func (s *KeywordStore) KeywordsFor(axis Axis, text string) []Keyword {
	lowered := strings.ToLower(text)
	seen := make(map[string]struct{})
	var matched []Keyword
	for _, kw := range s.taxonomy.Keywords[axis] {
		if containsTerm(lowered, kw.Term) {
			matched = append(matched, kw)
			seen[kw.Term] = struct{}{}
		}
	}

	for _, term := range s.MappingFor(lowered).Keywords[axis] {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		matched = append(matched, s.axisKeyword(axis, term))
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Weight > matched[j].Weight
	})

	limit := maxKeywordsPerAxis[axis]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// axisKeyword resolves a mapped term into a full keyword: the taxonomy entry
// when one exists on the axis, otherwise a synthesized keyword at the term's
// hash position.
func (s *KeywordStore) axisKeyword(axis Axis, term string) Keyword {
	for _, kw := range s.taxonomy.Keywords[axis] {
		if kw.Term == term {
			return kw
		}
	}
	r := axisRanges[axis]
	return Keyword{
		Term:     term,
		Weight:   mappedKeywordWeight,
		Position: r.Start + hashPosition(term, r.Size()),
	}
}

// MatchedAxes returns how many axes have at least one keyword hit in the text.
func (s *KeywordStore) MatchedAxes(text string) int {
	count := 0
	for axis := range s.taxonomy.Keywords {
		if len(s.KeywordsFor(axis, text)) > 0 {
			count++
		}
	}
	return count
}

// HierarchicalBoosts returns the boost keywords whose both trigger terms
// occur in the text, with the hierarchical multiplier applied to their weight.
func (s *KeywordStore) HierarchicalBoosts(text string) []Keyword {
	lowered := strings.ToLower(text)
	var boosts []Keyword
	for _, rule := range s.taxonomy.Boosts {
		if containsTerm(lowered, rule.TermA) && containsTerm(lowered, rule.TermB) {
			boosted := rule.Boost
			boosted.Weight = clamp01(boosted.Weight * HierarchicalBoostMultiplier)
			boosts = append(boosts, boosted)
		}
	}
	return boosts
}

// PopularCombinations returns the curated combination texts that are always
// warmed first.
func (s *KeywordStore) PopularCombinations() []string {
	out := make([]string, 0, len(popularGenrePairs))
	for _, pair := range popularGenrePairs {
		out = append(out, pair[0]+" "+pair[1])
	}
	return out
}

// Combinations generates the bounded set of keyword combination texts for a
// game: curated popular pairs that the game matches, then theme x genre,
// platform x genre, game mode x genre, and perspective x genre pairs, capped
// at MaxCombinations.
func (s *KeywordStore) Combinations(game domain.Game) []string {
	text := strings.ToLower(gameAttributeText(game))
	seen := make(map[string]struct{})
	var out []string

	add := func(combo string) bool {
		if len(out) >= s.limits.MaxCombinations {
			return false
		}
		if _, dup := seen[combo]; dup {
			return true
		}
		seen[combo] = struct{}{}
		out = append(out, combo)
		return true
	}

	for _, pair := range popularGenrePairs {
		if containsTerm(text, pair[0]) && containsTerm(text, pair[1]) {
			if !add(pair[0] + " " + pair[1]) {
				return out
			}
		}
	}

	genres := lowerAll(game.Genres)
	for _, theme := range s.matchedTerms(Axis_Theme, text) {
		for i, genre := range genres {
			if i >= s.limits.MaxGenresPerTheme {
				break
			}
			if !add(theme + " " + genre) {
				return out
			}
		}
	}

	for _, platform := range game.PlatformNames() {
		p := strings.ToLower(platform)
		for i, genre := range genres {
			if i >= s.limits.MaxGenresPerPlatform {
				break
			}
			if !add(genre + " on " + p) {
				return out
			}
		}
	}

	if era := releaseEra(game.ReleaseYear()); era != "" {
		for i, platform := range game.PlatformNames() {
			if i >= s.limits.MaxPlatformsPerEra {
				break
			}
			if !add(era + " " + strings.ToLower(platform)) {
				return out
			}
		}
	}

	for _, mode := range lowerAll(game.GameModes) {
		for i, genre := range genres {
			if i >= s.limits.MaxGenresPerGameMode {
				break
			}
			if !add(mode + " " + genre) {
				return out
			}
		}
	}

	for _, perspective := range lowerAll(game.PlayerPerspectives) {
		for i, genre := range genres {
			if i >= s.limits.MaxGenresPerPerspective {
				break
			}
			if !add(perspective + " " + genre) {
				return out
			}
		}
	}

	return out
}

// CacheWorthy reports whether a combination text matches enough taxonomy and
// aspect keywords to be worth pre-computing.
func (s *KeywordStore) CacheWorthy(combo string) bool {
	total := 0
	for axis := range s.taxonomy.Keywords {
		total += len(s.KeywordsFor(axis, combo))
		if total >= s.limits.MinKeywordsForCaching {
			return true
		}
	}
	total += len(s.AspectKeywords(combo))
	return total >= s.limits.MinKeywordsForCaching
}

// matchedTerms returns the terms of axis keywords occurring in the text.
func (s *KeywordStore) matchedTerms(axis Axis, text string) []string {
	kws := s.KeywordsFor(axis, text)
	terms := make([]string, 0, len(kws))
	for _, kw := range kws {
		terms = append(terms, kw.Term)
	}
	return terms
}

// gameAttributeText flattens the game's categorical attributes for matching.
func gameAttributeText(game domain.Game) string {
	parts := []string{game.Name, game.Summary}
	parts = append(parts, game.Genres...)
	parts = append(parts, game.PlatformNames()...)
	parts = append(parts, game.GameModes...)
	parts = append(parts, game.PlayerPerspectives...)
	return strings.Join(parts, " ")
}

// releaseEra buckets a release year into a coarse era label.
func releaseEra(year int) string {
	switch {
	case year == 0:
		return ""
	case year < 2000:
		return "retro"
	case year < 2010:
		return "classic"
	case year < 2020:
		return "modern"
	default:
		return "current-gen"
	}
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// containsTerm reports whether the term occurs in the text on word boundaries
// for single-word terms, or as a substring for multi-word terms.
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	if strings.ContainsAny(term, " -") {
		return strings.Contains(text, term)
	}
	idx := 0
	for {
		i := strings.Index(text[idx:], term)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(term)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// InitKeywordStore initializes the keyword store from the configured taxonomy
// file and registers it in the dependency container.
type InitKeywordStore struct {
	TaxonomyPath    string `config:"SEMANTIC_TAXONOMY_PATH" default:""`
	MaxCombinations int    `config:"SEMANTIC_MAX_COMBINATIONS" default:"200"`
}

// Initialize loads the taxonomy and registers the KeywordStore.
func (iks InitKeywordStore) Initialize(ctx context.Context) (context.Context, error) {
	taxonomy, err := LoadTaxonomy(iks.TaxonomyPath)
	if err != nil {
		return ctx, fmt.Errorf("load semantic taxonomy: %w", err)
	}

	limits := DefaultCombinationLimits()
	if iks.MaxCombinations > 0 {
		limits.MaxCombinations = iks.MaxCombinations
	}

	depend.Register(NewKeywordStore(taxonomy, limits))
	return ctx, nil
}
