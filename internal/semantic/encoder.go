package semantic

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/common"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/telemetry"
)

// maxPlatformAliasesInText caps how many aliases each platform contributes to
// the indexing text.
const maxPlatformAliasesInText = 2

// crossCategoryAxisThreshold is the number of distinct axes a text must match
// before the cross-category multiplier kicks in.
const crossCategoryAxisThreshold = 3

// OverlayStrategy writes keyword-derived signal into the base region of an
// embedding. Apply returns the number of keywords it blended in.
type OverlayStrategy interface {
	Name() string
	Apply(vector []float64, text string, weights map[Axis]float64) int
}

// PositionalOverlay places each matched keyword at a position derived from
// the keyword's own hash inside its axis range. Keywords matched later in an
// axis decay: the i-th keyword keeps weight w*(1 - i/rangeSize*0.3).
type PositionalOverlay struct {
	store *KeywordStore
}

// NewPositionalOverlay creates the hash-position overlay strategy.
func NewPositionalOverlay(store *KeywordStore) *PositionalOverlay {
	return &PositionalOverlay{store: store}
}

func (p *PositionalOverlay) Name() string { return "positional" }

func (p *PositionalOverlay) Apply(vector []float64, text string, weights map[Axis]float64) int {
	crossBoost := 1.0
	if p.store.MatchedAxes(text) >= crossCategoryAxisThreshold {
		crossBoost = CrossCategoryBoostMultiplier
	}

	applied := 0
	for _, axis := range orderedAxes {
		r := axisRanges[axis]
		axisWeight := weights[axis]
		if axisWeight == 0 {
			continue
		}
		for i, kw := range p.store.KeywordsFor(axis, text) {
			w := clamp01(kw.Weight * axisWeight * crossBoost)
			w = w * (1 - float64(i)/float64(r.Size())*0.3)
			pos := r.Start + hashPosition(kw.Term, r.Size())
			blend(vector, pos, keywordValue(kw.Term), w)
			applied++
		}
	}

	for _, kw := range p.store.AspectKeywords(text) {
		blend(vector, kw.Position, keywordValue(kw.Term), kw.Weight)
		applied++
	}
	return applied
}

// LegacyKeywordOverlay reproduces the original plain-text enhancement: each
// taxonomy keyword owns a fixed position, the signal spreads to up to three
// neighbors at w*0.3/distance, and co-occurrence rules add boost keywords in
// the reserved boost range.
type LegacyKeywordOverlay struct {
	store *KeywordStore
}

// NewLegacyKeywordOverlay creates the fixed-position overlay strategy.
func NewLegacyKeywordOverlay(store *KeywordStore) *LegacyKeywordOverlay {
	return &LegacyKeywordOverlay{store: store}
}

func (l *LegacyKeywordOverlay) Name() string { return "legacy-plain-text" }

func (l *LegacyKeywordOverlay) Apply(vector []float64, text string, weights map[Axis]float64) int {
	applied := 0
	for _, axis := range orderedAxes {
		axisWeight := weights[axis]
		if axisWeight == 0 {
			continue
		}
		for _, kw := range l.store.KeywordsFor(axis, text) {
			w := clamp01(kw.Weight * axisWeight)
			blend(vector, kw.Position, keywordValue(kw.Term), w)
			spreadNeighbors(vector, kw.Position, keywordValue(kw.Term), w)
			applied++
		}
	}

	for _, boost := range l.store.HierarchicalBoosts(text) {
		blend(vector, boost.Position, keywordValue(boost.Term), boost.Weight)
		applied++
	}
	for _, kw := range l.store.AspectKeywords(text) {
		blend(vector, kw.Position, keywordValue(kw.Term), kw.Weight)
		applied++
	}
	return applied
}

// spreadNeighbors bleeds a fraction of the keyword signal into the positions
// around it, attenuated by distance.
func spreadNeighbors(vector []float64, pos int, value, weight float64) {
	for d := 1; d <= 3; d++ {
		w := weight * 0.3 / float64(d)
		blend(vector, pos-d, value, w)
		blend(vector, pos+d, value, w)
	}
}

// blend mixes value into the vector at pos with the given weight. Positions
// outside the base region are ignored.
func blend(vector []float64, pos int, value, weight float64) {
	if pos < 0 || pos >= domain.BaseEmbeddingDims {
		return
	}
	vector[pos] = vector[pos]*(1-weight) + value*weight
}

// keywordValue maps a keyword term to a stable value in [-1,1]: the first
// four bytes of its SHA-256 digest read as an int32, scaled by MaxInt32.
func keywordValue(term string) float64 {
	sum := sha256.Sum256([]byte(strings.ToLower(term)))
	raw := int32(binary.BigEndian.Uint32(sum[:4]))
	return float64(raw) / float64(math.MaxInt32)
}

// hashPosition maps a keyword term to an offset inside an axis range.
func hashPosition(term string, rangeSize int) int {
	sum := sha256.Sum256([]byte(strings.ToLower(term)))
	return int(binary.BigEndian.Uint32(sum[4:8]) % uint32(rangeSize))
}

// Encoder is the deterministic semantic encoder. The base region of every
// vector is a reproducible pseudo-embedding seeded from the input text; the
// overlay selected for the input then writes the keyword signal on top.
type Encoder struct {
	store       *KeywordStore
	resolver    domain.CategoryResolver
	cache       domain.EmbeddingCache
	strategies  []OverlayStrategy
	remote      domain.LLMClient
	remoteModel string
	now         func() time.Time
}

// NewEncoder creates an Encoder. The cache may be nil to disable caching.
// Exactly one overlay strategy runs per encode call: the first for enriched
// game input, the second for plain text. A single supplied strategy covers
// both inputs.
func NewEncoder(store *KeywordStore, resolver domain.CategoryResolver, cache domain.EmbeddingCache, strategies ...OverlayStrategy) *Encoder {
	if len(strategies) == 0 {
		strategies = []OverlayStrategy{
			NewPositionalOverlay(store),
			NewLegacyKeywordOverlay(store),
		}
	}
	return &Encoder{
		store:      store,
		resolver:   resolver,
		cache:      cache,
		strategies: strategies,
		now:        time.Now,
	}
}

// WithRemoteBase configures an optional remote embedding model that replaces
// the seeded base region. The deterministic fill remains the fallback when
// the remote call fails.
func (e *Encoder) WithRemoteBase(client domain.LLMClient, model string) *Encoder {
	e.remote = client
	e.remoteModel = model
	return e
}

// EncodeText embeds arbitrary text with the index-side axis weights.
func (e *Encoder) EncodeText(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	return e.encode(ctx, text, e.store.Taxonomy().Weights.Index, nil)
}

// EncodeQuery embeds a search query with the query-side axis weights.
func (e *Encoder) EncodeQuery(ctx context.Context, query string) (domain.EmbeddingVector, error) {
	return e.encode(ctx, query, e.store.Taxonomy().Weights.Query, nil)
}

// EncodeGame embeds a full game record, including its structured features.
func (e *Encoder) EncodeGame(ctx context.Context, game domain.Game) (domain.EmbeddingVector, error) {
	if err := game.Validate(); err != nil {
		return domain.EmbeddingVector{}, err
	}
	text := e.BuildGameText(game)
	return e.encode(ctx, text, e.store.Taxonomy().Weights.Index, &game)
}

// encode runs the full pipeline: cache lookup, seeded base fill, one overlay
// pass, structured features, normalization and dimension validation.
func (e *Encoder) encode(ctx context.Context, text string, weights map[Axis]float64, game *domain.Game) (domain.EmbeddingVector, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		err := domain.NewValidationErr("cannot encode empty text")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	if e.cache != nil && game == nil {
		if cached, ok := e.cache.Get(trimmed); ok {
			return cached, nil
		}
	}

	vector := make([]float64, domain.EmbeddingDims)
	e.fillBaseRegion(ctx, vector, trimmed)

	e.selectStrategy(game != nil).Apply(vector, trimmed, weights)

	if game != nil {
		e.fillStructuredFeatures(vector, *game, trimmed)
	}

	common.NormalizeVector(vector)

	result := domain.EmbeddingVector{Vector: vector}
	if err := ValidateDims(result); telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}

	if e.cache != nil && game == nil {
		e.cache.Put(trimmed, result)
	}
	return result, nil
}

// selectStrategy picks the overlay for one encode call: the enriched strategy
// when structured game data is present, the plain-text one otherwise.
func (e *Encoder) selectStrategy(enriched bool) OverlayStrategy {
	if enriched || len(e.strategies) == 1 {
		return e.strategies[0]
	}
	return e.strategies[1]
}

// fillBaseRegion fills the base region, preferring the remote embedding model
// when one is configured and falling back to the seeded pseudo-embedding.
func (e *Encoder) fillBaseRegion(ctx context.Context, vector []float64, text string) {
	fillBase(vector, text)
	if e.remote == nil || e.remoteModel == "" {
		return
	}
	resp, err := e.remote.Embed(ctx, e.remoteModel, strings.ToLower(text))
	if err != nil || len(resp.Embedding) == 0 {
		return
	}
	copy(vector[:domain.BaseEmbeddingDims], resp.Embedding)
}

// fillBase fills the base region with a reproducible pseudo-embedding in
// [-1,1], seeded from the lowercased text.
func fillBase(vector []float64, text string) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(text)))
	rng := rand.New(rand.NewSource(int64(h.Sum64()))) //nolint:gosec

	for i := 0; i < domain.BaseEmbeddingDims; i++ {
		vector[i] = rng.Float64()*2 - 1
	}
}

// fillStructuredFeatures writes the scalar game features into the trailing
// region. Unused dimensions stay zero.
func (e *Encoder) fillStructuredFeatures(vector []float64, game domain.Game, text string) {
	features := vector[domain.BaseEmbeddingDims:]

	features[0] = clamp01(game.Rating / 100)
	features[1] = recencyScore(game.ReleaseYear(), e.now().Year())
	features[2] = clamp01(float64(len(game.Genres)) / 5)
	features[3] = clamp01(float64(len(game.Platforms)) / 5)

	matched := e.matchedKeywords(text)
	features[4] = clamp01(float64(len(matched)) / 15)
	features[5] = clamp01(float64(len(e.store.HierarchicalBoosts(text))) / 5)
	features[6] = clamp01(weightVariance(matched))
	features[7] = clamp01(float64(e.store.MatchedAxes(text)) / float64(len(axisRanges)))
}

// matchedKeywords collects every matched keyword across all axes.
func (e *Encoder) matchedKeywords(text string) []Keyword {
	var all []Keyword
	for _, axis := range orderedAxes {
		all = append(all, e.store.KeywordsFor(axis, text)...)
	}
	return all
}

// recencyScore maps a release year to [0,1], newest releases closest to 1.
func recencyScore(year, currentYear int) float64 {
	if year == 0 || currentYear <= 1970 {
		return 0
	}
	return clamp01(float64(year-1970) / float64(currentYear-1970))
}

// weightVariance returns the variance of the matched keyword weights.
func weightVariance(kws []Keyword) float64 {
	if len(kws) == 0 {
		return 0
	}
	var mean float64
	for _, kw := range kws {
		mean += kw.Weight
	}
	mean /= float64(len(kws))

	var variance float64
	for _, kw := range kws {
		d := kw.Weight - mean
		variance += d * d
	}
	return variance / float64(len(kws))
}

// ValidateDims returns an error unless the vector has exactly the engine
// dimensionality. Vectors of any other size must never reach the index.
func ValidateDims(v domain.EmbeddingVector) error {
	if v.Dims() != domain.EmbeddingDims {
		return domain.NewValidationErr(
			fmt.Sprintf("embedding has %d dimensions, expected %d", v.Dims(), domain.EmbeddingDims))
	}
	return nil
}

// BuildGameText renders a game into the canonical indexing text: the labeled
// attribute sentence followed by the matched taxonomy keywords per axis.
func (e *Encoder) BuildGameText(game domain.Game) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Game: %s.", game.Name)
	if len(game.Genres) > 0 {
		fmt.Fprintf(&b, " Genres: %s.", strings.Join(game.Genres, ", "))
	}
	if len(game.Platforms) > 0 {
		parts := make([]string, 0, len(game.Platforms))
		for _, p := range game.Platforms {
			aliases := p.Aliases
			if e.resolver != nil {
				if known := e.resolver.PlatformAliases(p.Name); len(known) > 0 {
					aliases = known
				}
			}
			if len(aliases) > maxPlatformAliasesInText {
				aliases = aliases[:maxPlatformAliasesInText]
			}
			if len(aliases) > 0 {
				parts = append(parts, fmt.Sprintf("%s (%s)", p.Name, strings.Join(aliases, ", ")))
			} else {
				parts = append(parts, p.Name)
			}
		}
		fmt.Fprintf(&b, " Platforms: %s.", strings.Join(parts, ", "))
	}
	if len(game.GameModes) > 0 {
		fmt.Fprintf(&b, " Game Modes: %s.", strings.Join(game.GameModes, ", "))
	}
	if len(game.PlayerPerspectives) > 0 {
		fmt.Fprintf(&b, " Player Perspective: %s.", strings.Join(game.PlayerPerspectives, ", "))
	}
	if len(game.Companies) > 0 {
		names := make([]string, 0, len(game.Companies))
		for _, c := range game.Companies {
			names = append(names, c.Name)
		}
		fmt.Fprintf(&b, " Companies: %s.", strings.Join(names, ", "))
	}
	if game.GameType != "" {
		fmt.Fprintf(&b, " Game Type: %s.", game.GameType)
	}
	if year := game.ReleaseYear(); year > 0 {
		fmt.Fprintf(&b, " Released: %d.", year)
	}
	if game.Rating > 0 {
		fmt.Fprintf(&b, " Rating: %.1f.", game.Rating)
	}

	source := b.String() + " " + game.Summary
	for _, axis := range orderedAxes {
		kws := e.store.KeywordsFor(axis, source)
		if len(kws) == 0 {
			continue
		}
		terms := make([]string, 0, len(kws))
		for _, kw := range kws {
			terms = append(terms, kw.Term)
		}
		fmt.Fprintf(&b, " %s: %s.", strings.Title(string(axis)), strings.Join(terms, ", ")) //nolint:staticcheck
	}

	return b.String()
}

// InitSemanticEncoder initializes the encoder and registers it in the
// dependency container.
type InitSemanticEncoder struct {
	Store       *KeywordStore           `resolve:""`
	Resolver    domain.CategoryResolver `resolve:""`
	Cache       domain.EmbeddingCache   `resolve:""`
	LLM         domain.LLMClient        `resolve:""`
	RemoteModel string                  `config:"EMBEDDING_REMOTE_MODEL" default:"-"`
}

// Initialize registers the Encoder as the domain.SemanticEncoder implementation.
func (ise InitSemanticEncoder) Initialize(ctx context.Context) (context.Context, error) {
	encoder := NewEncoder(ise.Store, ise.Resolver, ise.Cache)
	if ise.RemoteModel != "-" {
		encoder = encoder.WithRemoteBase(ise.LLM, ise.RemoteModel)
	}
	depend.Register[domain.SemanticEncoder](encoder)
	return ctx, nil
}
