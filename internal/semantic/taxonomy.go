package semantic

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Axis identifies a semantic dimension of the keyword taxonomy.
type Axis string

const (
	Axis_Genre     Axis = "genre"
	Axis_Mechanics Axis = "mechanics"
	Axis_Theme     Axis = "theme"
	Axis_Mood      Axis = "mood"
	Axis_ArtStyle  Axis = "art_style"
	Axis_Audience  Axis = "audience"
)

// AxisRange is the half-open slice [Start,End) of the base vector an axis
// writes its signal into.
type AxisRange struct {
	Start int
	End   int
}

// Size returns the number of positions the range covers.
func (r AxisRange) Size() int {
	return r.End - r.Start
}

// orderedAxes fixes the processing order of axes so overlay writes that
// straddle range boundaries stay deterministic.
var orderedAxes = []Axis{
	Axis_Genre, Axis_Mechanics, Axis_Theme, Axis_Mood, Axis_ArtStyle, Axis_Audience,
}

// axisRanges maps each axis to its region of the base vector. The region
// [boostRangeStart,boostRangeEnd) is reserved for hierarchical boosts and is
// not owned by any single axis.
var axisRanges = map[Axis]AxisRange{
	Axis_Genre:     {Start: 0, End: 30},
	Axis_Mechanics: {Start: 30, End: 60},
	Axis_Theme:     {Start: 60, End: 90},
	Axis_Mood:      {Start: 90, End: 120},
	Axis_ArtStyle:  {Start: 120, End: 140},
	Axis_Audience:  {Start: 150, End: 170},
}

const (
	boostRangeStart = 170
	boostRangeEnd   = 220
)

// AxisWeights carries the per-axis blending weights, split by usage side:
// indexing (game embeddings) and querying (search embeddings).
type AxisWeights struct {
	Index map[Axis]float64
	Query map[Axis]float64
}

// defaultAxisWeights returns the built-in axis weights.
func defaultAxisWeights() AxisWeights {
	return AxisWeights{
		Index: map[Axis]float64{
			Axis_Genre:     0.4,
			Axis_Mechanics: 0.3,
			Axis_Theme:     0.2,
			Axis_Mood:      0.1,
			Axis_ArtStyle:  0.05,
			Axis_Audience:  0.03,
		},
		Query: map[Axis]float64{
			Axis_Genre:     0.25,
			Axis_Mechanics: 0.20,
			Axis_Theme:     0.15,
			Axis_Mood:      0.15,
			Axis_ArtStyle:  0.10,
			Axis_Audience:  0.05,
		},
	}
}

// AspectWeights are secondary signal weights used when scoring keyword
// combinations and hierarchical boosts.
var defaultAspectWeights = map[string]float64{
	"platform_type":      0.15,
	"era":                0.12,
	"capability":         0.08,
	"player_interaction": 0.10,
	"scale":              0.08,
	"communication":      0.07,
	"viewpoint":          0.04,
	"immersion":          0.03,
	"interface":          0.02,
}

const (
	// CrossCategoryBoostMultiplier amplifies keywords when a text matches
	// several axes at once.
	CrossCategoryBoostMultiplier = 1.5
	// HierarchicalBoostMultiplier amplifies co-occurrence boost keywords.
	HierarchicalBoostMultiplier = 1.3
)

// Keyword is a taxonomy term with its signal weight and resolved vector position.
type Keyword struct {
	Term     string
	Weight   float64
	Position int
}

// maxKeywordsPerAxis caps how many matched keywords of each axis contribute
// to an embedding and to the indexing text.
var maxKeywordsPerAxis = map[Axis]int{
	Axis_Genre:     5,
	Axis_Mechanics: 5,
	Axis_Theme:     4,
	Axis_Mood:      4,
	Axis_ArtStyle:  3,
	Axis_Audience:  3,
}

// Taxonomy holds the keyword tables per axis, co-occurrence boost rules and
// the category mapping table keyed by lowercased canonical category values.
type Taxonomy struct {
	Keywords map[Axis][]Keyword
	Boosts   []BoostRule
	Weights  AxisWeights
	Aspects  map[string]float64
	Mappings map[string]CategoryMapping
}

// BoostRule emits a boost keyword when both trigger terms occur in a text.
type BoostRule struct {
	TermA string
	TermB string
	Boost Keyword
}

// taxonomyFile is the YAML shape of an external taxonomy overlay.
type taxonomyFile struct {
	Keywords map[string][]struct {
		Term   string  `yaml:"term"`
		Weight float64 `yaml:"weight"`
	} `yaml:"keywords"`
	Boosts []struct {
		TermA  string  `yaml:"term_a"`
		TermB  string  `yaml:"term_b"`
		Term   string  `yaml:"term"`
		Weight float64 `yaml:"weight"`
	} `yaml:"boosts"`
	IndexWeights map[string]float64 `yaml:"index_weights"`
	QueryWeights map[string]float64 `yaml:"query_weights"`
	Mappings     map[string]struct {
		Keywords map[string][]string `yaml:"keywords"`
		Aspects  map[string][]string `yaml:"aspects"`
	} `yaml:"mappings"`
}

// DefaultTaxonomy returns the compiled-in taxonomy.
func DefaultTaxonomy() Taxonomy {
	t := Taxonomy{
		Keywords: map[Axis][]Keyword{
			Axis_Genre: keywordList(
				"action", 1.0, "adventure", 0.95, "rpg", 1.0, "role-playing", 1.0,
				"strategy", 0.95, "simulation", 0.9, "puzzle", 0.9, "racing", 0.9,
				"sports", 0.9, "shooter", 1.0, "fighting", 0.9, "platformer", 0.85,
				"horror", 0.95, "survival", 0.9, "stealth", 0.85, "roguelike", 0.85,
				"metroidvania", 0.8, "sandbox", 0.8, "mmorpg", 0.8, "moba", 0.75,
				"card", 0.7, "rhythm", 0.7, "visual novel", 0.7, "battle royale", 0.75,
			),
			Axis_Mechanics: keywordList(
				"crafting", 0.9, "building", 0.85, "exploration", 0.95, "looting", 0.8,
				"leveling", 0.8, "open world", 0.95, "turn-based", 0.9, "real-time", 0.85,
				"co-op", 0.85, "multiplayer", 0.85, "single-player", 0.8, "pvp", 0.75,
				"base building", 0.8, "resource management", 0.8, "deck building", 0.75,
				"skill tree", 0.7, "permadeath", 0.7, "procedural", 0.75, "physics", 0.65,
				"parkour", 0.65, "driving", 0.7, "flying", 0.6, "fishing", 0.5,
			),
			Axis_Theme: keywordList(
				"fantasy", 1.0, "sci-fi", 1.0, "science fiction", 1.0, "medieval", 0.9,
				"space", 0.95, "zombie", 0.85, "war", 0.9, "cyberpunk", 0.9,
				"post-apocalyptic", 0.9, "western", 0.8, "pirate", 0.75, "mythology", 0.8,
				"steampunk", 0.75, "noir", 0.7, "historical", 0.8, "modern", 0.7,
				"dystopian", 0.8, "supernatural", 0.8, "mystery", 0.8, "crime", 0.75,
			),
			Axis_Mood: keywordList(
				"dark", 0.9, "relaxing", 0.85, "intense", 0.85, "atmospheric", 0.9,
				"scary", 0.9, "funny", 0.8, "emotional", 0.85, "challenging", 0.85,
				"cozy", 0.8, "epic", 0.8, "tactical", 0.8, "fast-paced", 0.8,
				"slow-paced", 0.65, "immersive", 0.85, "story-driven", 0.9,
				"competitive", 0.8, "casual", 0.7, "brutal", 0.7,
			),
			Axis_ArtStyle: keywordList(
				"pixel", 0.85, "retro", 0.8, "cartoon", 0.75, "realistic", 0.8,
				"anime", 0.8, "minimalist", 0.7, "hand-drawn", 0.75, "cel-shaded", 0.7,
				"low-poly", 0.65, "voxel", 0.65, "stylized", 0.7, "photorealistic", 0.75,
			),
			Axis_Audience: keywordList(
				"casual", 0.75, "hardcore", 0.75, "family", 0.7, "kids", 0.65,
				"competitive", 0.7, "mature", 0.7, "accessible", 0.6, "veteran", 0.6,
			),
		},
		Boosts: []BoostRule{
			{TermA: "action", TermB: "rpg", Boost: Keyword{Term: "character progression", Weight: 0.8}},
			{TermA: "horror", TermB: "survival", Boost: Keyword{Term: "resource scarcity", Weight: 0.8}},
			{TermA: "open world", TermB: "exploration", Boost: Keyword{Term: "freedom", Weight: 0.75}},
			{TermA: "strategy", TermB: "real-time", Boost: Keyword{Term: "micromanagement", Weight: 0.7}},
			{TermA: "shooter", TermB: "multiplayer", Boost: Keyword{Term: "arena combat", Weight: 0.7}},
			{TermA: "puzzle", TermB: "story-driven", Boost: Keyword{Term: "narrative puzzles", Weight: 0.65}},
			{TermA: "fantasy", TermB: "rpg", Boost: Keyword{Term: "epic quest", Weight: 0.75}},
			{TermA: "space", TermB: "simulation", Boost: Keyword{Term: "spaceflight", Weight: 0.7}},
		},
		Weights:  defaultAxisWeights(),
		Aspects:  defaultAspectWeights,
		Mappings: defaultCategoryMappings(),
	}
	t.assignPositions()
	return t
}

// LoadTaxonomy merges a YAML overlay file over the default taxonomy. An empty
// path returns the defaults unchanged.
func LoadTaxonomy(path string) (Taxonomy, error) {
	t := DefaultTaxonomy()
	if path == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read taxonomy file: %w", err)
	}

	var file taxonomyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy file: %w", err)
	}

	for axisName, entries := range file.Keywords {
		axis := Axis(axisName)
		if _, ok := axisRanges[axis]; !ok {
			return Taxonomy{}, fmt.Errorf("unknown taxonomy axis %q", axisName)
		}
		for _, e := range entries {
			t.upsertKeyword(axis, Keyword{Term: e.Term, Weight: e.Weight})
		}
	}
	for _, b := range file.Boosts {
		t.Boosts = append(t.Boosts, BoostRule{
			TermA: b.TermA,
			TermB: b.TermB,
			Boost: Keyword{Term: b.Term, Weight: b.Weight},
		})
	}
	for axisName, w := range file.IndexWeights {
		t.Weights.Index[Axis(axisName)] = w
	}
	for axisName, w := range file.QueryWeights {
		t.Weights.Query[Axis(axisName)] = w
	}
	for key, entry := range file.Mappings {
		mapping := CategoryMapping{
			Keywords: make(map[Axis][]string, len(entry.Keywords)),
			Aspects:  entry.Aspects,
		}
		for axisName, terms := range entry.Keywords {
			axis := Axis(axisName)
			if _, ok := axisRanges[axis]; !ok {
				return Taxonomy{}, fmt.Errorf("unknown taxonomy axis %q in mapping %q", axisName, key)
			}
			mapping.Keywords[axis] = terms
		}
		t.Mappings[strings.ToLower(key)] = mapping
	}

	t.assignPositions()
	return t, nil
}

// upsertKeyword replaces the keyword with the same term or appends it.
func (t *Taxonomy) upsertKeyword(axis Axis, kw Keyword) {
	for i, existing := range t.Keywords[axis] {
		if existing.Term == kw.Term {
			t.Keywords[axis][i].Weight = kw.Weight
			return
		}
	}
	t.Keywords[axis] = append(t.Keywords[axis], kw)
}

// assignPositions distributes every keyword over its axis range and every
// boost keyword over the boost range. Positions are deterministic: keywords
// are sorted by term and spread round-robin across the range.
func (t *Taxonomy) assignPositions() {
	for axis, kws := range t.Keywords {
		r := axisRanges[axis]
		sort.Slice(kws, func(i, j int) bool { return kws[i].Term < kws[j].Term })
		for i := range kws {
			kws[i].Position = r.Start + i%r.Size()
		}
	}
	sort.Slice(t.Boosts, func(i, j int) bool {
		return t.Boosts[i].Boost.Term < t.Boosts[j].Boost.Term
	})
	size := boostRangeEnd - boostRangeStart
	for i := range t.Boosts {
		t.Boosts[i].Boost.Position = boostRangeStart + i%size
	}
}

// keywordList builds a keyword slice from alternating term/weight pairs.
func keywordList(pairs ...any) []Keyword {
	kws := make([]Keyword, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		kws = append(kws, Keyword{
			Term:   pairs[i].(string),
			Weight: pairs[i+1].(float64),
		})
	}
	return kws
}
