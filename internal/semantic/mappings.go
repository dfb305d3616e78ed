package semantic

import "strings"

// mappedKeywordWeight is the weight of a mapped term that has no taxonomy
// entry of its own.
const mappedKeywordWeight = 0.7

// minFuzzyMappingKeyLen guards the fuzzy key fallback against very short
// inputs that would match almost anything.
const minFuzzyMappingKeyLen = 3

// orderedAspects fixes the processing order of the secondary aspect lists so
// derived keyword slices stay deterministic.
var orderedAspects = []string{
	"platform_type", "era", "capability", "player_interaction", "scale",
	"communication", "viewpoint", "immersion", "interface",
}

// CategoryMapping expands one canonical category value into related terms:
// primary keywords per taxonomy axis plus secondary aspect terms that feed
// the boost region.
type CategoryMapping struct {
	Keywords map[Axis][]string
	Aspects  map[string][]string
}

// IsZero reports whether the mapping carries no terms at all.
func (m CategoryMapping) IsZero() bool {
	return len(m.Keywords) == 0 && len(m.Aspects) == 0
}

// mergeMappings unions two mappings, deduplicating terms per axis and aspect
// while preserving first-seen order.
func mergeMappings(a, b CategoryMapping) CategoryMapping {
	merged := CategoryMapping{
		Keywords: make(map[Axis][]string),
		Aspects:  make(map[string][]string),
	}
	for _, src := range []CategoryMapping{a, b} {
		for axis, terms := range src.Keywords {
			merged.Keywords[axis] = appendMissing(merged.Keywords[axis], terms)
		}
		for aspect, terms := range src.Aspects {
			merged.Aspects[aspect] = appendMissing(merged.Aspects[aspect], terms)
		}
	}
	return merged
}

func appendMissing(dst, terms []string) []string {
	for _, term := range terms {
		found := false
		for _, existing := range dst {
			if existing == term {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, term)
		}
	}
	return dst
}

// defaultCategoryMappings returns the compiled-in mapping table. Keys are
// lowercased canonical category values; genre keys deliberately contribute no
// genre-axis terms so literal matching stays authoritative on its own axis.
func defaultCategoryMappings() map[string]CategoryMapping {
	return map[string]CategoryMapping{
		"action": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"real-time"},
				Axis_Mood:      {"intense", "fast-paced"},
			},
			Aspects: map[string][]string{
				"player_interaction": {"reflex-driven"},
				"scale":              {"arena"},
			},
		},
		"adventure": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"exploration"},
				Axis_Theme:     {"mystery"},
				Axis_Mood:      {"story-driven", "atmospheric"},
			},
			Aspects: map[string][]string{
				"immersion": {"narrative"},
				"scale":     {"journey"},
			},
		},
		"role-playing (rpg)": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"leveling", "skill tree", "looting"},
				Axis_Theme:     {"fantasy"},
				Axis_Mood:      {"story-driven", "immersive"},
			},
			Aspects: map[string][]string{
				"player_interaction": {"party-based"},
				"scale":              {"epic campaign"},
			},
		},
		"rpg": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"leveling", "skill tree", "looting"},
				Axis_Theme:     {"fantasy"},
				Axis_Mood:      {"story-driven", "immersive"},
			},
			Aspects: map[string][]string{
				"player_interaction": {"party-based"},
				"scale":              {"epic campaign"},
			},
		},
		"shooter": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"pvp"},
				Axis_Theme:     {"war"},
				Axis_Mood:      {"intense", "fast-paced"},
			},
			Aspects: map[string][]string{
				"viewpoint":     {"aim down sights"},
				"communication": {"squad callouts"},
			},
		},
		"strategy": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"resource management", "turn-based"},
				Axis_Mood:      {"tactical"},
			},
			Aspects: map[string][]string{
				"scale":     {"grand scale"},
				"interface": {"command interface"},
			},
		},
		"simulation": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"building", "resource management"},
				Axis_Mood:      {"relaxing"},
			},
			Aspects: map[string][]string{
				"capability": {"systems depth"},
				"interface":  {"management panels"},
			},
		},
		"racing": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"driving"},
				Axis_Mood:      {"fast-paced", "competitive"},
			},
			Aspects: map[string][]string{
				"capability": {"wheel support"},
				"viewpoint":  {"cockpit view"},
			},
		},
		"horror": {
			Keywords: map[Axis][]string{
				Axis_Theme: {"supernatural"},
				Axis_Mood:  {"dark", "scary", "atmospheric"},
			},
			Aspects: map[string][]string{
				"immersion": {"creeping dread"},
			},
		},
		"puzzle": {
			Keywords: map[Axis][]string{
				Axis_Mood: {"challenging", "relaxing"},
			},
			Aspects: map[string][]string{
				"scale":     {"bite-sized"},
				"interface": {"minimal controls"},
			},
		},
		"pc (microsoft windows)": {
			Aspects: map[string][]string{
				"platform_type": {"desktop"},
				"capability":    {"mod support", "keyboard and mouse"},
			},
		},
		"playstation 5": {
			Aspects: map[string][]string{
				"platform_type": {"console"},
				"era":           {"current-gen"},
				"capability":    {"controller", "4k"},
			},
		},
		"xbox series x|s": {
			Aspects: map[string][]string{
				"platform_type": {"console"},
				"era":           {"current-gen"},
				"capability":    {"controller", "4k"},
			},
		},
		"nintendo switch": {
			Keywords: map[Axis][]string{
				Axis_Audience: {"family"},
			},
			Aspects: map[string][]string{
				"platform_type": {"hybrid handheld"},
				"capability":    {"portable play"},
			},
		},
		"steam deck": {
			Aspects: map[string][]string{
				"platform_type": {"handheld"},
				"capability":    {"portable play"},
			},
		},
		"single player": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"single-player"},
			},
			Aspects: map[string][]string{
				"player_interaction": {"solo"},
				"communication":      {"offline"},
			},
		},
		"multiplayer": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"pvp"},
			},
			Aspects: map[string][]string{
				"player_interaction": {"social play"},
				"communication":      {"voice chat"},
				"scale":              {"online lobbies"},
			},
		},
		"co-operative": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"co-op"},
			},
			Aspects: map[string][]string{
				"player_interaction": {"team play"},
				"communication":      {"voice chat"},
			},
		},
		"split screen": {
			Keywords: map[Axis][]string{
				Axis_Mechanics: {"co-op"},
			},
			Aspects: map[string][]string{
				"platform_type":      {"couch"},
				"player_interaction": {"local pairs"},
			},
		},
		"massively multiplayer online (mmo)": {
			Keywords: map[Axis][]string{
				Axis_Genre: {"mmorpg"},
			},
			Aspects: map[string][]string{
				"scale":         {"persistent world"},
				"communication": {"guild chat"},
			},
		},
		"first person": {
			Keywords: map[Axis][]string{
				Axis_Mood: {"immersive"},
			},
			Aspects: map[string][]string{
				"viewpoint": {"first-person"},
				"immersion": {"embodied"},
			},
		},
		"third person": {
			Aspects: map[string][]string{
				"viewpoint": {"third-person"},
				"immersion": {"cinematic"},
			},
		},
		"bird view / isometric": {
			Aspects: map[string][]string{
				"viewpoint": {"top-down"},
				"interface": {"cursor-driven"},
			},
		},
		"virtual reality": {
			Keywords: map[Axis][]string{
				Axis_Mood: {"immersive"},
			},
			Aspects: map[string][]string{
				"platform_type": {"vr headset"},
				"immersion":     {"presence"},
				"interface":     {"motion controls"},
			},
		},
	}
}

// MappingFor resolves the category mapping for a text. An exact whole-text
// key wins. Single values then fall back to the best fuzzy key at the match
// threshold; multi-word texts merge the mappings of every token and adjacent
// token pair instead, so a combination never collapses onto one of its parts.
func (s *KeywordStore) MappingFor(text string) CategoryMapping {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return CategoryMapping{}
	}
	if m, ok := s.taxonomy.Mappings[lowered]; ok {
		return m
	}
	if !strings.ContainsAny(lowered, " \t") {
		if s.isTaxonomyTerm(lowered) {
			return CategoryMapping{}
		}
		if m, ok := s.lookupMapping(lowered); ok {
			return m
		}
		return CategoryMapping{}
	}

	tokens := mappingTokens(lowered)
	merged := CategoryMapping{}
	for _, token := range tokens {
		// A token that is a taxonomy term in its own right must not drift
		// onto a near-spelled mapping key.
		if s.isTaxonomyTerm(token) {
			if m, ok := s.taxonomy.Mappings[token]; ok {
				merged = mergeMappings(merged, m)
			}
			continue
		}
		if m, ok := s.lookupMapping(token); ok {
			merged = mergeMappings(merged, m)
		}
	}
	for i := 0; i+1 < len(tokens); i++ {
		if m, ok := s.taxonomy.Mappings[tokens[i]+" "+tokens[i+1]]; ok {
			merged = mergeMappings(merged, m)
		}
	}
	return merged
}

// lookupMapping finds the mapping for a single value: exact key first, then
// the best fuzzy key at or above the match threshold.
func (s *KeywordStore) lookupMapping(value string) (CategoryMapping, bool) {
	if m, ok := s.taxonomy.Mappings[value]; ok {
		return m, true
	}
	if len(value) < minFuzzyMappingKeyLen {
		return CategoryMapping{}, false
	}

	bestScore := 0.0
	bestKey := ""
	for key := range s.taxonomy.Mappings {
		score := similarity(value, key)
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}
	if bestScore >= fuzzyMatchThreshold {
		return s.taxonomy.Mappings[bestKey], true
	}
	return CategoryMapping{}, false
}

// AspectKeywords derives boost-region keywords from the text's category
// mappings, weighted by the taxonomy aspect weights.
func (s *KeywordStore) AspectKeywords(text string) []Keyword {
	mapping := s.MappingFor(text)
	if mapping.IsZero() {
		return nil
	}

	size := boostRangeEnd - boostRangeStart
	var out []Keyword
	for _, aspect := range orderedAspects {
		weight, ok := s.taxonomy.Aspects[aspect]
		if !ok {
			continue
		}
		for _, term := range mapping.Aspects[aspect] {
			out = append(out, Keyword{
				Term:     term,
				Weight:   weight,
				Position: boostRangeStart + hashPosition(term, size),
			})
		}
	}
	return out
}

// mappingTokens splits a lowered text into lookup tokens, trimming the
// punctuation that indexing texts carry around attribute values.
func mappingTokens(lowered string) []string {
	fields := strings.Fields(lowered)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		token := strings.Trim(f, ".,:;()|/")
		if len(token) < 2 {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
