package semantic

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
)

// fuzzyMatchThreshold is the minimum similarity for a fuzzy canonical match.
const fuzzyMatchThreshold = 0.6

// canonicalGenres are the genre names the catalog indexes under.
var canonicalGenres = []string{
	"Action", "Adventure", "Role-playing (RPG)", "Strategy", "Simulation",
	"Puzzle", "Racing", "Sport", "Shooter", "Fighting", "Platform",
	"Indie", "Arcade", "Music", "Tactical", "Turn-based strategy (TBS)",
	"Real Time Strategy (RTS)", "Hack and slash/Beat 'em up", "Point-and-click",
	"Visual Novel", "Card & Board Game", "MOBA", "Quiz/Trivia",
}

var genreAliases = map[string]string{
	"rpg":            "Role-playing (RPG)",
	"role playing":   "Role-playing (RPG)",
	"roleplaying":    "Role-playing (RPG)",
	"jrpg":           "Role-playing (RPG)",
	"sports":         "Sport",
	"fps":            "Shooter",
	"platformer":     "Platform",
	"rts":            "Real Time Strategy (RTS)",
	"tbs":            "Turn-based strategy (TBS)",
	"beat em up":     "Hack and slash/Beat 'em up",
	"hack and slash": "Hack and slash/Beat 'em up",
	"card game":      "Card & Board Game",
	"board game":     "Card & Board Game",
	"trivia":         "Quiz/Trivia",
}

// canonicalPlatforms pairs each catalog platform with its known aliases in
// priority order. Indexing text includes at most the first two aliases.
var canonicalPlatforms = []domain.Platform{
	{Name: "PC (Microsoft Windows)", Aliases: []string{"PC", "Windows", "Desktop"}},
	{Name: "PlayStation 5", Aliases: []string{"PS5", "PS 5"}},
	{Name: "PlayStation 4", Aliases: []string{"PS4", "PS 4"}},
	{Name: "Xbox Series X|S", Aliases: []string{"Xbox Series X", "Xbox Series S", "Series X"}},
	{Name: "Xbox One", Aliases: []string{"XB1", "Xbone"}},
	{Name: "Nintendo Switch", Aliases: []string{"Switch", "NSW"}},
	{Name: "Nintendo Switch 2", Aliases: []string{"Switch 2"}},
	{Name: "mac", Aliases: []string{"macOS", "OSX", "Apple"}},
	{Name: "Linux", Aliases: []string{"SteamOS"}},
	{Name: "iOS", Aliases: []string{"iPhone", "iPad"}},
	{Name: "Android", Aliases: []string{"Mobile"}},
	{Name: "Steam Deck", Aliases: []string{"Deck"}},
}

var canonicalGameModes = []string{
	"Single player", "Multiplayer", "Co-operative", "Split screen",
	"Massively Multiplayer Online (MMO)", "Battle Royale",
}

var gameModeAliases = map[string]string{
	"singleplayer":  "Single player",
	"single-player": "Single player",
	"solo":          "Single player",
	"coop":          "Co-operative",
	"co-op":         "Co-operative",
	"cooperative":   "Co-operative",
	"mmo":           "Massively Multiplayer Online (MMO)",
	"online":        "Multiplayer",
	"splitscreen":   "Split screen",
	"couch":         "Split screen",
}

var canonicalPerspectives = []string{
	"First person", "Third person", "Bird view / Isometric",
	"Side view", "Text", "Auditory", "Virtual Reality",
}

var perspectiveAliases = map[string]string{
	"fps":           "First person",
	"1st person":    "First person",
	"3rd person":    "Third person",
	"isometric":     "Bird view / Isometric",
	"top down":      "Bird view / Isometric",
	"top-down":      "Bird view / Isometric",
	"2d":            "Side view",
	"side scroller": "Side view",
	"vr":            "Virtual Reality",
}

var canonicalThemes = []string{
	"Fantasy", "Science fiction", "Horror", "Thriller", "Survival",
	"Historical", "Stealth", "Comedy", "Business", "Drama", "Mystery",
	"Educational", "Kids", "Open world", "Warfare", "Party", "4X",
	"Erotic", "Sandbox", "Romance", "Non-fiction",
}

var themeAliases = map[string]string{
	"sci-fi":    "Science fiction",
	"scifi":     "Science fiction",
	"war":       "Warfare",
	"military":  "Warfare",
	"openworld": "Open world",
	"scary":     "Horror",
}

// Resolver normalizes raw category labels against the canonical catalog
// vocabulary. It is pure and safe for concurrent use.
type Resolver struct {
	canonicals map[domain.CategoryKind][]string
	aliases    map[domain.CategoryKind]map[string]string
	platforms  map[string]domain.Platform
}

// NewResolver creates a Resolver loaded with the catalog vocabulary.
func NewResolver() *Resolver {
	r := &Resolver{
		canonicals: map[domain.CategoryKind][]string{
			domain.CategoryKind_Genre:       canonicalGenres,
			domain.CategoryKind_GameMode:    canonicalGameModes,
			domain.CategoryKind_Perspective: canonicalPerspectives,
			domain.CategoryKind_Theme:       canonicalThemes,
		},
		aliases: map[domain.CategoryKind]map[string]string{
			domain.CategoryKind_Genre:       genreAliases,
			domain.CategoryKind_GameMode:    gameModeAliases,
			domain.CategoryKind_Perspective: perspectiveAliases,
			domain.CategoryKind_Theme:       themeAliases,
		},
		platforms: make(map[string]domain.Platform, len(canonicalPlatforms)),
	}

	platformNames := make([]string, 0, len(canonicalPlatforms))
	platformAliases := make(map[string]string)
	for _, p := range canonicalPlatforms {
		platformNames = append(platformNames, p.Name)
		r.platforms[strings.ToLower(p.Name)] = p
		for _, alias := range p.Aliases {
			platformAliases[strings.ToLower(alias)] = p.Name
		}
	}
	r.canonicals[domain.CategoryKind_Platform] = platformNames
	r.aliases[domain.CategoryKind_Platform] = platformAliases

	return r
}

// Resolve maps a raw label to its canonical form. Resolution precedence:
// exact canonical match, alias hit, substring containment, separator-
// normalized equality (hyphens and spaces are interchangeable word
// boundaries), and finally fuzzy similarity above the threshold. Labels that
// match nothing are dropped.
func (r *Resolver) Resolve(kind domain.CategoryKind, raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}
	lowered := strings.ToLower(cleaned)

	for _, canonical := range r.canonicals[kind] {
		if strings.ToLower(canonical) == lowered {
			return canonical, true
		}
	}

	if canonical, ok := r.aliases[kind][lowered]; ok {
		return canonical, true
	}

	for _, canonical := range r.canonicals[kind] {
		cl := strings.ToLower(canonical)
		if strings.Contains(cl, lowered) || strings.Contains(lowered, cl) {
			return canonical, true
		}
	}

	normalized := normalizeSeparators(lowered)
	for _, canonical := range r.canonicals[kind] {
		if normalizeSeparators(strings.ToLower(canonical)) == normalized {
			return canonical, true
		}
	}

	bestScore := 0.0
	bestMatch := ""
	for _, canonical := range r.canonicals[kind] {
		score := similarity(lowered, strings.ToLower(canonical))
		if score > bestScore {
			bestScore = score
			bestMatch = canonical
		}
	}
	if bestScore >= fuzzyMatchThreshold {
		return bestMatch, true
	}

	return "", false
}

// normalizeSeparators makes hyphenated and spaced spellings compare equal.
func normalizeSeparators(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// ResolveAll resolves every label, dropping the unresolvable ones and
// deduplicating while preserving order.
func (r *Resolver) ResolveAll(kind domain.CategoryKind, raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, label := range raw {
		resolved, ok := r.Resolve(kind, label)
		if !ok {
			continue
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// PlatformAliases returns the known alternative names for a canonical platform.
func (r *Resolver) PlatformAliases(name string) []string {
	p, ok := r.platforms[strings.ToLower(name)]
	if !ok {
		return nil
	}
	return p.Aliases
}

// Canonical returns the full list of canonical values for a kind.
func (r *Resolver) Canonical(kind domain.CategoryKind) []string {
	return r.canonicals[kind]
}

// similarity scores two lowercased strings in [0,1]: 1 for equality, the
// length ratio when one contains the other, otherwise one minus the
// normalized Levenshtein distance.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter) / float64(longer)
	}

	dist := levenshtein(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

// levenshtein computes the edit distance between two strings using two
// rolling rows.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// InitCategoryResolver initializes the category resolver and registers it
// in the dependency container.
type InitCategoryResolver struct{}

// Initialize registers the Resolver as the domain.CategoryResolver implementation.
func (icr InitCategoryResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CategoryResolver](NewResolver())
	return ctx, nil
}
