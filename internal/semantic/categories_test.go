package semantic

import (
	"testing"

	"github.com/cleitonmarx/symbiont-game-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver()

	tests := map[string]struct {
		kind          domain.CategoryKind
		raw           string
		wantCanonical string
		wantOK        bool
	}{
		"exact-match-case-insensitive": {
			kind:          domain.CategoryKind_Genre,
			raw:           "action",
			wantCanonical: "Action",
			wantOK:        true,
		},
		"alias-hit": {
			kind:          domain.CategoryKind_Genre,
			raw:           "RPG",
			wantCanonical: "Role-playing (RPG)",
			wantOK:        true,
		},
		"platform-alias": {
			kind:          domain.CategoryKind_Platform,
			raw:           "ps5",
			wantCanonical: "PlayStation 5",
			wantOK:        true,
		},
		"substring-containment": {
			kind:          domain.CategoryKind_Platform,
			raw:           "switch",
			wantCanonical: "Nintendo Switch",
			wantOK:        true,
		},
		"fuzzy-match-typo": {
			kind:          domain.CategoryKind_Genre,
			raw:           "strategyy",
			wantCanonical: "Strategy",
			wantOK:        true,
		},
		"mode-alias": {
			kind:          domain.CategoryKind_GameMode,
			raw:           "co-op",
			wantCanonical: "Co-operative",
			wantOK:        true,
		},
		"perspective-alias": {
			kind:          domain.CategoryKind_Perspective,
			raw:           "top-down",
			wantCanonical: "Bird view / Isometric",
			wantOK:        true,
		},
		"theme-alias": {
			kind:          domain.CategoryKind_Theme,
			raw:           "sci-fi",
			wantCanonical: "Science fiction",
			wantOK:        true,
		},
		"whitespace-trimmed": {
			kind:          domain.CategoryKind_Genre,
			raw:           "  Shooter  ",
			wantCanonical: "Shooter",
			wantOK:        true,
		},
		"hyphen-and-space-are-interchangeable": {
			kind:          domain.CategoryKind_GameMode,
			raw:           "split-screen",
			wantCanonical: "Split screen",
			wantOK:        true,
		},
		"unknown-is-dropped": {
			kind:          domain.CategoryKind_Genre,
			raw:           "zzgrandexgenre",
			wantCanonical: "",
			wantOK:        false,
		},
		"empty-input": {
			kind:          domain.CategoryKind_Genre,
			raw:           "   ",
			wantCanonical: "",
			wantOK:        false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			canonical, ok := resolver.Resolve(tt.kind, tt.raw)
			assert.Equal(t, tt.wantCanonical, canonical)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestResolver_ResolveAll_DeduplicatesPreservingOrder(t *testing.T) {
	resolver := NewResolver()

	got := resolver.ResolveAll(domain.CategoryKind_Genre, []string{"rpg", "Action", "role playing", "", "action"})
	assert.Equal(t, []string{"Role-playing (RPG)", "Action"}, got)
}

func TestResolver_ResolveAll_DropsUnresolvableTerms(t *testing.T) {
	resolver := NewResolver()

	assert.Empty(t, resolver.ResolveAll(domain.CategoryKind_Genre, []string{"zzzz quantum flarg"}))

	got := resolver.ResolveAll(domain.CategoryKind_Genre, []string{"zzzz quantum flarg", "rpg"})
	assert.Equal(t, []string{"Role-playing (RPG)"}, got)
}

func TestResolver_PlatformAliases(t *testing.T) {
	resolver := NewResolver()

	assert.Equal(t, []string{"PS5", "PS 5"}, resolver.PlatformAliases("PlayStation 5"))
	assert.Equal(t, []string{"PC", "Windows", "Desktop"}, resolver.PlatformAliases("pc (microsoft windows)"))
	assert.Nil(t, resolver.PlatformAliases("Dreamcast 2"))
}

func TestSimilarity(t *testing.T) {
	tests := map[string]struct {
		a    string
		b    string
		want float64
	}{
		"exact":             {a: "action", b: "action", want: 1.0},
		"substring":         {a: "strat", b: "strategy", want: 5.0 / 8.0},
		"empty":             {a: "", b: "action", want: 0},
		"disjoint-is-small": {a: "puzzle", b: "racing", want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := similarity(tt.a, tt.b)
			if name == "disjoint-is-small" {
				assert.Less(t, got, fuzzyMatchThreshold)
				return
			}
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("same", "same"))
	assert.Equal(t, 4, levenshtein("", "abcd"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 1, levenshtein("shooter", "shooters"))
}
