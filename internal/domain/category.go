package domain

// CategoryKind identifies a taxonomy a raw user-supplied label belongs to.
type CategoryKind string

const (
	CategoryKind_Genre       CategoryKind = "genre"
	CategoryKind_Platform    CategoryKind = "platform"
	CategoryKind_GameMode    CategoryKind = "game_mode"
	CategoryKind_Perspective CategoryKind = "player_perspective"
	CategoryKind_Theme       CategoryKind = "theme"
)

// CategoryResolver normalizes raw user or LLM supplied category labels to
// canonical catalog values.
type CategoryResolver interface {
	// Resolve maps a raw label to its canonical form. The boolean reports
	// whether a canonical match was found; unresolvable labels return an
	// empty string and false.
	Resolve(kind CategoryKind, raw string) (string, bool)
	// ResolveAll resolves a list of labels, dropping unresolvable ones and
	// deduplicating while preserving order.
	ResolveAll(kind CategoryKind, raw []string) []string
	// PlatformAliases returns the known alternative names for a canonical platform.
	PlatformAliases(name string) []string
	// Canonical returns the full list of canonical values for a kind.
	Canonical(kind CategoryKind) []string
}
