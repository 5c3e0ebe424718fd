package cli

// categoryGlyphs maps category icon identifiers to terminal glyphs. The
// table is fixed at compile time; an unknown identifier falls back to a
// neutral dot.
var categoryGlyphs = map[string]string{
	"utensils":        "🍽",
	"car":             "🚗",
	"shopping-bag":    "🛍",
	"film":            "🎬",
	"heart":           "❤",
	"book":            "📚",
	"home":            "🏠",
	"shirt":           "👕",
	"smartphone":      "📱",
	"more-horizontal": "⋯",
	"banknote":        "💵",
	"briefcase":       "💼",
	"trending-up":     "📈",
	"gift":            "🎁",
	"plus-circle":     "➕",
}

// CategoryGlyph resolves a category icon identifier to a display glyph.
func CategoryGlyph(icon string) string {
	if g, ok := categoryGlyphs[icon]; ok {
		return g
	}
	return "•"
}
