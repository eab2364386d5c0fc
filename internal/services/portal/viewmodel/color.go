package viewmodel

import "github.com/louisbranch/heritage.archive/internal/platform/icons"

// ColorToken is a theme-neutral color name used by badges and chips.
type ColorToken string

const (
	ColorGray   ColorToken = "gray"
	ColorBlue   ColorToken = "blue"
	ColorGreen  ColorToken = "green"
	ColorRed    ColorToken = "red"
	ColorYellow ColorToken = "yellow"
	ColorCyan   ColorToken = "cyan"
	ColorDark   ColorToken = "dark"
)

// FallbackColor is used whenever a status has no table entry.
const FallbackColor = ColorGray

var cssVariants = map[ColorToken]string{
	ColorGray:   "secondary",
	ColorBlue:   "primary",
	ColorGreen:  "success",
	ColorRed:    "danger",
	ColorYellow: "warning",
	ColorCyan:   "info",
	ColorDark:   "dark",
}

// CSSVariant returns the Bootstrap contextual class suffix for the color
// (for example "danger" for red). Unknown tokens map to "secondary".
func (c ColorToken) CSSVariant() string {
	if variant, ok := cssVariants[c]; ok {
		return variant
	}
	return cssVariants[FallbackColor]
}

// Valid reports whether c is one of the known tokens.
func (c ColorToken) Valid() bool {
	_, ok := cssVariants[c]
	return ok
}

var palette = []ColorToken{
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorYellow,
	ColorCyan,
	ColorDark,
}

var iconPalette = icons.PlaceholderNames()

// Palette returns the ordered color set used for placeholder art.
func Palette() []ColorToken {
	return append([]ColorToken(nil), palette...)
}

// IconPalette returns the icon names used for untitled content placeholders.
func IconPalette() []string {
	return append([]string(nil), iconPalette...)
}
