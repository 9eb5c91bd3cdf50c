package schema

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"hotpink": "#ff69b4",
	"tomato":  "#ff6347",
	"gold":    "#ffd700",
	"purple":  "#800080",
}

// Palette is the list of colors the control panel cycles through.
var Palette = []string{"#ff6347", "hotpink", "orange", "gold", "cyan", "purple", "white"}

// ParseColor accepts a #rrggbb hex string or one of the named colors.
func ParseColor(value string) (colorful.Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if hex, ok := namedColors[value]; ok {
		value = hex
	}
	color, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return color, nil
}

// MustParseColor is ParseColor for constants.
func MustParseColor(value string) colorful.Color {
	color, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return color
}

// NextColor returns the palette entry after current, wrapping around.
// Colors outside the palette restart at the first entry.
func NextColor(current string) string {
	for i, color := range Palette {
		if strings.EqualFold(color, current) {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
