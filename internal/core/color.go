package core

import "fmt"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB is a 24-bit color, used for ambient backgrounds and palettes.
type RGB [3]uint8

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// paletteRGB approximates each palette color for nearest-color lookup.
var paletteRGB = []struct {
	c   Color
	rgb RGB
}{
	{ColorRed, RGB{170, 0, 0}},
	{ColorGreen, RGB{0, 170, 0}},
	{ColorYellow, RGB{170, 170, 0}},
	{ColorBlue, RGB{0, 0, 170}},
	{ColorMagenta, RGB{170, 0, 170}},
	{ColorCyan, RGB{0, 170, 170}},
	{ColorWhite, RGB{200, 200, 200}},
	{ColorBrightRed, RGB{255, 85, 85}},
	{ColorBrightGreen, RGB{85, 255, 85}},
	{ColorBrightYellow, RGB{255, 255, 85}},
	{ColorBrightBlue, RGB{85, 85, 255}},
	{ColorBrightMagenta, RGB{255, 85, 255}},
	{ColorBrightCyan, RGB{85, 255, 255}},
	{ColorBrightWhite, RGB{255, 255, 255}},
	{ColorOrange, RGB{255, 135, 0}},
	{ColorGray, RGB{138, 138, 138}},
}

// NearestColor maps an RGB value onto the closest palette color.
func NearestColor(c RGB) Color {
	best := ColorDefault
	bestDist := -1
	for _, p := range paletteRGB {
		dr := int(c[0]) - int(p.rgb[0])
		dg := int(c[1]) - int(p.rgb[1])
		db := int(c[2]) - int(p.rgb[2])
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = p.c
			bestDist = d
		}
	}
	return best
}

