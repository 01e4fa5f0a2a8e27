package turtle

import (
	"fmt"
	"math"
)

// RGB is a palette entry.
type RGB struct {
	R uint8 `toml:"r" json:"r"`
	G uint8 `toml:"g" json:"g"`
	B uint8 `toml:"b" json:"b"`
}

// PaletteSize is the number of pen color indices.
const PaletteSize = 16

// Palette maps pen color indices to RGB values. It is the single mapping
// shared by the interpreter core and every renderer.
var Palette = [PaletteSize]RGB{
	{0, 0, 0},       // 0 black
	{0, 0, 255},     // 1 blue
	{0, 255, 0},     // 2 green
	{0, 255, 255},   // 3 cyan
	{255, 0, 0},     // 4 red
	{255, 0, 255},   // 5 magenta
	{255, 255, 0},   // 6 yellow
	{255, 255, 255}, // 7 white
	{165, 42, 42},   // 8 brown
	{210, 180, 140}, // 9 tan
	{34, 139, 34},   // 10 forest
	{127, 255, 212}, // 11 aqua
	{250, 128, 114}, // 12 salmon
	{128, 0, 128},   // 13 purple
	{255, 165, 0},   // 14 orange
	{128, 128, 128}, // 15 grey
}

// Hex returns the #rrggbb form of a palette entry.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ValidColor reports whether n is an integral index inside the palette.
func ValidColor(n float64) bool {
	return n >= 0 && n < PaletteSize && n == math.Trunc(n)
}
