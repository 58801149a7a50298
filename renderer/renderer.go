// Package renderer rasterizes systems state with raylib.
package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// toRL converts a resolved theme color to a raylib color with the
// given alpha.
func toRL(c color.RGBA, alpha float32) rl.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

// sqrt32 is a float32 square root shorthand for the hot paths.
func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
