package systems

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseField maps a position and time to a flow angle using 3D simplex
// noise. A field constructed with the same seed returns identical
// angles for identical inputs, which keeps particle paths reproducible.
type NoiseField struct {
	noise      opensimplex.Noise
	fieldScale float64
	timeScale  float64
}

// NewNoiseField creates a noise field with the given seed and scales.
func NewNoiseField(seed int64, fieldScale, timeScale float64) *NoiseField {
	return &NoiseField{
		noise:      opensimplex.New(seed),
		fieldScale: fieldScale,
		timeScale:  timeScale,
	}
}

// AngleAt returns the flow angle in radians at (x, y) and time t.
// Noise output in [-1, 1] is scaled by 2π, so the full circle is
// covered twice and neighbouring samples still vary smoothly.
func (f *NoiseField) AngleAt(x, y, t float64) float64 {
	n := f.noise.Eval3(x*f.fieldScale, y*f.fieldScale, t*f.timeScale)
	return n * 2 * math.Pi
}

// Sample returns the unit flow vector at (x, y) and time t.
func (f *NoiseField) Sample(x, y, t float64) (float64, float64) {
	a := f.AngleAt(x, y, t)
	return math.Cos(a), math.Sin(a)
}
