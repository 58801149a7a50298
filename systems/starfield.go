package systems

import (
	"math"
	"math/rand"
)

// Star is a single point on the unit sphere. Angular position is
// fixed for the star's lifetime; only the twinkle phase evolves.
type Star struct {
	X, Y, Z      float32 // Unit sphere position
	BaseOpacity  float32
	TwinklePhase float32
	TwinkleSpeed float32
	Size         float32
}

// StarFieldParams configures a star field.
type StarFieldParams struct {
	EntityCount   int
	RotationSpeed float64
	TwinkleMin    float64
	TwinkleMax    float64
}

// StarFieldSystem holds a fixed population of twinkling stars on a
// sphere. The whole field rotates about the vertical axis at a very
// slow constant rate for parallax; individual stars never move on the
// sphere.
type StarFieldSystem struct {
	Stars    []Star
	Rotation float64
	params   StarFieldParams
}

// NewStarFieldSystem distributes stars uniformly on the unit sphere
// (uniform z and azimuth) from the given seed.
func NewStarFieldSystem(seed int64, p StarFieldParams) *StarFieldSystem {
	rng := rand.New(rand.NewSource(seed))
	s := &StarFieldSystem{
		Stars:  make([]Star, p.EntityCount),
		params: p,
	}
	spread := p.TwinkleMax - p.TwinkleMin
	for i := range s.Stars {
		z := rng.Float64()*2 - 1
		phi := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		s.Stars[i] = Star{
			X:            float32(r * math.Cos(phi)),
			Y:            float32(r * math.Sin(phi)),
			Z:            float32(z),
			BaseOpacity:  0.3 + rng.Float32()*0.7,
			TwinklePhase: rng.Float32() * 2 * math.Pi,
			TwinkleSpeed: float32(p.TwinkleMin + rng.Float64()*spread),
			Size:         0.6 + rng.Float32()*1.2,
		}
	}
	return s
}

// Update advances the field rotation one frame.
func (s *StarFieldSystem) Update(tick int32) {
	s.Rotation = float64(tick) * s.params.RotationSpeed
}

// Twinkle returns the displayed opacity of star i at the given tick:
// the base opacity modulated between 40% and 100% by an independent
// per-star sine.
func (s *StarFieldSystem) Twinkle(i int, tick int32) float32 {
	st := &s.Stars[i]
	mod := 0.7 + 0.3*math.Sin(float64(tick)*float64(st.TwinkleSpeed)+float64(st.TwinklePhase))
	return st.BaseOpacity * float32(mod)
}

// RotatedPosition returns star i's sphere position after the current
// field rotation about the Y axis.
func (s *StarFieldSystem) RotatedPosition(i int) (x, y, z float32) {
	st := &s.Stars[i]
	sin, cos := math.Sincos(s.Rotation)
	x = st.X*float32(cos) + st.Z*float32(sin)
	y = st.Y
	z = -st.X*float32(sin) + st.Z*float32(cos)
	return
}
