package systems

import "math"

// CursorGridParams configures the full-viewport curved-grid overlay.
type CursorGridParams struct {
	Spacing            float64
	SampleStep         float64
	IntensityIncrement float64
	BendRadius         float64
	BendStrength       float64
}

// CursorGridSystem holds the grid overlay state. Intensity ramps from
// 0 toward 1 by a fixed per-frame increment and never decreases, so
// the overlay warms up over the first several hundred frames after
// mount and then holds steady.
type CursorGridSystem struct {
	Intensity float32
	params    CursorGridParams
	bounds    Bounds
}

// NewCursorGridSystem creates the grid state for the given bounds.
func NewCursorGridSystem(bounds Bounds, p CursorGridParams) *CursorGridSystem {
	return &CursorGridSystem{params: p, bounds: bounds}
}

// Resize updates the covered area. The intensity ratchet survives
// resizes.
func (s *CursorGridSystem) Resize(bounds Bounds) {
	s.bounds = bounds
}

// Update advances the intensity ratchet one frame.
func (s *CursorGridSystem) Update() {
	s.Intensity += float32(s.params.IntensityIncrement)
	if s.Intensity > 1 {
		s.Intensity = 1
	}
}

// Params returns the configured parameters.
func (s *CursorGridSystem) Params() CursorGridParams {
	return s.params
}

// Bounds returns the covered area.
func (s *CursorGridSystem) Bounds() Bounds {
	return s.bounds
}

// Displace bends the sample point (x, y) toward an active pointer.
// The displacement falls off linearly from BendStrength·Intensity at
// the pointer to zero at BendRadius; an inactive pointer bends nothing.
func (s *CursorGridSystem) Displace(x, y float32, ptr Pointer) (float32, float32) {
	if !ptr.Active || s.params.BendRadius <= 0 {
		return x, y
	}
	dx := ptr.X - x
	dy := ptr.Y - y
	dist := float32(math.Hypot(float64(dx), float64(dy)))
	if dist >= float32(s.params.BendRadius) || dist == 0 {
		return x, y
	}
	falloff := 1 - dist/float32(s.params.BendRadius)
	disp := float32(s.params.BendStrength) * falloff * s.Intensity
	return x + dx/dist*disp, y + dy/dist*disp
}
