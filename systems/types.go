// Package systems implements the per-frame simulation state of the
// ambient scenes: noise-driven flow particles, the double pendulum,
// the manifold particle field, the star field and the cursor grid.
// Nothing in this package touches the rendering backend.
package systems

// Bounds is the simulated area in surface coordinates.
type Bounds struct {
	Width  float32
	Height float32
}

// Empty reports whether the bounds enclose no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Pointer is the latest pointer sample in surface coordinates.
// Active is false when the pointer has left the area or never entered;
// consumers must then apply no force at all rather than a force toward
// the origin.
type Pointer struct {
	X, Y   float32
	Active bool
}
