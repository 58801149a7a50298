// Package components defines the ECS components of the manifold
// particle pool.
package components

// Position3 is a particle position inside the scene volume. X and Y
// are surface coordinates; Z is depth used for projection.
type Position3 struct {
	X, Y, Z float32
}

// Velocity3 is a constant per-particle drift, units per frame.
type Velocity3 struct {
	X, Y, Z float32
}

// Sprite holds the per-particle render attributes. WobbleY is the
// shared sinusoidal vertical offset recomputed every tick; Index fixes
// the particle's phase in that wobble.
type Sprite struct {
	Opacity float32
	Size    float32
	Index   int32
	WobbleY float32
}
