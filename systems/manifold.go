package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/backdrop/components"
)

// maxForceFraction limits per-frame pointer displacement to a fraction
// of the force radius so the 1/distance force cannot blow up as the
// distance approaches zero.
const maxForceFraction = 0.05

// ManifoldParams configures a manifold particle field.
type ManifoldParams struct {
	EntityCount   int
	Depth         float64
	DriftSpeed    float64
	WobbleAmp     float64
	WobbleStride  float64
	ForceRadius   float64
	ForceStrength float64
}

// ManifoldSystem is a dense low-opacity particle volume. The entity
// population lives in an ark world, created once at construction and
// mutated in place every tick; particles leaving the bounds wrap to
// the opposite edge with their velocity preserved, they are never
// respawned.
type ManifoldSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position3, components.Velocity3, components.Sprite]
	filter *ecs.Filter3[components.Position3, components.Velocity3, components.Sprite]
	bounds Bounds
	params ManifoldParams
}

// NewManifoldSystem creates the particle population from the seed.
func NewManifoldSystem(bounds Bounds, seed int64, p ManifoldParams) *ManifoldSystem {
	world := ecs.NewWorld()
	s := &ManifoldSystem{
		world:  world,
		mapper: ecs.NewMap3[components.Position3, components.Velocity3, components.Sprite](world),
		filter: ecs.NewFilter3[components.Position3, components.Velocity3, components.Sprite](world),
		bounds: bounds,
		params: p,
	}
	s.spawn(seed)
	return s
}

func (s *ManifoldSystem) spawn(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	speed := float32(s.params.DriftSpeed)
	depth := float32(s.params.Depth)

	for i := 0; i < s.params.EntityCount; i++ {
		pos := components.Position3{
			X: rng.Float32() * s.bounds.Width,
			Y: rng.Float32() * s.bounds.Height,
			Z: rng.Float32() * depth,
		}
		heading := rng.Float64() * 2 * math.Pi
		vel := components.Velocity3{
			X: float32(math.Cos(heading)) * speed,
			Y: float32(math.Sin(heading)) * speed,
			Z: (rng.Float32() - 0.5) * speed * 0.5,
		}
		spr := components.Sprite{
			Opacity: 0.05 + rng.Float32()*0.2,
			Size:    0.8 + rng.Float32()*1.4,
			Index:   int32(i),
		}
		s.mapper.NewEntity(&pos, &vel, &spr)
	}
}

// Reset repositions the existing population with the original seed
// after a resize; the pool itself is not reallocated.
func (s *ManifoldSystem) Reset(bounds Bounds, seed int64) {
	s.bounds = bounds
	rng := rand.New(rand.NewSource(seed))
	depth := float32(s.params.Depth)

	query := s.filter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		pos.X = rng.Float32() * s.bounds.Width
		pos.Y = rng.Float32() * s.bounds.Height
		pos.Z = rng.Float32() * depth
	}
}

// Update advances every particle one frame: constant drift, shared
// vertical wobble, wrap-around at the edges and a clamped 1/distance
// push away from an active pointer.
func (s *ManifoldSystem) Update(tick int32, ptr Pointer) {
	if s.bounds.Empty() {
		return
	}

	t := float64(tick) * 0.01
	amp := float32(s.params.WobbleAmp)
	stride := s.params.WobbleStride
	radius := float32(s.params.ForceRadius)
	maxDisp := radius * maxForceFraction
	depth := float32(s.params.Depth)

	query := s.filter.Query()
	for query.Next() {
		pos, vel, spr := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y
		pos.Z += vel.Z
		spr.WobbleY = amp * float32(math.Sin(t+float64(spr.Index)*stride))

		if ptr.Active && radius > 0 {
			dx := pos.X - ptr.X
			dy := pos.Y - ptr.Y
			dist := float32(math.Hypot(float64(dx), float64(dy)))
			if dist < radius && dist > 0 {
				disp := float32(s.params.ForceStrength) / dist
				if disp > maxDisp {
					disp = maxDisp
				}
				pos.X += dx / dist * disp
				pos.Y += dy / dist * disp
			}
		}

		// Wrap-around preserves velocity; this scene never respawns
		pos.X = wrap(pos.X, s.bounds.Width)
		pos.Y = wrap(pos.Y, s.bounds.Height)
		if depth > 0 {
			pos.Z = wrap(pos.Z, depth)
		}
	}
}

// Count returns the population size.
func (s *ManifoldSystem) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Each calls fn for every particle, in stable storage order.
func (s *ManifoldSystem) Each(fn func(pos *components.Position3, vel *components.Velocity3, spr *components.Sprite)) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, spr := query.Get()
		fn(pos, vel, spr)
	}
}

// wrap folds v into [0, limit].
func wrap(v, limit float32) float32 {
	if v < 0 {
		return v + limit
	}
	if v > limit {
		return v - limit
	}
	return v
}
