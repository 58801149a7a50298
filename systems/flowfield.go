package systems

import (
	"math"
	"math/rand"
)

// FlowParticle is a single streak in the flow field. PrevX/PrevY hold
// the position before the last advance so the renderer can draw the
// streak segment without keeping a trail history.
type FlowParticle struct {
	X, Y    float32
	PrevX   float32
	PrevY   float32
	Speed   float32
	Age     int32
	MaxAge  int32
	Opacity float32
	Size    float32
}

// FlowFieldSystem advances a fixed pool of flow particles along a
// noise field. The pool is allocated once; expired or out-of-bounds
// particles are respawned in place, never removed, so the population
// size is constant for the system's lifetime.
type FlowFieldSystem struct {
	Particles []FlowParticle
	field     *NoiseField
	rng       *rand.Rand
	bounds    Bounds

	speed             float32
	minAge, maxAge    int32
	influenceRadius   float32
	influenceStrength float32
}

// FlowParams configures a flow field system.
type FlowParams struct {
	EntityCount       int
	FieldScale        float64
	TimeScale         float64
	Speed             float64
	MinAge            int
	MaxAge            int
	InfluenceRadius   float64
	InfluenceStrength float64
}

// NewFlowFieldSystem creates the particle pool, seeding every particle
// from the given seed so two systems with equal seeds start identical.
func NewFlowFieldSystem(bounds Bounds, seed int64, p FlowParams) *FlowFieldSystem {
	s := &FlowFieldSystem{
		Particles:         make([]FlowParticle, p.EntityCount),
		field:             NewNoiseField(seed, p.FieldScale, p.TimeScale),
		rng:               rand.New(rand.NewSource(seed)),
		bounds:            bounds,
		speed:             float32(p.Speed),
		minAge:            int32(p.MinAge),
		maxAge:            int32(p.MaxAge),
		influenceRadius:   float32(p.InfluenceRadius),
		influenceStrength: float32(p.InfluenceStrength),
	}
	for i := range s.Particles {
		s.respawn(&s.Particles[i])
	}
	return s
}

// Reset repositions every particle using the original seed sequence
// restarted, for reproducible reinitialization after a resize.
func (s *FlowFieldSystem) Reset(bounds Bounds, seed int64) {
	s.bounds = bounds
	s.rng = rand.New(rand.NewSource(seed))
	for i := range s.Particles {
		s.respawn(&s.Particles[i])
	}
}

func (s *FlowFieldSystem) respawn(p *FlowParticle) {
	p.X = s.rng.Float32() * s.bounds.Width
	p.Y = s.rng.Float32() * s.bounds.Height
	p.PrevX = p.X
	p.PrevY = p.Y
	p.Speed = s.speed * (0.6 + s.rng.Float32()*0.8)
	p.Age = 0
	p.MaxAge = s.minAge
	if s.maxAge > s.minAge {
		p.MaxAge += s.rng.Int31n(s.maxAge - s.minAge + 1)
	}
	p.Opacity = 0.15 + s.rng.Float32()*0.25
	p.Size = 0.6 + s.rng.Float32()*0.6
}

// Update advances all particles one frame. When the pointer is active
// and within the influence radius, the sampled noise angle is blended
// linearly toward the bearing to the pointer so steering stays
// continuous across the radius boundary.
func (s *FlowFieldSystem) Update(tick int32, ptr Pointer) {
	if s.bounds.Empty() || len(s.Particles) == 0 {
		return
	}

	for i := range s.Particles {
		p := &s.Particles[i]

		p.Age++
		if p.Age > p.MaxAge {
			s.respawn(p)
			continue
		}

		angle := s.field.AngleAt(float64(p.X), float64(p.Y), float64(tick))

		if ptr.Active && s.influenceRadius > 0 {
			dx := ptr.X - p.X
			dy := ptr.Y - p.Y
			dist := float32(math.Hypot(float64(dx), float64(dy)))
			if dist < s.influenceRadius {
				toPointer := math.Atan2(float64(dy), float64(dx))
				w := float64((1 - dist/s.influenceRadius) * s.influenceStrength)
				angle = blendAngles(angle, toPointer, w)
			}
		}

		p.PrevX = p.X
		p.PrevY = p.Y
		p.X += p.Speed * float32(math.Cos(angle))
		p.Y += p.Speed * float32(math.Sin(angle))

		if p.X < 0 || p.X > s.bounds.Width || p.Y < 0 || p.Y > s.bounds.Height {
			s.respawn(p)
		}
	}
}

// Count returns the pool size.
func (s *FlowFieldSystem) Count() int {
	return len(s.Particles)
}

// blendAngles interpolates from a toward b by w along the shorter arc.
func blendAngles(a, b, w float64) float64 {
	diff := math.Mod(b-a+3*math.Pi, 2*math.Pi) - math.Pi
	return a + diff*w
}
