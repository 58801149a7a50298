package scene

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
)

// pendulumDT is the integration step per frame. Coarse, but with
// per-step damping the motion stays bounded.
const pendulumDT = 1.0

// PendulumScene is the chaotic double-pendulum display with a fading
// trail and a periodically revealed cycling label.
type PendulumScene struct {
	state  systems.PendulumState
	params systems.PendulumParams
	trail  *systems.Trail
	reveal *systems.RevealTimer
	rend   *renderer.PendulumRenderer
	cfg    config.PendulumConfig
}

// NewPendulumScene returns a builder for the pendulum scene.
func NewPendulumScene(cfg config.PendulumConfig) Builder {
	return func(b systems.Bounds, seed int64) Scene {
		rng := rand.New(rand.NewSource(seed))
		s := &PendulumScene{
			params: systems.PendulumParams{
				Gravity: cfg.Gravity,
				Damping: cfg.Damping,
				L1:      cfg.RodLength1,
				L2:      cfg.RodLength2,
				M1:      cfg.Mass1,
				M2:      cfg.Mass2,
			},
			// Both arms horizontal plus a seed-dependent nudge; the
			// nudge is what makes two page loads diverge.
			state: systems.PendulumState{
				Theta1: math.Pi/2 + (rng.Float64()-0.5)*0.2,
				Theta2: math.Pi/2 + (rng.Float64()-0.5)*0.2,
			},
			trail: systems.NewTrail(cfg.TrailLength, float32(cfg.TrailDecay)),
			reveal: systems.NewRevealTimer(cfg.RevealLabels,
				time.Duration(cfg.RevealInterval*float64(time.Second)),
				time.Duration(cfg.RevealDuration*float64(time.Second)), nil),
			rend: renderer.NewPendulumRenderer(b.Width, b.Height),
			cfg:  cfg,
		}
		return s
	}
}

// Update advances the integrator one step and captures the second
// bob's position into the trail. The reveal timer ticks on wall time,
// independent of the physics.
func (s *PendulumScene) Update(tick int32, _ systems.Pointer) {
	s.state = systems.StepPendulum(s.state, pendulumDT, s.params)

	px, py := s.rend.Pivot()
	_, _, x2, y2 := systems.BobPositions(s.state, s.params)
	s.trail.Push(px+float32(x2), py+float32(y2))

	s.reveal.Tick()
}

// Draw renders the pendulum.
func (s *PendulumScene) Draw(tick int32, colors map[string]color.RGBA) {
	s.rend.Draw(s.state, s.params, s.trail, s.reveal.Current(), colors)
}

// Resize recenters the pivot; the trail restarts since its points are
// in surface coordinates.
func (s *PendulumScene) Resize(b systems.Bounds) {
	s.rend.Resize(b.Width, b.Height)
	s.trail = systems.NewTrail(s.cfg.TrailLength, float32(s.cfg.TrailDecay))
}

// Unload releases nothing; the pendulum holds no GPU state.
func (s *PendulumScene) Unload() {}
