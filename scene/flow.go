package scene

import (
	"image/color"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
)

// FlowScene is the noise-driven flow field of drifting streaks.
type FlowScene struct {
	sys  *systems.FlowFieldSystem
	rend *renderer.FlowRenderer
	seed int64
}

// NewFlowScene returns a builder for the flow-field scene.
func NewFlowScene(cfg config.FlowConfig) Builder {
	return func(b systems.Bounds, seed int64) Scene {
		return &FlowScene{
			sys: systems.NewFlowFieldSystem(b, seed, systems.FlowParams{
				EntityCount:       cfg.EntityCount,
				FieldScale:        cfg.FieldScale,
				TimeScale:         cfg.TimeScale,
				Speed:             cfg.Speed,
				MinAge:            cfg.MinAge,
				MaxAge:            cfg.MaxAge,
				InfluenceRadius:   cfg.InfluenceRadius,
				InfluenceStrength: cfg.InfluenceStrength,
			}),
			rend: renderer.NewFlowRenderer(),
			seed: seed,
		}
	}
}

// Update advances the particle pool.
func (s *FlowScene) Update(tick int32, ptr systems.Pointer) {
	s.sys.Update(tick, ptr)
}

// Draw renders the streaks.
func (s *FlowScene) Draw(tick int32, colors map[string]color.RGBA) {
	s.rend.Draw(s.sys.Particles, tick, colors)
}

// Resize repositions the pool in the new bounds with the mount seed,
// keeping the pool size and the visual character.
func (s *FlowScene) Resize(b systems.Bounds) {
	s.sys.Reset(b, s.seed)
}

// Unload releases nothing; particles are CPU state.
func (s *FlowScene) Unload() {}
