package scene

import (
	"image/color"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
)

// StarScene is the twinkling star field with slow parallax rotation.
type StarScene struct {
	sys  *systems.StarFieldSystem
	rend *renderer.StarRenderer
	frac float32
}

// NewStarScene returns a builder for the star-field scene.
func NewStarScene(cfg config.StarsConfig) Builder {
	return func(b systems.Bounds, seed int64) Scene {
		return &StarScene{
			sys: systems.NewStarFieldSystem(seed, systems.StarFieldParams{
				EntityCount:   cfg.EntityCount,
				RotationSpeed: cfg.RotationSpeed,
				TwinkleMin:    cfg.TwinkleMin,
				TwinkleMax:    cfg.TwinkleMax,
			}),
			rend: renderer.NewStarRenderer(b.Width, b.Height, float32(cfg.Radius)),
			frac: float32(cfg.Radius),
		}
	}
}

// Update advances the field rotation. Stars ignore the pointer.
func (s *StarScene) Update(tick int32, _ systems.Pointer) {
	s.sys.Update(tick)
}

// Draw renders the stars.
func (s *StarScene) Draw(tick int32, colors map[string]color.RGBA) {
	s.rend.Draw(s.sys, tick, colors)
}

// Resize recenters the sphere; star positions on the sphere are
// untouched.
func (s *StarScene) Resize(b systems.Bounds) {
	s.rend.Resize(b.Width, b.Height, s.frac)
}

// Unload releases nothing.
func (s *StarScene) Unload() {}
