package scene

import (
	"image/color"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
)

// ManifoldScene is the dense low-opacity particle field with geodesic
// lines bending toward the pointer.
type ManifoldScene struct {
	sys  *systems.ManifoldSystem
	rend *renderer.ManifoldRenderer
	ptr  systems.Pointer
	seed int64
}

// NewManifoldScene returns a builder for the manifold scene.
func NewManifoldScene(cfg config.ManifoldConfig) Builder {
	return func(b systems.Bounds, seed int64) Scene {
		return &ManifoldScene{
			sys: systems.NewManifoldSystem(b, seed, systems.ManifoldParams{
				EntityCount:   cfg.EntityCount,
				Depth:         cfg.Depth,
				DriftSpeed:    cfg.DriftSpeed,
				WobbleAmp:     cfg.WobbleAmp,
				WobbleStride:  cfg.WobbleStride,
				ForceRadius:   cfg.ForceRadius,
				ForceStrength: cfg.ForceStrength,
			}),
			rend: renderer.NewManifoldRenderer(b.Width, b.Height, float32(cfg.Depth),
				cfg.LineCount, cfg.LineSamples,
				float32(cfg.BendRadius), float32(cfg.BendStrength)),
			seed: seed,
		}
	}
}

// Update advances the particle volume; the pointer sample is kept for
// the geodesic bend at draw time.
func (s *ManifoldScene) Update(tick int32, ptr systems.Pointer) {
	s.ptr = ptr
	s.sys.Update(tick, ptr)
}

// Draw renders particles and geodesics.
func (s *ManifoldScene) Draw(tick int32, colors map[string]color.RGBA) {
	s.rend.Draw(s.sys, s.ptr, colors)
}

// Resize repositions the existing population with the mount seed; the
// pool itself is never reallocated.
func (s *ManifoldScene) Resize(b systems.Bounds) {
	s.sys.Reset(b, s.seed)
	s.rend.Resize(b.Width, b.Height)
}

// Unload releases nothing; the ECS world is CPU state.
func (s *ManifoldScene) Unload() {}
