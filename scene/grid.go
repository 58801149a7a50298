package scene

import (
	"image/color"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/systems"
)

// GridScene is the full-viewport pointer-reactive curved-grid overlay.
type GridScene struct {
	sys  *systems.CursorGridSystem
	rend *renderer.GridRenderer
	ptr  systems.Pointer
}

// NewGridScene returns a builder for the cursor-grid scene.
func NewGridScene(cfg config.GridConfig) Builder {
	return func(b systems.Bounds, _ int64) Scene {
		return &GridScene{
			sys: systems.NewCursorGridSystem(b, systems.CursorGridParams{
				Spacing:            cfg.Spacing,
				SampleStep:         cfg.SampleStep,
				IntensityIncrement: cfg.IntensityIncrement,
				BendRadius:         cfg.BendRadius,
				BendStrength:       cfg.BendStrength,
			}),
			rend: renderer.NewGridRenderer(),
		}
	}
}

// Update advances the intensity ratchet and keeps the pointer for the
// draw-time bend.
func (s *GridScene) Update(tick int32, ptr systems.Pointer) {
	s.ptr = ptr
	s.sys.Update()
}

// Draw renders the displaced grid lines.
func (s *GridScene) Draw(tick int32, colors map[string]color.RGBA) {
	s.rend.Draw(s.sys, s.ptr, colors)
}

// Resize re-covers the new area; the intensity ratchet survives.
func (s *GridScene) Resize(b systems.Bounds) {
	s.sys.Resize(b)
}

// Unload releases nothing.
func (s *GridScene) Unload() {}
