package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/theme"
)

// GridRenderer draws the full-viewport curved grid. Both line opacity
// and bend magnitude scale with the system's ratcheted intensity, so
// the overlay fades in over the first frames after mount.
type GridRenderer struct{}

// NewGridRenderer creates a new grid renderer.
func NewGridRenderer() *GridRenderer {
	return &GridRenderer{}
}

// Draw renders all grid lines as displaced polylines.
func (r *GridRenderer) Draw(sys *systems.CursorGridSystem, ptr systems.Pointer, colors map[string]color.RGBA) {
	if sys.Intensity <= 0 {
		return
	}
	b := sys.Bounds()
	p := sys.Params()
	if b.Empty() || p.Spacing <= 0 || p.SampleStep <= 0 {
		return
	}

	col := colors[theme.TokenGridLine]
	alpha := 0.35 * sys.Intensity
	spacing := float32(p.Spacing)
	step := float32(p.SampleStep)

	// Vertical lines
	for x := spacing; x < b.Width; x += spacing {
		var prev rl.Vector2
		first := true
		for y := float32(0); y <= b.Height; y += step {
			px, py := sys.Displace(x, y, ptr)
			cur := rl.Vector2{X: px, Y: py}
			if !first {
				rl.DrawLineEx(prev, cur, 1, toRL(col, alpha))
			}
			prev = cur
			first = false
		}
	}

	// Horizontal lines
	for y := spacing; y < b.Height; y += spacing {
		var prev rl.Vector2
		first := true
		for x := float32(0); x <= b.Width; x += step {
			px, py := sys.Displace(x, y, ptr)
			cur := rl.Vector2{X: px, Y: py}
			if !first {
				rl.DrawLineEx(prev, cur, 1, toRL(col, alpha))
			}
			prev = cur
			first = false
		}
	}
}
