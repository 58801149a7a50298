package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/theme"
)

// StarRenderer projects the rotating star sphere onto the surface and
// draws each star as an additive point weighted by twinkle opacity.
type StarRenderer struct {
	centerX float32
	centerY float32
	radius  float32
}

// NewStarRenderer creates a renderer centered on the surface, with the
// sphere radius a fraction of the larger dimension.
func NewStarRenderer(width, height, radiusFraction float32) *StarRenderer {
	r := &StarRenderer{}
	r.Resize(width, height, radiusFraction)
	return r
}

// Resize recenters the sphere.
func (r *StarRenderer) Resize(width, height, radiusFraction float32) {
	r.centerX = width * 0.5
	r.centerY = height * 0.5
	max := width
	if height > max {
		max = height
	}
	r.radius = max * 0.5 * radiusFraction
}

// Draw renders the star field at the given tick.
func (r *StarRenderer) Draw(sys *systems.StarFieldSystem, tick int32, colors map[string]color.RGBA) {
	starCol := colors[theme.TokenStar]

	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range sys.Stars {
		x, y, z := sys.RotatedPosition(i)

		// Stars on the back hemisphere dim and shrink slightly
		// instead of culling, so rotation never pops.
		depth := 0.65 + 0.35*(z+1)*0.5

		sx := r.centerX + x*r.radius
		sy := r.centerY + y*r.radius*0.82

		alpha := sys.Twinkle(i, tick) * depth
		if alpha < 0.02 {
			continue
		}
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, sys.Stars[i].Size*depth, toRL(starCol, alpha))
	}

	rl.EndBlendMode()
}
