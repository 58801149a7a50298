package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/theme"
)

// FlowRenderer draws flow particles as short streaks with additive
// blending so crossing paths brighten instead of occluding.
type FlowRenderer struct{}

// NewFlowRenderer creates a new flow renderer.
func NewFlowRenderer() *FlowRenderer {
	return &FlowRenderer{}
}

// Draw renders all flow particles.
func (r *FlowRenderer) Draw(particles []systems.FlowParticle, tick int32, colors map[string]color.RGBA) {
	trail := colors[theme.TokenTrail]

	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range particles {
		p := &particles[i]

		lifeRatio := 1 - float32(p.Age)/float32(p.MaxAge)

		// Fade in over the first 20% of life, gentle fade out at the end
		fadeIn := float32(math.Min(float64(1-lifeRatio)*5, 1))
		fadeIn *= fadeIn
		fadeOut := float32(math.Min(float64(lifeRatio)*3+0.1, 1))

		alpha := p.Opacity * fadeIn * fadeOut
		if alpha < 0.01 {
			continue
		}

		rl.DrawLineEx(
			rl.Vector2{X: p.PrevX, Y: p.PrevY},
			rl.Vector2{X: p.X, Y: p.Y},
			p.Size,
			toRL(trail, alpha),
		)
	}

	rl.EndBlendMode()
}
