package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/theme"
)

// PendulumRenderer draws the double pendulum: rods, both bobs and the
// fading trail of the second bob, plus the transient reveal label.
type PendulumRenderer struct {
	pivotX float32
	pivotY float32
}

// NewPendulumRenderer creates a renderer with the pivot at the top
// third of the surface.
func NewPendulumRenderer(width, height float32) *PendulumRenderer {
	return &PendulumRenderer{pivotX: width * 0.5, pivotY: height * 0.33}
}

// Resize recenters the pivot.
func (r *PendulumRenderer) Resize(width, height float32) {
	r.pivotX = width * 0.5
	r.pivotY = height * 0.33
}

// Pivot returns the pivot position on the surface.
func (r *PendulumRenderer) Pivot() (float32, float32) {
	return r.pivotX, r.pivotY
}

// Draw renders the pendulum state and trail.
func (r *PendulumRenderer) Draw(s systems.PendulumState, p systems.PendulumParams, trail *systems.Trail, label string, colors map[string]color.RGBA) {
	accent := colors[theme.TokenAccentPrimary]
	second := colors[theme.TokenAccentSecondary]
	trailCol := colors[theme.TokenTrail]
	labelCol := colors[theme.TokenLabel]

	x1, y1, x2, y2 := systems.BobPositions(s, p)
	bx1 := r.pivotX + float32(x1)
	by1 := r.pivotY + float32(y1)
	bx2 := r.pivotX + float32(x2)
	by2 := r.pivotY + float32(y2)

	// Trail under everything else, additive so loops glow
	rl.BeginBlendMode(rl.BlendAdditive)
	for i := 1; i < trail.Len(); i++ {
		a := trail.At(i - 1)
		b := trail.At(i)
		alpha := b.Opacity * 0.8
		if alpha < 0.01 {
			continue
		}
		rl.DrawLineEx(
			rl.Vector2{X: a.X, Y: a.Y},
			rl.Vector2{X: b.X, Y: b.Y},
			1.5,
			toRL(trailCol, alpha),
		)
	}
	rl.EndBlendMode()

	rl.DrawLineEx(rl.Vector2{X: r.pivotX, Y: r.pivotY}, rl.Vector2{X: bx1, Y: by1}, 2, toRL(accent, 0.9))
	rl.DrawLineEx(rl.Vector2{X: bx1, Y: by1}, rl.Vector2{X: bx2, Y: by2}, 2, toRL(accent, 0.9))

	rl.DrawCircleV(rl.Vector2{X: r.pivotX, Y: r.pivotY}, 3, toRL(accent, 0.7))
	rl.DrawCircleV(rl.Vector2{X: bx1, Y: by1}, float32(p.M1)*0.5, toRL(accent, 1))
	rl.DrawCircleV(rl.Vector2{X: bx2, Y: by2}, float32(p.M2)*0.5, toRL(second, 1))

	if label != "" {
		rl.DrawText(label, int32(r.pivotX)-rl.MeasureText(label, 20)/2, int32(r.pivotY)-40, 20, toRL(labelCol, 0.85))
	}
}
