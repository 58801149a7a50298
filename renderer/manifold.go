package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/components"
	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/theme"
)

// ManifoldRenderer draws the dense particle volume as depth-scaled
// additive points, with a set of geodesic curves bending toward the
// pointer layered on top.
type ManifoldRenderer struct {
	proj        *Projector
	lineCount   int
	lineSamples int
	bendRadius  float32
	bendScale   float32
	height      float32
	width       float32
}

// NewManifoldRenderer creates a renderer for the given surface size
// and volume depth.
func NewManifoldRenderer(width, height, depth float32, lineCount, lineSamples int, bendRadius, bendStrength float32) *ManifoldRenderer {
	return &ManifoldRenderer{
		proj:        NewProjector(width, height, depth),
		lineCount:   lineCount,
		lineSamples: lineSamples,
		bendRadius:  bendRadius,
		bendScale:   bendStrength,
		width:       width,
		height:      height,
	}
}

// Resize updates the projection to new surface dimensions.
func (r *ManifoldRenderer) Resize(width, height float32) {
	r.width = width
	r.height = height
	r.proj.Resize(width, height)
}

// Draw renders particles then geodesics.
func (r *ManifoldRenderer) Draw(sys *systems.ManifoldSystem, ptr systems.Pointer, colors map[string]color.RGBA) {
	particle := colors[theme.TokenParticle]
	line := colors[theme.TokenAccentSecondary]

	rl.BeginBlendMode(rl.BlendAdditive)

	sys.Each(func(pos *components.Position3, _ *components.Velocity3, spr *components.Sprite) {
		sx, sy, scale := r.proj.Project(pos.X, pos.Y+spr.WobbleY, pos.Z)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, spr.Size*scale, toRL(particle, spr.Opacity*scale))
	})

	r.drawGeodesics(ptr, line)

	rl.EndBlendMode()
}

// drawGeodesics draws evenly spaced horizontal curves whose samples
// displace toward the pointer with linear falloff, the same bend rule
// as the cursor grid but at manifold-specific radius and strength.
func (r *ManifoldRenderer) drawGeodesics(ptr systems.Pointer, col color.RGBA) {
	if r.lineCount < 1 || r.lineSamples < 2 {
		return
	}

	stepY := r.height / float32(r.lineCount+1)
	stepX := r.width / float32(r.lineSamples-1)

	for li := 1; li <= r.lineCount; li++ {
		baseY := stepY * float32(li)
		var prev rl.Vector2
		for si := 0; si < r.lineSamples; si++ {
			x := stepX * float32(si)
			y := baseY

			if ptr.Active && r.bendRadius > 0 {
				dx := ptr.X - x
				dy := ptr.Y - y
				distSq := dx*dx + dy*dy
				if distSq < r.bendRadius*r.bendRadius && distSq > 0 {
					dist := sqrt32(distSq)
					falloff := 1 - dist/r.bendRadius
					y += dy / dist * r.bendScale * falloff
					x += dx / dist * r.bendScale * falloff * 0.3
				}
			}

			cur := rl.Vector2{X: x, Y: y}
			if si > 0 {
				rl.DrawLineEx(prev, cur, 1, toRL(col, 0.12))
			}
			prev = cur
		}
	}
}
