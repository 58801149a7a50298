package renderer

// Projector maps volume coordinates onto the surface with a simple
// perspective divide, giving depth-sorted scenes their parallax
// without a full camera. Focal controls how strongly depth shrinks a
// point; Depth is the far plane of the volume.
type Projector struct {
	Width  float32
	Height float32
	Depth  float32
	Focal  float32
}

// NewProjector creates a projector for the given surface and volume.
func NewProjector(width, height, depth float32) *Projector {
	return &Projector{
		Width:  width,
		Height: height,
		Depth:  depth,
		Focal:  depth * 1.5,
	}
}

// Resize updates the surface dimensions.
func (p *Projector) Resize(width, height float32) {
	p.Width = width
	p.Height = height
}

// Project maps (x, y, z) to surface coordinates plus a scale factor
// in (0, 1] that callers apply to size and opacity for a depth cue.
func (p *Projector) Project(x, y, z float32) (sx, sy, scale float32) {
	if p.Focal <= 0 {
		return x, y, 1
	}
	scale = p.Focal / (p.Focal + z)
	cx := p.Width * 0.5
	cy := p.Height * 0.5
	sx = cx + (x-cx)*scale
	sy = cy + (y-cy)*scale
	return
}
