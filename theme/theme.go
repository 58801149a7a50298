// Package theme resolves semantic color tokens for the scenes.
// Palettes are defined as hex strings and resolved to RGBA once per
// palette switch; live scenes observe the resolver's version and
// recolor without a remount.
package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Token names shared by the scenes.
const (
	TokenBackdrop        = "backdrop"
	TokenAccentPrimary   = "accent-primary"
	TokenAccentSecondary = "accent-secondary"
	TokenTrail           = "trail"
	TokenGridLine        = "grid-line"
	TokenStar            = "star"
	TokenParticle        = "particle"
	TokenLabel           = "label"
)

// Palette maps token names to hex colors.
type Palette struct {
	Name   string
	Tokens map[string]string
}

var (
	PaletteDark = Palette{
		Name: "dark",
		Tokens: map[string]string{
			TokenBackdrop:        "#0b0d12",
			TokenAccentPrimary:   "#64d8ff",
			TokenAccentSecondary: "#b07cff",
			TokenTrail:           "#3a86c8",
			TokenGridLine:        "#2c3a52",
			TokenStar:            "#e8edf7",
			TokenParticle:        "#8fb8e8",
			TokenLabel:           "#c9d4e6",
		},
	}

	PaletteLight = Palette{
		Name: "light",
		Tokens: map[string]string{
			TokenBackdrop:        "#f5f6f9",
			TokenAccentPrimary:   "#0077be",
			TokenAccentSecondary: "#7c3aed",
			TokenTrail:           "#3a6ea5",
			TokenGridLine:        "#c3ccdb",
			TokenStar:            "#404a5c",
			TokenParticle:        "#4a6fa0",
			TokenLabel:           "#2d3648",
		},
	}

	// Palettes lists all built-in palettes.
	Palettes = []Palette{PaletteDark, PaletteLight}
)

// GetPalette returns a palette by name, falling back to dark.
func GetPalette(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return PaletteDark
}

// Resolver resolves the active palette's tokens to RGBA values and
// caches the result. Version changes whenever the palette is switched,
// which is the scenes' signal to re-read their colors.
type Resolver struct {
	palette  Palette
	resolved map[string]color.RGBA
	version  uint64
}

// NewResolver creates a resolver on the named palette.
func NewResolver(name string) *Resolver {
	r := &Resolver{version: 1}
	r.setPalette(GetPalette(name))
	return r
}

// SetPalette switches the active palette and bumps the version.
// Switching to the already-active palette is a no-op.
func (r *Resolver) SetPalette(name string) {
	p := GetPalette(name)
	if p.Name == r.palette.Name {
		return
	}
	r.version++
	r.setPalette(p)
}

func (r *Resolver) setPalette(p Palette) {
	r.palette = p
	r.resolved = make(map[string]color.RGBA, len(p.Tokens))
	for name, hex := range p.Tokens {
		c, err := colorful.Hex(hex)
		if err != nil {
			// Unparseable tokens resolve to full white rather than
			// failing the mount; a wrong color is not fatal.
			r.resolved[name] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			continue
		}
		cr, cg, cb := c.RGB255()
		r.resolved[name] = color.RGBA{R: cr, G: cg, B: cb, A: 255}
	}
}

// Version returns the current palette version.
func (r *Resolver) Version() uint64 {
	return r.version
}

// PaletteName returns the active palette's name.
func (r *Resolver) PaletteName() string {
	return r.palette.Name
}

// Resolve returns the resolved token map. The map is the resolver's
// cache; callers must not mutate it.
func (r *Resolver) Resolve() map[string]color.RGBA {
	return r.resolved
}

// Token returns a single resolved token, or opaque white if unknown.
func (r *Resolver) Token(name string) color.RGBA {
	if c, ok := r.resolved[name]; ok {
		return c
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// Blend mixes two resolved tokens in Lab space, t in [0,1] toward b.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	m := ca.BlendLab(cb, t).Clamped()
	mr, mg, mb := m.RGB255()
	return color.RGBA{R: mr, G: mg, B: mb, A: 255}
}
