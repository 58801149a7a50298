package scene

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is the drawing target of one scene: a render texture sized
// to the container times the pixel density, or an inert fallback when
// no rendering context is available. A surface is owned exclusively by
// the handle that created it.
type Surface interface {
	// OK reports whether the surface can actually be drawn to. Scenes
	// mounted on a failed surface skip simulation and rasterization.
	OK() bool
	// Begin enters drawing mode; all raster calls until End land on
	// the surface at logical (container) coordinates.
	Begin()
	// End leaves drawing mode.
	End()
	// Blit draws the surface content into the destination rectangle,
	// or a flat backdrop fill for the fallback surface.
	Blit(dest rl.Rectangle, backdrop color.RGBA)
	// Resize recreates the buffer for new logical dimensions.
	Resize(width, height float32)
	// Unload releases GPU buffers. Safe to call more than once.
	Unload()
}

// renderSurface wraps a raylib render texture scaled by the pixel
// density multiplier.
type renderSurface struct {
	tex     rl.RenderTexture2D
	width   float32
	height  float32
	density float32
	loaded  bool
}

// NewRenderSurface creates a render texture surface. The buffer is
// width×height times density; density is expected pre-capped by the
// caller. Returns ok=false when the GPU context refused the texture,
// in which case callers should fall back to NewFallbackSurface.
func NewRenderSurface(width, height, density float32) (Surface, bool) {
	if density <= 0 {
		density = 1
	}
	s := &renderSurface{width: width, height: height, density: density}
	if !s.load() {
		return nil, false
	}
	return s, true
}

func (s *renderSurface) load() bool {
	bw := int32(s.width * s.density)
	bh := int32(s.height * s.density)
	if bw <= 0 || bh <= 0 {
		return false
	}
	s.tex = rl.LoadRenderTexture(bw, bh)
	s.loaded = s.tex.ID != 0
	return s.loaded
}

func (s *renderSurface) OK() bool {
	return s.loaded
}

func (s *renderSurface) Begin() {
	rl.BeginTextureMode(s.tex)
	// Scenes draw in logical units; the camera zoom maps them onto
	// the density-scaled buffer.
	rl.BeginMode2D(rl.Camera2D{Zoom: s.density})
}

func (s *renderSurface) End() {
	rl.EndMode2D()
	rl.EndTextureMode()
}

func (s *renderSurface) Blit(dest rl.Rectangle, backdrop color.RGBA) {
	if !s.loaded {
		return
	}
	// Render textures are vertically flipped; the negative source
	// height compensates.
	src := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(s.tex.Texture.Width),
		Height: -float32(s.tex.Texture.Height),
	}
	rl.DrawTexturePro(s.tex.Texture, src, dest, rl.Vector2{}, 0, rl.White)
}

func (s *renderSurface) Resize(width, height float32) {
	if !s.loaded {
		return
	}
	rl.UnloadRenderTexture(s.tex)
	s.loaded = false
	s.width = width
	s.height = height
	s.load()
}

func (s *renderSurface) Unload() {
	if !s.loaded {
		return
	}
	rl.UnloadRenderTexture(s.tex)
	s.loaded = false
}

// nullSurface accepts frames but renders nowhere. Used for headless
// runs, where the simulation and telemetry matter and pixels do not.
type nullSurface struct{}

// NewNullSurface creates a surface that draws nothing but still
// reports a usable context.
func NewNullSurface(width, height, density float32) (Surface, bool) {
	return nullSurface{}, true
}

func (nullSurface) OK() bool                                    { return true }
func (nullSurface) Begin()                                      {}
func (nullSurface) End()                                        {}
func (nullSurface) Blit(dest rl.Rectangle, backdrop color.RGBA) {}
func (nullSurface) Resize(width, height float32)                {}
func (nullSurface) Unload()                                     {}

// fallbackSurface is the inert stand-in when the rendering context is
// unavailable: nothing is simulated or drawn, and Blit paints a flat
// fill so the container is not left transparent.
type fallbackSurface struct{}

// NewFallbackSurface creates the inert fallback surface.
func NewFallbackSurface() Surface {
	return fallbackSurface{}
}

func (fallbackSurface) OK() bool { return false }
func (fallbackSurface) Begin()   {}
func (fallbackSurface) End()     {}

func (fallbackSurface) Blit(dest rl.Rectangle, backdrop color.RGBA) {
	rl.DrawRectangleRec(dest, rl.Color{R: backdrop.R, G: backdrop.G, B: backdrop.B, A: 255})
}

func (fallbackSurface) Resize(width, height float32) {}
func (fallbackSurface) Unload()                      {}
