// Package scene hosts the ambient scenes: surface creation, the frame
// scheduler, pointer tracking and the mount/resize/dispose lifecycle.
package scene

import (
	"image/color"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
	"github.com/pthm-cable/backdrop/theme"
)

// maxPixelDensity caps the surface scale multiplier to bound GPU
// memory on high-density displays.
const maxPixelDensity = 2

// Config carries the per-instance mount options. It is treated as
// immutable after Mount; bounds change only through an explicit
// Resize.
type Config struct {
	// Seed drives all per-scene randomness. 0 means time-derived, so
	// distinct page loads differ.
	Seed int64
	// ReducedMotion renders exactly one static frame and never
	// schedules recurring work.
	ReducedMotion bool
	// PixelDensity is the host display's pixel ratio. Values above 2
	// are capped.
	PixelDensity float32
	// Resolver supplies color tokens. Scenes re-read it every frame,
	// so palette switches recolor live scenes without a remount.
	Resolver *theme.Resolver
	// Headless skips rasterization entirely while still running the
	// simulation, for benchmark and telemetry runs without a window.
	Headless bool
	// SurfaceFactory overrides surface creation; nil uses a render
	// texture. The second result reports whether the context was
	// usable.
	SurfaceFactory func(width, height, density float32) (Surface, bool)
}

// Scene is one concrete animated visual. Update always runs before
// Draw within a frame; Draw is called inside the surface's drawing
// mode at logical coordinates.
type Scene interface {
	Update(tick int32, ptr systems.Pointer)
	Draw(tick int32, colors map[string]color.RGBA)
	Resize(b systems.Bounds)
	Unload()
}

// Builder constructs a scene for the given bounds and seed. It is
// invoked once by Mount and again never; Resize reuses the built
// scene.
type Builder func(b systems.Bounds, seed int64) Scene

// Handle bundles a mounted scene with its surface, scheduler and
// pointer state. All methods are safe to call after Dispose; late
// calls are silently ignored.
type Handle struct {
	name      string
	surface   Surface
	sched     *Scheduler
	pointer   *PointerTracker
	scene     Scene
	resolver  *theme.Resolver
	container rl.Rectangle
	bounds    systems.Bounds
	seed      int64
	tick      int32
	headless  bool
	disposed  bool
}

// Mount creates the drawing surface for the container, builds the
// scene seeded from cfg.Seed and starts the scheduler. When the
// rendering context is unavailable the handle mounts on the inert
// fallback surface instead of failing; it still disposes normally.
func Mount(container rl.Rectangle, cfg Config, name string, build Builder) *Handle {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	density := cfg.PixelDensity
	if density <= 0 {
		density = 1
	}
	if density > maxPixelDensity {
		density = maxPixelDensity
	}

	factory := cfg.SurfaceFactory
	if factory == nil {
		factory = NewRenderSurface
		if cfg.Headless {
			factory = NewNullSurface
		}
	}

	surface, ok := factory(container.Width, container.Height, density)
	if !ok {
		slog.Warn("scene: rendering context unavailable, mounting inert fallback", "scene", name)
		surface = NewFallbackSurface()
	}

	h := &Handle{
		name:      name,
		surface:   surface,
		sched:     NewScheduler(cfg.ReducedMotion),
		pointer:   NewPointerTracker(),
		resolver:  cfg.Resolver,
		container: container,
		bounds:    systems.Bounds{Width: container.Width, Height: container.Height},
		seed:      seed,
		headless:  cfg.Headless,
	}
	if h.resolver == nil {
		h.resolver = theme.NewResolver("")
	}
	h.scene = build(h.bounds, seed)
	h.sched.Start()

	slog.Info("scene: mounted", "scene", name, "seed", seed,
		"width", container.Width, "height", container.Height,
		"density", density, "reduced_motion", cfg.ReducedMotion)
	return h
}

// Frame runs one cooperative frame: state update, then rasterization
// onto the surface. Gated by the scheduler, so it is a no-op when
// paused, disposed, or after the single reduced-motion frame.
func (h *Handle) Frame() {
	if h.disposed || !h.sched.ShouldRun() {
		return
	}
	if !h.surface.OK() {
		// Inert fallback: count the frame so reduced-motion parks,
		// but simulate and draw nothing.
		h.sched.FrameDone()
		return
	}

	h.tick++
	h.scene.Update(h.tick, h.pointer.Sample())

	if !h.headless {
		colors := h.resolver.Resolve()
		h.surface.Begin()
		drawBackdrop(colors)
		h.scene.Draw(h.tick, colors)
		h.surface.End()
	}

	h.sched.FrameDone()
}

// Blit draws the most recently rendered frame into the container.
func (h *Handle) Blit() {
	if h.disposed {
		return
	}
	h.surface.Blit(h.container, h.resolver.Token(theme.TokenBackdrop))
}

// Pointer records a pointer position in scene-local coordinates.
// Ignored after dispose.
func (h *Handle) Pointer(x, y float32) {
	if h.disposed {
		return
	}
	h.pointer.Set(x, y)
}

// PointerLeave marks the pointer as outside the scene. Ignored after
// dispose.
func (h *Handle) PointerLeave() {
	if h.disposed {
		return
	}
	h.pointer.Leave()
}

// Resize recreates the surface buffers for the new container and lets
// the scene reposition its population with the original seed, keeping
// visuals reproducible. Ignored after dispose.
func (h *Handle) Resize(container rl.Rectangle) {
	if h.disposed {
		slog.Debug("scene: resize after dispose ignored", "scene", h.name)
		return
	}
	if container.Width == h.container.Width && container.Height == h.container.Height {
		h.container = container
		return
	}
	h.container = container
	h.bounds = systems.Bounds{Width: container.Width, Height: container.Height}
	h.surface.Resize(container.Width, container.Height)
	h.scene.Resize(h.bounds)
}

// Dispose cancels pending frames synchronously, releases the surface
// and detaches the scene. Calling it twice is a no-op; no frame fires
// after it returns.
func (h *Handle) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	h.sched.Dispose()
	h.scene.Unload()
	h.surface.Unload()
	slog.Info("scene: disposed", "scene", h.name, "frames", h.sched.Frames())
}

// Disposed reports whether Dispose has run.
func (h *Handle) Disposed() bool {
	return h.disposed
}

// Seed returns the effective seed chosen at mount.
func (h *Handle) Seed() int64 {
	return h.seed
}

// Scheduler exposes the scheduler for state inspection.
func (h *Handle) Scheduler() *Scheduler {
	return h.sched
}

// drawBackdrop clears the surface to the backdrop token.
func drawBackdrop(colors map[string]color.RGBA) {
	c := colors[theme.TokenBackdrop]
	rl.ClearBackground(rl.Color{R: c.R, G: c.G, B: c.B, A: 255})
}
