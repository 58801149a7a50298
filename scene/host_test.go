package scene

import (
	"image/color"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
)

// fakeSurface records lifecycle calls without touching the GPU.
type fakeSurface struct {
	ok       bool
	resizes  int
	unloads  int
	lastW    float32
	lastH    float32
	inDraw   bool
	beginEnd int
}

func (s *fakeSurface) OK() bool { return s.ok }
func (s *fakeSurface) Begin()   { s.inDraw = true }
func (s *fakeSurface) End() {
	s.inDraw = false
	s.beginEnd++
}
func (s *fakeSurface) Blit(dest rl.Rectangle, backdrop color.RGBA) {}
func (s *fakeSurface) Resize(width, height float32) {
	s.resizes++
	s.lastW = width
	s.lastH = height
}
func (s *fakeSurface) Unload() { s.unloads++ }

// fakeScene records the calls the handle makes on it.
type fakeScene struct {
	updates  int
	resizes  int
	unloads  int
	lastTick int32
	lastPtr  systems.Pointer
	bounds   systems.Bounds
}

func (s *fakeScene) Update(tick int32, ptr systems.Pointer) {
	s.updates++
	s.lastTick = tick
	s.lastPtr = ptr
}
func (s *fakeScene) Draw(tick int32, colors map[string]color.RGBA) {}
func (s *fakeScene) Resize(b systems.Bounds) {
	s.resizes++
	s.bounds = b
}
func (s *fakeScene) Unload() { s.unloads++ }

func mountFake(t *testing.T, cfg Config) (*Handle, *fakeSurface, *fakeScene) {
	t.Helper()
	surf := &fakeSurface{ok: true}
	sc := &fakeScene{}
	cfg.Headless = true
	cfg.SurfaceFactory = func(w, h, d float32) (Surface, bool) {
		return surf, surf.ok
	}
	h := Mount(rl.Rectangle{Width: 640, Height: 480}, cfg, "test", func(b systems.Bounds, seed int64) Scene {
		sc.bounds = b
		return sc
	})
	return h, surf, sc
}

func TestHandleFrameUpdatesScene(t *testing.T) {
	h, _, sc := mountFake(t, Config{Seed: 1})

	h.Pointer(12, 34)
	for i := 0; i < 5; i++ {
		h.Frame()
	}

	if sc.updates != 5 {
		t.Errorf("updates = %d, want 5", sc.updates)
	}
	if sc.lastTick != 5 {
		t.Errorf("lastTick = %d, want 5", sc.lastTick)
	}
	if !sc.lastPtr.Active || sc.lastPtr.X != 12 || sc.lastPtr.Y != 34 {
		t.Errorf("pointer not delivered to update: %+v", sc.lastPtr)
	}

	h.PointerLeave()
	h.Frame()
	if sc.lastPtr.Active {
		t.Error("pointer still active after leave")
	}
}

func TestHandleSeedZeroBecomesTimeDerived(t *testing.T) {
	h, _, _ := mountFake(t, Config{Seed: 0})
	defer h.Dispose()
	if h.Seed() == 0 {
		t.Error("seed 0 was not replaced at mount")
	}

	h2, _, _ := mountFake(t, Config{Seed: 99})
	defer h2.Dispose()
	if h2.Seed() != 99 {
		t.Errorf("explicit seed changed: %d", h2.Seed())
	}
}

func TestHandleDisposeReleasesEverything(t *testing.T) {
	h, surf, sc := mountFake(t, Config{Seed: 1})

	h.Frame()
	h.Dispose()

	if sc.unloads != 1 || surf.unloads != 1 {
		t.Errorf("unloads: scene %d, surface %d, want 1 each", sc.unloads, surf.unloads)
	}
	if !h.Disposed() {
		t.Error("Disposed() false after Dispose")
	}
	if h.Scheduler().State() != StateDisposed {
		t.Errorf("scheduler state %v after dispose", h.Scheduler().State())
	}

	// Idempotent; no double release.
	h.Dispose()
	if sc.unloads != 1 || surf.unloads != 1 {
		t.Errorf("second Dispose released again: scene %d, surface %d", sc.unloads, surf.unloads)
	}
}

func TestHandleLateCallsIgnored(t *testing.T) {
	h, surf, sc := mountFake(t, Config{Seed: 1})
	h.Dispose()

	h.Frame()
	h.Pointer(1, 2)
	h.PointerLeave()
	h.Resize(rl.Rectangle{Width: 100, Height: 100})

	if sc.updates != 0 {
		t.Errorf("frame ran after dispose: %d updates", sc.updates)
	}
	if sc.resizes != 0 || surf.resizes != 0 {
		t.Errorf("resize ran after dispose: scene %d, surface %d", sc.resizes, surf.resizes)
	}
}

func TestHandleResize(t *testing.T) {
	h, surf, sc := mountFake(t, Config{Seed: 1})
	defer h.Dispose()

	h.Resize(rl.Rectangle{Width: 320, Height: 240})
	if surf.resizes != 1 || surf.lastW != 320 || surf.lastH != 240 {
		t.Errorf("surface resize: n=%d dims=(%f,%f)", surf.resizes, surf.lastW, surf.lastH)
	}
	if sc.resizes != 1 || sc.bounds.Width != 320 || sc.bounds.Height != 240 {
		t.Errorf("scene resize: n=%d bounds=%+v", sc.resizes, sc.bounds)
	}

	// Same dimensions short-circuit.
	h.Resize(rl.Rectangle{X: 10, Y: 10, Width: 320, Height: 240})
	if surf.resizes != 1 || sc.resizes != 1 {
		t.Errorf("same-size resize recreated buffers: surface %d, scene %d", surf.resizes, sc.resizes)
	}
}

func TestHandleReducedMotionSingleFrame(t *testing.T) {
	h, _, sc := mountFake(t, Config{Seed: 1, ReducedMotion: true})
	defer h.Dispose()

	for i := 0; i < 10; i++ {
		h.Frame()
	}

	if sc.updates != 1 {
		t.Errorf("reduced motion ran %d updates, want exactly 1", sc.updates)
	}
	if h.Scheduler().State() != StatePaused {
		t.Errorf("scheduler state %v, want paused", h.Scheduler().State())
	}
}

func TestHandleFallbackSurfaceInert(t *testing.T) {
	sc := &fakeScene{}
	cfg := Config{
		Seed:     1,
		Headless: true,
		SurfaceFactory: func(w, h, d float32) (Surface, bool) {
			return nil, false
		},
	}
	h := Mount(rl.Rectangle{Width: 640, Height: 480}, cfg, "test", func(b systems.Bounds, seed int64) Scene {
		return sc
	})

	for i := 0; i < 5; i++ {
		h.Frame()
	}
	if sc.updates != 0 {
		t.Errorf("inert fallback still simulated: %d updates", sc.updates)
	}

	// The handle still disposes cleanly.
	h.Dispose()
	if sc.unloads != 1 {
		t.Errorf("fallback dispose skipped scene unload: %d", sc.unloads)
	}
}

func TestHandleRepeatedMountDispose(t *testing.T) {
	for i := 0; i < 20; i++ {
		h, surf, sc := mountFake(t, Config{Seed: int64(i + 1)})
		h.Frame()
		h.Frame()
		h.Dispose()
		if sc.unloads != 1 || surf.unloads != 1 {
			t.Fatalf("cycle %d: unloads scene %d, surface %d", i, sc.unloads, surf.unloads)
		}
	}
}
