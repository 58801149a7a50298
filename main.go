package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/scene"
	"github.com/pthm-cable/backdrop/telemetry"
	"github.com/pthm-cable/backdrop/theme"
)

// sceneNames lists the scenes in key order (1-5).
var sceneNames = []string{"pendulum", "flow", "manifold", "stars", "grid"}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	sceneName := flag.String("scene", "flow", "Initial scene: pendulum, flow, manifold, stars, grid")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	reducedMotion := flag.Bool("reduced-motion", false, "Render a single static frame per scene")
	headless := flag.Bool("headless", false, "Run without graphics")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV stats and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	resolver := theme.NewResolver(cfg.Theme.Palette)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	perf := telemetry.NewPerfCollector(cfg.Screen.TargetFPS)

	builders := map[string]scene.Builder{
		"pendulum": scene.NewPendulumScene(cfg.Pendulum),
		"flow":     scene.NewFlowScene(cfg.Flow),
		"manifold": scene.NewManifoldScene(cfg.Manifold),
		"stars":    scene.NewStarScene(cfg.Stars),
		"grid":     scene.NewGridScene(cfg.Grid),
	}
	if _, ok := builders[*sceneName]; !ok {
		slog.Error("unknown scene", "scene", *sceneName)
		os.Exit(1)
	}

	mountCfg := scene.Config{
		Seed:          rngSeed,
		ReducedMotion: *reducedMotion,
		PixelDensity:  float32(cfg.Screen.PixelDensityCap),
		Resolver:      resolver,
		Headless:      *headless,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		container := rl.Rectangle{Width: cfg.Derived.ScreenW32, Height: cfg.Derived.ScreenH32}
		h := scene.Mount(container, mountCfg, *sceneName, builders[*sceneName])
		defer h.Dispose()

		slog.Info("starting headless run",
			"scene", *sceneName,
			"seed", rngSeed,
			"max_frames", *maxFrames,
		)

		for frame := 0; *maxFrames == 0 || frame < *maxFrames; frame++ {
			perf.StartFrame()
			perf.StartPhase(telemetry.PhaseUpdate)
			h.Frame()
			perf.EndFrame()

			if perf.WindowFull() && frame%cfg.Screen.TargetFPS == 0 {
				if *logStats {
					perf.LogStats()
				}
				if err := output.WriteFrameStats(perf.Stats()); err != nil {
					slog.Error("failed to write frame stats", "error", err)
				}
			}
		}
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Backdrop")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	container := func() rl.Rectangle {
		return rl.Rectangle{
			Width:  float32(rl.GetScreenWidth()),
			Height: float32(rl.GetScreenHeight()),
		}
	}

	current := *sceneName
	h := scene.Mount(container(), mountCfg, current, builders[current])
	defer func() { h.Dispose() }()

	frame := 0
	for !rl.WindowShouldClose() {
		// Scene switching
		for i, name := range sceneNames {
			if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) && name != current {
				h.Dispose()
				current = name
				h = scene.Mount(container(), mountCfg, current, builders[current])
			}
		}

		// Theme toggle
		if rl.IsKeyPressed(rl.KeyT) {
			if resolver.PaletteName() == "dark" {
				resolver.SetPalette("light")
			} else {
				resolver.SetPalette("dark")
			}
		}

		if rl.IsWindowResized() {
			h.Resize(container())
		}

		// Latest pointer sample only; the next frame reads it
		if rl.IsCursorOnScreen() {
			m := rl.GetMousePosition()
			h.Pointer(m.X, m.Y)
		} else {
			h.PointerLeave()
		}

		perf.StartFrame()
		perf.StartPhase(telemetry.PhaseUpdate)
		h.Frame()

		perf.StartPhase(telemetry.PhaseBlit)
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		h.Blit()
		rl.EndDrawing()
		perf.EndFrame()

		frame++
		if perf.WindowFull() && frame%cfg.Screen.TargetFPS == 0 {
			if *logStats {
				perf.LogStats()
			}
			if err := output.WriteFrameStats(perf.Stats()); err != nil {
				slog.Error("failed to write frame stats", "error", err)
			}
		}

		if *maxFrames > 0 && frame >= *maxFrames {
			break
		}
	}
}
