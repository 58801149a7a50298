// Flow field lab - interactive noise field visualization with sliders.
//
// Usage: go run ./cmd/fieldlab
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
	arrowSpacing = 24
)

// FieldParams holds the tunable noise field parameters.
type FieldParams struct {
	FieldScale float32
	TimeScale  float32
	Seed       int64
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Field Lab")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	params := FieldParams{
		FieldScale: 0.003,
		TimeScale:  0.0002,
		Seed:       12345,
	}
	field := systems.NewNoiseField(params.Seed, float64(params.FieldScale), float64(params.TimeScale))

	var tick int32
	animating := true

	for !rl.WindowShouldClose() {
		if animating {
			tick++
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			animating = !animating
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 11, G: 13, B: 18, A: 255})

		// Draw the field as a lattice of direction arrows
		for y := arrowSpacing / 2; y < previewSize; y += arrowSpacing {
			for x := arrowSpacing / 2; x < previewSize; x += arrowSpacing {
				angle := field.AngleAt(float64(x), float64(y), float64(tick))
				dx := float32(math.Cos(angle)) * arrowSpacing * 0.4
				dy := float32(math.Sin(angle)) * arrowSpacing * 0.4
				cx := float32(x) + 10
				cy := float32(y) + 10
				rl.DrawLineEx(
					rl.Vector2{X: cx - dx, Y: cy - dy},
					rl.Vector2{X: cx + dx, Y: cy + dy},
					1.5,
					rl.Color{R: 100, G: 180, B: 255, A: 170},
				)
				rl.DrawCircleV(rl.Vector2{X: cx + dx, Y: cy + dy}, 1.5, rl.Color{R: 200, G: 230, B: 255, A: 200})
			}
		}
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText("Field scale (spatial frequency)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.001", "0.02",
			params.FieldScale, 0.001, 0.02,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.FieldScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if newScale != params.FieldScale {
			params.FieldScale = newScale
			field = systems.NewNoiseField(params.Seed, float64(params.FieldScale), float64(params.TimeScale))
		}
		panelY += 35

		rl.DrawText("Time scale (animation speed)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newTime := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "0.005",
			params.TimeScale, 0, 0.005,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.TimeScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if newTime != params.TimeScale {
			params.TimeScale = newTime
			field = systems.NewNoiseField(params.Seed, float64(params.FieldScale), float64(params.TimeScale))
		}
		panelY += 35

		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "99999",
			float32(params.Seed), 1, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.RayWhite)
		if int64(newSeed) != params.Seed {
			params.Seed = int64(newSeed)
			field = systems.NewNoiseField(params.Seed, float64(params.FieldScale), float64(params.TimeScale))
		}
		panelY += 35

		rl.DrawText("Space: pause/resume", int32(panelX), int32(panelY), 14, rl.Gray)

		rl.EndDrawing()
	}
}
