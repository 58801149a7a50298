// Package telemetry collects frame timings for the scenes and writes
// windowed statistics to structured logs and CSV.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseUpdate = "update"
	PhaseDraw   = "draw"
	PhaseBlit   = "blit"
)

// FrameSample holds timing data for a single frame.
type FrameSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// FrameStats is the aggregate over one rolling window, in
// milliseconds.
type FrameStats struct {
	Frame    int64   `csv:"frame"`
	MeanMs   float64 `csv:"mean_ms"`
	StdDevMs float64 `csv:"stddev_ms"`
	P95Ms    float64 `csv:"p95_ms"`
	MaxMs    float64 `csv:"max_ms"`
	UpdateMs float64 `csv:"update_ms"`
	DrawMs   float64 `csv:"draw_ms"`
}

// PerfCollector tracks frame timings over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []FrameSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
	frames        int64
}

// NewPerfCollector creates a collector averaging over windowSize
// frames (e.g. 60 for one second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
		p.lastPhase = ""
	}
	p.samples[p.writeIndex] = FrameSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
	p.frames++
}

// Frames returns the total number of recorded frames.
func (p *PerfCollector) Frames() int64 {
	return p.frames
}

// WindowFull reports whether a complete window has been recorded.
func (p *PerfCollector) WindowFull() bool {
	return p.sampleCount == p.windowSize
}

// Stats aggregates the current window.
func (p *PerfCollector) Stats() FrameStats {
	n := p.sampleCount
	if n == 0 {
		return FrameStats{Frame: p.frames}
	}

	durations := make([]float64, n)
	var updateTotal, drawTotal time.Duration
	for i := 0; i < n; i++ {
		s := &p.samples[i]
		durations[i] = float64(s.FrameDuration) / float64(time.Millisecond)
		updateTotal += s.Phases[PhaseUpdate]
		drawTotal += s.Phases[PhaseDraw]
	}

	mean, std := stat.MeanStdDev(durations, nil)
	sorted := make([]float64, n)
	copy(sorted, durations)
	sort.Float64s(sorted)

	return FrameStats{
		Frame:    p.frames,
		MeanMs:   mean,
		StdDevMs: std,
		P95Ms:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		MaxMs:    sorted[n-1],
		UpdateMs: float64(updateTotal) / float64(n) / float64(time.Millisecond),
		DrawMs:   float64(drawTotal) / float64(n) / float64(time.Millisecond),
	}
}

// LogStats emits the window aggregate via slog.
func (p *PerfCollector) LogStats() {
	s := p.Stats()
	slog.Info("frame stats",
		"frame", s.Frame,
		"mean_ms", s.MeanMs,
		"stddev_ms", s.StdDevMs,
		"p95_ms", s.P95Ms,
		"max_ms", s.MaxMs,
		"update_ms", s.UpdateMs,
		"draw_ms", s.DrawMs,
	)
}
