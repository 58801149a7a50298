package telemetry

import (
	"testing"
	"time"
)

func recordFrame(p *PerfCollector, work time.Duration) {
	p.StartFrame()
	p.StartPhase(PhaseUpdate)
	time.Sleep(work)
	p.StartPhase(PhaseDraw)
	time.Sleep(work)
	p.EndFrame()
}

func TestPerfCollectorWindowFill(t *testing.T) {
	p := NewPerfCollector(5)

	if p.WindowFull() {
		t.Error("fresh collector claims a full window")
	}
	for i := 0; i < 4; i++ {
		recordFrame(p, 0)
	}
	if p.WindowFull() {
		t.Error("window full after 4 of 5 frames")
	}
	recordFrame(p, 0)
	if !p.WindowFull() {
		t.Error("window not full after 5 frames")
	}
	if p.Frames() != 5 {
		t.Errorf("frames = %d, want 5", p.Frames())
	}

	// Rolling: frame count keeps growing, window stays full.
	for i := 0; i < 7; i++ {
		recordFrame(p, 0)
	}
	if p.Frames() != 12 || !p.WindowFull() {
		t.Errorf("after rollover: frames %d, full %v", p.Frames(), p.WindowFull())
	}
}

func TestPerfCollectorStats(t *testing.T) {
	p := NewPerfCollector(4)
	for i := 0; i < 4; i++ {
		recordFrame(p, time.Millisecond)
	}

	s := p.Stats()
	if s.Frame != 4 {
		t.Errorf("stats frame = %d, want 4", s.Frame)
	}
	// Each frame slept twice for 1ms.
	if s.MeanMs < 2 {
		t.Errorf("mean %fms below the slept time", s.MeanMs)
	}
	if s.MaxMs < s.MeanMs {
		t.Errorf("max %f below mean %f", s.MaxMs, s.MeanMs)
	}
	if s.P95Ms < s.MeanMs-s.StdDevMs || s.P95Ms > s.MaxMs {
		t.Errorf("p95 %f outside plausible range (mean %f, max %f)", s.P95Ms, s.MeanMs, s.MaxMs)
	}
	if s.UpdateMs < 1 || s.DrawMs < 1 {
		t.Errorf("phase means too small: update %f, draw %f", s.UpdateMs, s.DrawMs)
	}
	if s.StdDevMs < 0 {
		t.Errorf("negative stddev %f", s.StdDevMs)
	}
}

func TestPerfCollectorEmptyStats(t *testing.T) {
	p := NewPerfCollector(60)
	s := p.Stats()
	if s.Frame != 0 || s.MeanMs != 0 || s.P95Ms != 0 {
		t.Errorf("empty collector stats not zero: %+v", s)
	}
}

func TestPerfCollectorPhaseAccounting(t *testing.T) {
	p := NewPerfCollector(2)

	// A frame with no phases still records a duration.
	p.StartFrame()
	p.EndFrame()

	// Re-entering a phase accumulates, not replaces.
	p.StartFrame()
	p.StartPhase(PhaseUpdate)
	time.Sleep(time.Millisecond)
	p.StartPhase(PhaseDraw)
	p.StartPhase(PhaseUpdate)
	time.Sleep(time.Millisecond)
	p.EndFrame()

	s := p.Stats()
	// 2ms of update spread over a 2-frame window.
	if s.UpdateMs < 1 {
		t.Errorf("update phase mean %fms, want at least 1", s.UpdateMs)
	}
}

func TestPerfCollectorWindowSizeGuard(t *testing.T) {
	p := NewPerfCollector(0)
	recordFrame(p, 0)
	if p.Frames() != 1 {
		t.Errorf("collector with guarded window lost a frame: %d", p.Frames())
	}
}
