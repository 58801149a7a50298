package scene

import "testing"

func TestSchedulerLifecycle(t *testing.T) {
	s := NewScheduler(false)
	if s.State() != StateIdle {
		t.Fatalf("new scheduler in %v, want idle", s.State())
	}
	if s.ShouldRun() {
		t.Error("idle scheduler should not run frames")
	}

	s.Start()
	if s.State() != StateRunning || !s.ShouldRun() {
		t.Fatalf("after Start: state %v, ShouldRun %v", s.State(), s.ShouldRun())
	}

	s.Pause()
	if s.State() != StatePaused || s.ShouldRun() {
		t.Fatalf("after Pause: state %v", s.State())
	}

	s.Resume()
	if s.State() != StateRunning {
		t.Fatalf("after Resume: state %v", s.State())
	}

	s.Dispose()
	if s.State() != StateDisposed || s.ShouldRun() {
		t.Fatalf("after Dispose: state %v", s.State())
	}
}

func TestSchedulerDisposeTerminal(t *testing.T) {
	s := NewScheduler(false)
	s.Start()
	s.Dispose()

	// Nothing revives a disposed scheduler.
	s.Start()
	s.Resume()
	s.Dispose()
	if s.State() != StateDisposed {
		t.Errorf("disposed scheduler left terminal state: %v", s.State())
	}
	if s.ShouldRun() {
		t.Error("disposed scheduler agreed to run a frame")
	}
}

func TestSchedulerFrameCount(t *testing.T) {
	s := NewScheduler(false)
	s.Start()
	for i := 0; i < 10; i++ {
		if !s.ShouldRun() {
			t.Fatalf("frame %d refused", i)
		}
		s.FrameDone()
	}
	if s.Frames() != 10 {
		t.Errorf("frames = %d, want 10", s.Frames())
	}

	// FrameDone outside Running counts nothing.
	s.Pause()
	s.FrameDone()
	if s.Frames() != 10 {
		t.Errorf("paused FrameDone counted: %d", s.Frames())
	}
}

func TestSchedulerReducedMotionSingleFrame(t *testing.T) {
	s := NewScheduler(true)
	s.Start()

	if !s.ShouldRun() {
		t.Fatal("reduced motion must allow the first frame")
	}
	s.FrameDone()

	if s.ShouldRun() {
		t.Error("reduced motion allowed a second frame")
	}
	if s.State() != StatePaused {
		t.Errorf("state after single frame: %v, want paused", s.State())
	}

	// The park is permanent.
	s.Resume()
	if s.ShouldRun() {
		t.Error("Resume overrode the reduced-motion park")
	}
	if s.Frames() != 1 {
		t.Errorf("frames = %d, want 1", s.Frames())
	}
}

func TestSchedulerStateStrings(t *testing.T) {
	cases := map[SchedulerState]string{
		StateIdle:     "idle",
		StateRunning:  "running",
		StatePaused:   "paused",
		StateDisposed: "disposed",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", state, got, want)
		}
	}
}
