package scene

// SchedulerState is the lifecycle state of a scene's frame scheduler.
type SchedulerState uint8

const (
	StateIdle SchedulerState = iota
	StateRunning
	StatePaused
	StateDisposed // Terminal
)

// String returns the state name for logs.
func (s SchedulerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDisposed:
		return "disposed"
	}
	return "unknown"
}

// Scheduler gates the per-frame work of one scene. Frames are driven
// cooperatively by the host loop; the scheduler only decides whether a
// given frame may run. With reduced motion set, exactly one frame runs
// after Start and the scheduler parks in Paused for good.
type Scheduler struct {
	state         SchedulerState
	reducedMotion bool
	frames        uint64
}

// NewScheduler creates a scheduler in Idle.
func NewScheduler(reducedMotion bool) *Scheduler {
	return &Scheduler{state: StateIdle, reducedMotion: reducedMotion}
}

// Start transitions Idle to Running. Any other state is unchanged.
func (s *Scheduler) Start() {
	if s.state == StateIdle {
		s.state = StateRunning
	}
}

// ShouldRun reports whether the next frame may execute.
func (s *Scheduler) ShouldRun() bool {
	return s.state == StateRunning
}

// FrameDone records a completed frame. Under reduced motion the first
// completed frame parks the scheduler in Paused.
func (s *Scheduler) FrameDone() {
	if s.state != StateRunning {
		return
	}
	s.frames++
	if s.reducedMotion {
		s.state = StatePaused
	}
}

// Pause suspends frames. A no-op unless Running.
func (s *Scheduler) Pause() {
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Resume restarts frames after Pause. The reduced-motion park is
// permanent; Resume does not override it.
func (s *Scheduler) Resume() {
	if s.state == StatePaused && !s.reducedMotion {
		s.state = StateRunning
	}
}

// Dispose moves to the terminal state from anywhere. Idempotent; after
// it returns no frame will run again.
func (s *Scheduler) Dispose() {
	s.state = StateDisposed
}

// State returns the current state.
func (s *Scheduler) State() SchedulerState {
	return s.state
}

// Frames returns the number of completed frames.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}
