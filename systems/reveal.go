package systems

import "time"

// RevealTimer periodically surfaces a short-lived label cycled from a
// fixed list. It is display state only and runs on wall-clock time,
// fully decoupled from the integrator so the physics stays pure.
type RevealTimer struct {
	labels   []string
	interval time.Duration
	duration time.Duration
	now      func() time.Time

	index   int
	nextAt  time.Time
	shownAt time.Time
	visible bool
}

// NewRevealTimer creates a timer cycling through labels every interval,
// keeping each visible for duration. The clock is injectable for tests;
// pass nil for time.Now.
func NewRevealTimer(labels []string, interval, duration time.Duration, now func() time.Time) *RevealTimer {
	if now == nil {
		now = time.Now
	}
	return &RevealTimer{
		labels:   labels,
		interval: interval,
		duration: duration,
		now:      now,
		nextAt:   now().Add(interval),
	}
}

// Tick updates the timer. Call once per frame.
func (r *RevealTimer) Tick() {
	if len(r.labels) == 0 {
		return
	}
	t := r.now()
	if r.visible && t.Sub(r.shownAt) >= r.duration {
		r.visible = false
	}
	if t.After(r.nextAt) {
		r.index = (r.index + 1) % len(r.labels)
		r.visible = true
		r.shownAt = t
		r.nextAt = t.Add(r.interval)
	}
}

// Current returns the active label, or "" when none is visible.
func (r *RevealTimer) Current() string {
	if !r.visible {
		return ""
	}
	return r.labels[r.index]
}
