package scene

import "github.com/pthm-cable/backdrop/systems"

// PointerTracker keeps the latest pointer sample in scene-local
// coordinates. Event handlers only ever overwrite the latest value;
// the next frame reads it. There is no queueing and no replay.
type PointerTracker struct {
	sample systems.Pointer
}

// NewPointerTracker starts with no pointer; consumers see an inactive
// sample until the pointer first enters the scene.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Set records a pointer position inside the scene.
func (t *PointerTracker) Set(x, y float32) {
	t.sample = systems.Pointer{X: x, Y: y, Active: true}
}

// Leave marks the pointer as gone. Influenced computations must then
// apply no force at all, not a force toward the last position.
func (t *PointerTracker) Leave() {
	t.sample = systems.Pointer{}
}

// Sample returns the latest sample.
func (t *PointerTracker) Sample() systems.Pointer {
	return t.sample
}
