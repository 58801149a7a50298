package systems

import "math"

// PendulumParams holds the physical constants of the double pendulum.
type PendulumParams struct {
	Gravity float64
	Damping float64 // Multiplied into both angular velocities every step, (0,1]
	L1, L2  float64
	M1, M2  float64
}

// PendulumState is the full state of the double pendulum. Angles are
// measured from the downward vertical.
type PendulumState struct {
	Theta1, Theta2 float64
	Omega1, Omega2 float64
}

// StepPendulum advances the state by dt using semi-implicit Euler:
// accelerations are computed from the current state, velocities are
// updated and damped, then the angles advance with the new velocities.
func StepPendulum(s PendulumState, dt float64, p PendulumParams) PendulumState {
	a1, a2 := pendulumAccel(s, p)

	s.Omega1 = (s.Omega1 + a1*dt) * p.Damping
	s.Omega2 = (s.Omega2 + a2*dt) * p.Damping
	s.Theta1 += s.Omega1 * dt
	s.Theta2 += s.Omega2 * dt

	return s
}

// pendulumAccel returns the angular accelerations of both masses from
// the coupled equations of motion for two point masses on rigid
// massless rods.
func pendulumAccel(s PendulumState, p PendulumParams) (float64, float64) {
	m1, m2, l1, l2, g := p.M1, p.M2, p.L1, p.L2, p.Gravity

	delta := s.Theta2 - s.Theta1
	sinD, cosD := math.Sin(delta), math.Cos(delta)

	den1 := (m1+m2)*l1 - m2*l1*cosD*cosD
	den2 := (l2 / l1) * den1

	a1 := (m2*l1*s.Omega1*s.Omega1*sinD*cosD +
		m2*g*math.Sin(s.Theta2)*cosD +
		m2*l2*s.Omega2*s.Omega2*sinD -
		(m1+m2)*g*math.Sin(s.Theta1)) / den1

	a2 := (-m2*l2*s.Omega2*s.Omega2*sinD*cosD +
		(m1+m2)*g*math.Sin(s.Theta1)*cosD -
		(m1+m2)*l1*s.Omega1*s.Omega1*sinD -
		(m1+m2)*g*math.Sin(s.Theta2)) / den2

	return a1, a2
}

// BobPositions returns the Cartesian positions of both bobs relative
// to the pivot.
func BobPositions(s PendulumState, p PendulumParams) (x1, y1, x2, y2 float64) {
	x1 = p.L1 * math.Sin(s.Theta1)
	y1 = p.L1 * math.Cos(s.Theta1)
	x2 = x1 + p.L2*math.Sin(s.Theta2)
	y2 = y1 + p.L2*math.Cos(s.Theta2)
	return
}

// TrailPoint is one captured position of the second bob.
type TrailPoint struct {
	X, Y    float32
	Opacity float32
}

// Trail is a fixed-capacity ring buffer of the second bob's path.
// The oldest point is overwritten when the buffer is full, and every
// held point's opacity decays each frame independent of its position
// in the buffer.
type Trail struct {
	points []TrailPoint
	head   int
	count  int
	decay  float32
}

// NewTrail creates a trail with the given capacity and per-frame decay.
func NewTrail(capacity int, decay float32) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		points: make([]TrailPoint, capacity),
		decay:  decay,
	}
}

// Push records a new point at full opacity, dropping the oldest point
// if the buffer is full, and decays every held point.
func (t *Trail) Push(x, y float32) {
	t.points[t.head] = TrailPoint{X: x, Y: y, Opacity: 1}
	t.head = (t.head + 1) % len(t.points)
	if t.count < len(t.points) {
		t.count++
	}
	for i := range t.points {
		t.points[i].Opacity *= t.decay
	}
}

// Len returns the number of held points.
func (t *Trail) Len() int {
	return t.count
}

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) TrailPoint {
	idx := (t.head - t.count + i + len(t.points)) % len(t.points)
	return t.points[idx]
}
