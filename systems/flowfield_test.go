package systems

import (
	"math"
	"testing"
)

func testFlowParams(count int) FlowParams {
	return FlowParams{
		EntityCount:       count,
		FieldScale:        0.003,
		TimeScale:         0.0002,
		Speed:             1.2,
		MinAge:            200,
		MaxAge:            600,
		InfluenceRadius:   140,
		InfluenceStrength: 0.35,
	}
}

func TestFlowFieldDeterministicInit(t *testing.T) {
	bounds := Bounds{Width: 640, Height: 480}
	a := NewFlowFieldSystem(bounds, 42, testFlowParams(100))
	b := NewFlowFieldSystem(bounds, 42, testFlowParams(100))

	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d differs after init: %+v vs %+v", i, a.Particles[i], b.Particles[i])
		}
	}
}

func TestFlowFieldDeterministicAfterSteps(t *testing.T) {
	bounds := Bounds{Width: 640, Height: 480}
	a := NewFlowFieldSystem(bounds, 7, testFlowParams(50))
	b := NewFlowFieldSystem(bounds, 7, testFlowParams(50))

	for tick := int32(1); tick <= 500; tick++ {
		a.Update(tick, Pointer{})
		b.Update(tick, Pointer{})
	}

	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d diverged after 500 frames: %+v vs %+v", i, a.Particles[i], b.Particles[i])
		}
	}
}

func TestFlowFieldLiveness(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	s := NewFlowFieldSystem(bounds, 99, testFlowParams(800))

	for tick := int32(1); tick <= 10000; tick++ {
		s.Update(tick, Pointer{})

		// Invariants hold at every frame boundary
		for i := range s.Particles {
			p := &s.Particles[i]
			if p.Age < 0 || p.Age > p.MaxAge {
				t.Fatalf("tick %d: particle %d age %d outside [0,%d]", tick, i, p.Age, p.MaxAge)
			}
			if p.X < 0 || p.X > bounds.Width || p.Y < 0 || p.Y > bounds.Height {
				t.Fatalf("tick %d: particle %d at (%f,%f) outside bounds", tick, i, p.X, p.Y)
			}
		}
	}
}

func TestFlowFieldPoolSizeConstant(t *testing.T) {
	s := NewFlowFieldSystem(Bounds{Width: 200, Height: 200}, 1, testFlowParams(64))

	for tick := int32(1); tick <= 2000; tick++ {
		s.Update(tick, Pointer{X: 100, Y: 100, Active: true})
		if s.Count() != 64 {
			t.Fatalf("tick %d: pool size changed to %d", tick, s.Count())
		}
	}
}

func TestFlowFieldPointerSteering(t *testing.T) {
	// With full influence strength a particle inside the radius must
	// move toward the pointer rather than along the raw noise angle.
	p := testFlowParams(1)
	p.InfluenceStrength = 1
	p.Speed = 1
	s := NewFlowFieldSystem(Bounds{Width: 400, Height: 400}, 5, p)

	s.Particles[0].X = 200
	s.Particles[0].Y = 200
	ptr := Pointer{X: 210, Y: 200, Active: true}

	s.Update(1, ptr)

	pt := &s.Particles[0]
	before := math.Hypot(float64(200-ptr.X), float64(200-ptr.Y))
	after := math.Hypot(float64(pt.X-ptr.X), float64(pt.Y-ptr.Y))
	if after >= before {
		t.Errorf("particle moved away from pointer: %f -> %f", before, after)
	}
}

func TestFlowFieldInactivePointerNoSteering(t *testing.T) {
	// An inactive pointer must behave as no pointer, not as (0,0).
	bounds := Bounds{Width: 400, Height: 400}
	a := NewFlowFieldSystem(bounds, 11, testFlowParams(50))
	b := NewFlowFieldSystem(bounds, 11, testFlowParams(50))

	for tick := int32(1); tick <= 200; tick++ {
		a.Update(tick, Pointer{})
		b.Update(tick, Pointer{X: 0, Y: 0, Active: false})
	}

	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("inactive pointer changed particle %d", i)
		}
	}
}

func TestFlowFieldDegenerate(t *testing.T) {
	// Zero entities and zero-area bounds must not panic or loop
	empty := NewFlowFieldSystem(Bounds{Width: 100, Height: 100}, 1, testFlowParams(0))
	empty.Update(1, Pointer{})
	if empty.Count() != 0 {
		t.Errorf("expected empty pool, got %d", empty.Count())
	}

	flat := NewFlowFieldSystem(Bounds{}, 1, testFlowParams(10))
	flat.Update(1, Pointer{})
}
