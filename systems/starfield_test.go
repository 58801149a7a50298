package systems

import (
	"math"
	"testing"
)

func testStarParams(count int) StarFieldParams {
	return StarFieldParams{
		EntityCount:   count,
		RotationSpeed: 0.0004,
		TwinkleMin:    0.01,
		TwinkleMax:    0.05,
	}
}

func TestStarFieldDeterministic(t *testing.T) {
	a := NewStarFieldSystem(42, testStarParams(100))
	b := NewStarFieldSystem(42, testStarParams(100))

	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differs: %+v vs %+v", i, a.Stars[i], b.Stars[i])
		}
	}
}

func TestStarFieldOnUnitSphere(t *testing.T) {
	s := NewStarFieldSystem(7, testStarParams(500))

	for i, st := range s.Stars {
		r := math.Sqrt(float64(st.X*st.X + st.Y*st.Y + st.Z*st.Z))
		if math.Abs(r-1) > 1e-5 {
			t.Errorf("star %d off the unit sphere: r=%f", i, r)
		}
	}
}

func TestStarFieldAngularPositionsStatic(t *testing.T) {
	s := NewStarFieldSystem(3, testStarParams(50))
	before := make([]Star, len(s.Stars))
	copy(before, s.Stars)

	for tick := int32(1); tick <= 1000; tick++ {
		s.Update(tick)
	}

	for i := range s.Stars {
		if s.Stars[i] != before[i] {
			t.Errorf("star %d moved on the sphere", i)
		}
	}
}

func TestStarFieldRotationPreservesRadius(t *testing.T) {
	s := NewStarFieldSystem(11, testStarParams(100))
	s.Update(5000)

	for i := range s.Stars {
		x, y, z := s.RotatedPosition(i)
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(r-1) > 1e-5 {
			t.Errorf("rotated star %d off the sphere: r=%f", i, r)
		}
	}
}

func TestStarFieldTwinkleRange(t *testing.T) {
	s := NewStarFieldSystem(13, testStarParams(100))

	for tick := int32(0); tick < 2000; tick += 37 {
		for i := range s.Stars {
			op := s.Twinkle(i, tick)
			base := s.Stars[i].BaseOpacity
			if op < base*0.4-1e-5 || op > base+1e-5 {
				t.Fatalf("star %d twinkle %f outside [%f,%f]", i, op, base*0.4, base)
			}
		}
	}
}
