package canvas

import (
	"math"
	"sync"
	"testing"
)

func TestRotationWrapped(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"within", 270, 270},
		{"full turn", 360, 0},
		{"beyond", 450, 90},
		{"negative", -15, 345},
		{"many turns", 720 + 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform{Rotation: tt.in}.RotationWrapped()
			assertNear(t, "RotationWrapped", got, tt.want)
		})
	}
}

func TestNewTransformStateDefaults(t *testing.T) {
	s := NewTransformState(Transform{})
	if got := s.Get().Scale; got != 1 {
		t.Errorf("zero-value scale promoted to %v, want 1", got)
	}

	s = NewTransformState(Transform{Scale: 10})
	if got := s.Get().Scale; got != MaxScale {
		t.Errorf("oversized seed scale = %v, want %v", got, MaxScale)
	}
}

func TestTransformStateSetters(t *testing.T) {
	s := NewTransformState(Transform{X: 1, Y: 2, Scale: 1, Rotation: 45})

	s.SetPosition(10, 20)
	s.SetScale(1.5)
	s.SetRotation(90)

	got := s.Get()
	want := Transform{X: 10, Y: 20, Scale: 1.5, Rotation: 90}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if snap := s.Snapshot(); snap != want {
		t.Errorf("Snapshot() = %+v, want %+v", snap, want)
	}
}

func TestTransformStateScaleClamped(t *testing.T) {
	s := NewTransformState(Transform{Scale: 1})
	s.SetScale(100)
	assertNear(t, "over max", s.Get().Scale, MaxScale)
	s.SetScale(0.001)
	assertNear(t, "under min", s.Get().Scale, MinScale)
}

func TestTransformStateDropsNonFinite(t *testing.T) {
	s := NewTransformState(Transform{X: 5, Y: 6, Scale: 1.2, Rotation: 30})
	before := s.Get()

	s.SetPosition(math.NaN(), 0)
	s.SetPosition(0, math.Inf(1))
	s.SetScale(math.NaN())
	s.SetRotation(math.Inf(-1))

	if got := s.Get(); got != before {
		t.Errorf("malformed ticks mutated state: %+v, want %+v", got, before)
	}
	if snap := s.Snapshot(); snap != before {
		t.Errorf("malformed ticks published: %+v, want %+v", snap, before)
	}
}

// Snapshot must never return a torn mix of two writes: all four fields
// come from the same publish.
func TestTransformStateSnapshotConsistency(t *testing.T) {
	s := NewTransformState(Transform{X: 0, Y: 0, Scale: 1})

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			snap := s.Snapshot()
			// Writers always keep X == Y; a torn read would break that.
			if snap.X != snap.Y {
				t.Errorf("torn snapshot: %+v", snap)
				return
			}
			if snap.Scale < MinScale || snap.Scale > MaxScale {
				t.Errorf("snapshot scale out of bounds: %v", snap.Scale)
				return
			}
		}
	}()

	for i := 0; i < 10000; i++ {
		v := float64(i)
		s.SetPosition(v, v)
		s.SetScale(0.5 + float64(i%30)*0.1)
	}
	close(stop)
	wg.Wait()
}
