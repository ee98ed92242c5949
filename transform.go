package canvas

import (
	"math"
	"sync/atomic"
)

// Transform is the geometry of one placed object: canvas-space position,
// uniform scale, and rotation in degrees. Rotation is stored unbounded;
// renderers that want a display angle use RotationWrapped.
type Transform struct {
	X, Y     float64
	Scale    float64
	Rotation float64
}

// RotationWrapped returns the rotation wrapped to [0, 360) for display.
// The stored value is never wrapped.
func (t Transform) RotationWrapped() float64 {
	r := math.Mod(t.Rotation, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// TransformState holds the live geometry of one placement while a gesture
// is active. Writes follow a single-writer discipline: the gesture event
// thread mutates through the setters, each of which publishes a fresh
// snapshot. Renderers on other goroutines call Snapshot and get all four
// fields from the same committed write, never a torn mix.
type TransformState struct {
	cur  Transform // writer's working copy
	snap atomic.Pointer[Transform]
}

// NewTransformState creates a state seeded from t. Scale is clamped and a
// zero scale is promoted to 1 so a zero-value Transform is usable.
func NewTransformState(t Transform) *TransformState {
	if t.Scale == 0 {
		t.Scale = 1
	}
	t.Scale = clampScale(t.Scale)
	s := &TransformState{cur: t}
	s.publish()
	return s
}

// Get returns the writer-side current transform. Only the gesture thread
// may call this; readers use Snapshot.
func (s *TransformState) Get() Transform {
	return s.cur
}

// Snapshot returns the last published transform. Safe to call from any
// goroutine.
func (s *TransformState) Snapshot() Transform {
	return *s.snap.Load()
}

// SetPosition sets X and Y. Non-finite values drop the tick.
func (s *TransformState) SetPosition(x, y float64) {
	if !finite(x, y) {
		return
	}
	s.cur.X = x
	s.cur.Y = y
	s.publish()
}

// SetScale sets the clamped scale. Non-finite values drop the tick.
func (s *TransformState) SetScale(scale float64) {
	if !finite(scale) {
		return
	}
	s.cur.Scale = clampScale(scale)
	s.publish()
}

// SetRotation sets the rotation in degrees. Non-finite values drop the tick.
func (s *TransformState) SetRotation(deg float64) {
	if !finite(deg) {
		return
	}
	s.cur.Rotation = deg
	s.publish()
}

// publish commits the working copy for readers. The stored pointer is
// swapped whole, so a concurrent Snapshot sees either the previous or the
// new transform, never a mix.
func (s *TransformState) publish() {
	t := s.cur
	s.snap.Store(&t)
}
