package canvas

import "math"

// GestureCompositor merges classified gesture primitives into ordered
// mutations of one placement's TransformState.
//
// Pan, pinch, and rotate are continuous: each captures its own baseline
// on begin and applies cumulative deltas against that baseline on every
// update. Taps, long-press release, and flings are discrete nudges. All
// primitives may be live simultaneously (two-finger drag-scale-rotate is
// the common case) and compose by field-wise independence — each touches
// only its own fields. Any primitive's end runs a single finalize step
// that re-clamps scale and reports the full transform.
//
// The compositor is not safe for concurrent use; the host delivers
// gesture events for one object on a single goroutine (renderers read
// through TransformState.Snapshot).
type GestureCompositor struct {
	state *TransformState

	// Pan
	panActive bool
	panStartX float64
	panStartY float64

	// Pinch
	pinchActive bool
	pinchStart  float64

	// Rotate
	rotateActive bool
	rotateStart  float64

	// Long press
	longPressHeld bool

	// OnUpdate fires after every applied mutation with the current
	// transform. Dropped ticks (non-finite input) do not fire.
	OnUpdate func(Transform)

	// OnFinalize fires once per primitive end, after the defensive
	// re-clamp, with the full current transform.
	OnFinalize func(Transform)

	// Drag lifecycle, emitted purely from the pan primitive, carrying the
	// object's current center point. OnDragEnd fires only on a genuine
	// pan release; Cancel suppresses it so delete-zone evaluation never
	// runs on a platform cancel.
	OnDragBegin func(Vec2)
	OnDragMove  func(Vec2)
	OnDragEnd   func(Vec2)

	// OnLongPress reports held-state changes, used by the host to
	// suppress conflicting taps while a long press is active.
	OnLongPress func(held bool)
}

// NewGestureCompositor creates a compositor over the given initial
// transform.
func NewGestureCompositor(initial Transform) *GestureCompositor {
	return &GestureCompositor{state: NewTransformState(initial)}
}

// State returns the underlying transform state. Renderers use its
// Snapshot for tear-free reads.
func (g *GestureCompositor) State() *TransformState {
	return g.state
}

// Transform returns the writer-side current transform.
func (g *GestureCompositor) Transform() Transform {
	return g.state.Get()
}

// Active reports whether any continuous primitive or a long press is
// currently live (the Active half of the Idle/Active machine).
func (g *GestureCompositor) Active() bool {
	return g.panActive || g.pinchActive || g.rotateActive || g.longPressHeld
}

func (g *GestureCompositor) center() Vec2 {
	t := g.state.Get()
	return Vec2{X: t.X, Y: t.Y}
}

func (g *GestureCompositor) update() {
	if g.OnUpdate != nil {
		g.OnUpdate(g.state.Get())
	}
}

// finalize re-clamps scale once more and reports the full transform.
// Runs on every primitive end and on cancel.
func (g *GestureCompositor) finalize() {
	g.state.SetScale(g.state.Get().Scale)
	if g.OnFinalize != nil {
		g.OnFinalize(g.state.Get())
	}
}

// --- Pan ---

// PanBegin captures the pan baseline. A duplicate begin while a pan is
// already active is a no-op.
func (g *GestureCompositor) PanBegin() {
	if g.panActive {
		return
	}
	t := g.state.Get()
	g.panActive = true
	g.panStartX = t.X
	g.panStartY = t.Y
	if g.OnDragBegin != nil {
		g.OnDragBegin(g.center())
	}
}

// PanUpdate applies a cumulative translation against the baseline.
// Ignored when no pan is active; non-finite deltas drop the tick.
func (g *GestureCompositor) PanUpdate(dx, dy float64) {
	if !g.panActive || !finite(dx, dy) {
		return
	}
	g.state.SetPosition(g.panStartX+dx, g.panStartY+dy)
	g.update()
	if g.OnDragMove != nil {
		g.OnDragMove(g.center())
	}
}

// PanEnd ends the pan, emits the drag-end callback with the final center
// point, and finalizes. Ignored when no pan is active.
func (g *GestureCompositor) PanEnd() {
	if !g.panActive {
		return
	}
	g.panActive = false
	if g.OnDragEnd != nil {
		g.OnDragEnd(g.center())
	}
	g.finalize()
}

// --- Pinch ---

// PinchBegin captures the scale baseline.
func (g *GestureCompositor) PinchBegin() {
	if g.pinchActive {
		return
	}
	g.pinchActive = true
	g.pinchStart = g.state.Get().Scale
}

// PinchUpdate applies a relative scale factor against the baseline,
// clamped to [MinScale, MaxScale].
func (g *GestureCompositor) PinchUpdate(factor float64) {
	if !g.pinchActive || !finite(factor) {
		return
	}
	g.state.SetScale(g.pinchStart * factor)
	g.update()
}

// PinchEnd ends the pinch and finalizes.
func (g *GestureCompositor) PinchEnd() {
	if !g.pinchActive {
		return
	}
	g.pinchActive = false
	g.finalize()
}

// --- Rotate ---

// RotateBegin captures the rotation baseline.
func (g *GestureCompositor) RotateBegin() {
	if g.rotateActive {
		return
	}
	g.rotateActive = true
	g.rotateStart = g.state.Get().Rotation
}

// RotateUpdate applies a relative rotation delta in radians against the
// baseline. Stored rotation is degrees and unbounded.
func (g *GestureCompositor) RotateUpdate(rad float64) {
	if !g.rotateActive || !finite(rad) {
		return
	}
	g.state.SetRotation(g.rotateStart + rad*180/math.Pi)
	g.update()
}

// RotateEnd ends the rotation and finalizes.
func (g *GestureCompositor) RotateEnd() {
	if !g.rotateActive {
		return
	}
	g.rotateActive = false
	g.finalize()
}

// --- Discrete nudges ---

func (g *GestureCompositor) nudgeScale(factor float64) {
	g.state.SetScale(g.state.Get().Scale * factor)
	g.update()
	g.finalize()
}

// Tap applies the single-tap nudge-up (scale ×1.12, clamped).
func (g *GestureCompositor) Tap() {
	g.nudgeScale(tapNudgeFactor)
}

// DoubleTap applies the double-tap nudge-up (scale ×1.25, clamped).
func (g *GestureCompositor) DoubleTap() {
	g.nudgeScale(doubleTapNudgeFactor)
}

// LongPressBegin marks the long press held and signals collaborators.
// The shrink is applied on release, not while held.
func (g *GestureCompositor) LongPressBegin() {
	if g.longPressHeld {
		return
	}
	g.longPressHeld = true
	if g.OnLongPress != nil {
		g.OnLongPress(true)
	}
}

// LongPressEnd releases the long press, applies the shrink nudge
// (scale ×0.8, clamped), and finalizes.
func (g *GestureCompositor) LongPressEnd() {
	if !g.longPressHeld {
		return
	}
	g.longPressHeld = false
	if g.OnLongPress != nil {
		g.OnLongPress(false)
	}
	g.nudgeScale(longPressShrinkFactor)
}

// Fling applies a directional fling nudge: vertical flings scale,
// horizontal flings rotate by 15 degrees.
func (g *GestureCompositor) Fling(dir FlingDirection) {
	switch dir {
	case FlingUp:
		g.nudgeScale(flingUpFactor)
	case FlingDown:
		g.nudgeScale(flingDownFactor)
	case FlingLeft:
		g.state.SetRotation(g.state.Get().Rotation - flingRotateDegrees)
		g.update()
		g.finalize()
	case FlingRight:
		g.state.SetRotation(g.state.Get().Rotation + flingRotateDegrees)
		g.update()
		g.finalize()
	}
}

// Cancel treats a platform interruption as the end of every live
// primitive for clamping purposes: all primitives go idle and a single
// finalize runs. The drag-end callback is suppressed, so the delete zone
// is never evaluated for a cancelled drag. A cancel with nothing active
// is a no-op.
func (g *GestureCompositor) Cancel() {
	if !g.Active() {
		return
	}
	g.panActive = false
	g.pinchActive = false
	g.rotateActive = false
	if g.longPressHeld {
		g.longPressHeld = false
		if g.OnLongPress != nil {
			g.OnLongPress(false)
		}
	}
	g.finalize()
}
