package canvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NudgeAnimation eases one transform field toward its post-nudge value
// instead of snapping, replicating the source app's settle feel for the
// tap, double-tap, long-press, and fling affordances. The synchronous
// compositor nudges remain the authoritative instant path; an animation
// is opt-in sugar over the same TransformState.
//
// Scale writes go through the state's clamped setter, so the clamp
// invariant holds at every intermediate frame, not just at the end.
//
// There is no global animation manager — hosts call Update each frame.
type NudgeAnimation struct {
	tween *gween.Tween
	state *TransformState
	apply func(*TransformState, float64)
	Done  bool
}

// Update advances the animation by dt seconds and writes the current
// value to the transform state.
func (a *NudgeAnimation) Update(dt float32) {
	if a.Done {
		return
	}
	val, finished := a.tween.Update(dt)
	a.apply(a.state, float64(val))
	a.Done = finished
}

// NudgeScale creates an animation easing the state's scale to a target
// multiple of its current value, clamped to [MinScale, MaxScale].
func NudgeScale(state *TransformState, factor float64, duration float32, fn ease.TweenFunc) *NudgeAnimation {
	from := state.Get().Scale
	to := clampScale(from * factor)
	return &NudgeAnimation{
		tween: gween.New(float32(from), float32(to), duration, fn),
		state: state,
		apply: (*TransformState).SetScale,
	}
}

// NudgeRotation creates an animation easing the state's rotation by a
// relative delta in degrees.
func NudgeRotation(state *TransformState, deltaDeg float64, duration float32, fn ease.TweenFunc) *NudgeAnimation {
	from := state.Get().Rotation
	return &NudgeAnimation{
		tween: gween.New(float32(from), float32(from+deltaDeg), duration, fn),
		state: state,
		apply: (*TransformState).SetRotation,
	}
}
