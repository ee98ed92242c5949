// Package canvas is the interaction engine behind the decorating canvas:
// gestures in, geometry out.
//
// It owns the algorithmic core of the canvas screen — per-placement
// transforms driven by composable gesture primitives, delete-zone hit
// testing during drags, deterministic freehand stroke modeling, and
// drag-to-reorder over the inventory grid. It deliberately owns nothing
// else: no rendering, no persistence, no screen chrome. Every output is
// plain geometric or structural data delivered through callbacks for the
// host application to draw and store.
//
// # Core objects
//
// [Canvas] owns the placement list, the live stroke, the committed stroke
// list, the single global drag state, and the delete zone. Placements are
// flat records ([Placement]); while a gesture is active their geometry
// lives in a [GestureCompositor] and is written back on finalize.
//
//	c := canvas.NewCanvas()
//	c.OnPlacementUpdate = func(id string, t canvas.Transform) { /* redraw */ }
//	p := canvas.NewEmojiPlacement("sparkles", 120, 80)
//	c.AddPlacement(p)
//
//	g := c.Gesture(p.ID)
//	g.PanBegin()
//	g.PanUpdate(24, -10)
//	g.PanEnd()
//
// # Gesture primitives
//
// Pan, pinch, and rotate are continuous primitives with capture-at-start
// semantics; taps, long-press, and directional flings are discrete scale
// and rotation nudges. All primitives may be live at once and compose by
// touching disjoint fields. Scale is always clamped to
// [MinScale, MaxScale].
//
// # Strokes
//
// In drawing mode, raw pointer samples feed a live [Stroke] whose modeled
// point sequence is recomputed after every sample by [ModelStroke] — a
// pure, seeded function, so a committed stroke re-renders identically
// forever. [BuildSegments] turns modeled points into oriented segment
// geometry with tapered thickness for a renderer to consume.
//
// # Input
//
// The engine consumes already-classified primitives, so any gesture
// source works. [Pointer] is the built-in classifier: it polls Ebitengine
// mouse and touch state each tick and recognizes pan, pinch/rotate, tap,
// double-tap, long-press, and fling. Synthetic injection
// ([Pointer.InjectDrag] and friends) drives the same code path without a
// real input device.
package canvas
