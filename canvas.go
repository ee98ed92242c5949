package canvas

import (
	"image/color"
	"math"
)

// Scale bounds for placements. Every mutation path re-clamps before
// storing, so a committed Placement can never leave this range.
const (
	MinScale = 0.6
	MaxScale = 2.4
)

// Discrete nudge factors applied by tap, double-tap, long-press, and
// vertical flings. Horizontal flings rotate by flingRotateDegrees instead.
const (
	tapNudgeFactor        = 1.12
	doubleTapNudgeFactor  = 1.25
	longPressShrinkFactor = 0.8
	flingUpFactor         = 1.15
	flingDownFactor       = 0.85
	flingRotateDegrees    = 15.0
)

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default pen tint.
var ColorWhite = Color{1, 1, 1, 1}

// ToRGBA converts to a standard 8-bit color for renderers.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// StrokePoint is a single sample of a freehand stroke, raw or modeled.
type StrokePoint struct {
	X, Y float64
}

// PlacementKind distinguishes the payload carried by a Placement.
type PlacementKind uint8

const (
	KindEmoji PlacementKind = iota // references an emoji catalog id
	KindPhoto                      // references an image URI
	KindText                       // carries literal text with color and style
)

// FlingDirection identifies a directional fling gesture.
type FlingDirection uint8

const (
	FlingUp    FlingDirection = iota // scale up nudge
	FlingDown                        // scale down nudge
	FlingLeft                        // rotate counterclockwise 15 degrees
	FlingRight                       // rotate clockwise 15 degrees
)

// EventType identifies a kind of engine event for the event sink bridge.
type EventType uint8

const (
	EventPlacementUpdate EventType = iota // fires on every gesture tick and on finalize
	EventDragBegin                        // fires when a placement pan begins
	EventDragMove                         // fires on every pan tick
	EventDragEnd                          // fires on genuine pan release (never on cancel)
	EventPlacementRemoved                 // fires when a drop lands in the delete zone
	EventLongPress                        // fires when the long-press held state changes
	EventStrokeCommitted                  // fires once per completed stroke
	EventOrderChanged                     // fires per committed inventory reorder
)

// EventSink is the interface for optional event-bus integration.
// When set on a Canvas or Reorderer, engine events are forwarded to it
// in addition to the direct callbacks.
type EventSink interface {
	Emit(event EngineEvent)
}

// EngineEvent carries engine output for the event sink bridge. Only the
// fields relevant to Type are populated.
type EngineEvent struct {
	Type        EventType
	PlacementID string
	Transform   Transform
	Point       Vec2
	Deleted     bool // valid for EventDragEnd
	Held        bool // valid for EventLongPress
	Stroke      *Stroke
	Order       []string
}

// --- Numeric helpers ---

// clampScale clamps a scale factor to the placement bounds.
func clampScale(s float64) float64 {
	return math.Min(MaxScale, math.Max(MinScale, s))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// finite reports whether every value is a real number. Malformed touch
// samples (NaN or infinite deltas) must never corrupt stored geometry,
// so gesture updates drop the tick when this fails.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
