package canvas

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Placement is one decorative object on the canvas. A single flat struct
// is used for all kinds; only the payload fields for Kind are meaningful.
type Placement struct {
	ID   string
	Kind PlacementKind

	// Geometry. Mutated exclusively through gesture finalize; while a
	// gesture is live the authoritative values are in the compositor.
	X, Y     float64
	Scale    float64
	Rotation float64

	// Kind-specific payload.
	Emoji     string // KindEmoji: emoji catalog id
	ImageURI  string // KindPhoto
	Text      string // KindText
	TextColor Color  // KindText
	TextStyle string // KindText
}

// Transform returns the placement's persisted geometry.
func (p *Placement) Transform() Transform {
	return Transform{X: p.X, Y: p.Y, Scale: p.Scale, Rotation: p.Rotation}
}

func newPlacement(kind PlacementKind, x, y float64) *Placement {
	return &Placement{
		ID:    uuid.NewString(),
		Kind:  kind,
		X:     x,
		Y:     y,
		Scale: 1,
	}
}

// NewEmojiPlacement creates an emoji placement at (x, y) with scale 1
// and rotation 0.
func NewEmojiPlacement(emoji string, x, y float64) *Placement {
	p := newPlacement(KindEmoji, x, y)
	p.Emoji = emoji
	return p
}

// NewPhotoPlacement creates a photo placement at (x, y).
func NewPhotoPlacement(imageURI string, x, y float64) *Placement {
	p := newPlacement(KindPhoto, x, y)
	p.ImageURI = imageURI
	return p
}

// NewTextPlacement creates a text placement at (x, y).
func NewTextPlacement(text string, col Color, style string, x, y float64) *Placement {
	p := newPlacement(KindText, x, y)
	p.Text = text
	p.TextColor = col
	p.TextStyle = style
	return p
}

// DragState is the single live drag, at most one system-wide.
type DragState struct {
	ActiveID string
	Point    Vec2
}

// Canvas owns the interaction state of one decorating screen: the
// placement list, the per-placement gesture compositors, the global drag
// state, the delete zone, the live stroke, and the committed strokes.
// All host outputs are delivered through the On* callbacks; setting them
// is optional.
//
// Canvas is driven from a single gesture-event goroutine. Renderers on
// other goroutines read live geometry through
// Gesture(id).State().Snapshot().
type Canvas struct {
	placements  []*Placement
	compositors map[string]*GestureCompositor

	drag       *DragState
	deleteZone DeleteZoneDetector

	drawingMode bool
	penColor    Color
	penSize     float64
	penStyle    BrushStyle
	current     *Stroke
	strokes     []*Stroke

	// SeedFunc supplies the seed for each new stroke, in [0, 1).
	// Tests pin it; the default is math/rand/v2.
	seedFunc func() float64

	sink  EventSink
	debug bool

	// OnPlacementUpdate fires on every gesture tick and once more on
	// finalize with the placement's current transform.
	OnPlacementUpdate func(id string, t Transform)

	// Drag lifecycle for delete-zone feedback and the commit/removal
	// decision. OnDragEnd carries the authoritative delete verdict.
	OnDragBegin func(id string, p Vec2)
	OnDragMove  func(id string, p Vec2)
	OnDragEnd   func(id string, p Vec2, deleted bool)

	// OnPlacementRemoved fires when a drop lands in the delete zone or
	// RemovePlacement is called.
	OnPlacementRemoved func(id string)

	// OnLongPress mirrors the compositor's held signal with the
	// placement id attached.
	OnLongPress func(id string, held bool)

	// OnStrokeCommitted fires once per completed stroke.
	OnStrokeCommitted func(s *Stroke)
}

// NewCanvas creates an empty canvas with the pen defaulting to a white
// pen-style brush of size 8.
func NewCanvas() *Canvas {
	return &Canvas{
		compositors: make(map[string]*GestureCompositor),
		penColor:    ColorWhite,
		penSize:     8,
		penStyle:    BrushPen,
		seedFunc:    rand.Float64,
	}
}

// SetSeedFunc overrides the stroke seed source. Passing nil restores
// the default.
func (c *Canvas) SetSeedFunc(fn func() float64) {
	if fn == nil {
		fn = rand.Float64
	}
	c.seedFunc = fn
}

// SetEventSink attaches an optional event bridge. All callback traffic
// is mirrored to it.
func (c *Canvas) SetEventSink(sink EventSink) {
	c.sink = sink
}

func (c *Canvas) emit(e EngineEvent) {
	if c.sink != nil {
		c.sink.Emit(e)
	}
}

// --- Placements ---

// AddPlacement adds a placement created by the host's place action.
func (c *Canvas) AddPlacement(p *Placement) {
	c.placements = append(c.placements, p)
}

// Placements returns the canvas's placements in z-order (oldest first).
// The returned slice is the canvas's own; callers must not mutate it.
func (c *Canvas) Placements() []*Placement {
	return c.placements
}

// PlacementByID returns the placement with the given id, or nil.
func (c *Canvas) PlacementByID(id string) *Placement {
	for _, p := range c.placements {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RemovePlacement removes a placement by id and reports whether it was
// present. Any live gesture state for it is discarded.
func (c *Canvas) RemovePlacement(id string) bool {
	for i, p := range c.placements {
		if p.ID != id {
			continue
		}
		c.placements = append(c.placements[:i], c.placements[i+1:]...)
		delete(c.compositors, id)
		if c.drag != nil && c.drag.ActiveID == id {
			c.drag = nil
		}
		c.debugf("placement removed: %s", id)
		if c.OnPlacementRemoved != nil {
			c.OnPlacementRemoved(id)
		}
		c.emit(EngineEvent{Type: EventPlacementRemoved, PlacementID: id})
		return true
	}
	return false
}

// --- Gestures ---

// Gesture returns the compositor for the placement with the given id,
// creating and wiring it from the placement's persisted geometry if no
// gesture is live. Returns nil for an unknown id.
func (c *Canvas) Gesture(id string) *GestureCompositor {
	if g, ok := c.compositors[id]; ok {
		return g
	}
	p := c.PlacementByID(id)
	if p == nil {
		return nil
	}
	g := NewGestureCompositor(p.Transform())
	c.wireCompositor(id, g)
	c.compositors[id] = g
	return g
}

// LiveTransform returns the transform a renderer should draw the
// placement at: the live gesture snapshot when one is in flight,
// otherwise the persisted geometry. Unlike Gesture it never
// instantiates a compositor. Reports false for an unknown id.
func (c *Canvas) LiveTransform(id string) (Transform, bool) {
	if g, ok := c.compositors[id]; ok {
		return g.State().Snapshot(), true
	}
	p := c.PlacementByID(id)
	if p == nil {
		return Transform{}, false
	}
	return p.Transform(), true
}

func (c *Canvas) wireCompositor(id string, g *GestureCompositor) {
	g.OnUpdate = func(t Transform) {
		if c.OnPlacementUpdate != nil {
			c.OnPlacementUpdate(id, t)
		}
		c.emit(EngineEvent{Type: EventPlacementUpdate, PlacementID: id, Transform: t})
	}
	g.OnFinalize = func(t Transform) {
		c.finalizePlacement(id, t)
	}
	g.OnDragBegin = func(pt Vec2) {
		// Defensively overwrite: the gesture system guarantees at most
		// one live drag, but a stale one must not corrupt the new one.
		c.drag = &DragState{ActiveID: id, Point: pt}
		c.debugf("drag begin: %s at (%.1f, %.1f)", id, pt.X, pt.Y)
		if c.OnDragBegin != nil {
			c.OnDragBegin(id, pt)
		}
		c.emit(EngineEvent{Type: EventDragBegin, PlacementID: id, Point: pt})
	}
	g.OnDragMove = func(pt Vec2) {
		if c.drag == nil || c.drag.ActiveID != id {
			c.drag = &DragState{ActiveID: id}
		}
		c.drag.Point = pt
		if c.OnDragMove != nil {
			c.OnDragMove(id, pt)
		}
		c.emit(EngineEvent{Type: EventDragMove, PlacementID: id, Point: pt})
	}
	g.OnDragEnd = func(pt Vec2) {
		deleted := c.deleteZone.Contains(pt.X, pt.Y)
		c.drag = nil
		c.debugf("drag end: %s at (%.1f, %.1f) deleted=%v", id, pt.X, pt.Y, deleted)
		if deleted {
			c.RemovePlacement(id)
		}
		if c.OnDragEnd != nil {
			c.OnDragEnd(id, pt, deleted)
		}
		c.emit(EngineEvent{Type: EventDragEnd, PlacementID: id, Point: pt, Deleted: deleted})
	}
	g.OnLongPress = func(held bool) {
		if c.OnLongPress != nil {
			c.OnLongPress(id, held)
		}
		c.emit(EngineEvent{Type: EventLongPress, PlacementID: id, Held: held})
	}
}

// finalizePlacement writes a finalized transform back into the owning
// placement and retires the compositor once every primitive is idle.
// A placement deleted mid-gesture has nothing to write back to.
func (c *Canvas) finalizePlacement(id string, t Transform) {
	if p := c.PlacementByID(id); p != nil {
		p.X = t.X
		p.Y = t.Y
		p.Scale = clampScale(t.Scale)
		p.Rotation = t.Rotation
		if c.OnPlacementUpdate != nil {
			c.OnPlacementUpdate(id, p.Transform())
		}
		c.emit(EngineEvent{Type: EventPlacementUpdate, PlacementID: id, Transform: p.Transform()})
	}
	if g, ok := c.compositors[id]; ok && !g.Active() {
		delete(c.compositors, id)
	}
}

// CancelGesture cancels any live gesture on the placement: state is
// clamped and written back, but the delete zone is not evaluated.
func (c *Canvas) CancelGesture(id string) {
	g, ok := c.compositors[id]
	if !ok {
		return
	}
	if c.drag != nil && c.drag.ActiveID == id {
		c.drag = nil
	}
	g.Cancel()
}

// --- Drag state and delete zone ---

// DragState returns a copy of the live drag and whether one is active.
func (c *Canvas) DragState() (DragState, bool) {
	if c.drag == nil {
		return DragState{}, false
	}
	return *c.drag, true
}

// SetDeleteZoneRect supplies the delete target's screen rectangle from
// the host's layout callback.
func (c *Canvas) SetDeleteZoneRect(r Rect) {
	c.deleteZone.SetRect(r)
}

// DeleteZone returns the detector for direct queries (center, radius).
func (c *Canvas) DeleteZone() *DeleteZoneDetector {
	return &c.deleteZone
}

// DragOverDeleteZone reports whether the live drag point is currently
// inside the delete zone, for highlight feedback. False when no drag is
// active or the zone is not laid out.
func (c *Canvas) DragOverDeleteZone() bool {
	return c.drag != nil && c.deleteZone.Contains(c.drag.Point.X, c.drag.Point.Y)
}
