package canvas

import "github.com/google/uuid"

// Stroke is one freehand mark: the raw pointer samples plus the modeled
// sequence derived from them. Modeled is always ModelStroke(Points,
// Preset(Style), Seed) — it is recomputed on every append and never
// mutated independently, so persisting (Points, Style, Seed) is enough
// to reproduce the mark exactly.
type Stroke struct {
	ID      string
	Color   Color
	Size    float64 // pen size in px, before preset scaling
	Style   BrushStyle
	Seed    float64 // fixed at creation, in [0, 1)
	Points  []StrokePoint
	Modeled []StrokePoint
}

// remodel recomputes the modeled sequence from the raw points.
func (s *Stroke) remodel() {
	s.Modeled = ModelStroke(s.Points, Preset(s.Style), s.Seed)
}

// Segments returns the stroke's renderable segment geometry.
func (s *Stroke) Segments() []Segment {
	return BuildSegments(s.Modeled, Preset(s.Style), s.Size)
}

// --- Canvas stroke capture ---

// SetDrawingMode toggles drawing mode. While off, BeginStroke is a
// no-op. Turning it off with a stroke in flight commits that stroke.
func (c *Canvas) SetDrawingMode(on bool) {
	if !on && c.current != nil {
		c.EndStroke()
	}
	c.drawingMode = on
}

// DrawingMode reports whether drawing mode is active.
func (c *Canvas) DrawingMode() bool {
	return c.drawingMode
}

// SetPen sets the pen selection read at stroke creation. Changing it
// mid-stroke does not affect the stroke in flight.
func (c *Canvas) SetPen(col Color, size float64, style BrushStyle) {
	c.penColor = col
	c.penSize = size
	c.penStyle = style
}

// BeginStroke starts a new live stroke at the touch-down point, reading
// the current pen selection and drawing a fresh seed. A stroke already
// in flight is committed first (a missed touch-up must not merge two
// marks). No-op outside drawing mode.
func (c *Canvas) BeginStroke(x, y float64) {
	if !c.drawingMode {
		return
	}
	if c.current != nil {
		c.EndStroke()
	}
	c.current = &Stroke{
		ID:    uuid.NewString(),
		Color: c.penColor,
		Size:  c.penSize,
		Style: c.penStyle,
		Seed:  c.seedFunc(),
	}
	c.AppendStrokePoint(x, y)
}

// AppendStrokePoint appends a touch-move sample to the live stroke and
// recomputes its modeled sequence. Non-finite samples are dropped; a
// call with no stroke in flight is a no-op.
func (c *Canvas) AppendStrokePoint(x, y float64) {
	if c.current == nil || !finite(x, y) {
		return
	}
	c.current.Points = append(c.current.Points, StrokePoint{X: x, Y: y})
	c.current.remodel()
}

// CurrentStroke returns the stroke in flight, or nil.
func (c *Canvas) CurrentStroke() *Stroke {
	return c.current
}

// EndStroke commits the live stroke on touch-up or cancel. A stroke
// with no points is discarded, not committed. Returns the committed
// stroke, or nil.
func (c *Canvas) EndStroke() *Stroke {
	s := c.current
	c.current = nil
	if s == nil || len(s.Points) == 0 {
		return nil
	}
	c.strokes = append(c.strokes, s)
	c.debugf("stroke committed: %s (%d raw, %d modeled)", s.ID, len(s.Points), len(s.Modeled))
	if c.OnStrokeCommitted != nil {
		c.OnStrokeCommitted(s)
	}
	c.emit(EngineEvent{Type: EventStrokeCommitted, Stroke: s})
	return s
}

// Strokes returns the committed strokes in commit order. The returned
// slice is the canvas's own; callers must not mutate it.
func (c *Canvas) Strokes() []*Stroke {
	return c.strokes
}

// UndoStroke removes and returns the most recently committed stroke.
// Returns nil when there is nothing to undo.
func (c *Canvas) UndoStroke() *Stroke {
	if len(c.strokes) == 0 {
		return nil
	}
	s := c.strokes[len(c.strokes)-1]
	c.strokes = c.strokes[:len(c.strokes)-1]
	return s
}

// ClearStrokes discards all committed strokes.
func (c *Canvas) ClearStrokes() {
	c.strokes = nil
}
