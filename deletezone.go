package canvas

// deleteZoneSlop widens the hit radius beyond the target's visual bounds
// so a drop that grazes the edge still counts.
const deleteZoneSlop = 24.0

// DeleteZoneDetector is a stateless geometric test of whether a point
// lies within the fixed circular deletion target. The target's screen
// rectangle is captured once via a layout callback; before that, every
// test reports false.
//
// It is evaluated continuously during a drag for highlight feedback and
// once, authoritatively, at drag end to decide commit versus delete.
// Purely a predicate; no side effects.
type DeleteZoneDetector struct {
	rect    Rect
	hasRect bool
}

// SetRect supplies the deletion target's screen rectangle from layout.
func (d *DeleteZoneDetector) SetRect(r Rect) {
	d.rect = r
	d.hasRect = true
}

// Reset clears the captured rectangle, e.g. on layout invalidation.
// Subsequent tests report false until SetRect is called again.
func (d *DeleteZoneDetector) Reset() {
	d.rect = Rect{}
	d.hasRect = false
}

// Center returns the zone's center point and whether layout is known.
func (d *DeleteZoneDetector) Center() (Vec2, bool) {
	return d.rect.Center(), d.hasRect
}

// Radius returns the zone's hit radius: half the larger rectangle side
// plus the slop margin. Zero before layout.
func (d *DeleteZoneDetector) Radius() float64 {
	if !d.hasRect {
		return 0
	}
	r := d.rect.Width
	if d.rect.Height > r {
		r = d.rect.Height
	}
	return r/2 + deleteZoneSlop
}

// Contains reports whether (x, y) lies inside or on the zone circle.
// The boundary is inclusive. Returns false before layout or for
// non-finite coordinates.
func (d *DeleteZoneDetector) Contains(x, y float64) bool {
	if !d.hasRect || !finite(x, y) {
		return false
	}
	c := d.rect.Center()
	dx := x - c.X
	dy := y - c.Y
	r := d.Radius()
	return dx*dx+dy*dy <= r*r
}
