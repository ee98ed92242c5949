package canvas

import "math"

// GridGeometry is the inventory grid's fixed layout, captured from the
// first laid-out tile.
type GridGeometry struct {
	TileWidth  float64
	TileHeight float64
	ColumnGap  float64
	RowGap     float64
	Columns    int
}

// Reorderer converts a cumulative drag translation over the inventory
// grid into a target linear index and commits incremental reorders of
// the authoritative id order.
//
// The visible view may be a filtered subset of the authoritative order,
// so each commit is two steps: reorder the dragged id within the view,
// then splice the ids not in the view back in after the reordered
// prefix, preserving their relative order.
//
// The caller must suppress reordering whenever the view is sorted or
// filtered by anything other than the default category view; reordering
// a search result or a cost-sorted view is undefined.
type Reorderer struct {
	order []string

	grid    GridGeometry
	hasGrid bool

	dragging   bool
	activeID   string
	startIndex int
	lastIndex  int
	viewSet    map[string]bool // nil = the whole order is visible

	sink EventSink

	// OnOrderChanged fires with the new authoritative order whenever a
	// drag commits an index change. The slice is a fresh copy.
	OnOrderChanged func(order []string)
}

// NewReorderer creates a reorderer over the given authoritative order.
// The slice is copied.
func NewReorderer(order []string) *Reorderer {
	r := &Reorderer{order: make([]string, len(order))}
	copy(r.order, order)
	return r
}

// SetGrid supplies the grid layout. Drags before this are no-ops.
func (r *Reorderer) SetGrid(g GridGeometry) {
	r.grid = g
	r.hasGrid = g.Columns > 0 && g.TileWidth > 0 && g.TileHeight > 0
}

// SetEventSink attaches an optional event bridge.
func (r *Reorderer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// Order returns a copy of the authoritative order.
func (r *Reorderer) Order() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Append adds a newly acquired id at the end of the order. Duplicates
// are ignored.
func (r *Reorderer) Append(id string) {
	for _, v := range r.order {
		if v == id {
			return
		}
	}
	r.order = append(r.order, id)
}

// Remove deletes a lost id in place, without reshuffling survivors.
func (r *Reorderer) Remove(id string) {
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// view returns the ids of the current visible view, derived from the
// authoritative order.
func (r *Reorderer) view() []string {
	if r.viewSet == nil {
		return r.order
	}
	out := make([]string, 0, len(r.viewSet))
	for _, id := range r.order {
		if r.viewSet[id] {
			out = append(out, id)
		}
	}
	return out
}

// BeginDrag starts a drag of id. visible lists the ids of the current
// filtered view; nil means the whole order is visible. Reports false
// (and stays idle) when the grid is unknown or id is not in the view.
// A begin while a drag is live overwrites it defensively.
func (r *Reorderer) BeginDrag(id string, visible []string) bool {
	if !r.hasGrid {
		return false
	}
	if visible == nil {
		r.viewSet = nil
	} else {
		r.viewSet = make(map[string]bool, len(visible))
		for _, v := range visible {
			r.viewSet[v] = true
		}
	}
	start := -1
	for i, v := range r.view() {
		if v == id {
			start = i
			break
		}
	}
	if start < 0 {
		r.viewSet = nil
		return false
	}
	r.dragging = true
	r.activeID = id
	r.startIndex = start
	r.lastIndex = start
	return true
}

// Drag applies the cumulative translation since drag begin and commits a
// reorder when the target index changed. Repeating the same translation
// is idempotent: sub-threshold movement never thrashes the order.
// Reports whether a reorder was committed.
func (r *Reorderer) Drag(translationX, translationY float64) bool {
	if !r.dragging || !r.hasGrid || !finite(translationX, translationY) {
		return false
	}
	view := r.view()
	if len(view) == 0 {
		return false
	}

	effW := r.grid.TileWidth + r.grid.ColumnGap
	effH := r.grid.TileHeight + r.grid.RowGap
	columnShift := int(math.Round(translationX / effW))
	rowShift := int(math.Round(translationY / effH))

	target := r.startIndex + columnShift + rowShift*r.grid.Columns
	if target < 0 {
		target = 0
	}
	if target > len(view)-1 {
		target = len(view) - 1
	}
	if target == r.lastIndex {
		return false
	}

	r.commit(view, target)
	r.lastIndex = target
	return true
}

// commit removes the dragged id from the view, reinserts it at target,
// and rebuilds the authoritative order as reordered view followed by the
// non-view ids in their original relative order.
func (r *Reorderer) commit(view []string, target int) {
	reordered := make([]string, 0, len(view))
	for _, id := range view {
		if id != r.activeID {
			reordered = append(reordered, id)
		}
	}
	if target > len(reordered) {
		target = len(reordered)
	}
	reordered = append(reordered, "")
	copy(reordered[target+1:], reordered[target:])
	reordered[target] = r.activeID

	next := make([]string, 0, len(r.order))
	next = append(next, reordered...)
	if r.viewSet != nil {
		for _, id := range r.order {
			if !r.viewSet[id] {
				next = append(next, id)
			}
		}
	}
	r.order = next

	if r.OnOrderChanged != nil {
		r.OnOrderChanged(r.Order())
	}
	if r.sink != nil {
		r.sink.Emit(EngineEvent{Type: EventOrderChanged, Order: r.Order()})
	}
}

// EndDrag clears the transient drag tracking. Commits happen
// incrementally during the drag, so there is nothing else to do.
func (r *Reorderer) EndDrag() {
	r.dragging = false
	r.activeID = ""
	r.startIndex = 0
	r.lastIndex = 0
	r.viewSet = nil
}

// Dragging reports whether a reorder drag is live, and for which id.
func (r *Reorderer) Dragging() (string, bool) {
	return r.activeID, r.dragging
}
