package canvas

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels

	defaultDoubleTapWindow = 300 * time.Millisecond
	defaultDoubleTapRadius = 24.0 // max px between the two taps
	defaultLongPressDelay  = 500 * time.Millisecond
	defaultFlingMinSpeed   = 600.0 // px/s at release
)

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	prevX    float64 // position one movement tick earlier, for release velocity
	prevY    float64
	downTime time.Time
	moveTime time.Time
	prevTime time.Time
	targetID string
	dragging bool
	drawing  bool
	held     bool // long press fired
}

// --- Pinch state ---

type pinchState struct {
	active       bool
	pointer0     int
	pointer1     int
	targetID     string
	initialDist  float64
	initialAngle float64
}

// --- Pending single tap ---

// A single tap is held back for the double-tap window; if a second
// qualifying release arrives first it upgrades to a double tap,
// otherwise the tap fires when the window expires.
type pendingTap struct {
	active   bool
	targetID string
	x, y     float64
	deadline time.Time
}

// Pointer is the built-in host gesture layer: it polls Ebitengine mouse
// and touch state once per tick and classifies raw pointer activity into
// the engine's gesture primitives.
//
// Placement targeting is delegated to a host-supplied hit test (the host
// knows its render geometry; the engine does not). In drawing mode all
// pointer activity becomes stroke samples instead.
//
// Classified primitives, per pointer:
//   - movement past the dead zone begins a pan (cumulative deltas),
//   - a fast release during a pan adds a directional fling,
//   - a short press-release is a tap, two within the window a double tap,
//   - holding still past the delay is a long press,
//   - two concurrent touches drive pinch scale and rotation together
//     with any live pan, matching two-finger drag-scale-rotate.
type Pointer struct {
	canvas *Canvas

	// hitTest returns the topmost placement id at a screen point, or ""
	// for empty canvas. Supplied by the host.
	hitTest func(x, y float64) string

	deadZone        float64
	doubleTapWindow time.Duration
	doubleTapRadius float64
	longPressDelay  time.Duration
	flingMinSpeed   float64

	pointers     [maxPointers]pointerState
	touchUsed    [maxPointers]bool
	touchMap     [maxPointers]ebiten.TouchID
	prevTouchIDs []ebiten.TouchID
	pinch        pinchState
	pending      pendingTap

	injectQueue []syntheticPointerEvent

	// now is the clock, overridable in tests.
	now func() time.Time
}

// NewPointer creates a pointer adapter over the canvas. hitTest may be
// nil, in which case no placement is ever targeted (drawing mode still
// works).
func NewPointer(c *Canvas, hitTest func(x, y float64) string) *Pointer {
	return &Pointer{
		canvas:          c,
		hitTest:         hitTest,
		deadZone:        defaultDragDeadZone,
		doubleTapWindow: defaultDoubleTapWindow,
		doubleTapRadius: defaultDoubleTapRadius,
		longPressDelay:  defaultLongPressDelay,
		flingMinSpeed:   defaultFlingMinSpeed,
		now:             time.Now,
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a pan starts.
func (p *Pointer) SetDragDeadZone(pixels float64) {
	p.deadZone = pixels
}

// SetLongPressDelay sets the hold duration before a long press fires.
func (p *Pointer) SetLongPressDelay(d time.Duration) {
	p.longPressDelay = d
}

// SetDoubleTapWindow sets the window in which a second tap upgrades to a
// double tap.
func (p *Pointer) SetDoubleTapWindow(d time.Duration) {
	p.doubleTapWindow = d
}

// SetFlingMinSpeed sets the release speed in px/s above which a pan
// release also fires a directional fling.
func (p *Pointer) SetFlingMinSpeed(speed float64) {
	p.flingMinSpeed = speed
}

// Update polls input state and advances all recognizers. Call once per
// ebiten tick. When the inject queue is non-empty, one synthetic event
// is consumed instead of polling the real mouse.
func (p *Pointer) Update() {
	now := p.now()
	p.firePendingTap(now)

	if !p.processInjectedInput(now) {
		p.processMousePointer(now)
		p.processTouchPointers(now)
	}
	p.detectPinch()
	p.detectLongPress(now)
}

// CancelAll treats every live pointer as platform-cancelled: strokes in
// flight are committed, gestures are clamped and finalized, and no
// delete-zone evaluation runs.
func (p *Pointer) CancelAll() {
	for i := range p.pointers {
		ps := &p.pointers[i]
		if !ps.down {
			continue
		}
		if ps.drawing {
			p.canvas.EndStroke()
		} else if ps.targetID != "" {
			p.canvas.CancelGesture(ps.targetID)
		}
		*ps = pointerState{}
	}
	p.pinch = pinchState{}
	p.pending = pendingTap{}
}

// --- Polling ---

// processMousePointer handles mouse input (pointer 0).
func (p *Pointer) processMousePointer(now time.Time) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.processPointer(0, float64(mx), float64(my), pressed, now)
}

// processTouchPointers handles touch input (pointers 1-9).
func (p *Pointer) processTouchPointers(now time.Time) {
	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		p.processPointer(slot, float64(tx), float64(ty), true, now)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !activeSlots[i] {
			ps := &p.pointers[i]
			if ps.down {
				p.processPointer(i, ps.lastX, ps.lastY, false, now)
			}
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *Pointer) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// --- Pointer state machine ---

// processPointer runs the classification state machine for one pointer.
func (p *Pointer) processPointer(pointerID int, x, y float64, pressed bool, now time.Time) {
	if !finite(x, y) {
		return
	}
	ps := &p.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		p.pointerDown(ps, x, y, now)
	case !pressed && ps.down:
		p.pointerUp(ps, x, y, now)
	case pressed && ps.down:
		p.pointerMove(ps, x, y, now)
	}
	// Hover without a button is not an engine input.
}

func (p *Pointer) pointerDown(ps *pointerState, x, y float64, now time.Time) {
	*ps = pointerState{
		down: true,
		startX: x, startY: y,
		lastX: x, lastY: y,
		prevX: x, prevY: y,
		downTime: now, moveTime: now, prevTime: now,
	}
	if p.canvas.DrawingMode() {
		ps.drawing = true
		p.canvas.BeginStroke(x, y)
		return
	}
	if p.hitTest != nil {
		ps.targetID = p.hitTest(x, y)
	}
}

func (p *Pointer) pointerMove(ps *pointerState, x, y float64, now time.Time) {
	if x == ps.lastX && y == ps.lastY {
		return
	}
	ps.prevX, ps.prevY = ps.lastX, ps.lastY
	ps.prevTime = ps.moveTime
	ps.lastX, ps.lastY = x, y
	ps.moveTime = now

	if ps.drawing {
		p.canvas.AppendStrokePoint(x, y)
		return
	}
	if ps.targetID == "" {
		return
	}
	g := p.canvas.Gesture(ps.targetID)
	if g == nil {
		return
	}
	if !ps.dragging && !ps.held {
		dx := x - ps.startX
		dy := y - ps.startY
		if math.Sqrt(dx*dx+dy*dy) > p.deadZone {
			ps.dragging = true
			g.PanBegin()
		}
	}
	if ps.dragging {
		g.PanUpdate(x-ps.startX, y-ps.startY)
	}
}

func (p *Pointer) pointerUp(ps *pointerState, x, y float64, now time.Time) {
	defer func() { *ps = pointerState{} }()

	if ps.drawing {
		p.canvas.EndStroke()
		return
	}
	if ps.targetID == "" {
		return
	}
	g := p.canvas.Gesture(ps.targetID)
	if g == nil {
		return
	}

	switch {
	case ps.held:
		g.LongPressEnd()
	case ps.dragging:
		if dir, ok := p.releaseFling(ps); ok {
			g.Fling(dir)
		}
		g.PanEnd()
	default:
		p.tapRelease(ps.targetID, x, y, now)
	}
}

// releaseFling derives a directional fling from the velocity of the last
// movement tick before release.
func (p *Pointer) releaseFling(ps *pointerState) (FlingDirection, bool) {
	dt := ps.moveTime.Sub(ps.prevTime).Seconds()
	if dt <= 0 {
		return 0, false
	}
	vx := (ps.lastX - ps.prevX) / dt
	vy := (ps.lastY - ps.prevY) / dt
	if math.Hypot(vx, vy) < p.flingMinSpeed {
		return 0, false
	}
	if math.Abs(vx) >= math.Abs(vy) {
		if vx < 0 {
			return FlingLeft, true
		}
		return FlingRight, true
	}
	if vy < 0 {
		return FlingUp, true
	}
	return FlingDown, true
}

// --- Tap / double tap ---

// tapRelease either upgrades a pending tap to a double tap or holds this
// release back as the new pending tap.
func (p *Pointer) tapRelease(targetID string, x, y float64, now time.Time) {
	if p.pending.active &&
		p.pending.targetID == targetID &&
		now.Before(p.pending.deadline) &&
		math.Hypot(x-p.pending.x, y-p.pending.y) <= p.doubleTapRadius {
		p.pending = pendingTap{}
		if g := p.canvas.Gesture(targetID); g != nil {
			g.DoubleTap()
		}
		return
	}
	p.pending = pendingTap{
		active:   true,
		targetID: targetID,
		x:        x,
		y:        y,
		deadline: now.Add(p.doubleTapWindow),
	}
}

// firePendingTap fires a held-back single tap once its double-tap window
// has expired.
func (p *Pointer) firePendingTap(now time.Time) {
	if !p.pending.active || now.Before(p.pending.deadline) {
		return
	}
	targetID := p.pending.targetID
	p.pending = pendingTap{}
	if g := p.canvas.Gesture(targetID); g != nil {
		g.Tap()
	}
}

// --- Long press ---

// detectLongPress promotes a still, held pointer to a long press once
// the delay elapses. The shrink fires later, on release.
func (p *Pointer) detectLongPress(now time.Time) {
	for i := range p.pointers {
		ps := &p.pointers[i]
		if !ps.down || ps.drawing || ps.dragging || ps.held || ps.targetID == "" {
			continue
		}
		if now.Sub(ps.downTime) < p.longPressDelay {
			continue
		}
		dx := ps.lastX - ps.startX
		dy := ps.lastY - ps.startY
		if math.Sqrt(dx*dx+dy*dy) > p.deadZone {
			continue
		}
		ps.held = true
		if g := p.canvas.Gesture(ps.targetID); g != nil {
			g.LongPressBegin()
		}
	}
}

// --- Pinch / rotate detection ---

// detectPinch drives the pinch and rotate primitives from two concurrent
// touch pointers. A live pan on the target keeps running; pinch and
// rotate compose with it field-wise, which is the two-finger
// drag-scale-rotate case.
func (p *Pointer) detectPinch() {
	var count int
	var p0, p1 int
	for i := 1; i < maxPointers; i++ {
		ps := &p.pointers[i]
		if ps.down && !ps.drawing {
			if count == 0 {
				p0 = i
			} else if count == 1 {
				p1 = i
			}
			count++
		}
	}

	if count != 2 {
		if p.pinch.active {
			p.pinch.active = false
			if g := p.canvas.Gesture(p.pinch.targetID); g != nil {
				g.PinchEnd()
				g.RotateEnd()
			}
		}
		return
	}

	ps0 := &p.pointers[p0]
	ps1 := &p.pointers[p1]
	dx := ps1.lastX - ps0.lastX
	dy := ps1.lastY - ps0.lastY
	dist := math.Sqrt(dx*dx + dy*dy)
	angle := math.Atan2(dy, dx)

	if !p.pinch.active {
		targetID := ps0.targetID
		if targetID == "" {
			targetID = ps1.targetID
		}
		if targetID == "" {
			return
		}
		g := p.canvas.Gesture(targetID)
		if g == nil {
			return
		}
		p.pinch = pinchState{
			active:       true,
			pointer0:     p0,
			pointer1:     p1,
			targetID:     targetID,
			initialDist:  dist,
			initialAngle: angle,
		}
		g.PinchBegin()
		g.RotateBegin()
		return
	}

	g := p.canvas.Gesture(p.pinch.targetID)
	if g == nil {
		p.pinch.active = false
		return
	}
	factor := 1.0
	if p.pinch.initialDist > 0 {
		factor = dist / p.pinch.initialDist
	}
	g.PinchUpdate(factor)
	g.RotateUpdate(angle - p.pinch.initialAngle)
}
