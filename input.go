package compositor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// clickDeadZone is the maximum cursor movement, in pixels, between a
// mouse-down and its matching mouse-up that still counts as a click
// rather than a drag, mirroring the dead-zone check used for pointer
// click detection elsewhere in this stack.
const clickDeadZone = 4.0

// EbitenWindowDriver is the default WindowDriver, backed by ebiten's
// polled input API. Ebiten has no native callback-registration mechanism,
// so each CheckLoop call polls cursor/button/wheel/touch state once and
// edge-detects transitions, synchronously invoking the registered
// callback for each transition it finds. CheckLoop is meant to be called
// once per main-loop iteration, in place of pumping a platform event
// queue.
type EbitenWindowDriver struct {
	size        Size
	readyState  ReadyState
	renderState RenderState

	onResize   func(w, h int)
	onNavigate func(dir NavigationDirection)
	onLoadURL  func(url string)
	onMouse    func(kind MouseEventKind, button MouseButton, layerPoint PointF)
	onScroll   func(dx, dy float64)
	onZoom     func(magnification float64)

	mouseDown [3]bool
	downAt    [3]PointF

	pinchActive   bool
	pinchTouchIDs [2]ebiten.TouchID
	pinchStartDst float64
}

// NewEbitenWindowDriver constructs a driver with the given initial window
// size.
func NewEbitenWindowDriver(initial Size) *EbitenWindowDriver {
	return &EbitenWindowDriver{size: initial}
}

func (d *EbitenWindowDriver) Size() Size { return d.size }

// Resize is called by the embedding ebiten game shell (typically from its
// Layout callback) whenever the engine reports a new outside size. It
// reports the raw event; deduplication against the last known size is the
// caller's (SetLayoutRenderChansMsg glue's) responsibility, per the
// Resize contract.
func (d *EbitenWindowDriver) Resize(w, h int) {
	d.size = Size{W: w, H: h}
	if d.onResize != nil {
		d.onResize(w, h)
	}
}

func (d *EbitenWindowDriver) Present() {}

// CheckLoop polls ebiten's input state and fires edge-triggered
// callbacks. It must be called once per main-loop iteration.
func (d *EbitenWindowDriver) CheckLoop() {
	d.pollMouse()
	d.pollScroll()
	d.pollPinch()
}

func (d *EbitenWindowDriver) SetReadyState(s ReadyState)   { d.readyState = s }
func (d *EbitenWindowDriver) SetRenderState(s RenderState) { d.renderState = s }

func (d *EbitenWindowDriver) SetOnResize(fn func(w, h int))     { d.onResize = fn }
func (d *EbitenWindowDriver) SetOnNavigate(fn func(NavigationDirection)) {
	d.onNavigate = fn
}
func (d *EbitenWindowDriver) SetOnLoadURL(fn func(string)) { d.onLoadURL = fn }
func (d *EbitenWindowDriver) SetOnMouse(fn func(MouseEventKind, MouseButton, PointF)) {
	d.onMouse = fn
}
func (d *EbitenWindowDriver) SetOnScroll(fn func(dx, dy float64)) { d.onScroll = fn }
func (d *EbitenWindowDriver) SetOnZoom(fn func(magnification float64)) { d.onZoom = fn }

// TriggerNavigate and TriggerLoadURL let an embedding shell (menu, address
// bar, keyboard shortcut) forward a navigation intent through the same
// callback path a real browser chrome would use.
func (d *EbitenWindowDriver) TriggerNavigate(dir NavigationDirection) {
	if d.onNavigate != nil {
		d.onNavigate(dir)
	}
}

func (d *EbitenWindowDriver) TriggerLoadURL(url string) {
	if d.onLoadURL != nil {
		d.onLoadURL(url)
	}
}

var ebitenButtons = [3]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

var compositorButtons = [3]MouseButton{
	MouseButtonLeft,
	MouseButtonMiddle,
	MouseButtonRight,
}

func (d *EbitenWindowDriver) pollMouse() {
	cx, cy := ebiten.CursorPosition()
	point := PointF{X: float64(cx), Y: float64(cy)}

	for i, btn := range ebitenButtons {
		pressed := ebiten.IsMouseButtonPressed(btn)
		wasDown := d.mouseDown[i]

		switch {
		case pressed && !wasDown:
			d.mouseDown[i] = true
			d.downAt[i] = point
			if d.onMouse != nil {
				d.onMouse(MouseDown, compositorButtons[i], point)
			}
		case !pressed && wasDown:
			d.mouseDown[i] = false
			if d.onMouse != nil {
				d.onMouse(MouseUp, compositorButtons[i], point)
				if dist(d.downAt[i], point) <= clickDeadZone {
					d.onMouse(MouseClick, compositorButtons[i], point)
				}
			}
		}
	}
}

func dist(a, b PointF) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (d *EbitenWindowDriver) pollScroll() {
	dx, dy := ebiten.Wheel()
	if dx != 0 || dy != 0 {
		if d.onScroll != nil {
			d.onScroll(dx, dy)
		}
	}
}

// pollPinch tracks the distance between the first two active touch IDs
// and reports a zoom callback when it changes, adapting the two-finger
// pinch tracking pattern used for touch gestures elsewhere in this stack
// to a magnification-ratio-per-tick signal.
func (d *EbitenWindowDriver) pollPinch() {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) < 2 {
		d.pinchActive = false
		return
	}

	a, b := ids[0], ids[1]
	ax, ay := ebiten.TouchPosition(a)
	bx, by := ebiten.TouchPosition(b)
	d2 := dist(PointF{float64(ax), float64(ay)}, PointF{float64(bx), float64(by)})

	if !d.pinchActive || d.pinchTouchIDs[0] != a || d.pinchTouchIDs[1] != b {
		d.pinchActive = true
		d.pinchTouchIDs = [2]ebiten.TouchID{a, b}
		d.pinchStartDst = d2
		return
	}

	if d.pinchStartDst <= 0 {
		d.pinchStartDst = d2
		return
	}

	magnification := d2 / d.pinchStartDst
	d.pinchStartDst = d2
	if magnification != 1.0 && d.onZoom != nil {
		d.onZoom(magnification)
	}
}
