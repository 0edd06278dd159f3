package compositor

// MouseEventKind distinguishes the three mouse callback shapes the window
// driver reports.
type MouseEventKind int

const (
	MouseClick MouseEventKind = iota
	MouseDown
	MouseUp
)

// WindowDriver is the windowing/input platform collaborator. It is treated
// as an external boundary: the compositor core never reaches into a
// concrete windowing toolkit directly, only through this contract.
//
// All six On* callbacks are invoked synchronously, from within CheckLoop,
// on the goroutine that owns the driver — the same goroutine Run must be
// called from.
type WindowDriver interface {
	Size() Size
	Present()
	// CheckLoop pumps pending platform events, synchronously invoking any
	// registered callback for each one.
	CheckLoop()
	SetReadyState(ReadyState)
	SetRenderState(RenderState)

	SetOnResize(func(w, h int))
	SetOnNavigate(func(dir NavigationDirection))
	SetOnLoadURL(func(url string))
	SetOnMouse(func(kind MouseEventKind, button MouseButton, layerPoint PointF))
	SetOnScroll(func(dx, dy float64))
	SetOnZoom(func(magnification float64))
}
