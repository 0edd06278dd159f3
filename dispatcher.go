package compositor

import "time"

// Viewport is the compositor's entire owned state: the quadtree cache, the
// scene, and every piece of process-wide viewport state from spec.md §3.
// It is created once at main-loop entry, mutated only by dispatch and the
// WindowDriver callbacks dispatch installs (both of which run on the
// goroutine that calls Run), and dropped on Exit. There is deliberately no
// locking anywhere in this type: single-owner, single-goroutine access is
// the whole concurrency model (see the Concurrency section of the package
// documentation in doc.go).
type Viewport struct {
	cfg Config

	window WindowDriver
	gpu    GPUBackend
	gpuCtx GPUContextHandle
	prof   Profiler

	render        *RenderChan
	script        *ScriptChan
	constellation *ConstellationChan
	pipelineID    PipelineID
	hasPipeline   bool

	quadtree *Quadtree
	scene    *Scene

	windowSize Size
	pageSize   SizeF
	worldOffset PointF
	worldZoom   float64
	localZoom   float64

	done        bool
	recomposite bool

	zoomPending        bool
	zoomSettleDeadline time.Time

	lastQueryDuration time.Duration

	scroll *scrollTween

	inbound chan Msg
}

// NewViewport constructs a Viewport with its zero-state: no quadtree until
// NewLayerMsg arrives, a 1:1 zoom, and an identity scene. cfg supplies the
// tunables that would otherwise be the spec's hardcoded constants; the
// zero Config falls back to those defaults.
func NewViewport(cfg Config, window WindowDriver, gpu GPUBackend) *Viewport {
	cfg = cfg.withDefaults()
	v := &Viewport{
		cfg:         cfg,
		window:      window,
		gpu:         gpu,
		prof:        noopProfiler{},
		scene:       NewScene(),
		worldZoom:   cfg.MinWorldZoom,
		localZoom:   1.0,
		inbound:     make(chan Msg, 64),
	}
	if window != nil {
		v.windowSize = window.Size()
	}
	return v
}

// SetProfiler installs a non-default Profiler. Passing nil restores the
// no-op default.
func (v *Viewport) SetProfiler(p Profiler) {
	if p == nil {
		p = noopProfiler{}
	}
	v.prof = p
}

// Inbound returns the send side of the compositor's single inbound
// message queue. The render task, the layout/script task, and the
// constellation are all expected to post Msg values here; delivery is
// ordered per-producer, not globally, matching §5.
func (v *Viewport) Inbound() chan<- Msg { return v.inbound }

// drainMessages drains every message currently queued, non-blockingly,
// applying each one in arrival order. It returns immediately once the
// queue is empty rather than waiting for more.
func (v *Viewport) drainMessages() int {
	n := 0
	for {
		select {
		case msg := <-v.inbound:
			v.dispatch(msg)
			n++
		default:
			return n
		}
	}
}

// dispatch applies a single inbound message, per the disposition table in
// spec.md §4.4 / §7.
func (v *Viewport) dispatch(msg Msg) {
	switch m := msg.(type) {
	case ExitMsg:
		v.done = true

	case GetSizeMsg:
		m.Reply <- v.windowSize

	case GetGLContextMsg:
		m.Reply <- v.gpuCtx

	case ChangeReadyStateMsg:
		if v.window != nil {
			v.window.SetReadyState(m.State)
		}

	case ChangeRenderStateMsg:
		if v.window != nil {
			v.window.SetRenderState(m.State)
		}

	case SetLayoutRenderChansMsg:
		v.script = m.Layout
		v.render = m.Render
		v.pipelineID = m.PipelineID
		v.hasPipeline = true
		v.installInputCallbacks()
		if m.Ack != nil {
			v.constellation = NewConstellationChan(m.Ack)
			v.constellation.Send(CompositorAck{PipelineID: m.PipelineID})
		}

	case NewLayerMsg:
		v.pageSize = m.Size
		v.quadtree = NewQuadtreeWithCacheSize(0, 0, int(m.Size.W), int(m.Size.H), m.TileSize, v.cfg.MissingRectCacheLen)
		v.askForTiles()

	case ResizeLayerMsg:
		v.pageSize = m.Size
		if v.quadtree != nil {
			v.quadtree.Resize(int(m.Size.W), int(m.Size.H))
		}

	case DeleteLayerMsg:
		// No-op: current tiles keep displaying until the next NewLayer.

	case PaintMsg:
		v.applyPaint(m)

	default:
		Logger().Warn("compositor: dispatch received unknown message type")
	}
}

// applyPaint implements the Paint disposition: discard for a foreign
// pipeline, otherwise insert every buffer into the quadtree and reconcile
// the scene against the resulting tile set.
func (v *Viewport) applyPaint(m PaintMsg) {
	if !v.hasPipeline || m.PipelineID != v.pipelineID {
		return
	}
	if v.quadtree == nil {
		Logger().Warn("compositor: paint received with no quadtree", "pipeline", m.PipelineID)
		return
	}

	v.pageSize = m.Size
	for _, buf := range m.Buffers {
		v.quadtree.AddTile(buf.ScreenPos.X, buf.ScreenPos.Y, v.worldZoom, buf.Surface, buf.ScreenPos)
	}

	tileSize := Size{W: v.quadtree.tileSize, H: v.quadtree.tileSize}
	v.scene.Reconcile(v.quadtree.GetAllTiles(), v.worldZoom, tileSize)

	v.localZoom = 1.0
	v.scene.Root = rootTransform(v.windowSize, v.localZoom, v.worldOffset)
	v.recomposite = true
}

// askForTiles queries the quadtree for the current viewport at the
// current world zoom and, if any rectangles are missing, sends a single
// ReRender request. An empty-missing, redisplay-true result schedules a
// cheap local redisplay instead of a round trip to the producer.
func (v *Viewport) askForTiles() {
	if v.quadtree == nil {
		return
	}
	viewport := Rect{
		X: int(v.worldOffset.X), Y: int(v.worldOffset.Y),
		W: v.windowSize.W, H: v.windowSize.H,
	}
	zoom := v.worldZoom
	start := timeNow()
	missing, redisplay := v.quadtree.GetTileRects(viewport, func(t *Tile) bool {
		return t.validAt(zoom)
	}, zoom)
	v.lastQueryDuration = timeNow().Sub(start)

	if len(missing) > 0 {
		if v.render == nil {
			Logger().Warn("compositor: tiles missing but no render channel registered", "count", len(missing))
			return
		}
		v.render.Send(ReRenderMsg{Rects: missing, Zoom: zoom})
		return
	}
	if redisplay {
		ApplyRedisplay(v.scene, zoom)
		v.recomposite = true
	}
}

// clampOffset restricts an axis of world_offset to [0, max(0, page*zoom -
// window)] and rounds it to the nearest integer, per spec.md §4.3.
func clampOffset(offset, page float64, zoom float64, window int) float64 {
	maxOff := page*zoom - float64(window)
	if maxOff < 0 {
		maxOff = 0
	}
	return roundHalfAwayFromZero(clamp(offset, 0, maxOff))
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return -float64(int64(-v + 0.5))
}

func (v *Viewport) clampWorldOffset() {
	v.worldOffset.X = clampOffset(v.worldOffset.X, v.pageSize.W, v.worldZoom, v.windowSize.W)
	v.worldOffset.Y = clampOffset(v.worldOffset.Y, v.pageSize.H, v.worldZoom, v.windowSize.H)
}

// installInputCallbacks registers the six WindowDriver callbacks,
// matching spec.md §4.3. It is safe to call more than once (e.g. if
// SetLayoutRenderChans is received again for a new pipeline); each call
// simply replaces the prior closures.
func (v *Viewport) installInputCallbacks() {
	if v.window == nil {
		return
	}

	v.window.SetOnResize(func(w, h int) {
		newSize := Size{W: w, H: h}
		if newSize == v.windowSize {
			return
		}
		v.windowSize = newSize
		v.clampWorldOffset()
		v.sendScript(ResizeEvent{W: w, H: h})
	})

	v.window.SetOnNavigate(func(dir NavigationDirection) {
		v.sendScript(NavigateEvent{Dir: dir})
	})

	v.window.SetOnLoadURL(func(url string) {
		v.sendScript(LoadEvent{URL: url})
	})

	v.window.SetOnMouse(func(kind MouseEventKind, button MouseButton, layerPoint PointF) {
		worldPoint := PointF{X: layerPoint.X + v.worldOffset.X, Y: layerPoint.Y + v.worldOffset.Y}
		switch kind {
		case MouseClick:
			v.sendScript(ClickEvent{Button: button, Point: worldPoint})
		case MouseDown:
			v.sendScript(MouseDownEvent{Button: button, Point: worldPoint})
		case MouseUp:
			v.sendScript(MouseUpEvent{Button: button, Point: worldPoint})
			// Workaround until scroll/zoom settlement triggers it
			// reliably on its own (see §4.3).
			v.askForTiles()
		}
	})

	v.window.SetOnScroll(func(dx, dy float64) {
		v.worldOffset.X -= dx
		v.worldOffset.Y -= dy
		v.clampWorldOffset()
		v.scene.Root = rootTransform(v.windowSize, v.localZoom, v.worldOffset)
		v.recomposite = true
	})

	v.window.SetOnZoom(func(magnification float64) {
		old := v.worldZoom
		v.worldZoom = old * magnification
		if v.worldZoom < v.cfg.MinWorldZoom {
			v.worldZoom = v.cfg.MinWorldZoom
		}
		v.localZoom *= v.worldZoom / old

		ctrX := v.worldOffset.X + float64(v.windowSize.W)/2
		ctrY := v.worldOffset.Y + float64(v.windowSize.H)/2
		v.worldOffset.X += ctrX*v.worldZoom/old - ctrX
		v.worldOffset.Y += ctrY*v.worldZoom/old - ctrY
		v.clampWorldOffset()

		v.scene.Root = rootTransform(v.windowSize, v.localZoom, v.worldOffset)
		v.recomposite = true

		v.zoomPending = true
		v.zoomSettleDeadline = timeNow().Add(v.cfg.zoomSettleDuration())
	})
}

func (v *Viewport) sendScript(ev ScriptEvent) {
	if v.script == nil {
		Logger().Warn("compositor: script event dropped, no layout channel registered")
		return
	}
	v.script.Send(ev)
}
