package compositor

import "time"

// timeNow is the compositor's only source of wall-clock time, exposed as
// a variable so tests can substitute a deterministic clock instead of
// sleeping for real durations.
var timeNow = time.Now

// ShutdownSignal is sent once, after the loop's final iteration, to let an
// embedder block on shutdown without polling Viewport state.
type ShutdownSignal struct{}

// Run is the compositor's single-threaded cooperative main loop (spec.md
// §4.5). It must be called from the goroutine that owns the WindowDriver
// passed to NewViewport — exactly as ebiten requires RunGame to run on the
// platform's main thread — and it blocks until an ExitMsg is dispatched.
//
// Each iteration:
//  1. drains every pending inbound message (§4.4),
//  2. pumps the window driver, which synchronously invokes any input
//     callback whose edge condition fired, then advances any
//     AnimateScrollTo tween by one tick,
//  3. composites, under a profiler span, if step 1 or 2 set recomposite,
//  4. sleeps until the next tick,
//  5. fires the deferred zoom-settled tile request if its deadline has
//     passed.
//
// shutdown, if non-nil, receives a ShutdownSignal once the loop exits.
func (v *Viewport) Run(shutdown chan<- ShutdownSignal) {
	ticker := time.NewTicker(v.cfg.tickDuration())
	defer ticker.Stop()

	for !v.done {
		var stats debugStats

		stats.drainCount = v.drainMessages()
		if v.done {
			break
		}

		if v.window != nil {
			v.window.CheckLoop()
		}
		v.advanceScrollAnim(float32(v.cfg.tickDuration().Seconds()))

		if v.recomposite {
			v.recomposite = false
			start := timeNow()
			v.composite()
			stats.compositeDuration = timeNow().Sub(start)
		}

		<-ticker.C

		if v.zoomPending && timeNow().After(v.zoomSettleDeadline) {
			v.zoomPending = false
			v.askForTiles()
		}
		stats.queryDuration = v.lastQueryDuration

		v.debugLog(stats)
	}

	if shutdown != nil {
		shutdown <- ShutdownSignal{}
	}
}

// composite resizes the scene to the current window, renders it through
// the GPU backend, and presents the result, all under a profiler span
// named "composite" (spec.md §4.5: "under a profiler scope").
func (v *Viewport) composite() {
	v.prof.Span("composite", func() {
		if v.gpu == nil {
			return
		}
		if v.gpuCtx == nil {
			ctx, err := v.gpu.InitRenderContext()
			if err != nil {
				Logger().Warn("compositor: init render context failed", "err", err)
				return
			}
			v.gpuCtx = ctx
		}
		if err := v.gpu.RenderScene(v.gpuCtx, v.scene, v.windowSize); err != nil {
			Logger().Warn("compositor: render scene failed", "err", err)
			return
		}
		if v.window != nil {
			v.window.Present()
		}
	})
}
