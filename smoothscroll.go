package compositor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollTween holds the active AnimateScrollTo tweens for world_offset's
// two axes, grounded on the teacher's own scrollAnim/ScrollTo pair
// (camera.go) — generalized here from "animate a Camera's X/Y" to
// "animate the compositor's world_offset", which is otherwise only ever
// moved in whole-pixel jumps by scroll deltas and zoom recentering.
type scrollTween struct {
	tweenX, tweenY *gween.Tween
	doneX, doneY   bool
}

// AnimateScrollTo smoothly scrolls world_offset to (x, y) over duration
// seconds using easeFn, replacing any in-flight scroll animation. This is
// not part of spec.md's message contract — it is a supplemental,
// programmatic entry point (e.g. "scroll to anchor" after a Load
// navigation) that a layout/script integration can call directly on the
// Viewport, outside the inbound message queue, since it only ever touches
// world_offset.
func (v *Viewport) AnimateScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scroll = &scrollTween{
		tweenX: gween.New(float32(v.worldOffset.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.worldOffset.Y), float32(y), duration, easeFn),
	}
}

// StopScrollAnimation cancels any in-flight AnimateScrollTo tween without
// moving world_offset.
func (v *Viewport) StopScrollAnimation() {
	v.scroll = nil
}

// advanceScrollAnim steps the active scroll tween, if any, by dt seconds,
// clamping and recompositing exactly like a scroll-delta callback would.
// Called once per main-loop tick.
func (v *Viewport) advanceScrollAnim(dt float32) {
	if v.scroll == nil {
		return
	}
	moved := false
	if !v.scroll.doneX {
		val, done := v.scroll.tweenX.Update(dt)
		v.worldOffset.X = float64(val)
		v.scroll.doneX = done
		moved = true
	}
	if !v.scroll.doneY {
		val, done := v.scroll.tweenY.Update(dt)
		v.worldOffset.Y = float64(val)
		v.scroll.doneY = done
		moved = true
	}
	if v.scroll.doneX && v.scroll.doneY {
		v.scroll = nil
	}
	if moved {
		v.clampWorldOffset()
		v.scene.Root = rootTransform(v.windowSize, v.localZoom, v.worldOffset)
		v.recomposite = true
	}
}
