package compositor

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// DisplaySurface holds a pre-scaled copy of a stale tile's texture, shown
// in place of the authoritative one while a fresh ReRender is still in
// flight. The per-tile transform formula already compensates for a
// resolution mismatch mathematically (it multiplies by worldZoom/r), but
// a large mismatch stretched by the GPU's own bilinear sampler looks
// noticeably blockier than resampling the source pixels directly, so the
// redisplay path does that resampling once up front instead.
type DisplaySurface struct {
	Image *ebiten.Image
}

func (d *DisplaySurface) Bounds() Size {
	b := d.Image.Bounds()
	return Size{W: b.Dx(), H: b.Dy()}
}

// rescaleFactor is the mismatch ratio beyond which redisplay bothers to
// resample rather than rely on the GPU's own stretch.
const rescaleFactor = 1.15

// ApplyRedisplay scans scene for sublayers whose tile is stale at
// worldZoom (resolution != worldZoom) and, if the mismatch is large
// enough to be visible, replaces the sublayer's drawn surface with a
// bilinearly resampled copy sized for the current zoom. It never mutates
// the quadtree's stored tile — only what the scene currently draws.
func ApplyRedisplay(scene *Scene, worldZoom float64) {
	for _, child := range scene.Children {
		t := child.Tile
		if t == nil || t.Resolution == worldZoom {
			child.DisplaySurface = nil
			continue
		}
		ratio := worldZoom / t.Resolution
		if ratio < 1 {
			ratio = 1 / ratio
		}
		if ratio < rescaleFactor {
			child.DisplaySurface = nil
			continue
		}

		src, ok := t.DrawTarget.(*EbitenSurface)
		if !ok || src == nil || src.Image == nil {
			continue
		}
		srcBounds := src.Image.Bounds()
		dstW := int(float64(srcBounds.Dx()) * worldZoom / t.Resolution)
		dstH := int(float64(srcBounds.Dy()) * worldZoom / t.Resolution)
		if dstW <= 0 || dstH <= 0 {
			continue
		}

		dst := ebiten.NewImage(dstW, dstH)
		draw.ApproxBiLinear.Scale(dst, image.Rect(0, 0, dstW, dstH), src.Image, srcBounds, draw.Over, nil)
		child.DisplaySurface = &DisplaySurface{Image: dst}

		// dst is already sized for the current zoom, so the draw step
		// needs only the tile's page-space translation, not the usual
		// W_tile*Z/r scale term.
		origin := PointF{X: float64(t.PageRect.X), Y: float64(t.PageRect.Y)}
		child.Transform = translateMatrix(origin.X*worldZoom, origin.Y*worldZoom)
	}
}
