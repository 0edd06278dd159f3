package compositor

import "github.com/hajimehoshi/ebiten/v2"

// EbitenSurface adapts an *ebiten.Image to the GPUSurfaceHandle contract
// so a rasterized tile buffer can be inserted into the quadtree and later
// drawn by EbitenGPUBackend.
type EbitenSurface struct {
	Image *ebiten.Image
}

func (s *EbitenSurface) Bounds() Size {
	b := s.Image.Bounds()
	return Size{W: b.Dx(), H: b.Dy()}
}

// EbitenGPUBackend is the default GPUBackend, backed by ebiten. Ebiten
// drives its own render thread and calls back into Draw(screen) on its own
// schedule, rather than accepting an imperative "draw now" call, so
// RenderScene only records which scene to draw; the actual GPU submission
// happens in DrawTo, invoked by the ebiten game shell's Draw callback.
type EbitenGPUBackend struct {
	scene *Scene
}

// NewEbitenGPUBackend constructs an EbitenGPUBackend.
func NewEbitenGPUBackend() *EbitenGPUBackend {
	return &EbitenGPUBackend{}
}

func (b *EbitenGPUBackend) InitRenderContext() (GPUContextHandle, error) {
	return b, nil
}

func (b *EbitenGPUBackend) RenderScene(ctx GPUContextHandle, scene *Scene, window Size) error {
	b.scene = scene
	return nil
}

// DrawTo submits the most recently recorded scene to screen. It is called
// by the ebiten game shell, not by the compositor's own main loop.
func (b *EbitenGPUBackend) DrawTo(screen *ebiten.Image) {
	if b.scene == nil {
		return
	}
	for _, child := range b.scene.Children {
		if child.Tile == nil {
			continue
		}
		var img *ebiten.Image
		if child.DisplaySurface != nil {
			if ds, ok := child.DisplaySurface.(*DisplaySurface); ok && ds != nil {
				img = ds.Image
			}
		}
		if img == nil {
			surface, ok := child.Tile.DrawTarget.(*EbitenSurface)
			if !ok || surface == nil || surface.Image == nil {
				continue
			}
			img = surface.Image
		}
		full := multiplyAffine(b.scene.Root, child.Transform)
		op := &ebiten.DrawImageOptions{}
		op.GeoM = geoMFromAffine(full)
		screen.DrawImage(img, op)
	}
}

// geoMFromAffine converts our [a,b,c,d,tx,ty] matrix layout into an
// ebiten.GeoM.
func geoMFromAffine(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
