package compositor

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestApplyRedisplaySkipsMatchingResolution(t *testing.T) {
	s := NewScene()
	tile := &Tile{PageRect: Rect{X: 0, Y: 0, W: 256, H: 256}, Resolution: 1.0, DrawTarget: fakeSurface{256, 256}}
	s.Children = []*TileSublayer{{Tile: tile}}

	ApplyRedisplay(s, 1.0)

	if s.Children[0].DisplaySurface != nil {
		t.Error("DisplaySurface set for a tile that matches the current zoom")
	}
}

func TestApplyRedisplaySkipsSmallMismatch(t *testing.T) {
	s := NewScene()
	surface := &EbitenSurface{Image: ebiten.NewImage(256, 256)}
	tile := &Tile{PageRect: Rect{X: 0, Y: 0, W: 256, H: 256}, Resolution: 1.0, DrawTarget: surface}
	s.Children = []*TileSublayer{{Tile: tile}}

	// 1.1 is below rescaleFactor (1.15): too small a mismatch to bother
	// resampling.
	ApplyRedisplay(s, 1.1)

	if s.Children[0].DisplaySurface != nil {
		t.Error("DisplaySurface set for a mismatch below rescaleFactor")
	}
}

func TestApplyRedisplayResamplesLargeMismatch(t *testing.T) {
	s := NewScene()
	surface := &EbitenSurface{Image: ebiten.NewImage(256, 256)}
	tile := &Tile{PageRect: Rect{X: 10, Y: 20, W: 256, H: 256}, Resolution: 1.0, DrawTarget: surface}
	s.Children = []*TileSublayer{{Tile: tile}}

	ApplyRedisplay(s, 2.0)

	child := s.Children[0]
	if child.DisplaySurface == nil {
		t.Fatal("DisplaySurface not set for a 2x mismatch")
	}
	ds, ok := child.DisplaySurface.(*DisplaySurface)
	if !ok {
		t.Fatalf("DisplaySurface type = %T, want *DisplaySurface", child.DisplaySurface)
	}
	if b := ds.Bounds(); b.W != 512 || b.H != 512 {
		t.Errorf("resampled bounds = %v, want 512x512 (256*2.0/1.0)", b)
	}
	wantX, wantY := 10*2.0, 20*2.0
	gotX, gotY := transformPoint(child.Transform, 0, 0)
	if !approxEqual(gotX, wantX, epsilon) || !approxEqual(gotY, wantY, epsilon) {
		t.Errorf("redisplay transform origin = (%f,%f), want (%f,%f)", gotX, gotY, wantX, wantY)
	}
}

func TestApplyRedisplayClearsStaleDisplaySurfaceOnceCurrent(t *testing.T) {
	s := NewScene()
	surface := &EbitenSurface{Image: ebiten.NewImage(256, 256)}
	tile := &Tile{PageRect: Rect{X: 0, Y: 0, W: 256, H: 256}, Resolution: 1.0, DrawTarget: surface}
	child := &TileSublayer{Tile: tile, DisplaySurface: &DisplaySurface{Image: ebiten.NewImage(512, 512)}}
	s.Children = []*TileSublayer{child}

	ApplyRedisplay(s, 1.0)

	if child.DisplaySurface != nil {
		t.Error("DisplaySurface should clear once the tile matches the current zoom again")
	}
}
