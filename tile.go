package compositor

// Tile is an opaque rasterized buffer handed to the compositor by the
// render producer. ScreenPos is the tile's integer-pixel placement at its
// source Resolution; PageRect is the logical page rectangle it covers;
// Resolution is the world zoom at which it was rendered.
type Tile struct {
	ScreenPos  Rect
	PageRect   Rect
	Resolution float64
	DrawTarget GPUSurfaceHandle
}

// validAt reports whether the tile is usable at the given viewing zoom.
// Resolutions originate from producer-sent values and are never
// arithmetically derived by the compositor, so exact float equality is the
// intended comparison here, not an approximation.
func (t *Tile) validAt(zoom float64) bool {
	return t.Resolution == zoom
}
