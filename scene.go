package compositor

// TileSublayer is a single textured child of the scene's root layer,
// bound to one cached tile. Its Transform places it within the composed
// scene per the per-tile formula in tileTransform.
type TileSublayer struct {
	Tile      *Tile
	Transform [6]float64

	// DisplaySurface, when non-nil, holds a pre-scaled stand-in texture
	// shown instead of Tile.DrawTarget while Tile is stale for the
	// current zoom. Set by ApplyRedisplay, cleared on the next
	// reconciliation.
	DisplaySurface GPUSurfaceHandle
}

// Scene is the root container: a flat, ordered list of tile-backed
// sublayers. There is deliberately no general scene graph here — the
// specification calls for exactly one layer of children, so a slice is
// the whole data structure.
type Scene struct {
	Root     [6]float64 // root/scroll-zoom transform
	Children []*TileSublayer
}

// NewScene constructs an empty scene with an identity root transform.
func NewScene() *Scene {
	return &Scene{Root: identityTransform}
}

// Reconcile rebinds the scene's children to the given tile set, in order:
// existing children are rebound to new tiles, excess tiles are appended as
// new children, and excess children are truncated. This mirrors the
// snapshot-then-walk algorithm used to avoid iterator-invalidation hazards
// when the tile count changes between paints.
func (s *Scene) Reconcile(tiles []*Tile, worldZoom float64, tileSize Size) {
	n := min(len(tiles), len(s.Children))
	for i := 0; i < n; i++ {
		s.Children[i].Tile = tiles[i]
		s.Children[i].Transform = tileTransformFor(tiles[i], worldZoom, tileSize)
		s.Children[i].DisplaySurface = nil
	}
	for i := n; i < len(tiles); i++ {
		s.Children = append(s.Children, &TileSublayer{
			Tile:      tiles[i],
			Transform: tileTransformFor(tiles[i], worldZoom, tileSize),
		})
	}
	if len(tiles) < len(s.Children) {
		s.Children = s.Children[:len(tiles)]
	}
}

func tileTransformFor(t *Tile, worldZoom float64, tileSize Size) [6]float64 {
	origin := PointF{X: float64(t.PageRect.X), Y: float64(t.PageRect.Y)}
	return tileTransform(worldZoom, origin, tileSize, t.Resolution)
}
