package compositor

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Quadtree is a spatial cache of tiles over a fixed page region,
// partitioned into a grid of tileSize cells. Despite the name it is
// implemented as a flat grid rather than a literal quadtree: at the tile
// counts a single browser tab's viewport produces, a grid walk is both
// simpler and at least as fast as maintaining recursive quadrant nodes,
// and every query here is already viewport-bounded.
type Quadtree struct {
	originX, originY int
	width, height    int
	tileSize         int
	cols, rows       int
	cells            []*Tile

	queryCache *lru.Cache[queryKey, queryResult]
}

type queryKey struct {
	rect Rect
	zoom float64
}

type queryResult struct {
	missing   []Rect
	redisplay bool
}

// NewQuadtree constructs an index over the page region
// [x, x+width) x [y, y+height), partitioned at tileSize, using the
// hardcoded default query-cache size. Use NewQuadtreeWithCacheSize to wire
// a Config-supplied cache size instead.
func NewQuadtree(x, y, width, height, tileSize int) *Quadtree {
	return NewQuadtreeWithCacheSize(x, y, width, height, tileSize, defaultConfig().MissingRectCacheLen)
}

// NewQuadtreeWithCacheSize is NewQuadtree with an explicit bound on the
// number of (viewport, zoom) -> (missing, redisplay) query results the LRU
// memoizes, as configured by Config.MissingRectCacheLen.
func NewQuadtreeWithCacheSize(x, y, width, height, tileSize, cacheSize int) *Quadtree {
	if tileSize <= 0 {
		panic("compositor: quadtree tileSize must be positive")
	}
	if cacheSize <= 0 {
		cacheSize = defaultConfig().MissingRectCacheLen
	}
	cols := ceilDiv(width, tileSize)
	rows := ceilDiv(height, tileSize)
	cache, err := lru.New[queryKey, queryResult](cacheSize)
	if err != nil {
		panic(fmt.Sprintf("compositor: lru.New: %v", err))
	}
	return &Quadtree{
		originX: x, originY: y,
		width: width, height: height,
		tileSize: tileSize,
		cols:     cols, rows: rows,
		cells:      make([]*Tile, cols*rows),
		queryCache: cache,
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (q *Quadtree) pageBounds() Rect {
	return Rect{X: q.originX, Y: q.originY, W: q.width, H: q.height}
}

func (q *Quadtree) cellIndex(col, row int) (int, bool) {
	if col < 0 || row < 0 || col >= q.cols || row >= q.rows {
		return 0, false
	}
	return row*q.cols + col, true
}

// AddTile inserts a tile anchored at page pixel (x, y), rendered at
// resolution. An existing tile at the same cell is replaced.
func (q *Quadtree) AddTile(x, y int, resolution float64, surface GPUSurfaceHandle, screenPos Rect) {
	col := (x - q.originX) / q.tileSize
	row := (y - q.originY) / q.tileSize
	idx, ok := q.cellIndex(col, row)
	// Integer division truncates toward zero, so an anchor just left of or
	// above the page would otherwise land in column or row 0.
	if !ok || x < q.originX || y < q.originY {
		Logger().Warn("compositor: add_tile anchor out of page bounds", "x", x, "y", y)
		return
	}
	q.cells[idx] = &Tile{
		ScreenPos:  screenPos,
		PageRect:   Rect{X: q.originX + col*q.tileSize, Y: q.originY + row*q.tileSize, W: q.tileSize, H: q.tileSize}.Intersect(q.pageBounds()),
		Resolution: resolution,
		DrawTarget: surface,
	}
	q.queryCache.Purge()
}

// GetTileRects returns the minimal cover of viewport by page-aligned,
// tile-sized rectangles whose cached tile fails valid, in top-to-bottom,
// left-to-right order. redisplay is true when viewport intersects at
// least one cell holding a tile that exists but is stale for zoom.
func (q *Quadtree) GetTileRects(viewport Rect, valid func(*Tile) bool, zoom float64) ([]Rect, bool) {
	key := queryKey{rect: viewport, zoom: zoom}
	if cached, ok := q.queryCache.Get(key); ok {
		out := make([]Rect, len(cached.missing))
		copy(out, cached.missing)
		return out, cached.redisplay
	}

	clipped := viewport.Intersect(q.pageBounds())
	var missing []Rect
	redisplay := false

	if !clipped.Empty() {
		colStart := (clipped.X - q.originX) / q.tileSize
		colEnd := (clipped.Right() - 1 - q.originX) / q.tileSize
		rowStart := (clipped.Y - q.originY) / q.tileSize
		rowEnd := (clipped.Bottom() - 1 - q.originY) / q.tileSize

		for row := rowStart; row <= rowEnd; row++ {
			for col := colStart; col <= colEnd; col++ {
				idx, ok := q.cellIndex(col, row)
				if !ok {
					continue
				}
				cellRect := Rect{
					X: q.originX + col*q.tileSize,
					Y: q.originY + row*q.tileSize,
					W: q.tileSize, H: q.tileSize,
				}.Intersect(q.pageBounds())
				if cellRect.Empty() {
					continue
				}

				tile := q.cells[idx]
				switch {
				case tile == nil:
					missing = append(missing, cellRect)
				case !valid(tile):
					missing = append(missing, cellRect)
					redisplay = true
				}
			}
		}
	}

	q.queryCache.Add(key, queryResult{missing: missing, redisplay: redisplay})
	return missing, redisplay
}

// GetAllTiles enumerates every currently cached tile, in row-major cell
// order, which the scene reconciliation relies on for a stable child
// ordering across successive paints.
func (q *Quadtree) GetAllTiles() []*Tile {
	tiles := make([]*Tile, 0, len(q.cells))
	for _, t := range q.cells {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Resize reindexes the quadtree to a new page size, preserving tiles whose
// anchor remains in-bounds and evicting the rest.
func (q *Quadtree) Resize(newWidth, newHeight int) {
	old := *q
	q.width, q.height = newWidth, newHeight
	q.cols = ceilDiv(newWidth, q.tileSize)
	q.rows = ceilDiv(newHeight, q.tileSize)
	q.cells = make([]*Tile, q.cols*q.rows)

	for i, t := range old.cells {
		if t == nil {
			continue
		}
		col := i % old.cols
		row := i / old.cols
		idx, ok := q.cellIndex(col, row)
		if !ok {
			continue
		}
		t.PageRect = t.PageRect.Intersect(q.pageBounds())
		q.cells[idx] = t
	}
	q.queryCache.Purge()
}
