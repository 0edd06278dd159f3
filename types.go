package compositor

import "fmt"

// Point is an integer page or window coordinate.
type Point struct {
	X, Y int
}

// PointF is a floating-point coordinate, used for page/world measurements
// that accumulate fractional zoom scaling before being rounded to pixels.
type PointF struct {
	X, Y float64
}

// Size is an integer width/height pair, generally a window or tile size.
type Size struct {
	W, H int
}

// SizeF is a floating-point width/height pair, used for page dimensions
// reported by the render producer.
type SizeF struct {
	W, H float64
}

// Rect is an axis-aligned integer rectangle in page or window space.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d,%d,%d,%d)", r.X, r.Y, r.W, r.H)
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of r and o, which is Empty if they don't
// overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GPUSurfaceHandle identifies a GPU-resident texture owned by the render
// producer. The compositor treats it as opaque and hands it to the GPU
// backend for binding; it never inspects or decodes the pixels itself.
type GPUSurfaceHandle interface {
	// Bounds reports the surface's native pixel size, used to size the
	// texture sublayer that will display it.
	Bounds() Size
}
