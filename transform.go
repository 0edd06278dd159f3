package compositor

// identityTransform is the identity 2D affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix, returning the
// identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// translateMatrix builds a pure translation matrix.
func translateMatrix(tx, ty float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, tx, ty}
}

// scaleMatrix builds a pure scale matrix.
func scaleMatrix(sx, sy float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, 0, 0}
}

// rootTransform computes the scroll/zoom root transform from the current
// window size, local zoom and world offset:
//
//	T = translate(W.w/2*L - O.x, W.h/2*L - O.y) * scale(L, L) * translate(-W.w/2, -W.h/2)
//
// During a Paint reconciliation L is reset to 1, at which point T collapses
// to translate(-O.x, -O.y).
func rootTransform(window Size, localZoom float64, offset PointF) [6]float64 {
	pre := translateMatrix(-float64(window.W)/2, -float64(window.H)/2)
	sc := scaleMatrix(localZoom, localZoom)
	post := translateMatrix(float64(window.W)/2*localZoom-offset.X, float64(window.H)/2*localZoom-offset.Y)
	return multiplyAffine(post, multiplyAffine(sc, pre))
}

// tileTransform computes the per-tile transform placing a tile sublayer
// within the composed scene:
//
//	T_tile = translate(origin.x*Z, origin.y*Z) * scale(W_tile*Z/r, H_tile*Z/r)
func tileTransform(worldZoom float64, origin PointF, tileSize Size, resolution float64) [6]float64 {
	t := translateMatrix(origin.X*worldZoom, origin.Y*worldZoom)
	s := scaleMatrix(float64(tileSize.W)*worldZoom/resolution, float64(tileSize.H)*worldZoom/resolution)
	return multiplyAffine(t, s)
}

// screenToWorld maps a window-space point to page (world) space, given the
// current root transform.
func screenToWorld(root [6]float64, sx, sy float64) (wx, wy float64) {
	inv := invertAffine(root)
	return transformPoint(inv, sx, sy)
}
