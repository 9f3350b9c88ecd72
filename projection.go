package fovea

// Projection is a 4×4 projection transform in column-major order, the
// layout VR runtimes exchange in submitted views. Element (row r, col c)
// is at index c*4 + r. It is a value type: operations return new values
// and never mutate their receiver.
//
// The package treats projections as opaque except for their tangent
// terms. [ProjectionFromTangents] and [AlignedViewFromProjection] are the
// reference compose/decompose pair used by the simulated runtime and by
// tests; a live host substitutes its own equivalents through [Runtime].
type Projection [16]float64

// ProjectionFromTangents builds an off-axis projection whose frustum
// matches the given signed tangents. The depth terms encode an infinite
// far plane; hosts that need specific near/far planes overwrite them.
// Only the tangent terms are meaningful to this package.
func ProjectionFromTangents(t FovTangents) Projection {
	var p Projection
	width := t.Right - t.Left
	height := t.Top - t.Bottom
	if width == 0 || height == 0 {
		return p
	}
	p[0] = 2 / width
	p[5] = 2 / height
	p[8] = (t.Right + t.Left) / width
	p[9] = (t.Top + t.Bottom) / height
	p[10] = -1
	p[11] = -1
	return p
}

// AlignedViewFromProjection decomposes a projection back to its frustum
// boundaries in the positive-magnitude convention, mirroring the host
// runtime's aligned-view query. A projection with degenerate tangent
// terms decomposes to the zero value.
func AlignedViewFromProjection(p Projection) AlignedFov {
	if p[0] == 0 || p[5] == 0 {
		return AlignedFov{}
	}
	return AlignedFov{
		Left:   (1 - p[8]) / p[0],
		Right:  (1 + p[8]) / p[0],
		Top:    (1 + p[9]) / p[5],
		Bottom: (1 - p[9]) / p[5],
	}
}
