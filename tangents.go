package fovea

import "math"

// FovTangents describes a view frustum's angular extent as four signed
// tangent-space boundaries measured from the optical axis. These are
// tangents of half-angles, not angles: Left and Bottom are negative for
// any view extending left of or below the axis, Right and Top positive.
//
// This is the convention of the runtime's FOV tangent queries and of
// projection composition. The aligned-view query reports the other
// convention; see [AlignedFov].
type FovTangents struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// HorizontalExtent returns the total horizontal tangent-space width,
// |Right - Left|.
func (t FovTangents) HorizontalExtent() float64 {
	return math.Abs(t.Right - t.Left)
}

// VerticalExtent returns the total vertical tangent-space height,
// |Top - Bottom|.
func (t FovTangents) VerticalExtent() float64 {
	return math.Abs(t.Top - t.Bottom)
}

// Aligned converts to the positive-magnitude convention.
func (t FovTangents) Aligned() AlignedFov {
	return AlignedFov{
		Left:   -t.Left,
		Right:  t.Right,
		Top:    t.Top,
		Bottom: -t.Bottom,
	}
}

// AlignedFov describes the same four frustum boundaries as [FovTangents],
// but with Left and Bottom as unsigned magnitudes. This is the convention
// of the runtime's aligned-view query, which decomposes a projection that
// was actually submitted for rendering.
type AlignedFov struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Horizontal returns the total horizontal tangent-space width,
// Right + Left.
func (a AlignedFov) Horizontal() float64 {
	return a.Right + a.Left
}

// Vertical returns the total vertical tangent-space height, Top + Bottom.
func (a AlignedFov) Vertical() float64 {
	return a.Top + a.Bottom
}

// Signed converts to the signed convention.
func (a AlignedFov) Signed() FovTangents {
	return FovTangents{
		Left:   -a.Left,
		Right:  a.Right,
		Top:    a.Top,
		Bottom: -a.Bottom,
	}
}

// FoveatedHints carries tuning parameters for the runtime's foveated
// tangent query. No parameters are currently defined; the resolver always
// passes the zero value, which requests the runtime's default behavior.
type FoveatedHints struct{}
