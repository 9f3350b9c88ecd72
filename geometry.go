package fovea

import "math"

// AlignUp rounds n up to the next multiple of alignment.
// alignment must be a positive power of two; n must be non-negative.
// Render-target dimensions are aligned with alignment = 2 so that every
// negotiated or patched extent lands on an even pixel boundary.
func AlignUp(n, alignment int32) int32 {
	return (n + alignment - 1) &^ (alignment - 1)
}

// Degrees converts a tangent-space boundary value to the corresponding
// half-angle in degrees. Diagnostic only: no geometry decision depends on
// angles, they exist so log output is readable.
func Degrees(tangent float64) float64 {
	return math.Atan(tangent) * 180 / math.Pi
}
