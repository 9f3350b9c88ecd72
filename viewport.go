package fovea

import "math"

// SwapchainID is an opaque handle to a host-owned swapchain. The package
// never dereferences one; it only copies IDs between views.
type SwapchainID uint64

// SwapchainViewport addresses a rectangle of a swapchain image: the
// swapchain, an array layer, and an integer pixel rectangle.
//
// A viewport of Width 1 and Height 1 is not a real one-pixel region: it is
// the placeholder a caller submits on a focus view to request automatic
// placement inside the paired full view. See [SwapchainViewport.IsPlaceholder].
type SwapchainViewport struct {
	Swapchain  SwapchainID
	ArrayIndex int32
	X          int32
	Y          int32
	Width      int32
	Height     int32
}

// IsPlaceholder reports whether the viewport is the 1×1 auto-placement
// sentinel. Any other size means the caller has already placed the view
// and it must pass through unmodified.
func (v SwapchainViewport) IsPlaceholder() bool {
	return v.Width == 1 && v.Height == 1
}

// FocusViewport computes the sub-rectangle of a full view's viewport that
// a focus view with the given tangents occupies, preserving the angular
// position and extent of the focus frustum inside the reference frustum.
//
// ref is the full view's viewport, refFov the full view's actually
// rendered frustum (aligned-view convention), and focusFov the focus
// view's resolved tangents (signed convention). The returned viewport
// inherits the reference's swapchain and array index; its width and
// height are aligned to even pixels.
//
// ok is false when the reference frustum is degenerate or the computation
// would produce a non-finite rectangle; callers then leave the focus view
// unpatched.
func FocusViewport(ref SwapchainViewport, refFov AlignedFov, focusFov FovTangents) (vp SwapchainViewport, ok bool) {
	hFov := refFov.Horizontal()
	vFov := refFov.Vertical()
	if hFov <= 0 || vFov <= 0 {
		return SwapchainViewport{}, false
	}

	leftOffset := (focusFov.Left + refFov.Left) / hFov
	topOffset := (refFov.Top - focusFov.Top) / vFov
	hRatio := focusFov.HorizontalExtent() / hFov
	vRatio := focusFov.VerticalExtent() / vFov
	if !isFinite(leftOffset) || !isFinite(topOffset) || !isFinite(hRatio) || !isFinite(vRatio) {
		return SwapchainViewport{}, false
	}

	return SwapchainViewport{
		Swapchain:  ref.Swapchain,
		ArrayIndex: ref.ArrayIndex,
		X:          ref.X + int32(math.Round(leftOffset*float64(ref.Width))),
		Y:          ref.Y + int32(math.Round(topOffset*float64(ref.Height))),
		Width:      AlignUp(int32(math.Round(hRatio*float64(ref.Width))), 2),
		Height:     AlignUp(int32(math.Round(vRatio*float64(ref.Height))), 2),
	}, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
